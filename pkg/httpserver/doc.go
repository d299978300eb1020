// Package httpserver runs an http.Handler with graceful shutdown.
//
//	srv := httpserver.New(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//	    log.Error("server failed", logger.Error(err))
//	}
//
// Run blocks until the context is cancelled, the process receives SIGINT or
// SIGTERM, or Shutdown is called. HealthCheckHandler serves liveness and
// readiness checks.
package httpserver
