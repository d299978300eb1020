package httpserver

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/whatishedoing/domainmodels/pkg/logger"
)

// Server wraps http.Server with signal aware graceful shutdown.
type Server struct {
	cfg  config
	mu   sync.Mutex
	srv  *http.Server
	once sync.Once
}

// New returns a server configured from cfg and opts. Zero fields of cfg keep
// the http.Server defaults.
func New(cfg Config, opts ...Option) *Server {
	c := config{Config: cfg, logger: slog.New(slog.DiscardHandler)}
	if c.Addr == "" {
		c.Addr = ":8080"
	}
	for _, opt := range opts {
		opt(&c)
	}
	return &Server{cfg: c}
}

// Run serves handler until ctx is cancelled, SIGINT or SIGTERM arrives, or
// Shutdown is called. A failure to listen or serve is wrapped with ErrStart.
func (s *Server) Run(ctx context.Context, handler http.Handler) error {
	if handler == nil {
		handler = http.NotFoundHandler()
	}

	s.mu.Lock()
	if s.srv != nil {
		s.mu.Unlock()
		return errors.Join(ErrStart, ErrAlreadyRunning)
	}
	srv := &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      handler,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
		IdleTimeout:  s.cfg.IdleTimeout,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}
	s.srv = srv
	s.mu.Unlock()

	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return errors.Join(ErrStart, err)
	}

	log := s.cfg.logger.With(logger.Component("httpserver"))
	addr := ln.Addr().String()
	log.InfoContext(ctx, "http server started", slog.String("addr", addr))
	for _, h := range s.cfg.startHooks {
		h(addr)
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	sigCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	var runErr error
	select {
	case <-sigCtx.Done():
		if err := s.Shutdown(context.WithoutCancel(ctx)); err != nil {
			log.ErrorContext(ctx, "http server shutdown failed", logger.Error(err))
		}
		runErr = <-errCh
	case runErr = <-errCh:
	}

	if runErr != nil && !errors.Is(runErr, http.ErrServerClosed) {
		return errors.Join(ErrStart, runErr)
	}
	log.InfoContext(ctx, "http server stopped", slog.String("addr", addr))
	return nil
}

// Shutdown stops the server gracefully within the configured timeout.
// It is safe for repeated calls.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	srv := s.srv
	s.mu.Unlock()
	if srv == nil {
		return nil
	}

	var err error
	s.once.Do(func() {
		if s.cfg.ShutdownTimeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, s.cfg.ShutdownTimeout)
			defer cancel()
		}
		err = srv.Shutdown(ctx)
		for _, h := range s.cfg.stopHooks {
			h()
		}
	})

	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Join(ErrShutdown, err)
	}
	return nil
}
