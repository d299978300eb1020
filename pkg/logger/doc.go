// Package logger builds *slog.Logger instances for the domain value service
// and provides attribute helpers that keep key names consistent.
//
// New takes functional options. WithEnvironment picks level and format for
// dev, staging or prod and adds a service attribute; WithLevel, WithFormat
// and WithOutput override it. WithContextExtractors copies values stored in
// a context.Context (the request id, for one) onto every record.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "domain-api"),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	logger.SetAsDefault(log)
//
//	log.WarnContext(ctx, "rejected value",
//	    logger.Kind("postcode"),
//	    logger.Field("postcode"),
//	    logger.RawValue(raw),
//	    logger.Error(err),
//	)
//
// Error, Errors, Field and RawValue return an empty slog.Attr for nil or empty
// input, and slog drops empty attributes, so callers need no nil checks.
package logger
