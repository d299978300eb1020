// Package requestid correlates log records of a single HTTP request.
//
// Middleware accepts a client supplied X-Request-ID header when it is at most
// 128 characters of letters, digits, dashes and underscores, and otherwise
// generates a UUIDv7. The id is stored in the request context and echoed in
// the response. LoggerExtractor feeds it to logger.WithContextExtractors:
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//	r.Use(requestid.Middleware)
package requestid
