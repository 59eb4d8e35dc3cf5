// Package requestid tags every HTTP request with an identifier.
//
// Middleware reuses a well-formed X-Request-ID header from the client or
// generates a UUID, echoes it in the response and stores it in the request
// context. LoggerExtractor plugs the ID into loggers built by pkg/logger.
package requestid
