// Package logger builds slog loggers with a consistent setup for the
// xiongxiong binaries.
//
// Loggers write JSON by default and text on request. Static attributes,
// such as the service name, are attached once; request-scoped values,
// such as a request ID, are pulled from the context on every record by
// registered ContextExtractor functions.
//
// # Usage
//
//	import "github.com/dmitrymomot/xiongxiong/pkg/logger"
//
//	level, err := logger.ParseLevel(os.Getenv("LOG_LEVEL"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	l := logger.New(
//	    logger.WithLevel(level),
//	    logger.WithService("xiongxiong"),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	l.InfoContext(ctx, "verifier ready")
package logger
