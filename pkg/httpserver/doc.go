// Package httpserver runs an http.Server until its context is cancelled and
// then shuts it down gracefully.
//
//	srv := httpserver.New(
//	    httpserver.WithAddr(":8080"),
//	    httpserver.WithShutdownTimeout(5*time.Second),
//	    httpserver.WithLogger(log),
//	)
//	if err := srv.Run(ctx, router); err != nil {
//	    log.Error("server failed", slog.Any("error", err))
//	}
//
// Run returns nil after a graceful shutdown, an error wrapping ErrStart if
// the listener fails and one wrapping ErrShutdown if draining times out.
// Signal handling is left to the caller, typically via signal.NotifyContext.
package httpserver
