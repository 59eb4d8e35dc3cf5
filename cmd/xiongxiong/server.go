package main

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/xiongxiong/pkg/requestid"
	"github.com/dmitrymomot/xiongxiong/pkg/xiongxiong"
)

// newRouter exposes /healthz publicly and /whoami behind token checks.
func newRouter(v *xiongxiong.Verifier, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(accessLog(logger))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Group(func(r chi.Router) {
		r.Use(xiongxiong.MiddlewareWithConfig(xiongxiong.MiddlewareConfig{
			Verifier: v,
			Logger:   logger,
		}))
		r.Get("/whoami", whoami)
	})

	return r
}

func whoami(w http.ResponseWriter, r *http.Request) {
	tok, _ := xiongxiong.GetToken(r.Context())
	data, _ := tok.Data()
	exp, _ := tok.Expiration()

	writeJSON(w, http.StatusOK, map[string]any{
		"data":       data,
		"expiration": exp.Unix(),
		"expires_in": int64(tok.ExpiresIn() / time.Second),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// accessLog relies on the logger's context extractors for the request ID.
func accessLog(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			logger.InfoContext(r.Context(), "request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.Status()),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}
