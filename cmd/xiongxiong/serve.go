package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/xiongxiong/pkg/httpserver"
)

func newServeCmd(a *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run an HTTP server that authenticates requests with tokens",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if addr == "" {
				addr = a.cfg.HTTPAddr
			}

			verifier, err := a.verifier()
			if err != nil {
				return err
			}
			a.logger.InfoContext(cmd.Context(), "verifier ready",
				slog.String("algorithm", verifier.Algorithm().String()))

			opts := []httpserver.Option{
				httpserver.WithAddr(addr),
				httpserver.WithLogger(a.logger),
			}
			if a.cfg.ShutdownTimeout > 0 {
				opts = append(opts, httpserver.WithShutdownTimeout(a.cfg.ShutdownTimeout))
			}
			return httpserver.New(opts...).Run(cmd.Context(), newRouter(verifier, a.logger))
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from XIONGXIONG_HTTP_ADDR)")
	return cmd
}
