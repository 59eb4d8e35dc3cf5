package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/xiongxiong/pkg/xiongxiong"
)

var ErrInvalidSeed = errors.New("input data must be a string or an array of strings")

func newIssueCmd(a *app) *cobra.Command {
	var lifetime time.Duration

	cmd := &cobra.Command{
		Use:   "issue",
		Short: "Issue a token for JSON data read from stdin",
		Long: `Reads a JSON string or array of strings from stdin and prints the
access token together with the equivalent Basic-auth pair.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("lifetime") {
				lifetime = a.cfg.Lifetime
			}

			key, err := a.cfg.privateKey()
			if err != nil {
				return err
			}
			opts, err := a.options(lifetime)
			if err != nil {
				return err
			}
			issuer, err := xiongxiong.NewIssuer(key, opts...)
			if err != nil {
				return err
			}

			data, err := readSeed(cmd.InOrStdin())
			if err != nil {
				return err
			}

			creds, err := issuer.Issue(data...)
			if err != nil {
				return err
			}

			a.logger.DebugContext(cmd.Context(), "token issued",
				slog.String("algorithm", issuer.Algorithm().String()),
				slog.Int64("expiration", creds.Expiration))

			return writeOutput(cmd.OutOrStdout(), a.output, creds)
		},
	}

	cmd.Flags().DurationVarP(&lifetime, "lifetime", "l", xiongxiong.DefaultLifetime, "token lifetime")
	return cmd
}

// readSeed decodes a JSON string or array of strings.
func readSeed(r io.Reader) ([]string, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}

	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		return []string{single}, nil
	}

	var many []string
	if err := json.Unmarshal(raw, &many); err != nil || len(many) == 0 {
		return nil, ErrInvalidSeed
	}
	return many, nil
}
