package main

import (
	"errors"

	"github.com/spf13/cobra"
)

var ErrTokenInvalid = errors.New("token is not valid")

type verifyResult struct {
	Valid      bool   `json:"valid" yaml:"valid"`
	Data       any    `json:"data,omitempty" yaml:"data,omitempty"`
	Expiration *int64 `json:"expiration,omitempty" yaml:"expiration,omitempty"`
}

func newVerifyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "verify <access-token> | verify <basic-login> <basic-password>",
		Short: "Verify a bearer token or a Basic-auth pair",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			verifier, err := a.verifier()
			if err != nil {
				return err
			}

			tok, err := verifier.Decode(args...)
			if err != nil {
				return err
			}

			res := verifyResult{Valid: tok.Valid()}
			if data, ok := tok.Data(); ok {
				res.Data = data.Value()
			}
			if exp, ok := tok.Expiration(); ok {
				unix := exp.Unix()
				res.Expiration = &unix
			}

			if err := writeOutput(cmd.OutOrStdout(), a.output, res); err != nil {
				return err
			}
			if !res.Valid {
				return ErrTokenInvalid
			}
			return nil
		},
	}
}
