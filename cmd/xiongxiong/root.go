package main

import (
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/xiongxiong/pkg/logger"
	"github.com/dmitrymomot/xiongxiong/pkg/requestid"
	"github.com/dmitrymomot/xiongxiong/pkg/xiongxiong"
)

const serviceName = "xiongxiong"

// app carries state shared by all commands after PersistentPreRunE.
type app struct {
	cfg    Config
	logger *slog.Logger

	envFiles  []string
	output    string
	key       string
	algorithm string
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "xiongxiong",
		Short:         "Issue and verify self-contained bearer tokens",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringSliceVar(&a.envFiles, "env-file", nil, "load environment from these .env files")
	flags.StringVarP(&a.output, "output", "o", "json", "output format: json or yaml")
	flags.StringVarP(&a.key, "key", "k", "", "private key, or a path to a file holding it")
	flags.StringVarP(&a.algorithm, "algorithm", "a", "", "HMAC hash algorithm (default from XIONGXIONG_ALGORITHM)")

	root.AddCommand(newIssueCmd(a), newVerifyCmd(a), newServeCmd(a), newAlgorithmsCmd(a))
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	if a.output != "json" && a.output != "yaml" {
		return ErrUnknownOutput
	}

	cfg, err := loadConfig(a.envFiles...)
	if err != nil {
		return err
	}
	if a.key != "" {
		cfg.setKey(a.key)
	}
	if a.algorithm != "" {
		cfg.Algorithm = a.algorithm
	}
	a.cfg = cfg

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	format, err := logger.ParseFormat(cfg.LogFormat)
	if err != nil {
		return err
	}
	a.logger = logger.New(
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithService(serviceName),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)
	return nil
}

func (a *app) options(lifetime time.Duration) ([]xiongxiong.Option, error) {
	alg, err := xiongxiong.ParseAlgorithm(a.cfg.Algorithm)
	if err != nil {
		return nil, err
	}
	return []xiongxiong.Option{
		xiongxiong.WithAlgorithm(alg),
		xiongxiong.WithLifetime(lifetime),
	}, nil
}

func (a *app) verifier() (*xiongxiong.Verifier, error) {
	key, err := a.cfg.privateKey()
	if err != nil {
		return nil, err
	}
	opts, err := a.options(a.cfg.Lifetime)
	if err != nil {
		return nil, err
	}
	return xiongxiong.New(key, opts...)
}

func newAlgorithmsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "List supported hash algorithms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			algs := xiongxiong.SupportedAlgorithms()
			names := make([]string, len(algs))
			for i, alg := range algs {
				names[i] = alg.String()
			}
			return writeOutput(cmd.OutOrStdout(), a.output, names)
		},
	}
}
