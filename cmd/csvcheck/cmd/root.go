package cmd

import (
	"context"
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/csvcheck/pkg/config"
	"github.com/dmitrymomot/csvcheck/pkg/logger"
)

// ErrInvalidData is returned when at least one source failed validation.
var ErrInvalidData = errors.New("csv data is invalid")

type rootOptions struct {
	verbose  bool
	envFiles []string
}

// NewRootCommand builds the csvcheck command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "csvcheck",
		Short: "Validate CSV files against a column schema",
		Long: `csvcheck validates tabular CSV data against a declarative column schema.

Each column declares a data type (integer, decimal, date, email, currency, ...)
and optional constraints such as required values, duplicate detection and
maximum length. Reports group localized messages by row number.

Settings are read from CSVCHECK_* environment variables and .env files;
command line flags take precedence.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging on stderr")
	root.PersistentFlags().StringSliceVar(&opts.envFiles, "env-file", nil, "load settings from .env files (default: ./.env when present)")

	root.AddCommand(
		newValidateCommand(opts),
		newSchemaCommand(opts),
		newVersionCommand(),
	)
	return root
}

// Execute runs the command tree with os.Args.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

func (o *rootOptions) loadConfig() (config.Config, error) {
	return config.FromEnv(config.WithEnvFiles(o.envFiles...))
}

func (o *rootOptions) newLogger(cmd *cobra.Command, cfg config.Config) *slog.Logger {
	opts := []logger.Option{
		logger.WithCLI(cmd.Root().Name(), o.verbose),
		logger.WithOutput(cmd.ErrOrStderr()),
	}
	if !o.verbose {
		opts = append(opts, logger.WithLevel(cfg.Level()))
	}
	return logger.New(opts...)
}
