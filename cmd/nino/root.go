package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/nino/pkg/clientip"
	"github.com/dmitrymomot/nino/pkg/environment"
	"github.com/dmitrymomot/nino/pkg/logger"
	"github.com/dmitrymomot/nino/pkg/requestid"
)

// errInvalidInput is returned when at least one input failed validation.
// The offending inputs are already reported on stdout.
var errInvalidInput = errors.New("invalid input")

type app struct {
	cfg    Config
	env    environment.Environment
	log    *slog.Logger
	strict bool
	output string
}

func newRootCmd(cfg Config) *cobra.Command {
	a := &app{cfg: cfg, env: environment.Parse(cfg.Env)}

	root := &cobra.Command{
		Use:           "nino",
		Short:         "Validate and format UK National Insurance numbers",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if _, ok := renderers[a.output]; !ok {
				return fmt.Errorf("unknown output format %q", a.output)
			}

			opts := []logger.Option{
				logger.WithEnvironment(a.env, a.cfg.Name),
				logger.WithOutput(cmd.ErrOrStderr()),
				logger.WithContextExtractors(
					requestid.LoggerExtractor(),
					clientip.LoggerExtractor(),
				),
			}
			if a.cfg.LogLevel != "" {
				level, err := logger.ParseLevel(a.cfg.LogLevel)
				if err != nil {
					return err
				}
				opts = append(opts, logger.WithLevel(level))
			}
			a.log = logger.New(opts...)
			return nil
		},
	}

	root.PersistentFlags().BoolVar(&a.strict, "strict", cfg.Strict, "use the strict nine-character rules")
	root.PersistentFlags().StringVarP(&a.output, "output", "o", "text", "output format: text, json or yaml")

	root.AddCommand(
		newCheckCmd(a),
		newFormatCmd(a),
		newWeekdayCmd(a),
		newServeCmd(a),
	)
	return root
}
