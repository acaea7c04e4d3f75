package main

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/nino/pkg/logger"
	"github.com/dmitrymomot/nino/pkg/nino"
)

func newFormatCmd(a *app) *cobra.Command {
	var display bool

	cmd := &cobra.Command{
		Use:   "format [NINO...]",
		Short: "Print the canonical form of each number",
		Long: `Prints the uppercase, space-free form of each number. With --strict the
nine-character form is printed, padding a missing suffix with a space.
With --display the grouped form "AA 37 07 73 A" is printed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := readInputs(args, cmd.InOrStdin())
			if err != nil {
				return err
			}

			format := nino.CanonicalForm
			switch {
			case display:
				format = nino.Display
			case a.strict:
				format = nino.StrictCanonicalForm
			}

			records := make([]record, 0, len(inputs))
			for _, in := range inputs {
				out, err := format(in)
				if err != nil {
					a.log.DebugContext(cmd.Context(), "nino rejected",
						logger.NINO(in), logger.Error(err))
					records = append(records, record{Input: in})
					continue
				}
				records = append(records, record{Input: in, Valid: true, Result: out})
			}
			return a.emit(cmd.OutOrStdout(), records)
		},
	}

	cmd.Flags().BoolVar(&display, "display", false, `print the grouped form, e.g. "AA 37 07 73 A"`)
	return cmd
}
