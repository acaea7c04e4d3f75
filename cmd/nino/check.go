package main

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/nino/pkg/logger"
	"github.com/dmitrymomot/nino/pkg/nino"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check [NINO...]",
		Short: "Report whether each number is valid",
		Long: `Checks each argument, or each line of standard input when no arguments
are given. Exits with a non-zero status if any number is invalid.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := readInputs(args, cmd.InOrStdin())
			if err != nil {
				return err
			}

			valid := nino.IsValid
			if a.strict {
				valid = nino.IsValidStrict
			}

			records := make([]record, 0, len(inputs))
			for _, in := range inputs {
				ok := valid(in)
				a.log.DebugContext(cmd.Context(), "nino checked",
					logger.NINO(in), logger.Mode(a.strict), logger.Valid(ok))

				rec := record{Input: in, Valid: ok}
				if ok {
					rec.Result = "valid"
				}
				records = append(records, rec)
			}
			return a.emit(cmd.OutOrStdout(), records)
		},
	}
}
