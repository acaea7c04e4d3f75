package main

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/nino/pkg/logger"
	"github.com/dmitrymomot/nino/pkg/nino"
)

func newWeekdayCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "weekday [NINO...]",
		Short: "Print the benefit day of each number",
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := readInputs(args, cmd.InOrStdin())
			if err != nil {
				return err
			}

			records := make([]record, 0, len(inputs))
			for _, in := range inputs {
				if a.strict && !nino.IsValidStrict(in) {
					records = append(records, record{Input: in})
					continue
				}
				day, err := nino.WeekdayFor(in)
				if err != nil {
					a.log.DebugContext(cmd.Context(), "nino rejected",
						logger.NINO(in), logger.Error(err))
					records = append(records, record{Input: in})
					continue
				}
				records = append(records, record{Input: in, Valid: true, Result: day.String()})
			}
			return a.emit(cmd.OutOrStdout(), records)
		},
	}
}
