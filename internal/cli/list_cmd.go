package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lmorales/jornada/internal/cli/formatter"
)

func newListCmd(app *App) *cobra.Command {
	var dateFlag, monthFlag string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded work sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			filter, err := parseListFilter(dateFlag, monthFlag)
			if err != nil {
				return err
			}

			records := app.Tracker.ListRecords(filter)
			if len(records) == 0 {
				fmt.Fprintln(out, "No hay registros.")
				return nil
			}

			rows := formatter.RecordRows(records, app.Config.Display.TwentyFourHour)
			fmt.Fprint(out, formatter.RenderBox("Registros",
				formatter.RenderTable(formatter.RecordHeaders, rows)))
			fmt.Fprintln(out)
			return nil
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "Filter by date (YYYY-MM-DD or DD/MM/YYYY)")
	cmd.Flags().StringVar(&monthFlag, "month", "", "Filter by month (YYYY-MM)")

	return cmd
}
