package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lmorales/jornada/internal/clock"
	"github.com/lmorales/jornada/internal/domain"
)

func newEditCmd(app *App) *cobra.Command {
	var dateFlag, startFlag, endFlag, summaryFlag string
	var activitiesFlag []string

	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Edit a recorded session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseRecordID(args[0])
			if err != nil {
				return err
			}

			var patch domain.RecordPatch

			if cmd.Flags().Changed("date") {
				date, err := clock.ParseDate(dateFlag)
				if err != nil {
					return fmt.Errorf("invalid date %q: %w", dateFlag, err)
				}
				patch.Date = &date
			}
			if cmd.Flags().Changed("start") {
				tod, err := parseClockFlag(startFlag)
				if err != nil {
					return fmt.Errorf("invalid start time %q: %w", startFlag, err)
				}
				patch.Start = &tod
			}
			if cmd.Flags().Changed("end") {
				tod, err := parseClockFlag(endFlag)
				if err != nil {
					return fmt.Errorf("invalid end time %q: %w", endFlag, err)
				}
				patch.End = &tod
			}
			if cmd.Flags().Changed("activities") {
				patch.Activities = activitiesFlag
			}
			if cmd.Flags().Changed("summary") {
				patch.Summary = &summaryFlag
			}

			rec, err := app.Tracker.EditRecord(cmd.Context(), id, patch, app.now())
			if err = warnPersistence(cmd, err); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Registro %d actualizado (%s, %s)\n",
				rec.ID, rec.Date.Slash(), clock.FormatDuration(rec.Minutes()))
			return nil
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "New date (YYYY-MM-DD or DD/MM/YYYY)")
	cmd.Flags().StringVar(&startFlag, "start", "", "New start time")
	cmd.Flags().StringVar(&endFlag, "end", "", "New end time")
	cmd.Flags().StringSliceVar(&activitiesFlag, "activities", nil, "Replace the activity list")
	cmd.Flags().StringVar(&summaryFlag, "summary", "", "Replace the summary")

	return cmd
}
