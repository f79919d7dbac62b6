package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lmorales/jornada/internal/cli/formatter"
	"github.com/lmorales/jornada/internal/clock"
)

func newFinishCmd(app *App) *cobra.Command {
	var at, summary string

	cmd := &cobra.Command{
		Use:   "finish",
		Short: "Finish the open work session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			now, err := atTime(app.now(), at)
			if err != nil {
				return err
			}

			activities, draftSummary := app.Tracker.Draft()
			if summary == "" {
				summary = draftSummary
			}

			rec, err := app.Tracker.FinalizeSession(cmd.Context(), now, activities, summary)
			if err = warnPersistence(cmd, err); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s Sesión cerrada: %s a %s (%s)\n",
				formatter.StyleGreen.Render("✔"),
				formatter.ClockText(rec.Start, app.Config.Display.TwentyFourHour),
				formatter.ClockText(*rec.End, app.Config.Display.TwentyFourHour),
				clock.FormatDuration(rec.Minutes()))
			return nil
		},
	}

	cmd.Flags().StringVar(&at, "at", "", "End time (HH:MM or hh:mm a.m./p.m.), default now")
	cmd.Flags().StringVar(&summary, "summary", "", "End-of-day summary to attach")

	return cmd
}
