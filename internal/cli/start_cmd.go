package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lmorales/jornada/internal/cli/formatter"
)

func newStartCmd(app *App) *cobra.Command {
	var at string

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start a work session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			now, err := atTime(app.now(), at)
			if err != nil {
				return err
			}

			rec, err := app.Tracker.StartSession(cmd.Context(), now)
			if err = warnPersistence(cmd, err); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s Sesión iniciada a las %s\n",
				formatter.StyleGreen.Render("●"),
				formatter.ClockText(rec.Start, app.Config.Display.TwentyFourHour))
			return nil
		},
	}

	cmd.Flags().StringVar(&at, "at", "", "Start time (HH:MM or hh:mm a.m./p.m.), default now")

	return cmd
}
