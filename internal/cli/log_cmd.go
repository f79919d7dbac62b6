package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lmorales/jornada/internal/cli/formatter"
	"github.com/lmorales/jornada/internal/domain"
)

func newLogCmd(app *App) *cobra.Command {
	var summary string

	cmd := &cobra.Command{
		Use:   "log [ACTIVITY...]",
		Short: "Log activities or a summary against the open session",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if len(args) == 0 && summary == "" {
				return fmt.Errorf("nothing to log: pass an activity or --summary")
			}

			if len(args) > 0 {
				activity := strings.Join(args, " ")
				activities, _ := app.Tracker.Draft()
				activities = append(activities, activity)

				err := app.Tracker.UpdateActivities(cmd.Context(), activities)
				if errors.Is(err, domain.ErrNotFound) {
					fmt.Fprintln(out, formatter.Dim("No hay sesión abierta; actividad descartada."))
					return nil
				}
				if err = warnPersistence(cmd, err); err != nil {
					return err
				}
				fmt.Fprintf(out, "Actividad registrada: %s\n", activity)
			}

			if summary != "" {
				err := app.Tracker.UpdateSummary(cmd.Context(), summary)
				if errors.Is(err, domain.ErrNotFound) {
					fmt.Fprintln(out, formatter.Dim("No hay sesión abierta; resumen descartado."))
					return nil
				}
				if err = warnPersistence(cmd, err); err != nil {
					return err
				}
				fmt.Fprintln(out, "Resumen actualizado.")
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&summary, "summary", "", "Set the day's summary")

	return cmd
}
