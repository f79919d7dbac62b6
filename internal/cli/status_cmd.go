package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lmorales/jornada/internal/cli/formatter"
	"github.com/lmorales/jornada/internal/clock"
)

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the open session and worked-time statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			today := clock.Today(app.now())
			twentyFour := app.Config.Display.TwentyFourHour

			var b strings.Builder

			open := app.Tracker.OpenSession()
			b.WriteString(formatter.SessionPill(open != nil))
			b.WriteString("\n")
			if open != nil {
				fmt.Fprintf(&b, "Inicio: %s (%s)\n",
					formatter.ClockText(open.Start, twentyFour), open.Date.Slash())
			}

			activities, summary := app.Tracker.Draft()
			if len(activities) > 0 {
				b.WriteString("\n" + formatter.Header("Actividades del día") + "\n")
				for _, a := range activities {
					fmt.Fprintf(&b, "  - %s\n", a)
				}
			}
			if summary != "" {
				fmt.Fprintf(&b, "\nResumen: %s\n", summary)
			}

			b.WriteString("\n" + formatter.Header("Horas trabajadas") + "\n")
			fmt.Fprintf(&b, "Hoy:              %s\n",
				formatter.Bold(clock.FormatDuration(app.Tracker.MinutesToday(today))))
			fmt.Fprintf(&b, "Última semana:    %s\n",
				formatter.Bold(clock.FormatDuration(app.Tracker.MinutesThisWeek(today))))

			fmt.Fprint(out, formatter.RenderBox("Estado", strings.TrimRight(b.String(), "\n")))
			fmt.Fprintln(out)
			return nil
		},
	}
}
