package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lmorales/jornada/internal/clock"
	"github.com/lmorales/jornada/internal/domain"
)

func newRestoreCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "restore FILE",
		Short: "Replace all records from a JSON backup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading backup: %w", err)
			}

			today := clock.Today(app.now())
			if err := app.Tracker.RestoreBackup(cmd.Context(), data, today); err != nil {
				return err
			}

			count := len(app.Tracker.ListRecords(domain.Filter{}))
			fmt.Fprintf(cmd.OutOrStdout(), "Respaldo restaurado (%d registros)\n", count)
			return nil
		},
	}
}
