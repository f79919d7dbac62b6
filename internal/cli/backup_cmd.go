package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lmorales/jornada/internal/clock"
)

func newBackupCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "backup [FILE]",
		Short: "Write a JSON backup of all records",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			now := app.now()

			path := fmt.Sprintf("jornada-backup-%s.json", clock.Today(now).ISO())
			if len(args) == 1 {
				path = args[0]
			}

			data, err := app.Tracker.CreateBackup(now)
			if err != nil {
				return err
			}
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return fmt.Errorf("writing backup: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Respaldo guardado en %s\n", path)
			return nil
		},
	}
}
