// Package cli wires the cobra command tree over the tracker service.
package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/lmorales/jornada/internal/config"
	"github.com/lmorales/jornada/internal/service"
)

// App holds the dependencies used by CLI commands.
type App struct {
	Tracker service.TrackerService
	Config  *config.Config

	// Now supplies the current time; tests pin it.
	Now func() time.Time
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

// NewRootCmd creates the top-level "jornada" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "jornada",
		Short:         "Personal work-hours tracker",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newStartCmd(app),
		newFinishCmd(app),
		newLogCmd(app),
		newStatusCmd(app),
		newListCmd(app),
		newEditCmd(app),
		newDeleteCmd(app),
		newExportCmd(app),
		newBackupCmd(app),
		newRestoreCmd(app),
	)

	return root
}
