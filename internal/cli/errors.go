package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lmorales/jornada/internal/cli/formatter"
	"github.com/lmorales/jornada/internal/domain"
)

// warnPersistence downgrades a store-write failure to a warning: the
// in-memory mutation already happened, so the command still succeeded
// from the user's point of view. Any other error is returned unchanged.
func warnPersistence(cmd *cobra.Command, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrPersistence) {
		fmt.Fprintln(cmd.ErrOrStderr(),
			formatter.StyleYellow.Render("Aviso:"), "no se pudo guardar:", err)
		return nil
	}
	return err
}
