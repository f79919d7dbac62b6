package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lmorales/jornada/internal/clock"
	"github.com/lmorales/jornada/internal/export"
)

const exportTitle = "Registro de Horas Laborales"

func newExportCmd(app *App) *cobra.Command {
	var format, outPath, dateFlag, monthFlag string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export records to PDF, XLSX or CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := parseListFilter(dateFlag, monthFlag)
			if err != nil {
				return err
			}
			rows := export.BuildRows(app.Tracker.ListRecords(filter))

			now := app.now()
			if outPath == "" {
				outPath = fmt.Sprintf("registro-horas-%s.%s", clock.Today(now).ISO(), format)
			}

			f, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("creating %s: %w", outPath, err)
			}
			defer f.Close()

			switch format {
			case "pdf":
				err = export.WritePDF(f, exportTitle, rows, now)
			case "xlsx":
				err = export.WriteXLSX(f, "Registros", rows)
			case "csv":
				err = export.WriteCSV(f, rows)
			default:
				return fmt.Errorf("unknown format %q (want pdf, xlsx or csv)", format)
			}
			if err != nil {
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("closing %s: %w", outPath, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Exportados %d registros a %s\n", len(rows), outPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "pdf", "Output format: pdf, xlsx or csv")
	cmd.Flags().StringVar(&outPath, "out", "", "Output file path")
	cmd.Flags().StringVar(&dateFlag, "date", "", "Filter by date (YYYY-MM-DD or DD/MM/YYYY)")
	cmd.Flags().StringVar(&monthFlag, "month", "", "Filter by month (YYYY-MM)")

	return cmd
}
