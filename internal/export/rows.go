// Package export renders record lists into the document formats offered
// by the export surface: PDF, spreadsheet and CSV. Writers consume the
// shared row shape and a byte sink; they hold no record-store state.
package export

import (
	"strings"

	"github.com/lmorales/jornada/internal/clock"
	"github.com/lmorales/jornada/internal/domain"
)

// Headers is the column set shared by every export format.
var Headers = []string{"Fecha", "Inicio", "Fin", "Horas", "Actividades"}

// Row is one exported record in locale presentation form.
type Row struct {
	Date       string
	Start      string
	End        string
	Duration   string
	Activities string
}

// BuildRows converts records into export rows. Open sessions are excluded;
// the caller passes the currently filtered-or-full record list.
func BuildRows(records []*domain.WorkRecord) []Row {
	rows := make([]Row, 0, len(records))
	for _, rec := range records {
		if !rec.Closed() {
			continue
		}
		rows = append(rows, Row{
			Date:       rec.Date.Slash(),
			Start:      rec.Start.Format12(),
			End:        rec.End.Format12(),
			Duration:   clock.FormatDuration(rec.Minutes()),
			Activities: strings.Join(rec.Activities, "; "),
		})
	}
	return rows
}

func (r Row) cells() []string {
	return []string{r.Date, r.Start, r.End, r.Duration, r.Activities}
}
