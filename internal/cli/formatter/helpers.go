package formatter

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lmorales/jornada/internal/clock"
	"github.com/lmorales/jornada/internal/domain"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// ClockText formats a time of day per the display preference.
func ClockText(tod clock.TimeOfDay, twentyFourHour bool) string {
	if twentyFourHour {
		return tod.Format24()
	}
	return tod.Format12()
}

// RecordHeaders is the column set for record tables.
var RecordHeaders = []string{"ID", "FECHA", "INICIO", "FIN", "HORAS", "ACTIVIDADES"}

// RecordRows converts records to table rows. Activity lists are previewed
// on a single line.
func RecordRows(records []*domain.WorkRecord, twentyFourHour bool) [][]string {
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		end := StyleYellow.Render("en curso")
		duration := Dim("--")
		if rec.Closed() {
			end = ClockText(*rec.End, twentyFourHour)
			duration = clock.FormatDuration(rec.Minutes())
		}
		rows = append(rows, []string{
			Dim(strconv.FormatInt(int64(rec.ID), 10)),
			rec.Date.Slash(),
			ClockText(rec.Start, twentyFourHour),
			end,
			duration,
			ActivityPreview(rec.Activities),
		})
	}
	return rows
}

// ActivityPreview joins activities on one line, truncated for table use.
func ActivityPreview(activities []string) string {
	joined := strings.Join(activities, "; ")
	if len(joined) > 48 {
		joined = joined[:45] + "..."
	}
	return joined
}
