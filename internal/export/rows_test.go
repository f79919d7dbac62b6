package export_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lmorales/jornada/internal/clock"
	"github.com/lmorales/jornada/internal/domain"
	"github.com/lmorales/jornada/internal/export"
	"github.com/lmorales/jornada/internal/testutil"
)

func sampleRecords() []*domain.WorkRecord {
	day := clock.Date{Year: 2025, Month: time.March, Day: 9}
	return []*domain.WorkRecord{
		testutil.NewClosedRecord(day, "09:00", "17:30",
			testutil.WithActivities("revisar correo", "reunión semanal")),
		testutil.NewClosedRecord(day.AddDays(1), "08:15", "12:00"),
		testutil.NewOpenRecord(day.AddDays(2), "07:00"),
	}
}

func TestBuildRowsSkipsOpenSessions(t *testing.T) {
	rows := export.BuildRows(sampleRecords())

	require.Len(t, rows, 2)
	assert.Equal(t, "09/03/2025", rows[0].Date)
	assert.Equal(t, "09:00 a.m.", rows[0].Start)
	assert.Equal(t, "05:30 p.m.", rows[0].End)
	assert.Equal(t, "8h 30m", rows[0].Duration)
	assert.Equal(t, "revisar correo; reunión semanal", rows[0].Activities)
	assert.Equal(t, "10/03/2025", rows[1].Date)
	assert.Equal(t, "3h 45m", rows[1].Duration)
}

func TestBuildRowsEmptyInput(t *testing.T) {
	assert.Empty(t, export.BuildRows(nil))
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	err := export.WriteCSV(&buf, export.BuildRows(sampleRecords()))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Fecha,Inicio,Fin,Horas,Actividades", lines[0])
	assert.Contains(t, lines[1], "09/03/2025")
	assert.Contains(t, lines[1], "revisar correo; reunión semanal")
}

func TestWritePDFProducesDocument(t *testing.T) {
	var buf bytes.Buffer
	now := time.Date(2025, time.March, 12, 10, 0, 0, 0, time.UTC)

	err := export.WritePDF(&buf, "Registro de Horas Laborales", export.BuildRows(sampleRecords()), now)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

func TestWriteXLSXProducesWorkbook(t *testing.T) {
	var buf bytes.Buffer

	err := export.WriteXLSX(&buf, "Registros", export.BuildRows(sampleRecords()))
	require.NoError(t, err)
	// XLSX files are zip archives.
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("PK")))
}
