package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lmorales/jornada/internal/clock"
	"github.com/lmorales/jornada/internal/config"
	"github.com/lmorales/jornada/internal/domain"
	"github.com/lmorales/jornada/internal/service"
	"github.com/lmorales/jornada/internal/testutil"
)

func listAll() domain.Filter {
	return domain.Filter{}
}

// seedClosedSession records a full 09:00 to 17:00 session and returns its id.
func seedClosedSession(t *testing.T, app *App) domain.RecordID {
	t.Helper()
	_, err := executeCmd(t, app, "start", "--at", "09:00")
	require.NoError(t, err)
	_, err = executeCmd(t, app, "log", "trabajo del día")
	require.NoError(t, err)
	_, err = executeCmd(t, app, "finish", "--at", "17:00")
	require.NoError(t, err)

	records := app.Tracker.ListRecords(listAll())
	require.NotEmpty(t, records)
	return records[0].ID
}

func idArg(id domain.RecordID) string {
	return strconv.FormatInt(int64(id), 10)
}

// testApp wires a full App backed by an in-memory DB for CLI integration
// tests, with the clock pinned to a Monday morning.
func testApp(t *testing.T) *App {
	t.Helper()

	backend := testutil.NewTestSQLiteBackend(t)
	now := time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)

	tracker, err := service.NewTrackerService(context.Background(), backend, clock.Today(now))
	require.NoError(t, err)

	return &App{
		Tracker: tracker,
		Config: &config.Config{
			Storage: config.StorageConfig{Backend: config.BackendSQLite},
			Display: config.DisplayConfig{Color: false},
		},
		Now: func() time.Time { return now },
	}
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestStartCmd(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "start")
	require.NoError(t, err)
	assert.Contains(t, out, "Sesión iniciada")
	assert.Contains(t, out, "09:00 a.m.")
	require.NotNil(t, app.Tracker.OpenSession())
}

func TestStartCmd_AlreadyOpen(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "start")
	require.NoError(t, err)
	_, err = executeCmd(t, app, "start")
	require.Error(t, err)
}

func TestStartCmd_AtFlag(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "start", "--at", "07:30")
	require.NoError(t, err)
	assert.Contains(t, out, "07:30 a.m.")
}

func TestStartCmd_BadAtFlag(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "start", "--at", "half past nine")
	require.Error(t, err)
}

func TestFinishCmd(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "start")
	require.NoError(t, err)
	_, err = executeCmd(t, app, "log", "escribir", "informes")
	require.NoError(t, err)

	out, err := executeCmd(t, app, "finish", "--at", "05:30 p.m.", "--summary", "día completo")
	require.NoError(t, err)
	assert.Contains(t, out, "Sesión cerrada")
	assert.Contains(t, out, "8h 30m")

	records := app.Tracker.ListRecords(listAll())
	require.Len(t, records, 1)
	assert.Equal(t, []string{"escribir informes"}, records[0].Activities)
	assert.Equal(t, "día completo", records[0].Summary)
}

func TestFinishCmd_NoOpenSession(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "finish")
	require.Error(t, err)
}

func TestLogCmd_NoArgs(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "log")
	require.Error(t, err)
}

func TestLogCmd_NoOpenSessionIsNotice(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "log", "actividad perdida")
	require.NoError(t, err)
	assert.Contains(t, out, "No hay sesión abierta")
}

func TestStatusCmd(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "start", "--at", "08:00")
	require.NoError(t, err)
	_, err = executeCmd(t, app, "log", "revisar correo")
	require.NoError(t, err)

	out, err := executeCmd(t, app, "status")
	require.NoError(t, err)
	assert.Contains(t, out, "En curso")
	assert.Contains(t, out, "revisar correo")
	assert.Contains(t, out, "HORAS TRABAJADAS")
}

func TestListCmd_Empty(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No hay registros.")
}

func TestListCmd_ShowsClosedRecords(t *testing.T) {
	app := testApp(t)
	seedClosedSession(t, app)

	out, err := executeCmd(t, app, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "10/03/2025")
	assert.Contains(t, out, "8h 0m")
}

func TestListCmd_DateFilter(t *testing.T) {
	app := testApp(t)
	seedClosedSession(t, app)

	out, err := executeCmd(t, app, "list", "--date", "2024-01-01")
	require.NoError(t, err)
	assert.Contains(t, out, "No hay registros.")
}

func TestEditCmd(t *testing.T) {
	app := testApp(t)
	id := seedClosedSession(t, app)

	out, err := executeCmd(t, app, "edit", idArg(id), "--end", "06:00 p.m.")
	require.NoError(t, err)
	assert.Contains(t, out, "actualizado")
	assert.Contains(t, out, "9h 0m")
}

func TestEditCmd_RejectsBadTimes(t *testing.T) {
	app := testApp(t)
	id := seedClosedSession(t, app)

	_, err := executeCmd(t, app, "edit", idArg(id), "--end", "07:00")
	require.Error(t, err)
}

func TestDeleteCmd(t *testing.T) {
	app := testApp(t)
	id := seedClosedSession(t, app)

	out, err := executeCmd(t, app, "delete", idArg(id))
	require.NoError(t, err)
	assert.Contains(t, out, "eliminado")
	assert.Empty(t, app.Tracker.ListRecords(listAll()))
}

func TestDeleteCmd_BadID(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "delete", "abc")
	require.Error(t, err)
}

func TestExportCmd_CSV(t *testing.T) {
	app := testApp(t)
	seedClosedSession(t, app)

	path := filepath.Join(t.TempDir(), "registros.csv")
	out, err := executeCmd(t, app, "export", "--format", "csv", "--out", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Exportados 1 registros")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Fecha,Inicio,Fin,Horas,Actividades")
	assert.Contains(t, string(data), "10/03/2025")
}

func TestExportCmd_UnknownFormat(t *testing.T) {
	app := testApp(t)

	path := filepath.Join(t.TempDir(), "registros.bin")
	_, err := executeCmd(t, app, "export", "--format", "docx", "--out", path)
	require.Error(t, err)
}

func TestBackupAndRestoreCmds(t *testing.T) {
	app := testApp(t)
	seedClosedSession(t, app)

	path := filepath.Join(t.TempDir(), "backup.json")
	out, err := executeCmd(t, app, "backup", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Respaldo guardado")

	_, err = executeCmd(t, app, "delete", idArg(seedClosedSession(t, app)))
	require.NoError(t, err)

	out, err = executeCmd(t, app, "restore", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Respaldo restaurado (1 registros)")
}

func TestStartCmd_StoreDownIsWarning(t *testing.T) {
	backend := testutil.NewFailingBackend(testutil.NewTestSQLiteBackend(t))
	now := time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)
	tracker, err := service.NewTrackerService(context.Background(), backend, clock.Today(now))
	require.NoError(t, err)

	app := &App{
		Tracker: tracker,
		Config:  &config.Config{Display: config.DisplayConfig{}},
		Now:     func() time.Time { return now },
	}
	backend.FailWrites = true

	out, err := executeCmd(t, app, "start")
	require.NoError(t, err)
	assert.Contains(t, out, "Aviso:")
	assert.Contains(t, out, "Sesión iniciada")
	require.NotNil(t, app.Tracker.OpenSession())
}

func TestRestoreCmd_MissingFile(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "restore", filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}
