// Package backup serializes the full persisted state to and from the
// portable JSON backup document. The same codec underlies the manual
// export/import path and blob-shaped persistence; only the transport
// differs. Field names are preserved from the original data format so
// existing backup files keep restoring.
package backup

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/lmorales/jornada/internal/clock"
	"github.com/lmorales/jornada/internal/domain"
)

// Version tags the backup document format.
const Version = "2.0"

// ErrFormat reports a backup document whose top-level shape does not match
// the expected layout.
var ErrFormat = errors.New("unrecognized backup format")

// Document is the on-disk backup shape.
type Document struct {
	Registros         []Registro `json:"registros"`
	ActividadesDelDia []string   `json:"actividadesDelDia,omitempty"`
	ResumenDiario     string     `json:"resumenDiario,omitempty"`
	SesionActual      *Registro  `json:"sesionActual,omitempty"`
	FechaRespaldo     string     `json:"fechaRespaldo"`
	Version           string     `json:"version"`
}

// Registro is one record inside the document, carried in the locale shapes
// the original format used: DD/MM/YYYY dates and 12-hour clock strings.
type Registro struct {
	ID          int64    `json:"id"`
	Fecha       string   `json:"fecha"`
	HoraInicio  string   `json:"horaInicio"`
	HoraFin     string   `json:"horaFin,omitempty"`
	Actividades []string `json:"actividades,omitempty"`
	Resumen     string   `json:"resumen,omitempty"`
}

// Serialize produces the backup document for the given state, stamped with
// the format version and creation timestamp.
func Serialize(state *domain.PersistedState, now time.Time) ([]byte, error) {
	doc := Document{
		Registros:         make([]Registro, 0, len(state.Records)),
		ActividadesDelDia: state.DraftActivities,
		ResumenDiario:     state.DraftSummary,
		FechaRespaldo:     now.UTC().Format(time.RFC3339),
		Version:           Version,
	}
	for _, rec := range state.Records {
		doc.Registros = append(doc.Registros, toRegistro(rec))
	}
	if state.OpenSession != nil {
		open := toRegistro(state.OpenSession)
		doc.SesionActual = &open
	}

	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding backup: %w", err)
	}
	return raw, nil
}

// Deserialize parses a backup document and reconstructs the persisted
// state. The top level must contain a "registros" array or the document is
// rejected with ErrFormat. An open session not dated today is discarded
// rather than restored, so a stale session never blocks new work.
func Deserialize(data []byte, today clock.Date) (*domain.PersistedState, error) {
	var shape map[string]json.RawMessage
	if err := json.Unmarshal(data, &shape); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	rawRecords, ok := shape["registros"]
	if !ok {
		return nil, fmt.Errorf("%w: missing registros field", ErrFormat)
	}
	var probe []json.RawMessage
	if err := json.Unmarshal(rawRecords, &probe); err != nil {
		return nil, fmt.Errorf("%w: registros is not an array", ErrFormat)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}

	state := &domain.PersistedState{
		DraftActivities: doc.ActividadesDelDia,
		DraftSummary:    doc.ResumenDiario,
	}
	if t, err := time.Parse(time.RFC3339, doc.FechaRespaldo); err == nil {
		state.LastUpdated = t
	}

	for i, reg := range doc.Registros {
		rec, err := fromRegistro(reg)
		if err != nil {
			return nil, fmt.Errorf("registros[%d]: %w", i, err)
		}
		state.Records = append(state.Records, rec)
	}

	if doc.SesionActual != nil {
		open, err := fromRegistro(*doc.SesionActual)
		if err != nil {
			return nil, fmt.Errorf("sesionActual: %w", err)
		}
		if open.Closed() {
			// A finished session has no business being "current"; file it
			// with the history instead.
			state.Records = append(state.Records, open)
		} else if open.Date == today {
			state.OpenSession = open
		}
	}

	return state, nil
}

func toRegistro(r *domain.WorkRecord) Registro {
	out := Registro{
		ID:          int64(r.ID),
		Fecha:       r.Date.Slash(),
		HoraInicio:  r.Start.Format12(),
		Actividades: r.Activities,
		Resumen:     r.Summary,
	}
	if r.End != nil {
		out.HoraFin = r.End.Format12()
	}
	return out
}

func fromRegistro(reg Registro) (*domain.WorkRecord, error) {
	rec := &domain.WorkRecord{
		ID:         domain.RecordID(reg.ID),
		Activities: reg.Actividades,
		Summary:    reg.Resumen,
	}
	var err error
	if rec.Date, err = clock.ParseDateSlash(reg.Fecha); err != nil {
		return nil, err
	}
	if rec.Start, err = clock.ParseClock(reg.HoraInicio); err != nil {
		return nil, err
	}
	if reg.HoraFin != "" {
		end, err := clock.ParseClock(reg.HoraFin)
		if err != nil {
			return nil, err
		}
		rec.End = &end
	}
	return rec, nil
}
