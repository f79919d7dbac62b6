package domain

import "errors"

var (
	// ErrConflict is returned when starting a session while one is open.
	ErrConflict = errors.New("a session is already open")

	// ErrNotFound is returned when the targeted session or record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrValidation is returned when an edit would leave a record without its
	// required fields or with an end time before its start time.
	ErrValidation = errors.New("invalid record")

	// ErrPersistence wraps a failed store write or read. The in-memory
	// mutation that triggered the write is kept; memory and disk may diverge
	// until the next successful save.
	ErrPersistence = errors.New("persistence failure")
)
