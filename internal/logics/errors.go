package logics

import "errors"

var (
	// ErrSessionNotFound is returned by every operation given an unknown
	// session id. No mutation happens in that case.
	ErrSessionNotFound = errors.New("session not found")
	// ErrStageNotFound is returned when a stage number is not in the catalog.
	ErrStageNotFound = errors.New("stage not found")
)
