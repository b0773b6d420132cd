// Package common defines shared sentinel errors used across the
// repository, service and state layers. Callers match them with
// errors.Is.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Team invariant violations.
	ErrTeamFull      = errors.New("team is full")
	ErrAlreadyInTeam = errors.New("pokemon already in team")

	// ErrDatabase wraps unexpected storage failures at the state
	// boundary so the view layer never sees raw driver errors.
	ErrDatabase = errors.New("database error")

	// Validation errors.
	ErrInvalidTheme = errors.New("invalid theme")
)
