package services

import (
	"errors"
	"sort"
	"strings"

	"github.com/Dosada05/football-dashboard/repositories"
)

// Errors shared by every service and mapped to HTTP in the handlers.
var (
	ErrNotFound = errors.New("requested resource not found")

	ErrValidationFailed = errors.New("validation failed")
	ErrSameTeams        = errors.New("home and away team must be different")

	// Not-found errors are the repository sentinels so that the upstream
	// message stays in the chain without being wrapped twice.
	ErrLeagueNotFound    = repositories.ErrLeagueNotFound
	ErrStandingsNotFound = repositories.ErrStandingsNotFound
	ErrTeamNotFound      = repositories.ErrTeamNotFound
	ErrPlayerNotFound    = repositories.ErrPlayerNotFound
	ErrMatchNotFound     = repositories.ErrMatchNotFound
	ErrUserNotFound      = repositories.ErrUserNotFound

	ErrUploadsDisabled = errors.New("file uploads are not configured")
)

// ValidationError lists the rejected input fields. It is returned before any
// upstream request is made.
type ValidationError struct {
	Fields map[string]string
	cause  error
}

func newValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return ErrValidationFailed.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() []error {
	if e.cause != nil {
		return []error{ErrValidationFailed, e.cause}
	}
	return []error{ErrValidationFailed}
}
