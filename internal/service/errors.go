package service

import (
	"errors"
	"sort"
	"strings"

	"taskly-be/internal/repository"
)

var (
	// ErrNotFound is returned when a record is missing or owned by someone else.
	ErrNotFound = repository.ErrNotFound
	// ErrInvalidCredentials is returned on a failed login. It never says which
	// part was wrong.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// ValidationError carries per-field messages for a rejected form.
type ValidationError struct {
	Fields map[string][]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return "invalid fields: " + strings.Join(names, ", ")
}

func fieldError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string][]string{field: {message}}}
}
