package domain

import (
	"errors"
	"sort"
	"strings"
)

var (
	// ErrNotFound reports that a referenced entity id does not resolve
	// against the current state.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateName reports a name clash within the entity's scope.
	ErrDuplicateName = errors.New("duplicate name")
	// ErrAreaExceeded reports a child area larger than the area containing it.
	ErrAreaExceeded = errors.New("area exceeds containing area")
	// ErrInvalid wraps field validation failures.
	ErrInvalid = errors.New("invalid input")
)

// ValidationError reports the fields that failed validation, keyed by their
// JSON name, with the rule each one broke.
type ValidationError struct {
	Fields map[string]string
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
	return "invalid input: " + strings.Join(parts, ", ")
}

func (e *ValidationError) Unwrap() error { return ErrInvalid }
