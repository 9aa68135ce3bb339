// Package task holds the in-memory task list and its ordering rules.
package task

import (
	"fmt"
	"strings"
)

// Importance represents a task importance level.
type Importance string

const (
	ImportanceHigh   Importance = "HIGH"
	ImportanceMedium Importance = "MEDIUM"
	ImportanceLow    Importance = "LOW"
)

// Rank returns the display-sort rank for an importance level.
// HIGH sorts first, LOW last.
func (i Importance) Rank() int {
	switch i {
	case ImportanceHigh:
		return 0
	case ImportanceMedium:
		return 1
	case ImportanceLow:
		return 2
	default:
		return 3
	}
}

// Valid reports whether i is one of the three canonical levels.
func (i Importance) Valid() bool {
	switch i {
	case ImportanceHigh, ImportanceMedium, ImportanceLow:
		return true
	}
	return false
}

// ParseImportance maps user input to a canonical importance level.
// Single-letter and full-word forms are accepted, case-insensitively.
func ParseImportance(s string) (Importance, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "h", "high":
		return ImportanceHigh, nil
	case "m", "med", "medium":
		return ImportanceMedium, nil
	case "l", "low":
		return ImportanceLow, nil
	}
	return "", &ValidationError{
		Field: "importance",
		Err:   fmt.Errorf("unknown importance %q, must be one of: high, medium, low", s),
	}
}

// Task is a single to-do entry: a description plus an importance level.
type Task struct {
	Description string
	Importance  Importance
}

// ValidationError reports user input that fails a store precondition.
type ValidationError struct {
	Field string // field that failed the check
	Err   error  // underlying error
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NotFoundError reports a delete target that does not exist.
type NotFoundError struct {
	Index int // the 1-based display index that was requested
	Count int // number of tasks in the store at the time
}

func (e *NotFoundError) Error() string {
	if e.Count == 0 {
		return "no tasks to delete"
	}
	return fmt.Sprintf("no task numbered %d, must be between 1 and %d", e.Index, e.Count)
}
