package models

import (
	"fmt"
	"strings"
)

// ValidationError carries every field violation found in a request.
type ValidationError struct {
	Violations []string
}

func NewValidationError(violations ...string) *ValidationError {
	return &ValidationError{Violations: violations}
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Violations, "; ")
}

// StorageError reports a failed write to the file-storage collaborator.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s failed: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

type NotFoundError struct {
	ID uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("article %d not found", e.ID)
}

// PersistenceError reports a failed database operation.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return "persistence failed: " + e.Err.Error()
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
