package models

import (
	"fmt"
	"sort"
	"strings"
)

// StorageError wraps a storage driver failure (disk full, permission,
// unreadable directory). These must reach the caller: swallowing one
// would turn quota exhaustion into silent data loss.
type StorageError struct {
	Op  string
	Key string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s %q: %s", e.Op, e.Key, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// CorruptRecordError reports stored content that no longer decodes
// into the documented entity shape. The store never produces such
// content itself; reads fail fast rather than defaulting.
type CorruptRecordError struct {
	Key string
	Err error
}

func (e *CorruptRecordError) Error() string {
	return fmt.Sprintf("corrupt record at %q: %s", e.Key, e.Err)
}

func (e *CorruptRecordError) Unwrap() error { return e.Err }

// ValidationError carries per-field messages for a rejected draft.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	sort.Strings(parts)
	return strings.Join(parts, "; ")
}

func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

// NotFoundError is reserved for lookups where absence is an error.
// Collection reads treat absent keys as defaults and participant/note
// updates with unknown ids are silent no-ops, so only explicit
// resource lookups produce it.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Resource, e.ID)
}
