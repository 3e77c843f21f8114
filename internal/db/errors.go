package db

import (
	"errors"
	"fmt"
	"strings"
)

// Error kinds surfaced by the store. Callers test them with errors.Is.
var (
	ErrValidation  = errors.New("validation failed")
	ErrNotFound    = errors.New("record not found")
	ErrReference   = errors.New("referenced record does not exist")
	ErrPersistence = errors.New("persistence failure")
)

// ValidationError names the fields that are missing or malformed.
type ValidationError struct {
	Entity string
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: invalid fields: %s", e.Entity, strings.Join(e.Fields, ", "))
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func notFound(entity string, id int64) error {
	return fmt.Errorf("%s %d: %w", entity, id, ErrNotFound)
}

func dangling(entity string, id int64) error {
	return fmt.Errorf("%s %d: %w", entity, id, ErrReference)
}

// classify leaves typed errors alone and marks everything else as a persistence failure.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}
	for _, kind := range []error{ErrValidation, ErrNotFound, ErrReference, ErrPersistence} {
		if errors.Is(err, kind) {
			return err
		}
	}
	return fmt.Errorf("%s: %w: %w", op, ErrPersistence, err)
}

func required(entity string, fields map[string]string) error {
	var missing []string
	for _, name := range sortedKeys(fields) {
		if strings.TrimSpace(fields[name]) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Entity: entity, Fields: missing}
	}
	return nil
}
