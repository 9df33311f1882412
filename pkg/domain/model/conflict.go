package model

import (
	"errors"
	"fmt"
)

var ErrStoreConflict = errors.New("store conflict")

// ConflictError is a constraint violation reported by the store.
type ConflictError struct {
	Field  string
	Reason string
}

func (e *ConflictError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrStoreConflict
}
