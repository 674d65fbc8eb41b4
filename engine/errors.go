package engine

import (
	"errors"
	"fmt"
)

// Failure taxonomy for engine operations. Ownership-scoped lookups that miss
// return ErrNotFound whether the entity is absent or owned by someone else;
// the two cases are deliberately indistinguishable to the caller. Any other
// error is a storage failure.
var (
	ErrForbidden = errors.New("forbidden")
	ErrNotFound  = errors.New("not found")
)

// ValidationError reports a missing or malformed field.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func validationf(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}
