package repository

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when no row matches a lookup.
	ErrNotFound = errors.New("not found")

	// ErrStorage masks unmapped store failures. The underlying cause is
	// logged at the boundary and never leaks to callers.
	ErrStorage = errors.New("unexpected storage error")
)

// DuplicateError surfaces a uniqueness-constraint violation with the
// store's detail message preserved.
type DuplicateError struct {
	Detail string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("duplicate value: %s", e.Detail)
}

// IsDuplicate reports whether err wraps a uniqueness violation.
func IsDuplicate(err error) bool {
	var dup *DuplicateError
	return errors.As(err, &dup)
}
