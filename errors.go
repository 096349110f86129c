// errors are the failures that relational operations can report.  Once a
// relation holds an error, every operation derived from it carries the same
// error and does no work.

package rel

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrNoNames is returned by operations that need at least one field name.
	ErrNoNames = errors.New("rel: no field names given")

	// ErrNilFunc is returned when an extension or key function is nil.
	ErrNilFunc = errors.New("rel: nil function")

	// ErrEmpty is returned by Reduce, Max and Min on an empty relation.
	ErrEmpty = errors.New("rel: empty relation")
)

// MissingFieldError represents an error that occurs when an operation needs
// a field that a record does not have.  Index is the position of the record
// in the relation the operation was applied to.
type MissingFieldError struct {
	Op    string
	Field string
	Index int
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("rel: %s: record %d has no field '%s'", e.Op, e.Index, e.Field)
}

// DuplicateKeyError represents an error that occurs when a mapping is built
// over a key that is not unique.
type DuplicateKeyError struct {
	Key interface{}
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("rel: mapping key %v is not unique", e.Key)
}

// CompareError represents an error that occurs when two values have no
// defined ordering, for example a string and an int.
type CompareError struct {
	A interface{}
	B interface{}
}

func (e *CompareError) Error() string {
	return fmt.Sprintf("rel: cannot order %v (%T) and %v (%T)", e.A, e.A, e.B, e.B)
}

// missing builds a MissingFieldError with a stack trace attached.
func missing(op, field string, i int) error {
	return errors.WithStack(&MissingFieldError{Op: op, Field: field, Index: i})
}

// IsMissingField reports whether err was caused by a missing field.
func IsMissingField(err error) bool {
	_, ok := errors.Cause(err).(*MissingFieldError)
	return ok
}
