package errors

import (
	"errors"
	"fmt"
)

// ErrValidation is a local, field-scoped validation failure. It is
// raised before any gateway call is made and is rendered inline on the
// offending form field.
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return e.Field + ": " + e.Message
}

// Validation builds a field-scoped validation error.
func Validation(field, message string) *ErrValidation {
	return &ErrValidation{Field: field, Message: message}
}

// AsValidation unwraps err into an *ErrValidation if it is one.
func AsValidation(err error) (*ErrValidation, bool) {
	var ve *ErrValidation
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// ErrNotFound marks a lookup that matched no record. Distinct from a
// gateway failure: the caller renders a placeholder, not an error banner.
var ErrNotFound = errors.New("record not found")

// ErrNotApprovable marks an approval attempt against a record whose
// status no longer admits approval.
var ErrNotApprovable = errors.New("record is not in an approvable status")

// ErrBusy marks a mutation attempted while another one on the same
// record is still in flight.
var ErrBusy = errors.New("another operation is in flight for this record")

// Gatewayf wraps a transport or service failure from a gateway call so
// callers can distinguish it from local validation errors.
func Gatewayf(op string, err error) error {
	return fmt.Errorf("gateway %s: %w", op, err)
}
