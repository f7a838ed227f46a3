package xerrors

import (
	"errors"
	"fmt"
)

// Closed set of reconciliation failures plus common fallbacks. Handlers map
// these to HTTP status classes; nothing below this layer knows about HTTP.
var (
	ErrMissingInput   = errors.New("missing input: request carried no usable payload or id")
	ErrRecordNotFound = errors.New("record not found")
)

// Wrap adds context to an error (similar to fmt.Errorf("%w")).
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Is allows checking whether an error is a specific sentinel error.
func Is(err, target error) bool {
	return errors.Is(err, target)
}
