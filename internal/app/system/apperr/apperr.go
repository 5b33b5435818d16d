// internal/app/system/apperr/apperr.go

// Package apperr defines the error taxonomy shared by the store and
// service layers. Callers classify failures with errors.Is against the
// sentinel kinds (or errors.As for ValidationError) instead of matching
// message text; the transport layer maps kinds to response codes.
package apperr

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel error kinds.
var (
	// ErrNotFound marks a missing aggregate or embedded element.
	ErrNotFound = errors.New("not found")

	// ErrInvalidArgument marks an unrecognized action or status value.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrLookup marks a failure in a dependent collaborator (e.g. the
	// user directory).
	ErrLookup = errors.New("lookup failed")

	// ErrStore marks an underlying persistence failure.
	ErrStore = errors.New("store failure")
)

// kindError pairs a sentinel kind with an operation-specific message and
// an optional cause. errors.Is(err, kind) and errors.Unwrap both work.
type kindError struct {
	kind  error
	msg   string
	cause error
}

func (e *kindError) Error() string {
	if e.cause != nil {
		return e.msg + ": " + e.cause.Error()
	}
	return e.msg
}

func (e *kindError) Unwrap() []error {
	if e.cause != nil {
		return []error{e.kind, e.cause}
	}
	return []error{e.kind}
}

// NotFoundf returns a NotFound error with a formatted message.
func NotFoundf(format string, args ...any) error {
	return &kindError{kind: ErrNotFound, msg: fmt.Sprintf(format, args...)}
}

// InvalidArgumentf returns an InvalidArgument error with a formatted message.
func InvalidArgumentf(format string, args ...any) error {
	return &kindError{kind: ErrInvalidArgument, msg: fmt.Sprintf(format, args...)}
}

// Lookupf wraps a collaborator failure with a localized message.
func Lookupf(cause error, format string, args ...any) error {
	return &kindError{kind: ErrLookup, msg: fmt.Sprintf(format, args...), cause: cause}
}

// Storef wraps a persistence failure with a localized message.
func Storef(cause error, format string, args ...any) error {
	return &kindError{kind: ErrStore, msg: fmt.Sprintf(format, args...), cause: cause}
}

// ValidationError reports a creation payload with missing or invalid
// required fields.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "invalid payload: missing or invalid fields: " + strings.Join(e.Fields, ", ")
}

// IsNotFound reports whether err is (or wraps) a NotFound error.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsInvalidArgument reports whether err is an InvalidArgument error.
func IsInvalidArgument(err error) bool { return errors.Is(err, ErrInvalidArgument) }

// IsLookup reports whether err is a Lookup error.
func IsLookup(err error) bool { return errors.Is(err, ErrLookup) }

// IsStore reports whether err is a Store error.
func IsStore(err error) bool { return errors.Is(err, ErrStore) }

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
