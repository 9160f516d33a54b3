package digests

import "errors"

var (
	// ErrNotFound means the referenced digest, news or favorite is absent or
	// not visible to the caller.
	ErrNotFound = errors.New("not found")
	// ErrForbidden means the caller is authenticated but lacks the required
	// role or ownership.
	ErrForbidden = errors.New("forbidden")
	// ErrConflict means a unique constraint rejected the write, e.g. a
	// duplicate favorite.
	ErrConflict = errors.New("the bookmark already exists")
)

// ValidationError rejects malformed input before any mutation happens.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

func newValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
