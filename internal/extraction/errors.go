package extraction

import "errors"

// Sanitizer rejections. All of these are recoverable locally: the caller
// should re-prompt the user, and no model call is made.
var (
	ErrEmptyInput          = errors.New("input is empty")
	ErrTooShort            = errors.New("input is too short")
	ErrTooLong             = errors.New("input is too long")
	ErrNoMeaningfulContent = errors.New("input has no meaningful content")
)

// IsValidationError reports whether err is a sanitizer rejection.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrEmptyInput) ||
		errors.Is(err, ErrTooShort) ||
		errors.Is(err, ErrTooLong) ||
		errors.Is(err, ErrNoMeaningfulContent)
}
