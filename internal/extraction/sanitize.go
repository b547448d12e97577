package extraction

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Input bounds enforced by the sanitizer.
const (
	MinInputLength = 2
	MaxInputLength = 500
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// Sanitize normalizes raw user text and rejects obviously unusable input
// before a model call is spent. Checks short-circuit in a fixed order:
// empty, too short, too long, no meaningful content.
func Sanitize(raw string) (string, error) {
	text := whitespaceRe.ReplaceAllString(strings.TrimSpace(raw), " ")

	if text == "" {
		return "", ErrEmptyInput
	}

	length := utf8.RuneCountInString(text)
	if length < MinInputLength {
		return "", ErrTooShort
	}
	if length > MaxInputLength {
		return "", ErrTooLong
	}

	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return text, nil
		}
	}
	return "", ErrNoMeaningfulContent
}
