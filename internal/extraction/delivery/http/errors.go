package http

import (
	"errors"

	"github.com/suncom1029-bot/ai-todo-manager/internal/extraction"
	pkgErrors "github.com/suncom1029-bot/ai-todo-manager/pkg/errors"
	"github.com/suncom1029-bot/ai-todo-manager/pkg/llmprovider"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Provider credential and schema failures are server problems, not the
// caller's, so they surface as a generic 500.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, extraction.ErrEmptyInput):
		return pkgErrors.NewHTTPError(400, "text must not be empty")
	case errors.Is(err, extraction.ErrTooShort):
		return pkgErrors.NewHTTPError(422, "text is too short to contain a task")
	case errors.Is(err, extraction.ErrTooLong):
		return pkgErrors.NewHTTPError(422, "text exceeds the 500 character limit")
	case errors.Is(err, extraction.ErrNoMeaningfulContent):
		return pkgErrors.NewHTTPError(422, "text contains no extractable content")
	case errors.Is(err, llmprovider.ErrRateLimited):
		return pkgErrors.NewHTTPError(429, "the assistant is busy, try again shortly")
	case errors.Is(err, llmprovider.ErrTimeout):
		return pkgErrors.NewHTTPError(504, "the assistant took too long, try again shortly")
	default:
		return pkgErrors.NewHTTPError(500, "something went wrong")
	}
}
