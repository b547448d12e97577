package http

import (
	"errors"

	"github.com/suncom1029-bot/ai-todo-manager/internal/summary"
	"github.com/suncom1029-bot/ai-todo-manager/internal/task/repository"
	pkgErrors "github.com/suncom1029-bot/ai-todo-manager/pkg/errors"
	"github.com/suncom1029-bot/ai-todo-manager/pkg/llmprovider"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, summary.ErrInvalidPeriod):
		return pkgErrors.NewHTTPError(400, "period must be day or week")
	case errors.Is(err, repository.ErrSessionExpired):
		return pkgErrors.NewHTTPError(401, "task store session expired, sign in again")
	case errors.Is(err, repository.ErrStoreUnavailable):
		return pkgErrors.NewHTTPError(502, "task store is unavailable, try again shortly")
	case errors.Is(err, llmprovider.ErrRateLimited):
		return pkgErrors.NewHTTPError(429, "the assistant is busy, try again shortly")
	case errors.Is(err, llmprovider.ErrTimeout):
		return pkgErrors.NewHTTPError(504, "the assistant took too long, try again shortly")
	default:
		return pkgErrors.NewHTTPError(500, "something went wrong")
	}
}
