// Package problem turns service errors into huma status errors.
package problem

import (
	"errors"
	"strconv"

	"docstore/internal/domain"
	"docstore/internal/utils/logger"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

// From maps the error kind to a status. Unknown errors are logged and
// reported as 500 without their message.
func From(log *slog.Logger, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return huma.Error404NotFound(err.Error())
	case errors.Is(err, domain.ErrConflict):
		return huma.Error409Conflict(err.Error())
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrInvalidReference):
		return huma.Error400BadRequest(err.Error())
	}

	log.Error("request failed", logger.Err(err))
	return huma.Error500InternalServerError("internal error")
}

// ID parses a path identifier. A value that is not a positive int64 cannot
// name a stored row, so it is reported with the entity's not-found error.
func ID(raw string, notFound error) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, huma.Error404NotFound(notFound.Error())
	}
	return id, nil
}
