package http

import (
	"errors"
	"net/http"

	"mezzo/internal/core/domain/model/order"
	"mezzo/internal/core/ports"
	"mezzo/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func errorJSON(ctx echo.Context, status int, message string) error {
	return ctx.JSON(status, errorResponse{Code: status, Message: message})
}

// commandError maps use case failures to HTTP statuses. Lifecycle rule
// violations are 422 because the request was well-formed but the order's
// current state forbids it.
func (s *Server) commandError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return errorJSON(ctx, http.StatusNotFound, err.Error())

	case errors.Is(err, ports.ErrConcurrentModification):
		return errorJSON(ctx, http.StatusConflict, err.Error())

	case errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, order.ErrTerminalState),
		errors.Is(err, order.ErrNotCancellable),
		errors.Is(err, order.ErrNotPending):
		return errorJSON(ctx, http.StatusUnprocessableEntity, err.Error())

	case errors.Is(err, order.ErrEmptyReason),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return errorJSON(ctx, http.StatusBadRequest, err.Error())

	default:
		s.logger.Error("command failed", "error", err)
		return errorJSON(ctx, http.StatusInternalServerError, "internal error")
	}
}
