package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"pasteleria/internal/core/application/usecases/queries"
	"pasteleria/internal/core/domain/model/kernel"
	"pasteleria/internal/pkg/errs"
	"pasteleria/internal/pkg/token"
)

// writeError maps application errors to HTTP status codes and writes the
// JSON error body. Conflict covers every "valid request, wrong moment"
// case: illegal transitions, frozen assignments, unavailable products,
// and lost optimistic concurrency races.
func writeError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, queries.ErrInvalidCredentials),
		errors.Is(err, token.ErrTokenIsInvalid):
		status = http.StatusUnauthorized

	case errors.Is(err, errs.ErrForbidden):
		status = http.StatusForbidden

	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound

	case errors.Is(err, errs.ErrIllegalTransition),
		errors.Is(err, errs.ErrInvalidState),
		errors.Is(err, errs.ErrObjectUnavailable),
		errors.Is(err, errs.ErrVersionIsInvalid):
		status = http.StatusConflict

	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, kernel.ErrUUIDIsNotConstructed):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, Error{
		Code:    status,
		Message: err.Error(),
	})
}

// badRequest writes a 400 response with the given message.
func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
