package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/dmitrijs2005/todokeeper/internal/common"
)

// Canonical response bodies. Unknown email and wrong password both produce
// detailInvalidCredentials, byte for byte, so callers cannot probe which
// accounts exist.
const (
	detailInvalidCredentials = "Invalid credentials"
	detailDuplicateEmail     = "Email already registered"
	detailTaskNotFound       = "Task not found"
	detailAccessDenied       = "Access denied: user_id mismatch"
	detailStoreUnavailable   = "Database service temporarily unavailable"
	detailInternal           = "Internal server error"
)

// writeError converts a sentinel error from the service layer into the
// contractual HTTP status and body. Internal detail never reaches the
// response; it belongs in logs.
func writeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, common.ErrorValidation):
		return c.JSON(http.StatusUnprocessableEntity, errorResponse{Detail: validationDetail(err)})
	case errors.Is(err, common.ErrorAlreadyExists):
		return c.JSON(http.StatusBadRequest, errorResponse{Detail: detailDuplicateEmail})
	case errors.Is(err, common.ErrorUnauthorized),
		errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrTokenExpired):
		return c.JSON(http.StatusUnauthorized, errorResponse{Detail: detailInvalidCredentials})
	case errors.Is(err, common.ErrorForbidden):
		return c.JSON(http.StatusForbidden, errorResponse{Detail: detailAccessDenied})
	case errors.Is(err, common.ErrorNotFound):
		return c.JSON(http.StatusNotFound, errorResponse{Detail: detailTaskNotFound})
	case errors.Is(err, common.ErrorUnavailable):
		return c.JSON(http.StatusServiceUnavailable, errorResponse{Detail: detailStoreUnavailable})
	default:
		return c.JSON(http.StatusInternalServerError, errorResponse{Detail: detailInternal})
	}
}

// validationDetail strips the sentinel prefix so the body carries only the
// human-readable part, e.g. "password must contain at least one digit".
func validationDetail(err error) string {
	msg := err.Error()
	if detail, ok := strings.CutPrefix(msg, common.ErrorValidation.Error()+": "); ok {
		return detail
	}
	return msg
}
