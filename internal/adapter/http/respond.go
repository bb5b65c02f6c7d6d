package http

import (
	"net/http"

	"fund-management-backend/internal/domain/apperr"

	"github.com/labstack/echo/v4"
)

// statusFor maps the business-error taxonomy onto HTTP codes. Anything that
// is not a tagged business error is a server fault.
func statusFor(err error) int {
	switch apperr.KindOf(err) {
	case apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindPermission:
		return http.StatusForbidden
	case apperr.KindConflict:
		return http.StatusConflict
	case apperr.KindValidation, apperr.KindInvalidState,
		apperr.KindInsufficientFunds, apperr.KindBlocked:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func respondErr(c echo.Context, err error) error {
	code := statusFor(err)
	if code == http.StatusInternalServerError {
		return c.JSON(code, ErrorResponse{Error: "internal error"})
	}
	return c.JSON(code, ErrorResponse{Error: err.Error()})
}
