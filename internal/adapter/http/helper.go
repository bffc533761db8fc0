package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	approvalDomain "sacco-backend/internal/domain/approval"
	invDomain "sacco-backend/internal/domain/investment"
)

// ---- helpers ----

// writeDomainErr maps the error taxonomy onto HTTP codes. Store failures are
// logged and returned as an opaque 500.
func writeDomainErr(c echo.Context, err error) error {
	switch {
	case errors.Is(err, approvalDomain.ErrNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	case errors.Is(err, approvalDomain.ErrInvalidInput):
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	case errors.Is(err, invDomain.ErrAlreadyResolved):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	default:
		log.Printf("http: %s %s failed: %v", c.Request().Method, c.Path(), err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}

// callerUID returns the authenticated member uid stashed by the middleware.
func callerUID(c echo.Context) string {
	if v, ok := c.Get("member_uid").(string); ok {
		return v
	}
	return ""
}

