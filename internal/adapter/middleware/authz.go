package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	memberDomain "sacco-backend/internal/domain/member"
)

// RequireApprover resolves the caller from Ax-Member-Id and rejects anyone
// without the approver capability. The approval and resolution engines trust
// that this check already ran.
func RequireApprover(members memberDomain.Repository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			uid := strings.TrimSpace(c.Request().Header.Get("Ax-Member-Id"))
			if uid == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing Ax-Member-Id"})
			}
			if !reHex32.MatchString(uid) {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid Ax-Member-Id"})
			}

			m, err := members.GetByMemberUID(c.Request().Context(), uid)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unknown member"})
				}
				return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": "member lookup failed"})
			}
			if !m.IsApprover() {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "approver capability required"})
			}

			c.Set("member_uid", uid)
			return next(c)
		}
	}
}

// RequireMember is the weaker guard for routes any known member may call.
func RequireMember(members memberDomain.Repository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			uid := strings.TrimSpace(c.Request().Header.Get("Ax-Member-Id"))
			if uid == "" || !reHex32.MatchString(uid) {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing or invalid Ax-Member-Id"})
			}
			if _, err := members.GetByMemberUID(c.Request().Context(), uid); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unknown member"})
				}
				return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": "member lookup failed"})
			}
			c.Set("member_uid", uid)
			return next(c)
		}
	}
}
