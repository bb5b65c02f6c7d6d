package middleware

import (
	"net/http"
	"strings"

	userDomain "fund-management-backend/internal/domain/user"

	"github.com/labstack/echo/v4"
)

const currentUserKey = "currentUser"

// Identity resolves the caller from the Ax-User-Id header and stores the
// loaded user on the request context. Token issuance and verification live
// upstream; this layer only maps an already-authenticated id to a user row.
func Identity(users userDomain.Repository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID := strings.TrimSpace(c.Request().Header.Get("Ax-User-Id"))
			if userID == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing Ax-User-Id"})
			}
			if !reHex32.MatchString(userID) {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid Ax-User-Id"})
			}
			u, err := users.GetByUserID(c.Request().Context(), userID)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unknown user"})
			}
			if !u.IsActive {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "account is deactivated"})
			}
			c.Set(currentUserKey, u)
			return next(c)
		}
	}
}

// CurrentUser returns the user stored by Identity. Handlers behind the
// middleware may assume a non-nil result.
func CurrentUser(c echo.Context) *userDomain.User {
	u, _ := c.Get(currentUserKey).(*userDomain.User)
	return u
}

// SetCurrentUser injects a user directly, bypassing the header lookup.
// Test-only convenience.
func SetCurrentUser(c echo.Context, u *userDomain.User) { c.Set(currentUserKey, u) }

func gate(allowed func(userDomain.Capability) bool, deny string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			u := CurrentUser(c)
			if u == nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "not authenticated"})
			}
			cap, err := userDomain.CapabilityFor(u.Role)
			if err != nil || !allowed(cap) {
				return c.JSON(http.StatusForbidden, map[string]string{"error": deny})
			}
			return next(c)
		}
	}
}

// RequireReviewer admits country coordinators and above.
func RequireReviewer() echo.MiddlewareFunc {
	return gate(userDomain.Capability.CanReview, "reviewer role required")
}

// RequireDisburser admits fund admins and above.
func RequireDisburser() echo.MiddlewareFunc {
	return gate(userDomain.Capability.CanDisburse, "fund admin role required")
}

// RequireGeneralAdmin admits general admins only.
func RequireGeneralAdmin() echo.MiddlewareFunc {
	return gate(userDomain.Capability.CanManageConfig, "general admin role required")
}
