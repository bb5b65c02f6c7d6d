package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	userDomain "fund-management-backend/internal/domain/user"
	"fund-management-backend/internal/testutil/usermock"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

func identityEcho(users userDomain.Repository, extra ...echo.MiddlewareFunc) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	mws := append([]echo.MiddlewareFunc{Identity(users)}, extra...)
	e.GET("/whoami", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"user": CurrentUser(c).UserID})
	}, mws...)
	return e
}

func identityReq(e *echo.Echo, userID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if userID != "" {
		req.Header.Set("Ax-User-Id", userID)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func activeUserRepo(role userDomain.Role, active bool) *usermock.Repo {
	return &usermock.Repo{
		GetByUserIDFn: func(ctx context.Context, userID string) (*userDomain.User, error) {
			return &userDomain.User{UserID: userID, Role: role, IsActive: active}, nil
		},
	}
}

func TestIdentity_LoadsUser(t *testing.T) {
	e := identityEcho(activeUserRepo(userDomain.RoleMember, true))

	rec := identityReq(e, strings.Repeat("a", 32))
	if rec.Code != http.StatusOK {
		t.Fatalf("code = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), strings.Repeat("a", 32)) {
		t.Fatalf("body = %s", rec.Body.String())
	}
}

func TestIdentity_MissingHeader(t *testing.T) {
	e := identityEcho(activeUserRepo(userDomain.RoleMember, true))

	rec := identityReq(e, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("code = %d, want 401", rec.Code)
	}
}

func TestIdentity_MalformedHeader(t *testing.T) {
	e := identityEcho(activeUserRepo(userDomain.RoleMember, true))

	rec := identityReq(e, "not-hex")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("code = %d, want 401", rec.Code)
	}
}

func TestIdentity_UnknownUser(t *testing.T) {
	users := &usermock.Repo{
		GetByUserIDFn: func(ctx context.Context, userID string) (*userDomain.User, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	e := identityEcho(users)

	rec := identityReq(e, strings.Repeat("a", 32))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("code = %d, want 401", rec.Code)
	}
}

func TestIdentity_InactiveUser(t *testing.T) {
	e := identityEcho(activeUserRepo(userDomain.RoleMember, false))

	rec := identityReq(e, strings.Repeat("a", 32))
	if rec.Code != http.StatusForbidden {
		t.Fatalf("code = %d, want 403", rec.Code)
	}
}

func TestRoleGates(t *testing.T) {
	cases := []struct {
		name string
		gate echo.MiddlewareFunc
		role userDomain.Role
		want int
	}{
		{"member blocked from review", RequireReviewer(), userDomain.RoleMember, http.StatusForbidden},
		{"coordinator may review", RequireReviewer(), userDomain.RoleCountryCoordinator, http.StatusOK},
		{"coordinator blocked from disbursing", RequireDisburser(), userDomain.RoleCountryCoordinator, http.StatusForbidden},
		{"fund admin may disburse", RequireDisburser(), userDomain.RoleFundAdmin, http.StatusOK},
		{"fund admin blocked from config", RequireGeneralAdmin(), userDomain.RoleFundAdmin, http.StatusForbidden},
		{"general admin may manage config", RequireGeneralAdmin(), userDomain.RoleGeneralAdmin, http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := identityEcho(activeUserRepo(tc.role, true), tc.gate)
			rec := identityReq(e, strings.Repeat("a", 32))
			if rec.Code != tc.want {
				t.Fatalf("code = %d, want %d", rec.Code, tc.want)
			}
		})
	}
}
