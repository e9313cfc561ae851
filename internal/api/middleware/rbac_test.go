package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/websap/websap-api/internal/core/domain"
)

func runRBAC(t *testing.T, roles []string, allowed ...string) (int, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if roles != nil {
		c.Set("roles", roles)
	}

	called := false
	mw := RBAC(allowed...)
	handler := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	return rec.Code, called
}

func TestRBAC_AllowedRole(t *testing.T) {
	code, called := runRBAC(t, []string{domain.RoleAdmin}, domain.RoleAdmin, domain.RoleSuperAdmin)
	if !called || code != http.StatusOK {
		t.Fatalf("expected pass, got code=%d called=%v", code, called)
	}
}

func TestRBAC_AnyOfSeveralRoles(t *testing.T) {
	roles := []string{domain.RoleEmployee, domain.RoleSuperAdmin}
	code, called := runRBAC(t, roles, domain.RoleAdmin, domain.RoleSuperAdmin)
	if !called || code != http.StatusOK {
		t.Fatalf("expected pass via second role, got code=%d called=%v", code, called)
	}
}

func TestRBAC_ForbiddenRole(t *testing.T) {
	code, called := runRBAC(t, []string{domain.RoleEmployee}, domain.RoleAdmin)
	if called {
		t.Fatal("next must not run for a forbidden role")
	}
	if code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", code)
	}
}

func TestRBAC_NoRoles(t *testing.T) {
	code, called := runRBAC(t, nil, domain.RoleAdmin)
	if called {
		t.Fatal("next must not run without roles")
	}
	if code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", code)
	}
}
