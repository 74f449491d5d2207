package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"hall-booking-api/models"
)

func newGuardedRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(SessionGuard(DefaultProtectedPrefixes()))

	ok := func(c *gin.Context) { c.String(http.StatusOK, "ok") }
	router.GET("/", ok)
	router.GET("/login", ok)
	router.GET("/admin/dashboard", ok)
	router.GET("/faculty/dashboard", ok)
	router.GET("/club/dashboard", ok)
	router.GET("/api/health", ok)
	return router
}

func sessionFor(t *testing.T, role string) *http.Cookie {
	t.Helper()
	token, err := NewSessionToken(models.User{
		UserID:   "u1",
		Username: "tester",
		Email:    "tester@campus.edu",
		Role:     role,
	}, time.Hour)
	if err != nil {
		t.Fatalf("failed to sign session token: %v", err)
	}
	return &http.Cookie{Name: SessionCookieName, Value: token}
}

func doGet(router *gin.Engine, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGuardPublicPathsPassWithoutSession(t *testing.T) {
	t.Setenv("JWT_SECRET", "guard-test-secret")
	router := newGuardedRouter(t)

	for _, path := range []string{"/", "/login", "/api/health"} {
		w := doGet(router, path)
		if w.Code != http.StatusOK {
			t.Fatalf("GET %s = %d, want 200", path, w.Code)
		}
	}
}

func TestGuardRedirectsAnonymousToLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "guard-test-secret")
	router := newGuardedRouter(t)

	for _, path := range []string{"/admin/dashboard", "/faculty/dashboard", "/club/dashboard"} {
		w := doGet(router, path)
		if w.Code != http.StatusFound {
			t.Fatalf("GET %s = %d, want 302", path, w.Code)
		}
		if loc := w.Header().Get("Location"); loc != "/login" {
			t.Fatalf("GET %s redirected to %s, want /login", path, loc)
		}
	}
}

func TestGuardFailsClosedOnForgedSession(t *testing.T) {
	t.Setenv("JWT_SECRET", "guard-test-secret")
	router := newGuardedRouter(t)

	// Signed with a different key: an attacker minting their own role claim.
	t.Setenv("JWT_SECRET", "attacker-secret")
	forged := sessionFor(t, models.RoleAdmin)
	t.Setenv("JWT_SECRET", "guard-test-secret")

	w := doGet(router, "/admin/dashboard", forged)
	if w.Code != http.StatusFound {
		t.Fatalf("forged session got %d, want 302", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/login" {
		t.Fatalf("forged session redirected to %s, want /login", loc)
	}
}

func TestGuardSendsWrongRoleToOwnDashboard(t *testing.T) {
	t.Setenv("JWT_SECRET", "guard-test-secret")
	router := newGuardedRouter(t)

	cases := []struct {
		role string
		path string
		want string
	}{
		{models.RoleFaculty, "/admin/dashboard", "/faculty/dashboard"},
		{models.RoleClubs, "/admin/dashboard", "/club/dashboard"},
		{models.RoleClubs, "/faculty/dashboard", "/club/dashboard"},
		{models.RoleAdmin, "/club/dashboard", "/admin/dashboard"},
		{"intruder", "/admin/dashboard", "/login"},
	}

	for _, tc := range cases {
		w := doGet(router, tc.path, sessionFor(t, tc.role))
		if w.Code != http.StatusFound {
			t.Fatalf("role %s on %s got %d, want 302", tc.role, tc.path, w.Code)
		}
		if loc := w.Header().Get("Location"); loc != tc.want {
			t.Fatalf("role %s on %s redirected to %s, want %s", tc.role, tc.path, loc, tc.want)
		}
	}
}

func TestGuardAllowsMatchingRole(t *testing.T) {
	t.Setenv("JWT_SECRET", "guard-test-secret")
	router := newGuardedRouter(t)

	cases := []struct {
		role string
		path string
	}{
		{models.RoleAdmin, "/admin/dashboard"},
		{models.RoleFaculty, "/faculty/dashboard"},
		{models.RoleClubs, "/club/dashboard"},
	}

	for _, tc := range cases {
		w := doGet(router, tc.path, sessionFor(t, tc.role))
		if w.Code != http.StatusOK {
			t.Fatalf("role %s on %s got %d, want 200", tc.role, tc.path, w.Code)
		}
	}
}

func TestRequireRoleBlocksOtherRoles(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/admin-only",
		func(c *gin.Context) { c.Set("role", models.RoleFaculty) },
		RequireRole(models.RoleAdmin),
		func(c *gin.Context) { c.String(http.StatusOK, "ok") },
	)

	w := doGet(router, "/admin-only")
	if w.Code != http.StatusForbidden {
		t.Fatalf("RequireRole let a faculty session through: %d", w.Code)
	}
}
