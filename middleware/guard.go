package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hall-booking-api/models"
)

// RoutePrefix pairs a protected page prefix with the roles allowed under it.
type RoutePrefix struct {
	Prefix string
	Roles  []string
}

// DefaultProtectedPrefixes maps each role's page tree. Order matters: the
// first matching prefix decides.
func DefaultProtectedPrefixes() []RoutePrefix {
	return []RoutePrefix{
		{Prefix: "/admin", Roles: []string{models.RoleAdmin}},
		{Prefix: "/faculty", Roles: []string{models.RoleFaculty}},
		{Prefix: "/club", Roles: []string{models.RoleClubs}},
	}
}

// DashboardPath returns the canonical dashboard for a role, or /login for an
// unknown role.
func DashboardPath(role string) string {
	switch role {
	case models.RoleAdmin:
		return "/admin/dashboard"
	case models.RoleFaculty:
		return "/faculty/dashboard"
	case models.RoleClubs:
		return "/club/dashboard"
	}
	return "/login"
}

func isPublicPath(path string) bool {
	if path == "/" || path == "/login" {
		return true
	}
	// API routes carry their own auth middleware; operational endpoints are
	// token-gated or read-only.
	for _, prefix := range []string{"/api/", "/metrics", "/monitor", "/logs"} {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// SessionGuard gates page routes by role. It validates the signed session
// cookie; a missing or unverifiable session fails closed to /login. A valid
// session with a role outside the allowed set for the matched prefix is sent
// to that role's own dashboard, never to the requested page.
func SessionGuard(prefixes []RoutePrefix) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if isPublicPath(path) {
			c.Next()
			return
		}

		cookie, err := c.Cookie(SessionCookieName)
		if err != nil || cookie == "" {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		claims, err := ParseSessionToken(cookie)
		if err != nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		for _, p := range prefixes {
			if !strings.HasPrefix(path, p.Prefix) {
				continue
			}
			allowed := false
			for _, role := range p.Roles {
				if claims.Role == role {
					allowed = true
					break
				}
			}
			if !allowed {
				c.Redirect(http.StatusFound, DashboardPath(claims.Role))
				c.Abort()
				return
			}
			break // first matching prefix decides
		}

		c.Set("userID", claims.UserID)
		c.Set("role", claims.Role)
		c.Next()
	}
}
