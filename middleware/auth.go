package middleware

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"hall-booking-api/config"
	"hall-booking-api/models"
)

// SessionCookieName holds the signed session token. AuthHintCookieName is a
// plain "true" flag the UI reads to decide whether to render logged-in chrome;
// it is never trusted by the server on its own.
const (
	SessionCookieName  = "session"
	AuthHintCookieName = "isAuthenticated"
)

type Claims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

func jwtSecret() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

// ParseSessionToken verifies the signature and expiry of a session token and
// returns its claims.
func ParseSessionToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return jwtSecret(), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}

// NewSessionToken signs a session token for the given user.
func NewSessionToken(user models.User, ttl time.Duration) (string, error) {
	claims := Claims{
		UserID:   user.UserID,
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret())
}

// sessionTokenFrom extracts the session token from the session cookie or, for
// non-browser clients, from a Bearer authorization header.
func sessionTokenFrom(c *gin.Context) string {
	if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie != "" {
		return cookie
	}
	authHeader := c.GetHeader("Authorization")
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString != authHeader {
		return tokenString
	}
	return ""
}

// AuthMiddleware validates the session token on API routes. Every /api route
// except login runs through here; no handler relies on the route being "behind
// the page guard".
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := sessionTokenFrom(c)
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Authentication required"})
			c.Abort()
			return
		}

		claims, err := ParseSessionToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid or expired session"})
			c.Abort()
			return
		}

		// Check the account still exists and is active
		var user models.User
		if err := config.DB.Where("user_id = ? AND is_active = 1", claims.UserID).First(&user).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "User not found"})
			c.Abort()
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("username", claims.Username)
		c.Set("email", claims.Email)
		c.Set("role", claims.Role)

		c.Next()
	}
}

// RequireRole checks if the authenticated user has one of the given roles.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, exists := c.Get("role")
		if !exists {
			c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Role not found"})
			c.Abort()
			return
		}

		userRole, _ := v.(string)
		allowed := false
		for _, role := range roles {
			if userRole == role {
				allowed = true
				break
			}
		}

		if !allowed {
			c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Insufficient permissions"})
			c.Abort()
			return
		}

		c.Next()
	}
}
