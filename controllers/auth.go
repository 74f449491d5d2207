package controllers

import (
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"hall-booking-api/config"
	"hall-booking-api/middleware"
	"hall-booking-api/models"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func sessionTTL() time.Duration {
	expireHours, err := strconv.Atoi(os.Getenv("JWT_EXPIRE_HOURS"))
	if err != nil || expireHours <= 0 {
		expireHours = 24
	}
	return time.Duration(expireHours) * time.Hour
}

func secureCookies() bool {
	return os.Getenv("ENVIRONMENT") == "production"
}

// Login verifies credentials and issues the signed session cookie plus the
// isAuthenticated UI hint. Inactive or unverified accounts are refused.
func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Email and password are required"})
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid email or password"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid email or password"})
		return
	}

	if !user.IsActive {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Account is deactivated"})
		return
	}
	if !user.IsEmailVerified {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Email is not verified"})
		return
	}

	ttl := sessionTTL()
	token, err := middleware.NewSessionToken(user, ttl)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create session"})
		return
	}

	maxAge := int(ttl / time.Second)
	c.SetCookie(middleware.SessionCookieName, token, maxAge, "/", "", secureCookies(), true)
	// Readable by the UI; the server never trusts it by itself.
	c.SetCookie(middleware.AuthHintCookieName, "true", maxAge, "/", "", secureCookies(), false)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"data":    user,
	})
}

// Logout clears both session cookies.
func Logout(c *gin.Context) {
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", secureCookies(), true)
	c.SetCookie(middleware.AuthHintCookieName, "", -1, "/", "", secureCookies(), false)

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logged out successfully"})
}

// GetProfile returns the authenticated user's profile.
func GetProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Authentication required"})
		return
	}

	var user models.User
	if err := config.DB.Where("user_id = ?", userID).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": user})
}

// HashPassword hashes a password using bcrypt. Used by the provisioning CLI.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}
