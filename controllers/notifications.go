package controllers

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"hall-booking-api/models"
)

// resolveTargetUserID validates the user_id parameter and checks the caller
// may act on it: admins may target anyone, others only themselves.
func resolveTargetUserID(c *gin.Context, requested string) (string, bool) {
	if requested == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "User ID is required"})
		return "", false
	}
	callerID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Authentication required"})
		return "", false
	}
	if !isAdmin(c) && requested != callerID {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Insufficient permissions"})
		return "", false
	}
	return requested, true
}

// GetNotifications lists a user's notifications newest-first, optionally
// filtered by read state. Never returns another user's rows.
func GetNotifications(c *gin.Context) {
	db := getDB()

	userID, ok := resolveTargetUserID(c, strings.TrimSpace(c.Query("user_id")))
	if !ok {
		return
	}

	limit := 20
	if v, err := strconv.Atoi(strings.TrimSpace(c.Query("limit"))); err == nil && v > 0 && v <= 100 {
		limit = v
	}

	q := db.Model(&models.Notification{}).Where("user_id = ?", userID)
	if raw := strings.TrimSpace(c.Query("is_read")); raw != "" {
		switch strings.ToLower(raw) {
		case "true", "1":
			q = q.Where("is_read = 1")
		case "false", "0":
			q = q.Where("is_read = 0")
		default:
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "is_read must be a boolean"})
			return
		}
	}

	var items []models.Notification
	if err := q.Order("create_at DESC").Limit(limit).Find(&items).Error; err != nil {
		log.Printf("list notifications failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": items})
}

type markReadRequest struct {
	UserID          string   `json:"user_id"`
	NotificationIDs []string `json:"notification_ids"`
}

// MarkNotificationsRead flags the given notifications as read. Only rows owned
// by user_id are touched; ids that do not exist or belong to someone else are
// silently skipped. Repeating the call is a no-op.
func MarkNotificationsRead(c *gin.Context) {
	db := getDB()

	var req markReadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid payload"})
		return
	}

	userID, ok := resolveTargetUserID(c, strings.TrimSpace(req.UserID))
	if !ok {
		return
	}
	if len(req.NotificationIDs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Notification IDs are required"})
		return
	}

	if err := db.Model(&models.Notification{}).
		Where("user_id = ? AND notification_id IN ?", userID, req.NotificationIDs).
		Update("is_read", true).Error; err != nil {
		log.Printf("mark notifications read failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
		return
	}

	var updated []models.Notification
	if err := db.Where("user_id = ? AND notification_id IN ?", userID, req.NotificationIDs).
		Order("create_at DESC").Find(&updated).Error; err != nil {
		log.Printf("fetch updated notifications failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Notifications marked as read",
		"data":    updated,
	})
}

// GetNotificationCounter returns the unread count for the badge in the UI.
func GetNotificationCounter(c *gin.Context) {
	db := getDB()

	userID, ok := resolveTargetUserID(c, strings.TrimSpace(c.Query("user_id")))
	if !ok {
		return
	}

	var n int64
	if err := db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = 0", userID).
		Count(&n).Error; err != nil {
		log.Printf("notification counter failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"unread": n}})
}
