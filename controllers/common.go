package controllers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"hall-booking-api/config"
	"hall-booking-api/models"
	"hall-booking-api/services"
)

var (
	mailOutbox     *services.MailOutbox
	analyticsCache *services.AnalyticsCache
)

// Init wires the shared services the handlers dispatch to. Either argument may
// be nil; the corresponding feature degrades (no email dispatch / no caching).
func Init(outbox *services.MailOutbox, cache *services.AnalyticsCache) {
	mailOutbox = outbox
	analyticsCache = cache
}

func getDB() *gorm.DB { return config.DB }

func currentUserID(c *gin.Context) (string, bool) {
	if v, ok := c.Get("userID"); ok {
		if id, ok := v.(string); ok && id != "" {
			return id, true
		}
	}
	return "", false
}

func currentRole(c *gin.Context) (string, bool) {
	if v, ok := c.Get("role"); ok {
		if role, ok := v.(string); ok && role != "" {
			return role, true
		}
	}
	return "", false
}

func isAdmin(c *gin.Context) bool {
	role, ok := currentRole(c)
	return ok && role == models.RoleAdmin
}
