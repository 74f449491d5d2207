package controllers

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"hall-booking-api/models"
)

type adminAnalytics struct {
	Stats          adminStats              `json:"stats"`
	TodayEvents    []models.BookingRequest `json:"todayEvents"`
	RecentRequests []models.BookingRequest `json:"recentRequests"`
}

type adminStats struct {
	PendingRequests int64  `json:"pending_requests"`
	ApprovedToday   int64  `json:"approved_today"`
	TotalToday      int64  `json:"total_today"`
	TotalRequests   int64  `json:"total_requests"` // within the selected period
	TotalHalls      int64  `json:"total_halls"`
	Period          string `json:"period"`
}

func periodStart(period string, now time.Time) (time.Time, string) {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch strings.ToLower(strings.TrimSpace(period)) {
	case "week":
		return midnight.AddDate(0, 0, -7), "week"
	case "month":
		return midnight.AddDate(0, -1, 0), "month"
	default:
		return midnight, "today"
	}
}

// GetAdminAnalytics produces the admin dashboard snapshot. Each count is an
// independent query; under concurrent writes the numbers may disagree by a
// small margin, which is fine for a dashboard. The snapshot is cached in
// Redis for a short TTL.
func GetAdminAnalytics(c *gin.Context) {
	db := getDB()
	now := time.Now()
	since, period := periodStart(c.Query("period"), now)
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	cacheKey := "analytics:admin:" + period
	var snapshot adminAnalytics
	if analyticsCache.Get(c.Request.Context(), cacheKey, &snapshot) {
		c.JSON(http.StatusOK, gin.H{"success": true, "data": snapshot})
		return
	}

	snapshot.Stats.Period = period

	steps := []struct {
		name string
		run  func() error
	}{
		{"pending count", func() error {
			return db.Model(&models.BookingRequest{}).
				Where("status = ?", models.StatusPending).
				Count(&snapshot.Stats.PendingRequests).Error
		}},
		{"approved today count", func() error {
			return db.Model(&models.BookingRequest{}).
				Where("status = ? AND start_date <= ? AND end_date >= ?",
					models.StatusApproved, midnight, midnight).
				Count(&snapshot.Stats.ApprovedToday).Error
		}},
		{"created today count", func() error {
			return db.Model(&models.BookingRequest{}).
				Where("create_at >= ?", midnight).
				Count(&snapshot.Stats.TotalToday).Error
		}},
		{"period count", func() error {
			return db.Model(&models.BookingRequest{}).
				Where("create_at >= ?", since).
				Count(&snapshot.Stats.TotalRequests).Error
		}},
		{"hall count", func() error {
			return db.Model(&models.Hall{}).Count(&snapshot.Stats.TotalHalls).Error
		}},
		{"today events", func() error {
			return db.Preload("Halls").
				Where("status = ? AND start_date <= ? AND end_date >= ?",
					models.StatusApproved, midnight, midnight).
				Order("start_time ASC").
				Find(&snapshot.TodayEvents).Error
		}},
		{"recent requests", func() error {
			return db.Preload("Halls").Preload("Requester").
				Order("create_at DESC").Limit(5).
				Find(&snapshot.RecentRequests).Error
		}},
	}
	for _, step := range steps {
		if err := step.run(); err != nil {
			log.Printf("admin analytics %s failed: %v", step.name, err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
			return
		}
	}

	analyticsCache.Set(c.Request.Context(), cacheKey, snapshot)

	c.JSON(http.StatusOK, gin.H{"success": true, "data": snapshot})
}

// GetClubAnalytics summarizes the authenticated club account's own requests.
// The flat response shape matches what the club dashboard consumes.
func GetClubAnalytics(c *gin.Context) {
	db := getDB()

	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Authentication required"})
		return
	}

	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var total, approved, pending, upcoming int64
	steps := []struct {
		name string
		run  func() error
	}{
		{"total", func() error {
			return db.Model(&models.BookingRequest{}).
				Where("requester_id = ?", userID).Count(&total).Error
		}},
		{"approved", func() error {
			return db.Model(&models.BookingRequest{}).
				Where("requester_id = ? AND status = ?", userID, models.StatusApproved).
				Count(&approved).Error
		}},
		{"pending", func() error {
			return db.Model(&models.BookingRequest{}).
				Where("requester_id = ? AND status = ?", userID, models.StatusPending).
				Count(&pending).Error
		}},
		{"upcoming", func() error {
			return db.Model(&models.BookingRequest{}).
				Where("requester_id = ? AND status = ? AND end_date >= ?",
					userID, models.StatusApproved, midnight).
				Count(&upcoming).Error
		}},
	}
	for _, step := range steps {
		if err := step.run(); err != nil {
			log.Printf("club analytics %s failed: %v", step.name, err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"totalRequests":    total,
		"approvedRequests": approved,
		"pendingRequests":  pending,
		"upcomingEvents":   upcoming,
	})
}
