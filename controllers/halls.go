package controllers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"hall-booking-api/models"
)

// GetHalls lists halls, optionally filtered by is_active.
func GetHalls(c *gin.Context) {
	db := getDB()

	q := db.Model(&models.Hall{})
	if raw := strings.TrimSpace(c.Query("is_active")); raw != "" {
		switch strings.ToLower(raw) {
		case "true", "1":
			q = q.Where("is_active = 1")
		case "false", "0":
			q = q.Where("is_active = 0")
		default:
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "is_active must be a boolean"})
			return
		}
	}

	var halls []models.Hall
	if err := q.Order("name ASC").Find(&halls).Error; err != nil {
		log.Printf("list halls failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": halls})
}

type resetHallsRequest struct {
	Halls []struct {
		Name        string   `json:"name" binding:"required"`
		Capacity    int      `json:"capacity" binding:"required"`
		Description string   `json:"description"`
		Location    string   `json:"location"`
		Amenities   []string `json:"amenities"`
	} `json:"halls"`
}

// ResetHalls replaces the hall set wholesale: delete-all then insert, in one
// transaction so a partial failure leaves the previous set intact. An empty
// body installs the fixed default set.
func ResetHalls(c *gin.Context) {
	db := getDB()

	var req resetHallsRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid hall list"})
		return
	}

	halls := models.DefaultHalls()
	if len(req.Halls) > 0 {
		halls = make([]models.Hall, 0, len(req.Halls))
		for _, h := range req.Halls {
			halls = append(halls, models.Hall{
				Name:        h.Name,
				Capacity:    h.Capacity,
				Description: h.Description,
				Location:    h.Location,
				Amenities:   h.Amenities,
				IsActive:    true,
			})
		}
	}
	for i := range halls {
		halls[i].IsActive = true
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		// Join rows would orphan once their halls are gone.
		if err := tx.Where("1 = 1").Delete(&models.BookingRequestHall{}).Error; err != nil {
			return err
		}
		if err := tx.Where("1 = 1").Delete(&models.Hall{}).Error; err != nil {
			return err
		}
		return tx.Create(&halls).Error
	})
	if err != nil {
		log.Printf("hall reset failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Halls reset successfully",
		"data":    halls,
	})
}
