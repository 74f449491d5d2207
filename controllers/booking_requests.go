package controllers

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"hall-booking-api/models"
	"hall-booking-api/monitor"
	"hall-booking-api/services"
	"hall-booking-api/utils"
)

type createBookingRequest struct {
	EventName string   `json:"event_name" binding:"required"`
	StartDate string   `json:"start_date" binding:"required"` // "2006-01-02"
	EndDate   string   `json:"end_date" binding:"required"`
	StartTime string   `json:"start_time" binding:"required"` // "15:04"
	EndTime   string   `json:"end_time" binding:"required"`
	HallIDs   []string `json:"hall_ids" binding:"required,min=1"`
}

// CreateBookingRequest files a pending reservation for one or more halls.
func CreateBookingRequest(c *gin.Context) {
	db := getDB()

	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Authentication required"})
		return
	}

	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Event name, dates, times and hall IDs are required"})
		return
	}

	startDate, err1 := time.ParseInLocation("2006-01-02", req.StartDate, time.Local)
	endDate, err2 := time.ParseInLocation("2006-01-02", req.EndDate, time.Local)
	if err1 != nil || err2 != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Dates must use the YYYY-MM-DD format"})
		return
	}

	if ok, msg := utils.ValidateEventWindow(startDate, endDate, req.StartTime, req.EndTime); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": msg})
		return
	}

	var halls []models.Hall
	if err := db.Where("hall_id IN ? AND is_active = 1", req.HallIDs).Find(&halls).Error; err != nil {
		log.Printf("hall lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
		return
	}
	if len(halls) != len(req.HallIDs) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "One or more halls not found or inactive"})
		return
	}

	booking := models.BookingRequest{
		RequesterID: userID,
		EventName:   strings.TrimSpace(req.EventName),
		StartDate:   startDate,
		EndDate:     endDate,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Status:      models.StatusPending,
		Halls:       halls,
	}

	if err := db.Create(&booking).Error; err != nil {
		log.Printf("create booking request failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Booking request submitted successfully",
		"data":    booking,
	})
}

// GetBookingRequests lists requests: all of them for admins (optionally
// filtered by status), the caller's own otherwise.
func GetBookingRequests(c *gin.Context) {
	db := getDB()

	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Authentication required"})
		return
	}

	q := db.Model(&models.BookingRequest{}).Preload("Halls").Preload("Requester")
	if isAdmin(c) {
		if status := strings.TrimSpace(c.Query("status")); status != "" {
			q = q.Where("status = ?", status)
		}
	} else {
		q = q.Where("requester_id = ?", userID)
	}

	var requests []models.BookingRequest
	if err := q.Order("create_at DESC").Find(&requests).Error; err != nil {
		log.Printf("list booking requests failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": requests})
}

// GetBookingRequest returns one request; non-admins may only read their own.
func GetBookingRequest(c *gin.Context) {
	db := getDB()

	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Authentication required"})
		return
	}

	var req models.BookingRequest
	err := db.Preload("Halls").Preload("Requester").
		First(&req, "booking_request_id = ?", c.Param("id")).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Booking request not found"})
		return
	}
	if err != nil {
		log.Printf("get booking request failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
		return
	}

	if !isAdmin(c) && req.RequesterID != userID {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Insufficient permissions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": req})
}

// ApproveBookingRequest transitions a pending request to approved and queues
// the requester's approval email. The email is best-effort: its outcome never
// changes the response.
func ApproveBookingRequest(c *gin.Context) {
	svc := services.NewBookingDecisionService(getDB())

	req, err := svc.Load(c.Param("id"))
	if err != nil {
		respondDecisionError(c, err)
		return
	}

	if err := svc.Approve(req); err != nil {
		respondDecisionError(c, err)
		return
	}

	monitor.BookingDecisions.WithLabelValues(models.StatusApproved).Inc()

	if mailOutbox != nil && req.Requester.Email != "" {
		mailOutbox.Enqueue(c.Request.Context(), services.NewApprovalEmailJob(req))
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Booking request approved successfully"})
}

// RejectBookingRequest transitions a pending request to rejected. No email is
// sent; the requester still gets the in-app notification.
func RejectBookingRequest(c *gin.Context) {
	svc := services.NewBookingDecisionService(getDB())

	req, err := svc.Load(c.Param("id"))
	if err != nil {
		respondDecisionError(c, err)
		return
	}

	if err := svc.Reject(req); err != nil {
		respondDecisionError(c, err)
		return
	}

	monitor.BookingDecisions.WithLabelValues(models.StatusRejected).Inc()

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Booking request rejected successfully"})
}

func respondDecisionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrRequestNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Booking request not found"})
	case errors.Is(err, services.ErrAlreadyProcessed):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Request has already been processed"})
	case errors.Is(err, services.ErrHallConflict):
		c.JSON(http.StatusConflict, gin.H{"success": false, "message": "Hall is already booked for an overlapping time window"})
	default:
		log.Printf("booking decision failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
	}
}
