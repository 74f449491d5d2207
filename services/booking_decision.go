package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hall-booking-api/models"
)

var (
	ErrRequestNotFound  = errors.New("booking request not found")
	ErrAlreadyProcessed = errors.New("request has already been processed")
	ErrHallConflict     = errors.New("hall already approved for an overlapping window")
)

// BookingDecisionService owns the pending → approved/rejected transition.
// Both decisions run inside one transaction: a row-locked overlap check, a
// compare-and-swap status update keyed on the pending status, and the
// requester's in-app notification. Concurrent decisions on the same request
// race only up to the CAS; the loser sees ErrAlreadyProcessed.
type BookingDecisionService struct {
	db *gorm.DB
}

func NewBookingDecisionService(db *gorm.DB) *BookingDecisionService {
	return &BookingDecisionService{db: db}
}

// Load fetches a request with its requester and assigned halls.
func (s *BookingDecisionService) Load(id string) (*models.BookingRequest, error) {
	var req models.BookingRequest
	err := s.db.Preload("Halls").Preload("Requester").
		First(&req, "booking_request_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRequestNotFound
	}
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// ValidateTransition rejects any decision on a request that already left the
// pending state, and any target status that is not a decision.
func ValidateTransition(current, next string) error {
	if current != models.StatusPending {
		return ErrAlreadyProcessed
	}
	if next != models.StatusApproved && next != models.StatusRejected {
		return fmt.Errorf("invalid target status %q", next)
	}
	return nil
}

// Approve transitions a pending request to approved. No two approved requests
// may share a hall and an overlapping date/time window; a conflicting approved
// request aborts with ErrHallConflict and no mutation.
func (s *BookingDecisionService) Approve(req *models.BookingRequest) error {
	if err := ValidateTransition(req.Status, models.StatusApproved); err != nil {
		return err
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		conflict, err := s.hallConflictExists(tx, req)
		if err != nil {
			return err
		}
		if conflict {
			return ErrHallConflict
		}
		if err := s.transition(tx, req.BookingRequestID, models.StatusApproved); err != nil {
			return err
		}
		return s.notifyDecision(tx, req, models.StatusApproved)
	})
}

// Reject transitions a pending request to rejected. Structurally the approve
// path minus the overlap check and the email requirement.
func (s *BookingDecisionService) Reject(req *models.BookingRequest) error {
	if err := ValidateTransition(req.Status, models.StatusRejected); err != nil {
		return err
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.transition(tx, req.BookingRequestID, models.StatusRejected); err != nil {
			return err
		}
		return s.notifyDecision(tx, req, models.StatusRejected)
	})
}

// transition is the compare-and-swap write: zero affected rows means another
// decision won the race or the request was never pending.
func (s *BookingDecisionService) transition(tx *gorm.DB, id, next string) error {
	now := time.Now()
	res := tx.Model(&models.BookingRequest{}).
		Where("booking_request_id = ? AND status = ?", id, models.StatusPending).
		Updates(map[string]interface{}{"status": next, "update_at": now})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrAlreadyProcessed
	}
	return nil
}

// hallConflictExists locks the approved rows sharing any of the request's
// halls and reports whether one overlaps the request's date and time window.
func (s *BookingDecisionService) hallConflictExists(tx *gorm.DB, req *models.BookingRequest) (bool, error) {
	hallIDs := make([]string, 0, len(req.Halls))
	for _, h := range req.Halls {
		hallIDs = append(hallIDs, h.HallID)
	}
	if len(hallIDs) == 0 {
		return false, nil
	}

	var count int64
	err := tx.Table("booking_requests AS br").
		Joins("JOIN booking_request_halls AS brh ON brh.booking_request_id = br.booking_request_id").
		Where("brh.hall_id IN ?", hallIDs).
		Where("br.status = ?", models.StatusApproved).
		Where("br.booking_request_id <> ?", req.BookingRequestID).
		Where("br.start_date <= ? AND br.end_date >= ?", req.EndDate, req.StartDate).
		Where("br.start_time < ? AND br.end_time > ?", req.EndTime, req.StartTime).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// notifyDecision records the requester's in-app notification inside the
// decision transaction so a failed write rolls the decision back with it.
func (s *BookingDecisionService) notifyDecision(tx *gorm.DB, req *models.BookingRequest, decision string) error {
	title := "Booking request approved"
	notifType := "success"
	if decision == models.StatusRejected {
		title = "Booking request rejected"
		notifType = "warning"
	}
	id := req.BookingRequestID
	note := models.Notification{
		UserID:           req.RequesterID,
		Title:            title,
		Message:          fmt.Sprintf("Your booking request for %q has been %s.", req.EventName, decision),
		Type:             notifType,
		RelatedRequestID: &id,
	}
	return tx.Create(&note).Error
}
