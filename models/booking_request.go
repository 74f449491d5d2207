package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Booking request status values
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

type BookingRequest struct {
	BookingRequestID string     `gorm:"primaryKey;column:booking_request_id;size:36" json:"booking_request_id"`
	RequesterID      string     `gorm:"column:requester_id;size:36" json:"requester_id"`
	EventName        string     `gorm:"column:event_name" json:"event_name"`
	StartDate        time.Time  `gorm:"column:start_date" json:"start_date"`
	EndDate          time.Time  `gorm:"column:end_date" json:"end_date"`
	StartTime        string     `gorm:"column:start_time" json:"start_time"` // "HH:MM"
	EndTime          string     `gorm:"column:end_time" json:"end_time"`
	Status           string     `gorm:"column:status;default:pending" json:"status"` // pending|approved|rejected
	CreateAt         time.Time  `gorm:"column:create_at;autoCreateTime" json:"create_at"`
	UpdateAt         *time.Time `gorm:"column:update_at" json:"update_at,omitempty"`

	// Relations
	Requester User   `gorm:"foreignKey:RequesterID;references:UserID" json:"requester,omitempty"`
	Halls     []Hall `gorm:"many2many:booking_request_halls;foreignKey:BookingRequestID;joinForeignKey:BookingRequestID;references:HallID;joinReferences:HallID" json:"halls,omitempty"`
}

// BookingRequestHall is the join row linking a request to one reserved hall.
type BookingRequestHall struct {
	BookingRequestID string `gorm:"primaryKey;column:booking_request_id;size:36" json:"booking_request_id"`
	HallID           string `gorm:"primaryKey;column:hall_id;size:36" json:"hall_id"`
}

func (BookingRequest) TableName() string {
	return "booking_requests"
}

func (BookingRequestHall) TableName() string {
	return "booking_request_halls"
}

func (b *BookingRequest) BeforeCreate(tx *gorm.DB) error {
	if b.BookingRequestID == "" {
		b.BookingRequestID = uuid.NewString()
	}
	return nil
}

// IsPending reports whether the request is still awaiting a decision.
func (b *BookingRequest) IsPending() bool {
	return b.Status == StatusPending
}

// HallNames returns the names of the reserved halls in assignment order.
func (b *BookingRequest) HallNames() []string {
	names := make([]string, 0, len(b.Halls))
	for _, h := range b.Halls {
		names = append(names, h.Name)
	}
	return names
}
