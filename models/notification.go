package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Notification struct {
	NotificationID   string     `gorm:"primaryKey;column:notification_id;size:36" json:"notification_id"`
	UserID           string     `gorm:"column:user_id;size:36" json:"user_id"`
	Title            string     `gorm:"column:title" json:"title"`
	Message          string     `gorm:"column:message" json:"message"`
	Type             string     `gorm:"column:type" json:"type"` // info|success|warning|error
	RelatedRequestID *string    `gorm:"column:related_request_id;size:36" json:"related_request_id,omitempty"`
	IsRead           bool       `gorm:"column:is_read;default:false" json:"is_read"`
	CreateAt         time.Time  `gorm:"column:create_at;autoCreateTime" json:"create_at"`
	UpdateAt         *time.Time `gorm:"column:update_at" json:"-"`
}

func (Notification) TableName() string { return "notifications" }

func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	if n.NotificationID == "" {
		n.NotificationID = uuid.NewString()
	}
	return nil
}
