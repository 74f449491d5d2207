package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Hall struct {
	HallID      string   `gorm:"primaryKey;column:hall_id;size:36" json:"hall_id"`
	Name        string   `gorm:"column:name" json:"name"`
	Capacity    int      `gorm:"column:capacity" json:"capacity"`
	Description string   `gorm:"column:description" json:"description"`
	Location    string   `gorm:"column:location" json:"location"`
	Amenities   []string `gorm:"column:amenities;type:json;serializer:json" json:"amenities"`
	IsActive    bool     `gorm:"column:is_active;default:true" json:"is_active"`
}

func (Hall) TableName() string {
	return "halls"
}

func (h *Hall) BeforeCreate(tx *gorm.DB) error {
	if h.HallID == "" {
		h.HallID = uuid.NewString()
	}
	return nil
}

// DefaultHalls is the fixed set installed by the administrative reset when no
// explicit list is given.
func DefaultHalls() []Hall {
	return []Hall{
		{Name: "CV Raman", Capacity: 200, Location: "Block A, Ground Floor", Amenities: []string{"projector", "audio", "ac"}},
		{Name: "Homi Bhabha", Capacity: 150, Location: "Block A, First Floor", Amenities: []string{"projector", "ac"}},
		{Name: "Vikram Sarabhai", Capacity: 120, Location: "Block B, Ground Floor", Amenities: []string{"projector", "audio"}},
		{Name: "APJ Abdul Kalam", Capacity: 300, Location: "Main Auditorium", Amenities: []string{"projector", "audio", "ac", "stage"}},
	}
}
