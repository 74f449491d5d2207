package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role values stored in users.role
const (
	RoleAdmin   = "admin"
	RoleFaculty = "faculty"
	RoleClubs   = "clubs"
)

type User struct {
	UserID          string     `gorm:"primaryKey;column:user_id;size:36" json:"user_id"`
	Username        string     `gorm:"column:username;unique" json:"username"`
	Email           string     `gorm:"column:email;unique" json:"email"`
	Password        string     `gorm:"column:password" json:"-"`
	Role            string     `gorm:"column:role" json:"role"` // admin|faculty|clubs
	ClubName        *string    `gorm:"column:club_name" json:"club_name,omitempty"`
	IsActive        bool       `gorm:"column:is_active;default:true" json:"is_active"`
	IsEmailVerified bool       `gorm:"column:is_email_verified;default:false" json:"is_email_verified"`
	CreateAt        time.Time  `gorm:"column:create_at;autoCreateTime" json:"create_at"`
	UpdateAt        *time.Time `gorm:"column:update_at" json:"update_at,omitempty"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.UserID == "" {
		u.UserID = uuid.NewString()
	}
	return nil
}

// ValidRole reports whether r is one of the known roles.
func ValidRole(r string) bool {
	switch r {
	case RoleAdmin, RoleFaculty, RoleClubs:
		return true
	}
	return false
}

// DisplayName returns the name shown in notifications: the club name for club
// accounts, the username otherwise.
func (u *User) DisplayName() string {
	if u.Role == RoleClubs && u.ClubName != nil && *u.ClubName != "" {
		return *u.ClubName
	}
	return u.Username
}
