package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type UserRole string

const (
	RoleMember UserRole = "member"
	RoleAdmin  UserRole = "admin"
)

const (
	// DefaultAverageRating is the sentinel average for users with no ratings.
	DefaultAverageRating = 3.0
	// StartingCoins is the balance granted on registration.
	StartingCoins = 50
)

type Location struct {
	Country string `gorm:"not null" json:"country"`
	State   string `gorm:"not null" json:"state"`
	City    string `gorm:"not null" json:"city"`
}

type User struct {
	ID            string                       `gorm:"type:uuid;primary_key" json:"id"`
	Email         string                       `gorm:"uniqueIndex;not null" json:"email"`
	Password      string                       `gorm:"not null" json:"-"`
	Name          string                       `gorm:"not null" json:"name"`
	Phone         string                       `gorm:"not null" json:"phone"`
	Age           int                          `gorm:"not null" json:"age"`
	ProfilePicURL string                       `gorm:"type:varchar(500);default:'default-profile.jpg'" json:"profile_pic_url"`
	Skills        datatypes.JSONSlice[string]  `json:"skills"`
	Location      Location                     `gorm:"embedded;embeddedPrefix:location_" json:"location"`
	Ratings       datatypes.JSONSlice[float64] `json:"ratings"`
	AverageRating float64                      `gorm:"default:3" json:"average_rating"`
	Coins         int                          `gorm:"default:50" json:"coins"`
	Level         int                          `gorm:"default:0" json:"level"`
	Role          UserRole                     `gorm:"type:varchar(20);default:'member'" json:"role"`
	CreatedAt     time.Time                    `json:"created_at"`
	UpdatedAt     time.Time                    `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}
