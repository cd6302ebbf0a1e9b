package model

import (
	"time"

	"gorm.io/datatypes"
)

// UserModel maps the subset of the users table this service touches:
// the rating history and the coin balance.
type UserModel struct {
	ID            string                       `gorm:"type:uuid;primary_key" json:"id"`
	Email         string                       `json:"email"`
	Name          string                       `json:"name"`
	Ratings       datatypes.JSONSlice[float64] `json:"ratings"`
	AverageRating float64                      `gorm:"default:3" json:"average_rating"`
	Coins         int                          `gorm:"default:50" json:"coins"`
	CreatedAt     time.Time                    `json:"created_at"`
	UpdatedAt     time.Time                    `json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}
