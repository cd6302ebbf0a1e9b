package model

import "time"

// UserModel maps the subset of the users table this service touches:
// the coin balance debited on enrollment.
type UserModel struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Coins     int       `json:"coins"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}
