package model

import "time"

// UserModel maps the subset of the users table this service reads for
// poster and applicant summaries.
type UserModel struct {
	ID            string    `gorm:"type:uuid;primary_key" json:"id"`
	Email         string    `json:"email"`
	Name          string    `json:"name"`
	ProfilePicURL string    `json:"profile_pic_url"`
	AverageRating float64   `json:"average_rating"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}
