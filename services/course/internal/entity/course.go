package entity

import "time"

const (
	// MinCost and MaxCost bound course pricing in coins.
	MinCost = 150
	MaxCost = 300
)

type Course struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Content      string    `json:"content"`
	Category     string    `json:"category"`
	ThumbnailURL string    `json:"thumbnail_url"`
	Cost         int       `json:"cost"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Enrollment struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	CourseID  string    `json:"course_id"`
	CreatedAt time.Time `json:"created_at"`
}

// EnrollmentReceipt is returned after a successful course redemption.
type EnrollmentReceipt struct {
	Course         *Course `json:"course"`
	CoinsSpent     int     `json:"coins_spent"`
	RemainingCoins int     `json:"remaining_coins"`
}
