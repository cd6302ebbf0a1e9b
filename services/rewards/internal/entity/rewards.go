package entity

import "time"

// DefaultAverageRating is the sentinel average restored after a conversion.
const DefaultAverageRating = 3.0

type User struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Ratings       []float64 `json:"ratings"`
	AverageRating float64   `json:"average_rating"`
	Coins         int       `json:"coins"`
}

type TransactionType string

const (
	TransactionTypeCourseRedemption TransactionType = "course_redemption"
	TransactionTypeRatingConversion TransactionType = "rating_conversion"
	TransactionTypeAdminGrant       TransactionType = "admin_grant"
	TransactionTypeJobCompletion    TransactionType = "job_completion"
)

// Transaction is a read model over the append-only coin ledger. Balance is
// the user's coin balance after Amount was applied.
type Transaction struct {
	ID          string          `json:"id"`
	UserID      string          `json:"user_id"`
	CourseID    *string         `json:"course_id,omitempty"`
	Type        TransactionType `json:"type"`
	Amount      int             `json:"amount"`
	Description string          `json:"description"`
	Balance     int             `json:"balance"`
	CreatedAt   time.Time       `json:"created_at"`
}

// RatingSummary is returned after a rating is recorded.
type RatingSummary struct {
	UserID        string  `json:"user_id"`
	RatingCount   int     `json:"rating_count"`
	AverageRating float64 `json:"average_rating"`
}

// ConversionResult reports the outcome of converting ratings to coins.
type ConversionResult struct {
	PreviousCoins    int     `json:"previous_coins"`
	CoinsAdded       int     `json:"coins_added"`
	NewCoinBalance   int     `json:"new_coin_balance"`
	NewAverageRating float64 `json:"new_average_rating"`
}
