package entity

import "time"

type UserRole string

const (
	RoleMember UserRole = "member"
	RoleAdmin  UserRole = "admin"
)

// DefaultAverageRating is the sentinel average for a user with no ratings.
const DefaultAverageRating = 3.0

// StartingCoins is the balance granted on registration.
const StartingCoins = 50

type Location struct {
	Country string `json:"country"`
	State   string `json:"state"`
	City    string `json:"city"`
}

type User struct {
	ID              string    `json:"id"`
	Email           string    `json:"email"`
	Password        string    `json:"-"`
	Name            string    `json:"name"`
	Phone           string    `json:"phone"`
	Age             int       `json:"age"`
	ProfilePicURL   string    `json:"profile_pic_url"`
	Skills          []string  `json:"skills"`
	Location        Location  `json:"location"`
	Ratings         []float64 `json:"ratings"`
	AverageRating   float64   `json:"average_rating"`
	Coins           int       `json:"coins"`
	Level           int       `json:"level"`
	Role            UserRole  `json:"role"`
	RedeemedCourses []string  `json:"redeemed_courses,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
