package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TransactionType string

const (
	TransactionTypeCourseRedemption TransactionType = "course_redemption"
	TransactionTypeRatingConversion TransactionType = "rating_conversion"
	TransactionTypeAdminGrant       TransactionType = "admin_grant"
	TransactionTypeJobCompletion    TransactionType = "job_completion"
)

// Transaction is an append-only ledger entry. Balance holds the user's coin
// balance after Amount was applied.
type Transaction struct {
	ID          string          `gorm:"type:uuid;primary_key" json:"id"`
	UserID      string          `gorm:"type:uuid;not null;index" json:"user_id"`
	CourseID    *string         `gorm:"type:uuid;index" json:"course_id,omitempty"`
	Type        TransactionType `gorm:"type:varchar(30);not null" json:"type"`
	Amount      int             `gorm:"not null" json:"amount"`
	Description string          `gorm:"not null" json:"description"`
	Balance     int             `gorm:"not null" json:"balance"`
	CreatedAt   time.Time       `json:"created_at"`
}

func (Transaction) TableName() string {
	return "transactions"
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	return nil
}
