package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const TransactionTypeCourseRedemption = "course_redemption"

// TransactionModel appends course redemption entries to the shared ledger.
// Balance holds the user's coin balance after Amount was applied.
type TransactionModel struct {
	ID          string    `gorm:"type:uuid;primary_key" json:"id"`
	UserID      string    `gorm:"type:uuid;not null;index" json:"user_id"`
	CourseID    *string   `gorm:"type:uuid;index" json:"course_id,omitempty"`
	Type        string    `gorm:"type:varchar(30);not null" json:"type"`
	Amount      int       `gorm:"not null" json:"amount"`
	Description string    `gorm:"not null" json:"description"`
	Balance     int       `gorm:"not null" json:"balance"`
	CreatedAt   time.Time `json:"created_at"`
}

func (TransactionModel) TableName() string {
	return "transactions"
}

func (t *TransactionModel) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	return nil
}
