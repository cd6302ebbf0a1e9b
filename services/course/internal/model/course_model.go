package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CourseModel struct {
	ID           string    `gorm:"type:uuid;primary_key" json:"id"`
	Title        string    `gorm:"not null" json:"title"`
	Description  string    `gorm:"not null" json:"description"`
	Content      string    `gorm:"not null" json:"content"`
	Category     string    `gorm:"not null" json:"category"`
	ThumbnailURL string    `gorm:"type:varchar(500);default:'default-course.jpg'" json:"thumbnail_url"`
	Cost         int       `gorm:"not null" json:"cost"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (CourseModel) TableName() string {
	return "courses"
}

func (c *CourseModel) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}

type EnrollmentModel struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	UserID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_user_course" json:"user_id"`
	CourseID  string    `gorm:"type:uuid;not null;uniqueIndex:idx_user_course" json:"course_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (EnrollmentModel) TableName() string {
	return "enrollments"
}

func (e *EnrollmentModel) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	return nil
}
