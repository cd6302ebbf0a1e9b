package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type JobLocationModel struct {
	Lat     float64 `gorm:"not null" json:"lat"`
	Lng     float64 `gorm:"not null" json:"lng"`
	Country string  `gorm:"not null" json:"country"`
	State   string  `gorm:"not null" json:"state"`
	City    string  `gorm:"not null" json:"city"`
}

type JobModel struct {
	ID          string           `gorm:"type:uuid;primary_key" json:"id"`
	Title       string           `gorm:"not null" json:"title"`
	Description string           `gorm:"not null" json:"description"`
	Location    JobLocationModel `gorm:"embedded;embeddedPrefix:location_" json:"location"`
	PosterID    string           `gorm:"type:uuid;not null;index" json:"poster_id"`
	Status      string           `gorm:"type:varchar(20);default:'open'" json:"status"`
	Salary      *int             `json:"salary,omitempty"`
	Deadline    *time.Time       `json:"deadline,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

func (JobModel) TableName() string {
	return "jobs"
}

func (j *JobModel) BeforeCreate(tx *gorm.DB) error {
	if j.ID == "" {
		j.ID = uuid.New().String()
	}
	return nil
}

type JobApplicantModel struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	JobID     string    `gorm:"type:uuid;not null;uniqueIndex:idx_job_applicant" json:"job_id"`
	UserID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_job_applicant" json:"user_id"`
	Status    string    `gorm:"type:varchar(20);default:'pending'" json:"status"`
	AppliedAt time.Time `json:"applied_at"`
}

func (JobApplicantModel) TableName() string {
	return "job_applicants"
}

func (a *JobApplicantModel) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	return nil
}
