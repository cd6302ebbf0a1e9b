package entity

import "time"

type JobStatus string

const (
	JobStatusOpen       JobStatus = "open"
	JobStatusInProgress JobStatus = "in-progress"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusCancelled  JobStatus = "cancelled"
)

func (s JobStatus) Valid() bool {
	switch s {
	case JobStatusOpen, JobStatusInProgress, JobStatusCompleted, JobStatusCancelled:
		return true
	}
	return false
}

type ApplicantStatus string

const (
	ApplicantStatusPending  ApplicantStatus = "pending"
	ApplicantStatusAccepted ApplicantStatus = "accepted"
	ApplicantStatusRejected ApplicantStatus = "rejected"
)

func (s ApplicantStatus) Valid() bool {
	switch s {
	case ApplicantStatusPending, ApplicantStatusAccepted, ApplicantStatusRejected:
		return true
	}
	return false
}

type JobLocation struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Country string  `json:"country"`
	State   string  `json:"state"`
	City    string  `json:"city"`
}

// UserSummary is the subset of a user shown on job listings.
type UserSummary struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	ProfilePicURL string  `json:"profile_pic_url"`
	AverageRating float64 `json:"average_rating"`
}

type Applicant struct {
	UserID    string          `json:"user_id"`
	User      *UserSummary    `json:"user,omitempty"`
	Status    ApplicantStatus `json:"status"`
	AppliedAt time.Time       `json:"applied_at"`
}

type Job struct {
	ID             string       `json:"id"`
	Title          string       `json:"title"`
	Description    string       `json:"description"`
	Location       JobLocation  `json:"location"`
	PosterID       string       `json:"poster_id"`
	Poster         *UserSummary `json:"poster,omitempty"`
	Status         JobStatus    `json:"status"`
	Salary         *int         `json:"salary,omitempty"`
	Deadline       *time.Time   `json:"deadline,omitempty"`
	Applicants     []Applicant  `json:"applicants,omitempty"`
	ApplicantCount int          `json:"applicant_count"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

// HasApplicant reports whether the user already appears in the applicant list.
func (j *Job) HasApplicant(userID string) bool {
	for _, a := range j.Applicants {
		if a.UserID == userID {
			return true
		}
	}
	return false
}
