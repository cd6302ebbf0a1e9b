package persistent

import (
	"gigconnect/services/job/internal/entity"
	"gigconnect/services/job/internal/model"
)

func ToJobEntity(m *model.JobModel) *entity.Job {
	if m == nil {
		return nil
	}

	return &entity.Job{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Location: entity.JobLocation{
			Lat:     m.Location.Lat,
			Lng:     m.Location.Lng,
			Country: m.Location.Country,
			State:   m.Location.State,
			City:    m.Location.City,
		},
		PosterID:  m.PosterID,
		Status:    entity.JobStatus(m.Status),
		Salary:    m.Salary,
		Deadline:  m.Deadline,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToJobModel(e *entity.Job) *model.JobModel {
	if e == nil {
		return nil
	}

	return &model.JobModel{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Location: model.JobLocationModel{
			Lat:     e.Location.Lat,
			Lng:     e.Location.Lng,
			Country: e.Location.Country,
			State:   e.Location.State,
			City:    e.Location.City,
		},
		PosterID:  e.PosterID,
		Status:    string(e.Status),
		Salary:    e.Salary,
		Deadline:  e.Deadline,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func ToApplicantEntity(m *model.JobApplicantModel) entity.Applicant {
	return entity.Applicant{
		UserID:    m.UserID,
		Status:    entity.ApplicantStatus(m.Status),
		AppliedAt: m.AppliedAt,
	}
}

func ToUserSummary(m *model.UserModel) *entity.UserSummary {
	if m == nil {
		return nil
	}

	return &entity.UserSummary{
		ID:            m.ID,
		Name:          m.Name,
		Email:         m.Email,
		ProfilePicURL: m.ProfilePicURL,
		AverageRating: m.AverageRating,
	}
}
