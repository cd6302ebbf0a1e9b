package persistent

import (
	"gigconnect/services/course/internal/entity"
	"gigconnect/services/course/internal/model"
)

func ToCourseEntity(m *model.CourseModel) *entity.Course {
	if m == nil {
		return nil
	}

	return &entity.Course{
		ID:           m.ID,
		Title:        m.Title,
		Description:  m.Description,
		Content:      m.Content,
		Category:     m.Category,
		ThumbnailURL: m.ThumbnailURL,
		Cost:         m.Cost,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func ToCourseModel(e *entity.Course) *model.CourseModel {
	if e == nil {
		return nil
	}

	return &model.CourseModel{
		ID:           e.ID,
		Title:        e.Title,
		Description:  e.Description,
		Content:      e.Content,
		Category:     e.Category,
		ThumbnailURL: e.ThumbnailURL,
		Cost:         e.Cost,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func ToEnrollmentEntity(m *model.EnrollmentModel) *entity.Enrollment {
	if m == nil {
		return nil
	}

	return &entity.Enrollment{
		ID:        m.ID,
		UserID:    m.UserID,
		CourseID:  m.CourseID,
		CreatedAt: m.CreatedAt,
	}
}
