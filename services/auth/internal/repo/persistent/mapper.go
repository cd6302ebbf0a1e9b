package persistent

import (
	"gigconnect/services/auth/internal/entity"
	"gigconnect/services/auth/internal/model"

	"gorm.io/datatypes"
)

func ToUserEntity(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:            m.ID,
		Email:         m.Email,
		Password:      m.Password,
		Name:          m.Name,
		Phone:         m.Phone,
		Age:           m.Age,
		ProfilePicURL: m.ProfilePicURL,
		Skills:        []string(m.Skills),
		Location: entity.Location{
			Country: m.Location.Country,
			State:   m.Location.State,
			City:    m.Location.City,
		},
		Ratings:       []float64(m.Ratings),
		AverageRating: m.AverageRating,
		Coins:         m.Coins,
		Level:         m.Level,
		Role:          entity.UserRole(m.Role),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func ToUserModel(e *entity.User) *model.UserModel {
	if e == nil {
		return nil
	}

	return &model.UserModel{
		ID:            e.ID,
		Email:         e.Email,
		Password:      e.Password,
		Name:          e.Name,
		Phone:         e.Phone,
		Age:           e.Age,
		ProfilePicURL: e.ProfilePicURL,
		Skills:        datatypes.NewJSONSlice(e.Skills),
		Location: model.LocationModel{
			Country: e.Location.Country,
			State:   e.Location.State,
			City:    e.Location.City,
		},
		Ratings:       datatypes.NewJSONSlice(e.Ratings),
		AverageRating: e.AverageRating,
		Coins:         e.Coins,
		Level:         e.Level,
		Role:          string(e.Role),
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}
