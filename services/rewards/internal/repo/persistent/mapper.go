package persistent

import (
	"gigconnect/services/rewards/internal/entity"
	"gigconnect/services/rewards/internal/model"
)

func ToUserEntity(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:            m.ID,
		Name:          m.Name,
		Email:         m.Email,
		Ratings:       []float64(m.Ratings),
		AverageRating: m.AverageRating,
		Coins:         m.Coins,
	}
}

func ToTransactionEntity(m *model.TransactionModel) *entity.Transaction {
	if m == nil {
		return nil
	}

	return &entity.Transaction{
		ID:          m.ID,
		UserID:      m.UserID,
		CourseID:    m.CourseID,
		Type:        entity.TransactionType(m.Type),
		Amount:      m.Amount,
		Description: m.Description,
		Balance:     m.Balance,
		CreatedAt:   m.CreatedAt,
	}
}

func ToTransactionModel(e *entity.Transaction) *model.TransactionModel {
	if e == nil {
		return nil
	}

	return &model.TransactionModel{
		ID:          e.ID,
		UserID:      e.UserID,
		CourseID:    e.CourseID,
		Type:        string(e.Type),
		Amount:      e.Amount,
		Description: e.Description,
		Balance:     e.Balance,
		CreatedAt:   e.CreatedAt,
	}
}
