package persistent

import (
	"gigconnect/services/rewards/internal/entity"
	"gigconnect/services/rewards/internal/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type UserRepository interface {
	GetByID(id string) (*entity.User, error)
	Update(user *entity.User) error
	// UpdateWithTransaction writes the user's coin state and appends the
	// ledger entry in a single database transaction.
	UpdateWithTransaction(user *entity.User, txn *entity.Transaction) error
}

type TransactionRepository interface {
	ListByUser(userID string) ([]*entity.Transaction, error)
	GetByID(id string) (*entity.Transaction, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetByID(id string) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.db.Where("id = ?", id).First(&userModel).Error; err != nil {
		return nil, err
	}
	return ToUserEntity(&userModel), nil
}

func userUpdates(user *entity.User) map[string]interface{} {
	ratings := user.Ratings
	if ratings == nil {
		ratings = []float64{}
	}
	return map[string]interface{}{
		"ratings":        datatypes.NewJSONSlice(ratings),
		"average_rating": user.AverageRating,
		"coins":          user.Coins,
	}
}

func (r *userRepository) Update(user *entity.User) error {
	return r.db.Model(&model.UserModel{}).
		Where("id = ?", user.ID).
		Updates(userUpdates(user)).Error
}

func (r *userRepository) UpdateWithTransaction(user *entity.User, txn *entity.Transaction) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.UserModel{}).
			Where("id = ?", user.ID).
			Updates(userUpdates(user)).Error; err != nil {
			return err
		}

		txnModel := ToTransactionModel(txn)
		if err := tx.Create(txnModel).Error; err != nil {
			return err
		}
		txn.ID = txnModel.ID
		return nil
	})
}

type transactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) ListByUser(userID string) ([]*entity.Transaction, error) {
	var txnModels []model.TransactionModel
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&txnModels).Error
	if err != nil {
		return nil, err
	}

	txns := make([]*entity.Transaction, len(txnModels))
	for i := range txnModels {
		txns[i] = ToTransactionEntity(&txnModels[i])
	}
	return txns, nil
}

func (r *transactionRepository) GetByID(id string) (*entity.Transaction, error) {
	var txnModel model.TransactionModel
	if err := r.db.Where("id = ?", id).First(&txnModel).Error; err != nil {
		return nil, err
	}
	return ToTransactionEntity(&txnModel), nil
}
