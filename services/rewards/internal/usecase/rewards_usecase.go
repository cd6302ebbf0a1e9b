package usecase

import (
	"errors"
	"fmt"
	"math"

	"gigconnect/pkg/logger"
	"gigconnect/services/rewards/internal/entity"
	"gigconnect/services/rewards/internal/repo/persistent"
)

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrInvalidRating       = errors.New("rating must be between 1 and 5")
	ErrSelfRating          = errors.New("you cannot rate yourself")
	ErrNoRatings           = errors.New("no ratings available to convert")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrNotTransactionOwner = errors.New("transaction does not belong to this user")
	ErrInvalidAmount       = errors.New("amount must be a positive number")
)

type RewardsUseCase interface {
	AddRating(raterID, targetID string, value float64) (*entity.RatingSummary, error)
	ConvertRatings(userID string) (*entity.ConversionResult, error)
	GetTransactions(userID string) ([]*entity.Transaction, error)
	GetTransaction(userID, transactionID string) (*entity.Transaction, error)
	GrantCoins(targetUserID string, amount int, reason string) (*entity.Transaction, error)
	HandleRewardTask(task map[string]interface{}) error
}

type rewardsUseCase struct {
	userRepo persistent.UserRepository
	txnRepo  persistent.TransactionRepository
	logger   *logger.Logger
}

func NewRewardsUseCase(
	userRepo persistent.UserRepository,
	txnRepo persistent.TransactionRepository,
	logger *logger.Logger,
) RewardsUseCase {
	return &rewardsUseCase{
		userRepo: userRepo,
		txnRepo:  txnRepo,
		logger:   logger,
	}
}

func (uc *rewardsUseCase) AddRating(raterID, targetID string, value float64) (*entity.RatingSummary, error) {
	if value < 1 || value > 5 {
		return nil, ErrInvalidRating
	}
	if raterID == targetID {
		return nil, ErrSelfRating
	}

	user, err := uc.userRepo.GetByID(targetID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	user.Ratings = append(user.Ratings, value)

	var sum float64
	for _, r := range user.Ratings {
		sum += r
	}
	user.AverageRating = sum / float64(len(user.Ratings))

	if err := uc.userRepo.Update(user); err != nil {
		uc.logger.Error("Failed to save rating: %v", err)
		return nil, fmt.Errorf("failed to save rating")
	}

	return &entity.RatingSummary{
		UserID:        user.ID,
		RatingCount:   len(user.Ratings),
		AverageRating: user.AverageRating,
	}, nil
}

// ConvertRatings cashes out the user's rating history. The payout is the
// average rating times 100, rounded to the nearest coin; the rating history
// is cleared and the average returns to its sentinel value.
func (uc *rewardsUseCase) ConvertRatings(userID string) (*entity.ConversionResult, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	if len(user.Ratings) == 0 {
		return nil, ErrNoRatings
	}

	coinsAdded := int(math.Round(user.AverageRating * 100))
	previousCoins := user.Coins

	user.Coins = previousCoins + coinsAdded
	user.Ratings = []float64{}
	user.AverageRating = entity.DefaultAverageRating

	txn := &entity.Transaction{
		UserID:      userID,
		Type:        entity.TransactionTypeRatingConversion,
		Amount:      coinsAdded,
		Description: "Converted ratings to coins",
		Balance:     user.Coins,
	}

	if err := uc.userRepo.UpdateWithTransaction(user, txn); err != nil {
		uc.logger.Error("Failed to convert ratings: %v", err)
		return nil, fmt.Errorf("failed to convert ratings")
	}

	return &entity.ConversionResult{
		PreviousCoins:    previousCoins,
		CoinsAdded:       coinsAdded,
		NewCoinBalance:   user.Coins,
		NewAverageRating: user.AverageRating,
	}, nil
}

func (uc *rewardsUseCase) GetTransactions(userID string) ([]*entity.Transaction, error) {
	txns, err := uc.txnRepo.ListByUser(userID)
	if err != nil {
		uc.logger.Error("Failed to list transactions: %v", err)
		return nil, fmt.Errorf("failed to list transactions")
	}
	return txns, nil
}

func (uc *rewardsUseCase) GetTransaction(userID, transactionID string) (*entity.Transaction, error) {
	txn, err := uc.txnRepo.GetByID(transactionID)
	if err != nil {
		return nil, ErrTransactionNotFound
	}
	if txn.UserID != userID {
		return nil, ErrNotTransactionOwner
	}
	return txn, nil
}

func (uc *rewardsUseCase) GrantCoins(targetUserID string, amount int, reason string) (*entity.Transaction, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	user, err := uc.userRepo.GetByID(targetUserID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	user.Coins += amount

	description := reason
	if description == "" {
		description = "Coins granted by administrator"
	}

	txn := &entity.Transaction{
		UserID:      targetUserID,
		Type:        entity.TransactionTypeAdminGrant,
		Amount:      amount,
		Description: description,
		Balance:     user.Coins,
	}

	if err := uc.userRepo.UpdateWithTransaction(user, txn); err != nil {
		uc.logger.Error("Failed to grant coins: %v", err)
		return nil, fmt.Errorf("failed to grant coins")
	}

	return txn, nil
}

// HandleRewardTask processes a job completion reward published by the job
// service. A returned error causes the message to be requeued.
func (uc *rewardsUseCase) HandleRewardTask(task map[string]interface{}) error {
	userID, ok := task["user_id"].(string)
	if !ok || userID == "" {
		return fmt.Errorf("reward task missing user_id: %+v", task)
	}

	// JSON numbers decode as float64
	rawAmount, ok := task["amount"].(float64)
	if !ok || rawAmount <= 0 {
		return fmt.Errorf("reward task has invalid amount: %+v", task)
	}
	amount := int(rawAmount)

	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return fmt.Errorf("reward task user lookup failed: %w", err)
	}

	user.Coins += amount

	description := "Reward for completed job"
	if jobTitle, ok := task["job_title"].(string); ok && jobTitle != "" {
		description = fmt.Sprintf("Reward for completed job: %s", jobTitle)
	}

	txn := &entity.Transaction{
		UserID:      userID,
		Type:        entity.TransactionTypeJobCompletion,
		Amount:      amount,
		Description: description,
		Balance:     user.Coins,
	}

	if err := uc.userRepo.UpdateWithTransaction(user, txn); err != nil {
		return fmt.Errorf("reward task ledger write failed: %w", err)
	}

	uc.logger.Info("Credited %d coins to user %s for job completion", amount, userID)
	return nil
}
