package usecase

import (
	"errors"
	"testing"

	"gigconnect/pkg/logger"
	"gigconnect/services/rewards/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(id string) (*entity.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) Update(user *entity.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateWithTransaction(user *entity.User, txn *entity.Transaction) error {
	args := m.Called(user, txn)
	return args.Error(0)
}

type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) ListByUser(userID string) ([]*entity.Transaction, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) GetByID(id string) (*entity.Transaction, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Transaction), args.Error(1)
}

func newRatedUser(ratings []float64, avg float64, coins int) *entity.User {
	return &entity.User{
		ID:            "user-1",
		Name:          "Dana",
		Ratings:       ratings,
		AverageRating: avg,
		Coins:         coins,
	}
}

func TestAddRatingRecomputesAverage(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := NewRewardsUseCase(userRepo, nil, logger.New())

	userRepo.On("GetByID", "user-1").Return(newRatedUser([]float64{4, 5}, 4.5, 50), nil)
	userRepo.On("Update", mock.MatchedBy(func(u *entity.User) bool {
		return len(u.Ratings) == 3 && u.AverageRating == 4.0
	})).Return(nil)

	summary, err := uc.AddRating("rater-1", "user-1", 3)

	assert.NoError(t, err)
	assert.Equal(t, 3, summary.RatingCount)
	assert.Equal(t, 4.0, summary.AverageRating)
	userRepo.AssertExpectations(t)
}

func TestAddRatingFirstRatingReplacesSentinel(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := NewRewardsUseCase(userRepo, nil, logger.New())

	// A fresh user carries the sentinel average with an empty history; the
	// first real rating must not blend with it.
	userRepo.On("GetByID", "user-1").Return(newRatedUser([]float64{}, entity.DefaultAverageRating, 50), nil)
	userRepo.On("Update", mock.AnythingOfType("*entity.User")).Return(nil)

	summary, err := uc.AddRating("rater-1", "user-1", 5)

	assert.NoError(t, err)
	assert.Equal(t, 1, summary.RatingCount)
	assert.Equal(t, 5.0, summary.AverageRating)
}

func TestAddRatingBounds(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := NewRewardsUseCase(userRepo, nil, logger.New())

	for _, value := range []float64{0, 0.5, 5.5, 6, -1} {
		_, err := uc.AddRating("rater-1", "user-1", value)
		assert.ErrorIs(t, err, ErrInvalidRating)
	}

	userRepo.AssertNotCalled(t, "GetByID", mock.Anything)
}

func TestAddRatingSelfRejected(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := NewRewardsUseCase(userRepo, nil, logger.New())

	_, err := uc.AddRating("user-1", "user-1", 4)

	assert.ErrorIs(t, err, ErrSelfRating)
	userRepo.AssertNotCalled(t, "GetByID", mock.Anything)
}

func TestConvertRatingsPayout(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := NewRewardsUseCase(userRepo, nil, logger.New())

	userRepo.On("GetByID", "user-1").Return(newRatedUser([]float64{4, 5}, 4.5, 50), nil)
	userRepo.On("UpdateWithTransaction",
		mock.MatchedBy(func(u *entity.User) bool {
			return u.Coins == 500 && len(u.Ratings) == 0 && u.AverageRating == entity.DefaultAverageRating
		}),
		mock.MatchedBy(func(txn *entity.Transaction) bool {
			return txn.Type == entity.TransactionTypeRatingConversion &&
				txn.Amount == 450 && txn.Balance == 500
		}),
	).Return(nil)

	result, err := uc.ConvertRatings("user-1")

	assert.NoError(t, err)
	assert.Equal(t, 50, result.PreviousCoins)
	assert.Equal(t, 450, result.CoinsAdded)
	assert.Equal(t, 500, result.NewCoinBalance)
	assert.Equal(t, entity.DefaultAverageRating, result.NewAverageRating)
	userRepo.AssertExpectations(t)
}

func TestConvertRatingsRoundsToNearest(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := NewRewardsUseCase(userRepo, nil, logger.New())

	// Average of 2, 3, 3 is 2.666..., which pays out 267 coins.
	userRepo.On("GetByID", "user-1").Return(newRatedUser([]float64{2, 3, 3}, 8.0/3.0, 0), nil)
	userRepo.On("UpdateWithTransaction", mock.Anything, mock.Anything).Return(nil)

	result, err := uc.ConvertRatings("user-1")

	assert.NoError(t, err)
	assert.Equal(t, 267, result.CoinsAdded)
}

func TestConvertRatingsEmptyHistory(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := NewRewardsUseCase(userRepo, nil, logger.New())

	userRepo.On("GetByID", "user-1").Return(newRatedUser([]float64{}, entity.DefaultAverageRating, 50), nil)

	_, err := uc.ConvertRatings("user-1")

	assert.ErrorIs(t, err, ErrNoRatings)
	userRepo.AssertNotCalled(t, "UpdateWithTransaction", mock.Anything, mock.Anything)
}

func TestGetTransactionOwnerOnly(t *testing.T) {
	txnRepo := new(MockTransactionRepository)
	uc := NewRewardsUseCase(nil, txnRepo, logger.New())

	txnRepo.On("GetByID", "txn-1").Return(&entity.Transaction{
		ID:     "txn-1",
		UserID: "someone-else",
	}, nil)

	_, err := uc.GetTransaction("user-1", "txn-1")

	assert.ErrorIs(t, err, ErrNotTransactionOwner)
}

func TestGetTransactionNotFound(t *testing.T) {
	txnRepo := new(MockTransactionRepository)
	uc := NewRewardsUseCase(nil, txnRepo, logger.New())

	txnRepo.On("GetByID", "missing").Return(nil, errors.New("record not found"))

	_, err := uc.GetTransaction("user-1", "missing")

	assert.ErrorIs(t, err, ErrTransactionNotFound)
}

// Replaying the ledger from the starting balance must land on the balance
// snapshot carried by each entry.
func TestLedgerReplayReconstructsBalances(t *testing.T) {
	txnRepo := new(MockTransactionRepository)
	uc := NewRewardsUseCase(nil, txnRepo, logger.New())

	// Newest first, as the repository returns them.
	history := []*entity.Transaction{
		{UserID: "user-1", Type: entity.TransactionTypeCourseRedemption, Amount: -200, Balance: 450},
		{UserID: "user-1", Type: entity.TransactionTypeJobCompletion, Amount: 100, Balance: 650},
		{UserID: "user-1", Type: entity.TransactionTypeAdminGrant, Amount: 50, Balance: 550},
		{UserID: "user-1", Type: entity.TransactionTypeRatingConversion, Amount: 450, Balance: 500},
	}
	txnRepo.On("ListByUser", "user-1").Return(history, nil)

	txns, err := uc.GetTransactions("user-1")
	assert.NoError(t, err)
	assert.Len(t, txns, 4)

	startingBalance := 50
	running := startingBalance
	for i := len(txns) - 1; i >= 0; i-- {
		running += txns[i].Amount
		assert.Equal(t, txns[i].Balance, running)
	}
	assert.Equal(t, 450, running)
}

func TestGrantCoins(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := NewRewardsUseCase(userRepo, nil, logger.New())

	userRepo.On("GetByID", "user-1").Return(newRatedUser(nil, entity.DefaultAverageRating, 50), nil)
	userRepo.On("UpdateWithTransaction",
		mock.MatchedBy(func(u *entity.User) bool { return u.Coins == 150 }),
		mock.MatchedBy(func(txn *entity.Transaction) bool {
			return txn.Type == entity.TransactionTypeAdminGrant &&
				txn.Amount == 100 && txn.Balance == 150
		}),
	).Return(nil)

	txn, err := uc.GrantCoins("user-1", 100, "Support credit")

	assert.NoError(t, err)
	assert.Equal(t, "Support credit", txn.Description)
	userRepo.AssertExpectations(t)
}

func TestGrantCoinsRejectsNonPositive(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := NewRewardsUseCase(userRepo, nil, logger.New())

	for _, amount := range []int{0, -10} {
		_, err := uc.GrantCoins("user-1", amount, "")
		assert.ErrorIs(t, err, ErrInvalidAmount)
	}

	userRepo.AssertNotCalled(t, "GetByID", mock.Anything)
}

func TestHandleRewardTaskCreditsUser(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := NewRewardsUseCase(userRepo, nil, logger.New())

	userRepo.On("GetByID", "user-1").Return(newRatedUser(nil, entity.DefaultAverageRating, 50), nil)
	userRepo.On("UpdateWithTransaction",
		mock.MatchedBy(func(u *entity.User) bool { return u.Coins == 150 }),
		mock.MatchedBy(func(txn *entity.Transaction) bool {
			return txn.Type == entity.TransactionTypeJobCompletion && txn.Balance == 150
		}),
	).Return(nil)

	err := uc.HandleRewardTask(map[string]interface{}{
		"type":      "job_completion",
		"user_id":   "user-1",
		"job_title": "Paint a fence",
		"amount":    float64(100),
	})

	assert.NoError(t, err)
	userRepo.AssertExpectations(t)
}

func TestHandleRewardTaskRejectsMalformed(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := NewRewardsUseCase(userRepo, nil, logger.New())

	assert.Error(t, uc.HandleRewardTask(map[string]interface{}{"amount": float64(100)}))
	assert.Error(t, uc.HandleRewardTask(map[string]interface{}{"user_id": "user-1"}))
	assert.Error(t, uc.HandleRewardTask(map[string]interface{}{"user_id": "user-1", "amount": float64(-5)}))
	userRepo.AssertNotCalled(t, "UpdateWithTransaction", mock.Anything, mock.Anything)
}
