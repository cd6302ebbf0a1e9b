package usecase

import (
	"context"
	"errors"
	"testing"

	"gigconnect/pkg/logger"
	"gigconnect/services/course/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockCourseRepository struct {
	mock.Mock
}

func (m *MockCourseRepository) Create(course *entity.Course) error {
	args := m.Called(course)
	return args.Error(0)
}

func (m *MockCourseRepository) GetByID(id string) (*entity.Course, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Course), args.Error(1)
}

func (m *MockCourseRepository) ListAll() ([]*entity.Course, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Course), args.Error(1)
}

func (m *MockCourseRepository) Update(course *entity.Course) error {
	args := m.Called(course)
	return args.Error(0)
}

func (m *MockCourseRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockCourseRepository) IsEnrolled(userID, courseID string) (bool, error) {
	args := m.Called(userID, courseID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCourseRepository) ListEnrolledBy(userID string) ([]*entity.Course, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Course), args.Error(1)
}

func (m *MockCourseRepository) GetUserCoins(userID string) (int, error) {
	args := m.Called(userID)
	return args.Int(0), args.Error(1)
}

func (m *MockCourseRepository) Redeem(userID string, course *entity.Course, newBalance int) error {
	args := m.Called(userID, course, newBalance)
	return args.Error(0)
}

func newTestCourse(cost int) *entity.Course {
	return &entity.Course{
		ID:       "course-1",
		Title:    "Intro to Plumbing",
		Category: "trades",
		Cost:     cost,
	}
}

func TestCreateCourseCostBounds(t *testing.T) {
	tests := []struct {
		name    string
		cost    int
		wantErr error
	}{
		{"below minimum", 100, ErrInvalidCost},
		{"at minimum", 150, nil},
		{"at maximum", 300, nil},
		{"above maximum", 301, ErrInvalidCost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockCourseRepository)
			uc := NewCourseUseCase(repo, nil, nil, logger.New())

			if tt.wantErr == nil {
				repo.On("Create", mock.AnythingOfType("*entity.Course")).Return(nil)
			}

			_, err := uc.CreateCourse(CreateCourseParams{
				Title:       "Intro to Plumbing",
				Description: "Pipes and fittings",
				Content:     "Lesson material",
				Category:    "trades",
				Cost:        tt.cost,
			})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				repo.AssertNotCalled(t, "Create", mock.Anything)
			} else {
				assert.NoError(t, err)
				repo.AssertExpectations(t)
			}
		})
	}
}

func TestUpdateCourseInvalidCost(t *testing.T) {
	repo := new(MockCourseRepository)
	uc := NewCourseUseCase(repo, nil, nil, logger.New())

	repo.On("GetByID", "course-1").Return(newTestCourse(200), nil)

	tooHigh := 500
	_, err := uc.UpdateCourse("course-1", UpdateCourseParams{Cost: &tooHigh})

	assert.ErrorIs(t, err, ErrInvalidCost)
	repo.AssertNotCalled(t, "Update", mock.Anything)
}

func TestEnrollHappyPath(t *testing.T) {
	repo := new(MockCourseRepository)
	uc := NewCourseUseCase(repo, nil, nil, logger.New())

	course := newTestCourse(200)
	repo.On("GetByID", "course-1").Return(course, nil)
	repo.On("IsEnrolled", "user-1", "course-1").Return(false, nil)
	repo.On("GetUserCoins", "user-1").Return(250, nil)
	repo.On("Redeem", "user-1", course, 50).Return(nil)

	receipt, err := uc.Enroll("user-1", "course-1")

	assert.NoError(t, err)
	assert.Equal(t, 200, receipt.CoinsSpent)
	assert.Equal(t, 50, receipt.RemainingCoins)
	repo.AssertExpectations(t)
}

func TestEnrollInsufficientCoins(t *testing.T) {
	repo := new(MockCourseRepository)
	uc := NewCourseUseCase(repo, nil, nil, logger.New())

	repo.On("GetByID", "course-1").Return(newTestCourse(150), nil)
	repo.On("IsEnrolled", "user-1", "course-1").Return(false, nil)
	repo.On("GetUserCoins", "user-1").Return(50, nil)

	_, err := uc.Enroll("user-1", "course-1")

	assert.ErrorIs(t, err, ErrInsufficientCoins)
	repo.AssertNotCalled(t, "Redeem", mock.Anything, mock.Anything, mock.Anything)
}

func TestEnrollExactBalance(t *testing.T) {
	repo := new(MockCourseRepository)
	uc := NewCourseUseCase(repo, nil, nil, logger.New())

	course := newTestCourse(150)
	repo.On("GetByID", "course-1").Return(course, nil)
	repo.On("IsEnrolled", "user-1", "course-1").Return(false, nil)
	repo.On("GetUserCoins", "user-1").Return(150, nil)
	repo.On("Redeem", "user-1", course, 0).Return(nil)

	receipt, err := uc.Enroll("user-1", "course-1")

	assert.NoError(t, err)
	assert.Equal(t, 0, receipt.RemainingCoins)
}

func TestEnrollAlreadyEnrolled(t *testing.T) {
	repo := new(MockCourseRepository)
	uc := NewCourseUseCase(repo, nil, nil, logger.New())

	repo.On("GetByID", "course-1").Return(newTestCourse(200), nil)
	repo.On("IsEnrolled", "user-1", "course-1").Return(true, nil)

	_, err := uc.Enroll("user-1", "course-1")

	assert.ErrorIs(t, err, ErrAlreadyEnrolled)
	repo.AssertNotCalled(t, "GetUserCoins", mock.Anything)
	repo.AssertNotCalled(t, "Redeem", mock.Anything, mock.Anything, mock.Anything)
}

func TestEnrollCourseNotFound(t *testing.T) {
	repo := new(MockCourseRepository)
	uc := NewCourseUseCase(repo, nil, nil, logger.New())

	repo.On("GetByID", "missing").Return(nil, errors.New("record not found"))

	_, err := uc.Enroll("user-1", "missing")

	assert.ErrorIs(t, err, ErrCourseNotFound)
}

type MockCatalogCache struct {
	mock.Mock
}

func (m *MockCatalogCache) Get(ctx context.Context) ([]*entity.Course, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Course), args.Error(1)
}

func (m *MockCatalogCache) Set(ctx context.Context, courses []*entity.Course) error {
	args := m.Called(ctx, courses)
	return args.Error(0)
}

func (m *MockCatalogCache) Invalidate(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func TestListCoursesCacheHit(t *testing.T) {
	repo := new(MockCourseRepository)
	cache := new(MockCatalogCache)
	uc := NewCourseUseCase(repo, cache, nil, logger.New())

	cached := []*entity.Course{newTestCourse(200)}
	cache.On("Get", mock.Anything).Return(cached, nil)

	courses, err := uc.ListCourses(context.Background())

	assert.NoError(t, err)
	assert.Len(t, courses, 1)
	repo.AssertNotCalled(t, "ListAll")
}

func TestListCoursesCacheMiss(t *testing.T) {
	repo := new(MockCourseRepository)
	cache := new(MockCatalogCache)
	uc := NewCourseUseCase(repo, cache, nil, logger.New())

	fromDB := []*entity.Course{newTestCourse(200), newTestCourse(150)}
	cache.On("Get", mock.Anything).Return(nil, errors.New("cache miss"))
	repo.On("ListAll").Return(fromDB, nil)
	cache.On("Set", mock.Anything, fromDB).Return(nil)

	courses, err := uc.ListCourses(context.Background())

	assert.NoError(t, err)
	assert.Len(t, courses, 2)
	cache.AssertExpectations(t)
}

func TestCreateCourseInvalidatesCatalog(t *testing.T) {
	repo := new(MockCourseRepository)
	cache := new(MockCatalogCache)
	uc := NewCourseUseCase(repo, cache, nil, logger.New())

	repo.On("Create", mock.AnythingOfType("*entity.Course")).Return(nil)
	cache.On("Invalidate", mock.Anything).Return(nil)

	_, err := uc.CreateCourse(CreateCourseParams{
		Title:       "Intro to Plumbing",
		Description: "Pipes and fittings",
		Content:     "Lesson material",
		Category:    "trades",
		Cost:        200,
	})

	assert.NoError(t, err)
	cache.AssertExpectations(t)
}
