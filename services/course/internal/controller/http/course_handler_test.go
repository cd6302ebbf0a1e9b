package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"gigconnect/services/course/internal/entity"
	"gigconnect/services/course/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockCourseUseCase struct {
	mock.Mock
}

func (m *MockCourseUseCase) CreateCourse(params usecase.CreateCourseParams) (*entity.Course, error) {
	args := m.Called(params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Course), args.Error(1)
}

func (m *MockCourseUseCase) GetCourse(courseID string) (*entity.Course, error) {
	args := m.Called(courseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Course), args.Error(1)
}

func (m *MockCourseUseCase) ListCourses(ctx context.Context) ([]*entity.Course, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Course), args.Error(1)
}

func (m *MockCourseUseCase) ListMyCourses(userID string) ([]*entity.Course, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Course), args.Error(1)
}

func (m *MockCourseUseCase) UpdateCourse(courseID string, params usecase.UpdateCourseParams) (*entity.Course, error) {
	args := m.Called(courseID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Course), args.Error(1)
}

func (m *MockCourseUseCase) DeleteCourse(courseID string) error {
	args := m.Called(courseID)
	return args.Error(0)
}

func (m *MockCourseUseCase) Enroll(userID, courseID string) (*entity.EnrollmentReceipt, error) {
	args := m.Called(userID, courseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.EnrollmentReceipt), args.Error(1)
}

func (m *MockCourseUseCase) UploadThumbnail(courseID string, fileReader io.Reader, fileKey string, contentType string) (*entity.Course, error) {
	args := m.Called(courseID, fileReader, fileKey, contentType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Course), args.Error(1)
}

func setupCourseRouter(uc usecase.CourseUseCase, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	})

	handler := NewCourseHandler(uc)
	router.POST("/courses", handler.CreateCourse)
	router.GET("/courses", handler.ListCourses)
	router.GET("/courses/:id", handler.GetCourse)
	router.POST("/courses/:id/enroll", handler.Enroll)
	return router
}

func TestCreateCourseHandlerInvalidCost(t *testing.T) {
	uc := new(MockCourseUseCase)
	router := setupCourseRouter(uc, "admin-1")

	uc.On("CreateCourse", mock.AnythingOfType("usecase.CreateCourseParams")).
		Return(nil, usecase.ErrInvalidCost)

	body, _ := json.Marshal(CreateCourseRequest{
		Title:       "Overpriced",
		Description: "Too many coins",
		Content:     "Lesson material",
		Category:    "misc",
		Cost:        999,
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/courses", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEnrollHandler(t *testing.T) {
	uc := new(MockCourseUseCase)
	router := setupCourseRouter(uc, "user-1")

	uc.On("Enroll", "user-1", "course-1").Return(&entity.EnrollmentReceipt{
		Course:         &entity.Course{ID: "course-1", Cost: 200},
		CoinsSpent:     200,
		RemainingCoins: 50,
	}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/courses/course-1/enroll", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var receipt entity.EnrollmentReceipt
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &receipt))
	assert.Equal(t, 50, receipt.RemainingCoins)
}

func TestEnrollHandlerInsufficientCoins(t *testing.T) {
	uc := new(MockCourseUseCase)
	router := setupCourseRouter(uc, "user-1")

	uc.On("Enroll", "user-1", "course-1").Return(nil, usecase.ErrInsufficientCoins)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/courses/course-1/enroll", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEnrollHandlerAlreadyEnrolled(t *testing.T) {
	uc := new(MockCourseUseCase)
	router := setupCourseRouter(uc, "user-1")

	uc.On("Enroll", "user-1", "course-1").Return(nil, usecase.ErrAlreadyEnrolled)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/courses/course-1/enroll", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestGetCourseHandlerNotFound(t *testing.T) {
	uc := new(MockCourseUseCase)
	router := setupCourseRouter(uc, "user-1")

	uc.On("GetCourse", "missing").Return(nil, usecase.ErrCourseNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/courses/missing", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
