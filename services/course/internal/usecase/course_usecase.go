package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"

	"gigconnect/pkg/logger"
	"gigconnect/pkg/s3"
	"gigconnect/services/course/internal/entity"
	"gigconnect/services/course/internal/repo/persistent"
)

var (
	ErrCourseNotFound    = errors.New("course not found")
	ErrInvalidCost       = fmt.Errorf("course cost must be between %d and %d coins", entity.MinCost, entity.MaxCost)
	ErrAlreadyEnrolled   = errors.New("you are already enrolled in this course")
	ErrInsufficientCoins = errors.New("insufficient coins to redeem this course")
	ErrUserNotFound      = errors.New("user not found")
)

// CatalogCache caches the full course list; a nil cache disables caching.
type CatalogCache interface {
	Get(ctx context.Context) ([]*entity.Course, error)
	Set(ctx context.Context, courses []*entity.Course) error
	Invalidate(ctx context.Context) error
}

type CreateCourseParams struct {
	Title       string
	Description string
	Content     string
	Category    string
	Cost        int
}

type UpdateCourseParams struct {
	Title       *string
	Description *string
	Content     *string
	Category    *string
	Cost        *int
}

type CourseUseCase interface {
	CreateCourse(params CreateCourseParams) (*entity.Course, error)
	GetCourse(courseID string) (*entity.Course, error)
	ListCourses(ctx context.Context) ([]*entity.Course, error)
	ListMyCourses(userID string) ([]*entity.Course, error)
	UpdateCourse(courseID string, params UpdateCourseParams) (*entity.Course, error)
	DeleteCourse(courseID string) error
	Enroll(userID, courseID string) (*entity.EnrollmentReceipt, error)
	UploadThumbnail(courseID string, fileReader io.Reader, fileKey string, contentType string) (*entity.Course, error)
}

type courseUseCase struct {
	courseRepo persistent.CourseRepository
	cache      CatalogCache
	s3Client   *s3.Client
	logger     *logger.Logger
}

func NewCourseUseCase(
	courseRepo persistent.CourseRepository,
	cache CatalogCache,
	s3Client *s3.Client,
	logger *logger.Logger,
) CourseUseCase {
	return &courseUseCase{
		courseRepo: courseRepo,
		cache:      cache,
		s3Client:   s3Client,
		logger:     logger,
	}
}

func validCost(cost int) bool {
	return cost >= entity.MinCost && cost <= entity.MaxCost
}

func (uc *courseUseCase) CreateCourse(params CreateCourseParams) (*entity.Course, error) {
	if !validCost(params.Cost) {
		return nil, ErrInvalidCost
	}

	course := &entity.Course{
		Title:       params.Title,
		Description: params.Description,
		Content:     params.Content,
		Category:    params.Category,
		Cost:        params.Cost,
	}

	if err := uc.courseRepo.Create(course); err != nil {
		uc.logger.Error("Failed to create course: %v", err)
		return nil, fmt.Errorf("failed to create course")
	}

	uc.invalidateCatalog()
	return course, nil
}

func (uc *courseUseCase) GetCourse(courseID string) (*entity.Course, error) {
	course, err := uc.courseRepo.GetByID(courseID)
	if err != nil {
		return nil, ErrCourseNotFound
	}
	return course, nil
}

func (uc *courseUseCase) ListCourses(ctx context.Context) ([]*entity.Course, error) {
	if uc.cache != nil {
		if courses, err := uc.cache.Get(ctx); err == nil {
			return courses, nil
		}
	}

	courses, err := uc.courseRepo.ListAll()
	if err != nil {
		uc.logger.Error("Failed to list courses: %v", err)
		return nil, fmt.Errorf("failed to list courses")
	}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, courses); err != nil {
			uc.logger.Warn("Failed to cache course catalog: %v", err)
		}
	}

	return courses, nil
}

func (uc *courseUseCase) ListMyCourses(userID string) ([]*entity.Course, error) {
	courses, err := uc.courseRepo.ListEnrolledBy(userID)
	if err != nil {
		uc.logger.Error("Failed to list enrolled courses: %v", err)
		return nil, fmt.Errorf("failed to list courses")
	}
	return courses, nil
}

func (uc *courseUseCase) UpdateCourse(courseID string, params UpdateCourseParams) (*entity.Course, error) {
	course, err := uc.courseRepo.GetByID(courseID)
	if err != nil {
		return nil, ErrCourseNotFound
	}

	if params.Title != nil {
		course.Title = *params.Title
	}
	if params.Description != nil {
		course.Description = *params.Description
	}
	if params.Content != nil {
		course.Content = *params.Content
	}
	if params.Category != nil {
		course.Category = *params.Category
	}
	if params.Cost != nil {
		if !validCost(*params.Cost) {
			return nil, ErrInvalidCost
		}
		course.Cost = *params.Cost
	}

	if err := uc.courseRepo.Update(course); err != nil {
		uc.logger.Error("Failed to update course: %v", err)
		return nil, fmt.Errorf("failed to update course")
	}

	uc.invalidateCatalog()
	return course, nil
}

func (uc *courseUseCase) DeleteCourse(courseID string) error {
	if _, err := uc.courseRepo.GetByID(courseID); err != nil {
		return ErrCourseNotFound
	}

	if err := uc.courseRepo.Delete(courseID); err != nil {
		uc.logger.Error("Failed to delete course: %v", err)
		return fmt.Errorf("failed to delete course")
	}

	uc.invalidateCatalog()
	return nil
}

func (uc *courseUseCase) Enroll(userID, courseID string) (*entity.EnrollmentReceipt, error) {
	course, err := uc.courseRepo.GetByID(courseID)
	if err != nil {
		return nil, ErrCourseNotFound
	}

	enrolled, err := uc.courseRepo.IsEnrolled(userID, courseID)
	if err != nil {
		uc.logger.Error("Failed to check enrollment: %v", err)
		return nil, fmt.Errorf("failed to enroll")
	}
	if enrolled {
		return nil, ErrAlreadyEnrolled
	}

	coins, err := uc.courseRepo.GetUserCoins(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	if coins < course.Cost {
		return nil, ErrInsufficientCoins
	}

	newBalance := coins - course.Cost
	if err := uc.courseRepo.Redeem(userID, course, newBalance); err != nil {
		uc.logger.Error("Failed to redeem course: %v", err)
		return nil, fmt.Errorf("failed to enroll")
	}

	return &entity.EnrollmentReceipt{
		Course:         course,
		CoinsSpent:     course.Cost,
		RemainingCoins: newBalance,
	}, nil
}

func (uc *courseUseCase) UploadThumbnail(courseID string, fileReader io.Reader, fileKey string, contentType string) (*entity.Course, error) {
	course, err := uc.courseRepo.GetByID(courseID)
	if err != nil {
		return nil, ErrCourseNotFound
	}

	thumbnailURL, err := uc.s3Client.UploadFile(fileKey, fileReader, contentType)
	if err != nil {
		uc.logger.Error("Failed to upload thumbnail: %v", err)
		return nil, fmt.Errorf("failed to upload thumbnail")
	}

	course.ThumbnailURL = thumbnailURL
	if err := uc.courseRepo.Update(course); err != nil {
		uc.logger.Error("Failed to update course: %v", err)
		return nil, fmt.Errorf("failed to update course")
	}

	uc.invalidateCatalog()
	return course, nil
}

func (uc *courseUseCase) invalidateCatalog() {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.Invalidate(context.Background()); err != nil {
		uc.logger.Warn("Failed to invalidate course catalog cache: %v", err)
	}
}
