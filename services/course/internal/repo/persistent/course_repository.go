package persistent

import (
	"fmt"

	"gigconnect/services/course/internal/entity"
	"gigconnect/services/course/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CourseRepository interface {
	Create(course *entity.Course) error
	GetByID(id string) (*entity.Course, error)
	ListAll() ([]*entity.Course, error)
	Update(course *entity.Course) error
	Delete(id string) error
	IsEnrolled(userID, courseID string) (bool, error)
	ListEnrolledBy(userID string) ([]*entity.Course, error)
	GetUserCoins(userID string) (int, error)
	Redeem(userID string, course *entity.Course, newBalance int) error
}

type courseRepository struct {
	db *gorm.DB
}

func NewCourseRepository(db *gorm.DB) CourseRepository {
	return &courseRepository{db: db}
}

func (r *courseRepository) Create(course *entity.Course) error {
	courseModel := ToCourseModel(course)
	if courseModel.ID == "" {
		courseModel.ID = uuid.New().String()
	}
	if err := r.db.Create(courseModel).Error; err != nil {
		return err
	}
	*course = *ToCourseEntity(courseModel)
	return nil
}

func (r *courseRepository) GetByID(id string) (*entity.Course, error) {
	var courseModel model.CourseModel
	if err := r.db.Where("id = ?", id).First(&courseModel).Error; err != nil {
		return nil, err
	}
	return ToCourseEntity(&courseModel), nil
}

func (r *courseRepository) ListAll() ([]*entity.Course, error) {
	var courseModels []model.CourseModel
	if err := r.db.Order("created_at DESC").Find(&courseModels).Error; err != nil {
		return nil, err
	}

	courses := make([]*entity.Course, len(courseModels))
	for i := range courseModels {
		courses[i] = ToCourseEntity(&courseModels[i])
	}
	return courses, nil
}

func (r *courseRepository) Update(course *entity.Course) error {
	return r.db.Save(ToCourseModel(course)).Error
}

// Delete removes the course and its enrollments together; a failure on
// either statement rolls back both. Ledger rows referencing the course keep
// their history, the foreign key nulls out on delete.
func (r *courseRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("course_id = ?", id).Delete(&model.EnrollmentModel{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&model.CourseModel{}).Error
	})
}

func (r *courseRepository) IsEnrolled(userID, courseID string) (bool, error) {
	var count int64
	err := r.db.Model(&model.EnrollmentModel{}).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		Count(&count).Error
	return count > 0, err
}

func (r *courseRepository) ListEnrolledBy(userID string) ([]*entity.Course, error) {
	var courseModels []model.CourseModel
	err := r.db.
		Joins("JOIN enrollments ON enrollments.course_id = courses.id").
		Where("enrollments.user_id = ?", userID).
		Order("enrollments.created_at DESC").
		Find(&courseModels).Error
	if err != nil {
		return nil, err
	}

	courses := make([]*entity.Course, len(courseModels))
	for i := range courseModels {
		courses[i] = ToCourseEntity(&courseModels[i])
	}
	return courses, nil
}

func (r *courseRepository) GetUserCoins(userID string) (int, error) {
	var userModel model.UserModel
	if err := r.db.Where("id = ?", userID).First(&userModel).Error; err != nil {
		return 0, err
	}
	return userModel.Coins, nil
}

// Redeem debits the user, records the enrollment and appends the ledger
// entry in a single database transaction.
func (r *courseRepository) Redeem(userID string, course *entity.Course, newBalance int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.UserModel{}).
			Where("id = ?", userID).
			Update("coins", newBalance).Error; err != nil {
			return err
		}

		enrollment := &model.EnrollmentModel{
			UserID:   userID,
			CourseID: course.ID,
		}
		if err := tx.Create(enrollment).Error; err != nil {
			return err
		}

		courseID := course.ID
		transaction := &model.TransactionModel{
			UserID:      userID,
			CourseID:    &courseID,
			Type:        model.TransactionTypeCourseRedemption,
			Amount:      -course.Cost,
			Description: fmt.Sprintf("Redeemed course: %s", course.Title),
			Balance:     newBalance,
		}
		return tx.Create(transaction).Error
	})
}
