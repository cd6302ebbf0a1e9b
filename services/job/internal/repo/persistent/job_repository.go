package persistent

import (
	"time"

	"gigconnect/services/job/internal/entity"
	"gigconnect/services/job/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type JobRepository interface {
	Create(job *entity.Job) error
	GetByID(id string) (*entity.Job, error)
	ListAll() ([]*entity.Job, error)
	ListByPoster(posterID string) ([]*entity.Job, error)
	ListAppliedBy(userID string) ([]*entity.Job, error)
	Update(job *entity.Job) error
	Delete(id string) error
	AddApplicant(jobID, userID string, status entity.ApplicantStatus, appliedAt time.Time) error
	UpdateApplicantStatus(jobID, userID string, status entity.ApplicantStatus) (int64, error)
}

type jobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{db: db}
}

func (r *jobRepository) Create(job *entity.Job) error {
	jobModel := ToJobModel(job)
	if jobModel.ID == "" {
		jobModel.ID = uuid.New().String()
	}
	if err := r.db.Create(jobModel).Error; err != nil {
		return err
	}
	*job = *ToJobEntity(jobModel)
	return nil
}

func (r *jobRepository) GetByID(id string) (*entity.Job, error) {
	var jobModel model.JobModel
	if err := r.db.Where("id = ?", id).First(&jobModel).Error; err != nil {
		return nil, err
	}

	job := ToJobEntity(&jobModel)

	var applicantModels []model.JobApplicantModel
	if err := r.db.Where("job_id = ?", id).Order("applied_at ASC").Find(&applicantModels).Error; err != nil {
		return nil, err
	}

	job.Applicants = make([]entity.Applicant, len(applicantModels))
	userIDs := []string{job.PosterID}
	for i := range applicantModels {
		job.Applicants[i] = ToApplicantEntity(&applicantModels[i])
		userIDs = append(userIDs, applicantModels[i].UserID)
	}
	job.ApplicantCount = len(job.Applicants)

	summaries, err := r.userSummaries(userIDs)
	if err != nil {
		return nil, err
	}
	job.Poster = summaries[job.PosterID]
	for i := range job.Applicants {
		job.Applicants[i].User = summaries[job.Applicants[i].UserID]
	}

	return job, nil
}

func (r *jobRepository) ListAll() ([]*entity.Job, error) {
	var jobModels []model.JobModel
	if err := r.db.Order("created_at DESC").Find(&jobModels).Error; err != nil {
		return nil, err
	}
	return r.decorate(jobModels)
}

func (r *jobRepository) ListByPoster(posterID string) ([]*entity.Job, error) {
	var jobModels []model.JobModel
	if err := r.db.Where("poster_id = ?", posterID).Order("created_at DESC").Find(&jobModels).Error; err != nil {
		return nil, err
	}
	return r.decorate(jobModels)
}

func (r *jobRepository) ListAppliedBy(userID string) ([]*entity.Job, error) {
	var jobModels []model.JobModel
	err := r.db.
		Joins("JOIN job_applicants ON job_applicants.job_id = jobs.id").
		Where("job_applicants.user_id = ?", userID).
		Order("jobs.created_at DESC").
		Find(&jobModels).Error
	if err != nil {
		return nil, err
	}
	return r.decorate(jobModels)
}

func (r *jobRepository) Update(job *entity.Job) error {
	jobModel := ToJobModel(job)
	return r.db.Save(jobModel).Error
}

func (r *jobRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("job_id = ?", id).Delete(&model.JobApplicantModel{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&model.JobModel{}).Error
	})
}

func (r *jobRepository) AddApplicant(jobID, userID string, status entity.ApplicantStatus, appliedAt time.Time) error {
	applicant := &model.JobApplicantModel{
		ID:        uuid.New().String(),
		JobID:     jobID,
		UserID:    userID,
		Status:    string(status),
		AppliedAt: appliedAt,
	}
	return r.db.Create(applicant).Error
}

func (r *jobRepository) UpdateApplicantStatus(jobID, userID string, status entity.ApplicantStatus) (int64, error) {
	result := r.db.Model(&model.JobApplicantModel{}).
		Where("job_id = ? AND user_id = ?", jobID, userID).
		Update("status", string(status))
	return result.RowsAffected, result.Error
}

// decorate attaches poster summaries and applicant counts to listed jobs.
func (r *jobRepository) decorate(jobModels []model.JobModel) ([]*entity.Job, error) {
	jobs := make([]*entity.Job, len(jobModels))
	if len(jobModels) == 0 {
		return jobs, nil
	}

	jobIDs := make([]string, len(jobModels))
	posterIDs := make([]string, len(jobModels))
	for i := range jobModels {
		jobs[i] = ToJobEntity(&jobModels[i])
		jobIDs[i] = jobModels[i].ID
		posterIDs[i] = jobModels[i].PosterID
	}

	summaries, err := r.userSummaries(posterIDs)
	if err != nil {
		return nil, err
	}

	type applicantCount struct {
		JobID string
		Count int
	}
	var counts []applicantCount
	err = r.db.Model(&model.JobApplicantModel{}).
		Select("job_id, count(*) as count").
		Where("job_id IN ?", jobIDs).
		Group("job_id").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}

	countByJob := make(map[string]int, len(counts))
	for _, c := range counts {
		countByJob[c.JobID] = c.Count
	}

	for i := range jobs {
		jobs[i].Poster = summaries[jobs[i].PosterID]
		jobs[i].ApplicantCount = countByJob[jobs[i].ID]
	}

	return jobs, nil
}

func (r *jobRepository) userSummaries(userIDs []string) (map[string]*entity.UserSummary, error) {
	var userModels []model.UserModel
	if err := r.db.Where("id IN ?", userIDs).Find(&userModels).Error; err != nil {
		return nil, err
	}

	summaries := make(map[string]*entity.UserSummary, len(userModels))
	for i := range userModels {
		summaries[userModels[i].ID] = ToUserSummary(&userModels[i])
	}
	return summaries, nil
}
