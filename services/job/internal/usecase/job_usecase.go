package usecase

import (
	"errors"
	"fmt"
	"time"

	"gigconnect/pkg/logger"
	"gigconnect/services/job/internal/entity"
	"gigconnect/services/job/internal/repo/persistent"
)

var (
	ErrJobNotFound          = errors.New("job not found")
	ErrNotJobPoster         = errors.New("user not authorized for this job")
	ErrSelfApplication      = errors.New("you cannot apply to your own job")
	ErrDuplicateApplication = errors.New("you have already applied to this job")
	ErrApplicantNotFound    = errors.New("applicant not found")
	ErrInvalidStatus        = errors.New("invalid applicant status")
	ErrInvalidJobStatus     = errors.New("invalid job status")
)

// TaskPublisher is the queue surface this service publishes to.
type TaskPublisher interface {
	PublishNotificationTask(task map[string]interface{}) error
	PublishRewardTask(task map[string]interface{}) error
}

type CreateJobParams struct {
	Title       string
	Description string
	Location    entity.JobLocation
	Salary      *int
	Deadline    *time.Time
}

type UpdateJobParams struct {
	Title       *string
	Description *string
	Location    *entity.JobLocation
	Status      *entity.JobStatus
	Salary      *int
	Deadline    *time.Time
}

type JobUseCase interface {
	CreateJob(posterID string, params CreateJobParams) (*entity.Job, error)
	GetJob(jobID string) (*entity.Job, error)
	ListJobs() ([]*entity.Job, error)
	ListUserJobs(posterID string) ([]*entity.Job, error)
	ListAppliedJobs(userID string) ([]*entity.Job, error)
	UpdateJob(jobID, actorID string, params UpdateJobParams) (*entity.Job, error)
	DeleteJob(jobID, actorID string) error
	Apply(jobID, applicantID string) (*entity.Job, error)
	SetApplicantStatus(jobID, actorID, targetUserID string, status entity.ApplicantStatus) (*entity.Job, error)
}

type jobUseCase struct {
	jobRepo          persistent.JobRepository
	queue            TaskPublisher
	completionReward int
	logger           *logger.Logger
}

func NewJobUseCase(
	jobRepo persistent.JobRepository,
	queue TaskPublisher,
	completionReward int,
	logger *logger.Logger,
) JobUseCase {
	return &jobUseCase{
		jobRepo:          jobRepo,
		queue:            queue,
		completionReward: completionReward,
		logger:           logger,
	}
}

func (uc *jobUseCase) CreateJob(posterID string, params CreateJobParams) (*entity.Job, error) {
	job := &entity.Job{
		Title:       params.Title,
		Description: params.Description,
		Location:    params.Location,
		PosterID:    posterID,
		Status:      entity.JobStatusOpen,
		Salary:      params.Salary,
		Deadline:    params.Deadline,
	}

	if err := uc.jobRepo.Create(job); err != nil {
		uc.logger.Error("Failed to create job: %v", err)
		return nil, fmt.Errorf("failed to create job")
	}

	return job, nil
}

func (uc *jobUseCase) GetJob(jobID string) (*entity.Job, error) {
	job, err := uc.jobRepo.GetByID(jobID)
	if err != nil {
		return nil, ErrJobNotFound
	}
	return job, nil
}

func (uc *jobUseCase) ListJobs() ([]*entity.Job, error) {
	jobs, err := uc.jobRepo.ListAll()
	if err != nil {
		uc.logger.Error("Failed to list jobs: %v", err)
		return nil, fmt.Errorf("failed to list jobs")
	}
	return jobs, nil
}

func (uc *jobUseCase) ListUserJobs(posterID string) ([]*entity.Job, error) {
	jobs, err := uc.jobRepo.ListByPoster(posterID)
	if err != nil {
		uc.logger.Error("Failed to list user jobs: %v", err)
		return nil, fmt.Errorf("failed to list jobs")
	}
	return jobs, nil
}

func (uc *jobUseCase) ListAppliedJobs(userID string) ([]*entity.Job, error) {
	jobs, err := uc.jobRepo.ListAppliedBy(userID)
	if err != nil {
		uc.logger.Error("Failed to list applied jobs: %v", err)
		return nil, fmt.Errorf("failed to list jobs")
	}
	return jobs, nil
}

func (uc *jobUseCase) UpdateJob(jobID, actorID string, params UpdateJobParams) (*entity.Job, error) {
	job, err := uc.jobRepo.GetByID(jobID)
	if err != nil {
		return nil, ErrJobNotFound
	}

	if job.PosterID != actorID {
		return nil, ErrNotJobPoster
	}

	wasCompleted := job.Status == entity.JobStatusCompleted

	if params.Title != nil {
		job.Title = *params.Title
	}
	if params.Description != nil {
		job.Description = *params.Description
	}
	if params.Location != nil {
		job.Location = *params.Location
	}
	if params.Status != nil {
		if !params.Status.Valid() {
			return nil, ErrInvalidJobStatus
		}
		job.Status = *params.Status
	}
	if params.Salary != nil {
		job.Salary = params.Salary
	}
	if params.Deadline != nil {
		job.Deadline = params.Deadline
	}

	if err := uc.jobRepo.Update(job); err != nil {
		uc.logger.Error("Failed to update job: %v", err)
		return nil, fmt.Errorf("failed to update job")
	}

	// A job newly marked completed earns its accepted applicants a coin reward.
	if !wasCompleted && job.Status == entity.JobStatusCompleted {
		uc.publishCompletionRewards(job)
	}

	return uc.jobRepo.GetByID(jobID)
}

func (uc *jobUseCase) DeleteJob(jobID, actorID string) error {
	job, err := uc.jobRepo.GetByID(jobID)
	if err != nil {
		return ErrJobNotFound
	}

	if job.PosterID != actorID {
		return ErrNotJobPoster
	}

	if err := uc.jobRepo.Delete(jobID); err != nil {
		uc.logger.Error("Failed to delete job: %v", err)
		return fmt.Errorf("failed to delete job")
	}

	return nil
}

func (uc *jobUseCase) Apply(jobID, applicantID string) (*entity.Job, error) {
	job, err := uc.jobRepo.GetByID(jobID)
	if err != nil {
		return nil, ErrJobNotFound
	}

	if job.PosterID == applicantID {
		return nil, ErrSelfApplication
	}

	if job.HasApplicant(applicantID) {
		return nil, ErrDuplicateApplication
	}

	if err := uc.jobRepo.AddApplicant(jobID, applicantID, entity.ApplicantStatusPending, time.Now()); err != nil {
		uc.logger.Error("Failed to add applicant: %v", err)
		return nil, fmt.Errorf("failed to apply for job")
	}

	// Notify the poster about the new application
	if uc.queue != nil {
		go func() {
			task := map[string]interface{}{
				"type":         "job_application",
				"user_id":      job.PosterID,
				"applicant_id": applicantID,
				"job_id":       jobID,
			}
			if err := uc.queue.PublishNotificationTask(task); err != nil {
				uc.logger.Error("Failed to publish application notification: %v", err)
			}
		}()
	}

	return uc.jobRepo.GetByID(jobID)
}

func (uc *jobUseCase) SetApplicantStatus(jobID, actorID, targetUserID string, status entity.ApplicantStatus) (*entity.Job, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	job, err := uc.jobRepo.GetByID(jobID)
	if err != nil {
		return nil, ErrJobNotFound
	}

	if job.PosterID != actorID {
		return nil, ErrNotJobPoster
	}

	if !job.HasApplicant(targetUserID) {
		return nil, ErrApplicantNotFound
	}

	rows, err := uc.jobRepo.UpdateApplicantStatus(jobID, targetUserID, status)
	if err != nil {
		uc.logger.Error("Failed to update applicant status: %v", err)
		return nil, fmt.Errorf("failed to update applicant status")
	}
	if rows == 0 {
		return nil, ErrApplicantNotFound
	}

	// Notify the applicant about the decision
	if uc.queue != nil {
		go func() {
			task := map[string]interface{}{
				"type":    "application_status",
				"user_id": targetUserID,
				"job_id":  jobID,
				"status":  string(status),
			}
			if err := uc.queue.PublishNotificationTask(task); err != nil {
				uc.logger.Error("Failed to publish status notification: %v", err)
			}
		}()
	}

	return uc.jobRepo.GetByID(jobID)
}

func (uc *jobUseCase) publishCompletionRewards(job *entity.Job) {
	if uc.queue == nil {
		return
	}

	for _, applicant := range job.Applicants {
		if applicant.Status != entity.ApplicantStatusAccepted {
			continue
		}

		task := map[string]interface{}{
			"type":      "job_completion",
			"user_id":   applicant.UserID,
			"job_id":    job.ID,
			"job_title": job.Title,
			"amount":    uc.completionReward,
		}
		if err := uc.queue.PublishRewardTask(task); err != nil {
			uc.logger.Error("Failed to publish completion reward for user %s: %v", applicant.UserID, err)
		}
	}
}
