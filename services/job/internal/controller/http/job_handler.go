package http

import (
	"errors"
	"net/http"
	"time"

	"gigconnect/services/job/internal/entity"
	"gigconnect/services/job/internal/usecase"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUseCase usecase.JobUseCase
}

func NewJobHandler(jobUseCase usecase.JobUseCase) *JobHandler {
	return &JobHandler{
		jobUseCase: jobUseCase,
	}
}

type JobLocationRequest struct {
	Lat     float64 `json:"lat" binding:"required"`
	Lng     float64 `json:"lng" binding:"required"`
	Country string  `json:"country" binding:"required"`
	State   string  `json:"state" binding:"required"`
	City    string  `json:"city" binding:"required"`
}

type CreateJobRequest struct {
	Title       string             `json:"title" binding:"required"`
	Description string             `json:"description" binding:"required"`
	Location    JobLocationRequest `json:"location" binding:"required"`
	Salary      *int               `json:"salary,omitempty"`
	Deadline    *time.Time         `json:"deadline,omitempty"`
}

type UpdateJobRequest struct {
	Title       *string             `json:"title,omitempty"`
	Description *string             `json:"description,omitempty"`
	Location    *JobLocationRequest `json:"location,omitempty"`
	Status      *string             `json:"status,omitempty"`
	Salary      *int                `json:"salary,omitempty"`
	Deadline    *time.Time          `json:"deadline,omitempty"`
}

type ApplicantStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// CreateJob godoc
// @Summary      Create a job posting
// @Description  Create a new job posting with the current user as poster
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateJobRequest true "Job data"
// @Success      201  {object}  entity.Job
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /jobs [post]
func (h *JobHandler) CreateJob(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	job, err := h.jobUseCase.CreateJob(userID.(string), usecase.CreateJobParams{
		Title:       req.Title,
		Description: req.Description,
		Location: entity.JobLocation{
			Lat:     req.Location.Lat,
			Lng:     req.Location.Lng,
			Country: req.Location.Country,
			State:   req.Location.State,
			City:    req.Location.City,
		},
		Salary:   req.Salary,
		Deadline: req.Deadline,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, job)
}

// ListJobs godoc
// @Summary      List all jobs
// @Description  List all job postings, newest first
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   entity.Job
// @Failure      500  {object}  map[string]string
// @Router       /jobs [get]
func (h *JobHandler) ListJobs(c *gin.Context) {
	jobs, err := h.jobUseCase.ListJobs()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, jobs)
}

// GetJob godoc
// @Summary      Get a job
// @Description  Get a job posting with its applicant list
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Job ID"
// @Success      200  {object}  entity.Job
// @Failure      404  {object}  map[string]string
// @Router       /jobs/{id} [get]
func (h *JobHandler) GetJob(c *gin.Context) {
	job, err := h.jobUseCase.GetJob(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		return
	}

	c.JSON(http.StatusOK, job)
}

// ListMyJobs godoc
// @Summary      List jobs posted by the current user
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   entity.Job
// @Failure      401  {object}  map[string]string
// @Router       /jobs/mine [get]
func (h *JobHandler) ListMyJobs(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	jobs, err := h.jobUseCase.ListUserJobs(userID.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, jobs)
}

// ListAppliedJobs godoc
// @Summary      List jobs the current user applied to
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   entity.Job
// @Failure      401  {object}  map[string]string
// @Router       /jobs/applied [get]
func (h *JobHandler) ListAppliedJobs(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	jobs, err := h.jobUseCase.ListAppliedJobs(userID.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, jobs)
}

// UpdateJob godoc
// @Summary      Update a job
// @Description  Partially update a job posting; only the poster may update
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Job ID"
// @Param        request body UpdateJobRequest true "Job fields to update"
// @Success      200  {object}  entity.Job
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /jobs/{id} [put]
func (h *JobHandler) UpdateJob(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	params := usecase.UpdateJobParams{
		Title:       req.Title,
		Description: req.Description,
		Salary:      req.Salary,
		Deadline:    req.Deadline,
	}
	if req.Location != nil {
		params.Location = &entity.JobLocation{
			Lat:     req.Location.Lat,
			Lng:     req.Location.Lng,
			Country: req.Location.Country,
			State:   req.Location.State,
			City:    req.Location.City,
		}
	}
	if req.Status != nil {
		status := entity.JobStatus(*req.Status)
		params.Status = &status
	}

	job, err := h.jobUseCase.UpdateJob(c.Param("id"), userID.(string), params)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrJobNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, usecase.ErrNotJobPoster):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.Is(err, usecase.ErrInvalidJobStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, job)
}

// DeleteJob godoc
// @Summary      Delete a job
// @Description  Delete a job posting and its applications; only the poster may delete
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Job ID"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /jobs/{id} [delete]
func (h *JobHandler) DeleteJob(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.jobUseCase.DeleteJob(c.Param("id"), userID.(string)); err != nil {
		switch {
		case errors.Is(err, usecase.ErrJobNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, usecase.ErrNotJobPoster):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Job deleted successfully"})
}

// Apply godoc
// @Summary      Apply to a job
// @Description  Add the current user as a pending applicant on the job
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Job ID"
// @Success      200  {object}  entity.Job
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /jobs/{id}/apply [post]
func (h *JobHandler) Apply(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	job, err := h.jobUseCase.Apply(c.Param("id"), userID.(string))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrJobNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, usecase.ErrSelfApplication):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, usecase.ErrDuplicateApplication):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, job)
}

// SetApplicantStatus godoc
// @Summary      Set an applicant's status
// @Description  Accept or reject an applicant; only the poster may decide
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Job ID"
// @Param        userId path string true "Applicant user ID"
// @Param        request body ApplicantStatusRequest true "New status"
// @Success      200  {object}  entity.Job
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /jobs/{id}/applicants/{userId} [put]
func (h *JobHandler) SetApplicantStatus(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req ApplicantStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	job, err := h.jobUseCase.SetApplicantStatus(
		c.Param("id"),
		userID.(string),
		c.Param("userId"),
		entity.ApplicantStatus(req.Status),
	)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrJobNotFound), errors.Is(err, usecase.ErrApplicantNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, usecase.ErrNotJobPoster):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.Is(err, usecase.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, job)
}
