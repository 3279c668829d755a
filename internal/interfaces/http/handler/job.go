package handler

import (
	"github.com/gin-gonic/gin"
	recruitingapp "github.com/recruitflow/backend/internal/application/recruiting"
)

// JobHandler handles job posting API endpoints
type JobHandler struct {
	BaseHandler
	jobService *recruitingapp.JobService
}

// NewJobHandler creates a new JobHandler
func NewJobHandler(jobService *recruitingapp.JobService) *JobHandler {
	return &JobHandler{
		jobService: jobService,
	}
}

// List godoc
// @ID           listJobs
// @Summary      List jobs
// @Description  Returns all job postings ordered by creation time, newest first
// @Tags         jobs
// @Produce      json
// @Success      200 {object} APIResponse[[]recruitingapp.JobResponse]
// @Failure      500 {object} dto.ErrorResponse
// @Router       /jobs [get]
func (h *JobHandler) List(c *gin.Context) {
	jobs, err := h.jobService.List(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, jobs)
}

// GetByID godoc
// @ID           getJobById
// @Summary      Get job by ID
// @Description  Retrieve a job posting by its ID
// @Tags         jobs
// @Produce      json
// @Param        id path int true "Job ID"
// @Success      200 {object} APIResponse[recruitingapp.JobResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /jobs/{id} [get]
func (h *JobHandler) GetByID(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	job, err := h.jobService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, job)
}

// Create godoc
// @ID           createJob
// @Summary      Create a new job
// @Description  Register a new job posting
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        request body recruitingapp.CreateJobRequest true "Job creation request"
// @Success      201 {object} APIResponse[recruitingapp.JobResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /jobs [post]
func (h *JobHandler) Create(c *gin.Context) {
	var req recruitingapp.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	job, err := h.jobService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, job)
}

// Update godoc
// @ID           updateJob
// @Summary      Update a job
// @Description  Update job posting fields; only the provided fields are changed
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id path int true "Job ID"
// @Param        request body recruitingapp.UpdateJobRequest true "Job update request"
// @Success      200 {object} APIResponse[recruitingapp.JobResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /jobs/{id} [put]
func (h *JobHandler) Update(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	var req recruitingapp.UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	job, err := h.jobService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, job)
}

// Delete godoc
// @ID           deleteJob
// @Summary      Delete a job
// @Description  Delete a job posting; interviews referencing it are detached
// @Tags         jobs
// @Produce      json
// @Param        id path int true "Job ID"
// @Success      204 "No Content"
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /jobs/{id} [delete]
func (h *JobHandler) Delete(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	if err := h.jobService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
