package handler

import (
	"github.com/gin-gonic/gin"
	recruitingapp "github.com/recruitflow/backend/internal/application/recruiting"
)

// InterviewHandler handles interview API endpoints
type InterviewHandler struct {
	BaseHandler
	interviewService *recruitingapp.InterviewService
}

// NewInterviewHandler creates a new InterviewHandler
func NewInterviewHandler(interviewService *recruitingapp.InterviewService) *InterviewHandler {
	return &InterviewHandler{
		interviewService: interviewService,
	}
}

// List godoc
// @ID           listInterviews
// @Summary      List interviews
// @Description  Returns interviews, optionally filtered by applicant
// @Tags         interviews
// @Produce      json
// @Param        applicant_id query int false "Filter by applicant ID"
// @Success      200 {object} APIResponse[[]recruitingapp.InterviewResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /interviews [get]
func (h *InterviewHandler) List(c *gin.Context) {
	applicantID, ok := h.optionalIDQuery(c, "applicant_id")
	if !ok {
		return
	}

	interviews, err := h.interviewService.List(c.Request.Context(), applicantID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, interviews)
}

// GetByID godoc
// @ID           getInterviewById
// @Summary      Get interview by ID
// @Description  Retrieve an interview by its ID
// @Tags         interviews
// @Produce      json
// @Param        id path int true "Interview ID"
// @Success      200 {object} APIResponse[recruitingapp.InterviewResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /interviews/{id} [get]
func (h *InterviewHandler) GetByID(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	interview, err := h.interviewService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, interview)
}

// Create godoc
// @ID           createInterview
// @Summary      Create a new interview
// @Description  Schedule an interview for an applicant
// @Tags         interviews
// @Accept       json
// @Produce      json
// @Param        request body recruitingapp.CreateInterviewRequest true "Interview creation request"
// @Success      201 {object} APIResponse[recruitingapp.InterviewResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /interviews [post]
func (h *InterviewHandler) Create(c *gin.Context) {
	var req recruitingapp.CreateInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	interview, err := h.interviewService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, interview)
}

// Update godoc
// @ID           updateInterview
// @Summary      Update an interview
// @Description  Update interview fields; only the provided fields are changed
// @Tags         interviews
// @Accept       json
// @Produce      json
// @Param        id path int true "Interview ID"
// @Param        request body recruitingapp.UpdateInterviewRequest true "Interview update request"
// @Success      200 {object} APIResponse[recruitingapp.InterviewResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /interviews/{id} [put]
func (h *InterviewHandler) Update(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	var req recruitingapp.UpdateInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	interview, err := h.interviewService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, interview)
}

// Delete godoc
// @ID           deleteInterview
// @Summary      Delete an interview
// @Description  Delete an interview record
// @Tags         interviews
// @Produce      json
// @Param        id path int true "Interview ID"
// @Success      204 "No Content"
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /interviews/{id} [delete]
func (h *InterviewHandler) Delete(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	if err := h.interviewService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// Statistics godoc
// @ID           getInterviewStatistics
// @Summary      Get interview statistics
// @Description  Counts interviews by result and computes the pass rate
// @Tags         interviews
// @Produce      json
// @Success      200 {object} APIResponse[recruitingapp.InterviewStatisticsResponse]
// @Failure      500 {object} dto.ErrorResponse
// @Router       /interviews/statistics [get]
func (h *InterviewHandler) Statistics(c *gin.Context) {
	stats, err := h.interviewService.Statistics(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, stats)
}
