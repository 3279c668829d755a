package handler

import (
	"github.com/gin-gonic/gin"
	matchingapp "github.com/recruitflow/backend/internal/application/matching"
)

// MatchingHandler handles applicant/job matching endpoints
type MatchingHandler struct {
	BaseHandler
	matchingService *matchingapp.MatchingService
}

// NewMatchingHandler creates a new MatchingHandler
func NewMatchingHandler(matchingService *matchingapp.MatchingService) *MatchingHandler {
	return &MatchingHandler{
		matchingService: matchingService,
	}
}

// JobsForApplicant godoc
// @ID           matchJobsForApplicant
// @Summary      Match jobs for an applicant
// @Description  Scores every job against the applicant profile and returns the ranked list
// @Tags         matching
// @Produce      json
// @Param        id path int true "Applicant ID"
// @Param        sort_by query string false "Ranking order" Enums(age_limit, location)
// @Success      200 {object} APIResponse[[]matchingapp.JobMatchResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /matching/applicant/{id} [get]
func (h *MatchingHandler) JobsForApplicant(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	matches, err := h.matchingService.JobsForApplicant(c.Request.Context(), id, c.Query("sort_by"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, matches)
}

// ApplicantsForJob godoc
// @ID           matchApplicantsForJob
// @Summary      Match applicants for a job
// @Description  Scores every applicant against the job posting and returns the ranked list
// @Tags         matching
// @Produce      json
// @Param        id path int true "Job ID"
// @Param        sort_by query string false "Ranking order" Enums(age, location)
// @Success      200 {object} APIResponse[[]matchingapp.ApplicantMatchResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /matching/job/{id} [get]
func (h *MatchingHandler) ApplicantsForJob(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	matches, err := h.matchingService.ApplicantsForJob(c.Request.Context(), id, c.Query("sort_by"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, matches)
}
