package handler

import (
	"github.com/gin-gonic/gin"
	recruitingapp "github.com/recruitflow/backend/internal/application/recruiting"
)

// ApplicantHandler handles applicant-related API endpoints
type ApplicantHandler struct {
	BaseHandler
	applicantService *recruitingapp.ApplicantService
}

// NewApplicantHandler creates a new ApplicantHandler
func NewApplicantHandler(applicantService *recruitingapp.ApplicantService) *ApplicantHandler {
	return &ApplicantHandler{
		applicantService: applicantService,
	}
}

// List godoc
// @ID           listApplicants
// @Summary      List applicants
// @Description  Returns all applicants ordered by creation time, newest first
// @Tags         applicants
// @Produce      json
// @Success      200 {object} APIResponse[[]recruitingapp.ApplicantItem]
// @Failure      500 {object} dto.ErrorResponse
// @Router       /applicants [get]
func (h *ApplicantHandler) List(c *gin.Context) {
	applicants, err := h.applicantService.List(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, applicants)
}

// GetByID godoc
// @ID           getApplicantById
// @Summary      Get applicant by ID
// @Description  Retrieve an applicant by its ID
// @Tags         applicants
// @Produce      json
// @Param        id path int true "Applicant ID"
// @Success      200 {object} APIResponse[recruitingapp.ApplicantItem]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /applicants/{id} [get]
func (h *ApplicantHandler) GetByID(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	applicant, err := h.applicantService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, applicant)
}

// Create godoc
// @ID           createApplicant
// @Summary      Create a new applicant
// @Description  Register a new applicant with profile and stage information
// @Tags         applicants
// @Accept       json
// @Produce      json
// @Param        request body recruitingapp.CreateApplicantRequest true "Applicant creation request"
// @Success      201 {object} APIResponse[recruitingapp.ApplicantResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /applicants [post]
func (h *ApplicantHandler) Create(c *gin.Context) {
	var req recruitingapp.CreateApplicantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	applicant, err := h.applicantService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, applicant)
}

// Update godoc
// @ID           updateApplicant
// @Summary      Update an applicant
// @Description  Update applicant fields; only the provided fields are changed
// @Tags         applicants
// @Accept       json
// @Produce      json
// @Param        id path int true "Applicant ID"
// @Param        request body recruitingapp.UpdateApplicantRequest true "Applicant update request"
// @Success      200 {object} APIResponse[recruitingapp.ApplicantResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /applicants/{id} [put]
func (h *ApplicantHandler) Update(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	var req recruitingapp.UpdateApplicantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	applicant, err := h.applicantService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, applicant)
}

// Delete godoc
// @ID           deleteApplicant
// @Summary      Delete an applicant
// @Description  Delete an applicant along with its interviews and phone calls
// @Tags         applicants
// @Produce      json
// @Param        id path int true "Applicant ID"
// @Success      204 "No Content"
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /applicants/{id} [delete]
func (h *ApplicantHandler) Delete(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	if err := h.applicantService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// UpdateProgress godoc
// @ID           updateApplicantProgress
// @Summary      Update applicant stage progress
// @Description  Move an applicant to a pipeline stage, stamping the stage date
// @Tags         applicants
// @Accept       json
// @Produce      json
// @Param        id path int true "Applicant ID"
// @Param        request body recruitingapp.UpdateProgressRequest true "Progress update request"
// @Success      200 {object} APIResponse[recruitingapp.ApplicantResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /applicants/{id}/progress [put]
func (h *ApplicantHandler) UpdateProgress(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	var req recruitingapp.UpdateProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	applicant, err := h.applicantService.UpdateProgress(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, applicant)
}

// UpdateReferralFee godoc
// @ID           updateApplicantReferralFee
// @Summary      Update applicant referral fee
// @Description  Set or clear the referral fee recorded for an applicant
// @Tags         applicants
// @Accept       json
// @Produce      json
// @Param        id path int true "Applicant ID"
// @Param        request body recruitingapp.UpdateReferralFeeRequest true "Referral fee update request"
// @Success      200 {object} APIResponse[recruitingapp.ApplicantResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /applicants/{id}/referral-fee [put]
func (h *ApplicantHandler) UpdateReferralFee(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	var req recruitingapp.UpdateReferralFeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	applicant, err := h.applicantService.UpdateReferralFee(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, applicant)
}

// AssignEmployee godoc
// @ID           assignApplicantEmployee
// @Summary      Assign an employee to an applicant
// @Description  Set or clear the employee responsible for an applicant
// @Tags         applicants
// @Accept       json
// @Produce      json
// @Param        id path int true "Applicant ID"
// @Param        request body recruitingapp.AssignEmployeeRequest true "Employee assignment request"
// @Success      200 {object} APIResponse[recruitingapp.ApplicantResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /applicants/{id}/assign-employee [put]
func (h *ApplicantHandler) AssignEmployee(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	var req recruitingapp.AssignEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	applicant, err := h.applicantService.AssignEmployee(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, applicant)
}
