package handler

import (
	"github.com/gin-gonic/gin"
	recruitingapp "github.com/recruitflow/backend/internal/application/recruiting"
)

// PhoneCallHandler handles phone call log API endpoints
type PhoneCallHandler struct {
	BaseHandler
	phoneCallService *recruitingapp.PhoneCallService
}

// NewPhoneCallHandler creates a new PhoneCallHandler
func NewPhoneCallHandler(phoneCallService *recruitingapp.PhoneCallService) *PhoneCallHandler {
	return &PhoneCallHandler{
		phoneCallService: phoneCallService,
	}
}

// List godoc
// @ID           listPhoneCalls
// @Summary      List phone calls
// @Description  Returns phone call records, optionally filtered by applicant or employee
// @Tags         phone-calls
// @Produce      json
// @Param        applicant_id query int false "Filter by applicant ID"
// @Param        employee_id query int false "Filter by employee ID"
// @Success      200 {object} APIResponse[[]recruitingapp.PhoneCallResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /phone-calls [get]
func (h *PhoneCallHandler) List(c *gin.Context) {
	applicantID, ok := h.optionalIDQuery(c, "applicant_id")
	if !ok {
		return
	}
	employeeID, ok := h.optionalIDQuery(c, "employee_id")
	if !ok {
		return
	}

	calls, err := h.phoneCallService.List(c.Request.Context(), applicantID, employeeID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, calls)
}

// GetByID godoc
// @ID           getPhoneCallById
// @Summary      Get phone call by ID
// @Description  Retrieve a phone call record by its ID
// @Tags         phone-calls
// @Produce      json
// @Param        id path int true "Phone call ID"
// @Success      200 {object} APIResponse[recruitingapp.PhoneCallResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /phone-calls/{id} [get]
func (h *PhoneCallHandler) GetByID(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	call, err := h.phoneCallService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, call)
}

// Create godoc
// @ID           createPhoneCall
// @Summary      Create a new phone call record
// @Description  Log a phone call against an applicant
// @Tags         phone-calls
// @Accept       json
// @Produce      json
// @Param        request body recruitingapp.CreatePhoneCallRequest true "Phone call creation request"
// @Success      201 {object} APIResponse[recruitingapp.PhoneCallResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /phone-calls [post]
func (h *PhoneCallHandler) Create(c *gin.Context) {
	var req recruitingapp.CreatePhoneCallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	call, err := h.phoneCallService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, call)
}

// Update godoc
// @ID           updatePhoneCall
// @Summary      Update a phone call record
// @Description  Update phone call fields; only the provided fields are changed
// @Tags         phone-calls
// @Accept       json
// @Produce      json
// @Param        id path int true "Phone call ID"
// @Param        request body recruitingapp.UpdatePhoneCallRequest true "Phone call update request"
// @Success      200 {object} APIResponse[recruitingapp.PhoneCallResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /phone-calls/{id} [put]
func (h *PhoneCallHandler) Update(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	var req recruitingapp.UpdatePhoneCallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	call, err := h.phoneCallService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, call)
}

// Delete godoc
// @ID           deletePhoneCall
// @Summary      Delete a phone call record
// @Description  Delete a phone call record
// @Tags         phone-calls
// @Produce      json
// @Param        id path int true "Phone call ID"
// @Success      204 "No Content"
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /phone-calls/{id} [delete]
func (h *PhoneCallHandler) Delete(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	if err := h.phoneCallService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
