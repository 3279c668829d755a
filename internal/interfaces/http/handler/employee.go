package handler

import (
	"github.com/gin-gonic/gin"
	analyticsapp "github.com/recruitflow/backend/internal/application/analytics"
	recruitingapp "github.com/recruitflow/backend/internal/application/recruiting"
)

// EmployeeHandler handles employee API endpoints
type EmployeeHandler struct {
	BaseHandler
	employeeService *recruitingapp.EmployeeService
	kpiService      *analyticsapp.KPIService
}

// NewEmployeeHandler creates a new EmployeeHandler
func NewEmployeeHandler(employeeService *recruitingapp.EmployeeService, kpiService *analyticsapp.KPIService) *EmployeeHandler {
	return &EmployeeHandler{
		employeeService: employeeService,
		kpiService:      kpiService,
	}
}

// List godoc
// @ID           listEmployees
// @Summary      List employees
// @Description  Returns all employees ordered by ID
// @Tags         employees
// @Produce      json
// @Success      200 {object} APIResponse[[]recruitingapp.EmployeeResponse]
// @Failure      500 {object} dto.ErrorResponse
// @Router       /employees [get]
func (h *EmployeeHandler) List(c *gin.Context) {
	employees, err := h.employeeService.List(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, employees)
}

// GetByID godoc
// @ID           getEmployeeById
// @Summary      Get employee by ID
// @Description  Retrieve an employee by its ID
// @Tags         employees
// @Produce      json
// @Param        id path int true "Employee ID"
// @Success      200 {object} APIResponse[recruitingapp.EmployeeResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /employees/{id} [get]
func (h *EmployeeHandler) GetByID(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	employee, err := h.employeeService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, employee)
}

// Create godoc
// @ID           createEmployee
// @Summary      Create a new employee
// @Description  Register a new employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        request body recruitingapp.CreateEmployeeRequest true "Employee creation request"
// @Success      201 {object} APIResponse[recruitingapp.EmployeeResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /employees [post]
func (h *EmployeeHandler) Create(c *gin.Context) {
	var req recruitingapp.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	employee, err := h.employeeService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, employee)
}

// Update godoc
// @ID           updateEmployee
// @Summary      Update an employee
// @Description  Update employee fields; only the provided fields are changed
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        id path int true "Employee ID"
// @Param        request body recruitingapp.UpdateEmployeeRequest true "Employee update request"
// @Success      200 {object} APIResponse[recruitingapp.EmployeeResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /employees/{id} [put]
func (h *EmployeeHandler) Update(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	var req recruitingapp.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	employee, err := h.employeeService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, employee)
}

// Delete godoc
// @ID           deleteEmployee
// @Summary      Delete an employee
// @Description  Delete an employee; applicants and calls assigned to them are detached
// @Tags         employees
// @Produce      json
// @Param        id path int true "Employee ID"
// @Success      204 "No Content"
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /employees/{id} [delete]
func (h *EmployeeHandler) Delete(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	if err := h.employeeService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// GetKPI godoc
// @ID           getEmployeeKpi
// @Summary      Get employee KPI
// @Description  Compute the recruiting funnel for one employee over the requested timeframe
// @Tags         employees
// @Produce      json
// @Param        id path int true "Employee ID"
// @Param        timeframe query string false "Aggregation window" Enums(monthly, quarterly, yearly) default(monthly)
// @Success      200 {object} APIResponse[analyticsapp.EmployeeKPIResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /employees/{id}/kpi [get]
func (h *EmployeeHandler) GetKPI(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	kpi, err := h.kpiService.EmployeeKPI(c.Request.Context(), id, c.Query("timeframe"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, kpi)
}
