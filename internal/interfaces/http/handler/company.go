package handler

import (
	"github.com/gin-gonic/gin"
	analyticsapp "github.com/recruitflow/backend/internal/application/analytics"
)

// CompanyHandler handles company-wide analytics endpoints
type CompanyHandler struct {
	BaseHandler
	kpiService *analyticsapp.KPIService
}

// NewCompanyHandler creates a new CompanyHandler
func NewCompanyHandler(kpiService *analyticsapp.KPIService) *CompanyHandler {
	return &CompanyHandler{
		kpiService: kpiService,
	}
}

// GetKPI godoc
// @ID           getCompanyKpi
// @Summary      Get company KPI
// @Description  Compute the recruiting funnel over all applicants for the requested timeframe
// @Tags         company
// @Produce      json
// @Param        timeframe query string false "Aggregation window" Enums(monthly, quarterly, yearly) default(monthly)
// @Success      200 {object} APIResponse[analyticsapp.CompanyKPIResponse]
// @Failure      500 {object} dto.ErrorResponse
// @Router       /company/kpi [get]
func (h *CompanyHandler) GetKPI(c *gin.Context) {
	kpi, err := h.kpiService.CompanyKPI(c.Request.Context(), c.Query("timeframe"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, kpi)
}

// GetTopPerformers godoc
// @ID           getCompanyTopPerformers
// @Summary      Get top performing employees
// @Description  Ranks employees by hires, then interviews, then calls within the timeframe window
// @Tags         company
// @Produce      json
// @Param        timeframe query string false "Aggregation window" Enums(monthly, quarterly, yearly) default(monthly)
// @Success      200 {object} APIResponse[[]analyticsapp.PerformerResponse]
// @Failure      500 {object} dto.ErrorResponse
// @Router       /company/top-performers [get]
func (h *CompanyHandler) GetTopPerformers(c *gin.Context) {
	performers, err := h.kpiService.TopPerformers(c.Request.Context(), c.Query("timeframe"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, performers)
}
