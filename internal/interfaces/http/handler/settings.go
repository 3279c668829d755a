package handler

import (
	"github.com/gin-gonic/gin"
	settingsapp "github.com/recruitflow/backend/internal/application/settings"
)

// SettingsHandler handles the application settings endpoints
type SettingsHandler struct {
	BaseHandler
	settingsService *settingsapp.Service
}

// NewSettingsHandler creates a new SettingsHandler
func NewSettingsHandler(settingsService *settingsapp.Service) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settingsService,
	}
}

// Get godoc
// @ID           getSettings
// @Summary      Get application settings
// @Description  Returns the stored settings document, or an empty object when none exists
// @Tags         settings
// @Produce      json
// @Success      200 {object} APIResponse[settingsapp.Settings]
// @Failure      500 {object} dto.ErrorResponse
// @Router       /settings [get]
func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.settingsService.Get(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, settings)
}

// Update godoc
// @ID           updateSettings
// @Summary      Update application settings
// @Description  Merges the provided keys into the stored settings document
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        request body settingsapp.Settings true "Settings keys to merge"
// @Success      200 {object} APIResponse[settingsapp.UpdateResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /settings [put]
func (h *SettingsHandler) Update(c *gin.Context) {
	var incoming settingsapp.Settings
	if err := c.ShouldBindJSON(&incoming); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.settingsService.Update(c.Request.Context(), incoming)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}
