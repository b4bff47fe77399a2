package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harunmuya/gs-app/internal/usecase/settings"
)

type SettingsHandler struct {
	settingsUseCase *settings.SettingsUseCase
}

func NewSettingsHandler(settingsUseCase *settings.SettingsUseCase) *SettingsHandler {
	return &SettingsHandler{settingsUseCase: settingsUseCase}
}

// GetSettings handles GET /settings
// @Summary Get settings
// @Tags settings
// @Security BearerAuth
// @Produce json
// @Success 200 {object} domain.Settings
// @Router /settings [get]
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	s, err := h.settingsUseCase.Get(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "failed to get settings")
		return
	}

	c.JSON(http.StatusOK, s)
}

// UpdateSettings handles PUT /settings
// @Summary Update settings
// @Tags settings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body settings.UpdateSettingsRequest true "Fields to change"
// @Success 200 {object} domain.Settings
// @Failure 400 {object} ErrorResponse
// @Router /settings [put]
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req settings.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	s, err := h.settingsUseCase.Update(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err, "failed to update settings")
		return
	}

	c.JSON(http.StatusOK, s)
}

// UpdateLocation handles PUT /settings/location
// @Summary Update location
// @Tags settings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body settings.UpdateLocationRequest true "Coordinates"
// @Success 200 {object} domain.Location
// @Failure 400 {object} ErrorResponse
// @Router /settings/location [put]
func (h *SettingsHandler) UpdateLocation(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req settings.UpdateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	loc, err := h.settingsUseCase.UpdateLocation(c.Request.Context(), userID, *req.Lat, *req.Lng)
	if err != nil {
		respondError(c, err, "failed to update location")
		return
	}

	c.JSON(http.StatusOK, loc)
}
