package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harunmuya/gs-app/internal/usecase/profile"
)

type ProfileHandler struct {
	profileUseCase *profile.ProfileUseCase
}

func NewProfileHandler(profileUseCase *profile.ProfileUseCase) *ProfileHandler {
	return &ProfileHandler{
		profileUseCase: profileUseCase,
	}
}

// ListProfiles handles GET /profiles
// @Summary List profiles
// @Description Newest profiles parsed from the content source
// @Tags profiles
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Page size (max 50)" default(20)
// @Success 200 {object} domain.ProfilePage
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /profiles [get]
func (h *ProfileHandler) ListProfiles(c *gin.Context) {
	page, ok := queryInt(c, "page", 1)
	if !ok {
		return
	}
	perPage, ok := queryInt(c, "per_page", profile.DefaultPerPage)
	if !ok {
		return
	}

	result, err := h.profileUseCase.ListProfiles(c.Request.Context(), page, perPage)
	if err != nil {
		respondError(c, err, "failed to list profiles")
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetProfile handles GET /profiles/:id
// @Summary Get profile
// @Tags profiles
// @Produce json
// @Param id path int true "Profile (post) ID"
// @Success 200 {object} domain.Profile
// @Failure 404 {object} ErrorResponse
// @Router /profiles/{id} [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	viewerID, _ := optionalUserID(c)

	p, err := h.profileUseCase.ViewProfile(c.Request.Context(), viewerID, id)
	if err != nil {
		respondError(c, err, "failed to get profile")
		return
	}

	c.JSON(http.StatusOK, p)
}
