package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harunmuya/gs-app/internal/geo"
	"github.com/harunmuya/gs-app/internal/usecase/feed"
	"github.com/harunmuya/gs-app/internal/usecase/profile"
)

type FeedHandler struct {
	feedUseCase *feed.FeedUseCase
}

func NewFeedHandler(feedUseCase *feed.FeedUseCase) *FeedHandler {
	return &FeedHandler{feedUseCase: feedUseCase}
}

// Discover handles GET /feed
// @Summary Ranked discovery feed
// @Description Profiles not yet swiped, ranked by match score for the caller
// @Tags feed
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Page size (max 50)" default(20)
// @Param lat query number false "Viewer latitude"
// @Param lng query number false "Viewer longitude"
// @Success 200 {object} feed.Page
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /feed [get]
func (h *FeedHandler) Discover(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	page, ok := queryInt(c, "page", 1)
	if !ok {
		return
	}
	perPage, ok := queryInt(c, "per_page", profile.DefaultPerPage)
	if !ok {
		return
	}
	lat, ok := queryFloat(c, "lat")
	if !ok {
		return
	}
	lng, ok := queryFloat(c, "lng")
	if !ok {
		return
	}

	q := feed.Query{Page: page, PerPage: perPage}
	if lat != nil && lng != nil {
		if *lat < -90 || *lat > 90 || *lng < -180 || *lng > 180 {
			badRequest(c, "coordinates out of range")
			return
		}
		q.Viewer = &geo.Point{Lat: *lat, Lng: *lng}
	}

	result, err := h.feedUseCase.Discover(c.Request.Context(), userID, q)
	if err != nil {
		respondError(c, err, "failed to build feed")
		return
	}

	c.JSON(http.StatusOK, result)
}
