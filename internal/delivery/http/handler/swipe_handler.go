package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harunmuya/gs-app/internal/domain"
	"github.com/harunmuya/gs-app/internal/usecase/swipe"
)

type SwipeHandler struct {
	swipeUseCase *swipe.SwipeUseCase
}

func NewSwipeHandler(swipeUseCase *swipe.SwipeUseCase) *SwipeHandler {
	return &SwipeHandler{
		swipeUseCase: swipeUseCase,
	}
}

// Like handles POST /swipes/like
// @Summary Like a profile
// @Description Records a like and reports whether it became a match
// @Tags swipes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body swipe.LikeRequest true "Profile and optional position"
// @Success 200 {object} swipe.LikeResponse
// @Success 200 {object} DuplicateResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /swipes/like [post]
func (h *SwipeHandler) Like(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req swipe.LikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	result, err := h.swipeUseCase.Like(c.Request.Context(), userID, req.ProfileID, req.Viewer())
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyLiked) {
			c.JSON(http.StatusOK, DuplicateResponse{Duplicate: true, Message: "already liked"})
			return
		}
		respondError(c, err, "failed to like profile")
		return
	}

	c.JSON(http.StatusOK, result)
}

// Pass handles POST /swipes/pass
// @Summary Pass on a profile
// @Tags swipes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body swipe.ProfileRequest true "Profile"
// @Success 200 {object} SuccessResponse
// @Router /swipes/pass [post]
func (h *SwipeHandler) Pass(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req swipe.ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	if err := h.swipeUseCase.Pass(c.Request.Context(), userID, req.ProfileID); err != nil {
		if errors.Is(err, domain.ErrAlreadyPassed) {
			c.JSON(http.StatusOK, DuplicateResponse{Duplicate: true, Message: "already passed"})
			return
		}
		respondError(c, err, "failed to pass profile")
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "passed"})
}

// ResetPasses handles POST /swipes/reset-passes
// @Summary Reset passes
// @Description Forgets every pass so those profiles reappear in the feed
// @Tags swipes
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]int64
// @Failure 401 {object} ErrorResponse
// @Router /swipes/reset-passes [post]
func (h *SwipeHandler) ResetPasses(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	n, err := h.swipeUseCase.ResetPasses(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "failed to reset passes")
		return
	}

	c.JSON(http.StatusOK, gin.H{"reset": n})
}

// ListLikes handles GET /likes
// @Summary List liked profiles
// @Tags swipes
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string][]domain.Like
// @Failure 401 {object} ErrorResponse
// @Router /likes [get]
func (h *SwipeHandler) ListLikes(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	likes, err := h.swipeUseCase.ListLikes(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "failed to list likes")
		return
	}

	c.JSON(http.StatusOK, gin.H{"likes": nonNil(likes)})
}

// ListMatches handles GET /matches, best score first.
// @Summary List matches
// @Description Matches ordered by score, then newest first
// @Tags swipes
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string][]domain.Match
// @Failure 401 {object} ErrorResponse
// @Router /matches [get]
func (h *SwipeHandler) ListMatches(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	matches, err := h.swipeUseCase.ListMatches(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "failed to list matches")
		return
	}

	c.JSON(http.StatusOK, gin.H{"matches": nonNil(matches)})
}

// ListSaved handles GET /saved
// @Summary List saved profiles
// @Tags saved
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string][]domain.SavedProfile
// @Failure 401 {object} ErrorResponse
// @Router /saved [get]
func (h *SwipeHandler) ListSaved(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	saved, err := h.swipeUseCase.ListSaved(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "failed to list saved profiles")
		return
	}

	c.JSON(http.StatusOK, gin.H{"saved": nonNil(saved)})
}

// Save handles POST /saved
// @Summary Save a profile
// @Tags saved
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body swipe.ProfileRequest true "Profile"
// @Success 201 {object} domain.SavedProfile
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /saved [post]
func (h *SwipeHandler) Save(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req swipe.ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	saved, err := h.swipeUseCase.Save(c.Request.Context(), userID, req.ProfileID)
	if err != nil {
		respondError(c, err, "failed to save profile")
		return
	}

	c.JSON(http.StatusCreated, saved)
}

// Unsave handles DELETE /saved/:id
// @Summary Remove a saved profile
// @Tags saved
// @Security BearerAuth
// @Produce json
// @Param id path int true "Profile ID"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /saved/{id} [delete]
func (h *SwipeHandler) Unsave(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	profileID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.swipeUseCase.Unsave(c.Request.Context(), userID, profileID); err != nil {
		respondError(c, err, "failed to remove saved profile")
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "removed"})
}

// nonNil keeps empty lists encoded as [] rather than null.
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
