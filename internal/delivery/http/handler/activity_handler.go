package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harunmuya/gs-app/internal/usecase/activity"
)

type ActivityHandler struct {
	activityUseCase *activity.ActivityUseCase
}

func NewActivityHandler(activityUseCase *activity.ActivityUseCase) *ActivityHandler {
	return &ActivityHandler{activityUseCase: activityUseCase}
}

// List handles GET /activity?limit&offset
// @Summary List activity
// @Description Newest entries first
// @Tags activity
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Page size"
// @Param offset query int false "Offset"
// @Success 200 {object} map[string][]domain.ActivityEntry
// @Failure 400 {object} ErrorResponse
// @Router /activity [get]
func (h *ActivityHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	limit, ok := queryInt(c, "limit", activity.DefaultLimit)
	if !ok {
		return
	}
	offset, ok := queryInt(c, "offset", 0)
	if !ok {
		return
	}

	entries, err := h.activityUseCase.List(c.Request.Context(), userID, limit, offset)
	if err != nil {
		respondError(c, err, "failed to list activity")
		return
	}

	c.JSON(http.StatusOK, gin.H{"activity": nonNil(entries)})
}

// UnreadCount handles GET /activity/unread-count
// @Summary Count unread activity
// @Tags activity
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]int
// @Router /activity/unread-count [get]
func (h *ActivityHandler) UnreadCount(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	count, err := h.activityUseCase.UnreadCount(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "failed to count activity")
		return
	}

	c.JSON(http.StatusOK, gin.H{"unread": count})
}

// MarkRead handles PUT /activity/:id/read
// @Summary Mark one activity entry read
// @Tags activity
// @Security BearerAuth
// @Produce json
// @Param id path int true "Activity ID"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /activity/{id}/read [put]
func (h *ActivityHandler) MarkRead(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.activityUseCase.MarkRead(c.Request.Context(), userID, id); err != nil {
		respondError(c, err, "failed to mark activity read")
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "marked read"})
}

// MarkAllRead handles PUT /activity/read-all
// @Summary Mark all activity read
// @Tags activity
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]int64
// @Router /activity/read-all [put]
func (h *ActivityHandler) MarkAllRead(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	n, err := h.activityUseCase.MarkAllRead(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "failed to mark activity read")
		return
	}

	c.JSON(http.StatusOK, gin.H{"updated": n})
}
