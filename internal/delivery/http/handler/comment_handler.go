package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/harunmuya/gs-app/internal/domain"
	"github.com/harunmuya/gs-app/internal/usecase/comment"
)

type CommentHandler struct {
	commentUseCase *comment.CommentUseCase
}

func NewCommentHandler(commentUseCase *comment.CommentUseCase) *CommentHandler {
	return &CommentHandler{commentUseCase: commentUseCase}
}

// ListComments handles GET /comments?post=ID
// @Summary List comments on a post
// @Tags comments
// @Produce json
// @Param post query int true "Post ID"
// @Success 200 {object} map[string][]domain.Comment
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /comments [get]
func (h *CommentHandler) ListComments(c *gin.Context) {
	postID, err := strconv.Atoi(c.Query("post"))
	if err != nil || postID <= 0 {
		badRequest(c, "invalid post")
		return
	}

	comments, err := h.commentUseCase.List(c.Request.Context(), postID)
	if err != nil {
		respondError(c, err, "failed to list comments")
		return
	}

	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

// SubmitComment handles POST /comments. Validation happens in the use case.
// @Summary Submit a comment
// @Tags comments
// @Accept json
// @Produce json
// @Param request body domain.CommentInput true "Comment"
// @Success 201 {object} domain.CommentResult
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /comments [post]
func (h *CommentHandler) SubmitComment(c *gin.Context) {
	var req domain.CommentInput
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	result, err := h.commentUseCase.Submit(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "failed to submit comment")
		return
	}

	c.JSON(http.StatusCreated, result)
}
