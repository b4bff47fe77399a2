package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/harunmuya/gs-app/internal/domain"
)

// Context keys set by the auth middleware.
const (
	ContextUserID    = "user_id"
	ContextSessionID = "session_id"
)

// ErrorResponse represents error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse represents success response
type SuccessResponse struct {
	Message string `json:"message"`
}

// DuplicateResponse is returned when a swipe was already recorded.
type DuplicateResponse struct {
	Duplicate bool   `json:"duplicate"`
	Message   string `json:"message"`
}

type statusRule struct {
	target error
	status int
}

var statusRules = []statusRule{
	{domain.ErrInvalidInput, http.StatusBadRequest},
	{domain.ErrInvalidLogin, http.StatusUnauthorized},
	{domain.ErrInvalidToken, http.StatusUnauthorized},
	{domain.ErrProfileNotFound, http.StatusNotFound},
	{domain.ErrUserNotFound, http.StatusNotFound},
	{domain.ErrSessionNotFound, http.StatusNotFound},
	{domain.ErrMatchNotFound, http.StatusNotFound},
	{domain.ErrActivityNotFound, http.StatusNotFound},
	{domain.ErrSavedNotFound, http.StatusNotFound},
	{domain.ErrLocationNotFound, http.StatusNotFound},
	{domain.ErrSettingsNotFound, http.StatusNotFound},
	{domain.ErrEmailTaken, http.StatusConflict},
	{domain.ErrAlreadySaved, http.StatusConflict},
	{domain.ErrDuplicate, http.StatusConflict},
	{domain.ErrUpstream, http.StatusBadGateway},
}

// StatusFor maps a use case error onto an HTTP status.
func StatusFor(err error) int {
	for _, r := range statusRules {
		if errors.Is(err, r.target) {
			return r.status
		}
	}
	return http.StatusInternalServerError
}

// respondError writes err as JSON. Unmapped errors are logged and replaced
// by fallback so internals do not leak.
func respondError(c *gin.Context, err error, fallback string) {
	status := StatusFor(err)
	message := err.Error()
	switch status {
	case http.StatusInternalServerError:
		logrus.WithError(err).WithField("path", c.FullPath()).Error(fallback)
		message = fallback
	case http.StatusBadGateway:
		logrus.WithError(err).WithField("path", c.FullPath()).Warn("Upstream failure")
		message = domain.ErrUpstream.Error()
	}
	c.JSON(status, ErrorResponse{Error: message})
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
}

// currentUserID returns the authenticated user, writing 401 if there is none.
func currentUserID(c *gin.Context) (int, bool) {
	if id, ok := optionalUserID(c); ok {
		return id, true
	}
	c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	return 0, false
}

func optionalUserID(c *gin.Context) (int, bool) {
	v, exists := c.Get(ContextUserID)
	if !exists {
		return 0, false
	}
	id, ok := v.(int)
	return id, ok && id > 0
}

func currentSessionID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(ContextSessionID)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

func pathID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		badRequest(c, "invalid "+name)
		return 0, false
	}
	return id, true
}

// queryInt reads an optional integer query parameter.
func queryInt(c *gin.Context, name string, fallback int) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		badRequest(c, "invalid "+name)
		return 0, false
	}
	return v, true
}

// queryFloat reads an optional float query parameter; nil when absent.
func queryFloat(c *gin.Context, name string) (*float64, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		badRequest(c, "invalid "+name)
		return nil, false
	}
	return &v, true
}
