package domain

import "errors"

var (
	ErrProfileNotFound  = errors.New("profile not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrSessionNotFound  = errors.New("session not found")
	ErrMatchNotFound    = errors.New("match not found")
	ErrActivityNotFound = errors.New("activity entry not found")
	ErrSavedNotFound    = errors.New("saved profile not found")
	ErrLocationNotFound = errors.New("location not found")
	ErrSettingsNotFound = errors.New("settings not found")

	ErrAlreadyLiked  = errors.New("profile already liked")
	ErrAlreadyPassed = errors.New("profile already passed")
	ErrAlreadySaved  = errors.New("profile already saved")
	ErrEmailTaken    = errors.New("email already registered")
	ErrDuplicate     = errors.New("duplicate record")
	ErrInvalidInput  = errors.New("invalid input")
	ErrInvalidLogin  = errors.New("invalid email or password")
	ErrInvalidToken  = errors.New("invalid token")
	ErrUpstream      = errors.New("content source unavailable")
)
