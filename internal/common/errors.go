package common

import "errors"

// Business logic errors
var (
	// General errors
	ErrNotFound         = errors.New("resource not found")
	ErrPermissionDenied = errors.New("permission denied")

	// Character errors
	ErrCharacterNotFound = errors.New("character not found")
	ErrWorkNotFound      = errors.New("work not found")
	ErrQuotaExceeded     = errors.New("pending submission quota exceeded")
	ErrInvalidState      = errors.New("record is not in a reviewable state")

	// Notification errors
	ErrNotificationNotFound = errors.New("notification not found")

	// Auth errors
	ErrUnauthorized = errors.New("unauthorized")

	// Validation errors
	ErrInvalidInput = errors.New("invalid input")
)
