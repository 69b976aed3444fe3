// Package common defines shared constants and sentinel errors used across
// client and server layers of coursehub. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrUserNotFound    = errors.New("user not found")
	ErrDuplicateEmail  = errors.New("user already exists with this email")
	ErrAlreadyEnrolled = errors.New("user already enrolled in this course")

	// Service-level errors.
	ErrValidation         = errors.New("validation error")
	ErrInvalidCredentials = errors.New("invalid email or password")

	// Auth errors.
	ErrMissingToken = errors.New("no token provided, authorization denied")
	ErrInvalidToken = errors.New("token is not valid")
	ErrTokenExpired = errors.New("token expired")
)
