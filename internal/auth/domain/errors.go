package domain

import "errors"

var (
	// ErrInvalidCredentials deliberately does not say which field was wrong.
	ErrInvalidCredentials = errors.New("Invalid username or password")
	ErrPasswordMismatch   = errors.New("Incorrect old password")
	ErrAdminNotFound      = errors.New("admin not found")
	ErrUnauthenticated    = errors.New("not authenticated")
	ErrSessionNotFound    = errors.New("session not found")
)
