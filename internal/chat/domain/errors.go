package domain

import "errors"

var (
	ErrEmptyMessage  = errors.New("message text is empty")
	ErrAdminNotFound = errors.New("admin not found")
	ErrClosed        = errors.New("chat is shutting down")
)
