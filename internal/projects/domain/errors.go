package domain

import "errors"

var (
	ErrNotFound       = errors.New("project not found")
	ErrInvalidProject = errors.New("invalid project")
	ErrNotCode        = errors.New("copy is only available for code projects")
)
