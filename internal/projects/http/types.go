package http

import "github.com/sourcecodehub/hub-backend/internal/projects/service"

// Handler bundles the dependencies for projects HTTP endpoints.
type Handler struct {
	svc *service.ProjectService
}

func New(svc *service.ProjectService) *Handler {
	return &Handler{svc: svc}
}

type createReq struct {
	Name       string `json:"name"`
	Language   string `json:"language"`
	Type       string `json:"type"`
	Content    string `json:"content"`
	PreviewURL string `json:"previewUrl"`
	Notes      string `json:"notes"`
}
