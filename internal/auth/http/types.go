package http

import "github.com/sourcecodehub/hub-backend/internal/auth/service"

type Handler struct {
	authService *service.AuthService
}

func New(authService *service.AuthService) *Handler {
	return &Handler{
		authService: authService,
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type profileRequest struct {
	Name     string `json:"name"`
	Quote    string `json:"quote"`
	Hashtags string `json:"hashtags"` // free text, e.g. "#go #backend"
	PhotoURL string `json:"photoUrl"`
}

type passwordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}
