package http

import (
	"time"

	"github.com/sourcecodehub/hub-backend/internal/chat/service"
)

type Handler struct {
	chatService *service.ChatService
	keepAlive   time.Duration
}

func New(chatService *service.ChatService) *Handler {
	return &Handler{
		chatService: chatService,
		keepAlive:   15 * time.Second,
	}
}

type postMsgReq struct {
	Text string `json:"text"`
}
