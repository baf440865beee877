package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sourcecodehub/hub-backend/internal/chat/domain"
	"github.com/sourcecodehub/hub-backend/internal/visitor"
)

func (h *Handler) listMessages(c *gin.Context) {
	adminID := strings.TrimSpace(c.Param("admin_id"))

	items, err := h.chatService.Messages(visitor.Label(c), adminID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "visitor": visitor.Label(c), "messages": items})
}

func (h *Handler) postMessage(c *gin.Context) {
	adminID := strings.TrimSpace(c.Param("admin_id"))

	var req postMsgReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	msg, err := h.chatService.Send(c.Request.Context(), visitor.Label(c), adminID, req.Text)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "message": msg})
}

// stream pushes every new message of the conversation as Server-Sent Events.
func (h *Handler) stream(c *gin.Context) {
	adminID := strings.TrimSpace(c.Param("admin_id"))

	msgs, cancel, err := h.chatService.Subscribe(visitor.Label(c), adminID)
	if err != nil {
		writeError(c, err)
		return
	}
	defer cancel()

	// Set SSE headers
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no") // nginx: disable buffering

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "streaming unsupported"})
		return
	}
	c.Status(http.StatusOK)
	flusher.Flush()

	ctx := c.Request.Context()

	ticker := time.NewTicker(h.keepAlive)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-ticker.C:
			fmt.Fprint(c.Writer, ": keep-alive\n\n")
			flusher.Flush()

		case msg, open := <-msgs:
			if !open {
				return
			}
			data, _ := json.Marshal(msg)
			fmt.Fprintf(c.Writer, "event: message\ndata: %s\n\n", string(data))
			flusher.Flush()
		}
	}
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrEmptyMessage):
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
	case errors.Is(err, domain.ErrAdminNotFound):
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": err.Error()})
	case errors.Is(err, domain.ErrClosed):
		c.JSON(http.StatusServiceUnavailable, gin.H{"ok": false, "error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
	}
}
