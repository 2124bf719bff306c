// Package common provides shared HTTP handler utilities.
package common

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"leafsmp/internal/shared/logger"
)

const (
	// SSEKeepaliveInterval is the default interval for keepalive comments.
	SSEKeepaliveInterval = 30 * time.Second
	SSEContentType       = "text/event-stream"
)

// SSEHandlerBase writes server-sent events onto a gin response.
type SSEHandlerBase struct {
	keepalive time.Duration
	logger    logger.Interface
}

func NewSSEHandlerBase(log logger.Interface) *SSEHandlerBase {
	return &SSEHandlerBase{
		keepalive: SSEKeepaliveInterval,
		logger:    log,
	}
}

// WithKeepalive overrides the keepalive interval. Non-positive values keep
// the current one.
func (h *SSEHandlerBase) WithKeepalive(interval time.Duration) *SSEHandlerBase {
	if interval > 0 {
		h.keepalive = interval
	}
	return h
}

// SetupSSEResponse sets common SSE response headers.
// CORS headers are handled by the global middleware.
func (h *SSEHandlerBase) SetupSSEResponse(c *gin.Context) {
	c.Header("Content-Type", SSEContentType)
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
}

// SendInitialConnection sends the initial SSE connection comment.
func (h *SSEHandlerBase) SendInitialConnection(c *gin.Context) bool {
	if _, err := c.Writer.WriteString(": connected\n\n"); err != nil {
		return false
	}
	c.Writer.Flush()
	return true
}

// WriteEvent writes one event; id lets the browser resume with Last-Event-ID.
func (h *SSEHandlerBase) WriteEvent(c *gin.Context, id, event string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode event payload: %w", err)
	}

	if id != "" {
		if _, err := fmt.Fprintf(c.Writer, "id: %s\n", id); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(c.Writer, "event: %s\ndata: %s\n\n", event, data); err != nil {
		return err
	}
	c.Writer.Flush()
	return nil
}

// RunEventLoop forwards items from events until the client disconnects, the
// channel closes or a write fails. write renders one item.
func RunEventLoop[T any](h *SSEHandlerBase, c *gin.Context, events <-chan T, write func(T) error, logPrefix string) {
	keepAliveTicker := time.NewTicker(h.keepalive)
	defer keepAliveTicker.Stop()

	ctx := c.Request.Context()

	for {
		select {
		case <-ctx.Done():
			h.logger.Debugw(logPrefix+" connection closed by client")
			return

		case item, ok := <-events:
			if !ok {
				return
			}
			if err := write(item); err != nil {
				h.logger.Warnw(logPrefix+" write error", "error", err)
				return
			}

		case <-keepAliveTicker.C:
			if _, err := c.Writer.WriteString(": keepalive\n\n"); err != nil {
				h.logger.Warnw(logPrefix+" keepalive error", "error", err)
				return
			}
			c.Writer.Flush()
		}
	}
}
