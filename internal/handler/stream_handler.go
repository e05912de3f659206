package handler

import (
	"context"
	"log/slog"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/labstack/echo/v4"

	"gatepass/internal/broadcast"
)

const streamWriteTimeout = 5 * time.Second

// StreamHandler pushes live gate events to admin dashboards over WebSocket.
type StreamHandler struct {
	hub            *broadcast.Hub
	originPatterns []string
	buffer         int
	logger         *slog.Logger
}

// NewStreamHandler creates a stream handler on hub. originPatterns are
// passed to the WebSocket handshake; empty means same-origin only.
func NewStreamHandler(hub *broadcast.Hub, originPatterns []string, buffer int, logger *slog.Logger) *StreamHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &StreamHandler{
		hub:            hub,
		originPatterns: originPatterns,
		buffer:         buffer,
		logger:         logger,
	}
}

// Stream godoc
// @Summary Live gate events
// @Description Upgrades to a WebSocket that receives {"type":"gateEvent","payload":GateLog} for each new log. No history is replayed.
// @Tags stream
// @Security BearerAuth
// @Param token query string false "Access token, for clients that cannot set headers"
// @Success 101
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /ws [get]
func (h *StreamHandler) Stream(c echo.Context) error {
	conn, err := websocket.Accept(c.Response(), c.Request(), &websocket.AcceptOptions{
		OriginPatterns: h.originPatterns,
	})
	if err != nil {
		// Accept has already written the HTTP error.
		return nil
	}

	ctx, cancel := context.WithCancel(c.Request().Context())
	defer cancel()

	sub := h.hub.Subscribe(h.buffer)
	defer h.hub.Unsubscribe(sub)

	var userID uint
	if caller := CallerFromContext(c); caller != nil {
		userID = caller.UserID
	}
	h.logger.InfoContext(ctx, "stream connected", "user_id", userID, "subscribers", h.hub.Len())
	defer h.logger.InfoContext(ctx, "stream disconnected", "user_id", userID)

	// Viewers never send anything meaningful; reading surfaces close frames.
	readErr := make(chan error, 1)
	go func() {
		for {
			if _, _, err := conn.Read(ctx); err != nil {
				readErr <- err
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			_ = conn.Close(websocket.StatusGoingAway, "closed")
			return nil
		case <-readErr:
			_ = conn.Close(websocket.StatusNormalClosure, "closed")
			return nil
		case evt, ok := <-sub.C:
			if !ok {
				_ = conn.Close(websocket.StatusGoingAway, "server shutting down")
				return nil
			}
			writeCtx, cancelWrite := context.WithTimeout(ctx, streamWriteTimeout)
			err := wsjson.Write(writeCtx, conn, evt)
			cancelWrite()
			if err != nil {
				_ = conn.Close(websocket.StatusInternalError, "write_failed")
				return nil
			}
		}
	}
}
