package ws

import (
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
	"team-mentorship.backend/pkg/logger"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4 * 1024
)

// Client binds one websocket connection to an authenticated user. Clients
// only consume events; chat writes go through the HTTP API so every message
// is persisted before it is relayed.
type Client struct {
	userID uuid.UUID
	hub    *Hub
	conn   *websocket.Conn
	send   chan Event
}

// HandleConnection registers an upgraded connection and starts its pumps.
// It returns immediately; the pumps run until the peer disconnects.
func (h *Hub) HandleConnection(conn *websocket.Conn, userID uuid.UUID) {
	client := &Client{
		userID: userID,
		hub:    h,
		conn:   conn,
		send:   make(chan Event, 64),
	}
	h.register <- client
	go client.writePump()
	go client.readPump()
}

// readPump drains the connection to process control frames and detect
// disconnects. Any payload other than a ping is ignored.
func (c *Client) readPump() {
	defer func() {
		c.hub.drop <- c
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	if err := c.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		return
	}
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var evt Event
		if err := c.conn.ReadJSON(&evt); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Warn(nil, "unexpected websocket close",
					zap.String("user_id", c.userID.String()), zap.Error(err))
			}
			return
		}
		if evt.Type == "ping" {
			select {
			case c.send <- Event{Type: "pong"}:
			default:
			}
		}
	}
}

// writePump serializes outgoing events and keeps the connection alive with
// periodic pings.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case evt, ok := <-c.send:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(evt); err != nil {
				return
			}
		case <-ticker.C:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
