package ws

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"team-mentorship.backend/internal/metrics"
	"team-mentorship.backend/pkg/logger"
)

// Event is one realtime frame pushed to a connected client.
type Event struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload,omitempty"`
}

// Presence mirrors connection state into a shared store so other processes
// can answer "who is online". A nil Presence disables mirroring.
type Presence interface {
	MarkOnline(ctx context.Context, userID uuid.UUID) error
	MarkOffline(ctx context.Context, userID uuid.UUID) error
}

// Hub tracks live connections keyed by user id and fans events out to them.
// A user may hold several connections (tabs, devices); every one gets each
// event. Delivery is best-effort: a slow client is dropped, never waited on.
type Hub struct {
	mu       sync.RWMutex
	clients  map[uuid.UUID]map[*Client]bool
	register chan *Client
	drop     chan *Client
	presence Presence
}

// NewHub creates a new hub
func NewHub(presence Presence) *Hub {
	return &Hub{
		clients:  make(map[uuid.UUID]map[*Client]bool),
		register: make(chan *Client),
		drop:     make(chan *Client),
		presence: presence,
	}
}

// Run processes connection lifecycle events until the context is canceled,
// then closes every remaining connection.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case client := <-h.register:
			h.add(ctx, client)
		case client := <-h.drop:
			h.remove(ctx, client)
		case <-ctx.Done():
			h.closeAll()
			return
		}
	}
}

// NotifyUser pushes one event to every live connection of the user. A user
// with no connection is silently skipped.
func (h *Hub) NotifyUser(userID uuid.UUID, event string, payload interface{}) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	h.push(userID, Event{Type: event, Payload: payload})
}

// NotifyUsers pushes one event to every listed user.
func (h *Hub) NotifyUsers(userIDs []uuid.UUID, event string, payload interface{}) {
	evt := Event{Type: event, Payload: payload}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, id := range userIDs {
		h.push(id, evt)
	}
}

// ConnectedUsers returns how many distinct users hold a live connection.
func (h *Hub) ConnectedUsers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// push must be called with at least a read lock held.
func (h *Hub) push(userID uuid.UUID, evt Event) {
	for client := range h.clients[userID] {
		select {
		case client.send <- evt:
			metrics.NotificationsSent.WithLabelValues(evt.Type).Inc()
		default:
			// Slow consumer; the write pump will notice the closed socket.
			logger.Warn(nil, "dropping event for slow websocket client",
				zap.String("user_id", userID.String()),
				zap.String("event", evt.Type))
		}
	}
}

func (h *Hub) add(ctx context.Context, client *Client) {
	h.mu.Lock()
	set, ok := h.clients[client.userID]
	if !ok {
		set = make(map[*Client]bool)
		h.clients[client.userID] = set
	}
	set[client] = true
	total := len(h.clients)
	h.mu.Unlock()
	metrics.WSConnectedUsers.Set(float64(total))

	if h.presence != nil && !ok {
		if err := h.presence.MarkOnline(ctx, client.userID); err != nil {
			logger.Warn(ctx, "failed to mark user online", zap.Error(err))
		}
	}
	logger.Info(ctx, "websocket client connected",
		zap.String("user_id", client.userID.String()),
		zap.Int("connected_users", total))
}

func (h *Hub) remove(ctx context.Context, client *Client) {
	h.mu.Lock()
	set, ok := h.clients[client.userID]
	if ok && set[client] {
		delete(set, client)
		close(client.send)
		if len(set) == 0 {
			delete(h.clients, client.userID)
		}
	}
	lastConnection := ok && len(set) == 0
	total := len(h.clients)
	h.mu.Unlock()
	metrics.WSConnectedUsers.Set(float64(total))

	if h.presence != nil && lastConnection {
		if err := h.presence.MarkOffline(ctx, client.userID); err != nil {
			logger.Warn(ctx, "failed to mark user offline", zap.Error(err))
		}
	}
	logger.Info(ctx, "websocket client disconnected",
		zap.String("user_id", client.userID.String()),
		zap.Int("connected_users", total))
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for userID, set := range h.clients {
		for client := range set {
			close(client.send)
		}
		delete(h.clients, userID)
	}
}
