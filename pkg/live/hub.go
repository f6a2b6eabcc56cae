// Package live pushes navigation to connected clients over WebSocket.
//
// A Hub fans a location change out to every connected client as a small
// JSON frame. Attach a navigator.Provider and every Push/Replace/Back is
// broadcast automatically; the client reacts by re-resolving its active
// view against the new location.
package live

import (
	"log/slog"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/outlet-dev/outlet/pkg/navigator"
)

// Frame types sent to clients.
const frameNavigate = "navigate"

// frame is the wire format for hub messages.
type frame struct {
	Type     string `json:"type"`
	Location string `json:"location"`
}

// Hub broadcasts location changes to connected WebSocket clients.
type Hub struct {
	upgrader websocket.Upgrader
	logger   *slog.Logger

	mu     sync.Mutex
	conns  map[*websocket.Conn]struct{}
	closed bool
}

// Option configures a Hub.
type Option func(*Hub)

// WithLogger sets the hub's logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(h *Hub) {
		h.logger = logger
	}
}

// WithCheckOrigin sets the WebSocket origin check.
func WithCheckOrigin(check func(r *http.Request) bool) Option {
	return func(h *Hub) {
		h.upgrader.CheckOrigin = check
	}
}

// NewHub creates a hub with no connected clients.
func NewHub(opts ...Option) *Hub {
	h := &Hub{
		logger: slog.Default(),
		conns:  make(map[*websocket.Conn]struct{}),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Handler returns the HTTP handler that upgrades requests to WebSocket
// and registers the connection. The read side is drained and discarded;
// the hub is push-only.
func (h *Hub) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := h.upgrader.Upgrade(w, r, nil)
		if err != nil {
			h.logger.Error("websocket upgrade failed", "error", err)
			return
		}

		h.mu.Lock()
		if h.closed {
			h.mu.Unlock()
			conn.Close()
			return
		}
		h.conns[conn] = struct{}{}
		h.mu.Unlock()

		// Drain reads until the client goes away.
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err,
					websocket.CloseGoingAway,
					websocket.CloseAbnormalClosure,
					websocket.CloseNormalClosure) {
					h.logger.Error("websocket read error", "error", err)
				}
				break
			}
		}

		h.mu.Lock()
		delete(h.conns, conn)
		h.mu.Unlock()
		conn.Close()
	})
}

// Broadcast sends a navigate frame with the location to every client.
// Clients that fail to accept the write are dropped.
func (h *Hub) Broadcast(location string) {
	msg := frame{Type: frameNavigate, Location: location}

	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.conns {
		if err := conn.WriteJSON(msg); err != nil {
			h.logger.Error("websocket write failed", "error", err)
			delete(h.conns, conn)
			conn.Close()
		}
	}
}

// Attach subscribes the hub to a navigation provider so every location
// change is broadcast. The returned cancel func detaches the hub.
func (h *Hub) Attach(p navigator.Provider) (cancel func()) {
	return p.Subscribe(h.Broadcast)
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.conns)
}

// Close drops all connections and rejects future ones.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	for conn := range h.conns {
		conn.Close()
	}
	h.conns = make(map[*websocket.Conn]struct{})
}
