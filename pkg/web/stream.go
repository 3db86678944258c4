package web

import (
	"net/http"
	"sync"
	"time"

	"github.com/MythicStudios/MythicBotGo/pkg/logger"
	"github.com/MythicStudios/MythicBotGo/pkg/models"
	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"
)

// StreamHub fans moderation events out to connected websocket clients.
// Slow clients are dropped instead of blocking the broadcast.
type StreamHub struct {
	clients map[*websocket.Conn]struct{}
	mu      sync.Mutex
}

var (
	hub     *StreamHub
	hubOnce sync.Once
)

// GetHub returns the global stream hub
func GetHub() *StreamHub {
	hubOnce.Do(func() {
		hub = &StreamHub{clients: make(map[*websocket.Conn]struct{})}
	})
	return hub
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// streamEvent is the wire form sent to websocket clients
type streamEvent struct {
	Type   string           `json:"type"`
	Action models.ModAction `json:"action"`
	SentAt time.Time        `json:"sentAt"`
}

// Broadcast sends a moderation action to every connected client
func (h *StreamHub) Broadcast(action models.ModAction) {
	data, err := json.Marshal(streamEvent{
		Type:   "mod_action",
		Action: action,
		SentAt: time.Now(),
	})
	if err != nil {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.clients {
		conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			conn.Close()
			delete(h.clients, conn)
		}
	}
}

// ClientCount returns the number of connected stream clients
func (h *StreamHub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// add registers a client connection with the hub
func (h *StreamHub) add(conn *websocket.Conn) {
	h.mu.Lock()
	h.clients[conn] = struct{}{}
	h.mu.Unlock()
	logger.Info("Nuevo cliente conectado al stream de moderación.", "WebServer")
}

// remove unregisters a client connection
func (h *StreamHub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.clients, conn)
	h.mu.Unlock()
	conn.Close()
}

// streamHandler upgrades the connection and keeps it open until the
// client disconnects. Clients only receive; incoming messages are drained
// and discarded.
func streamHandler(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Warn("Fallo al abrir conexión websocket para el stream.", "WebServer")
		return
	}

	h := GetHub()
	h.add(conn)

	go func() {
		defer h.remove(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
