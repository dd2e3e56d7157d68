// Package realtime pushes page state transitions to connected browsers
// over WebSocket. Clients subscribe to the pages they render and only
// receive updates for those.
package realtime

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = 54 * time.Second
	maxMessageSize = 1024
)

// EventType represents the kind of realtime event
type EventType string

const (
	EventPageUpdate EventType = "page_update"
	EventModeChange EventType = "mode_change"
	EventHeartbeat  EventType = "heartbeat"
	EventSubscribed EventType = "subscribed"
)

// Event is the wire format for every realtime message
type Event struct {
	Type      EventType   `json:"type"`
	Topic     string      `json:"topic"`
	Payload   interface{} `json:"payload,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// subscriptionRequest is what clients send to manage their topics
type subscriptionRequest struct {
	Action string   `json:"action"`
	Topics []string `json:"topics"`
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// client represents one connected browser
type client struct {
	id     string
	hub    *Hub
	conn   *websocket.Conn
	send   chan []byte
	mu     sync.RWMutex
	topics map[string]bool
}

// Hub tracks connected clients and fans events out to them
type Hub struct {
	mu         sync.RWMutex
	clients    map[*client]bool
	register   chan *client
	unregister chan *client
	logger     *zap.Logger
	done       chan struct{}
}

// NewHub creates a hub and starts its dispatch loop
func NewHub(logger *zap.Logger) *Hub {
	h := &Hub{
		clients:    make(map[*client]bool),
		register:   make(chan *client),
		unregister: make(chan *client),
		logger:     logger,
		done:       make(chan struct{}),
	}
	go h.run()
	return h
}

// Close stops the dispatch loop
func (h *Hub) Close() {
	close(h.done)
}

func (h *Hub) run() {
	for {
		select {
		case c := <-h.register:
			h.mu.Lock()
			h.clients[c] = true
			h.mu.Unlock()
			h.logger.Debug("Realtime client connected", zap.String("client_id", c.id))

		case c := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
			}
			h.mu.Unlock()
			h.logger.Debug("Realtime client disconnected", zap.String("client_id", c.id))

		case <-h.done:
			h.mu.Lock()
			for c := range h.clients {
				close(c.send)
				delete(h.clients, c)
			}
			h.mu.Unlock()
			return
		}
	}
}

// ConnectedClients returns the number of open connections
func (h *Hub) ConnectedClients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// BroadcastPageUpdate notifies subscribers of a page state transition
func (h *Hub) BroadcastPageUpdate(page string, state interface{}) {
	h.broadcast(Event{
		Type:    EventPageUpdate,
		Topic:   page,
		Payload: state,
	})
}

// BroadcastModeChange notifies everyone of a demo mode switch
func (h *Hub) BroadcastModeChange(demoMode bool) {
	h.broadcast(Event{
		Type:    EventModeChange,
		Topic:   "session",
		Payload: map[string]bool{"demo_mode": demoMode},
	})
}

// broadcast delivers an event to every client subscribed to its topic.
// Mode changes go to everyone regardless of subscriptions.
func (h *Hub) broadcast(event Event) {
	event.Timestamp = time.Now()
	data, err := json.Marshal(event)
	if err != nil {
		h.logger.Warn("Failed to marshal realtime event", zap.Error(err))
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for c := range h.clients {
		if event.Type != EventModeChange && !c.subscribed(event.Topic) {
			continue
		}
		select {
		case c.send <- data:
		default:
			// Slow consumer, drop the event rather than block the hub
		}
	}
}

// HandleWebSocket upgrades the request and runs the connection pumps
func (h *Hub) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to upgrade connection"})
		return
	}

	cl := &client{
		id:     uuid.New().String(),
		hub:    h,
		conn:   conn,
		send:   make(chan []byte, 64),
		topics: make(map[string]bool),
	}

	h.register <- cl

	go cl.writePump()
	go cl.readPump()
}

func (c *client) subscribed(topic string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.topics[topic]
}

// readPump consumes subscription requests until the connection drops
func (c *client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.hub.logger.Debug("Realtime read error", zap.Error(err))
			}
			return
		}

		var req subscriptionRequest
		if err := json.Unmarshal(message, &req); err != nil {
			continue
		}
		c.handleSubscription(req)
	}
}

// writePump delivers queued events and keeps the connection alive
func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *client) handleSubscription(req subscriptionRequest) {
	c.mu.Lock()
	switch req.Action {
	case "subscribe":
		for _, t := range req.Topics {
			c.topics[t] = true
		}
	case "unsubscribe":
		for _, t := range req.Topics {
			delete(c.topics, t)
		}
	}
	c.mu.Unlock()

	ack := Event{
		Type:      EventSubscribed,
		Topic:     "system",
		Payload:   fmt.Sprintf("subscription %s acknowledged", req.Action),
		Timestamp: time.Now(),
	}
	data, _ := json.Marshal(ack)
	select {
	case c.send <- data:
	default:
	}
}
