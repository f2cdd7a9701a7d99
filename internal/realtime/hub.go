package realtime

import (
	"encoding/json"
	"sync"

	"mealslot/internal/logger"

	"go.uber.org/zap"
)

// Event is the wire envelope for every broadcast message.
type Event struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

type envelope struct {
	roomCode string
	data     []byte
	closing  bool
}

// Hub fans broadcast events out to every websocket client of a room.
// Publishing is best-effort: a full channel drops the message rather
// than blocking the caller.
type Hub struct {
	mu    sync.RWMutex
	rooms map[string]map[*Client]bool

	register   chan *Client
	unregister chan *Client
	broadcast  chan envelope

	// invoked when a client connection drops, so the party layer can
	// treat it as a member disconnect
	onDisconnect func(roomCode, memberID string)
}

func NewHub() *Hub {
	return &Hub{
		rooms:      make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan envelope, 256),
	}
}

// SetDisconnectHandler wires the party layer's disconnect handling.
// Must be called before Run.
func (h *Hub) SetDisconnectHandler(fn func(roomCode, memberID string)) {
	h.onDisconnect = fn
}

// Run owns the hub's client maps. Start once, in its own goroutine.
// Connection liveness (ping/pong) is handled per-client in the write
// pump, which is the only goroutine allowed to write to a connection.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			if h.rooms[client.roomCode] == nil {
				h.rooms[client.roomCode] = make(map[*Client]bool)
			}
			h.rooms[client.roomCode][client] = true
			total := len(h.rooms[client.roomCode])
			h.mu.Unlock()

			logger.Info("websocket client connected",
				zap.String("room", client.roomCode),
				zap.String("member", client.memberID),
				zap.Int("room_clients", total))

		case client := <-h.unregister:
			h.dropClient(client, true)

		case msg := <-h.broadcast:
			h.mu.RLock()
			clients := h.rooms[msg.roomCode]
			for client := range clients {
				if msg.data == nil {
					continue
				}
				select {
				case client.send <- msg.data:
				default:
					// slow consumer: disconnect rather than block the room
					go func(c *Client) {
						h.unregister <- c
						c.conn.Close()
					}(client)
				}
			}
			h.mu.RUnlock()

			if msg.closing {
				h.closeRoomClients(msg.roomCode)
			}
		}
	}
}

func (h *Hub) dropClient(client *Client, notify bool) {
	h.mu.Lock()
	clients := h.rooms[client.roomCode]
	if clients == nil || !clients[client] {
		h.mu.Unlock()
		return
	}
	delete(clients, client)
	if len(clients) == 0 {
		delete(h.rooms, client.roomCode)
	}
	h.mu.Unlock()

	close(client.send)
	logger.Info("websocket client disconnected",
		zap.String("room", client.roomCode),
		zap.String("member", client.memberID))

	if notify && h.onDisconnect != nil && client.memberID != "" {
		h.onDisconnect(client.roomCode, client.memberID)
	}
}

// closeRoomClients detaches every client of a room without running
// member-disconnect handling; the room is already gone.
func (h *Hub) closeRoomClients(roomCode string) {
	h.mu.Lock()
	clients := h.rooms[roomCode]
	delete(h.rooms, roomCode)
	h.mu.Unlock()

	for client := range clients {
		close(client.send)
		client.conn.Close()
	}
}

// Publish queues an event for every client in the room. Implements
// the party Broadcaster contract: errors are swallowed, a full queue
// drops the event.
func (h *Hub) Publish(roomCode, event string, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		logger.Error("failed to marshal broadcast payload", zap.Error(err))
		return
	}
	raw, err := json.Marshal(Event{Type: event, Data: data})
	if err != nil {
		logger.Error("failed to marshal broadcast envelope", zap.Error(err))
		return
	}

	select {
	case h.broadcast <- envelope{roomCode: roomCode, data: raw}:
	default:
		logger.Warn("broadcast channel full, message dropped",
			zap.String("room", roomCode),
			zap.String("event", event))
	}
}

// CloseRoom disconnects every client of a room after the queued
// events drain.
func (h *Hub) CloseRoom(roomCode string) {
	select {
	case h.broadcast <- envelope{roomCode: roomCode, closing: true}:
	default:
		h.closeRoomClients(roomCode)
	}
}
