package websocket

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"interview-platform-be/internal/constant"
	"interview-platform-be/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RoomEvent is the wire shape relayed over a room channel. Exactly two types
// exist: navigate (with a key) and closed.
type RoomEvent struct {
	Type string `json:"type"`
	Key  string `json:"key,omitempty"`
}

// PresenceListener is notified when room membership changes. The room
// service uses it to transition a room to the open phase on first
// interviewee attach.
type PresenceListener interface {
	OnIntervieweeJoined(roomId string)
}

// InboundListener receives events a participant sent over their socket.
type InboundListener interface {
	OnNavigate(client *Client, key string)
}

// Hub tracks rooms and their participants. Each room seats at most one
// interviewer and one interviewee; a reconnect for the same seat replaces
// the stale connection.
type Hub struct {
	rooms map[string]map[*Client]bool

	register   chan *Client
	unregister chan *Client

	mu sync.RWMutex

	// Redis connection for cross-instance fanout. Optional; a single
	// instance works without it.
	rdb *redis.Client

	// originId excludes our own fanout messages when they loop back.
	originId string

	presence PresenceListener
	inbound  InboundListener

	logger logger.ILogger
}

type fanoutPayload struct {
	Origin  string          `json:"origin"`
	RoomId  string          `json:"room_id"`
	Close   bool            `json:"close,omitempty"`
	Message json.RawMessage `json:"message"`
}

const fanoutChannel = "room_events"

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		rooms:      make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		rdb:        rdb,
		originId:   uuid.NewString(),
		logger:     log,
	}
}

// SetPresenceListener wires the room lifecycle callback. Must be called
// before Run.
func (h *Hub) SetPresenceListener(l PresenceListener) {
	h.presence = l
}

// SetInboundListener wires the handler for participant-sent events. Must be
// called before Run.
func (h *Hub) SetInboundListener(l InboundListener) {
	h.inbound = l
}

func (h *Hub) Run() {
	if h.rdb != nil {
		go h.subscribeToRedis()
	}

	for {
		select {
		case client := <-h.register:
			h.attach(client)

		case client := <-h.unregister:
			h.detach(client)
		}
	}
}

func (h *Hub) attach(client *Client) {
	h.mu.Lock()
	room, ok := h.rooms[client.RoomID]
	if !ok {
		room = make(map[*Client]bool)
		h.rooms[client.RoomID] = room
	}

	// One seat per role: a reconnect replaces the previous connection.
	for existing := range room {
		if existing.Role == client.Role {
			delete(room, existing)
			close(existing.Send)
		}
	}
	room[client] = true
	h.mu.Unlock()

	h.logger.Info("Hub", "Participant joined room", map[string]interface{}{
		"room_id": client.RoomID,
		"role":    client.Role,
	})

	if client.Role == constant.RoleInterviewee && h.presence != nil {
		// May hit the database; keep the hub loop free.
		go h.presence.OnIntervieweeJoined(client.RoomID)
	}
}

func (h *Hub) detach(client *Client) {
	h.mu.Lock()
	if room, ok := h.rooms[client.RoomID]; ok {
		if room[client] {
			delete(room, client)
			close(client.Send)
		}
		if len(room) == 0 {
			delete(h.rooms, client.RoomID)
			h.logger.Info("Hub", "Room emptied", map[string]interface{}{"room_id": client.RoomID})
		}
	}
	h.mu.Unlock()
}

// BroadcastNavigate relays a navigation event to every room participant
// except the sender. Best-effort: nothing is buffered for absent or slow
// subscribers.
func (h *Hub) BroadcastNavigate(roomId, key string, sender *Client) {
	data, _ := json.Marshal(RoomEvent{Type: constant.EventNavigate, Key: key})
	h.deliverLocal(roomId, data, sender)
	h.publishFanout(roomId, data, false)
}

// CloseRoom announces the closed event to all participants and detaches
// them. Calling it for an unknown room is a no-op, which keeps room closing
// idempotent end to end.
func (h *Hub) CloseRoom(roomId string) {
	data, _ := json.Marshal(RoomEvent{Type: constant.EventClosed})

	h.mu.Lock()
	room, ok := h.rooms[roomId]
	if ok {
		delete(h.rooms, roomId)
	}
	h.mu.Unlock()

	if ok {
		for client := range room {
			select {
			case client.Send <- data:
			default:
			}
			close(client.Send)
		}
	}

	h.publishFanout(roomId, data, true)
}

func (h *Hub) deliverLocal(roomId string, data []byte, except *Client) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.rooms[roomId] {
		if client == except {
			continue
		}
		select {
		case client.Send <- data:
		default:
			h.logger.Warn("Hub", "Send buffer full, dropping event", map[string]interface{}{
				"room_id": roomId,
				"role":    client.Role,
			})
		}
	}
}

func (h *Hub) publishFanout(roomId string, data []byte, closed bool) {
	if h.rdb == nil {
		return
	}
	payload, _ := json.Marshal(fanoutPayload{
		Origin:  h.originId,
		RoomId:  roomId,
		Close:   closed,
		Message: data,
	})
	if err := h.rdb.Publish(context.Background(), fanoutChannel, payload).Err(); err != nil {
		// Degraded mode: local participants still got the event.
		h.logger.Warn("Hub", "Redis fanout failed", map[string]interface{}{"error": err.Error()})
	}
}

func (h *Hub) subscribeToRedis() {
	ctx := context.Background()
	pubsub := h.rdb.Subscribe(ctx, fanoutChannel)
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		var payload fanoutPayload
		if err := json.Unmarshal([]byte(msg.Payload), &payload); err != nil {
			log.Printf("Redis msg parse error: %v", err)
			continue
		}
		// Local participants were already served at the origin.
		if payload.Origin == h.originId {
			continue
		}

		if payload.Close {
			h.mu.Lock()
			room, ok := h.rooms[payload.RoomId]
			if ok {
				delete(h.rooms, payload.RoomId)
			}
			h.mu.Unlock()
			if ok {
				for client := range room {
					select {
					case client.Send <- payload.Message:
					default:
					}
					close(client.Send)
				}
			}
			continue
		}

		h.deliverLocal(payload.RoomId, payload.Message, nil)
	}
}
