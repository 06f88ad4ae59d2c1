package websocket

import (
	"encoding/json"
	"time"

	"interview-platform-be/internal/constant"

	"github.com/gofiber/websocket/v2"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

// Client is a middleman between one participant's websocket connection and
// the hub.
type Client struct {
	Hub *Hub

	Conn *websocket.Conn

	// RoomID is the channel key this participant is attached to.
	RoomID string

	// Role is interviewer or interviewee; it decides whether inbound
	// navigate events are relayed or stay local.
	Role string

	// ClientID identifies the browser session for the resume store.
	ClientID string

	// Buffered channel of outbound events.
	Send chan []byte
}

// readPump pumps events from the websocket connection to the hub.
func (c *Client) readPump() {
	defer func() {
		c.Hub.unregister <- c
		c.Conn.Close()
	}()
	c.Conn.SetReadLimit(maxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.Hub.logger.Warn("Client", "Unexpected close", map[string]interface{}{
					"room_id": c.RoomID,
					"error":   err.Error(),
				})
			}
			break
		}

		var event RoomEvent
		if err := json.Unmarshal(raw, &event); err != nil {
			c.Hub.logger.Warn("Client", "Malformed room event dropped", map[string]interface{}{
				"room_id": c.RoomID,
			})
			continue
		}

		if event.Type == constant.EventNavigate && c.Hub.inbound != nil {
			c.Hub.inbound.OnNavigate(c, event.Key)
		}
	}
}

// writePump pumps events from the hub to the websocket connection.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// The hub closed the channel (room closed or seat replaced).
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// ServeWs attaches an upgraded connection to the hub and blocks until the
// connection drops.
func ServeWs(hub *Hub, conn *websocket.Conn, roomId, role, clientId string) {
	client := &Client{
		Hub:      hub,
		Conn:     conn,
		RoomID:   roomId,
		Role:     role,
		ClientID: clientId,
		Send:     make(chan []byte, 16),
	}
	client.Hub.register <- client

	go client.writePump()
	client.readPump()
}
