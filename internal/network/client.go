package network

import (
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"

	"github.com/Future-R/PrivateDerby/internal/platform/metrics"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second
	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second
	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10
	// Maximum message size allowed from peer.
	maxMessageSize = 512
)

// ClientCommand represents an incoming request from the frontend.
type ClientCommand struct {
	Type     string `json:"type"`                // "dispatch" or "refresh"
	ActionID string `json:"action_id,omitempty"` // for "dispatch"
}

// Client holds one active WebSocket connection.
type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
}

// NewClient creates a new WebSocket client and returns it.
func NewClient(hub *Hub, conn *websocket.Conn) *Client {
	return &Client{
		hub:  hub,
		conn: conn,
		send: make(chan []byte, 64),
	}
}

// Register adds the client to the hub.
func (c *Client) Register() {
	c.hub.register <- c
}

// sendState queues a state message for this client only.
func (c *Client) sendState(msg StateMessage) {
	payload, err := json.Marshal(msg)
	if err != nil {
		c.hub.logger.Error("Failed to serialize state for client: %v", err)
		return
	}
	select {
	case c.send <- payload:
	default:
	}
}

// ReadPump pumps commands from the websocket connection into the session.
func (c *Client) ReadPump() {
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
				c.hub.logger.Error("websocket read error: %v", err)
				metrics.Get().RecordWSError()
			}
			break
		}
		metrics.Get().RecordWSMessage(true)

		var cmd ClientCommand
		if err := json.Unmarshal(message, &cmd); err != nil {
			c.hub.logger.Error("Failed to parse ClientCommand from WebSocket: " + err.Error())
			continue
		}

		c.handleCommand(cmd)
	}
}

func (c *Client) handleCommand(cmd ClientCommand) {
	switch cmd.Type {
	case "dispatch":
		if _, err := c.hub.session.Dispatch(cmd.ActionID); err != nil {
			c.hub.logger.Warn("Rejected dispatch over websocket: " + err.Error())
			// The requested action was stale; resend the real state so the
			// client can recover.
			c.sendState(c.hub.stateMessage())
			return
		}
		c.hub.BroadcastState()
	case "refresh":
		c.sendState(c.hub.stateMessage())
	default:
		c.hub.logger.Warn("Unknown ClientCommand type: " + cmd.Type)
	}
}

// WritePump pumps messages from the hub to the websocket connection.
func (c *Client) WritePump() {
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
				// The hub closed the channel.
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				metrics.Get().RecordWSError()
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
