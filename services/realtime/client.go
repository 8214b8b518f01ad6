package realtime

import (
	"encoding/json"
	"time"

	"gatherly/utils"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
	sendBufferSize = 64
)

// Client is one WebSocket connection of one user.
type Client struct {
	hub    *Hub
	conn   *websocket.Conn
	userID string
	send   chan []byte
}

// NewClient wraps an upgraded connection and registers it with the hub.
// Both pumps are started; the caller is done once this returns.
func NewClient(hub *Hub, conn *websocket.Conn, userID string) *Client {
	client := &Client{
		hub:    hub,
		conn:   conn,
		userID: userID,
		send:   make(chan []byte, sendBufferSize),
	}
	hub.register <- client

	go client.writePump()
	go client.readPump()
	return client
}

// readPump drains inbound frames until the connection dies. The protocol is
// push-only; anything the client sends besides control frames is discarded.
// Its real job is detecting disconnects so the subscription is released.
func (c *Client) readPump() {
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
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				utils.GetLogger().Debug("realtime read error", zap.String("userID", c.userID), zap.Error(err))
			}
			return
		}
	}
}

// writePump forwards events from the send channel to the socket and keeps the
// connection alive with periodic pings.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case data, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// Hub closed the channel.
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
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

func marshalEvent(event Event) ([]byte, error) {
	data, err := json.Marshal(event)
	if err != nil {
		utils.GetLogger().Error("failed to marshal realtime event", zap.Error(err))
		return nil, err
	}
	return data, nil
}
