package ws

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 64 * 1024
)

// Client is one connected execution context. Its read pump parses
// request envelopes and feeds them through the router; replies and
// published events share the send channel.
type Client struct {
	hub    *Hub
	router *Router
	conn   *websocket.Conn
	userID uuid.UUID
	send   chan []byte
	logger *zap.Logger
}

func NewClient(hub *Hub, router *Router, conn *websocket.Conn, userID uuid.UUID, logger *zap.Logger) *Client {
	return &Client{
		hub:    hub,
		router: router,
		conn:   conn,
		userID: userID,
		send:   make(chan []byte, 64),
		logger: logger,
	}
}

func (c *Client) ReadPump() {
	defer func() {
		c.hub.Unregister(c)
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				if c.logger != nil {
					c.logger.Warn("bridge read error", zap.Error(err))
				}
			}
			return
		}

		var req Request
		if err := json.Unmarshal(raw, &req); err != nil {
			c.reply(Response{Success: false, Error: "malformed request envelope"})
			continue
		}

		resp := c.router.Dispatch(context.Background(), c.userID, req)
		c.reply(resp)
	}
}

func (c *Client) reply(resp Response) {
	b, err := json.Marshal(resp)
	if err != nil {
		return
	}
	select {
	case c.send <- b:
	default:
		// Slow consumer; the hub will reap this client.
		c.hub.Unregister(c)
	}
}

func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
