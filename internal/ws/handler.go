package ws

import (
	"net/http"

	"careerverse/internal/pkg/jwt"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

type Handler struct {
	hub    *Hub
	router *Router
	jwt    jwt.Service
	logger *zap.Logger
}

func NewHandler(hub *Hub, router *Router, jwtSvc jwt.Service, logger *zap.Logger) *Handler {
	return &Handler{hub: hub, router: router, jwt: jwtSvc, logger: logger}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HandleBridge upgrades the connection and binds it to the user named
// by the token query parameter. Browser WebSocket clients cannot set
// an Authorization header, hence the query-string token.
func (h *Handler) HandleBridge(c fiber.Ctx) error {
	if h == nil || h.hub == nil || h.router == nil {
		return fiber.ErrServiceUnavailable
	}

	token := c.Query("token")
	claims, err := h.jwt.ValidateToken(token)
	if err != nil {
		return fiber.ErrUnauthorized
	}
	userID := claims.UserID

	fiberHandler := adaptor.HTTPHandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			if h.logger != nil {
				h.logger.Warn("bridge upgrade error", zap.Error(err))
			}
			return
		}

		client := NewClient(h.hub, h.router, conn, userID, h.logger)
		h.hub.Register(client)
		go client.WritePump()
		go client.ReadPump()
	})

	return fiberHandler(c)
}
