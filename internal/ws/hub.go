package ws

import (
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Hub tracks bridge clients keyed by the user they authenticated as,
// so profile-updated events reach only that user's open contexts.
type Hub struct {
	clients    map[uuid.UUID]map[*Client]bool
	publish    chan publication
	register   chan *Client
	unregister chan *Client
	mutex      sync.RWMutex
	logger     *zap.Logger
}

type publication struct {
	userID  uuid.UUID
	message []byte
}

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		clients:    make(map[uuid.UUID]map[*Client]bool),
		publish:    make(chan publication, 1024),
		register:   make(chan *Client, 128),
		unregister: make(chan *Client, 128),
		logger:     logger,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			if client == nil {
				continue
			}
			h.mutex.Lock()
			set, ok := h.clients[client.userID]
			if !ok {
				set = make(map[*Client]bool)
				h.clients[client.userID] = set
			}
			set[client] = true
			total := h.totalLocked()
			h.mutex.Unlock()
			if h.logger != nil {
				h.logger.Info("bridge client connected",
					zap.String("user_id", client.userID.String()),
					zap.Int("total_clients", total))
			}

		case client := <-h.unregister:
			if client == nil {
				continue
			}
			h.remove(client)

		case pub := <-h.publish:
			h.mutex.RLock()
			snapshot := make([]*Client, 0, len(h.clients[pub.userID]))
			for c := range h.clients[pub.userID] {
				snapshot = append(snapshot, c)
			}
			h.mutex.RUnlock()

			for _, client := range snapshot {
				select {
				case client.send <- pub.message:
				default:
					// Reap inline; sending on h.unregister from here
					// can deadlock Run against its own channel.
					h.remove(client)
				}
			}
		}
	}
}

func (h *Hub) remove(client *Client) {
	h.mutex.Lock()
	if set, ok := h.clients[client.userID]; ok {
		if _, ok := set[client]; ok {
			delete(set, client)
			close(client.send)
		}
		if len(set) == 0 {
			delete(h.clients, client.userID)
		}
	}
	total := h.totalLocked()
	h.mutex.Unlock()
	if h.logger != nil {
		h.logger.Info("bridge client disconnected",
			zap.String("user_id", client.userID.String()),
			zap.Int("total_clients", total))
	}
}

func (h *Hub) Register(client *Client) {
	if h == nil {
		return
	}
	h.register <- client
}

func (h *Hub) Unregister(client *Client) {
	if h == nil {
		return
	}
	h.unregister <- client
}

// Publish delivers a message to every client subscribed to the user.
// Drops on backpressure rather than blocking the caller.
func (h *Hub) Publish(userID uuid.UUID, message []byte) {
	if h == nil {
		return
	}
	select {
	case h.publish <- publication{userID: userID, message: message}:
	default:
		if h.logger != nil {
			h.logger.Warn("bridge publish dropped", zap.String("reason", "buffer_full"))
		}
	}
}

func (h *Hub) ClientCount() int {
	if h == nil {
		return 0
	}
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return h.totalLocked()
}

func (h *Hub) totalLocked() int {
	total := 0
	for _, set := range h.clients {
		total += len(set)
	}
	return total
}
