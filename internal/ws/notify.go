package ws

import (
	"encoding/json"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// ProfileUpdatedEvent is pushed to a user's subscribed contexts after
// every successful merge, save, or reset.
type ProfileUpdatedEvent struct {
	Type      string `json:"type"`
	UserID    string `json:"userId"`
	UpdatedAt int64  `json:"updatedAt"`
	Timestamp string `json:"timestamp"`
}

var defaultHub atomic.Pointer[Hub]

func SetDefaultHub(h *Hub) {
	defaultHub.Store(h)
}

func NotifyProfileUpdated(userID uuid.UUID, updatedAt int64) {
	h := defaultHub.Load()
	if h == nil {
		return
	}
	if userID == uuid.Nil {
		return
	}

	evt := ProfileUpdatedEvent{
		Type:      "profile_updated",
		UserID:    userID.String(),
		UpdatedAt: updatedAt,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	h.Publish(userID, b)
}
