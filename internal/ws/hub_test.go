package ws

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestHub_PublishDeliversToSubscribedUser(t *testing.T) {
	h := NewHub(nil)
	go h.Run()

	userID := uuid.New()
	subscriber := NewClient(h, nil, nil, userID, nil)
	bystander := NewClient(h, nil, nil, uuid.New(), nil)
	h.Register(subscriber)
	h.Register(bystander)
	require.Eventually(t, func() bool { return h.ClientCount() == 2 }, time.Second, 5*time.Millisecond)

	h.Publish(userID, []byte(`{"type":"profile_updated"}`))

	select {
	case msg := <-subscriber.send:
		require.JSONEq(t, `{"type":"profile_updated"}`, string(msg))
	case <-time.After(time.Second):
		t.Fatal("subscriber never received the published event")
	}

	select {
	case msg := <-bystander.send:
		t.Fatalf("event leaked to another user's client: %s", msg)
	default:
	}
}

func TestHub_PublishReapsSlowClientsWithoutBlocking(t *testing.T) {
	h := NewHub(nil)
	go h.Run()

	// More slow clients than the unregister channel can buffer, so a
	// single publish must reap them all without Run wedging on itself.
	userID := uuid.New()
	const n = 256
	for i := 0; i < n; i++ {
		c := NewClient(h, nil, nil, userID, nil)
		for len(c.send) < cap(c.send) {
			c.send <- []byte("backlog")
		}
		h.Register(c)
	}
	require.Eventually(t, func() bool { return h.ClientCount() == n }, time.Second, 5*time.Millisecond)

	h.Publish(userID, []byte("event"))

	require.Eventually(t, func() bool { return h.ClientCount() == 0 }, 2*time.Second, 5*time.Millisecond)
}
