package ws

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestRouter_DispatchRoundtrip(t *testing.T) {
	r := NewRouter(nil)
	r.Handle("echo", func(_ context.Context, userID uuid.UUID, payload json.RawMessage) (any, error) {
		var in map[string]string
		if err := json.Unmarshal(payload, &in); err != nil {
			return nil, err
		}
		in["user"] = userID.String()
		return in, nil
	})

	userID := uuid.New()
	resp := r.Dispatch(context.Background(), userID, Request{
		ID:      "req-1",
		Action:  "echo",
		Payload: json.RawMessage(`{"hello":"world"}`),
	})

	require.Equal(t, "req-1", resp.ID)
	require.True(t, resp.Success)
	require.Empty(t, resp.Error)
	require.Equal(t, map[string]string{"hello": "world", "user": userID.String()}, resp.Data)
}

func TestRouter_UnknownActionStillResponds(t *testing.T) {
	r := NewRouter(nil)

	resp := r.Dispatch(context.Background(), uuid.New(), Request{ID: "req-2", Action: "noSuchAction"})

	require.Equal(t, "req-2", resp.ID)
	require.False(t, resp.Success)
	require.Equal(t, "unknown action: noSuchAction", resp.Error)
}

func TestRouter_HandlerErrorBecomesFailureResponse(t *testing.T) {
	r := NewRouter(nil)
	r.Handle("boom", func(context.Context, uuid.UUID, json.RawMessage) (any, error) {
		return nil, errors.New("store unavailable")
	})

	resp := r.Dispatch(context.Background(), uuid.New(), Request{ID: "req-3", Action: "boom"})

	require.False(t, resp.Success)
	require.Equal(t, "store unavailable", resp.Error)
	require.Nil(t, resp.Data)
}

func TestRouter_PanicIsRecoveredIntoResponse(t *testing.T) {
	r := NewRouter(nil)
	r.Handle("panic", func(context.Context, uuid.UUID, json.RawMessage) (any, error) {
		panic("handler bug")
	})

	resp := r.Dispatch(context.Background(), uuid.New(), Request{ID: "req-4", Action: "panic"})

	require.Equal(t, "req-4", resp.ID)
	require.False(t, resp.Success)
	require.Equal(t, "internal error", resp.Error)
}

func TestRouter_HandleIgnoresEmptyRegistrations(t *testing.T) {
	r := NewRouter(nil)
	r.Handle("", func(context.Context, uuid.UUID, json.RawMessage) (any, error) { return nil, nil })
	r.Handle("real", nil)
	r.Handle("real", func(context.Context, uuid.UUID, json.RawMessage) (any, error) { return "ok", nil })

	require.Equal(t, []string{"real"}, r.Actions())
}
