package ws

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Request is the envelope isolated contexts send over the bridge.
type Request struct {
	ID      string          `json:"id,omitempty"`
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Response is the bridge's reply. Every request gets exactly one.
type Response struct {
	ID      string `json:"id,omitempty"`
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// ActionFunc handles one bridge action for the authenticated user.
type ActionFunc func(ctx context.Context, userID uuid.UUID, payload json.RawMessage) (any, error)

// Router dispatches request envelopes to registered actions. It is the
// single coordinating point between isolated contexts and the process
// that owns the store connection.
type Router struct {
	actions map[string]ActionFunc
	logger  *zap.Logger
}

func NewRouter(logger *zap.Logger) *Router {
	return &Router{
		actions: make(map[string]ActionFunc),
		logger:  logger,
	}
}

func (r *Router) Handle(action string, fn ActionFunc) {
	if action == "" || fn == nil {
		return
	}
	r.actions[action] = fn
}

// Actions returns the registered action names, sorted.
func (r *Router) Actions() []string {
	out := make([]string, 0, len(r.actions))
	for name := range r.actions {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Dispatch routes one envelope and always produces a response, even on
// handler panic. Silently dropped requests are a contract violation.
func (r *Router) Dispatch(ctx context.Context, userID uuid.UUID, req Request) (resp Response) {
	resp = Response{ID: req.ID}

	defer func() {
		if rec := recover(); rec != nil {
			if r.logger != nil {
				r.logger.Error("bridge action panicked",
					zap.String("action", req.Action),
					zap.Any("panic", rec))
			}
			resp = Response{ID: req.ID, Success: false, Error: "internal error"}
		}
	}()

	fn, ok := r.actions[req.Action]
	if !ok {
		resp.Error = fmt.Sprintf("unknown action: %s", req.Action)
		return resp
	}

	data, err := fn(ctx, userID, req.Payload)
	if err != nil {
		resp.Error = err.Error()
		return resp
	}

	resp.Success = true
	resp.Data = data
	return resp
}
