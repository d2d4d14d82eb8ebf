package profilestore

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"careerverse/internal/domain/profile"

	"github.com/google/uuid"
)

// Memory is an in-process Store. It backs tests and the local-only
// fallback mode; it is not profile truth in a deployed setup.
//
// Update holds the per-store lock across the whole read-modify-write,
// so concurrent merges serialize. Save deliberately does not: it is
// the same blind last-write-wins put the remote store exposes.
type Memory struct {
	mu         sync.Mutex
	profiles   map[uuid.UUID]profile.Profile
	users      map[uuid.UUID]UserRecord
	activities map[uuid.UUID][]profile.ActivityRecord

	// Now is the store clock; override in tests for deterministic
	// timestamps.
	Now func() int64
}

func NewMemory() *Memory {
	return &Memory{
		profiles:   make(map[uuid.UUID]profile.Profile),
		users:      make(map[uuid.UUID]UserRecord),
		activities: make(map[uuid.UUID][]profile.ActivityRecord),
		Now:        func() int64 { return time.Now().UnixMilli() },
	}
}

// clone deep-copies through JSON so callers never alias store-owned
// slices.
func clone(p profile.Profile) profile.Profile {
	b, _ := json.Marshal(p)
	var out profile.Profile
	_ = json.Unmarshal(b, &out)
	normalize(&out)
	return out
}

func (m *Memory) Load(_ context.Context, userID uuid.UUID) (profile.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.profiles[userID]
	if !ok {
		p = profile.Default()
		p.UpdatedAt = m.Now()
		m.profiles[userID] = p
	}
	return clone(p), nil
}

func (m *Memory) Save(_ context.Context, userID uuid.UUID, p profile.Profile) (profile.Profile, error) {
	stored := clone(p)
	stored.UpdatedAt = m.Now()

	m.mu.Lock()
	m.profiles[userID] = stored
	m.mu.Unlock()

	return clone(stored), nil
}

func (m *Memory) Update(_ context.Context, userID uuid.UUID, mutate func(*profile.Profile) error) (profile.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.profiles[userID]
	if !ok {
		p = profile.Default()
	}
	work := clone(p)

	if err := mutate(&work); err != nil {
		return profile.Profile{}, err
	}
	work.UpdatedAt = m.Now()
	m.profiles[userID] = work

	return clone(work), nil
}

func (m *Memory) Reset(_ context.Context, userID uuid.UUID) (profile.Profile, error) {
	p := profile.Default()
	p.UpdatedAt = m.Now()

	m.mu.Lock()
	m.profiles[userID] = p
	m.mu.Unlock()

	return clone(p), nil
}

func (m *Memory) EnsureUser(_ context.Context, userID uuid.UUID) error {
	now := m.Now()

	m.mu.Lock()
	defer m.mu.Unlock()

	rec, ok := m.users[userID]
	if !ok {
		m.users[userID] = UserRecord{CreatedAt: now, LastActive: now, CareerFocus: defaultCareerFocus}
		return nil
	}
	rec.LastActive = now
	m.users[userID] = rec
	return nil
}

func (m *Memory) AppendActivity(_ context.Context, userID uuid.UUID, rec profile.ActivityRecord) error {
	if rec.ActivityType == "" {
		rec.ActivityType = "general"
	}
	m.mu.Lock()
	m.activities[userID] = append(m.activities[userID], rec)
	m.mu.Unlock()
	return nil
}

// Activities returns the audit trail recorded for a user. Test hook.
func (m *Memory) Activities(userID uuid.UUID) []profile.ActivityRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]profile.ActivityRecord, len(m.activities[userID]))
	copy(out, m.activities[userID])
	return out
}

// User returns the users/{uid} record, if any. Test hook.
func (m *Memory) User(userID uuid.UUID) (UserRecord, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.users[userID]
	return rec, ok
}
