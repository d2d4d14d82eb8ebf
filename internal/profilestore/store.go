package profilestore

import (
	"context"
	"errors"

	"careerverse/internal/domain/profile"

	"github.com/google/uuid"
)

var (
	// ErrUnavailable means the backing store could not be reached. No
	// local state was mutated; callers may retry.
	ErrUnavailable = errors.New("profile store unavailable")

	// ErrConflict means an atomic update lost its compare-and-swap
	// race more times than the store was willing to retry.
	ErrConflict = errors.New("profile update conflict")
)

// Store is the durable owner of profile documents, addressed by user
// id. Load creates the empty-default document on first access. Save
// is a blind last-write-wins put; Update is an atomic
// read-modify-write and is what the synthesizer merges through.
// Both stamp UpdatedAt with a store-assigned timestamp.
type Store interface {
	Load(ctx context.Context, userID uuid.UUID) (profile.Profile, error)
	Save(ctx context.Context, userID uuid.UUID, p profile.Profile) (profile.Profile, error)
	Update(ctx context.Context, userID uuid.UUID, mutate func(*profile.Profile) error) (profile.Profile, error)
	Reset(ctx context.Context, userID uuid.UUID) (profile.Profile, error)

	// EnsureUser creates the users/{uid} record on first auth and
	// refreshes lastActive on later ones.
	EnsureUser(ctx context.Context, userID uuid.UUID) error

	// AppendActivity writes one audit record under
	// activities/{uid}/{activityId}. Best-effort; callers log failures
	// and move on.
	AppendActivity(ctx context.Context, userID uuid.UUID, rec profile.ActivityRecord) error
}

// UserRecord mirrors the users/{uid} document.
type UserRecord struct {
	CreatedAt   int64  `json:"createdAt"`
	LastActive  int64  `json:"lastActive"`
	CareerFocus string `json:"careerFocus"`
}

const defaultCareerFocus = "Undecided"
