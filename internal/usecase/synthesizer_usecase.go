package usecase

import (
	"context"
	"errors"
	"time"

	"careerverse/internal/domain/profile"
	"careerverse/internal/profilestore"
	"careerverse/internal/ws"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

type SynthesizerUsecase interface {
	MergeActivity(ctx context.Context, userID uuid.UUID, ev profile.ActivityEvent) (profile.Profile, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (profile.Profile, error)
	SaveProfile(ctx context.Context, userID uuid.UUID, p profile.Profile) (profile.Profile, error)
	ResetProfile(ctx context.Context, userID uuid.UUID) (profile.Profile, error)
}

// Synthesizer is the single logical owner of profile documents. It
// holds no authoritative copy across calls; every merge re-reads
// through the store's atomic update primitive.
type Synthesizer struct {
	store  profilestore.Store
	logger *zap.Logger

	reads singleflight.Group

	now func() int64
}

func NewSynthesizer(store profilestore.Store, logger *zap.Logger) *Synthesizer {
	return &Synthesizer{
		store:  store,
		logger: logger,
		now:    func() int64 { return time.Now().UnixMilli() },
	}
}

// MergeActivity folds one event into the user's profile and persists
// the result. Events with nothing to merge still land as keep-alives
// (the store stamps updatedAt). On failure nothing was written and the
// caller may retry; retrying a write that actually succeeded can
// duplicate an activity-log entry.
func (s *Synthesizer) MergeActivity(ctx context.Context, userID uuid.UUID, ev profile.ActivityEvent) (profile.Profile, error) {
	if userID == uuid.Nil {
		return profile.Profile{}, ErrUnauthorized
	}
	if ev.Domain != "" && !ev.Domain.Valid() {
		// Classifier output is free text; unknown domains merge as
		// nothing rather than failing the whole event.
		if s.logger != nil {
			s.logger.Debug("dropping unknown career domain",
				zap.String("user_id", userID.String()),
				zap.String("domain", string(ev.Domain)))
		}
		ev.Domain = ""
	}

	merged, err := s.store.Update(ctx, userID, func(p *profile.Profile) error {
		p.Apply(ev, s.now())
		return nil
	})
	if err != nil {
		return profile.Profile{}, mapStoreError(err)
	}

	s.appendAuditRecord(ctx, userID, ev, merged)
	ws.NotifyProfileUpdated(userID, merged.UpdatedAt)

	return merged, nil
}

// appendAuditRecord mirrors the merged event into the per-user
// activity trail. Failures are logged only; the trail is not profile
// truth.
func (s *Synthesizer) appendAuditRecord(ctx context.Context, userID uuid.UUID, ev profile.ActivityEvent, merged profile.Profile) {
	rec := profile.ActivityRecord{
		Domain:       ev.Domain,
		ActivityType: ev.ActivityType,
		Timestamp:    ev.Timestamp,
	}
	if rec.Domain == "" {
		rec.Domain = merged.CareerDomain
	}
	if rec.Timestamp == 0 {
		rec.Timestamp = s.now()
	}
	if err := s.store.AppendActivity(ctx, userID, rec); err != nil {
		if s.logger != nil {
			s.logger.Warn("activity audit record not written",
				zap.String("user_id", userID.String()),
				zap.Error(err))
		}
	}
}

// GetProfile is read-through: the empty-default document is created on
// first access. Concurrent reads for the same user collapse into one
// store round-trip.
func (s *Synthesizer) GetProfile(ctx context.Context, userID uuid.UUID) (profile.Profile, error) {
	if userID == uuid.Nil {
		return profile.Profile{}, ErrUnauthorized
	}

	v, err, _ := s.reads.Do(userID.String(), func() (any, error) {
		return s.store.Load(ctx, userID)
	})
	if err != nil {
		return profile.Profile{}, mapStoreError(err)
	}
	return v.(profile.Profile), nil
}

// SaveProfile blind-writes a full document, last write wins. It exists
// for UI surfaces that edit the document wholesale; activity ingestion
// must go through MergeActivity.
func (s *Synthesizer) SaveProfile(ctx context.Context, userID uuid.UUID, p profile.Profile) (profile.Profile, error) {
	if userID == uuid.Nil {
		return profile.Profile{}, ErrUnauthorized
	}

	saved, err := s.store.Save(ctx, userID, p)
	if err != nil {
		return profile.Profile{}, mapStoreError(err)
	}
	ws.NotifyProfileUpdated(userID, saved.UpdatedAt)
	return saved, nil
}

// ResetProfile replaces the document with the empty default.
func (s *Synthesizer) ResetProfile(ctx context.Context, userID uuid.UUID) (profile.Profile, error) {
	if userID == uuid.Nil {
		return profile.Profile{}, ErrUnauthorized
	}

	p, err := s.store.Reset(ctx, userID)
	if err != nil {
		return profile.Profile{}, mapStoreError(err)
	}
	ws.NotifyProfileUpdated(userID, p.UpdatedAt)
	return p, nil
}

func mapStoreError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, profilestore.ErrUnavailable):
		return ErrStoreUnavailable
	case errors.Is(err, profilestore.ErrConflict):
		return ErrStoreUnavailable
	default:
		return err
	}
}
