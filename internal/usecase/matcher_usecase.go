package usecase

import (
	"context"

	"careerverse/internal/domain/matching"
	"careerverse/internal/profilestore"
	"careerverse/internal/repository"

	"github.com/google/uuid"
)

type MatcherUsecase interface {
	MatchJobs(ctx context.Context, userID uuid.UUID) ([]matching.Result, error)
}

// Matcher ranks the static posting catalog against a user's current
// profile. Recomputed on demand; nothing is persisted.
type Matcher struct {
	store   profilestore.Store
	catalog repository.JobCatalogRepository
}

func NewMatcher(store profilestore.Store, catalog repository.JobCatalogRepository) *Matcher {
	return &Matcher{store: store, catalog: catalog}
}

func (m *Matcher) MatchJobs(ctx context.Context, userID uuid.UUID) ([]matching.Result, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}

	p, err := m.store.Load(ctx, userID)
	if err != nil {
		return nil, mapStoreError(err)
	}

	postings, err := m.catalog.ListPostings(ctx)
	if err != nil {
		return nil, ErrInternal
	}

	return matching.Rank(p.Skills, postings), nil
}
