package usecase

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"careerverse/internal/domain/profile"
	"careerverse/internal/profilestore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newTestSynthesizer(t *testing.T) (*Synthesizer, *profilestore.Memory) {
	t.Helper()
	store := profilestore.NewMemory()
	// The clock is read from concurrent merges, so it must be atomic.
	var clock atomic.Int64
	tick := func() int64 { return clock.Add(1) }
	store.Now = tick
	s := NewSynthesizer(store, nil)
	s.now = tick
	return s, store
}

func TestMergeActivity_NilUserIsUnauthorized(t *testing.T) {
	s, _ := newTestSynthesizer(t)

	_, err := s.MergeActivity(context.Background(), uuid.Nil, profile.ActivityEvent{})
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestMergeActivity_MergesDomainSkillsAndLog(t *testing.T) {
	s, _ := newTestSynthesizer(t)
	userID := uuid.New()

	merged, err := s.MergeActivity(context.Background(), userID, profile.ActivityEvent{
		Domain:       profile.DomainSoftware,
		ActivityType: "Solved coding problem",
		Skills:       []string{"Problem Solving", "Data Structures & Algorithms"},
		Timestamp:    123,
	})
	require.NoError(t, err)

	require.Equal(t, profile.DomainSoftware, merged.CareerDomain)
	require.Equal(t, []string{"Problem Solving", "Data Structures & Algorithms"}, merged.Skills)
	require.Len(t, merged.ActivityLog, 1)
	require.Equal(t, int64(123), merged.ActivityLog[0].Timestamp)
	require.NotZero(t, merged.UpdatedAt)
}

func TestMergeActivity_SkillUnionIdempotentAcrossCalls(t *testing.T) {
	s, _ := newTestSynthesizer(t)
	userID := uuid.New()
	ev := profile.ActivityEvent{Skills: []string{"Go", "Redis"}}

	first, err := s.MergeActivity(context.Background(), userID, ev)
	require.NoError(t, err)

	second, err := s.MergeActivity(context.Background(), userID, ev)
	require.NoError(t, err)

	require.Equal(t, first.Skills, second.Skills)
}

func TestMergeActivity_EmptyEventIsKeepAlive(t *testing.T) {
	s, _ := newTestSynthesizer(t)
	userID := uuid.New()

	before, err := s.GetProfile(context.Background(), userID)
	require.NoError(t, err)

	after, err := s.MergeActivity(context.Background(), userID, profile.ActivityEvent{})
	require.NoError(t, err)

	require.Equal(t, before.Skills, after.Skills)
	require.Equal(t, before.ActivityLog, after.ActivityLog)
	require.Greater(t, after.UpdatedAt, before.UpdatedAt, "keep-alive must still stamp updatedAt")
}

func TestMergeActivity_UnknownDomainMergesAsAbsent(t *testing.T) {
	s, _ := newTestSynthesizer(t)
	userID := uuid.New()

	merged, err := s.MergeActivity(context.Background(), userID, profile.ActivityEvent{
		Domain:       profile.CareerDomain("astronaut"),
		ActivityType: "Read article",
	})
	require.NoError(t, err)
	require.Empty(t, merged.CareerDomain)
	require.Len(t, merged.ActivityLog, 1)
	require.Empty(t, merged.ActivityLog[0].Domain)
}

func TestMergeActivity_WritesAuditTrail(t *testing.T) {
	s, store := newTestSynthesizer(t)
	userID := uuid.New()

	_, err := s.MergeActivity(context.Background(), userID, profile.ActivityEvent{
		ActivityType: "Watched tutorial video",
	})
	require.NoError(t, err)

	recs := store.Activities(userID)
	require.Len(t, recs, 1)
	require.Equal(t, "Watched tutorial video", recs[0].ActivityType)
}

func TestResetProfile_YieldsEmptyDefault(t *testing.T) {
	s, _ := newTestSynthesizer(t)
	userID := uuid.New()

	_, err := s.MergeActivity(context.Background(), userID, profile.ActivityEvent{
		Domain:       profile.DomainDesign,
		ActivityType: "Completed course lesson",
		Skills:       []string{"Typography"},
	})
	require.NoError(t, err)

	_, err = s.ResetProfile(context.Background(), userID)
	require.NoError(t, err)

	got, err := s.GetProfile(context.Background(), userID)
	require.NoError(t, err)
	require.Empty(t, got.CareerDomain)
	require.Equal(t, []string{}, got.Skills)
	require.Equal(t, []profile.ActivityRecord{}, got.ActivityLog)
}

// TestLostUpdate_BlindSave reproduces the classic hazard: two writers
// read the same document, merge independently, and blind-write. The
// interleaving is forced (both reads before both writes), so the
// earlier writer's skill is always lost.
func TestLostUpdate_BlindSave(t *testing.T) {
	store := profilestore.NewMemory()
	userID := uuid.New()
	ctx := context.Background()

	a, err := store.Load(ctx, userID)
	require.NoError(t, err)
	b, err := store.Load(ctx, userID)
	require.NoError(t, err)

	a.AddSkills([]string{"Go"})
	b.AddSkills([]string{"Rust"})

	_, err = store.Save(ctx, userID, a)
	require.NoError(t, err)
	_, err = store.Save(ctx, userID, b)
	require.NoError(t, err)

	final, err := store.Load(ctx, userID)
	require.NoError(t, err)
	require.Contains(t, final.Skills, "Rust")
	require.NotContains(t, final.Skills, "Go", "blind save must lose the first writer's update")
}

// TestLostUpdate_ImpossibleThroughMerge drives the same two conflicting
// merges through the synthesizer, whose store primitive serializes the
// read-modify-write. Both skills must survive regardless of ordering.
func TestLostUpdate_ImpossibleThroughMerge(t *testing.T) {
	s, _ := newTestSynthesizer(t)
	userID := uuid.New()

	errs := make(chan error, 2)
	var wg sync.WaitGroup
	for _, skill := range []string{"Go", "Rust"} {
		wg.Add(1)
		go func(skill string) {
			defer wg.Done()
			_, err := s.MergeActivity(context.Background(), userID, profile.ActivityEvent{
				Skills: []string{skill},
			})
			errs <- err
		}(skill)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	final, err := s.GetProfile(context.Background(), userID)
	require.NoError(t, err)
	require.Contains(t, final.Skills, "Go")
	require.Contains(t, final.Skills, "Rust")
}

func TestGetProfile_CreatesDefaultOnFirstRead(t *testing.T) {
	s, _ := newTestSynthesizer(t)
	userID := uuid.New()

	p, err := s.GetProfile(context.Background(), userID)
	require.NoError(t, err)
	require.Equal(t, []string{}, p.Skills)
	require.Equal(t, []profile.ActivityRecord{}, p.ActivityLog)
	require.Equal(t, []string{}, p.Strengths)
}

func TestSaveProfile_LastWriteWins(t *testing.T) {
	s, _ := newTestSynthesizer(t)
	userID := uuid.New()

	saved, err := s.SaveProfile(context.Background(), userID, profile.Profile{
		CareerDomain: profile.DomainMedical,
		Skills:       []string{"Patient Care"},
	})
	require.NoError(t, err)
	require.Equal(t, profile.DomainMedical, saved.CareerDomain)

	got, err := s.GetProfile(context.Background(), userID)
	require.NoError(t, err)
	require.Equal(t, []string{"Patient Care"}, got.Skills)
}
