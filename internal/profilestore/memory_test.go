package profilestore

import (
	"context"
	"testing"

	"careerverse/internal/domain/profile"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestMemory_LoadCreatesDefault(t *testing.T) {
	store := NewMemory()
	store.Now = func() int64 { return 42 }
	userID := uuid.New()

	p, err := store.Load(context.Background(), userID)
	require.NoError(t, err)

	require.Empty(t, p.CareerDomain)
	require.Equal(t, []string{}, p.Skills)
	require.Equal(t, []profile.ActivityRecord{}, p.ActivityLog)
	require.Equal(t, []string{}, p.Strengths)
	require.Equal(t, int64(42), p.UpdatedAt)
}

func TestMemory_SaveStampsUpdatedAt(t *testing.T) {
	store := NewMemory()
	clock := int64(0)
	store.Now = func() int64 { clock += 100; return clock }
	userID := uuid.New()

	p := profile.Default()
	p.Skills = []string{"Go"}
	saved, err := store.Save(context.Background(), userID, p)
	require.NoError(t, err)
	require.Equal(t, int64(100), saved.UpdatedAt)

	saved, err = store.Save(context.Background(), userID, p)
	require.NoError(t, err)
	require.Equal(t, int64(200), saved.UpdatedAt, "updatedAt must be store-assigned and non-decreasing")
}

func TestMemory_UpdateIsAtomic(t *testing.T) {
	store := NewMemory()
	userID := uuid.New()

	_, err := store.Update(context.Background(), userID, func(p *profile.Profile) error {
		p.AddSkills([]string{"Go"})
		return nil
	})
	require.NoError(t, err)

	got, err := store.Load(context.Background(), userID)
	require.NoError(t, err)
	require.Equal(t, []string{"Go"}, got.Skills)
}

func TestMemory_UpdateMutateErrorLeavesStateUntouched(t *testing.T) {
	store := NewMemory()
	userID := uuid.New()

	_, err := store.Save(context.Background(), userID, profile.Profile{Skills: []string{"Go"}})
	require.NoError(t, err)

	_, err = store.Update(context.Background(), userID, func(p *profile.Profile) error {
		p.Skills = nil
		return context.Canceled
	})
	require.Error(t, err)

	got, err := store.Load(context.Background(), userID)
	require.NoError(t, err)
	require.Equal(t, []string{"Go"}, got.Skills)
}

func TestMemory_ResetReturnsEmptyDefault(t *testing.T) {
	store := NewMemory()
	userID := uuid.New()

	_, err := store.Update(context.Background(), userID, func(p *profile.Profile) error {
		p.CareerDomain = profile.DomainSoftware
		p.AddSkills([]string{"Go"})
		p.ActivityLog = append(p.ActivityLog, profile.ActivityRecord{ActivityType: "Read article", Timestamp: 1})
		return nil
	})
	require.NoError(t, err)

	_, err = store.Reset(context.Background(), userID)
	require.NoError(t, err)

	got, err := store.Load(context.Background(), userID)
	require.NoError(t, err)
	require.Empty(t, got.CareerDomain)
	require.Equal(t, []string{}, got.Skills)
	require.Equal(t, []profile.ActivityRecord{}, got.ActivityLog)
}

func TestMemory_EnsureUser(t *testing.T) {
	store := NewMemory()
	clock := int64(0)
	store.Now = func() int64 { clock += 10; return clock }
	userID := uuid.New()

	require.NoError(t, store.EnsureUser(context.Background(), userID))
	rec, ok := store.User(userID)
	require.True(t, ok)
	require.Equal(t, "Undecided", rec.CareerFocus)
	require.Equal(t, rec.CreatedAt, rec.LastActive)

	require.NoError(t, store.EnsureUser(context.Background(), userID))
	rec, _ = store.User(userID)
	require.Greater(t, rec.LastActive, rec.CreatedAt)
}

func TestMemory_AppendActivityDefaultsType(t *testing.T) {
	store := NewMemory()
	userID := uuid.New()

	require.NoError(t, store.AppendActivity(context.Background(), userID, profile.ActivityRecord{Timestamp: 5}))

	recs := store.Activities(userID)
	require.Len(t, recs, 1)
	require.Equal(t, "general", recs[0].ActivityType)
}

func TestMemory_LoadReturnsCopy(t *testing.T) {
	store := NewMemory()
	userID := uuid.New()

	_, err := store.Update(context.Background(), userID, func(p *profile.Profile) error {
		p.AddSkills([]string{"Go"})
		return nil
	})
	require.NoError(t, err)

	first, err := store.Load(context.Background(), userID)
	require.NoError(t, err)
	first.Skills[0] = "mutated"

	second, err := store.Load(context.Background(), userID)
	require.NoError(t, err)
	require.Equal(t, []string{"Go"}, second.Skills)
}
