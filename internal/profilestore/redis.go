package profilestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"careerverse/internal/config"
	"careerverse/internal/domain/profile"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// casRetries bounds the optimistic Update loop. Contention on a single
// user's document is rare enough that losing five races in a row means
// something is badly wrong.
const casRetries = 5

// Redis persists profile documents in a Redis instance, one JSON
// document per key. Keys follow the original path layout:
// profiles/{uid}, users/{uid}, activities/{uid}/{activityId}.
type Redis struct {
	client *redis.Client
	logger *zap.Logger
}

func NewRedis(ctx context.Context, cfg config.RedisConfig, logger *zap.Logger) (*Redis, error) {
	addr := fmt.Sprintf("%s:%s", cfg.Host, cfg.Port)
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	return &Redis{client: client, logger: logger}, nil
}

func (r *Redis) Close() error {
	if r == nil || r.client == nil {
		return nil
	}
	return r.client.Close()
}

func profileKey(userID uuid.UUID) string { return "profiles/" + userID.String() }
func userKey(userID uuid.UUID) string    { return "users/" + userID.String() }
func activityKey(userID uuid.UUID, activityID string) string {
	return "activities/" + userID.String() + "/" + activityID
}

// serverNow returns the store's clock in epoch milliseconds so that
// UpdatedAt is monotonic from the store's perspective regardless of
// caller clock skew.
func (r *Redis) serverNow(ctx context.Context) (int64, error) {
	t, err := r.client.Time(ctx).Result()
	if err != nil {
		return 0, wrapUnavailable(err)
	}
	return t.UnixMilli(), nil
}

func (r *Redis) Load(ctx context.Context, userID uuid.UUID) (profile.Profile, error) {
	key := profileKey(userID)

	b, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return r.createDefault(ctx, userID)
	}
	if err != nil {
		return profile.Profile{}, wrapUnavailable(err)
	}

	var p profile.Profile
	if err := json.Unmarshal(b, &p); err != nil {
		return profile.Profile{}, fmt.Errorf("decode profile %s: %w", key, err)
	}
	normalize(&p)
	return p, nil
}

// createDefault writes the empty-default document only if the key is
// still absent, then re-reads, so concurrent first accesses converge
// on one document.
func (r *Redis) createDefault(ctx context.Context, userID uuid.UUID) (profile.Profile, error) {
	now, err := r.serverNow(ctx)
	if err != nil {
		return profile.Profile{}, err
	}

	p := profile.Default()
	p.UpdatedAt = now

	b, err := json.Marshal(p)
	if err != nil {
		return profile.Profile{}, err
	}

	if err := r.client.SetNX(ctx, profileKey(userID), b, 0).Err(); err != nil {
		return profile.Profile{}, wrapUnavailable(err)
	}

	raw, err := r.client.Get(ctx, profileKey(userID)).Bytes()
	if err != nil {
		return profile.Profile{}, wrapUnavailable(err)
	}
	var stored profile.Profile
	if err := json.Unmarshal(raw, &stored); err != nil {
		return profile.Profile{}, err
	}
	normalize(&stored)
	return stored, nil
}

func (r *Redis) Save(ctx context.Context, userID uuid.UUID, p profile.Profile) (profile.Profile, error) {
	now, err := r.serverNow(ctx)
	if err != nil {
		return profile.Profile{}, err
	}
	normalize(&p)
	p.UpdatedAt = now

	b, err := json.Marshal(p)
	if err != nil {
		return profile.Profile{}, err
	}
	if err := r.client.Set(ctx, profileKey(userID), b, 0).Err(); err != nil {
		return profile.Profile{}, wrapUnavailable(err)
	}
	return p, nil
}

// Update performs the mutation under WATCH so that a write that raced
// another writer is rejected by the server and retried against fresh
// state. This is the fix for the lost-update hazard of a plain
// read-modify-write: stale writes never land.
func (r *Redis) Update(ctx context.Context, userID uuid.UUID, mutate func(*profile.Profile) error) (profile.Profile, error) {
	key := profileKey(userID)

	var out profile.Profile
	txn := func(tx *redis.Tx) error {
		var p profile.Profile
		b, err := tx.Get(ctx, key).Bytes()
		switch {
		case errors.Is(err, redis.Nil):
			p = profile.Default()
		case err != nil:
			return err
		default:
			if err := json.Unmarshal(b, &p); err != nil {
				return fmt.Errorf("decode profile %s: %w", key, err)
			}
		}
		normalize(&p)

		if err := mutate(&p); err != nil {
			return err
		}

		now, err := r.serverNow(ctx)
		if err != nil {
			return err
		}
		p.UpdatedAt = now

		data, err := json.Marshal(p)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, 0)
			return nil
		})
		if err != nil {
			return err
		}
		out = p
		return nil
	}

	for i := 0; i < casRetries; i++ {
		err := r.client.Watch(ctx, txn, key)
		if err == nil {
			return out, nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			if r.logger != nil {
				r.logger.Debug("profile update raced, retrying",
					zap.String("user_id", userID.String()),
					zap.Int("attempt", i+1))
			}
			continue
		}
		if isNetworkErr(err) {
			return profile.Profile{}, wrapUnavailable(err)
		}
		return profile.Profile{}, err
	}
	return profile.Profile{}, ErrConflict
}

func (r *Redis) Reset(ctx context.Context, userID uuid.UUID) (profile.Profile, error) {
	return r.Save(ctx, userID, profile.Default())
}

func (r *Redis) EnsureUser(ctx context.Context, userID uuid.UUID) error {
	now, err := r.serverNow(ctx)
	if err != nil {
		return err
	}
	key := userKey(userID)

	rec := UserRecord{CreatedAt: now, LastActive: now, CareerFocus: defaultCareerFocus}
	b, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	created, err := r.client.SetNX(ctx, key, b, 0).Result()
	if err != nil {
		return wrapUnavailable(err)
	}
	if created {
		return nil
	}

	raw, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		return wrapUnavailable(err)
	}
	var existing UserRecord
	if err := json.Unmarshal(raw, &existing); err != nil {
		return err
	}
	existing.LastActive = now
	b, err = json.Marshal(existing)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, key, b, 0).Err(); err != nil {
		return wrapUnavailable(err)
	}
	return nil
}

func (r *Redis) AppendActivity(ctx context.Context, userID uuid.UUID, rec profile.ActivityRecord) error {
	if rec.ActivityType == "" {
		rec.ActivityType = "general"
	}
	b, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	key := activityKey(userID, uuid.NewString())
	if err := r.client.Set(ctx, key, b, 0).Err(); err != nil {
		return wrapUnavailable(err)
	}
	return nil
}

// normalize re-establishes the non-nil slice invariants after a
// round-trip through JSON, where empty arrays decode to nil.
func normalize(p *profile.Profile) {
	if p.Skills == nil {
		p.Skills = []string{}
	}
	if p.ActivityLog == nil {
		p.ActivityLog = []profile.ActivityRecord{}
	}
	if p.Strengths == nil {
		p.Strengths = []string{}
	}
}

func wrapUnavailable(err error) error {
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}

func isNetworkErr(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}
	s := err.Error()
	return strings.Contains(s, "connection refused") || strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "broken pipe") || strings.Contains(s, "EOF")
}
