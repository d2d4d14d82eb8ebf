package app

import (
	"context"
	"encoding/json"

	"careerverse/internal/delivery/http/dto"
	"careerverse/internal/domain/profile"
	"careerverse/internal/ws"

	"github.com/google/uuid"
)

// Bridge payloads keep the original envelope field names so existing
// page observers keep working unmodified.
type submitActivityPayload struct {
	Activity profile.ActivityEvent `json:"activity"`
}

type saveProfilePayload struct {
	Profile profile.Profile `json:"profile"`
}

func registerBridgeActions(router *ws.Router, c *Container) {
	router.Handle("submitActivity", func(ctx context.Context, userID uuid.UUID, payload json.RawMessage) (any, error) {
		var p submitActivityPayload
		if len(payload) > 0 {
			if err := json.Unmarshal(payload, &p); err != nil {
				return nil, err
			}
		}
		merged, err := c.Synthesizer.MergeActivity(ctx, userID, p.Activity)
		if err != nil {
			return nil, err
		}
		return dto.NewProfileResponse(merged), nil
	})

	router.Handle("getProfile", func(ctx context.Context, userID uuid.UUID, _ json.RawMessage) (any, error) {
		p, err := c.Synthesizer.GetProfile(ctx, userID)
		if err != nil {
			return nil, err
		}
		return dto.NewProfileResponse(p), nil
	})

	router.Handle("saveProfile", func(ctx context.Context, userID uuid.UUID, payload json.RawMessage) (any, error) {
		var p saveProfilePayload
		if err := json.Unmarshal(payload, &p); err != nil {
			return nil, err
		}
		saved, err := c.Synthesizer.SaveProfile(ctx, userID, p.Profile)
		if err != nil {
			return nil, err
		}
		return dto.NewProfileResponse(saved), nil
	})

	router.Handle("resetProfile", func(ctx context.Context, userID uuid.UUID, _ json.RawMessage) (any, error) {
		p, err := c.Synthesizer.ResetProfile(ctx, userID)
		if err != nil {
			return nil, err
		}
		return dto.NewProfileResponse(p), nil
	})

	router.Handle("matchJobs", func(ctx context.Context, userID uuid.UUID, _ json.RawMessage) (any, error) {
		results, err := c.Matcher.MatchJobs(ctx, userID)
		if err != nil {
			return nil, err
		}
		return dto.NewMatchListResponse(results), nil
	})
}
