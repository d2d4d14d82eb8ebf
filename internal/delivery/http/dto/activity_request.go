package dto

import "careerverse/internal/domain/profile"

// ActivityRequest is the submitActivity payload. Every field is
// optional; an empty body is a valid keep-alive.
type ActivityRequest struct {
	Domain       string   `json:"domain"`
	ActivityType string   `json:"activity_type"`
	Skills       []string `json:"skills"`
	Timestamp    int64    `json:"timestamp"`
}

func (r ActivityRequest) ToEvent() profile.ActivityEvent {
	return profile.ActivityEvent{
		Domain:       profile.CareerDomain(r.Domain),
		ActivityType: r.ActivityType,
		Skills:       r.Skills,
		Timestamp:    r.Timestamp,
	}
}
