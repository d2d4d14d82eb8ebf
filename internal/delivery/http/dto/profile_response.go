package dto

import "careerverse/internal/domain/profile"

type ActivityRecordResponse struct {
	Domain       *string `json:"domain"`
	ActivityType string  `json:"activity_type"`
	Timestamp    int64   `json:"timestamp"`
}

type ProfileResponse struct {
	CareerDomain *string                  `json:"career_domain"`
	Skills       []string                 `json:"skills"`
	ActivityLog  []ActivityRecordResponse `json:"activity_log"`
	Strengths    []string                 `json:"strengths"`
	UpdatedAt    int64                    `json:"updated_at"`
}

func NewProfileResponse(p profile.Profile) ProfileResponse {
	out := ProfileResponse{
		CareerDomain: domainPtr(p.CareerDomain),
		Skills:       p.Skills,
		Strengths:    p.Strengths,
		UpdatedAt:    p.UpdatedAt,
		ActivityLog:  make([]ActivityRecordResponse, 0, len(p.ActivityLog)),
	}
	if out.Skills == nil {
		out.Skills = []string{}
	}
	if out.Strengths == nil {
		out.Strengths = []string{}
	}
	for _, rec := range p.ActivityLog {
		out.ActivityLog = append(out.ActivityLog, ActivityRecordResponse{
			Domain:       domainPtr(rec.Domain),
			ActivityType: rec.ActivityType,
			Timestamp:    rec.Timestamp,
		})
	}
	return out
}

func domainPtr(d profile.CareerDomain) *string {
	if d == "" {
		return nil
	}
	s := string(d)
	return &s
}
