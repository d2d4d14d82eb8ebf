package dto

import (
	"careerverse/internal/domain/matching"

	"github.com/google/uuid"
)

type MatchItemResponse struct {
	JobID            uuid.UUID `json:"job_id"`
	Title            string    `json:"title"`
	Company          string    `json:"company"`
	CareerDomain     string    `json:"career_domain"`
	ShortDescription string    `json:"short_description"`
	RequiredSkills   []string  `json:"required_skills"`
	MatchScore       int       `json:"match_score"`
}

func NewMatchListResponse(results []matching.Result) []MatchItemResponse {
	out := make([]MatchItemResponse, 0, len(results))
	for _, r := range results {
		skills := r.Posting.RequiredSkills
		if skills == nil {
			skills = []string{}
		}
		out = append(out, MatchItemResponse{
			JobID:            r.Posting.ID,
			Title:            r.Posting.Title,
			Company:          r.Posting.Company,
			CareerDomain:     string(r.Posting.CareerDomain),
			ShortDescription: r.Posting.ShortDescription,
			RequiredSkills:   skills,
			MatchScore:       r.MatchScore,
		})
	}
	return out
}
