package dto

import (
	"careerverse/internal/domain/job"

	"github.com/google/uuid"
)

type JobPostingResponse struct {
	ID               uuid.UUID `json:"id"`
	Title            string    `json:"title"`
	Company          string    `json:"company"`
	CareerDomain     string    `json:"career_domain"`
	ShortDescription string    `json:"short_description"`
	RequiredSkills   []string  `json:"required_skills"`
}

func NewJobListResponse(postings []job.Posting) []JobPostingResponse {
	out := make([]JobPostingResponse, 0, len(postings))
	for _, p := range postings {
		skills := p.RequiredSkills
		if skills == nil {
			skills = []string{}
		}
		out = append(out, JobPostingResponse{
			ID:               p.ID,
			Title:            p.Title,
			Company:          p.Company,
			CareerDomain:     string(p.CareerDomain),
			ShortDescription: p.ShortDescription,
			RequiredSkills:   skills,
		})
	}
	return out
}
