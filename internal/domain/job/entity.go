package job

import (
	"careerverse/internal/domain/profile"

	"github.com/google/uuid"
)

// Posting is one entry of the static opportunity catalog.
type Posting struct {
	ID               uuid.UUID
	Title            string
	Company          string
	CareerDomain     profile.CareerDomain
	RequiredSkills   []string
	ShortDescription string
}
