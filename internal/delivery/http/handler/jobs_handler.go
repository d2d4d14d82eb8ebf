package handler

import (
	"careerverse/internal/delivery/http/dto"
	"careerverse/internal/delivery/http/middleware"
	"careerverse/internal/domain/profile"
	"careerverse/internal/pkg/response"
	"careerverse/internal/repository"

	"github.com/gofiber/fiber/v3"
)

// JobsHandler lists the static posting catalog.
type JobsHandler struct {
	catalog repository.JobCatalogRepository
}

func NewJobsHandler(catalog repository.JobCatalogRepository) *JobsHandler {
	return &JobsHandler{catalog: catalog}
}

func (h *JobsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/jobs", h.ListJobs)
}

func (h *JobsHandler) ListJobs(c fiber.Ctx) error {
	domain := profile.CareerDomain(c.Query("domain"))

	var err error
	var postings []dto.JobPostingResponse
	if domain != "" {
		if !domain.Valid() {
			return middleware.NewAppError(fiber.StatusBadRequest, "Unknown career domain", nil, nil)
		}
		items, listErr := h.catalog.ListPostingsByDomain(c.Context(), domain)
		err = listErr
		postings = dto.NewJobListResponse(items)
	} else {
		items, listErr := h.catalog.ListPostings(c.Context())
		err = listErr
		postings = dto.NewJobListResponse(items)
	}
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, postings)
}
