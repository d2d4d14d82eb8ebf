package handler

import (
	"careerverse/internal/delivery/http/dto"
	"careerverse/internal/delivery/http/middleware"
	"careerverse/internal/pkg/response"
	"careerverse/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type MatchHandler struct {
	uc usecase.MatcherUsecase
}

func NewMatchHandler(uc usecase.MatcherUsecase) *MatchHandler {
	return &MatchHandler{uc: uc}
}

func (h *MatchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/matches", h.GetMatches)
}

func (h *MatchHandler) GetMatches(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	results, err := h.uc.MatchJobs(c.Context(), userID)
	if err != nil {
		return mapProfileUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewMatchListResponse(results))
}
