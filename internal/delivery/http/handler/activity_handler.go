package handler

import (
	"errors"

	"careerverse/internal/delivery/http/dto"
	"careerverse/internal/delivery/http/middleware"
	"careerverse/internal/pkg/response"
	"careerverse/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

// ActivityHandler is the HTTP ingestion point for page observers.
type ActivityHandler struct {
	uc usecase.SynthesizerUsecase
}

func NewActivityHandler(uc usecase.SynthesizerUsecase) *ActivityHandler {
	return &ActivityHandler{uc: uc}
}

func (h *ActivityHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/activities", h.SubmitActivity)
}

func (h *ActivityHandler) SubmitActivity(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req dto.ActivityRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	merged, err := h.uc.MergeActivity(c.Context(), userID, req.ToEvent())
	if err != nil {
		return mapProfileUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "activity recorded", dto.NewProfileResponse(merged))
}

func mapProfileUsecaseError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, usecase.ErrStoreUnavailable):
		return middleware.NewAppError(fiber.StatusServiceUnavailable, "Activity not recorded", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
