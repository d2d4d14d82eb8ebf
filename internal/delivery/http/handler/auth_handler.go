package handler

import (
	"careerverse/internal/delivery/http/dto"
	"careerverse/internal/delivery/http/middleware"
	"careerverse/internal/pkg/jwt"
	"careerverse/internal/pkg/response"
	"careerverse/internal/profilestore"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

// AuthHandler mints anonymous sessions. There is no signup: a fresh
// uid is generated per session request, the users/{uid} record is
// created, and the returned token is the only handle on that identity.
type AuthHandler struct {
	jwt       jwt.Service
	store     profilestore.Store
	expiresIn int64
}

func NewAuthHandler(jwtSvc jwt.Service, store profilestore.Store, expiresInSeconds int64) *AuthHandler {
	return &AuthHandler{jwt: jwtSvc, store: store, expiresIn: expiresInSeconds}
}

func (h *AuthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/anonymous", h.CreateAnonymousSession)
}

func (h *AuthHandler) CreateAnonymousSession(c fiber.Ctx) error {
	userID := uuid.New()

	if err := h.store.EnsureUser(c.Context(), userID); err != nil {
		return middleware.NewAppError(fiber.StatusServiceUnavailable, response.MessageServiceUnavailable, nil, err)
	}

	token, err := h.jwt.GenerateAccessToken(userID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	out := dto.AnonymousSessionResponse{
		UserID:      userID,
		AccessToken: token,
		ExpiresIn:   h.expiresIn,
	}
	return response.Success(c, fiber.StatusCreated, "session created", out)
}
