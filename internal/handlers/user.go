package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"gemchat-backend/internal/middleware"
	"gemchat-backend/internal/models"
	"gemchat-backend/internal/services"
)

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

type UserHandler struct {
	userRepo userRepo
}

func NewUserHandler(userRepo userRepo) *UserHandler {
	return &UserHandler{userRepo: userRepo}
}

// GetMe returns the authenticated user's profile.
func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	user, err := h.userRepo.GetByID(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		handleServiceError(w, r, &services.NotFoundError{Message: "User not found"})
		return
	}

	writeJSON(w, http.StatusOK, user)
}
