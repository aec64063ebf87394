package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"gemchat-backend/internal/middleware"
	"gemchat-backend/internal/models"
	"gemchat-backend/internal/services"
)

type generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type chatRepository interface {
	Create(ctx context.Context, exchange *models.ChatExchange) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.ChatExchange, error)
}

type ChatHandler struct {
	chatRepo  chatRepository
	generator generator
}

func NewChatHandler(chatRepo chatRepository, generator generator) *ChatHandler {
	return &ChatHandler{
		chatRepo:  chatRepo,
		generator: generator,
	}
}

// Send validates the message, gets a Gemini reply, and persists the exchange.
// Nothing is written unless generation succeeded; each success response has
// exactly one row behind it.
func (h *ChatHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	if strings.TrimSpace(req.Message) == "" {
		writeJSON(w, http.StatusBadRequest, errorRespWithFields("VALIDATION_ERROR", "Validation failed",
			map[string]string{"message": "Message is required"}, r))
		return
	}

	reply, err := h.generator.Generate(r.Context(), req.Message)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	exchange := &models.ChatExchange{
		UserID:   middleware.GetUserID(r.Context()),
		Message:  req.Message,
		Response: reply,
	}
	if err := h.chatRepo.Create(r.Context(), exchange); err != nil {
		handleServiceError(w, r, &services.StorageError{Message: "Failed to save chat exchange"})
		return
	}

	writeJSON(w, http.StatusCreated, exchange)
}

// History returns all of the caller's exchanges, newest first. An empty
// history is a valid 200 with an empty array.
func (h *ChatHandler) History(w http.ResponseWriter, r *http.Request) {
	exchanges, err := h.chatRepo.ListByUser(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		handleServiceError(w, r, &services.StorageError{Message: "Failed to load chat history"})
		return
	}

	writeJSON(w, http.StatusOK, exchanges)
}
