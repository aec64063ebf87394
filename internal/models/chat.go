package models

import (
	"time"

	"github.com/google/uuid"
)

// ChatExchange is one (message, generated response) pair owned by a user.
// Rows are written exactly once, after a successful generation call, and are
// never updated. UserID stays internal; the API exposes the remaining fields.
type ChatExchange struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"-"`
	Message   string    `json:"message"`
	Response  string    `json:"response"`
	CreatedAt time.Time `json:"created_at"`
}

// ChatRequest is the payload sent to the chat endpoint.
type ChatRequest struct {
	Message string `json:"message"`
}
