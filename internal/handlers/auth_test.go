package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"gemchat-backend/internal/models"
	"gemchat-backend/internal/services"
)

type stubUserStore struct{}

func (s *stubUserStore) Create(ctx context.Context, user *models.User) error { return nil }

func (s *stubUserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return nil, pgx.ErrNoRows
}

func (s *stubUserStore) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return nil, pgx.ErrNoRows
}

func (s *stubUserStore) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return nil, pgx.ErrNoRows
}

func (s *stubUserStore) UpdateLastLogin(ctx context.Context, userID uuid.UUID) error { return nil }

func TestAuthHandler_Register_ValidationErrors(t *testing.T) {
	svc := services.NewAuthService(&stubUserStore{}, nil, nil)
	h := NewAuthHandler(svc)

	body := `{"email":"not-an-email","username":"","password":"short","password_confirm":"other"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	h.Register(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rr.Code)
	}

	var resp models.ErrorResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	if resp.Error.Code != "VALIDATION_ERROR" {
		t.Errorf("expected VALIDATION_ERROR, got %q", resp.Error.Code)
	}
	for _, field := range []string{"email", "username", "password"} {
		if resp.Error.Fields[field] == "" {
			t.Errorf("expected a field error for %q, got %v", field, resp.Error.Fields)
		}
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	svc := services.NewAuthService(&stubUserStore{}, nil, nil)
	h := NewAuthHandler(svc)

	body := `{"email":"nobody@example.com","password":"Pass1234"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	h.Login(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, rr.Code)
	}

	var resp models.ErrorResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	if resp.Error.Code != "UNAUTHORIZED" {
		t.Errorf("expected UNAUTHORIZED, got %q", resp.Error.Code)
	}
}

func TestAuthHandler_Register_BadBody(t *testing.T) {
	svc := services.NewAuthService(&stubUserStore{}, nil, nil)
	h := NewAuthHandler(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	h.Register(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rr.Code)
	}
}
