package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"gemchat-backend/internal/models"
)

type ChatRepo struct {
	pool *pgxpool.Pool
}

func NewChatRepo(pool *pgxpool.Pool) *ChatRepo {
	return &ChatRepo{pool: pool}
}

// Create inserts a completed exchange. Message and response are always written
// together; there is no partially-written row.
func (r *ChatRepo) Create(ctx context.Context, exchange *models.ChatExchange) error {
	query := `
		INSERT INTO chat_exchanges (id, user_id, message, response)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at`

	exchange.ID = uuid.New()

	return r.pool.QueryRow(ctx, query,
		exchange.ID, exchange.UserID, exchange.Message, exchange.Response,
	).Scan(&exchange.CreatedAt)
}

// ListByUser returns all of a user's exchanges, newest first.
func (r *ChatRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.ChatExchange, error) {
	query := `SELECT id, user_id, message, response, created_at
		FROM chat_exchanges
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	exchanges := make([]*models.ChatExchange, 0)
	for rows.Next() {
		exchange := &models.ChatExchange{}
		if err := rows.Scan(
			&exchange.ID, &exchange.UserID, &exchange.Message,
			&exchange.Response, &exchange.CreatedAt,
		); err != nil {
			return nil, err
		}
		exchanges = append(exchanges, exchange)
	}

	return exchanges, rows.Err()
}
