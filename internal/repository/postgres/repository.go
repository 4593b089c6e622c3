package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shestoi/paypal-checkout/internal/repository"
)

// Repository реализует RefundRepository используя PostgreSQL
// В отличие от in-memory варианта переживает перезапуск процесса:
// после рестарта повторный refund по уже обработанному capture
// по-прежнему отклоняется
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository создаёт новый PostgreSQL реестр refund заявок
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{
		pool: pool,
	}
}

// Reserve резервирует refund для captureID
// Атомарность даёт сама БД: INSERT ... ON CONFLICT DO NOTHING,
// повторная вставка не трогает существующую строку и возвращает 0 rows affected
func (r *Repository) Reserve(ctx context.Context, captureID string) (string, error) {
	requestID := uuid.NewString()

	tag, err := r.pool.Exec(ctx,
		`INSERT INTO refund_requests (capture_id, request_id)
		 VALUES ($1, $2)
		 ON CONFLICT (capture_id) DO NOTHING`,
		captureID, requestID)
	if err != nil {
		return "", err
	}

	if tag.RowsAffected() == 0 {
		return "", repository.ErrAlreadyRefunded
	}

	return requestID, nil
}

// GetByCaptureID получает заявку по captureID из PostgreSQL
func (r *Repository) GetByCaptureID(ctx context.Context, captureID string) (repository.RefundRequest, error) {
	var request repository.RefundRequest
	var createdAt time.Time

	err := r.pool.QueryRow(ctx,
		`SELECT capture_id, request_id, created_at
		 FROM refund_requests
		 WHERE capture_id = $1`,
		captureID).Scan(&request.CaptureID, &request.RequestID, &createdAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return repository.RefundRequest{}, repository.ErrNotFound
		}
		return repository.RefundRequest{}, err
	}

	request.CreatedAt = createdAt.Unix()

	return request, nil
}
