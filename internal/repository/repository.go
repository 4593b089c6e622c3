package repository

import (
	"context"
	"errors"
)

// RefundRequest представляет зарезервированную заявку на refund
// CaptureID — внешний идентификатор capture в PayPal, RequestID — выданный
// под него идемпотентный токен (PayPal-Request-Id)
type RefundRequest struct {
	CaptureID string
	RequestID string
	CreatedAt int64 // Unix timestamp для простоты
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=RefundRepository --dir=. --output=./mocks --outpkg=mocks

// RefundRepository определяет интерфейс реестра идемпотентности refund
// Service слой зависит от этого интерфейса, а не от конкретной реализации
type RefundRepository interface {
	// Reserve атомарно резервирует refund для captureID: проверка наличия
	// и вставка — один неделимый шаг относительно конкурентных вызовов.
	// На успех генерирует свежий request token и возвращает его.
	// Возвращает ErrAlreadyRefunded, если captureID уже зарезервирован —
	// не более одного request token на capture за время жизни реестра
	Reserve(ctx context.Context, captureID string) (string, error)

	// GetByCaptureID получает ранее зарезервированную заявку
	// Возвращает ErrNotFound, если заявки нет
	GetByCaptureID(ctx context.Context, captureID string) (RefundRequest, error)
}

// ErrAlreadyRefunded возвращается при повторной попытке refund для того же capture
var ErrAlreadyRefunded = errors.New("refund already requested for this capture")

// ErrNotFound возвращается, когда заявка на refund не найдена в реестре
var ErrNotFound = errors.New("refund request not found")
