package service

import (
	"context"

	"github.com/shestoi/paypal-checkout/internal/paypal"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=ProcessorClient --dir=. --output=./mocks --outpkg=mocks

// ProcessorClient определяет интерфейс клиента платёжного процессинга
// Использует доменные типы — service не зависит от деталей HTTP клиента
type ProcessorClient interface {
	// CreateOrder создаёт заказ из позиций корзины
	// Возвращает нормализованный результат процессинга
	CreateOrder(ctx context.Context, items []paypal.CartItem) (*paypal.Result, error)

	// CaptureOrder списывает средства по заказу
	CaptureOrder(ctx context.Context, orderID string) (*paypal.Result, error)

	// RefundCapture возвращает средства по capture с идемпотентным request token
	RefundCapture(ctx context.Context, captureID, requestID string) (*paypal.Result, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=EventPublisher --dir=. --output=./mocks --outpkg=mocks

// EventPublisher определяет интерфейс публикации событий жизненного цикла платежа
// Публикация best-effort: ошибка публикации не валит операцию
type EventPublisher interface {
	// PublishOrderCaptured публикует событие успешного capture заказа
	PublishOrderCaptured(ctx context.Context, event OrderCapturedEvent) error

	// PublishRefundRequested публикует событие отправленной заявки на refund
	PublishRefundRequested(ctx context.Context, event RefundRequestedEvent) error
}

// OrderCapturedEvent — событие успешного capture
type OrderCapturedEvent struct {
	OrderID    string
	StatusCode int
}

// RefundRequestedEvent — событие отправленной заявки на refund
type RefundRequestedEvent struct {
	CaptureID  string
	RequestID  string
	StatusCode int
}
