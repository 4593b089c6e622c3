package noop

import (
	"context"

	"github.com/shestoi/paypal-checkout/internal/service"
)

// Publisher — заглушка EventPublisher для запуска без Kafka
// Используется, когда брокеры не сконфигурированы
type Publisher struct{}

// NewPublisher создаёт новый noop publisher
func NewPublisher() *Publisher {
	return &Publisher{}
}

// PublishOrderCaptured ничего не делает
func (p *Publisher) PublishOrderCaptured(ctx context.Context, event service.OrderCapturedEvent) error {
	return nil
}

// PublishRefundRequested ничего не делает
func (p *Publisher) PublishRefundRequested(ctx context.Context, event service.RefundRequestedEvent) error {
	return nil
}
