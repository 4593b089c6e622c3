package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/shestoi/paypal-checkout/internal/service"
)

// Publisher реализует service.EventPublisher используя Kafka
// Все события жизненного цикла платежа идут в один топик
type Publisher struct {
	logger *zap.Logger
	writer *kafka.Writer
	topic  string
}

// NewPublisher создаёт новый Kafka publisher для событий checkout
func NewPublisher(logger *zap.Logger, brokers []string, topic string) *Publisher {
	writer := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}

	return &Publisher{
		logger: logger,
		writer: writer,
		topic:  topic,
	}
}

// Close закрывает Kafka writer
func (p *Publisher) Close() error {
	return p.writer.Close()
}

// PublishOrderCaptured публикует событие успешного capture заказа в Kafka
func (p *Publisher) PublishOrderCaptured(ctx context.Context, event service.OrderCapturedEvent) error {
	payload := map[string]interface{}{
		"event_id":      uuid.New().String(), //уникальный ID события
		"event_type":    "checkout.order.captured",
		"event_version": 1,
		"occurred_at":   time.Now().UTC().Format(time.RFC3339),
		"order_id":      event.OrderID,
		"status_code":   event.StatusCode, //статус процессинга, переданный витрине
	}

	// Ключ = ID заказа: события одного заказа попадают в одну партицию
	return p.publish(ctx, event.OrderID, payload)
}

// PublishRefundRequested публикует событие отправленной заявки на refund в Kafka
func (p *Publisher) PublishRefundRequested(ctx context.Context, event service.RefundRequestedEvent) error {
	payload := map[string]interface{}{
		"event_id":      uuid.New().String(),
		"event_type":    "checkout.refund.requested",
		"event_version": 1,
		"occurred_at":   time.Now().UTC().Format(time.RFC3339),
		"capture_id":    event.CaptureID,
		"request_id":    event.RequestID, //идемпотентный токен, ушедший в процессинг
		"status_code":   event.StatusCode,
	}

	return p.publish(ctx, event.CaptureID, payload)
}

// publish сериализует payload и отправляет сообщение в Kafka
func (p *Publisher) publish(ctx context.Context, key string, payload map[string]interface{}) error {
	valueBytes, err := json.Marshal(payload)
	if err != nil {
		p.logger.Error("failed to marshal checkout event",
			zap.Error(err),
			zap.String("key", key),
		)
		return err
	}

	message := kafka.Message{
		Key:   []byte(key),
		Value: valueBytes,
	}

	if err := p.writer.WriteMessages(ctx, message); err != nil {
		p.logger.Error("failed to publish checkout event",
			zap.Error(err),
			zap.String("topic", p.topic),
			zap.String("key", key),
		)
		return err
	}

	p.logger.Info("checkout event published",
		zap.String("topic", p.topic),
		zap.String("key", key),
		zap.Any("event_type", payload["event_type"]),
	)

	return nil
}
