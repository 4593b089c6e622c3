package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/shestoi/paypal-checkout/internal/paypal"
	"github.com/shestoi/paypal-checkout/internal/repository"
)

// ErrEmptyCart возвращается при попытке создать заказ из пустой корзины
var ErrEmptyCart = errors.New("cart must contain at least one item")

// CheckoutService содержит бизнес-логику жизненного цикла платежа:
// create -> capture -> refund. Координирует клиент процессинга,
// реестр идемпотентности refund и публикацию событий
// Зависит от интерфейсов, а не от конкретных реализаций
type CheckoutService struct {
	processor ProcessorClient
	refunds   repository.RefundRepository
	events    EventPublisher
}

// NewCheckoutService создаёт новый экземпляр CheckoutService
// Принимает интерфейсы как зависимости - это позволяет легко подменять их в тестах
func NewCheckoutService(
	processor ProcessorClient,
	refunds repository.RefundRepository,
	events EventPublisher,
) *CheckoutService {
	return &CheckoutService{
		processor: processor,
		refunds:   refunds,
		events:    events,
	}
}

// CreateOrderInput содержит входные данные для создания заказа
type CreateOrderInput struct {
	Items []paypal.CartItem
}

// CreateOrder создаёт заказ в процессинге из корзины витрины
// Результат процессинга (тело + статус) возвращается как есть:
// решение об успехе принимает витрина по содержимому тела
func (s *CheckoutService) CreateOrder(ctx context.Context, input CreateOrderInput) (*paypal.Result, error) {
	log.Printf("Creating order with %d cart items", len(input.Items))

	// Валидация: корзина не должна быть пустой
	if len(input.Items) == 0 {
		return nil, ErrEmptyCart
	}

	result, err := s.processor.CreateOrder(ctx, input.Items)
	if err != nil {
		log.Printf("Processor CreateOrder error: %v", err)
		return nil, fmt.Errorf("processor error: %w", err)
	}

	log.Printf("Order created, processor status: %d", result.StatusCode)
	return result, nil
}

// CaptureOrder списывает средства по заказу
// Резервирование идемпотентности не нужно: capture на стороне процессинга
// выполняется не более одного раза на заказ. Сумма повторно не сверяется —
// списывается то, что процессинг зафиксировал при создании заказа
func (s *CheckoutService) CaptureOrder(ctx context.Context, orderID string) (*paypal.Result, error) {
	log.Printf("Capturing order: %s", orderID)

	result, err := s.processor.CaptureOrder(ctx, orderID)
	if err != nil {
		log.Printf("Processor CaptureOrder error: %v", err)
		return nil, fmt.Errorf("processor error: %w", err)
	}

	// Публикуем событие только при 2xx от процессинга
	// Ошибка публикации не валит операцию: деньги уже списаны
	if is2xx(result.StatusCode) {
		event := OrderCapturedEvent{
			OrderID:    orderID,
			StatusCode: result.StatusCode,
		}
		if err := s.events.PublishOrderCaptured(ctx, event); err != nil {
			log.Printf("Failed to publish order captured event: %v", err)
		}
	}

	log.Printf("Order captured, processor status: %d", result.StatusCode)
	return result, nil
}

// RefundOrder возвращает средства по capture
// Сначала резервируем идемпотентный request token: повторная попытка refund
// для того же capture отклоняется ещё ДО какого-либо сетевого вызова.
// Резервирование не снимается даже если сам refund не удался — реестр
// и есть ответ на вопрос "был ли уже запрошен refund"
func (s *CheckoutService) RefundOrder(ctx context.Context, captureID string) (*paypal.Result, error) {
	log.Printf("Refunding capture: %s", captureID)

	requestID, err := s.refunds.Reserve(ctx, captureID)
	if err != nil {
		if errors.Is(err, repository.ErrAlreadyRefunded) {
			// Логируем уже выданный токен для диагностики дублей
			if existing, getErr := s.refunds.GetByCaptureID(ctx, captureID); getErr == nil {
				log.Printf("Duplicate refund attempt for capture %s, request token %s already issued",
					captureID, existing.RequestID)
			}
			return nil, err
		}
		return nil, fmt.Errorf("failed to reserve refund request: %w", err)
	}

	log.Printf("Reserved request token %s for capture %s", requestID, captureID)

	result, err := s.processor.RefundCapture(ctx, captureID, requestID)
	if err != nil {
		log.Printf("Processor RefundCapture error: %v", err)
		return nil, fmt.Errorf("processor error: %w", err)
	}

	if is2xx(result.StatusCode) {
		event := RefundRequestedEvent{
			CaptureID:  captureID,
			RequestID:  requestID,
			StatusCode: result.StatusCode,
		}
		if err := s.events.PublishRefundRequested(ctx, event); err != nil {
			log.Printf("Failed to publish refund requested event: %v", err)
		}
	}

	log.Printf("Refund submitted, processor status: %d", result.StatusCode)
	return result, nil
}

// is2xx проверяет, что статус процессинга успешный
func is2xx(status int) bool {
	return status >= http.StatusOK && status < http.StatusMultipleChoices
}
