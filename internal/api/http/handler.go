package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/shestoi/paypal-checkout/internal/paypal"
	"github.com/shestoi/paypal-checkout/internal/repository"
	"github.com/shestoi/paypal-checkout/internal/service"
)

// Handler содержит HTTP-обработчики checkout API
// Зависит от service слоя, но не знает о деталях реализации (PayPal, БД и т.д.)
type Handler struct {
	checkoutService *service.CheckoutService
}

// NewHandler создаёт новый HTTP handler
func NewHandler(checkoutService *service.CheckoutService) *Handler {
	return &Handler{
		checkoutService: checkoutService,
	}
}

// CartItem представляет позицию корзины в HTTP запросе
// price — в минорных единицах валюты (центы)
type CartItem struct {
	ID       *string `json:"id"`
	Price    *int64  `json:"price"`
	Quantity *int    `json:"quantity"`
}

// CreateOrderRequest представляет HTTP запрос на создание заказа
type CreateOrderRequest struct {
	Cart *[]CartItem `json:"cart"`
}

// PostOrders обрабатывает POST /api/orders - создание заказа в процессинге
// Тело и статус ответа процессинга передаются витрине без изменений:
// по ним витрина сама решает, успех это, decline или терминальная ошибка
func (h *Handler) PostOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	log.Println("Received POST /api/orders request")

	// Декодируем JSON тело запроса
	var reqBody CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&reqBody); err != nil {
		log.Printf("JSON decode error: %v", err)
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid JSON: %v", err))
		return
	}

	// Валидация входных данных
	if reqBody.Cart == nil || len(*reqBody.Cart) == 0 {
		log.Printf("Validation failed: cart is required")
		writeError(w, http.StatusBadRequest, "Invalid payload: cart must contain at least one item")
		return
	}

	// Валидация всех позиций: id не пустой, price и quantity > 0
	for i, item := range *reqBody.Cart {
		if item.ID == nil || *item.ID == "" {
			log.Printf("Validation failed: id is required in cart[%d]", i)
			writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid payload: id is required in cart[%d]", i))
			return
		}
		if item.Price == nil || *item.Price <= 0 {
			log.Printf("Validation failed: price must be > 0 in cart[%d]", i)
			writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid payload: price must be > 0 in cart[%d]", i))
			return
		}
		if item.Quantity == nil || *item.Quantity <= 0 {
			log.Printf("Validation failed: quantity must be > 0 in cart[%d]", i)
			writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid payload: quantity must be > 0 in cart[%d]", i))
			return
		}
	}

	// Преобразуем HTTP DTO в доменные типы
	items := make([]paypal.CartItem, 0, len(*reqBody.Cart))
	for _, item := range *reqBody.Cart {
		items = append(items, paypal.CartItem{
			ProductID: *item.ID,
			Price:     *item.Price,
			Quantity:  int32(*item.Quantity),
		})
	}

	result, err := h.checkoutService.CreateOrder(ctx, service.CreateOrderInput{
		Items: items,
	})
	if err != nil {
		log.Printf("Order creation error: %v", err)
		h.writeOperationError(w, err, "Failed to create order.")
		return
	}

	writeResult(w, result)
	log.Printf("Order created, processor status passed through: %d", result.StatusCode)
}

// PostOrdersCapture обрабатывает POST /api/orders/{orderID}/capture
func (h *Handler) PostOrdersCapture(w http.ResponseWriter, r *http.Request, orderID string) {
	ctx := r.Context()
	log.Printf("Received POST /api/orders/%s/capture request", orderID)

	result, err := h.checkoutService.CaptureOrder(ctx, orderID)
	if err != nil {
		log.Printf("Order capture error: %v", err)
		h.writeOperationError(w, err, "Failed to capture order.")
		return
	}

	writeResult(w, result)
	log.Printf("Order capture attempted, processor status passed through: %d", result.StatusCode)
}

// PostOrdersRefund обрабатывает POST /api/orders/{orderID}/refund
// Повторный refund для того же capture возвращает 409 ещё до обращения к процессингу
func (h *Handler) PostOrdersRefund(w http.ResponseWriter, r *http.Request, orderID string) {
	ctx := r.Context()
	log.Printf("Received POST /api/orders/%s/refund request", orderID)

	result, err := h.checkoutService.RefundOrder(ctx, orderID)
	if err != nil {
		log.Printf("Order refund error: %v", err)
		h.writeOperationError(w, err, "Failed to refund order.")
		return
	}

	writeResult(w, result)
	log.Printf("Order refund attempted, processor status passed through: %d", result.StatusCode)
}

// writeOperationError выбирает HTTP статус по типу ошибки операции
// вместо общего 500 на всё
func (h *Handler) writeOperationError(w http.ResponseWriter, err error, message string) {
	var authErr *paypal.AuthError
	var malformedErr *paypal.MalformedResponseError

	switch {
	case errors.Is(err, repository.ErrAlreadyRefunded):
		// Дубликат refund - отдельный 4xx, а не общий 500
		writeError(w, http.StatusConflict, "Refund already requested for this transaction.")
	case errors.Is(err, service.ErrEmptyCart):
		writeError(w, http.StatusBadRequest, "Invalid payload: cart must contain at least one item")
	case errors.As(err, &authErr), errors.As(err, &malformedErr):
		// Проблема на границе с процессингом: авторизация или нечитаемый ответ
		writeError(w, http.StatusBadGateway, message)
	default:
		writeError(w, http.StatusInternalServerError, message)
	}
}

// writeResult отдаёт витрине нормализованный результат процессинга:
// статус и JSON тело без изменений
func writeResult(w http.ResponseWriter, result *paypal.Result) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(result.StatusCode)

	if _, err := w.Write(result.Payload); err != nil {
		log.Printf("Failed to write response: %v", err)
	}
}

// writeError отдаёт витрине JSON с описанием ошибки
func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(map[string]string{"error": message}); err != nil {
		log.Printf("Failed to encode error response: %v", err)
	}
}
