package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	platformhealth "github.com/shestoi/paypal-checkout/platform/health/http"
)

// NewRouter создаёт и настраивает HTTP роутер checkout сервиса
// readiness - функция для проверки готовности сервиса (например, проверка БД).
// Если readiness возвращает false, health endpoint вернёт 503 Service Unavailable
func NewRouter(handler *Handler, readiness func() bool) chi.Router {
	router := chi.NewRouter()

	router.Route("/api/orders", func(r chi.Router) {
		r.Post("/", handler.PostOrders)
		r.Post("/{orderID}/capture", func(w http.ResponseWriter, r *http.Request) {
			orderID := chi.URLParam(r, "orderID")
			handler.PostOrdersCapture(w, r, orderID)
		})
		r.Post("/{orderID}/refund", func(w http.ResponseWriter, r *http.Request) {
			orderID := chi.URLParam(r, "orderID")
			handler.PostOrdersRefund(w, r, orderID)
		})
	})

	router.Get("/health", platformhealth.Handler(readiness))

	return router
}
