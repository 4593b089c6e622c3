package paypal

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

// newProcessorStub поднимает тестовый сервер, отвечающий и за token endpoint,
// и за переданный обработчик операций
func newProcessorStub(t *testing.T, ops http.HandlerFunc) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/oauth2/token", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"test-token","token_type":"Bearer","expires_in":32400}`))
	})
	mux.HandleFunc("/", ops)
	return httptest.NewServer(mux)
}

func TestCreateOrder(t *testing.T) {
	var gotBody []byte
	server := newProcessorStub(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v2/checkout/orders", r.URL.Path)
		require.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var err error
		gotBody, err = io.ReadAll(r.Body)
		require.NoError(t, err)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"ORDER-1","status":"CREATED"}`))
	})
	defer server.Close()

	client := newTestClient(server.URL)

	result, err := client.CreateOrder(context.Background(), []CartItem{
		{ProductID: "1", Price: 10000, Quantity: 1},
	})
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, result.StatusCode)

	// Статус и тело процессинга проходят насквозь
	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(result.Payload, &payload))
	require.Equal(t, "ORDER-1", payload["id"])

	// Цена в минорных единицах переводится в десятичную строку: 10000 -> "100.00"
	var order struct {
		Intent        string `json:"intent"`
		PurchaseUnits []struct {
			Amount struct {
				CurrencyCode string `json:"currency_code"`
				Value        string `json:"value"`
			} `json:"amount"`
		} `json:"purchase_units"`
	}
	require.NoError(t, json.Unmarshal(gotBody, &order))
	require.Equal(t, "CAPTURE", order.Intent)
	require.Len(t, order.PurchaseUnits, 1)
	require.Equal(t, "EUR", order.PurchaseUnits[0].Amount.CurrencyCode)
	require.Equal(t, "100.00", order.PurchaseUnits[0].Amount.Value)
}

func TestCreateOrder_OnePurchaseUnitPerItem(t *testing.T) {
	server := newProcessorStub(t, func(w http.ResponseWriter, r *http.Request) {
		var order struct {
			PurchaseUnits []json.RawMessage `json:"purchase_units"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&order))
		require.Len(t, order.PurchaseUnits, 2)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"ORDER-2"}`))
	})
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.CreateOrder(context.Background(), []CartItem{
		{ProductID: "1", Price: 199, Quantity: 1},
		{ProductID: "2", Price: 2050, Quantity: 3},
	})
	require.NoError(t, err)
}

func TestCaptureOrder(t *testing.T) {
	server := newProcessorStub(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v2/checkout/orders/ORDER-1/capture", r.URL.Path)
		require.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"ORDER-1","status":"COMPLETED"}`))
	})
	defer server.Close()

	client := newTestClient(server.URL)

	result, err := client.CaptureOrder(context.Background(), "ORDER-1")
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, result.StatusCode)
}

func TestCaptureOrder_DeclinePassedThrough(t *testing.T) {
	// Decline процессинга - не ошибка клиента: статус и details уходят витрине как есть
	server := newProcessorStub(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"details":[{"issue":"INSTRUMENT_DECLINED"}]}`))
	})
	defer server.Close()

	client := newTestClient(server.URL)

	result, err := client.CaptureOrder(context.Background(), "ORDER-1")
	require.NoError(t, err)
	require.Equal(t, http.StatusUnprocessableEntity, result.StatusCode)
	require.Contains(t, string(result.Payload), "INSTRUMENT_DECLINED")
}

func TestRefundCapture(t *testing.T) {
	server := newProcessorStub(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v2/payments/captures/CAP1/refund", r.URL.Path)
		require.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		// Идемпотентный токен и auth assertion уходят в заголовках
		require.Equal(t, "req-123", r.Header.Get("PayPal-Request-Id"))
		require.Equal(t, AuthAssertion("client-id", "seller-id"), r.Header.Get("PayPal-Auth-Assertion"))
		require.Equal(t, "return=representation", r.Header.Get("Prefer"))

		// Тело - пустой JSON объект: возврат полной суммы
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.JSONEq(t, `{}`, string(body))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"REFUND-1","status":"COMPLETED"}`))
	})
	defer server.Close()

	client := newTestClient(server.URL)

	result, err := client.RefundCapture(context.Background(), "CAP1", "req-123")
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, result.StatusCode)
}

func TestHandleResponse_MalformedBody(t *testing.T) {
	// Не-JSON тело от процессинга валит операцию целиком,
	// сырой текст сохраняется в ошибке
	server := newProcessorStub(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>Bad Gateway</html>"))
	})
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.CaptureOrder(context.Background(), "ORDER-1")
	require.Error(t, err)

	var malformed *MalformedResponseError
	require.ErrorAs(t, err, &malformed)
	require.Equal(t, http.StatusBadGateway, malformed.StatusCode)
	require.Equal(t, "<html>Bad Gateway</html>", malformed.Body)
}

func TestMinorToDecimal(t *testing.T) {
	tests := []struct {
		minor    int64
		expected string
	}{
		{10000, "100.00"},
		{199, "1.99"},
		{5, "0.05"},
		{100, "1.00"},
		{2050, "20.50"},
		{1, "0.01"},
	}

	for _, tt := range tests {
		require.Equal(t, tt.expected, minorToDecimal(tt.minor))
	}
}
