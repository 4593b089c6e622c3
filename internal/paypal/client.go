package paypal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client — адаптер к PayPal REST API
// Инкапсулирует получение access token, построение auth assertion
// и три операции жизненного цикла платежа: create / capture / refund.
// Не делает retry: каждая операция = ровно один исходящий запрос к процессингу
type Client struct {
	httpClient    *http.Client
	baseURL       string
	clientID      string
	clientSecret  string
	sellerPayerID string
	currency      string
}

// Config содержит параметры подключения к PayPal
type Config struct {
	// BaseURL адрес API (sandbox или live), без завершающего слеша
	BaseURL string
	// ClientID и ClientSecret — credentials приложения для client-credentials grant
	ClientID     string
	ClientSecret string
	// SellerPayerID — payer ID аккаунта продавца, от имени которого авторизуется refund
	SellerPayerID string
	// Currency — код валюты для purchase units (например "EUR")
	Currency string
	// Timeout — таймаут на каждый исходящий запрос к процессингу
	Timeout time.Duration
}

// NewClient создаёт новый клиент PayPal API
func NewClient(cfg Config) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:       cfg.BaseURL,
		clientID:      cfg.ClientID,
		clientSecret:  cfg.ClientSecret,
		sellerPayerID: cfg.SellerPayerID,
		currency:      cfg.Currency,
	}
}

// CartItem представляет позицию корзины, переданную витриной
// Price — цена в минорных единицах валюты (центы)
type CartItem struct {
	ProductID string
	Price     int64
	Quantity  int32
}

// Result — единый результат любой операции с процессингом:
// сырое JSON тело ответа плюс HTTP статус процессинга.
// Статус передаётся наружу без изменений — успех/отказ определяет
// вызывающая сторона по содержимому Payload (например по массиву details)
type Result struct {
	Payload    json.RawMessage
	StatusCode int
}

// amount — сумма purchase unit в формате PayPal
type amount struct {
	CurrencyCode string `json:"currency_code"`
	Value        string `json:"value"`
}

// purchaseUnit — группа товаров и сумма внутри заказа
type purchaseUnit struct {
	Amount amount `json:"amount"`
}

// orderRequest — тело запроса на создание заказа
type orderRequest struct {
	Intent        string         `json:"intent"`
	PurchaseUnits []purchaseUnit `json:"purchase_units"`
}

// CreateOrder создаёт заказ с intent CAPTURE: одна purchase unit на позицию корзины
// Цена каждой позиции переводится из минорных единиц в десятичную строку
func (c *Client) CreateOrder(ctx context.Context, items []CartItem) (*Result, error) {
	token, err := c.fetchAccessToken(ctx)
	if err != nil {
		return nil, err
	}

	// Формируем purchase units из корзины
	units := make([]purchaseUnit, 0, len(items))
	for _, item := range items {
		units = append(units, purchaseUnit{
			Amount: amount{
				CurrencyCode: c.currency,
				Value:        minorToDecimal(item.Price),
			},
		})
	}

	payload := orderRequest{
		Intent:        "CAPTURE",
		PurchaseUnits: units,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal order payload: %w", err)
	}

	return c.post(ctx, "/v2/checkout/orders", token, body, nil)
}

// CaptureOrder списывает средства по ранее созданному заказу
// Идемпотентность на нашей стороне не нужна: capture на стороне PayPal
// и так выполняется не более одного раза на заказ
func (c *Client) CaptureOrder(ctx context.Context, orderID string) (*Result, error) {
	token, err := c.fetchAccessToken(ctx)
	if err != nil {
		return nil, err
	}

	return c.post(ctx, "/v2/checkout/orders/"+orderID+"/capture", token, nil, nil)
}

// RefundCapture возвращает средства по capture
// requestID — заранее зарезервированный идемпотентный токен (PayPal-Request-Id):
// повторная отправка с тем же токеном мапится на ту же операцию на стороне PayPal.
// Auth assertion собирается заново на каждый вызов из clientID и sellerPayerID
func (c *Client) RefundCapture(ctx context.Context, captureID, requestID string) (*Result, error) {
	assertion := AuthAssertion(c.clientID, c.sellerPayerID)

	token, err := c.fetchAccessToken(ctx)
	if err != nil {
		return nil, err
	}

	// Пустое JSON тело: возвращаем полную сумму capture.
	// Prefer просит PayPal вернуть полное представление refund, а не минимальное
	headers := map[string]string{
		"PayPal-Auth-Assertion": assertion,
		"PayPal-Request-Id":     requestID,
		"Prefer":                "return=representation",
	}

	return c.post(ctx, "/v2/payments/captures/"+captureID+"/refund", token, []byte("{}"), headers)
}

// post выполняет POST запрос к процессингу с bearer авторизацией
// и нормализует ответ через handleResponse
func (c *Client) post(ctx context.Context, path, token string, body []byte, headers map[string]string) (*Result, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build processor request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("processor request failed: %w", err)
	}
	defer resp.Body.Close()

	return handleResponse(resp)
}

// handleResponse нормализует HTTP ответ процессинга в Result
// Тело парсится как JSON; статус (2xx или код ошибки) передаётся как есть.
// Если тело не JSON — операция целиком завершается MalformedResponseError
// с сырым текстом тела
func handleResponse(resp *http.Response) (*Result, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read processor response: %w", err)
	}

	if !json.Valid(body) {
		return nil, &MalformedResponseError{
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}

	return &Result{
		Payload:    json.RawMessage(body),
		StatusCode: resp.StatusCode,
	}, nil
}

// minorToDecimal переводит сумму из минорных единиц в десятичную строку
// с двумя знаками после точки: 10000 -> "100.00"
func minorToDecimal(minor int64) string {
	return fmt.Sprintf("%d.%02d", minor/100, minor%100)
}
