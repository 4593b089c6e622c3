package paypal

import (
	"encoding/base64"
	"encoding/json"
)

// assertionHeader — заголовок assertion токена
// alg none: для server-to-server refund документация PayPal явно разрешает
// неподписанный assertion, подпись добавлять не нужно
type assertionHeader struct {
	Alg string `json:"alg"`
}

// assertionPayload — полезная нагрузка assertion токена
// Утверждает, от имени какого продавца авторизуется операция
type assertionPayload struct {
	Iss     string `json:"iss"`
	PayerID string `json:"payer_id"`
}

// AuthAssertion строит неподписанный auth assertion для refund:
// base64url(header) + "." + base64url(payload) + "." — третий сегмент
// (подпись) остаётся пустым. Чистая функция, собирается заново на каждый refund
func AuthAssertion(clientID, payerID string) string {
	header, _ := json.Marshal(assertionHeader{Alg: "none"})
	payload, _ := json.Marshal(assertionPayload{
		Iss:     clientID,
		PayerID: payerID,
	})

	encodedHeader := base64.RawURLEncoding.EncodeToString(header)
	encodedPayload := base64.RawURLEncoding.EncodeToString(payload)

	return encodedHeader + "." + encodedPayload + "."
}
