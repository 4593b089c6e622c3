package paypal

import "fmt"

// AuthError означает, что получить access token не удалось:
// сетевая ошибка, отказ процессинга или нечитаемый ответ token endpoint
type AuthError struct {
	Err error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("paypal: failed to obtain access token: %v", e.Err)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// MalformedResponseError означает, что процессинг вернул тело, которое
// не парсится как JSON. Сырой текст тела сохраняется для диагностики
type MalformedResponseError struct {
	StatusCode int
	Body       string
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("paypal: malformed response (status %d): %s", e.StatusCode, e.Body)
}
