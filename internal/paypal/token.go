package paypal

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// tokenResponse — ответ token endpoint
// Из всего ответа нам нужен только access_token: expires_in не отслеживаем,
// токен запрашивается заново перед каждой операцией
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// fetchAccessToken обменивает client credentials на короткоживущий bearer токен
// Client ID и secret передаются через HTTP Basic auth, grant — client_credentials.
// Любая ошибка (сеть, не-JSON ответ, отказ процессинга) оборачивается в AuthError
func (c *Client) fetchAccessToken(ctx context.Context) (string, error) {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/oauth2/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", &AuthError{Err: err}
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(c.clientID, c.clientSecret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &AuthError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &AuthError{Err: fmt.Errorf("failed to read token response: %w", err)}
	}

	var tr tokenResponse
	if err := json.Unmarshal(body, &tr); err != nil {
		return "", &AuthError{Err: fmt.Errorf("invalid token response: %w", err)}
	}

	// Процессинг мог вернуть JSON с ошибкой вместо токена
	if resp.StatusCode != http.StatusOK || tr.AccessToken == "" {
		return "", &AuthError{Err: fmt.Errorf("token endpoint returned status %d", resp.StatusCode)}
	}

	return tr.AccessToken, nil
}
