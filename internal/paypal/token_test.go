package paypal

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// newTestClient создаёт клиент, направленный на тестовый сервер
func newTestClient(baseURL string) *Client {
	return NewClient(Config{
		BaseURL:       baseURL,
		ClientID:      "client-id",
		ClientSecret:  "client-secret",
		SellerPayerID: "seller-id",
		Currency:      "EUR",
		Timeout:       5 * time.Second,
	})
}

func TestFetchAccessToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/oauth2/token", r.URL.Path)

		// Credentials уходят через Basic auth
		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		require.Equal(t, "client-id", user)
		require.Equal(t, "client-secret", pass)

		// Grant - client_credentials в form body
		require.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.Equal(t, "grant_type=client_credentials", string(body))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"A21AAtest","token_type":"Bearer","expires_in":32400}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	token, err := client.fetchAccessToken(context.Background())
	require.NoError(t, err)
	require.Equal(t, "A21AAtest", token)
}

func TestFetchAccessToken_Rejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"invalid_client"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.fetchAccessToken(context.Background())
	require.Error(t, err)

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
}

func TestFetchAccessToken_EmptyToken(t *testing.T) {
	// Валидный JSON, но токена нет - тоже AuthError
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"scope":"something"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.fetchAccessToken(context.Background())
	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
}

func TestFetchAccessToken_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // закрываем сразу: любой запрос упадёт с сетевой ошибкой

	client := newTestClient(server.URL)

	_, err := client.fetchAccessToken(context.Background())
	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
}
