package paypal

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAuthAssertion(t *testing.T) {
	assertion := AuthAssertion("CID123", "PAYER456")

	// Формат: <base64url>.<base64url>. - третий сегмент (подпись) пустой
	parts := strings.Split(assertion, ".")
	require.Len(t, parts, 3)
	require.NotEmpty(t, parts[0])
	require.NotEmpty(t, parts[1])
	require.Empty(t, parts[2], "signature segment must be empty")

	// Первый сегмент декодируется в {"alg":"none"}
	headerBytes, err := base64.RawURLEncoding.DecodeString(parts[0])
	require.NoError(t, err)

	var header map[string]string
	require.NoError(t, json.Unmarshal(headerBytes, &header))
	require.Equal(t, map[string]string{"alg": "none"}, header)

	// Второй сегмент декодируется в {"iss":...,"payer_id":...}
	payloadBytes, err := base64.RawURLEncoding.DecodeString(parts[1])
	require.NoError(t, err)

	var payload map[string]string
	require.NoError(t, json.Unmarshal(payloadBytes, &payload))
	require.Equal(t, map[string]string{
		"iss":      "CID123",
		"payer_id": "PAYER456",
	}, payload)
}

func TestAuthAssertion_NoPadding(t *testing.T) {
	// base64url без padding: '=' в токене недопустим
	assertion := AuthAssertion("a", "b")
	require.NotContains(t, assertion, "=")
	require.NotContains(t, assertion, "+")
	require.NotContains(t, assertion, "/")
}

func TestAuthAssertion_DifferentSellers(t *testing.T) {
	// Assertion собирается заново под каждого продавца и не переиспользуется
	first := AuthAssertion("CID123", "PAYER456")
	second := AuthAssertion("CID123", "OTHER789")
	require.NotEqual(t, first, second)
}
