package token

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"chatdesk/config"
	deliverycontext "chatdesk/internal/delivery/context"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newClient(url string) *httpTokenClient {
	return NewHTTPTokenClient(&config.TokenEndpointConfig{URL: url}, newTestLogger()).(*httpTokenClient)
}

func TestFetchToken_Success(t *testing.T) {
	var got tokenRequest
	var auth, requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		auth = r.Header.Get("Authorization")
		requestID = r.Header.Get(deliverycontext.HeaderXRequestID)
		_ = json.NewDecoder(r.Body).Decode(&got)
		_ = json.NewEncoder(w).Encode(map[string]string{"token": "abc123"})
	}))
	defer server.Close()

	ctx := deliverycontext.WithRequestID(context.Background(), "run-1")
	token, err := newClient(server.URL).FetchToken(ctx, "moderator-user", "id-token")

	require.NoError(t, err)
	assert.Equal(t, "abc123", token)
	assert.Equal(t, "moderator-user", got.UserID)
	assert.Equal(t, "Bearer id-token", auth)
	assert.Equal(t, "run-1", requestID)
}

func TestFetchToken_NoIDTokenOmitsAuthorization(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(map[string]string{"token": "abc123"})
	}))
	defer server.Close()

	_, err := newClient(server.URL).FetchToken(context.Background(), "gaming-user", "")

	require.NoError(t, err)
}

func TestFetchToken_ServerError(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr string
	}{
		{name: "error text", status: http.StatusInternalServerError, body: `{"error":"db down"}`, wantErr: "db down"},
		{name: "no error text", status: http.StatusInternalServerError, body: `{}`, wantErr: "Failed to fetch token"},
		{name: "not json", status: http.StatusBadGateway, body: `<html>bad gateway</html>`, wantErr: "Failed to fetch token"},
		{name: "empty token", status: http.StatusOK, body: `{"token":""}`, wantErr: "Failed to fetch token"},
		{name: "malformed ok body", status: http.StatusOK, body: `not json`, wantErr: "decode token response"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			_, err := newClient(server.URL).FetchToken(context.Background(), "moderator-user", "")

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestFetchToken_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := newClient(url).FetchToken(context.Background(), "moderator-user", "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "token endpoint request failed")
}

func TestFetchToken_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := newClient(server.URL).FetchToken(ctx, "moderator-user", "")

	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestCheckSubject(t *testing.T) {
	signed := func(userID string) string {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"user_id": userID})
		s, err := token.SignedString([]byte("secret"))
		require.NoError(t, err)

		return s
	}

	require.NoError(t, checkSubject("abc123", "moderator-user"))
	require.NoError(t, checkSubject(signed("moderator-user"), "moderator-user"))

	err := checkSubject(signed("gaming-user"), "moderator-user")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gaming-user")
}
