// Package token fetches chat-service tokens from the backend token endpoint.
package token

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"chatdesk/config"
	deliverycontext "chatdesk/internal/delivery/context"
	"chatdesk/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultTimeout      = 10 * time.Second
	maxResponseBodySize = 1 << 20

	// fallbackError is reported when the endpoint gives no error text of its own.
	fallbackError = "Failed to fetch token"
)

type tokenRequest struct {
	UserID string `json:"userId"`
}

type tokenResponse struct {
	Token string `json:"token"`
	Error string `json:"error"`
}

// httpTokenClient implements service.TokenService over HTTP.
type httpTokenClient struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// ClientParams holds dependencies for the token client, injected by Fx
type ClientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewTokenService creates a TokenService from configuration.
func NewTokenService(params ClientParams) service.TokenService {
	return NewHTTPTokenClient(params.Config.TokenEndpoint, params.Logger)
}

// NewHTTPTokenClient creates a token client for cfg.URL.
func NewHTTPTokenClient(cfg *config.TokenEndpointConfig, logger *slog.Logger) service.TokenService {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &httpTokenClient{
		endpoint:   cfg.URL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// FetchToken posts {userId} to the endpoint and returns the token it mints.
// idToken, when set, is sent as a bearer credential.
func (c *httpTokenClient) FetchToken(ctx context.Context, userID, idToken string) (string, error) {
	body, err := json.Marshal(tokenRequest{UserID: userID})
	if err != nil {
		return "", errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}
	if idToken != "" {
		req.Header.Set("Authorization", "Bearer "+idToken)
	}

	c.logger.Debug("Requesting chat token",
		slog.String("endpoint", c.endpoint),
		slog.String("user_id", userID),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "token endpoint request failed")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))
	if err != nil {
		return "", errors.Wrap(err, "read token response")
	}

	var payload tokenResponse
	decodeErr := json.Unmarshal(raw, &payload)

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("Token endpoint returned an error",
			slog.Int("status", resp.StatusCode),
			slog.String("error", payload.Error),
		)
		if decodeErr == nil && payload.Error != "" {
			return "", errors.New(payload.Error)
		}

		return "", errors.New(fallbackError)
	}

	if decodeErr != nil {
		return "", errors.Wrap(decodeErr, "decode token response")
	}
	if payload.Token == "" {
		return "", errors.New(fallbackError)
	}

	if err := checkSubject(payload.Token, userID); err != nil {
		return "", err
	}

	return payload.Token, nil
}

// checkSubject rejects a JWT minted for a different user. Opaque tokens pass;
// the chat service is the one that verifies signatures.
func checkSubject(token, userID string) error {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil
	}

	subject, ok := claims["user_id"].(string)
	if !ok || subject == userID {
		return nil
	}

	return errors.Errorf("token was issued for user %q, expected %q", subject, userID)
}

// Module provides the token client FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewTokenService),
)
