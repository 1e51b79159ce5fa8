package service

import "context"

// TokenService fetches chat-service tokens from the backend token endpoint.
type TokenService interface {
	// FetchToken requests a token for the chat user userID. idToken is the
	// identity-provider credential forwarded to the backend; it may be empty.
	FetchToken(ctx context.Context, userID, idToken string) (string, error)
}
