package identity

import (
	"context"

	"github.com/pkg/errors"
	"google.golang.org/api/identitytoolkit/v3"
	"google.golang.org/api/option"
)

// signInAPI is the subset of the Identity Toolkit REST API used for sign-in.
type signInAPI interface {
	SignUpAnonymous(ctx context.Context) (idToken string, err error)
	SignInWithCustomToken(ctx context.Context, customToken string) (idToken string, err error)
}

// identityToolkitClient implements signInAPI with the generated Identity Toolkit client.
type identityToolkitClient struct {
	svc *identitytoolkit.Service
}

func newIdentityToolkitClient(ctx context.Context, opts ...option.ClientOption) (*identityToolkitClient, error) {
	svc, err := identitytoolkit.NewService(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "create identity toolkit client")
	}

	return &identityToolkitClient{svc: svc}, nil
}

// SignUpAnonymous creates an anonymous account and returns its ID token.
func (c *identityToolkitClient) SignUpAnonymous(ctx context.Context) (string, error) {
	resp, err := c.svc.Relyingparty.
		SignupNewUser(&identitytoolkit.IdentitytoolkitRelyingpartySignupNewUserRequest{}).
		Context(ctx).
		Do()
	if err != nil {
		return "", errors.WithStack(err)
	}
	if resp.IdToken == "" {
		return "", errors.New("anonymous sign-up returned no ID token")
	}

	return resp.IdToken, nil
}

// SignInWithCustomToken exchanges a custom token for an ID token.
func (c *identityToolkitClient) SignInWithCustomToken(ctx context.Context, customToken string) (string, error) {
	resp, err := c.svc.Relyingparty.
		VerifyCustomToken(&identitytoolkit.IdentitytoolkitRelyingpartyVerifyCustomTokenRequest{
			Token:             customToken,
			ReturnSecureToken: true,
		}).
		Context(ctx).
		Do()
	if err != nil {
		return "", errors.WithStack(err)
	}
	if resp.IdToken == "" {
		return "", errors.New("custom token sign-in returned no ID token")
	}

	return resp.IdToken, nil
}
