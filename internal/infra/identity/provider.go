// Package identity signs the desk in with Firebase Authentication and
// publishes auth-state changes to subscribers.
package identity

import (
	"context"
	"log/slog"

	"chatdesk/config"
	"chatdesk/internal/domain/entity"
	"chatdesk/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

const anonymousProvider = "anonymous"

// idTokenVerifier is satisfied by *auth.Client.
type idTokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

// firebaseProvider implements service.IdentityProvider.
type firebaseProvider struct {
	signIn   signInAPI
	verifier idTokenVerifier
	hub      *authHub
	logger   *slog.Logger
}

func newFirebaseProvider(signIn signInAPI, verifier idTokenVerifier, logger *slog.Logger) *firebaseProvider {
	return &firebaseProvider{
		signIn:   signIn,
		verifier: verifier,
		hub:      newAuthHub(),
		logger:   logger,
	}
}

// ProviderParams holds dependencies for the identity provider, injected by Fx
type ProviderParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewIdentityProvider creates the Firebase-backed IdentityProvider.
func NewIdentityProvider(params ProviderParams) (service.IdentityProvider, error) {
	cfg := params.Config.Firebase
	if cfg.ProjectID == "" {
		return nil, errors.New("firebase.projectId is required")
	}

	var credentials []option.ClientOption
	if cfg.CredentialsPath != "" {
		credentials = append(credentials, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	app, err := firebase.NewApp(params.Ctx, &firebase.Config{ProjectID: cfg.ProjectID}, credentials...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	authClient, err := app.Auth(params.Ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get auth client")
	}

	toolkitOpts := []option.ClientOption{}
	if cfg.APIKey != "" {
		toolkitOpts = append(toolkitOpts, option.WithAPIKey(cfg.APIKey))
	} else {
		toolkitOpts = append(toolkitOpts, credentials...)
	}
	if cfg.Endpoint != "" {
		toolkitOpts = append(toolkitOpts, option.WithEndpoint(cfg.Endpoint))
	}

	toolkit, err := newIdentityToolkitClient(params.Ctx, toolkitOpts...)
	if err != nil {
		return nil, err
	}

	provider := newFirebaseProvider(toolkit, authClient, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			provider.hub.close()

			return nil
		},
	})

	params.Logger.Info("Firebase identity provider initialized",
		slog.String("project_id", cfg.ProjectID),
		slog.Bool("emulator_endpoint", cfg.Endpoint != ""),
	)

	return provider, nil
}

// SignInWithCustomToken signs in with a pre-issued custom token.
func (p *firebaseProvider) SignInWithCustomToken(ctx context.Context, customToken string) (*entity.AuthSession, error) {
	idToken, err := p.signIn.SignInWithCustomToken(ctx, customToken)
	if err != nil {
		return nil, errors.Wrap(err, "custom token sign-in failed")
	}

	return p.establish(ctx, idToken)
}

// SignInAnonymously creates an anonymous account and signs in with it.
func (p *firebaseProvider) SignInAnonymously(ctx context.Context) (*entity.AuthSession, error) {
	idToken, err := p.signIn.SignUpAnonymous(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "anonymous sign-in failed")
	}

	return p.establish(ctx, idToken)
}

// OnAuthStateChanged registers listener for the current and future auth states.
func (p *firebaseProvider) OnAuthStateChanged(listener service.AuthStateListener) service.Subscription {
	return p.hub.subscribe(listener)
}

// SignOut clears the session and notifies subscribers with a nil state.
func (p *firebaseProvider) SignOut(ctx context.Context) error {
	if p.hub.currentSession() == nil {
		return nil
	}

	p.hub.publish(nil)
	p.logger.InfoContext(ctx, "Signed out of identity provider")

	return nil
}

// establish verifies idToken and publishes the resulting session.
func (p *firebaseProvider) establish(ctx context.Context, idToken string) (*entity.AuthSession, error) {
	token, err := p.verifier.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, errors.Wrap(err, "ID token verification failed")
	}

	session := &entity.AuthSession{
		UserID:          token.UID,
		IDToken:         idToken,
		IsAuthenticated: true,
		Anonymous:       token.Firebase.SignInProvider == anonymousProvider,
		Claims:          token.Claims,
	}

	p.hub.publish(session)

	return session, nil
}

// Module provides the identity provider FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewIdentityProvider),
)
