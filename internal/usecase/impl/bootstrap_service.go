package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"chatdesk/config"
	deliverycontext "chatdesk/internal/delivery/context"
	"chatdesk/internal/domain/entity"
	domainerrors "chatdesk/internal/domain/errors"
	"chatdesk/internal/domain/service"
	"chatdesk/internal/errors"
	"chatdesk/internal/usecase"
)

// Bootstrap step names, used for logs and metrics labels.
const (
	stepSignIn          = "sign_in"
	stepResolveIdentity = "resolve_identity"
	stepFetchToken      = "fetch_token"
	stepConnect         = "connect"
	stepWatchChannel    = "watch_channel"
)

// bootstrapService implements the BootstrapUsecase interface.
type bootstrapService struct {
	cfg      *config.Config
	logger   *slog.Logger
	identity service.IdentityProvider
	tokens   service.TokenService
	chat     service.ChatService
	session  usecase.SessionUsecase
	screen   *ScreenStore
	metrics  service.MetricsRecorder

	// runMu serializes auth-state handling so a duplicate event cannot
	// race a second connect.
	runMu sync.Mutex

	mu           sync.Mutex
	subscription service.Subscription
	released     bool
}

// NewBootstrapService is the constructor for bootstrapService.
func NewBootstrapService(
	cfg *config.Config,
	logger *slog.Logger,
	identity service.IdentityProvider,
	tokens service.TokenService,
	chat service.ChatService,
	session usecase.SessionUsecase,
	screen *ScreenStore,
	metrics service.MetricsRecorder,
) usecase.BootstrapUsecase {
	return &bootstrapService{
		cfg:      cfg,
		logger:   logger,
		identity: identity,
		tokens:   tokens,
		chat:     chat,
		session:  session,
		screen:   screen,
		metrics:  metrics,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *bootstrapService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Start signs in and subscribes to auth-state changes. The rest of the
// sequence runs from HandleAuthState.
func (srv *bootstrapService) Start(ctx context.Context) error {
	srv.log(ctx).Info("Starting chat bootstrap")

	var session *entity.AuthSession
	err := srv.runStep(ctx, stepSignIn, func(stepCtx context.Context) error {
		var signInErr error
		if token := srv.cfg.Firebase.InitialAuthToken; token != "" {
			session, signInErr = srv.identity.SignInWithCustomToken(stepCtx, token)
		} else {
			session, signInErr = srv.identity.SignInAnonymously(stepCtx)
		}

		return signInErr
	})
	if err != nil {
		return srv.fail(ctx, stepSignIn, domainerrors.NewStepError(domainerrors.ErrAuth, err))
	}

	srv.log(ctx).Info("Signed in to identity provider",
		slog.String("auth_user_id", session.UserID),
		slog.Bool("anonymous", session.Anonymous),
	)

	srv.mu.Lock()
	defer srv.mu.Unlock()
	srv.released = false
	if srv.subscription == nil {
		srv.subscription = srv.identity.OnAuthStateChanged(srv.HandleAuthState)
	}

	return nil
}

// HandleAuthState runs identity resolution, token fetch, connect and channel
// watch for an authenticated session. Failures move the screen to the error
// phase with a human-readable message.
func (srv *bootstrapService) HandleAuthState(ctx context.Context, session *entity.AuthSession) {
	if session == nil || !session.IsAuthenticated {
		srv.log(ctx).Info("No authenticated user, waiting for sign-in")

		return
	}

	srv.runMu.Lock()
	defer srv.runMu.Unlock()

	// One request ID per auth transition, forwarded to the chat service
	ctx, _ = deliverycontext.EnsureRequestID(ctx, srv.logger)

	logger := srv.log(ctx).With(slog.String("auth_user_id", session.UserID))
	logger.Info("User authenticated")

	var identity *entity.Identity
	err := srv.runStep(ctx, stepResolveIdentity, func(stepCtx context.Context) error {
		var resolveErr error
		identity, resolveErr = srv.session.ResolveIdentity(stepCtx, session)

		return resolveErr
	})
	if err != nil {
		_ = srv.fail(ctx, stepResolveIdentity, domainerrors.NewStepError(domainerrors.ErrAuth, err))

		return
	}

	var token string
	err = srv.runStep(ctx, stepFetchToken, func(stepCtx context.Context) error {
		var fetchErr error
		token, fetchErr = srv.tokens.FetchToken(stepCtx, identity.ID, session.IDToken)
		if fetchErr == nil && token == "" {
			fetchErr = errors.New(domainerrors.ErrTokenFetch.Message())
		}

		return fetchErr
	})
	if err != nil {
		_ = srv.fail(ctx, stepFetchToken, domainerrors.NewStepError(domainerrors.ErrTokenFetch, err))

		return
	}

	if srv.chat.IsConnected() {
		logger.Info("Chat session already connected, skipping connect",
			slog.String("identity_id", identity.ID))

		return
	}

	var chatSession *entity.ChatSession
	err = srv.runStep(ctx, stepConnect, func(stepCtx context.Context) error {
		var connectErr error
		chatSession, connectErr = srv.chat.ConnectUser(stepCtx, identity.ChatUser(), token)

		return connectErr
	})
	if err != nil {
		_ = srv.fail(ctx, stepConnect, domainerrors.NewStepError(domainerrors.ErrConnection, err))

		return
	}
	srv.metrics.RecordConnected(true)
	logger.Info("Connected to chat service",
		slog.String("identity_id", chatSession.UserID),
		slog.String("connection_id", chatSession.ConnectionID),
	)

	spec := entity.ChannelSpec{
		Type:            srv.cfg.Chat.ChannelType,
		ID:              srv.cfg.Chat.ChannelID,
		ProfanityFilter: srv.cfg.Chat.ProfanityFilter,
	}

	var channel *entity.Channel
	err = srv.runStep(ctx, stepWatchChannel, func(stepCtx context.Context) error {
		var watchErr error
		channel, watchErr = srv.chat.WatchChannel(stepCtx, spec)

		return watchErr
	})
	if err != nil {
		_ = srv.fail(ctx, stepWatchChannel, domainerrors.NewStepError(domainerrors.ErrChannel, err))

		return
	}

	srv.screen.ready(channel)
	logger.Info("Channel ready", slog.String("cid", channel.CID))
}

// Shutdown unsubscribes, disconnects and signs out. Safe to call more than once.
func (srv *bootstrapService) Shutdown(ctx context.Context) error {
	srv.mu.Lock()
	sub := srv.subscription
	srv.subscription = nil
	srv.released = true
	srv.mu.Unlock()

	if sub != nil {
		sub.Unsubscribe()
	}

	var errs []error
	if srv.chat.IsConnected() {
		if err := srv.chat.DisconnectUser(ctx); err != nil {
			errs = append(errs, errors.Wrap(err, "failed to disconnect chat user"))
		} else {
			srv.metrics.RecordConnected(false)
		}
	}

	if err := srv.identity.SignOut(ctx); err != nil {
		errs = append(errs, errors.Wrap(err, "failed to sign out"))
	}

	if err := errors.Join(errs...); err != nil {
		srv.log(ctx).Error("Chat bootstrap shutdown finished with errors", slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("Chat bootstrap shut down")

	return nil
}

// runStep runs fn under the configured step timeout and records its duration.
func (srv *bootstrapService) runStep(ctx context.Context, step string, fn func(ctx context.Context) error) error {
	stepCtx := ctx
	if timeout := srv.cfg.Bootstrap.StepTimeout; timeout > 0 {
		var cancel context.CancelFunc
		stepCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	start := time.Now()
	err := fn(stepCtx)
	srv.metrics.RecordBootstrapStep(step, time.Since(start), err)

	return err
}

// fail moves the screen to the error phase. A step cancelled by Shutdown is
// only logged.
func (srv *bootstrapService) fail(ctx context.Context, step string, err error) error {
	if errors.Is(err, context.Canceled) && srv.isReleased() {
		srv.log(ctx).Info("Chat bootstrap step interrupted by shutdown", slog.String("step", step))

		return err
	}

	message := domainerrors.UserMessage(err)
	srv.log(ctx).Error("Chat bootstrap step failed",
		slog.String("step", step),
		slog.String("user_message", message),
		slog.Any("error", err),
	)
	srv.screen.fail(message)

	return err
}

func (srv *bootstrapService) isReleased() bool {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.released
}
