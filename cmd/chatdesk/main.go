package main

import (
	"context"
	"log/slog"
	"os"

	"chatdesk/config"
	"chatdesk/internal/delivery"
	"chatdesk/internal/delivery/api"
	"chatdesk/internal/delivery/api/middleware"
	"chatdesk/internal/delivery/api/router/handler"
	"chatdesk/internal/infra/chat/stream"
	"chatdesk/internal/infra/identity"
	logs "chatdesk/internal/infra/log"
	"chatdesk/internal/infra/metrics"
	"chatdesk/internal/infra/pubsub"
	"chatdesk/internal/infra/sanitize"
	"chatdesk/internal/infra/token"
	"chatdesk/internal/usecase"
	"chatdesk/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

type bootstrapParams struct {
	fx.In

	Lc        fx.Lifecycle
	Ctx       context.Context
	Logger    *slog.Logger
	Bootstrap usecase.BootstrapUsecase
}

func main() {
	fx.New(
		injectInfra(),
		injectService(),
		injectUsecase(),
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			runBootstrap,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
		),
		metrics.Module,
	)
}

func injectService() fx.Option {
	return fx.Options(
		identity.Module,
		token.Module,
		stream.Module,
		pubsub.Module,
		sanitize.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewScreenStore,
			func(screen *impl.ScreenStore) usecase.ScreenUsecase { return screen },
			impl.NewSessionService,
			impl.NewBootstrapService,
			impl.NewModerationService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewRoleMiddleware,
			middleware.NewRateLimitMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewHealthHandler,
			handler.NewScreenHandler,
			handler.NewModerationHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// runBootstrap signs in once the app has started and tears the sessions down on stop.
// A failed bootstrap leaves the process up with the screen in the error phase.
func runBootstrap(params bootstrapParams) {
	ctx, cancel := context.WithCancel(params.Ctx)

	params.Lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				if err := params.Bootstrap.Start(ctx); err != nil {
					params.Logger.Error("Bootstrap failed", slog.Any("error", err))
				}
			}()

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()

			return params.Bootstrap.Shutdown(stopCtx)
		},
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
