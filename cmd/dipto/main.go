package main

import (
	"context"
	"log/slog"
	"os"

	"dipto/config"
	"dipto/internal/delivery"
	"dipto/internal/delivery/http"
	"dipto/internal/delivery/http/middleware"
	"dipto/internal/delivery/http/router/handler"
	"dipto/internal/domain/repository"
	"dipto/internal/domain/service"
	"dipto/internal/infra/auth"
	"dipto/internal/infra/identity"
	logs "dipto/internal/infra/log"
	"dipto/internal/infra/persistence/memory"
	"dipto/internal/infra/pubsub"
	"dipto/internal/infra/qrcode"
	"dipto/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		newAppContext,
	)
}

// newAppContext provides the root context for background work; shutdown
// cancels it so pending completions stop with the app.
func newAppContext(lc fx.Lifecycle) context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			cancel()

			return nil
		},
	})

	return ctx
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			memory.NewCatalogRepository,
			memory.NewCartRepository,
			memory.NewOrderRepository,
			memory.NewInventoryRepository,
			newNotificationRepository,
			newActivityRepository,
		),
	)
}

// newNotificationRepository bounds the feed with the configured retention.
func newNotificationRepository(cfg *config.Config) repository.NotificationRepository {
	return memory.NewNotificationRepository(cfg.Feeds.Retention)
}

// newActivityRepository bounds the log with the configured retention.
func newActivityRepository(cfg *config.Config) repository.ActivityRepository {
	return memory.NewActivityRepository(cfg.Feeds.Retention)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			identity.NewFirebaseProvider,
			pubsub.NewEventPublisher,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewMenuService,
			impl.NewPricingService,
			impl.NewCartService,
			impl.NewCheckoutService,
			impl.NewOrderService,
			impl.NewInventoryService,
			impl.NewNotificationService,
			impl.NewActivityService,
			impl.NewAuthService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewMenuHandler,
			handler.NewCartHandler,
			handler.NewCheckoutHandler,
			handler.NewOrderHandler,
			handler.NewInventoryHandler,
			handler.NewNotificationHandler,
			handler.NewDashboardHandler,
			handler.NewAuthHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
