package main

import (
	"context"
	"log/slog"
	"os"

	"nexstock/config"
	"nexstock/internal/delivery"
	"nexstock/internal/delivery/http"
	"nexstock/internal/delivery/http/middleware"
	"nexstock/internal/delivery/http/router/handler"
	"nexstock/internal/infra/auth/firebase"
	logs "nexstock/internal/infra/log"
	"nexstock/internal/infra/persistence/firestore"
	"nexstock/internal/infra/pubsub"
	"nexstock/internal/infra/storage"
	"nexstock/internal/usecase/impl"

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
		context.Background,
		firestore.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			firestore.NewInventoryRepository,
			firestore.NewUserRepository,
			firestore.NewStockHistoryRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			firebase.NewIdentityVerifier,
			storage.NewBlobUploader,
			pubsub.NewEventPublisher,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewInventoryService,
			impl.NewInventoryViewService,
			impl.NewSyncService,
			impl.NewUserService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewInventoryHandler,
			handler.NewUserHandler,
			handler.NewUploadHandler,
			handler.NewConfigHandler,
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
