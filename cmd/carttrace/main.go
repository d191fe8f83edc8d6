package main

import (
	"context"
	"log/slog"
	"os"

	"carttrace/config"
	"carttrace/internal/delivery"
	"carttrace/internal/delivery/http"
	httpmiddleware "carttrace/internal/delivery/http/middleware"
	"carttrace/internal/delivery/http/router/handler"
	deliverymiddleware "carttrace/internal/delivery/middleware"
	"carttrace/internal/infra/auth"
	"carttrace/internal/infra/identity"
	logs "carttrace/internal/infra/log"
	"carttrace/internal/infra/persistence/postgres"
	"carttrace/internal/usecase/impl"

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
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTenantRepository,
			postgres.NewProfileRepository,
			postgres.NewRoleRepository,
			postgres.NewRefreshTokenRepository,
			postgres.NewClientRepository,
			postgres.NewProductRepository,
			postgres.NewInvoiceRepository,
			postgres.NewTransactionRepository,
			postgres.NewNotificationRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			auth.NewPinGenerator,
			identity.NewDirectory,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewProvisioningService,
			impl.NewClientService,
			impl.NewProductService,
			impl.NewInvoiceService,
			impl.NewTransactionService,
			impl.NewNotificationService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			httpmiddleware.NewAuthMiddleware,
			httpmiddleware.NewErrorMiddleware,
			deliverymiddleware.NewRequestIDMiddleware,
			deliverymiddleware.NewLoggerMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewProvisioningHandler,
			handler.NewClientHandler,
			handler.NewProductHandler,
			handler.NewInvoiceHandler,
			handler.NewTransactionHandler,
			handler.NewNotificationHandler,
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
