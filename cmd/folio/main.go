package main

import (
	"context"
	"log/slog"
	"os"

	"folio/config"
	"folio/internal/delivery"
	"folio/internal/delivery/http"
	"folio/internal/delivery/http/middleware"
	"folio/internal/delivery/http/router/handler"
	"folio/internal/domain/repository"
	"folio/internal/domain/service"
	"folio/internal/infra/auth"
	logs "folio/internal/infra/log"
	"folio/internal/infra/persistence/firestore"
	"folio/internal/infra/persistence/localstore"
	"folio/internal/infra/pubsub"
	"folio/internal/infra/qrcode"
	"folio/internal/usecase/impl"

	"github.com/pkg/errors"
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
		pubsub.NewEventPublisher,
	)
}

// repoSet bundles the repositories of whichever storage backend is
// configured, so the rest of the graph stays backend-agnostic.
type repoSet struct {
	fx.Out

	Portfolio   repository.PortfolioRepository
	Inbox       repository.InboxRepository
	Notes       repository.NoteRepository
	Credentials repository.CredentialRepository
}

func newRepositories(lc fx.Lifecycle, ctx context.Context, cfg *config.Config, logger *slog.Logger) (repoSet, error) {
	switch cfg.Storage.Backend {
	case config.BackendFirestore:
		client, err := firestore.New(firestore.Params{Lifecycle: lc, Ctx: ctx, Config: cfg})
		if err != nil {
			return repoSet{}, err
		}

		return repoSet{
			Portfolio:   firestore.NewPortfolioRepository(client, cfg, logger),
			Inbox:       firestore.NewInboxRepository(client),
			Notes:       firestore.NewNoteRepository(client),
			Credentials: firestore.NewCredentialRepository(client),
		}, nil
	case config.BackendLocal:
		store, err := localstore.New(localstore.Params{Lifecycle: lc, Config: cfg, Logger: logger})
		if err != nil {
			return repoSet{}, err
		}

		return repoSet{
			Portfolio:   localstore.NewPortfolioRepository(store, cfg, logger),
			Inbox:       localstore.NewInboxRepository(store),
			Notes:       localstore.NewNoteRepository(store),
			Credentials: localstore.NewCredentialRepository(store),
		}, nil
	default:
		return repoSet{}, errors.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			newRepositories,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
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
			impl.NewContentService,
			impl.NewInboxService,
			impl.NewNoteService,
			impl.NewSessionService,
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
			handler.NewPortfolioHandler,
			handler.NewContactHandler,
			handler.NewNoteHandler,
			handler.NewSessionHandler,
			handler.NewShareHandler,
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
