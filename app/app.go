package app

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/burakmert236/gamehub-admin/internal/apperrors"
	"github.com/burakmert236/gamehub-admin/internal/config"
	"github.com/burakmert236/gamehub-admin/internal/database"
	"github.com/burakmert236/gamehub-admin/internal/events"
	"github.com/burakmert236/gamehub-admin/internal/handler"
	"github.com/burakmert236/gamehub-admin/internal/logger"
	"github.com/burakmert236/gamehub-admin/internal/natsjetstream"
	"github.com/burakmert236/gamehub-admin/internal/repository"
	"github.com/burakmert236/gamehub-admin/internal/service"
)

type App struct {
	cfg        *config.Config
	fiberApp   *fiber.App
	db         *database.DynamoDBClient
	natsClient *natsjetstream.Client
	logger     *logger.Logger

	eventPublisher *events.EventPublisher

	tournamentService   service.TournamentService
	announcementService service.AnnouncementService
	userService         service.UserService
	overviewService     service.OverviewService

	cleanup []func() error
}

func New(ctx context.Context, cfg *config.Config) (*App, *apperrors.AppError) {
	app := &App{
		cfg:     cfg,
		cleanup: make([]func() error, 0),
	}

	if err := app.initLogger(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternalServer, "failed to init logger")
	}

	if err := app.initDatabase(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternalServer, "failed to init database")
	}

	if err := app.initNATS(ctx); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternalServer, "failed to init nats client")
	}

	app.initServices()
	app.initHTTP()

	return app, nil
}

func (a *App) initLogger() error {
	if a.cfg.Server.Environment == "production" {
		a.logger = logger.Default("gamehub-admin")
	} else {
		a.logger = logger.Development("gamehub-admin")
	}
	return nil
}

func (a *App) initDatabase() error {
	dynamoClient, err := database.NewDynamoDBClient(a.cfg)
	if err != nil {
		return err
	}

	a.db = dynamoClient
	return nil
}

func (a *App) initNATS(ctx context.Context) error {
	natsClient, err := natsjetstream.NewClient(&natsjetstream.Config{
		URL:           a.cfg.NATS.URL,
		MaxReconnect:  a.cfg.NATS.MaxReconnect,
		ReconnectWait: time.Duration(a.cfg.NATS.ReconnectWaitSeconds) * time.Second,
		Timeout:       time.Duration(a.cfg.NATS.TimeoutSeconds) * time.Second,
	})
	if err != nil {
		return err
	}

	a.natsClient = natsClient

	stream := jetstream.StreamConfig{
		Name:     events.AdminEventsStream,
		Subjects: []string{events.AdminEventsWildcard},
	}

	if _, streamErr := a.natsClient.JetStream().CreateOrUpdateStream(ctx, stream); streamErr != nil {
		a.logger.Error("Failed to create stream",
			"error", streamErr,
			"stream", stream.Name,
		)
		return streamErr
	}
	a.logger.Info("Stream ready", "stream", stream.Name)

	a.cleanup = append(a.cleanup, natsClient.Close)

	a.eventPublisher = events.NewEventPublisher(a.natsClient, a.logger)

	return nil
}

func (a *App) initServices() {
	tournamentRepo := repository.NewTournamentRepository(a.db)
	announcementRepo := repository.NewAnnouncementRepository(a.db)
	userRepo := repository.NewUserRepository(a.db)
	grantRepo := repository.NewGrantRepository(a.db)
	transactionRepo := database.NewTransactionRepository(a.db)

	a.tournamentService = service.NewTournamentService(tournamentRepo, a.eventPublisher, a.logger)
	a.announcementService = service.NewAnnouncementService(announcementRepo, a.eventPublisher, a.logger)
	a.userService = service.NewUserService(userRepo, grantRepo, transactionRepo, a.eventPublisher, a.logger)
	a.overviewService = service.NewOverviewService(tournamentRepo, announcementRepo, userRepo)
}

func (a *App) initHTTP() {
	a.fiberApp = fiber.New(fiber.Config{
		AppName: "gamehub-admin",
	})

	a.fiberApp.Use(cors.New(cors.Config{
		AllowOrigins: a.cfg.Server.AllowedOrigins,
		AllowMethods: "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, X-Admin-Id, X-Admin-Name",
	}))

	overviewHandler := handler.NewOverviewHandler(a.overviewService, a.logger)
	tournamentHandler := handler.NewTournamentHandler(a.tournamentService, a.logger)
	announcementHandler := handler.NewAnnouncementHandler(a.announcementService, a.logger)
	userHandler := handler.NewUserHandler(a.userService, a.logger)

	handler.SetupRoutes(a.fiberApp, overviewHandler, tournamentHandler, announcementHandler, userHandler)
}

func (a *App) Start() *apperrors.AppError {
	go func() {
		addr := fmt.Sprintf(":%d", a.cfg.Server.HTTPPort)
		a.logger.Info(fmt.Sprintf("HTTP server listening on %s", addr))
		if err := a.fiberApp.Listen(addr); err != nil {
			a.logger.Fatal(fmt.Sprintf("Failed to serve: %v", err))
		}
	}()

	a.logger.Info("Application started successfully")

	return nil
}

func (a *App) Stop() *apperrors.AppError {
	a.logger.Info("Stopping application...")

	if a.fiberApp != nil {
		if err := a.fiberApp.Shutdown(); err != nil {
			a.logger.Error(fmt.Sprintf("HTTP shutdown error: %v", err))
		}
	}

	for _, cleanup := range a.cleanup {
		if err := cleanup(); err != nil {
			a.logger.Error(fmt.Sprintf("Cleanup error: %v", err))
		}
	}

	a.logger.Info("Application stopped")
	return nil
}
