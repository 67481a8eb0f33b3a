package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	activityHttp "herring/internal/activity/adapters/http/fiber"
	activityRepoPg "herring/internal/activity/adapters/postgres"
	activityUsecase "herring/internal/activity/core/usecase"

	puzzlesHttp "herring/internal/puzzles/adapters/http/fiber"
	puzzlesRepoPg "herring/internal/puzzles/adapters/postgres"
	puzzlesUsecase "herring/internal/puzzles/core/usecase"

	"herring/internal/config"
	"herring/internal/database"
	"herring/internal/logging"
	"herring/internal/server"

	_ "herring/docs"
)

// @title Herring API
// @version 1.0
// @description Puzzle hunt tracker: rounds, puzzles and channel activity.
// @BasePath /
func main() {
	// Config
	cfg, err := config.Load(os.Getenv("HERRING_CONFIG"))
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger, err := logging.New(os.Stdout, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		slog.Error("failed to build logger", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(logger)

	// DB connection
	ctx := context.Background()
	db, err := database.Open(ctx, cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		logger.Error("failed to open database", "driver", cfg.Database.Driver, "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if cfg.Database.AutoMigrate {
		if err := database.CreateSchema(ctx, db, cfg.Database.Driver); err != nil {
			logger.Error("schema creation failed", "error", err)
			os.Exit(1)
		}
		logger.Info("database schema ready")
	}

	// Repositories
	activityRepository := activityRepoPg.NewActivityRepository(activityRepoPg.NewSQLDB(db))
	puzzleRepository := puzzlesRepoPg.NewPuzzleRepository(puzzlesRepoPg.NewSQLDB(db))

	// Usecases
	getActivityUC := activityUsecase.NewGetActivityUseCase(activityRepository)
	recordActivityUC := activityUsecase.NewRecordActivityUseCase(activityRepository)
	membershipUC := activityUsecase.NewUpdateMembershipUseCase(activityRepository)

	listRoundsUC := puzzlesUsecase.NewListRoundsUseCase(puzzleRepository, activityRepository, cfg.HuntID)
	updatePuzzleUC := puzzlesUsecase.NewUpdatePuzzleUseCase(puzzleRepository)
	createRoundUC := puzzlesUsecase.NewCreateRoundUseCase(puzzleRepository, cfg.HuntID)
	createPuzzleUC := puzzlesUsecase.NewCreatePuzzleUseCase(puzzleRepository, cfg.HuntID)
	getPuzzleUC := puzzlesUsecase.NewGetPuzzleUseCase(puzzleRepository)

	// HTTP (Fiber) app + handlers
	app := server.New(logger, db, server.Options{AllowOrigins: cfg.CORS.AllowOrigins})
	server.Register(app, server.Handlers{
		Puzzles: puzzlesHttp.NewPuzzleHandler(
			listRoundsUC, updatePuzzleUC, createRoundUC, createPuzzleUC, getPuzzleUC,
			puzzlesHttp.Settings{
				Discord: cfg.Activate.Discord,
				Gapps:   cfg.Activate.Gapps,
				HuntID:  cfg.HuntID,
			},
		),
		Activity: activityHttp.NewActivityHandler(getActivityUC, recordActivityUC, membershipUC),
	})

	// Graceful shutdown
	go func() {
		if err := app.Listen(cfg.Addr()); err != nil {
			logger.Error("fiber stopped", "error", err)
		}
	}()

	logger.Info("server started", "addr", cfg.Addr(), "hunt_id", cfg.HuntID, "driver", cfg.Database.Driver)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		logger.Error("fiber shutdown error", "error", err)
	}

	logger.Info("server exiting")
}
