package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/fathima-sithara/media-gallery/internal/config"
	"github.com/fathima-sithara/media-gallery/internal/database"
	"github.com/fathima-sithara/media-gallery/internal/handlers"
	"github.com/fathima-sithara/media-gallery/internal/middleware"
	"github.com/fathima-sithara/media-gallery/internal/repository"
	"github.com/fathima-sithara/media-gallery/internal/routes"
	service "github.com/fathima-sithara/media-gallery/internal/services"
	"github.com/fathima-sithara/media-gallery/internal/storage"
	"github.com/fathima-sithara/media-gallery/internal/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	// load config
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	// logger
	logger, _ := utils.NewLogger(cfg.App.Env)
	defer func() { _ = logger.Sync() }()

	// Mongo
	db, mc, err := database.ConnectMongo(cfg.Mongo.URI, cfg.Mongo.Database, logger)
	if err != nil {
		logger.Fatalf("mongo connect: %v", err)
	}

	// transient upload staging
	store, err := storage.NewDiskStore(cfg.Upload.Dir)
	if err != nil {
		logger.Fatalf("upload dir init: %v", err)
	}

	// repositories & services
	paintingSvc := service.NewPaintingService(repository.NewMongoPaintingRepo(db), store)
	audioSvc := service.NewAudioService(repository.NewMongoAudioRepo(db), store)
	danceSvc := service.NewDanceVideoService(repository.NewMongoDanceVideoRepo(db), store)

	// fiber app & routes
	app := fiber.New(fiber.Config{
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		// above the video cap so the upload filter, not the framework,
		// rejects oversized files
		BodyLimit: 128 * 1024 * 1024,
		Views:     handlers.NewViewEngine("./web/views"),
	})
	app.Use(recover.New())
	app.Use(middleware.RequestLogger(logger))
	app.Use(middleware.MethodOverride())
	app.Static("/", "./web/public")
	app.Static("/uploads", store.Dir())

	routes.Setup(app,
		handlers.NewPageHandler(),
		handlers.NewPaintingHandler(paintingSvc, logger),
		handlers.NewMusicHandler(audioSvc, logger),
		handlers.NewDanceHandler(danceSvc, logger),
	)

	// start server
	go func() {
		addr := fmt.Sprintf(":%d", cfg.App.Port)
		logger.Infof("starting media gallery on %s", addr)
		if err := app.Listen(addr); err != nil {
			logger.Fatalf("listen failed: %v", err)
		}
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	logger.Info("shutdown requested")
	timeoutCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	_ = app.Shutdown()
	_ = mc.Disconnect(timeoutCtx)
	logger.Info("shutdown completed")
}
