package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	catalogapp "github.com/baerenfell/backend/internal/application/catalog"
	orderapp "github.com/baerenfell/backend/internal/application/order"
	pagesapp "github.com/baerenfell/backend/internal/application/pages"
	"github.com/baerenfell/backend/internal/application/upload"
	"github.com/baerenfell/backend/internal/infrastructure/auth"
	"github.com/baerenfell/backend/internal/infrastructure/cache"
	"github.com/baerenfell/backend/internal/infrastructure/config"
	"github.com/baerenfell/backend/internal/infrastructure/event"
	"github.com/baerenfell/backend/internal/infrastructure/logger"
	pagesinfra "github.com/baerenfell/backend/internal/infrastructure/pages"
	"github.com/baerenfell/backend/internal/infrastructure/persistence"
	"github.com/baerenfell/backend/internal/infrastructure/storage"
	"github.com/baerenfell/backend/internal/interfaces/http/handler"
	"github.com/baerenfell/backend/internal/interfaces/http/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting Bärenfell backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Database, with GORM logging routed through zap
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close database", zap.Error(err))
		}
	}()
	log.Info("Database connected",
		zap.String("host", cfg.Database.Host),
		zap.String("database", cfg.Database.DBName),
	)

	// Repositories
	artistRepo := persistence.NewGormArtistRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	txScope := persistence.NewGormTransactionScope(db.DB)

	// Event bus with static page regeneration subscribed
	eventBus := event.NewInMemoryEventBus(log)

	renderer, err := pagesinfra.NewRenderer()
	if err != nil {
		log.Fatal("Failed to initialize page renderer", zap.Error(err))
	}
	pageStore := pagesinfra.NewStore(cfg.Pages.Dir)

	productPages := pagesapp.NewProductPageHandler(log, productRepo, renderer, pageStore)
	eventBus.Subscribe(productPages, productPages.EventTypes()...)
	artistPages := pagesapp.NewArtistPageHandler(log, artistRepo, renderer, pageStore)
	eventBus.Subscribe(artistPages, artistPages.EventTypes()...)

	// Image storage
	var imageStorage upload.ImageStorage
	var staticUploadsDir string
	switch cfg.Storage.Backend {
	case "s3":
		s3Storage, err := storage.NewS3ImageStorage(&cfg.Storage, storage.WithLogger(log))
		if err != nil {
			log.Fatal("Failed to initialize S3 storage", zap.Error(err))
		}
		ensureCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := s3Storage.EnsureBucket(ensureCtx); err != nil {
			cancel()
			log.Fatal("Failed to ensure S3 bucket", zap.Error(err))
		}
		cancel()
		imageStorage = s3Storage
		log.Info("Using S3 image storage", zap.String("bucket", cfg.Storage.Bucket))
	default:
		localStorage := storage.NewLocalImageStorage(cfg.Storage.LocalDir, cfg.Storage.PublicBaseURL)
		imageStorage = localStorage
		staticUploadsDir = localStorage.BaseDir()
		log.Info("Using local image storage", zap.String("dir", cfg.Storage.LocalDir))
	}

	// Idempotency store for order placement
	storeFactory := cache.NewIdempotencyStoreFactory(cfg.Cache, cfg.Redis, cache.WithLogger(log))
	idempotencyStore, err := storeFactory.CreateStore()
	if err != nil {
		log.Fatal("Failed to initialize idempotency store", zap.Error(err))
	}
	defer func() {
		_ = idempotencyStore.Close()
	}()

	// Application services
	artistService := catalogapp.NewArtistService(artistRepo, eventBus)
	productService := catalogapp.NewProductService(productRepo, artistRepo, eventBus)
	orderService := orderapp.NewOrderService(orderRepo, txScope)
	uploadService := upload.NewService(imageStorage, log)

	// Auth
	jwtService := auth.NewJWTService(cfg.JWT)

	// HTTP
	handlers := router.Handlers{
		System:  handler.NewSystemHandler(cfg.App.Name, cfg.App.Env),
		Artist:  handler.NewArtistHandler(artistService),
		Product: handler.NewProductHandler(productService),
		Order:   handler.NewOrderHandler(orderService, idempotencyStore, cfg.Cache.IdempotencyTTL, log),
		Upload:  handler.NewUploadHandler(uploadService, cfg.Upload.MaxFileSize, log),
	}

	engine := router.New(router.Options{
		Config:           cfg,
		Logger:           log,
		Validator:        jwtService,
		Handlers:         handlers,
		StaticUploadsDir: staticUploadsDir,
	})

	server := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Forced shutdown", zap.Error(err))
	}

	log.Info("Server stopped")
}
