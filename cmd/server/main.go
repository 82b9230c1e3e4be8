package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/tiffinstash/delivery-service/config"
	"github.com/tiffinstash/delivery-service/internal/catalog"
	"github.com/tiffinstash/delivery-service/internal/metrics"
	"github.com/tiffinstash/delivery-service/internal/pipeline"
	"github.com/tiffinstash/delivery-service/pkg/broker"
	"github.com/tiffinstash/delivery-service/pkg/cache"
	"github.com/tiffinstash/delivery-service/pkg/database/postgres"
	"github.com/tiffinstash/delivery-service/pkg/logger"

	delivH "github.com/tiffinstash/delivery-service/internal/delivery/handler"
	delivRepoPkg "github.com/tiffinstash/delivery-service/internal/delivery/repository"
	delivUCPkg "github.com/tiffinstash/delivery-service/internal/delivery/usecase"

	orderListenerPkg "github.com/tiffinstash/delivery-service/internal/orders/listener"
	orderUCPkg "github.com/tiffinstash/delivery-service/internal/orders/usecase"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load() // Load .env file if it exists
	cfg := config.LoadEnv()

	// 2. Initialize Logger
	logConfig := &logger.ZapLoggerConfig{
		IsDevelopment:     false,
		Encoding:          "json",
		Level:             "info",
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	}

	if cfg.Server.AppEnv == "dev" {
		logConfig.IsDevelopment = true
		logConfig.Encoding = cfg.Logger.Encoding
		logConfig.Level = cfg.Logger.Level
	}

	appLogger := logger.NewZapLogger(logConfig)
	defer appLogger.Sync()

	// 3. Connect to Database
	db, err := postgres.NewPostgres(&postgres.Config{
		Host:            cfg.Postgres.Host,
		Port:            cfg.Postgres.Port,
		User:            cfg.Postgres.User,
		Password:        cfg.Postgres.Password,
		DBName:          cfg.Postgres.DBName,
		SSLMode:         cfg.Postgres.SSLMode,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Postgres.ConnMaxLifetime) * time.Second,
		ConnMaxIdleTime: time.Duration(cfg.Postgres.ConnMaxIdleTime) * time.Second,
	})
	if err != nil {
		appLogger.Fatal("Could not connect to database", zap.Error(err))
	}
	defer db.Close()
	appLogger.Info("Connected to PostgreSQL database", zap.String("db_name", cfg.Postgres.DBName))

	// 4. Initialize Redis
	redisClient, err := cache.NewRedisClient(&cache.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		appLogger.Fatal("Could not connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()
	appLogger.Info("Connected to Redis", zap.String("addr", cfg.Redis.Addr))

	// 5. Initialize Kafka Consumer
	kafkaConsumer := broker.NewConsumer(&broker.Config{
		Brokers: cfg.Kafka.Brokers,
		Topic:   cfg.Kafka.Topic,
		GroupID: cfg.Kafka.GroupID,
	})
	defer kafkaConsumer.Close()
	appLogger.Info("Connected to Kafka Consumer", zap.Strings("brokers", cfg.Kafka.Brokers), zap.String("topic", cfg.Kafka.Topic))

	// 6. Load static catalogs
	ref, err := catalog.LoadReference(cfg.Catalog.SkuReferencePath)
	if err != nil {
		appLogger.Fatal("Could not load SKU reference catalog", zap.Error(err))
	}
	bundles, err := catalog.LoadBundles(cfg.Catalog.BundleTablePath)
	if err != nil {
		appLogger.Fatal("Could not load bundle table", zap.Error(err))
	}

	// 7. Initialize Metrics
	reg := metrics.NewRegistry()

	// 8. Initialize Repositories, Pipeline and UseCases
	delivRepo := delivRepoPkg.NewPGRepository(db, cfg.Catalog.DeliveriesTable)
	delivUC := delivUCPkg.NewDeliveryUseCase(delivRepo, redisClient, reg, appLogger)

	pipe := pipeline.New(ref, bundles, appLogger)
	orderUC := orderUCPkg.NewOrderUseCase(pipe, delivUC, appLogger)

	// 9. Initialize Listeners
	orderListener := orderListenerPkg.NewOrderListener(kafkaConsumer, orderUC, appLogger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go orderListener.Start(ctx)

	// 10. Initialize Handlers and HTTP server
	handler := delivH.NewDeliveryHandler(delivUC, orderUC, appLogger)

	app := fiber.New(fiber.Config{
		AppName: "delivery-service",
	})
	handler.RegisterRoutes(app)
	app.Get("/metrics", adaptor.HTTPHandler(reg.Handler()))

	port := cfg.Server.HTTPPort
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	appLogger.Info("Starting HTTP server", zap.String("port", port))

	go func() {
		if err := app.Listen(port); err != nil {
			appLogger.Fatal("failed to serve", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	cancel()
	if err := app.Shutdown(); err != nil {
		appLogger.Error("failed to shut down cleanly", zap.Error(err))
	}
	appLogger.Info("Server stopped")
}
