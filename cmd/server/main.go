package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/veristay/service-admin/internal/application"
	"github.com/veristay/service-admin/internal/common/auth"
	"github.com/veristay/service-admin/internal/common/database"
	"github.com/veristay/service-admin/internal/common/health"
	"github.com/veristay/service-admin/internal/common/kafka"
	"github.com/veristay/service-admin/internal/common/logger"
	"github.com/veristay/service-admin/internal/common/middleware"
	"github.com/veristay/service-admin/internal/config"
	adminEvents "github.com/veristay/service-admin/internal/events"
	"github.com/veristay/service-admin/internal/handler"
	"github.com/veristay/service-admin/internal/repository"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.NewNamed(cfg.AppEnv, "service-admin")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting service-admin",
		zap.String("port", cfg.Port),
	)

	// Connect to database
	db, err := database.Connect(cfg.DBConfig, log)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}

	// Run database migrations
	if cfg.AppEnv == "development" {
		if err := db.AutoMigrate(
			&repository.ListingModel{},
			&repository.BookingModel{},
			&repository.BlockedDateModel{},
			&repository.TaxiModel{},
			&repository.TaxiBookingModel{},
			&repository.ReviewModel{},
			&repository.TaxModel{},
		); err != nil {
			log.Fatal("failed to run auto-migration", zap.Error(err))
		}
		log.Info("database migration completed (dev auto-migrate)")
	} else {
		dbURL := cfg.DBConfig.DatabaseURL()
		if err := database.RunMigrations(dbURL, cfg.MigrationsDir, log); err != nil {
			log.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	// Initialize JWT manager
	jwtManager := auth.NewJWTManager(
		cfg.JWTConfig.Secret,
		15*time.Minute,
		7*24*time.Hour,
	)

	// Initialize Kafka producer
	kafkaProducer := kafka.NewProducer(cfg.KafkaConfig.Brokers, log)
	defer func() { _ = kafkaProducer.Close() }()

	// Initialize repositories
	listingRepo := repository.NewGormListingRepository(db)
	bookingRepo := repository.NewGormBookingRepository(db)
	blockedDateRepo := repository.NewGormBlockedDateRepository(db)
	taxiRepo := repository.NewGormTaxiRepository(db)
	taxiBookingRepo := repository.NewGormTaxiBookingRepository(db)
	reviewRepo := repository.NewGormReviewRepository(db)
	taxRepo := repository.NewGormTaxRepository(db)

	// Initialize application services
	listingService := application.NewListingService(listingRepo, log)
	bookingService := application.NewBookingService(bookingRepo, kafkaProducer, cfg.KafkaConfig.AdminTopic, log)
	calendarService := application.NewCalendarService(bookingRepo, blockedDateRepo, kafkaProducer, cfg.KafkaConfig.AdminTopic, log)
	taxiService := application.NewTaxiService(taxiRepo, taxiBookingRepo, kafkaProducer, cfg.KafkaConfig.AdminTopic, log)
	reviewService := application.NewReviewService(reviewRepo, bookingRepo, log)
	taxService := application.NewTaxService(taxRepo, log)
	statsService := application.NewStatsService(listingRepo, bookingRepo, taxiRepo, taxiBookingRepo, log)

	// Initialize and start the storefront consumer in a goroutine
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	groupID := cfg.KafkaConfig.GroupPrefix + "admin-service"
	storefrontConsumer := adminEvents.NewStorefrontConsumer(
		cfg.KafkaConfig.Brokers,
		groupID,
		cfg.KafkaConfig.StorefrontTopic,
		bookingService,
		taxiService,
		log,
	)
	defer func() { _ = storefrontConsumer.Close() }()

	go func() {
		log.Info("starting storefront event consumer")
		if err := storefrontConsumer.Start(ctx); err != nil && err != context.Canceled {
			log.Error("storefront event consumer error", zap.Error(err))
		}
	}()

	// Initialize HTTP handlers
	listingHandler := handler.NewListingHandler(listingService)
	bookingHandler := handler.NewBookingHandler(bookingService)
	calendarHandler := handler.NewCalendarHandler(calendarService)
	taxiHandler := handler.NewTaxiHandler(taxiService)
	reviewHandler := handler.NewReviewHandler(reviewService)
	taxHandler := handler.NewTaxHandler(taxService)
	adminHandler := handler.NewAdminHandler(statsService)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	// Apply global middleware
	router.Use(middleware.RecoveryMiddleware(log))
	router.Use(middleware.LoggerMiddleware(log))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())

	// Register health check routes
	healthHandler := health.NewHandler(db, "service-admin")
	healthHandler.RegisterRoutes(router)

	// Register routes
	listingHandler.RegisterRoutes(&router.RouterGroup, jwtManager)
	bookingHandler.RegisterRoutes(&router.RouterGroup, jwtManager)
	calendarHandler.RegisterRoutes(&router.RouterGroup, jwtManager)
	taxiHandler.RegisterRoutes(&router.RouterGroup, jwtManager)
	reviewHandler.RegisterRoutes(&router.RouterGroup, jwtManager)
	taxHandler.RegisterRoutes(&router.RouterGroup, jwtManager)
	adminHandler.RegisterRoutes(&router.RouterGroup, jwtManager)

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("HTTP server starting", zap.String("addr", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down service-admin...")

	// Cancel the consumer context
	cancel()

	// Shutdown HTTP server with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server forced shutdown", zap.Error(err))
	}

	log.Info("service-admin stopped")
}
