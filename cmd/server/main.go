package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"flightcast-service/internal/infrastructure/config"
	"flightcast-service/internal/infrastructure/persistence"
	"flightcast-service/internal/interface/extraction"
	"flightcast-service/internal/interface/mail"
	"flightcast-service/internal/interface/repository"
	"flightcast-service/internal/interface/rest"
	"flightcast-service/internal/usecase"
	"flightcast-service/pkg/logger"
	"flightcast-service/pkg/metrics"
	"flightcast-service/pkg/pseal"
)

func main() {
	// Create logger
	log := logger.NewLogger()
	defer log.Sync()
	log.Info("Starting Flightcast Service")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config", "error", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up MongoDB connection
	log.Info("Connecting to MongoDB")
	mongoClient, db, err := persistence.NewMongoClient(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB", "error", err)
	}

	gormDB, err := gorm.Open(postgres.Open(cfg.PostgresURI), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", "error", err)
	}

	sealer, err := pseal.NewSealer(cfg.SealSecret)
	if err != nil {
		log.Fatal("Failed to build config sealer", "error", err)
	}

	m := metrics.NewMetrics("flightcast")

	// Set up repositories
	historyRepo := repository.NewMongoHistoryRepository(db)
	configRepo := repository.NewMongoConfigRepository(db, sealer, log)
	agentRepo := repository.NewGormAgentRepository(gormDB)
	mailRepo := mail.NewResendRelay(cfg.ResendAPIKey, cfg.MailFromName, cfg.MailFromAddr, m, log)

	// Set up the extraction factory and orchestrating service
	factory := extraction.NewFactory(cfg.GeminiModel, cfg.OpenAIModel, log)
	service := usecase.NewItineraryService(
		factory,
		historyRepo,
		configRepo,
		agentRepo,
		mailRepo,
		usecase.EnvKeys{Gemini: cfg.GeminiAPIKey, OpenAI: cfg.OpenAIAPIKey, Resend: cfg.ResendAPIKey},
		cfg.DefaultProvider,
		m,
		log,
	)

	router := rest.NewRouter(rest.NewHandler(service, log), cfg.CORSOrigins)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// Start HTTP server in a goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("Received signal", "signal", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	cancel()

	if err := mongoClient.Disconnect(context.Background()); err != nil {
		log.Error("MongoDB disconnect error", "error", err)
	}

	log.Info("Flightcast Service stopped")
}
