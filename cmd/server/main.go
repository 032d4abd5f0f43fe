package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/starterkart/starterkart-backend/internal/api"
	"github.com/starterkart/starterkart-backend/internal/config"
	"github.com/starterkart/starterkart-backend/internal/core"
	"github.com/starterkart/starterkart-backend/internal/db"
	"github.com/starterkart/starterkart-backend/internal/middleware"
	"github.com/starterkart/starterkart-backend/pkg/mailer"
	"github.com/starterkart/starterkart-backend/pkg/messagequeue"
)

func main() {
	// Load .env file. In production, environment variables should be set directly.
	if os.Getenv("GIN_MODE") != "release" {
		if err := godotenv.Load(); err != nil {
			log.Println("Warning: Error loading .env file:", err)
		}
	}

	// --- 1. Initialize Logger (Zap) ---
	zapLogger, err := newLogger(os.Getenv("GIN_MODE"))
	if err != nil {
		log.Fatalf("CRITICAL_ERROR: Failed to initialize Zap logger: %v", err)
	}
	defer zapLogger.Sync()

	// --- 2. Load Application Configuration ---
	appConfig, err := config.LoadConfig()
	if err != nil {
		zapLogger.Fatal("CRITICAL_ERROR: Failed to load application configuration", zap.Error(err))
	}
	if err := appConfig.ValidateServer(); err != nil {
		zapLogger.Fatal("CRITICAL_ERROR: Invalid server configuration", zap.Error(err))
	}
	zapLogger.Info("Application configuration loaded successfully.", zap.String("slot_backend", appConfig.SlotBackend))

	// --- 3. Open the durable slot store ---
	initCtx, cancelInitCtx := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelInitCtx()
	store, err := db.OpenSlotStore(initCtx, appConfig, zapLogger)
	if err != nil {
		zapLogger.Fatal("CRITICAL_ERROR: Failed to open slot store", zap.Error(err))
	}
	defer store.Close()

	// --- 4. Initialize Services and hydrate them (loading -> ready) ---
	contentService := core.NewContentRepository(store, zapLogger.Named("content"))
	sessionService := core.NewSessionFlag(store, zapLogger.Named("session"))
	if err := contentService.Hydrate(initCtx); err != nil {
		zapLogger.Fatal("CRITICAL_ERROR: Failed to load site content", zap.Error(err))
	}
	if err := sessionService.Hydrate(initCtx); err != nil {
		zapLogger.Fatal("CRITICAL_ERROR: Failed to load session flag", zap.Error(err))
	}
	zapLogger.Info("Core services initialized successfully.")
	if sessionService.IsAdmin() {
		zapLogger.Warn("Admin session restored; admin routes are open to every client until logout")
	}

	notifier := newNotifier(appConfig, zapLogger.Named("notifier"))
	defer func() {
		if err := notifier.Close(); err != nil {
			zapLogger.Warn("Error closing inquiry notifier", zap.Error(err))
		}
	}()

	// --- 5. Setup Gin HTTP Engine ---
	if strings.ToLower(appConfig.GinMode) == "release" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}
	router := gin.New()

	// Order matters: request ID first so the logger and recovery can report it.
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.RequestLogger(zapLogger))
	router.Use(middleware.RecoveryMiddleware(zapLogger))
	router.Use(middleware.CORSMiddleware(appConfig.ClientURL))

	var routeNotifier core.Notifier
	if notifier.Enabled() {
		routeNotifier = notifier
	}
	api.SetupRoutes(router, appConfig, zapLogger, contentService, sessionService, routeNotifier)

	// --- 6. Configure and Start HTTP Server ---
	serverAddr := fmt.Sprintf(":%s", appConfig.Port)
	httpServer := &http.Server{
		Addr:              serverAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	zapLogger.Info("Starting HTTP server...", zap.String("address", serverAddr), zap.String("ginMode", gin.Mode()))
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("Failed to start HTTP server", zap.Error(err))
		}
	}()

	// --- 7. Graceful Shutdown Handling ---
	quitChannel := make(chan os.Signal, 1)
	signal.Notify(quitChannel, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quitChannel
	zapLogger.Info("Received shutdown signal", zap.String("signal", sig.String()))

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Server forced to shutdown due to error during graceful shutdown", zap.Error(err))
	}

	zapLogger.Info("Server exiting gracefully.")
}

// newLogger returns a production logger in release mode and a development logger otherwise.
func newLogger(ginMode string) (*zap.Logger, error) {
	if strings.ToLower(ginMode) == "release" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// newNotifier wires the configured inquiry delivery channels. Close the notifier to wait
// for in-flight deliveries and release the queue connection.
func newNotifier(appConfig *config.Config, logger *zap.Logger) *core.InquiryNotifier {
	notifier := core.NewInquiryNotifier(logger)

	if appConfig.MailEnabled() {
		m, err := mailer.New(mailer.Config{
			Host: appConfig.SMTPHost,
			Port: appConfig.SMTPPort,
			User: appConfig.SMTPUser,
			Pass: appConfig.SMTPPass,
			From: appConfig.SMTPFrom,
		})
		if err != nil {
			logger.Warn("Inquiry mail disabled", zap.Error(err))
		} else {
			notifier.WithMail(m, appConfig.NotifyEmail)
			logger.Info("Inquiry mail enabled", zap.String("smtp_host", appConfig.SMTPHost))
		}
	}

	if appConfig.QueueEnabled() {
		publisher, err := messagequeue.NewRabbitMQPublisher(messagequeue.RabbitMQConfig{
			URL:   appConfig.RabbitMQURL,
			Queue: appConfig.RabbitMQQueue,
		})
		if err != nil {
			logger.Warn("Inquiry queue disabled", zap.Error(err))
		} else {
			notifier.WithQueue(publisher)
			logger.Info("Inquiry queue enabled", zap.String("queue", publisher.Queue()))
		}
	}

	return notifier
}
