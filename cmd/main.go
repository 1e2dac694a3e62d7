package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pizzeria-backend/internal/config"
	"pizzeria-backend/internal/database"
	"pizzeria-backend/internal/logger"
	"pizzeria-backend/internal/messaging"
	"pizzeria-backend/internal/services/notification"
	"pizzeria-backend/internal/services/pizzeria"
)

func main() {
	var (
		mode       = flag.String("mode", "api", "Service mode (api, notification-subscriber)")
		port       = flag.Int("port", 0, "HTTP port (overrides config)")
		configPath = flag.String("config", "config.yaml", "Path to config file")
		prefetch   = flag.Int("prefetch", 1, "RabbitMQ prefetch count")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}

	log := logger.New(*mode)
	requestID := logger.GenerateRequestID()

	log.Info("service_started", fmt.Sprintf("Starting %s", *mode), requestID, map[string]interface{}{
		"mode": *mode,
		"port": cfg.Server.Port,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Info("graceful_shutdown", "Received shutdown signal", requestID, nil)
		cancel()
	}()

	switch *mode {
	case "api":
		if err := runAPI(ctx, cfg, log); err != nil {
			log.Error("service_failed", "API service failed", requestID, err, nil)
			os.Exit(1)
		}
	case "notification-subscriber":
		if err := runNotificationSubscriber(ctx, cfg, log, *prefetch); err != nil {
			log.Error("service_failed", "Notification subscriber failed", requestID, err, nil)
			os.Exit(1)
		}
	default:
		log.Error("validation_failed", fmt.Sprintf("Unknown mode: %s", *mode), requestID, nil, nil)
		os.Exit(1)
	}

	log.Info("service_stopped", "Service stopped gracefully", requestID, nil)
}

// runAPI runs the REST API service
func runAPI(ctx context.Context, cfg *config.Config, log *logger.Logger) error {
	requestID := logger.GenerateRequestID()

	db, err := database.New(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	log.Info("db_connected", "Connected to PostgreSQL database", requestID, nil)

	if err := db.RunMigrations(ctx, "migrations"); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	repo := pizzeria.NewPostgresRepository(db)

	if cfg.Seed.Enabled {
		if err := pizzeria.SeedDemoData(ctx, repo, log); err != nil {
			return fmt.Errorf("failed to seed demo data: %w", err)
		}
	}

	// Order events are best-effort: the API keeps serving when the broker
	// is down.
	var publisher pizzeria.EventPublisher
	conn, err := messaging.New(cfg, log)
	if err != nil {
		log.Error("rabbitmq_unavailable", "Running without order event notifications", requestID, err, nil)
	} else {
		defer conn.Close()
		log.Info("rabbitmq_connected", "Connected to RabbitMQ", requestID, nil)
		publisher = messaging.NewPublisher(conn, log)
	}

	service := pizzeria.NewService(repo, pizzeria.StaticTokenIssuer{}, publisher, log)
	handler := pizzeria.NewHandler(service, log)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: handler.SetupRoutes(),
	}

	go func() {
		log.Info("server_listening", fmt.Sprintf("API listening on port %d", cfg.Server.Port), requestID, map[string]interface{}{
			"port": cfg.Server.Port,
		})
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server_failed", "HTTP server failed", requestID, err, nil)
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	return server.Shutdown(shutdownCtx)
}

// runNotificationSubscriber runs the order event subscriber
func runNotificationSubscriber(ctx context.Context, cfg *config.Config, log *logger.Logger, prefetch int) error {
	conn, err := messaging.New(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to initialize messaging: %w", err)
	}
	defer conn.Close()

	consumer := messaging.NewConsumer(conn, log, messaging.OrderNotificationsQueue, "notification-subscriber", prefetch)
	subscriber := notification.NewSubscriber(consumer, log)

	return subscriber.Start(ctx)
}
