package main

import (
	"context"
	"log"
	"net/http"

	"trusttrade_backend/config"
	"trusttrade_backend/handlers"
	"trusttrade_backend/internal/metrics"
	"trusttrade_backend/internal/notifier"
	"trusttrade_backend/internal/ws"
	"trusttrade_backend/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg := config.LoadConfig()

	db := config.ConnectDatabase(cfg.DatabaseURL)
	if cfg.SeedDB {
		if err := config.ResetAndMigrate(db); err != nil {
			log.Fatalf("Failed to reset database: %v", err)
		}
	} else {
		if err := config.Migrate(db); err != nil {
			log.Fatalf("Failed to migrate database: %v", err)
		}
	}

	metrics.Register()
	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		log.Printf("Metrics listening on :%s", cfg.MetricsPort)
		if err := http.ListenAndServe(":"+cfg.MetricsPort, mux); err != nil {
			log.Printf("Metrics listener failed: %v", err)
		}
	}()

	hub := ws.NewHub()
	go hub.Run()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	n := notifier.New(db, hub)
	go n.Run(ctx)

	app := fiber.New(fiber.Config{
		AppName:      "TrustTrade Backend",
		ServerHeader: "TrustTrade Backend Server/1.0",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Default 500 statuscode
			code := fiber.StatusInternalServerError
			msg := "Internal Server Error"

			// Retrieve the custom statuscode if it's a *fiber.Error
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
				msg = e.Message
			}

			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": msg,
			})
		},
	})

	middleware.SetupMiddleware(app)

	// Health Check Endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":  "success",
			"message": "API is healthy",
		})
	})

	handlers.RegisterRoutes(app, db, hub, n)

	middleware.SetupErrorHandler(app)

	log.Printf("🚀 Server starting on host %s in port %s mode", cfg.HOST, cfg.AppPort)

	if err := app.Listen(cfg.HOST + ":" + cfg.AppPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
