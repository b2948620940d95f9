package main

import (
	"log"
	"net/http"

	"github.com/Jhorlodev/horas-extras/config"
	"github.com/Jhorlodev/horas-extras/database"
	"github.com/Jhorlodev/horas-extras/handlers"
	"github.com/Jhorlodev/horas-extras/middleware"
	"github.com/Jhorlodev/horas-extras/notify"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize JWT secret
	middleware.SetJWTSecret(cfg.JWTSecret)

	// Initialize database
	if err := database.Init(cfg.DatabaseURL); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// Record-change notifications are optional; the API works without a broker.
	var notifier *notify.Publisher
	if cfg.AMQPURL != "" {
		p, err := notify.NewPublisher(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			log.Printf("Record notifications disabled: %v", err)
		} else {
			notifier = p
			defer notifier.Close()
		}
	}

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(cfg)
	recordHandler := handlers.NewRecordHandler(cfg, notifier)

	// Setup router
	router := chi.NewRouter()
	router.Use(chimiddleware.Logger)
	router.Use(chimiddleware.Recoverer)

	router.Route("/api", func(r chi.Router) {
		// Public routes
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthMiddleware)

			r.Get("/me", authHandler.Me)
			r.Post("/auth/logout", authHandler.Logout)
			r.Post("/auth/change-password", authHandler.ChangePassword)

			r.Post("/records", recordHandler.CreateRecord)
			r.Get("/records", recordHandler.ListRecords)
			r.Delete("/records/{id}", recordHandler.DeleteRecord)
			r.Get("/records/summary", recordHandler.RangeSummary)
			r.Get("/records/export", recordHandler.ExportCSV)
		})
	})

	log.Printf("Server starting on port %s", cfg.ServerPort)
	log.Fatal(http.ListenAndServe(":"+cfg.ServerPort, router))
}
