package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"

	"github.com/Rashmika-Bandara/Save2Serve/config"
	"github.com/Rashmika-Bandara/Save2Serve/engine"
	"github.com/Rashmika-Bandara/Save2Serve/handlers"
	"github.com/Rashmika-Bandara/Save2Serve/identity"
	"github.com/Rashmika-Bandara/Save2Serve/middleware"
	"github.com/Rashmika-Bandara/Save2Serve/store"
)

func main() {
	cfg := config.LoadConfig()

	db, err := config.ConnectDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if os.Getenv("RESET_DB") == "true" {
		if err := config.ResetAndMigrate(db); err != nil {
			log.Fatal("Failed to reset database:", err)
		}
	} else if err := config.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Dependency Injection
	provider := identity.NewJWTProvider(cfg.JWTSecret)

	eng := engine.New(
		store.NewListingStore(db),
		store.NewRequestStore(db),
		store.NewFeedbackStore(db),
	)

	authHandler := handlers.NewAuthHandler(db, provider, cfg.TokenTTL())
	listingHandler := handlers.NewListingHandler(eng)
	requestHandler := handlers.NewRequestHandler(eng)
	feedbackHandler := handlers.NewFeedbackHandler(eng)

	app := fiber.New(fiber.Config{
		AppName:      "Save2Serve Backend",
		ServerHeader: "Save2Serve Backend Server/1.0",
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

	// Auth (identity provider surface)
	app.Post("/signup", authHandler.Signup)
	app.Post("/login", authHandler.Login)

	// Public browsing
	app.Get("/listings", listingHandler.GetListings)

	// Authenticated routes
	auth := middleware.NewAuth(provider)
	app.Get("/my-listings", auth, listingHandler.GetMyListings)
	app.Post("/listings", auth, listingHandler.CreateListing)
	app.Put("/listings/:id", auth, listingHandler.UpdateListing)
	app.Delete("/listings/:id", auth, listingHandler.DeleteListing)

	app.Post("/requests", auth, requestHandler.CreateRequest)
	app.Get("/seller/requests", auth, requestHandler.GetSellerRequests)
	app.Get("/buyer/requests", auth, requestHandler.GetBuyerRequests)
	app.Put("/requests/:id", auth, requestHandler.UpdateRequestStatus)

	app.Post("/feedback", auth, feedbackHandler.CreateFeedback)
	app.Get("/seller/feedback", auth, feedbackHandler.GetSellerFeedback)

	middleware.SetupErrorHandler(app)

	log.Printf("🚀 Server starting on host %s in port %s mode", cfg.HOST, cfg.AppPort)

	if err := app.Listen(cfg.HOST + ":" + cfg.AppPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
