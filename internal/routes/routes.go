// Package routes defines the API routing configuration.
// It wires repositories into services and handlers, and groups routes by
// functionality with the appropriate middleware.
package routes

import (
	"simpasar/internal/config"
	"simpasar/internal/handlers"
	"simpasar/internal/middleware"
	"simpasar/internal/models"
	"simpasar/internal/repositories"
	"simpasar/internal/scheduler"
	"simpasar/internal/services/auth"
	"simpasar/internal/services/billing"
	"simpasar/internal/services/qris"
	"simpasar/internal/services/sequence"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupRoutes configures all application routes and returns the billing
// scheduler so main can start and stop it with the server.
func SetupRoutes(app *fiber.App, db *gorm.DB) *scheduler.Scheduler {
	// Repositories
	userRepo := repositories.NewUserRepository(db)
	marketRepo := repositories.NewMarketRepository(db, repositories.CacheService)
	vendorRepo := repositories.NewVendorRepository(db)
	dueRepo := repositories.NewDueRepository(db)
	invoiceRepo := repositories.NewInvoiceRepository(db)
	sequenceStore := repositories.NewSequenceStore(db)

	// Services
	authService := auth.NewService(userRepo)
	qrisService := qris.NewService(marketRepo)
	sequencer := sequence.NewService(sequenceStore)
	billingService := billing.NewService(
		vendorRepo,
		marketRepo,
		dueRepo,
		invoiceRepo,
		sequencer,
		billing.Config{
			EpochYear: config.BillingEpochYear(),
			Location:  config.Location(),
		},
	)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	paymentHandler := handlers.NewPaymentHandler(qrisService)
	billingHandler := handlers.NewBillingHandler(billingService)

	app.Get("/health", handlers.HealthCheck)

	api := app.Group("/api")

	// Auth
	api.Post("/login", authHandler.Login)
	api.Post("/refresh", authHandler.Refresh)
	api.Post("/logout", middleware.AuthMiddleware, authHandler.Logout)

	// Payment codes
	api.Post("/markets/:code/payment-codes",
		middleware.AuthMiddleware,
		middleware.RequirePermission(models.PermissionPaymentWrite),
		paymentHandler.GeneratePaymentCode,
	)

	// Billing administration
	billingGroup := api.Group("/admin/billing",
		middleware.AuthMiddleware,
		middleware.RequireSuperAdmin,
	)
	billingGroup.Post("/dues/run", billingHandler.RunDailyDues)
	billingGroup.Post("/invoices/run", billingHandler.RunAnnualInvoices)

	return scheduler.New(billingService, config.Location())
}
