// Package main is the entry point for the application.
// It initializes all dependencies, sets up the HTTP server and the
// billing scheduler, and starts the application.
package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"simpasar/internal/config"
	"simpasar/internal/repositories"
	"simpasar/internal/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	// Load environment variables
	config.LoadEnv()

	// Initialize databases (PostgreSQL + Redis)
	if err := repositories.InitDB(); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	sqlDB, err := repositories.DB.DB()
	if err != nil {
		log.Fatalf("Failed to get database instance: %v", err)
	}
	if err := sqlDB.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}
	log.Println("✅ Successfully connected to database")

	defer func() {
		if err := sqlDB.Close(); err != nil {
			log.Printf("⚠️ Failed to close database connection: %v", err)
		}
		if repositories.CacheService != nil {
			if err := repositories.CacheService.Close(); err != nil {
				log.Printf("⚠️ Failed to close Redis connection: %v", err)
			}
		}
	}()

	// Create Fiber app
	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.GetEnv("CORS_ORIGINS", "http://localhost:5173"),
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowCredentials: true,
	}))

	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	// The payment-code endpoint mints a fresh payload per request; rate
	// limit it so a misbehaving client cannot spin the transformer.
	app.Use("/api/markets", limiter.New(limiter.Config{
		Max:        60,
		Expiration: time.Minute,
	}))

	// Routes + billing scheduler
	sched := routes.SetupRoutes(app, repositories.DB)
	if err := sched.Start(config.DailyDuesCronSpec(), config.AnnualInvoiceCronSpec()); err != nil {
		log.Fatalf("Failed to start billing scheduler: %v", err)
	}
	defer sched.Stop()

	port := config.GetEnv("PORT", "8080")
	go func() {
		log.Printf("✅ Listening on :%s", port)
		if err := app.Listen(":" + port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown: stop taking requests, then stop the scheduler.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	if err := app.Shutdown(); err != nil {
		log.Printf("⚠️ Server shutdown error: %v", err)
	}
}
