package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"radsafe/internal/api"
	"radsafe/internal/nav"
	"radsafe/internal/profile"
	"radsafe/internal/session"
	"radsafe/internal/store"
	"radsafe/internal/telemetry"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("skipping .env: %v", err)
	}

	location := mustLoadLocation(getEnv("TZ", "UTC"))
	time.Local = location

	secretKey := getEnv("SECRET_KEY", "change_me_in_production")
	dbPath := getEnv("DB_PATH", filepath.Join("data", "radsafe.db"))
	port := getEnv("PORT", "8080")
	profileServiceURL := getEnv("PROFILE_SERVICE_URL", "")
	cookieSecure := getEnv("COOKIE_SECURE", "") == "true"

	database, err := store.OpenSQLite(dbPath)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	persisted := store.New(database)
	profileClient := profile.NewClient(profileServiceURL)
	sessions := session.NewManager(persisted, profileClient)
	router := nav.NewRouter()
	reconciler := profile.NewReconciler(profileClient, sessions, router)
	readings := telemetry.NewService()
	alerts := telemetry.NewAlertFeed()

	handler := api.NewHandler(sessions, router, reconciler, readings, alerts, secretKey, cookieSecure)

	app := fiber.New(fiber.Config{
		AppName:               "RadSafe",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	api.RegisterRoutes(app, handler)

	router.StartSplashTimer()

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("RadSafe listening on http://0.0.0.0:%s (db: %s, tz: %s)", port, dbPath, location.String())
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

func mustLoadLocation(name string) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("invalid TZ %q, falling back to UTC", name)
		return time.UTC
	}
	return location
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
