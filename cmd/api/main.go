package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"missing-person-tracker/internal/config"
	"missing-person-tracker/internal/database/migrations"
	"missing-person-tracker/internal/handler"
	"missing-person-tracker/internal/middleware"
	"missing-person-tracker/internal/pkg/i18n"
	"missing-person-tracker/internal/pkg/logger"
	"missing-person-tracker/internal/realtime"
	"missing-person-tracker/internal/repository"
	"missing-person-tracker/internal/service"
)

func main() {
	envErr := godotenv.Load()

	cfg := config.Load()
	logger.Init(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	if envErr != nil {
		logrus.Info("No .env file found, using environment variables")
	}

	if cfg.JWTSecret == "" {
		logrus.Fatal("JWT_SECRET is required")
	}

	if cfg.LocalesPath != "" {
		if err := i18n.LoadTranslations(cfg.LocalesPath); err != nil {
			logrus.WithError(err).Warn("Failed to load locale overrides")
		}
	}

	db, err := config.NewPostgresDB(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to connect to database")
	}
	defer db.Close()

	if cfg.AutoMigrate {
		applied, err := migrations.Apply(context.Background(), db)
		if err != nil {
			logrus.WithError(err).Fatal("Failed to apply migrations")
		}
		logrus.WithField("files", applied).Info("Migrations applied")
	}

	redis, err := config.NewRedisClient(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to connect to Redis")
	}
	defer redis.Close()

	minioClient, err := config.NewMinIOClient(cfg)
	if err != nil {
		logrus.WithError(err).Warn("Failed to connect to MinIO (photo upload will not work)")
		minioClient = nil
	}

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, redis, minioClient, cfg)
	handlers := handler.NewHandlers(services, db)

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler,
		BodyLimit:    12 << 20,
	})

	app.Use(recover.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/health"
		},
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	}))

	setupRoutes(app, handlers, services)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	hub := realtime.NewHub()
	go hub.Run(ctx)
	go func() {
		if err := realtime.Subscribe(ctx, redis, hub); err != nil {
			logrus.WithError(err).Error("Location updates subscription ended")
		}
	}()

	wsServer := realtime.NewServer(cfg, realtime.NewHandler(hub, services.Auth, cfg.CORSOrigins))
	go func() {
		logrus.WithFields(logrus.Fields{
			"port": cfg.WebSocketPort,
			"path": cfg.WebSocketPath,
		}).Info("Websocket server starting")
		if err := wsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.WithError(err).Error("Websocket server stopped")
		}
	}()

	go func() {
		logrus.WithField("port", cfg.Port).Info("Server starting")
		if err := app.Listen(":" + cfg.Port); err != nil {
			logrus.WithError(err).Fatal("Failed to start server")
		}
	}()

	<-ctx.Done()
	logrus.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := wsServer.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Warn("Websocket server shutdown")
	}
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		logrus.WithError(err).Warn("Server shutdown")
	}
}

func setupRoutes(app *fiber.App, h *handler.Handlers, services *service.Services) {
	app.Get("/health", h.Health.Check)

	requireAuth := middleware.AuthRequired(services.Auth)
	requireAdmin := middleware.AdminRequired()

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", h.Auth.Register)
	auth.Post("/login", h.Auth.Login)
	auth.Get("/me", requireAuth, h.Auth.Me)

	cases := api.Group("/missing-persons")
	cases.Get("/", h.MissingPerson.List)
	cases.Post("/", requireAuth, h.MissingPerson.Create)
	cases.Get("/my-reports", requireAuth, h.MissingPerson.MyReports)
	cases.Get("/:id", h.MissingPerson.Get)
	cases.Put("/:id", requireAuth, h.MissingPerson.Update)
	cases.Delete("/:id", requireAuth, h.MissingPerson.Delete)
	cases.Get("/:id/status", h.MissingPerson.StatusHistory)
	cases.Put("/:id/status", requireAuth, h.MissingPerson.UpdateStatus)
	cases.Post("/:id/photo", requireAuth, h.MissingPerson.UploadPhoto)

	comments := api.Group("/comments")
	comments.Get("/", h.Comment.List)
	comments.Post("/", requireAuth, h.Comment.Create)

	notifications := api.Group("/notifications", requireAuth)
	notifications.Get("/", h.Notification.List)
	notifications.Put("/", h.Notification.MarkRead)
	notifications.Get("/unread-count", h.Notification.UnreadCount)

	location := api.Group("/location", requireAuth)
	location.Post("/update", h.Location.Update)
	location.Get("/history", h.Location.History)
	location.Get("/users", requireAdmin, h.Location.ActiveUsers)

	admin := api.Group("/admin", requireAuth, requireAdmin)
	admin.Get("/analytics", h.Analytics.Dashboard)
}
