// Package api builds the HTTP surface of the notes service.
package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/notekeep/notes-api/internal/api/handler"
	"github.com/notekeep/notes-api/internal/api/middleware"
	"github.com/notekeep/notes-api/internal/core/service"
	mongodb "github.com/notekeep/notes-api/internal/infrastructure/db/mongo"
	redisdb "github.com/notekeep/notes-api/internal/infrastructure/db/redis"
	"github.com/notekeep/notes-api/internal/token"
)

// RouterConfig carries the knobs the router needs beyond its connections.
type RouterConfig struct {
	Issuer          *token.Issuer
	RateLimit       int
	RateLimitWindow time.Duration
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg RouterConfig, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("notes"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	noteRepo := mongodb.NewNoteRepository(db)

	authService := service.NewAuthService(userRepo, cfg.Issuer, log)
	noteService := service.NewNoteService(noteRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	noteHandler := handler.NewNoteHandler(noteService)

	authGate := middleware.Auth(cfg.Issuer)
	limiter := redisdb.NewLoginLimiter(rdb, cfg.RateLimit, cfg.RateLimitWindow)
	credentialLimit := middleware.RateLimit(limiter, log)

	// --- API routes ---
	g := e.Group("/api")

	g.POST("/signup", authHandler.Signup, credentialLimit)
	g.POST("/signin", authHandler.Signin, credentialLimit)
	g.GET("/profile", authHandler.Profile, authGate)

	g.POST("/notes", noteHandler.Create, authGate)
	g.GET("/notes", noteHandler.List, authGate)
	g.GET("/notes/search/:query", noteHandler.Search, authGate)
	g.GET("/notes/:id", noteHandler.Get, authGate)
	g.PUT("/notes/:id", noteHandler.Update, authGate)
	g.DELETE("/notes/:id", noteHandler.Delete, authGate)
	g.PATCH("/notes/:id/pin", noteHandler.TogglePin, authGate)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
