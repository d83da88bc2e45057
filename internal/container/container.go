package container

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	appCache "github.com/FACorreiaa/go-trip-planner/app/cache"
	database "github.com/FACorreiaa/go-trip-planner/app/db"
	appMiddleware "github.com/FACorreiaa/go-trip-planner/app/middleware"
	"github.com/FACorreiaa/go-trip-planner/config"
	"github.com/FACorreiaa/go-trip-planner/internal/api/auth"
	"github.com/FACorreiaa/go-trip-planner/internal/api/flights"
	"github.com/FACorreiaa/go-trip-planner/internal/api/pricing"
	"github.com/FACorreiaa/go-trip-planner/internal/api/trip"
	tripChat "github.com/FACorreiaa/go-trip-planner/internal/api/trip_chat"
	"github.com/FACorreiaa/go-trip-planner/internal/router"
)

// Container holds all application dependencies
type Container struct {
	Config         *config.Config
	Logger         *slog.Logger
	Pool           *pgxpool.Pool
	Redis          *redis.Client
	AuthHandler    *auth.AuthHandler
	PricingHandler *pricing.Handler
	TripHandler    *trip.Handler
	ChatHandler    *tripChat.Handler
}

// NewContainer connects to postgres (and redis when enabled) and builds the
// handlers. A redis failure downgrades the offer cache to memory.
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	dbConfig, err := database.NewDatabaseConfig(cfg, logger)
	if err != nil {
		logger.Error("Failed to generate database config", slog.Any("error", err))
		return nil, err
	}

	pool, err := database.Init(ctx, dbConfig.ConnectionURL, logger)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.Any("error", err))
		return nil, err
	}

	c := &Container{Config: cfg, Logger: logger, Pool: pool}

	var offerCache flights.OfferCache = flights.NewMemoryOfferCache(cfg.FlightAPI.CacheTTL)
	if cfg.Repositories.Redis.Enabled {
		client, err := appCache.NewRedisClient(ctx, cfg.Repositories.Redis)
		if err != nil {
			logger.Warn("Redis unavailable, using in-memory offer cache", slog.Any("error", err))
		} else {
			c.Redis = client
			offerCache = flights.NewRedisOfferCache(client, cfg.FlightAPI.CacheTTL, logger)
		}
	}

	var provider flights.Provider
	if cfg.FlightAPI.UseRealData {
		provider = flights.NewAmadeusProvider(cfg.FlightAPI, offerCache, logger)
	}
	synthesizer := trip.NewSynthesizer(cfg.FlightAPI, cfg.Planner, provider, logger)
	interpreter := tripChat.NewInterpreter()

	userRepo := auth.NewUserRepo(pool, logger)
	authService := auth.NewAuthService(userRepo, cfg.JWT, logger)
	c.AuthHandler = auth.NewAuthHandler(authService, logger)

	tripRepo := trip.NewRepository(pool, logger)
	tripService := trip.NewService(tripRepo, synthesizer, interpreter, logger)
	c.TripHandler = trip.NewTripHandler(tripService, logger)

	c.PricingHandler = pricing.NewPricingHandler(logger)
	c.ChatHandler = tripChat.NewChatHandler(interpreter, logger)

	return c, nil
}

// Router wires the handlers into the HTTP routes.
func (c *Container) Router() http.Handler {
	return router.SetupRouter(&router.Config{
		AuthHandler:            c.AuthHandler,
		PricingHandler:         c.PricingHandler,
		TripHandler:            c.TripHandler,
		ChatHandler:            c.ChatHandler,
		AuthenticateMiddleware: auth.Authenticate(c.Logger, c.Config.JWT),
		RateLimitMiddleware:    appMiddleware.RateLimit(c.Config.RateLimit, c.Logger),
		HealthCheck:            c.HealthCheck,
		AllowedOrigins:         c.Config.CORS.AllowedOrigins,
		RequestTimeout:         c.Config.Server.Timeout,
		Logger:                 c.Logger,
	})
}

// HealthCheck pings postgres and, when connected, redis.
func (c *Container) HealthCheck(ctx context.Context) error {
	var errs []error
	if c.Pool != nil {
		errs = append(errs, c.Pool.Ping(ctx))
	}
	if c.Redis != nil {
		errs = append(errs, appCache.HealthCheck(ctx, c.Redis))
	}
	return errors.Join(errs...)
}

// Close releases all resources held by the container
func (c *Container) Close() {
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.Logger.Warn("Failed to close redis client", slog.Any("error", err))
		}
	}
	if c.Pool != nil {
		c.Pool.Close()
	}
}

// WaitForDB waits for the database to be ready
func (c *Container) WaitForDB(ctx context.Context) bool {
	return database.WaitForDB(ctx, c.Pool, c.Logger)
}
