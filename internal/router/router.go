package router

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/FACorreiaa/go-trip-planner/docs"

	appLogger "github.com/FACorreiaa/go-trip-planner/app/logger"
	"github.com/FACorreiaa/go-trip-planner/internal/api"
	"github.com/FACorreiaa/go-trip-planner/internal/api/auth"
	"github.com/FACorreiaa/go-trip-planner/internal/api/pricing"
	"github.com/FACorreiaa/go-trip-planner/internal/api/trip"
	tripChat "github.com/FACorreiaa/go-trip-planner/internal/api/trip_chat"
)

// Config contains dependencies needed for the router setup.
type Config struct {
	AuthHandler            *auth.AuthHandler
	PricingHandler         *pricing.Handler
	TripHandler            *trip.Handler
	ChatHandler            *tripChat.Handler
	AuthenticateMiddleware func(http.Handler) http.Handler
	RateLimitMiddleware    func(http.Handler) http.Handler
	HealthCheck            func(ctx context.Context) error
	AllowedOrigins         []string
	RequestTimeout         time.Duration
	Logger                 *slog.Logger
}

// SetupRouter builds the application router with server-wide middleware,
// public catalog and chat routes, and JWT-protected trip routes.
func SetupRouter(cfg *Config) chi.Router {
	r := chi.NewRouter()

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(appLogger.StructuredLogger(cfg.Logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.StripSlashes)
	r.Use(middleware.Timeout(timeout))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		if cfg.HealthCheck != nil {
			if err := cfg.HealthCheck(r.Context()); err != nil {
				cfg.Logger.WarnContext(r.Context(), "Health check failed", slog.Any("error", err))
				api.ErrorResponse(w, r, http.StatusServiceUnavailable, "Service unavailable")
				return
			}
		}
		api.WriteJSONResponse(w, r, http.StatusOK, api.Response{Success: true, Message: "ok"})
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.Route("/api/v1", func(r chi.Router) {
		if cfg.RateLimitMiddleware != nil {
			r.Use(cfg.RateLimitMiddleware)
		}

		// public
		r.Group(func(r chi.Router) {
			r.Post("/auth/register", cfg.AuthHandler.Register)
			r.Post("/auth/login", cfg.AuthHandler.Login)

			r.Get("/departures", cfg.PricingHandler.ListDepartures)
			r.Get("/departures/popular", cfg.PricingHandler.ListPopularDepartures)
			r.Get("/departures/region/{region}", cfg.PricingHandler.ListDeparturesByRegion)

			r.Get("/destinations/search", cfg.PricingHandler.SearchDestinations)
			r.Get("/destinations/popular", cfg.PricingHandler.ListPopularDestinations)
			r.Get("/destinations/regions", cfg.PricingHandler.ListDestinationsByRegion)

			r.Post("/chat", cfg.ChatHandler.Chat)
			r.Get("/chat/suggestions", cfg.ChatHandler.Suggestions)
		})

		// protected
		r.Group(func(r chi.Router) {
			r.Use(cfg.AuthenticateMiddleware)

			r.Post("/auth/logout", cfg.AuthHandler.Logout)
			r.Get("/auth/profile", cfg.AuthHandler.GetProfile)
			r.Put("/auth/profile", cfg.AuthHandler.UpdateProfile)

			r.Route("/trips", func(r chi.Router) {
				r.Get("/", cfg.TripHandler.ListTrips)
				r.Post("/generate", cfg.TripHandler.GenerateTrip)
				r.Route("/{tripID}", func(r chi.Router) {
					r.Get("/", cfg.TripHandler.GetTrip)
					r.Put("/", cfg.TripHandler.UpdateTrip)
					r.Delete("/", cfg.TripHandler.DeleteTrip)
					r.Get("/pdf", cfg.TripHandler.DownloadPDF)
					r.Post("/chat", cfg.TripHandler.ChatEdit)
				})
			})
		})
	})

	return r
}
