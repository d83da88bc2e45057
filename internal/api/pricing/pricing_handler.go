package pricing

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/FACorreiaa/go-trip-planner/internal/api"
	"github.com/FACorreiaa/go-trip-planner/internal/types"
)

// Handler serves the read-only departure city and destination listings.
type Handler struct {
	logger *slog.Logger
}

func NewPricingHandler(logger *slog.Logger) *Handler {
	return &Handler{logger: logger}
}

type departureListResponse struct {
	Success bool                  `json:"success"`
	Data    []types.DepartureCity `json:"data"`
	Total   int                   `json:"total"`
	Region  string                `json:"region,omitempty"`
}

// ListDepartures godoc
// @Summary      List departure cities
// @Tags         departures
// @Produce      json
// @Success      200 {object} departureListResponse
// @Router       /departures [get]
func (h *Handler) ListDepartures(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("PricingHandler").Start(r.Context(), "ListDepartures")
	defer span.End()

	cities := DepartureCities()
	h.logger.DebugContext(ctx, "Listing departure cities", slog.Int("count", len(cities)))
	span.SetStatus(codes.Ok, "Departure cities listed")
	api.WriteJSONResponse(w, r, http.StatusOK, departureListResponse{Success: true, Data: cities, Total: len(cities)})
}

// ListPopularDepartures godoc
// @Summary      List hub departure cities
// @Tags         departures
// @Produce      json
// @Param        limit query string false "Maximum results or 'all'" default(10)
// @Success      200 {object} departureListResponse
// @Router       /departures/popular [get]
func (h *Handler) ListPopularDepartures(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("PricingHandler").Start(r.Context(), "ListPopularDepartures")
	defer span.End()

	var limit int
	if raw := r.URL.Query().Get("limit"); strings.EqualFold(raw, "all") {
		limit = 0
	} else {
		limit = api.QueryInt(r, "limit", DefaultPopularDepartureLimit)
	}
	span.SetAttributes(attribute.Int("limit", limit))

	cities := PopularDepartureCities(limit)
	h.logger.DebugContext(ctx, "Listing popular departure cities", slog.Int("count", len(cities)))
	span.SetStatus(codes.Ok, "Popular departure cities listed")
	api.WriteJSONResponse(w, r, http.StatusOK, departureListResponse{Success: true, Data: cities, Total: len(cities)})
}

// ListDeparturesByRegion godoc
// @Summary      List departure cities in a region
// @Tags         departures
// @Produce      json
// @Param        region path string true "Region tag, e.g. europe or north_america"
// @Success      200 {object} departureListResponse
// @Router       /departures/region/{region} [get]
func (h *Handler) ListDeparturesByRegion(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("PricingHandler").Start(r.Context(), "ListDeparturesByRegion")
	defer span.End()

	region := chi.URLParam(r, "region")
	span.SetAttributes(attribute.String("region", region))

	cities := DepartureCitiesByRegion(region)
	h.logger.DebugContext(ctx, "Listing departure cities by region",
		slog.String("region", region), slog.Int("count", len(cities)))
	span.SetStatus(codes.Ok, "Departure cities listed")
	api.WriteJSONResponse(w, r, http.StatusOK, departureListResponse{
		Success: true, Data: cities, Total: len(cities), Region: region,
	})
}

// SearchDestinations godoc
// @Summary      Autocomplete destinations
// @Tags         destinations
// @Produce      json
// @Param        q query string false "Search term"
// @Param        limit query int false "Maximum results" default(10)
// @Param        popular_only query bool false "Only popular destinations"
// @Success      200 {object} api.DataResponse{data=types.DestinationSearchResponse}
// @Router       /destinations/search [get]
func (h *Handler) SearchDestinations(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("PricingHandler").Start(r.Context(), "SearchDestinations")
	defer span.End()
	l := h.logger.With(slog.String("handler", "SearchDestinations"))

	q := r.URL.Query().Get("q")
	limit := api.QueryInt(r, "limit", DefaultSearchLimit)
	popularOnly := api.QueryBool(r, "popular_only")
	span.SetAttributes(
		attribute.String("query", q),
		attribute.Int("limit", limit),
		attribute.Bool("popular_only", popularOnly),
	)

	result := SearchDestinations(q, limit, popularOnly)
	l.DebugContext(ctx, "Destination search finished", slog.String("query", q), slog.Int("total", result.Total))
	span.SetStatus(codes.Ok, "Destinations searched")
	api.SuccessResponse(w, r, http.StatusOK, result)
}

// ListPopularDestinations godoc
// @Summary      List popular destinations
// @Tags         destinations
// @Produce      json
// @Param        limit query int false "Maximum results" default(20)
// @Param        region query string false "Region display name"
// @Success      200 {object} api.DataResponse{data=types.DestinationSearchResponse}
// @Router       /destinations/popular [get]
func (h *Handler) ListPopularDestinations(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("PricingHandler").Start(r.Context(), "ListPopularDestinations")
	defer span.End()

	limit := api.QueryInt(r, "limit", DefaultPopularLimit)
	region := r.URL.Query().Get("region")
	span.SetAttributes(attribute.Int("limit", limit), attribute.String("region", region))

	list := PopularDestinations(limit, region)
	h.logger.DebugContext(ctx, "Listing popular destinations", slog.Int("count", len(list)))
	span.SetStatus(codes.Ok, "Popular destinations listed")
	api.SuccessResponse(w, r, http.StatusOK, types.DestinationSearchResponse{Destinations: list, Total: len(list)})
}

// ListDestinationsByRegion godoc
// @Summary      Destinations grouped by region
// @Tags         destinations
// @Produce      json
// @Success      200 {object} api.DataResponse
// @Router       /destinations/regions [get]
func (h *Handler) ListDestinationsByRegion(w http.ResponseWriter, r *http.Request) {
	_, span := otel.Tracer("PricingHandler").Start(r.Context(), "ListDestinationsByRegion")
	defer span.End()

	grouped := DestinationsByRegion()
	span.SetAttributes(attribute.Int("regions", len(grouped)))
	span.SetStatus(codes.Ok, "Destinations grouped")
	api.SuccessResponse(w, r, http.StatusOK, grouped)
}
