package trip

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"

	"github.com/FACorreiaa/go-trip-planner/app/observability/metrics"
	"github.com/FACorreiaa/go-trip-planner/config"
	"github.com/FACorreiaa/go-trip-planner/internal/api/flights"
	"github.com/FACorreiaa/go-trip-planner/internal/api/pricing"
	"github.com/FACorreiaa/go-trip-planner/internal/types"
)

var ErrTripGenerationFailed = errors.New("trip generation failed")

const (
	maxPlannedDays     = 7
	defaultPlannedDays = 5

	accommodationShare = 0.45
	activitiesShare    = 0.30
	foodShare          = 0.15
	transportShare     = 0.10

	defaultProviderTimeout = 10 * time.Second
	defaultSearchLeadDays  = 7
)

// Randomizer is the source of randomness for destination, category, title and
// cost picks. *rand.Rand satisfies it.
type Randomizer interface {
	IntN(n int) int
	Float64() float64
}

// globalRand uses the goroutine-safe top-level math/rand/v2 functions.
type globalRand struct{}

func (globalRand) IntN(n int) int   { return rand.IntN(n) }
func (globalRand) Float64() float64 { return rand.Float64() }

// Synthesizer turns a TripRequest into a TripPlan.
type Synthesizer struct {
	logger           *slog.Logger
	provider         flights.Provider
	useRealData      bool
	providerTimeout  time.Duration
	searchLeadDays   int
	defaultDeparture string
	rng              Randomizer
	now              func() time.Time
}

type SynthesizerOption func(*Synthesizer)

func WithRandomizer(r Randomizer) SynthesizerOption {
	return func(s *Synthesizer) { s.rng = r }
}

func WithClock(now func() time.Time) SynthesizerOption {
	return func(s *Synthesizer) { s.now = now }
}

// NewSynthesizer wires the live flight provider according to cfg. provider may
// be nil, in which case only simulated pricing is used.
func NewSynthesizer(cfg config.FlightAPIConfig, planner config.PlannerConfig, provider flights.Provider, logger *slog.Logger, opts ...SynthesizerOption) *Synthesizer {
	s := &Synthesizer{
		logger:           logger,
		provider:         provider,
		useRealData:      cfg.UseRealData,
		providerTimeout:  cfg.Timeout,
		searchLeadDays:   cfg.SearchLeadDays,
		defaultDeparture: planner.DefaultDepartureCity,
		rng:              globalRand{},
		now:              time.Now,
	}
	if s.providerTimeout <= 0 {
		s.providerTimeout = defaultProviderTimeout
	}
	if s.searchLeadDays <= 0 {
		s.searchLeadDays = defaultSearchLeadDays
	}
	if s.defaultDeparture == "" {
		s.defaultDeparture = pricing.DefaultDepartureCity
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Synthesize builds a plan. Every failure, including a panic inside the
// pipeline, is reported as ErrTripGenerationFailed.
func (s *Synthesizer) Synthesize(ctx context.Context, req types.TripRequest) (plan *types.TripPlan, err error) {
	ctx, span := otel.Tracer("TripSynthesizer").Start(ctx, "Synthesize")
	defer span.End()
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			plan = nil
			err = fmt.Errorf("%w: %v", ErrTripGenerationFailed, r)
		}
		m := metrics.Get()
		if err != nil {
			s.logger.ErrorContext(ctx, "Trip generation failed", slog.Any("error", err))
			span.RecordError(err)
			span.SetStatus(codes.Error, "trip generation failed")
			m.TripGenerationFailuresTotal.Add(ctx, 1)
			return
		}
		m.TripsGeneratedTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("data_source", string(plan.DataSource))))
		m.TripGenerationDurationSeconds.Record(ctx, time.Since(start).Seconds())
		span.SetStatus(codes.Ok, "trip generated")
	}()

	if req.Budget <= 0 || math.IsNaN(req.Budget) || math.IsInf(req.Budget, 0) {
		return nil, fmt.Errorf("%w: budget must be positive", ErrTripGenerationFailed)
	}
	if req.Budget > types.MaxBudget {
		return nil, fmt.Errorf("%w: budget exceeds %.0f", ErrTripGenerationFailed, types.MaxBudget)
	}

	destination := strings.TrimSpace(req.Destination)
	if destination == "" {
		destination = destinationPool[s.rng.IntN(len(destinationPool))]
	}
	departure := strings.TrimSpace(req.DepartureCity)
	if departure == "" {
		departure = s.defaultDeparture
	}
	travelers := min(types.MaxTravelers, types.LowerBound(req.Travelers, 1))
	asOf := s.now()

	span.SetAttributes(
		attribute.String("trip.destination", destination),
		attribute.String("trip.departure", departure),
		attribute.Int("trip.travelers", travelers),
	)

	options := s.flightOptions(ctx, destination, departure, travelers, asOf)
	flightCost := pricing.CheapestCost(options) * travelers
	allocation := Allocate(req.Budget, flightCost)

	activities := s.activities(CategoriesForStyle(req.TravelStyle), allocation.Activities, PlannedDays(req.Duration))

	plan = &types.TripPlan{
		Destination:          destination,
		DepartureCity:        departure,
		Duration:             req.Duration,
		Travelers:            req.Travelers,
		BudgetAllocation:     allocation,
		FlightOptions:        pricing.Annotate(options, req.Budget, travelers),
		AccommodationOptions: accommodations(destination, allocation.Accommodation),
		Activities:           activities,
		TotalActivitiesCost:  totalCost(activities),
		FlightInsights:       pricing.Insights(destination, asOf),
		Recommendations:      defaultRecommendations,
		GeneratedAt:          asOf.UTC(),
		DataSource:           dataSource(options),
	}

	s.logger.InfoContext(ctx, "Trip plan generated",
		slog.String("destination", destination),
		slog.String("data_source", string(plan.DataSource)),
		slog.Int("days", len(activities)),
		slog.Bool("over_budget", allocation.OverBudget))
	return plan, nil
}

// flightOptions asks the live provider when enabled and falls back to the
// simulated generator on any unavailable outcome.
func (s *Synthesizer) flightOptions(ctx context.Context, destination, departure string, travelers int, asOf time.Time) []types.FlightOption {
	if s.useRealData && s.provider != nil && s.provider.Configured() {
		searchCtx, cancel := context.WithTimeout(ctx, s.providerTimeout)
		defer cancel()

		date := asOf.AddDate(0, 0, s.searchLeadDays).Format(time.DateOnly)
		res := s.provider.SearchOffers(searchCtx, departure, destination, date, travelers)
		if res.Available() {
			return res.Offers
		}

		reason := "unavailable"
		if res.Reason != nil {
			reason = res.Reason.Error()
		}
		s.logger.WarnContext(ctx, "Live flight search unavailable, using simulated pricing",
			slog.String("destination", destination), slog.String("reason", reason))
		metrics.Get().FlightFallbacksTotal.Add(ctx, 1)
	}
	return pricing.GenerateFlightOptions(destination, departure, asOf)
}

// PlannedDays is the number of itinerary days for a duration string.
func PlannedDays(duration string) int {
	return min(maxPlannedDays, types.LowerBound(duration, defaultPlannedDays))
}

// Allocate splits what is left after flights. When flights alone exceed the
// budget every other share is zero and the shortfall is reported.
func Allocate(budget float64, flightCost int) types.BudgetAllocation {
	remaining := budget - float64(flightCost)
	alloc := types.BudgetAllocation{Flights: flightCost}
	if remaining < 0 {
		alloc.OverBudget = true
		alloc.Shortfall = int(math.Ceil(-remaining))
		return alloc
	}
	alloc.Accommodation = int(math.Floor(remaining * accommodationShare))
	alloc.Activities = int(math.Floor(remaining * activitiesShare))
	alloc.Food = int(math.Floor(remaining * foodShare))
	alloc.Transport = int(math.Floor(remaining * transportShare))
	return alloc
}

func accommodations(destination string, allocation int) []types.AccommodationOption {
	out := make([]types.AccommodationOption, 0, len(accommodationTemplates))
	for _, t := range accommodationTemplates {
		opt := t.option
		opt.Cost = int(math.Floor(float64(allocation) * t.multiplier))
		opt.Location = fmt.Sprintf("%s, %s", t.option.Location, destination)
		opt.Amenities = append([]string(nil), t.option.Amenities...)
		opt.Included = append([]string(nil), t.option.Included...)
		opt.Facilities = append([]string(nil), t.option.Facilities...)
		out = append(out, opt)
	}
	return out
}

func (s *Synthesizer) activities(categories []string, budget, days int) []types.Activity {
	out := make([]types.Activity, 0, days)
	perDay := float64(budget) / float64(days)
	for day := 1; day <= days; day++ {
		category := categories[s.rng.IntN(len(categories))]
		titles := titlesFor(category)
		out = append(out, types.Activity{
			Day:      day,
			Title:    titles[s.rng.IntN(len(titles))],
			Cost:     int(math.Floor(perDay * (0.5 + s.rng.Float64()))),
			Category: category,
		})
	}
	return out
}

func totalCost(activities []types.Activity) int {
	sum := 0
	for _, a := range activities {
		sum += a.Cost
	}
	return sum
}

func dataSource(options []types.FlightOption) types.DataSource {
	for _, o := range options {
		if o.IsRealData {
			return types.DataSourceRealAPI
		}
	}
	return types.DataSourceSimulated
}
