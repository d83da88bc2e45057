package trip

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"

	"github.com/FACorreiaa/go-trip-planner/app/observability/metrics"
	tripChat "github.com/FACorreiaa/go-trip-planner/internal/api/trip_chat"
	"github.com/FACorreiaa/go-trip-planner/internal/types"
)

var _ Service = (*ServiceImpl)(nil)

// Planner produces trip plans. *Synthesizer implements it.
type Planner interface {
	Synthesize(ctx context.Context, req types.TripRequest) (*types.TripPlan, error)
}

// Service defines the trip business operations.
type Service interface {
	GenerateTrip(ctx context.Context, userID uuid.UUID, req types.TripRequest) (*types.Trip, error)
	ListTrips(ctx context.Context, userID uuid.UUID, limit int) (*types.TripListResponse, error)
	GetTrip(ctx context.Context, tripID, userID uuid.UUID) (*types.Trip, error)
	UpdateTrip(ctx context.Context, tripID, userID uuid.UUID, req types.TripRequest) (*types.Trip, error)
	DeleteTrip(ctx context.Context, tripID, userID uuid.UUID) error
	ChatEdit(ctx context.Context, tripID, userID uuid.UUID, message string) (*types.ChatResult, *types.Trip, error)
}

type ServiceImpl struct {
	logger      *slog.Logger
	repo        Repository
	planner     Planner
	interpreter *tripChat.Interpreter
}

func NewService(repo Repository, planner Planner, interpreter *tripChat.Interpreter, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger:      logger,
		repo:        repo,
		planner:     planner,
		interpreter: interpreter,
	}
}

func tripFromRequest(userID uuid.UUID, req types.TripRequest, plan *types.TripPlan) *types.Trip {
	return &types.Trip{
		UserID:              userID,
		Destination:         plan.Destination,
		Budget:              req.Budget,
		Travelers:           req.Travelers,
		Duration:            req.Duration,
		TravelStyle:         req.TravelStyle,
		DepartureCity:       plan.DepartureCity,
		SpecialRequirements: req.SpecialRequirements,
		TripData:            *plan,
	}
}

// GenerateTrip synthesizes a plan and stores it for the user.
func (s *ServiceImpl) GenerateTrip(ctx context.Context, userID uuid.UUID, req types.TripRequest) (*types.Trip, error) {
	ctx, span := otel.Tracer("TripService").Start(ctx, "GenerateTrip")
	defer span.End()
	l := s.logger.With(slog.String("method", "GenerateTrip"), slog.String("userID", userID.String()))

	plan, err := s.planner.Synthesize(ctx, req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "synthesis failed")
		return nil, err
	}

	created, err := s.repo.CreateTrip(ctx, tripFromRequest(userID, req, plan))
	if err != nil {
		l.ErrorContext(ctx, "Failed to store trip", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "store failed")
		return nil, fmt.Errorf("error storing trip: %w", err)
	}

	l.InfoContext(ctx, "Trip generated", slog.String("tripID", created.ID.String()), slog.String("destination", created.Destination))
	span.SetAttributes(attribute.String("trip.id", created.ID.String()))
	span.SetStatus(codes.Ok, "trip generated")
	return created, nil
}

// ListTrips returns the user's most recent active trips and their statistics.
func (s *ServiceImpl) ListTrips(ctx context.Context, userID uuid.UUID, limit int) (*types.TripListResponse, error) {
	ctx, span := otel.Tracer("TripService").Start(ctx, "ListTrips")
	defer span.End()
	l := s.logger.With(slog.String("method", "ListTrips"), slog.String("userID", userID.String()))

	trips, err := s.repo.ListTrips(ctx, userID, limit)
	if err != nil {
		l.ErrorContext(ctx, "Failed to list trips", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "list failed")
		return nil, fmt.Errorf("error listing trips: %w", err)
	}

	stats, err := s.repo.GetTripStats(ctx, userID)
	if err != nil {
		l.ErrorContext(ctx, "Failed to compute trip stats", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "stats failed")
		return nil, fmt.Errorf("error computing trip stats: %w", err)
	}

	span.SetStatus(codes.Ok, "trips listed")
	return &types.TripListResponse{Trips: trips, Stats: *stats}, nil
}

func (s *ServiceImpl) GetTrip(ctx context.Context, tripID, userID uuid.UUID) (*types.Trip, error) {
	ctx, span := otel.Tracer("TripService").Start(ctx, "GetTrip")
	defer span.End()

	t, err := s.repo.GetTrip(ctx, tripID, userID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "get failed")
		return nil, fmt.Errorf("error fetching trip: %w", err)
	}
	span.SetStatus(codes.Ok, "trip fetched")
	return t, nil
}

// UpdateTrip regenerates the plan from the new request and replaces the stored one.
func (s *ServiceImpl) UpdateTrip(ctx context.Context, tripID, userID uuid.UUID, req types.TripRequest) (*types.Trip, error) {
	ctx, span := otel.Tracer("TripService").Start(ctx, "UpdateTrip")
	defer span.End()
	l := s.logger.With(slog.String("method", "UpdateTrip"), slog.String("tripID", tripID.String()))

	if _, err := s.repo.GetTrip(ctx, tripID, userID); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "lookup failed")
		return nil, fmt.Errorf("error fetching trip: %w", err)
	}

	plan, err := s.planner.Synthesize(ctx, req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "synthesis failed")
		return nil, err
	}

	t := tripFromRequest(userID, req, plan)
	t.ID = tripID
	updated, err := s.repo.UpdateTrip(ctx, t)
	if err != nil {
		l.ErrorContext(ctx, "Failed to update trip", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "update failed")
		return nil, fmt.Errorf("error updating trip: %w", err)
	}

	l.InfoContext(ctx, "Trip regenerated")
	span.SetStatus(codes.Ok, "trip updated")
	return updated, nil
}

func (s *ServiceImpl) DeleteTrip(ctx context.Context, tripID, userID uuid.UUID) error {
	ctx, span := otel.Tracer("TripService").Start(ctx, "DeleteTrip")
	defer span.End()

	if err := s.repo.SoftDeleteTrip(ctx, tripID, userID); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "delete failed")
		return fmt.Errorf("error deleting trip: %w", err)
	}
	s.logger.InfoContext(ctx, "Trip deleted", slog.String("tripID", tripID.String()))
	span.SetStatus(codes.Ok, "trip deleted")
	return nil
}

// ChatEdit interprets message against a stored trip. When the edit targets a
// day, the patch is merged into the plan and persisted; clarifying replies
// leave the trip untouched and return it as stored.
func (s *ServiceImpl) ChatEdit(ctx context.Context, tripID, userID uuid.UUID, message string) (*types.ChatResult, *types.Trip, error) {
	ctx, span := otel.Tracer("TripService").Start(ctx, "ChatEdit")
	defer span.End()
	l := s.logger.With(slog.String("method", "ChatEdit"), slog.String("tripID", tripID.String()))

	stored, err := s.repo.GetTrip(ctx, tripID, userID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "lookup failed")
		return nil, nil, fmt.Errorf("error fetching trip: %w", err)
	}

	intent, result := s.interpreter.Process(message, &stored.TripData)
	span.SetAttributes(attribute.String("chat.verb", string(intent.Verb)))
	metrics.Get().ChatRequestsTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("verb", string(intent.Verb)),
		attribute.Bool("applied", result.DayModified != nil),
	))
	if result.DayModified == nil {
		span.SetStatus(codes.Ok, "clarification")
		return &result, stored, nil
	}

	stored.TripData = tripChat.MergeDayActivities(stored.TripData, *result.DayModified, result.UpdatedActivities)
	updated, err := s.repo.UpdateTrip(ctx, stored)
	if err != nil {
		l.ErrorContext(ctx, "Failed to persist chat edit", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "update failed")
		return nil, nil, fmt.Errorf("error saving chat edit: %w", err)
	}

	l.InfoContext(ctx, "Chat edit saved", slog.Int("day", *result.DayModified), slog.String("verb", string(intent.Verb)))
	span.SetStatus(codes.Ok, "chat edit saved")
	return &result, updated, nil
}
