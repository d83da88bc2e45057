package trip

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	database "github.com/FACorreiaa/go-trip-planner/app/db"
	"github.com/FACorreiaa/go-trip-planner/app/observability/metrics"
	"github.com/FACorreiaa/go-trip-planner/internal/types"
)

var ErrTripNotFound = errors.New("trip not found")

const DefaultListLimit = 10

var _ Repository = (*RepositoryImpl)(nil)

// Repository is the trip store. Reads only see active trips owned by the user.
type Repository interface {
	CreateTrip(ctx context.Context, trip *types.Trip) (*types.Trip, error)
	ListTrips(ctx context.Context, userID uuid.UUID, limit int) ([]types.Trip, error)
	GetTrip(ctx context.Context, tripID, userID uuid.UUID) (*types.Trip, error)
	UpdateTrip(ctx context.Context, trip *types.Trip) (*types.Trip, error)
	SoftDeleteTrip(ctx context.Context, tripID, userID uuid.UUID) error
	GetTripStats(ctx context.Context, userID uuid.UUID) (*types.TripStats, error)
}

type RepositoryImpl struct {
	logger *slog.Logger
	db     database.Querier
}

func NewRepository(db database.Querier, logger *slog.Logger) *RepositoryImpl {
	return &RepositoryImpl{logger: logger, db: db}
}

const tripColumns = `id, user_id, destination, budget, travelers, duration, travel_style,
	departure_city, special_requirements, trip_data, status, created_at, updated_at`

func (r *RepositoryImpl) observe(ctx context.Context, op string, start time.Time, err error) {
	m := metrics.Get()
	attrs := metric.WithAttributes(attribute.String("db.operation", op), attribute.String("db.table", "trips"))
	m.DbQueryDurationSeconds.Record(ctx, time.Since(start).Seconds(), attrs)
	if err != nil && !errors.Is(err, ErrTripNotFound) {
		m.DbQueryErrorsTotal.Add(ctx, 1, attrs)
	}
}

func scanTrip(row pgx.Row) (*types.Trip, error) {
	var (
		t                   types.Trip
		travelStyle         *string
		departureCity       *string
		specialRequirements *string
		tripData            []byte
		status              string
	)
	if err := row.Scan(
		&t.ID, &t.UserID, &t.Destination, &t.Budget, &t.Travelers, &t.Duration, &travelStyle,
		&departureCity, &specialRequirements, &tripData, &status, &t.CreatedAt, &t.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if travelStyle != nil {
		t.TravelStyle = types.TravelStyle(*travelStyle)
	}
	if departureCity != nil {
		t.DepartureCity = *departureCity
	}
	if specialRequirements != nil {
		t.SpecialRequirements = *specialRequirements
	}
	t.Status = types.TripStatus(status)
	if len(tripData) > 0 {
		if err := json.Unmarshal(tripData, &t.TripData); err != nil {
			return nil, fmt.Errorf("failed to decode trip data for %s: %w", t.ID, err)
		}
	}
	return &t, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func (r *RepositoryImpl) CreateTrip(ctx context.Context, trip *types.Trip) (_ *types.Trip, err error) {
	ctx, span := otel.Tracer("TripRepository").Start(ctx, "CreateTrip", spanOpts("INSERT")...)
	defer span.End()
	defer func(start time.Time) { r.observe(ctx, "INSERT", start, err) }(time.Now())

	data, err := json.Marshal(trip.TripData)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "encode trip data")
		return nil, fmt.Errorf("failed to encode trip data: %w", err)
	}

	query := `
		INSERT INTO trips (user_id, destination, budget, travelers, duration, travel_style,
			departure_city, special_requirements, trip_data)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + tripColumns

	created, err := scanTrip(r.db.QueryRow(ctx, query,
		trip.UserID, trip.Destination, trip.Budget, trip.Travelers, trip.Duration,
		nullable(string(trip.TravelStyle)), nullable(trip.DepartureCity), nullable(trip.SpecialRequirements), data,
	))
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to insert trip", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "insert failed")
		return nil, fmt.Errorf("failed to insert trip: %w", err)
	}

	span.SetAttributes(attribute.String("trip.id", created.ID.String()))
	span.SetStatus(codes.Ok, "trip created")
	return created, nil
}

func (r *RepositoryImpl) ListTrips(ctx context.Context, userID uuid.UUID, limit int) (_ []types.Trip, err error) {
	ctx, span := otel.Tracer("TripRepository").Start(ctx, "ListTrips", spanOpts("SELECT")...)
	defer span.End()
	defer func(start time.Time) { r.observe(ctx, "SELECT", start, err) }(time.Now())

	if limit <= 0 {
		limit = DefaultListLimit
	}
	span.SetAttributes(attribute.String("user.id", userID.String()), attribute.Int("limit", limit))

	query := `SELECT ` + tripColumns + `
		FROM trips
		WHERE user_id = $1 AND status = 'active'
		ORDER BY created_at DESC
		LIMIT $2`

	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "query failed")
		return nil, fmt.Errorf("failed to query trips: %w", err)
	}
	defer rows.Close()

	trips := make([]types.Trip, 0)
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "scan failed")
			return nil, fmt.Errorf("failed to scan trip: %w", err)
		}
		trips = append(trips, *t)
	}
	if err = rows.Err(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "rows failed")
		return nil, fmt.Errorf("error iterating trips: %w", err)
	}

	span.SetAttributes(attribute.Int("trips.count", len(trips)))
	span.SetStatus(codes.Ok, "trips listed")
	return trips, nil
}

func (r *RepositoryImpl) GetTrip(ctx context.Context, tripID, userID uuid.UUID) (_ *types.Trip, err error) {
	ctx, span := otel.Tracer("TripRepository").Start(ctx, "GetTrip", spanOpts("SELECT")...)
	defer span.End()
	defer func(start time.Time) { r.observe(ctx, "SELECT", start, err) }(time.Now())
	span.SetAttributes(attribute.String("trip.id", tripID.String()))

	query := `SELECT ` + tripColumns + `
		FROM trips
		WHERE id = $1 AND user_id = $2 AND status = 'active'`

	t, err := scanTrip(r.db.QueryRow(ctx, query, tripID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			span.SetStatus(codes.Error, "not found")
			return nil, ErrTripNotFound
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "query failed")
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}
	span.SetStatus(codes.Ok, "trip found")
	return t, nil
}

func (r *RepositoryImpl) UpdateTrip(ctx context.Context, trip *types.Trip) (_ *types.Trip, err error) {
	ctx, span := otel.Tracer("TripRepository").Start(ctx, "UpdateTrip", spanOpts("UPDATE")...)
	defer span.End()
	defer func(start time.Time) { r.observe(ctx, "UPDATE", start, err) }(time.Now())
	span.SetAttributes(attribute.String("trip.id", trip.ID.String()))

	data, err := json.Marshal(trip.TripData)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to encode trip data: %w", err)
	}

	query := `
		UPDATE trips
		SET destination = $3, budget = $4, travelers = $5, duration = $6, travel_style = $7,
			departure_city = $8, special_requirements = $9, trip_data = $10, updated_at = NOW()
		WHERE id = $1 AND user_id = $2 AND status = 'active'
		RETURNING ` + tripColumns

	updated, err := scanTrip(r.db.QueryRow(ctx, query,
		trip.ID, trip.UserID, trip.Destination, trip.Budget, trip.Travelers, trip.Duration,
		nullable(string(trip.TravelStyle)), nullable(trip.DepartureCity), nullable(trip.SpecialRequirements), data,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			span.SetStatus(codes.Error, "not found")
			return nil, ErrTripNotFound
		}
		r.logger.ErrorContext(ctx, "Failed to update trip", slog.String("trip_id", trip.ID.String()), slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "update failed")
		return nil, fmt.Errorf("failed to update trip: %w", err)
	}
	span.SetStatus(codes.Ok, "trip updated")
	return updated, nil
}

func (r *RepositoryImpl) SoftDeleteTrip(ctx context.Context, tripID, userID uuid.UUID) (err error) {
	ctx, span := otel.Tracer("TripRepository").Start(ctx, "SoftDeleteTrip", spanOpts("UPDATE")...)
	defer span.End()
	defer func(start time.Time) { r.observe(ctx, "UPDATE", start, err) }(time.Now())
	span.SetAttributes(attribute.String("trip.id", tripID.String()))

	tag, err := r.db.Exec(ctx, `
		UPDATE trips SET status = 'deleted', updated_at = NOW()
		WHERE id = $1 AND user_id = $2 AND status = 'active'`, tripID, userID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "delete failed")
		return fmt.Errorf("failed to delete trip: %w", err)
	}
	if tag.RowsAffected() == 0 {
		span.SetStatus(codes.Error, "not found")
		return ErrTripNotFound
	}
	span.SetStatus(codes.Ok, "trip deleted")
	return nil
}

// GetTripStats counts every trip of the user, deleted ones included.
func (r *RepositoryImpl) GetTripStats(ctx context.Context, userID uuid.UUID) (_ *types.TripStats, err error) {
	ctx, span := otel.Tracer("TripRepository").Start(ctx, "GetTripStats", spanOpts("SELECT")...)
	defer span.End()
	defer func(start time.Time) { r.observe(ctx, "SELECT", start, err) }(time.Now())

	query := `
		SELECT COUNT(*),
			COUNT(*) FILTER (WHERE status = 'active'),
			COALESCE(AVG(budget), 0)::float8,
			MAX(created_at)
		FROM trips
		WHERE user_id = $1`

	var (
		stats types.TripStats
		last  *time.Time
	)
	if err = r.db.QueryRow(ctx, query, userID).Scan(&stats.TotalTrips, &stats.ActiveTrips, &stats.AverageBudget, &last); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "stats failed")
		return nil, fmt.Errorf("failed to get trip stats: %w", err)
	}
	stats.LastTripDate = last
	span.SetStatus(codes.Ok, "stats computed")
	return &stats, nil
}

func spanOpts(op string) []trace.SpanStartOption {
	return []trace.SpanStartOption{trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.operation", op),
		attribute.String("db.sql.table", "trips"),
	)}
}
