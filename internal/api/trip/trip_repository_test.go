package trip

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/go-trip-planner/internal/types"
)

var tripCols = []string{
	"id", "user_id", "destination", "budget", "travelers", "duration", "travel_style",
	"departure_city", "special_requirements", "trip_data", "status", "created_at", "updated_at",
}

func strPtr(s string) *string { return &s }

func newMockRepo(t *testing.T) (*RepositoryImpl, pgxmock.PgxPoolIface) {
	t.Helper()
	pool, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return NewRepository(pool, discardLogger()), pool
}

func storedTrip(t *testing.T, id, userID uuid.UUID, created time.Time) (*pgxmock.Rows, types.TripPlan) {
	t.Helper()
	plan := types.TripPlan{
		Destination: "Rome, Italy",
		Duration:    "5",
		Activities:  []types.Activity{{Day: 1, Title: "Colosseum", Cost: 40, Category: "history"}},
		DataSource:  types.DataSourceSimulated,
	}
	raw, err := json.Marshal(plan)
	require.NoError(t, err)
	rows := pgxmock.NewRows(tripCols).AddRow(
		id, userID, "Rome, Italy", 2500.0, "2", "5", strPtr("cultural"),
		strPtr("London, UK (LHR)"), nil, raw, "active", created, created,
	)
	return rows, plan
}

func TestRepository_CreateTrip(t *testing.T) {
	repo, pool := newMockRepo(t)
	id, userID := uuid.New(), uuid.New()
	now := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	rows, plan := storedTrip(t, id, userID, now)

	pool.ExpectQuery(regexp.QuoteMeta("INSERT INTO trips")).
		WithArgs(userID, "Rome, Italy", 2500.0, "2", "5", strPtr("cultural"), strPtr("London, UK (LHR)"), (*string)(nil), pgxmock.AnyArg()).
		WillReturnRows(rows)

	created, err := repo.CreateTrip(context.Background(), &types.Trip{
		UserID:        userID,
		Destination:   "Rome, Italy",
		Budget:        2500,
		Travelers:     "2",
		Duration:      "5",
		TravelStyle:   types.TravelStyleCultural,
		DepartureCity: "London, UK (LHR)",
		TripData:      plan,
	})
	require.NoError(t, err)
	assert.Equal(t, id, created.ID)
	assert.Equal(t, types.TripStatusActive, created.Status)
	assert.Equal(t, types.TravelStyleCultural, created.TravelStyle)
	assert.Empty(t, created.SpecialRequirements)
	assert.Equal(t, plan, created.TripData)
	assert.NoError(t, pool.ExpectationsWereMet())
}

func TestRepository_CreateTripError(t *testing.T) {
	repo, pool := newMockRepo(t)
	pool.ExpectQuery(regexp.QuoteMeta("INSERT INTO trips")).WillReturnError(errors.New("connection reset"))

	_, err := repo.CreateTrip(context.Background(), &types.Trip{UserID: uuid.New(), Destination: "Rome, Italy"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to insert trip")
	assert.NoError(t, pool.ExpectationsWereMet())
}

func TestRepository_ListTrips(t *testing.T) {
	repo, pool := newMockRepo(t)
	userID := uuid.New()
	now := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	rows, _ := storedTrip(t, uuid.New(), userID, now)

	t.Run("defaults the limit", func(t *testing.T) {
		pool.ExpectQuery(regexp.QuoteMeta("WHERE user_id = $1 AND status = 'active'")).
			WithArgs(userID, DefaultListLimit).
			WillReturnRows(rows)

		trips, err := repo.ListTrips(context.Background(), userID, 0)
		require.NoError(t, err)
		require.Len(t, trips, 1)
		assert.Equal(t, "Rome, Italy", trips[0].Destination)
		assert.NoError(t, pool.ExpectationsWereMet())
	})

	t.Run("no trips", func(t *testing.T) {
		pool.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at DESC")).
			WithArgs(userID, 3).
			WillReturnRows(pgxmock.NewRows(tripCols))

		trips, err := repo.ListTrips(context.Background(), userID, 3)
		require.NoError(t, err)
		assert.NotNil(t, trips)
		assert.Empty(t, trips)
		assert.NoError(t, pool.ExpectationsWereMet())
	})
}

func TestRepository_GetTrip(t *testing.T) {
	repo, pool := newMockRepo(t)
	id, userID := uuid.New(), uuid.New()

	t.Run("found", func(t *testing.T) {
		rows, _ := storedTrip(t, id, userID, time.Now())
		pool.ExpectQuery(regexp.QuoteMeta("WHERE id = $1 AND user_id = $2 AND status = 'active'")).
			WithArgs(id, userID).
			WillReturnRows(rows)

		got, err := repo.GetTrip(context.Background(), id, userID)
		require.NoError(t, err)
		assert.Equal(t, id, got.ID)
		assert.Equal(t, "London, UK (LHR)", got.DepartureCity)
	})

	t.Run("not found", func(t *testing.T) {
		pool.ExpectQuery(regexp.QuoteMeta("WHERE id = $1 AND user_id = $2")).
			WithArgs(id, userID).
			WillReturnRows(pgxmock.NewRows(tripCols))

		_, err := repo.GetTrip(context.Background(), id, userID)
		assert.ErrorIs(t, err, ErrTripNotFound)
	})

	assert.NoError(t, pool.ExpectationsWereMet())
}

func TestRepository_UpdateTrip(t *testing.T) {
	repo, pool := newMockRepo(t)
	id, userID := uuid.New(), uuid.New()

	t.Run("updated", func(t *testing.T) {
		rows, plan := storedTrip(t, id, userID, time.Now())
		pool.ExpectQuery(regexp.QuoteMeta("SET destination = $3")).
			WithArgs(id, userID, "Rome, Italy", 2500.0, "2", "5", strPtr("cultural"), (*string)(nil), (*string)(nil), pgxmock.AnyArg()).
			WillReturnRows(rows)

		got, err := repo.UpdateTrip(context.Background(), &types.Trip{
			ID: id, UserID: userID, Destination: "Rome, Italy", Budget: 2500,
			Travelers: "2", Duration: "5", TravelStyle: types.TravelStyleCultural, TripData: plan,
		})
		require.NoError(t, err)
		assert.Equal(t, plan.Activities, got.TripData.Activities)
	})

	t.Run("deleted or foreign trip", func(t *testing.T) {
		pool.ExpectQuery(regexp.QuoteMeta("SET destination = $3")).
			WillReturnRows(pgxmock.NewRows(tripCols))

		_, err := repo.UpdateTrip(context.Background(), &types.Trip{ID: id, UserID: userID})
		assert.ErrorIs(t, err, ErrTripNotFound)
	})

	assert.NoError(t, pool.ExpectationsWereMet())
}

func TestRepository_SoftDeleteTrip(t *testing.T) {
	repo, pool := newMockRepo(t)
	id, userID := uuid.New(), uuid.New()

	pool.ExpectExec(regexp.QuoteMeta("UPDATE trips SET status = 'deleted'")).
		WithArgs(id, userID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	require.NoError(t, repo.SoftDeleteTrip(context.Background(), id, userID))

	pool.ExpectExec(regexp.QuoteMeta("UPDATE trips SET status = 'deleted'")).
		WithArgs(id, userID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	assert.ErrorIs(t, repo.SoftDeleteTrip(context.Background(), id, userID), ErrTripNotFound)

	assert.NoError(t, pool.ExpectationsWereMet())
}

func TestRepository_GetTripStats(t *testing.T) {
	repo, pool := newMockRepo(t)
	userID := uuid.New()
	last := time.Date(2025, 4, 2, 10, 0, 0, 0, time.UTC)

	pool.ExpectQuery(regexp.QuoteMeta("FILTER (WHERE status = 'active')")).
		WithArgs(userID).
		WillReturnRows(pgxmock.NewRows([]string{"count", "active", "avg", "max"}).AddRow(4, 3, 2750.5, &last))

	stats, err := repo.GetTripStats(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, 4, stats.TotalTrips)
	assert.Equal(t, 3, stats.ActiveTrips)
	assert.InDelta(t, 2750.5, stats.AverageBudget, 0.001)
	require.NotNil(t, stats.LastTripDate)
	assert.Equal(t, last, *stats.LastTripDate)
	assert.NoError(t, pool.ExpectationsWereMet())
}
