package router

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appMiddleware "github.com/FACorreiaa/go-trip-planner/app/middleware"
	"github.com/FACorreiaa/go-trip-planner/config"
	"github.com/FACorreiaa/go-trip-planner/internal/api/auth"
	"github.com/FACorreiaa/go-trip-planner/internal/api/pricing"
	"github.com/FACorreiaa/go-trip-planner/internal/api/trip"
	tripChat "github.com/FACorreiaa/go-trip-planner/internal/api/trip_chat"
	"github.com/FACorreiaa/go-trip-planner/internal/types"
)

// memUsers and memTrips stand in for postgres so the whole HTTP stack runs
// with real services.
type memUsers struct {
	mu    sync.Mutex
	users map[uuid.UUID]types.UserProfile
}

var _ auth.UserRepo = (*memUsers)(nil)

func (m *memUsers) CreateUser(_ context.Context, u *types.UserProfile) (*types.UserProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.users {
		if existing.Email == u.Email {
			return nil, auth.ErrEmailTaken
		}
		if existing.Username == u.Username {
			return nil, auth.ErrUsernameTaken
		}
	}
	created := *u
	created.ID = uuid.New()
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	m.users[created.ID] = created
	return &created, nil
}

func (m *memUsers) find(match func(types.UserProfile) bool) (*types.UserProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if match(u) {
			found := u
			return &found, nil
		}
	}
	return nil, auth.ErrUserNotFound
}

func (m *memUsers) GetUserByID(_ context.Context, id uuid.UUID) (*types.UserProfile, error) {
	return m.find(func(u types.UserProfile) bool { return u.ID == id })
}

func (m *memUsers) GetUserByEmail(_ context.Context, email string) (*types.UserProfile, error) {
	return m.find(func(u types.UserProfile) bool { return u.Email == strings.ToLower(email) })
}

func (m *memUsers) GetUserByUsername(_ context.Context, username string) (*types.UserProfile, error) {
	return m.find(func(u types.UserProfile) bool { return u.Username == username })
}

func (m *memUsers) UpdateProfile(_ context.Context, id uuid.UUID, p types.UpdateProfileParams) (*types.UserProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, auth.ErrUserNotFound
	}
	if p.FirstName != nil {
		u.FirstName = p.FirstName
	}
	if p.LastName != nil {
		u.LastName = p.LastName
	}
	if len(p.Preferences) > 0 {
		u.Preferences = p.Preferences
	}
	m.users[id] = u
	return &u, nil
}

type memTrips struct {
	mu    sync.Mutex
	trips map[uuid.UUID]types.Trip
}

var _ trip.Repository = (*memTrips)(nil)

func (m *memTrips) CreateTrip(_ context.Context, t *types.Trip) (*types.Trip, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	created := *t
	created.ID = uuid.New()
	created.Status = types.TripStatusActive
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	m.trips[created.ID] = created
	return &created, nil
}

func (m *memTrips) ListTrips(_ context.Context, userID uuid.UUID, limit int) ([]types.Trip, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []types.Trip{}
	for _, t := range m.trips {
		if t.UserID == userID && t.Status == types.TripStatusActive && len(out) < limit {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *memTrips) GetTrip(_ context.Context, tripID, userID uuid.UUID) (*types.Trip, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.trips[tripID]
	if !ok || t.UserID != userID || t.Status != types.TripStatusActive {
		return nil, trip.ErrTripNotFound
	}
	return &t, nil
}

func (m *memTrips) UpdateTrip(_ context.Context, t *types.Trip) (*types.Trip, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.trips[t.ID]
	if !ok || existing.UserID != t.UserID || existing.Status != types.TripStatusActive {
		return nil, trip.ErrTripNotFound
	}
	updated := *t
	updated.Status = existing.Status
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now()
	m.trips[t.ID] = updated
	return &updated, nil
}

func (m *memTrips) SoftDeleteTrip(_ context.Context, tripID, userID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.trips[tripID]
	if !ok || t.UserID != userID || t.Status != types.TripStatusActive {
		return trip.ErrTripNotFound
	}
	t.Status = types.TripStatusDeleted
	m.trips[tripID] = t
	return nil
}

func (m *memTrips) GetTripStats(_ context.Context, userID uuid.UUID) (*types.TripStats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	stats := &types.TripStats{}
	var sum float64
	for _, t := range m.trips {
		if t.UserID != userID {
			continue
		}
		stats.TotalTrips++
		sum += t.Budget
		if t.Status == types.TripStatusActive {
			stats.ActiveTrips++
		}
	}
	if stats.TotalTrips > 0 {
		stats.AverageBudget = sum / float64(stats.TotalTrips)
	}
	return stats, nil
}

// IntegrationTestSuite serves the full router over real services.
type IntegrationTestSuite struct {
	router http.Handler
	token  string
}

func SetupIntegrationSuite(t *testing.T, rateLimit config.RateLimitConfig) *IntegrationTestSuite {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	jwtCfg := config.JWTConfig{SecretKey: "integration-secret", Issuer: "trip-planner", Audience: "trip-planner-web"}

	users := &memUsers{users: map[uuid.UUID]types.UserProfile{}}
	trips := &memTrips{trips: map[uuid.UUID]types.Trip{}}

	synthesizer := trip.NewSynthesizer(config.FlightAPIConfig{}, config.PlannerConfig{}, nil, logger)
	interpreter := tripChat.NewInterpreter()

	r := SetupRouter(&Config{
		AuthHandler:            auth.NewAuthHandler(auth.NewAuthService(users, jwtCfg, logger), logger),
		PricingHandler:         pricing.NewPricingHandler(logger),
		TripHandler:            trip.NewTripHandler(trip.NewService(trips, synthesizer, interpreter, logger), logger),
		ChatHandler:            tripChat.NewChatHandler(interpreter, logger),
		AuthenticateMiddleware: auth.Authenticate(logger, jwtCfg),
		RateLimitMiddleware:    appMiddleware.RateLimit(rateLimit, logger),
		Logger:                 logger,
	})
	return &IntegrationTestSuite{router: r}
}

func (s *IntegrationTestSuite) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}
	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)
	return rr
}

func decode(t *testing.T, rr *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), dst), rr.Body.String())
}

func (s *IntegrationTestSuite) register(t *testing.T) {
	t.Helper()
	rr := s.do(t, http.MethodPost, "/api/v1/auth/register", types.RegisterRequest{
		Username: "traveler_01", Email: "traveler@example.com", Password: "Str0ngPass",
	})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var out struct {
		Data types.AuthResponse `json:"data"`
	}
	decode(t, rr, &out)
	require.NotEmpty(t, out.Data.Token)
	s.token = out.Data.Token
}

func TestUserRegistrationAndAuthFlow(t *testing.T) {
	suite := SetupIntegrationSuite(t, config.RateLimitConfig{})
	suite.register(t)

	t.Run("duplicate registration", func(t *testing.T) {
		rr := suite.do(t, http.MethodPost, "/api/v1/auth/register", types.RegisterRequest{
			Username: "someone_else", Email: "traveler@example.com", Password: "Str0ngPass",
		})
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("login by email", func(t *testing.T) {
		rr := suite.do(t, http.MethodPost, "/api/v1/auth/login", types.LoginRequest{
			Username: "traveler@example.com", Password: "Str0ngPass",
		})
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("login with wrong password", func(t *testing.T) {
		rr := suite.do(t, http.MethodPost, "/api/v1/auth/login", types.LoginRequest{
			Username: "traveler_01", Password: "Wr0ngPass",
		})
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("profile round trip", func(t *testing.T) {
		first := "Ana"
		rr := suite.do(t, http.MethodPut, "/api/v1/auth/profile", types.UpdateProfileParams{FirstName: &first})
		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

		rr = suite.do(t, http.MethodGet, "/api/v1/auth/profile", nil)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"firstName":"Ana"`)
		assert.NotContains(t, rr.Body.String(), "Str0ngPass")
	})
}

func TestTripLifecycleFlow(t *testing.T) {
	suite := SetupIntegrationSuite(t, config.RateLimitConfig{})
	suite.register(t)

	rr := suite.do(t, http.MethodPost, "/api/v1/trips/generate", types.TripRequest{
		Destination: "Paris, France", Budget: 5000, Travelers: "2", Duration: "3",
		TravelStyle: types.TravelStyleCultural, DepartureCity: "London, UK (LHR)",
	})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var created struct {
		Trip types.Trip `json:"trip"`
	}
	decode(t, rr, &created)
	tripPath := "/api/v1/trips/" + created.Trip.ID.String()
	assert.Equal(t, "Paris, France", created.Trip.Destination)
	assert.NotEmpty(t, created.Trip.TripData.FlightOptions)
	assert.Len(t, created.Trip.TripData.Activities, 3)

	t.Run("list", func(t *testing.T) {
		rr := suite.do(t, http.MethodGet, "/api/v1/trips", nil)
		require.Equal(t, http.StatusOK, rr.Code)
		var list types.TripListResponse
		decode(t, rr, &list)
		assert.Len(t, list.Trips, 1)
		assert.Equal(t, 1, list.Stats.ActiveTrips)
		assert.Equal(t, 5000.0, list.Stats.AverageBudget)
	})

	t.Run("chat edit persists the day", func(t *testing.T) {
		rr := suite.do(t, http.MethodPost, tripPath+"/chat", types.TripChatRequest{Message: "Replace day 2 with food"})
		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

		rr = suite.do(t, http.MethodGet, tripPath, nil)
		var got struct {
			Trip types.Trip `json:"trip"`
		}
		decode(t, rr, &got)
		for _, a := range got.Trip.TripData.Activities {
			if a.Day == 2 {
				assert.Equal(t, "food", a.Category)
			}
		}
	})

	t.Run("pdf", func(t *testing.T) {
		rr := suite.do(t, http.MethodGet, tripPath+"/pdf", nil)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "application/pdf", rr.Header().Get("Content-Type"))
		assert.True(t, bytes.HasPrefix(rr.Body.Bytes(), []byte("%PDF")))
	})

	t.Run("delete hides the trip", func(t *testing.T) {
		rr := suite.do(t, http.MethodDelete, tripPath, nil)
		require.Equal(t, http.StatusOK, rr.Code)

		rr = suite.do(t, http.MethodGet, tripPath, nil)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestAPIErrorHandling(t *testing.T) {
	suite := SetupIntegrationSuite(t, config.RateLimitConfig{})

	t.Run("invalid JSON request", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewBufferString("invalid json"))
		rr := httptest.NewRecorder()
		suite.router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("missing required fields", func(t *testing.T) {
		rr := suite.do(t, http.MethodPost, "/api/v1/auth/register", map[string]string{"username": "traveler_01"})
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("invalid UUID in path", func(t *testing.T) {
		suite.register(t)
		rr := suite.do(t, http.MethodGet, "/api/v1/trips/invalid-uuid", nil)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestAPIConcurrency(t *testing.T) {
	suite := SetupIntegrationSuite(t, config.RateLimitConfig{})
	suite.register(t)

	const numGoroutines = 10
	results := make(chan int, numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func(i int) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/trips/generate",
				strings.NewReader(fmt.Sprintf(`{"destination":"Tokyo, Japan","budget":%d,"travelers":"1","duration":"4"}`, 3000+i)))
			req.Header.Set("Authorization", "Bearer "+suite.token)
			rr := httptest.NewRecorder()
			suite.router.ServeHTTP(rr, req)
			results <- rr.Code
		}(i)
	}

	for i := 0; i < numGoroutines; i++ {
		select {
		case code := <-results:
			assert.Equal(t, http.StatusCreated, code)
		case <-time.After(5 * time.Second):
			t.Fatal("Timeout waiting for concurrent request")
		}
	}

	rr := suite.do(t, http.MethodGet, "/api/v1/trips?limit=50", nil)
	var list types.TripListResponse
	decode(t, rr, &list)
	assert.Equal(t, numGoroutines, list.Stats.TotalTrips)
}

func TestAPIRateLimiting(t *testing.T) {
	suite := SetupIntegrationSuite(t, config.RateLimitConfig{Requests: 5, Window: time.Minute})

	limited := 0
	for i := 0; i < 8; i++ {
		if rr := suite.do(t, http.MethodGet, "/api/v1/destinations/popular", nil); rr.Code == http.StatusTooManyRequests {
			limited++
		}
	}
	assert.Equal(t, 3, limited)
}
