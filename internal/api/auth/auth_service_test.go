package auth

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/FACorreiaa/go-trip-planner/config"
	"github.com/FACorreiaa/go-trip-planner/internal/types"
)

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) CreateUser(ctx context.Context, user *types.UserProfile) (*types.UserProfile, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.UserProfile), args.Error(1)
}

func (m *MockUserRepo) GetUserByID(ctx context.Context, id uuid.UUID) (*types.UserProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.UserProfile), args.Error(1)
}

func (m *MockUserRepo) GetUserByEmail(ctx context.Context, email string) (*types.UserProfile, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.UserProfile), args.Error(1)
}

func (m *MockUserRepo) GetUserByUsername(ctx context.Context, username string) (*types.UserProfile, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.UserProfile), args.Error(1)
}

func (m *MockUserRepo) UpdateProfile(ctx context.Context, id uuid.UUID, params types.UpdateProfileParams) (*types.UserProfile, error) {
	args := m.Called(ctx, id, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.UserProfile), args.Error(1)
}

var testJWT = config.JWTConfig{
	SecretKey: "test-secret-key-with-enough-length",
	Issuer:    "trip-planner-test",
	Audience:  "trip-planner-clients",
}

var fixedNow = time.Date(2025, 10, 10, 12, 0, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestAuthService(repo UserRepo) *AuthServiceImpl {
	s := NewAuthService(repo, testJWT, discardLogger())
	s.now = func() time.Time { return fixedNow }
	return s
}

func hashed(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func sampleUser(t *testing.T) *types.UserProfile {
	return &types.UserProfile{
		ID:           uuid.MustParse("6f1c4a52-93d1-4b8a-9d3e-1f6d2a9c7b10"),
		Username:     "traveler_01",
		Email:        "traveler@example.com",
		PasswordHash: hashed(t, "Str0ngPass"),
		CreatedAt:    fixedNow,
		UpdatedAt:    fixedNow,
	}
}

func parseToken(t *testing.T, token string) *types.Claims {
	t.Helper()
	claims := &types.Claims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(testJWT.SecretKey), nil
	}, jwt.WithTimeFunc(func() time.Time { return fixedNow.Add(time.Minute) }))
	require.NoError(t, err)
	return claims
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()
	req := types.RegisterRequest{Username: "traveler_01", Email: "  Traveler@Example.com ", Password: "Str0ngPass"}

	t.Run("success", func(t *testing.T) {
		repo := new(MockUserRepo)
		s := newTestAuthService(repo)
		created := sampleUser(t)

		repo.On("GetUserByEmail", mock.Anything, "traveler@example.com").Return(nil, ErrUserNotFound).Once()
		repo.On("GetUserByUsername", mock.Anything, "traveler_01").Return(nil, ErrUserNotFound).Once()
		repo.On("CreateUser", mock.Anything, mock.MatchedBy(func(u *types.UserProfile) bool {
			return u.Email == "traveler@example.com" &&
				bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("Str0ngPass")) == nil
		})).Return(created, nil).Once()

		res, err := s.Register(ctx, req)
		require.NoError(t, err)
		assert.Same(t, created, res.User)

		claims := parseToken(t, res.Token)
		assert.Equal(t, created.ID.String(), claims.UserID)
		assert.Equal(t, "traveler_01", claims.Username)
		assert.Equal(t, testJWT.Issuer, claims.Issuer)
		assert.Equal(t, jwt.ClaimStrings{testJWT.Audience}, claims.Audience)
		assert.Equal(t, fixedNow.Add(defaultTokenTTL).Unix(), claims.ExpiresAt.Unix())
		repo.AssertExpectations(t)
	})

	t.Run("email taken", func(t *testing.T) {
		repo := new(MockUserRepo)
		s := newTestAuthService(repo)
		repo.On("GetUserByEmail", mock.Anything, "traveler@example.com").Return(sampleUser(t), nil).Once()

		_, err := s.Register(ctx, req)
		assert.ErrorIs(t, err, ErrEmailTaken)
		repo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
	})

	t.Run("username taken", func(t *testing.T) {
		repo := new(MockUserRepo)
		s := newTestAuthService(repo)
		repo.On("GetUserByEmail", mock.Anything, "traveler@example.com").Return(nil, ErrUserNotFound).Once()
		repo.On("GetUserByUsername", mock.Anything, "traveler_01").Return(sampleUser(t), nil).Once()

		_, err := s.Register(ctx, req)
		assert.ErrorIs(t, err, ErrUsernameTaken)
		repo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
	})

	t.Run("lookup failure", func(t *testing.T) {
		repo := new(MockUserRepo)
		s := newTestAuthService(repo)
		dbErr := errors.New("connection reset")
		repo.On("GetUserByEmail", mock.Anything, "traveler@example.com").Return(nil, dbErr).Once()

		_, err := s.Register(ctx, req)
		assert.ErrorIs(t, err, dbErr)
	})

	t.Run("insert race", func(t *testing.T) {
		repo := new(MockUserRepo)
		s := newTestAuthService(repo)
		repo.On("GetUserByEmail", mock.Anything, mock.Anything).Return(nil, ErrUserNotFound).Once()
		repo.On("GetUserByUsername", mock.Anything, mock.Anything).Return(nil, ErrUserNotFound).Once()
		repo.On("CreateUser", mock.Anything, mock.Anything).Return(nil, ErrUsernameTaken).Once()

		_, err := s.Register(ctx, req)
		assert.ErrorIs(t, err, ErrUsernameTaken)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("by username", func(t *testing.T) {
		repo := new(MockUserRepo)
		s := newTestAuthService(repo)
		user := sampleUser(t)
		repo.On("GetUserByUsername", mock.Anything, "traveler_01").Return(user, nil).Once()

		res, err := s.Login(ctx, types.LoginRequest{Username: "traveler_01", Password: "Str0ngPass"})
		require.NoError(t, err)
		assert.Equal(t, user.ID.String(), parseToken(t, res.Token).Subject)
		repo.AssertNotCalled(t, "GetUserByEmail", mock.Anything, mock.Anything)
	})

	t.Run("falls back to email", func(t *testing.T) {
		repo := new(MockUserRepo)
		s := newTestAuthService(repo)
		user := sampleUser(t)
		repo.On("GetUserByUsername", mock.Anything, "Traveler@Example.com").Return(nil, ErrUserNotFound).Once()
		repo.On("GetUserByEmail", mock.Anything, "traveler@example.com").Return(user, nil).Once()

		res, err := s.Login(ctx, types.LoginRequest{Username: "Traveler@Example.com", Password: "Str0ngPass"})
		require.NoError(t, err)
		assert.NotEmpty(t, res.Token)
		repo.AssertExpectations(t)
	})

	t.Run("unknown user", func(t *testing.T) {
		repo := new(MockUserRepo)
		s := newTestAuthService(repo)
		repo.On("GetUserByUsername", mock.Anything, "ghost").Return(nil, ErrUserNotFound).Once()
		repo.On("GetUserByEmail", mock.Anything, "ghost").Return(nil, ErrUserNotFound).Once()

		_, err := s.Login(ctx, types.LoginRequest{Username: "ghost", Password: "whatever"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		repo := new(MockUserRepo)
		s := newTestAuthService(repo)
		repo.On("GetUserByUsername", mock.Anything, "traveler_01").Return(sampleUser(t), nil).Once()

		_, err := s.Login(ctx, types.LoginRequest{Username: "traveler_01", Password: "Wr0ngPass"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("repository failure", func(t *testing.T) {
		repo := new(MockUserRepo)
		s := newTestAuthService(repo)
		repo.On("GetUserByUsername", mock.Anything, "traveler_01").Return(nil, errors.New("timeout")).Once()

		_, err := s.Login(ctx, types.LoginRequest{Username: "traveler_01", Password: "Str0ngPass"})
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestAuthService_GenerateToken_CustomTTLWithoutAudience(t *testing.T) {
	cfg := testJWT
	cfg.Audience = ""
	cfg.AccessTokenTTL = time.Hour
	s := NewAuthService(new(MockUserRepo), cfg, discardLogger())
	s.now = func() time.Time { return fixedNow }

	token, err := s.GenerateToken(sampleUser(t))
	require.NoError(t, err)

	claims := parseToken(t, token)
	assert.Empty(t, claims.Audience)
	assert.Equal(t, fixedNow.Add(time.Hour).Unix(), claims.ExpiresAt.Unix())
}

func TestAuthService_Profile(t *testing.T) {
	ctx := context.Background()
	user := sampleUser(t)

	t.Run("get", func(t *testing.T) {
		repo := new(MockUserRepo)
		s := newTestAuthService(repo)
		repo.On("GetUserByID", mock.Anything, user.ID).Return(user, nil).Once()

		got, err := s.GetProfile(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, user.Username, got.Username)
	})

	t.Run("get missing", func(t *testing.T) {
		repo := new(MockUserRepo)
		s := newTestAuthService(repo)
		repo.On("GetUserByID", mock.Anything, user.ID).Return(nil, ErrUserNotFound).Once()

		_, err := s.GetProfile(ctx, user.ID)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("update", func(t *testing.T) {
		repo := new(MockUserRepo)
		s := newTestAuthService(repo)
		first := "Ana"
		params := types.UpdateProfileParams{FirstName: &first}
		updated := *user
		updated.FirstName = &first
		repo.On("UpdateProfile", mock.Anything, user.ID, params).Return(&updated, nil).Once()

		got, err := s.UpdateProfile(ctx, user.ID, params)
		require.NoError(t, err)
		assert.Equal(t, "Ana", *got.FirstName)
		repo.AssertExpectations(t)
	})
}
