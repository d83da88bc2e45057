package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/crypto/bcrypt"

	"github.com/FACorreiaa/go-trip-planner/app/observability/metrics"
	"github.com/FACorreiaa/go-trip-planner/config"
	"github.com/FACorreiaa/go-trip-planner/internal/types"
)

const (
	bcryptCost      = 12
	defaultTokenTTL = 7 * 24 * time.Hour
)

var _ AuthService = (*AuthServiceImpl)(nil)

type AuthService interface {
	Register(ctx context.Context, req types.RegisterRequest) (*types.AuthResponse, error)
	Login(ctx context.Context, req types.LoginRequest) (*types.AuthResponse, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*types.UserProfile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, params types.UpdateProfileParams) (*types.UserProfile, error)
}

type AuthServiceImpl struct {
	logger *slog.Logger
	repo   UserRepo
	jwtCfg config.JWTConfig
	now    func() time.Time
}

func NewAuthService(repo UserRepo, jwtCfg config.JWTConfig, logger *slog.Logger) *AuthServiceImpl {
	return &AuthServiceImpl{logger: logger, repo: repo, jwtCfg: jwtCfg, now: time.Now}
}

// Register creates the account and signs the user in.
func (s *AuthServiceImpl) Register(ctx context.Context, req types.RegisterRequest) (*types.AuthResponse, error) {
	ctx, span := otel.Tracer("AuthService").Start(ctx, "Register")
	defer span.End()
	l := s.logger.With(slog.String("method", "Register"))
	metrics.Get().RegisterRequestsTotal.Add(ctx, 1)

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if _, err := s.repo.GetUserByEmail(ctx, email); err == nil {
		span.SetStatus(codes.Error, "email taken")
		return nil, ErrEmailTaken
	} else if !errors.Is(err, ErrUserNotFound) {
		span.RecordError(err)
		return nil, fmt.Errorf("error checking email: %w", err)
	}
	if _, err := s.repo.GetUserByUsername(ctx, req.Username); err == nil {
		span.SetStatus(codes.Error, "username taken")
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, ErrUserNotFound) {
		span.RecordError(err)
		return nil, fmt.Errorf("error checking username: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user, err := s.repo.CreateUser(ctx, &types.UserProfile{
		Username:     req.Username,
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "create failed")
		return nil, err
	}

	token, err := s.GenerateToken(user)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	l.InfoContext(ctx, "User registered", slog.String("userID", user.ID.String()))
	span.SetAttributes(attribute.String("user.id", user.ID.String()))
	span.SetStatus(codes.Ok, "registered")
	return &types.AuthResponse{User: user, Token: token}, nil
}

// Login accepts a username or an email address. Unknown users and wrong
// passwords both return ErrInvalidCredentials.
func (s *AuthServiceImpl) Login(ctx context.Context, req types.LoginRequest) (*types.AuthResponse, error) {
	ctx, span := otel.Tracer("AuthService").Start(ctx, "Login")
	defer span.End()
	l := s.logger.With(slog.String("method", "Login"))

	user, err := s.repo.GetUserByUsername(ctx, req.Username)
	if errors.Is(err, ErrUserNotFound) {
		user, err = s.repo.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Username)))
	}
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			span.SetStatus(codes.Error, "unknown user")
			return nil, ErrInvalidCredentials
		}
		span.RecordError(err)
		return nil, fmt.Errorf("error fetching user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		l.WarnContext(ctx, "Password mismatch", slog.String("userID", user.ID.String()))
		span.SetStatus(codes.Error, "bad password")
		return nil, ErrInvalidCredentials
	}

	token, err := s.GenerateToken(user)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetStatus(codes.Ok, "logged in")
	return &types.AuthResponse{User: user, Token: token}, nil
}

func (s *AuthServiceImpl) GetProfile(ctx context.Context, userID uuid.UUID) (*types.UserProfile, error) {
	ctx, span := otel.Tracer("AuthService").Start(ctx, "GetProfile")
	defer span.End()

	u, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("error fetching profile: %w", err)
	}
	return u, nil
}

func (s *AuthServiceImpl) UpdateProfile(ctx context.Context, userID uuid.UUID, params types.UpdateProfileParams) (*types.UserProfile, error) {
	ctx, span := otel.Tracer("AuthService").Start(ctx, "UpdateProfile")
	defer span.End()

	u, err := s.repo.UpdateProfile(ctx, userID, params)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("error updating profile: %w", err)
	}
	s.logger.InfoContext(ctx, "Profile updated", slog.String("userID", userID.String()))
	return u, nil
}

// GenerateToken signs an HS256 access token for user.
func (s *AuthServiceImpl) GenerateToken(user *types.UserProfile) (string, error) {
	ttl := s.jwtCfg.AccessTokenTTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	now := s.now()
	claims := types.Claims{
		UserID:   user.ID.String(),
		Username: user.Username,
		Email:    user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.jwtCfg.Issuer,
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	if s.jwtCfg.Audience != "" {
		claims.Audience = jwt.ClaimStrings{s.jwtCfg.Audience}
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.jwtCfg.SecretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}
