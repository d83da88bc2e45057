package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"

	database "github.com/FACorreiaa/go-trip-planner/app/db"
	"github.com/FACorreiaa/go-trip-planner/app/observability/metrics"
	"github.com/FACorreiaa/go-trip-planner/internal/types"
)

const uniqueViolation = "23505"

var _ UserRepo = (*UserRepoImpl)(nil)

// UserRepo stores user accounts.
type UserRepo interface {
	CreateUser(ctx context.Context, user *types.UserProfile) (*types.UserProfile, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*types.UserProfile, error)
	GetUserByEmail(ctx context.Context, email string) (*types.UserProfile, error)
	GetUserByUsername(ctx context.Context, username string) (*types.UserProfile, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, params types.UpdateProfileParams) (*types.UserProfile, error)
}

type UserRepoImpl struct {
	logger *slog.Logger
	db     database.Querier
}

func NewUserRepo(db database.Querier, logger *slog.Logger) *UserRepoImpl {
	return &UserRepoImpl{logger: logger, db: db}
}

const userColumns = `id, username, email, password_hash, first_name, last_name, preferences, created_at, updated_at`

func scanUser(row pgx.Row) (*types.UserProfile, error) {
	var (
		u     types.UserProfile
		prefs []byte
	)
	if err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName,
		&prefs, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	if len(prefs) > 0 {
		u.Preferences = json.RawMessage(prefs)
	}
	return &u, nil
}

func (r *UserRepoImpl) observe(ctx context.Context, op string, start time.Time, err error) {
	m := metrics.Get()
	attrs := metric.WithAttributes(attribute.String("db.operation", op), attribute.String("db.table", "users"))
	m.DbQueryDurationSeconds.Record(ctx, time.Since(start).Seconds(), attrs)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		m.DbQueryErrorsTotal.Add(ctx, 1, attrs)
	}
}

// CreateUser inserts the account. Unique violations map to ErrEmailTaken or
// ErrUsernameTaken.
func (r *UserRepoImpl) CreateUser(ctx context.Context, user *types.UserProfile) (_ *types.UserProfile, err error) {
	ctx, span := otel.Tracer("UserRepo").Start(ctx, "CreateUser")
	defer span.End()
	defer func(start time.Time) { r.observe(ctx, "INSERT", start, err) }(time.Now())

	query := `
		INSERT INTO users (username, email, password_hash, first_name, last_name)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + userColumns

	created, err := scanUser(r.db.QueryRow(ctx, query, user.Username, user.Email, user.PasswordHash, user.FirstName, user.LastName))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			span.SetStatus(codes.Error, "conflict")
			if strings.Contains(pgErr.ConstraintName, "email") {
				return nil, ErrEmailTaken
			}
			return nil, ErrUsernameTaken
		}
		r.logger.ErrorContext(ctx, "Failed to insert user", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "insert failed")
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	span.SetAttributes(attribute.String("user.id", created.ID.String()))
	span.SetStatus(codes.Ok, "user created")
	return created, nil
}

func (r *UserRepoImpl) getBy(ctx context.Context, spanName, column string, value any) (_ *types.UserProfile, err error) {
	ctx, span := otel.Tracer("UserRepo").Start(ctx, spanName)
	defer span.End()
	defer func(start time.Time) { r.observe(ctx, "SELECT", start, err) }(time.Now())

	u, err := scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE `+column+` = $1`, value))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			span.SetStatus(codes.Error, "not found")
			return nil, ErrUserNotFound
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "query failed")
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	span.SetStatus(codes.Ok, "user found")
	return u, nil
}

func (r *UserRepoImpl) GetUserByID(ctx context.Context, id uuid.UUID) (*types.UserProfile, error) {
	return r.getBy(ctx, "GetUserByID", "id", id)
}

func (r *UserRepoImpl) GetUserByEmail(ctx context.Context, email string) (*types.UserProfile, error) {
	return r.getBy(ctx, "GetUserByEmail", "email", strings.ToLower(email))
}

func (r *UserRepoImpl) GetUserByUsername(ctx context.Context, username string) (*types.UserProfile, error) {
	return r.getBy(ctx, "GetUserByUsername", "username", username)
}

// UpdateProfile changes only the non-nil fields of params.
func (r *UserRepoImpl) UpdateProfile(ctx context.Context, id uuid.UUID, params types.UpdateProfileParams) (_ *types.UserProfile, err error) {
	ctx, span := otel.Tracer("UserRepo").Start(ctx, "UpdateProfile")
	defer span.End()
	defer func(start time.Time) { r.observe(ctx, "UPDATE", start, err) }(time.Now())

	var prefs *string
	if len(params.Preferences) > 0 {
		p := string(params.Preferences)
		prefs = &p
	}

	query := `
		UPDATE users
		SET first_name = COALESCE($2, first_name),
			last_name = COALESCE($3, last_name),
			preferences = COALESCE($4::jsonb, preferences),
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + userColumns

	u, err := scanUser(r.db.QueryRow(ctx, query, id, params.FirstName, params.LastName, prefs))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "update failed")
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	span.SetStatus(codes.Ok, "profile updated")
	return u, nil
}
