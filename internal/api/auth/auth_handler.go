package auth

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"

	"github.com/FACorreiaa/go-trip-planner/internal/api"
	"github.com/FACorreiaa/go-trip-planner/internal/types"
)

type AuthHandler struct {
	AuthService AuthService
	logger      *slog.Logger
}

func NewAuthHandler(authService AuthService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		logger:      logger,
		AuthService: authService,
	}
}

type authResponse struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Data    *types.AuthResponse `json:"data"`
}

type profileData struct {
	User *types.UserProfile `json:"user"`
}

type profileResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    profileData `json:"data"`
}

// Register godoc
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body types.RegisterRequest true "Account details"
// @Success      201 {object} authResponse
// @Failure      400 {object} api.Response
// @Router       /auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("AuthHandler").Start(r.Context(), "Register")
	defer span.End()
	l := h.logger.With(slog.String("handler", "Register"))

	var req types.RegisterRequest
	if err := api.DecodeAndValidate(w, r, &req); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Invalid request")
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.AuthService.Register(ctx, req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Registration failed")
		switch {
		case errors.Is(err, ErrEmailTaken):
			api.ErrorResponse(w, r, http.StatusBadRequest, "User with this email already exists")
		case errors.Is(err, ErrUsernameTaken):
			api.ErrorResponse(w, r, http.StatusBadRequest, "Username is already taken")
		default:
			l.ErrorContext(ctx, "Registration failed", slog.Any("error", err))
			api.ErrorResponse(w, r, http.StatusInternalServerError, "Internal server error during registration")
		}
		return
	}

	span.SetStatus(codes.Ok, "Registered")
	api.WriteJSONResponse(w, r, http.StatusCreated, authResponse{Success: true, Message: "User registered successfully", Data: res})
}

// Login godoc
// @Summary      Log in with username or email
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body types.LoginRequest true "Credentials"
// @Success      200 {object} authResponse
// @Failure      401 {object} api.Response
// @Router       /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("AuthHandler").Start(r.Context(), "Login")
	defer span.End()
	l := h.logger.With(slog.String("handler", "Login"))

	var req types.LoginRequest
	if err := api.DecodeAndValidate(w, r, &req); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Invalid request")
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.AuthService.Login(ctx, req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Login failed")
		if errors.Is(err, ErrInvalidCredentials) {
			api.ErrorResponse(w, r, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		l.ErrorContext(ctx, "Login failed", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Internal server error during login")
		return
	}

	span.SetStatus(codes.Ok, "Logged in")
	api.WriteJSONResponse(w, r, http.StatusOK, authResponse{Success: true, Message: "Login successful", Data: res})
}

// Logout godoc
// @Summary      Log out
// @Description  Tokens are stateless; the client discards its token.
// @Tags         auth
// @Produce      json
// @Success      200 {object} api.Response
// @Security     BearerAuth
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	api.WriteJSONResponse(w, r, http.StatusOK, api.Response{Success: true, Message: "Logout successful"})
}

func (h *AuthHandler) currentUser(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	raw, ok := GetUserIDFromContext(r.Context())
	if !ok {
		api.ErrorResponse(w, r, http.StatusUnauthorized, "Authentication required")
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, "Invalid user ID format")
		return uuid.Nil, false
	}
	return id, true
}

// GetProfile godoc
// @Summary      Current user profile
// @Tags         auth
// @Produce      json
// @Success      200 {object} profileResponse
// @Failure      401 {object} api.Response
// @Security     BearerAuth
// @Router       /auth/profile [get]
func (h *AuthHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("AuthHandler").Start(r.Context(), "GetProfile")
	defer span.End()

	userID, ok := h.currentUser(w, r)
	if !ok {
		return
	}

	user, err := h.AuthService.GetProfile(ctx, userID)
	if err != nil {
		span.RecordError(err)
		if errors.Is(err, ErrUserNotFound) {
			api.ErrorResponse(w, r, http.StatusUnauthorized, "User not found")
			return
		}
		h.logger.ErrorContext(ctx, "Failed to fetch profile", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Internal server error")
		return
	}
	span.SetStatus(codes.Ok, "Profile fetched")
	api.WriteJSONResponse(w, r, http.StatusOK, profileResponse{Success: true, Data: profileData{User: user}})
}

// UpdateProfile godoc
// @Summary      Update the current user's profile
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body types.UpdateProfileParams true "Profile fields"
// @Success      200 {object} profileResponse
// @Failure      400 {object} api.Response
// @Security     BearerAuth
// @Router       /auth/profile [put]
func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("AuthHandler").Start(r.Context(), "UpdateProfile")
	defer span.End()

	userID, ok := h.currentUser(w, r)
	if !ok {
		return
	}

	var params types.UpdateProfileParams
	if err := api.DecodeAndValidate(w, r, &params); err != nil {
		span.RecordError(err)
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.AuthService.UpdateProfile(ctx, userID, params)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Update failed")
		h.logger.ErrorContext(ctx, "Failed to update profile", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Internal server error during profile update")
		return
	}
	span.SetStatus(codes.Ok, "Profile updated")
	api.WriteJSONResponse(w, r, http.StatusOK, profileResponse{Success: true, Message: "Profile updated successfully", Data: profileData{User: user}})
}
