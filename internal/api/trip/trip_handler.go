package trip

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/go-trip-planner/internal/api"
	"github.com/FACorreiaa/go-trip-planner/internal/api/auth"
	"github.com/FACorreiaa/go-trip-planner/internal/types"
)

type Handler struct {
	logger  *slog.Logger
	service Service
	now     func() time.Time
}

func NewTripHandler(service Service, logger *slog.Logger) *Handler {
	return &Handler{logger: logger, service: service, now: time.Now}
}

type tripResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Trip    *types.Trip `json:"trip"`
}

type tripListResponse struct {
	Success bool `json:"success"`
	types.TripListResponse
}

// userID reads the authenticated user. It writes the error response itself.
func (h *Handler) userID(w http.ResponseWriter, r *http.Request, span trace.Span) (uuid.UUID, bool) {
	raw, ok := auth.GetUserIDFromContext(r.Context())
	if !ok || raw == "" {
		span.SetStatus(codes.Error, "Unauthorized")
		api.ErrorResponse(w, r, http.StatusUnauthorized, "Authentication required")
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Invalid user ID")
		api.ErrorResponse(w, r, http.StatusBadRequest, "Invalid user ID format")
		return uuid.Nil, false
	}
	span.SetAttributes(attribute.String("user.id", id.String()))
	return id, true
}

func (h *Handler) tripID(w http.ResponseWriter, r *http.Request, span trace.Span) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "tripID"))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Invalid trip ID")
		api.ErrorResponse(w, r, http.StatusBadRequest, "Invalid trip ID format")
		return uuid.Nil, false
	}
	span.SetAttributes(attribute.String("trip.id", id.String()))
	return id, true
}

// writeServiceError maps service errors to short client messages.
func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, l *slog.Logger, span trace.Span, err error, fallback string) {
	span.RecordError(err)
	switch {
	case errors.Is(err, ErrTripNotFound):
		span.SetStatus(codes.Error, "Not found")
		api.ErrorResponse(w, r, http.StatusNotFound, "Trip not found")
	case errors.Is(err, ErrTripGenerationFailed):
		l.ErrorContext(r.Context(), "Trip generation failed", slog.Any("error", err))
		span.SetStatus(codes.Error, "Generation failed")
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to generate trip plan")
	default:
		l.ErrorContext(r.Context(), fallback, slog.Any("error", err))
		span.SetStatus(codes.Error, fallback)
		api.ErrorResponse(w, r, http.StatusInternalServerError, fallback)
	}
}

// GenerateTrip godoc
// @Summary      Generate and save a trip plan
// @Tags         trips
// @Accept       json
// @Produce      json
// @Param        request body types.TripRequest true "Trip preferences"
// @Success      201 {object} tripResponse
// @Failure      400 {object} api.Response
// @Failure      401 {object} api.Response
// @Failure      500 {object} api.Response
// @Security     BearerAuth
// @Router       /trips/generate [post]
func (h *Handler) GenerateTrip(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("TripHandler").Start(r.Context(), "GenerateTrip")
	defer span.End()
	l := h.logger.With(slog.String("handler", "GenerateTrip"))

	userID, ok := h.userID(w, r, span)
	if !ok {
		return
	}

	var req types.TripRequest
	if err := api.DecodeAndValidate(w, r, &req); err != nil {
		l.WarnContext(ctx, "Invalid trip request", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Invalid request")
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	created, err := h.service.GenerateTrip(ctx, userID, req)
	if err != nil {
		h.writeServiceError(w, r, l, span, err, "Failed to save trip")
		return
	}

	span.SetStatus(codes.Ok, "Trip generated")
	api.WriteJSONResponse(w, r, http.StatusCreated, tripResponse{Success: true, Message: "Trip generated successfully", Trip: created})
}

// ListTrips godoc
// @Summary      List the user's trips with statistics
// @Tags         trips
// @Produce      json
// @Param        limit query int false "Maximum trips" default(10)
// @Success      200 {object} tripListResponse
// @Failure      401 {object} api.Response
// @Security     BearerAuth
// @Router       /trips [get]
func (h *Handler) ListTrips(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("TripHandler").Start(r.Context(), "ListTrips")
	defer span.End()
	l := h.logger.With(slog.String("handler", "ListTrips"))

	userID, ok := h.userID(w, r, span)
	if !ok {
		return
	}

	limit := api.QueryInt(r, "limit", DefaultListLimit)
	if limit < 1 || limit > 100 {
		limit = DefaultListLimit
	}

	list, err := h.service.ListTrips(ctx, userID, limit)
	if err != nil {
		h.writeServiceError(w, r, l, span, err, "Failed to fetch trips")
		return
	}

	span.SetAttributes(attribute.Int("trips.count", len(list.Trips)))
	span.SetStatus(codes.Ok, "Trips listed")
	api.WriteJSONResponse(w, r, http.StatusOK, tripListResponse{Success: true, TripListResponse: *list})
}

// GetTrip godoc
// @Summary      Get one trip
// @Tags         trips
// @Produce      json
// @Param        tripID path string true "Trip ID"
// @Success      200 {object} tripResponse
// @Failure      404 {object} api.Response
// @Security     BearerAuth
// @Router       /trips/{tripID} [get]
func (h *Handler) GetTrip(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("TripHandler").Start(r.Context(), "GetTrip")
	defer span.End()
	l := h.logger.With(slog.String("handler", "GetTrip"))

	userID, ok := h.userID(w, r, span)
	if !ok {
		return
	}
	tripID, ok := h.tripID(w, r, span)
	if !ok {
		return
	}

	t, err := h.service.GetTrip(ctx, tripID, userID)
	if err != nil {
		h.writeServiceError(w, r, l, span, err, "Failed to fetch trip")
		return
	}
	span.SetStatus(codes.Ok, "Trip fetched")
	api.WriteJSONResponse(w, r, http.StatusOK, tripResponse{Success: true, Trip: t})
}

// UpdateTrip godoc
// @Summary      Regenerate a trip from new preferences
// @Tags         trips
// @Accept       json
// @Produce      json
// @Param        tripID path string true "Trip ID"
// @Param        request body types.TripRequest true "Trip preferences"
// @Success      200 {object} tripResponse
// @Failure      400 {object} api.Response
// @Failure      404 {object} api.Response
// @Security     BearerAuth
// @Router       /trips/{tripID} [put]
func (h *Handler) UpdateTrip(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("TripHandler").Start(r.Context(), "UpdateTrip")
	defer span.End()
	l := h.logger.With(slog.String("handler", "UpdateTrip"))

	userID, ok := h.userID(w, r, span)
	if !ok {
		return
	}
	tripID, ok := h.tripID(w, r, span)
	if !ok {
		return
	}

	var req types.TripRequest
	if err := api.DecodeAndValidate(w, r, &req); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Invalid request")
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := h.service.UpdateTrip(ctx, tripID, userID, req)
	if err != nil {
		h.writeServiceError(w, r, l, span, err, "Failed to update trip")
		return
	}
	span.SetStatus(codes.Ok, "Trip updated")
	api.WriteJSONResponse(w, r, http.StatusOK, tripResponse{Success: true, Message: "Trip updated successfully", Trip: updated})
}

// DeleteTrip godoc
// @Summary      Delete a trip
// @Tags         trips
// @Param        tripID path string true "Trip ID"
// @Success      200 {object} api.Response
// @Failure      404 {object} api.Response
// @Security     BearerAuth
// @Router       /trips/{tripID} [delete]
func (h *Handler) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("TripHandler").Start(r.Context(), "DeleteTrip")
	defer span.End()
	l := h.logger.With(slog.String("handler", "DeleteTrip"))

	userID, ok := h.userID(w, r, span)
	if !ok {
		return
	}
	tripID, ok := h.tripID(w, r, span)
	if !ok {
		return
	}

	if err := h.service.DeleteTrip(ctx, tripID, userID); err != nil {
		h.writeServiceError(w, r, l, span, err, "Failed to delete trip")
		return
	}
	span.SetStatus(codes.Ok, "Trip deleted")
	api.WriteJSONResponse(w, r, http.StatusOK, api.Response{Success: true, Message: "Trip deleted successfully"})
}

// DownloadPDF godoc
// @Summary      Download a trip as PDF
// @Tags         trips
// @Produce      application/pdf
// @Param        tripID path string true "Trip ID"
// @Success      200 {file} binary
// @Failure      404 {object} api.Response
// @Security     BearerAuth
// @Router       /trips/{tripID}/pdf [get]
func (h *Handler) DownloadPDF(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("TripHandler").Start(r.Context(), "DownloadPDF")
	defer span.End()
	l := h.logger.With(slog.String("handler", "DownloadPDF"))

	userID, ok := h.userID(w, r, span)
	if !ok {
		return
	}
	tripID, ok := h.tripID(w, r, span)
	if !ok {
		return
	}

	t, err := h.service.GetTrip(ctx, tripID, userID)
	if err != nil {
		h.writeServiceError(w, r, l, span, err, "Failed to fetch trip")
		return
	}

	doc, err := RenderPDF(t, h.now())
	if err != nil {
		l.ErrorContext(ctx, "Failed to render PDF", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Render failed")
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to render PDF")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="trip-%s.pdf"`, tripID))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(doc); err != nil {
		l.ErrorContext(ctx, "Failed to write PDF", slog.Any("error", err))
	}
	span.SetStatus(codes.Ok, "PDF rendered")
}

// ChatEdit godoc
// @Summary      Edit a stored trip through chat
// @Description  Applies the edit to the addressed day and saves the trip.
// @Tags         trips
// @Accept       json
// @Produce      json
// @Param        tripID path string true "Trip ID"
// @Param        request body types.TripChatRequest true "Edit request"
// @Success      200 {object} types.ChatResponse
// @Failure      404 {object} api.Response
// @Security     BearerAuth
// @Router       /trips/{tripID}/chat [post]
func (h *Handler) ChatEdit(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("TripHandler").Start(r.Context(), "ChatEdit")
	defer span.End()
	l := h.logger.With(slog.String("handler", "ChatEdit"))

	userID, ok := h.userID(w, r, span)
	if !ok {
		return
	}
	tripID, ok := h.tripID(w, r, span)
	if !ok {
		return
	}

	var req types.TripChatRequest
	if err := api.DecodeAndValidate(w, r, &req); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Invalid request")
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	result, t, err := h.service.ChatEdit(ctx, tripID, userID, req.Message)
	if err != nil {
		h.writeServiceError(w, r, l, span, err, "Failed to apply chat edit")
		return
	}

	span.SetStatus(codes.Ok, "Chat edit applied")
	api.WriteJSONResponse(w, r, http.StatusOK, types.ChatResponse{
		Success:    true,
		ChatResult: *result,
		Trip:       t,
		Timestamp:  h.now().UTC(),
	})
}
