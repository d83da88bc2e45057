package tripChat

import (
	"log/slog"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"

	"github.com/FACorreiaa/go-trip-planner/app/observability/metrics"
	"github.com/FACorreiaa/go-trip-planner/internal/api"
	"github.com/FACorreiaa/go-trip-planner/internal/types"
)

// Handler serves the stateless chat endpoints. The edit is computed from the
// plan in the request body and nothing is persisted.
type Handler struct {
	logger      *slog.Logger
	interpreter *Interpreter
	now         func() time.Time
}

func NewChatHandler(interpreter *Interpreter, logger *slog.Logger) *Handler {
	return &Handler{logger: logger, interpreter: interpreter, now: time.Now}
}

type suggestionsResponse struct {
	Success     bool     `json:"success"`
	Suggestions []string `json:"suggestions"`
}

// Chat godoc
// @Summary      Edit one day of an itinerary
// @Description  Interprets a free-text request and returns the activity patch for the addressed day.
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        request body types.ChatRequest true "Message and current trip plan"
// @Success      200 {object} types.ChatResponse
// @Failure      400 {object} api.Response
// @Router       /chat [post]
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ChatHandler").Start(r.Context(), "Chat")
	defer span.End()
	l := h.logger.With(slog.String("handler", "Chat"))

	var req types.ChatRequest
	if err := api.DecodeAndValidate(w, r, &req); err != nil {
		l.WarnContext(ctx, "Invalid chat request", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Invalid request")
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	intent, result := h.interpreter.Process(req.Message, req.TripData)
	metrics.Get().ChatRequestsTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("verb", string(intent.Verb)),
		attribute.Bool("applied", result.DayModified != nil),
	))
	span.SetAttributes(
		attribute.String("chat.verb", string(intent.Verb)),
		attribute.StringSlice("chat.categories", intent.Categories),
	)
	if result.DayModified != nil {
		span.SetAttributes(attribute.Int("chat.day", *result.DayModified))
	}

	l.InfoContext(ctx, "Chat request interpreted",
		slog.String("verb", string(intent.Verb)),
		slog.Any("categories", intent.Categories),
		slog.Int("activities", len(result.UpdatedActivities)))
	span.SetStatus(codes.Ok, "Chat interpreted")
	api.WriteJSONResponse(w, r, http.StatusOK, types.ChatResponse{
		Success:    true,
		ChatResult: result,
		Timestamp:  h.now().UTC(),
	})
}

// Suggestions godoc
// @Summary      Example chat requests
// @Tags         chat
// @Produce      json
// @Success      200 {object} suggestionsResponse
// @Router       /chat/suggestions [get]
func (h *Handler) Suggestions(w http.ResponseWriter, r *http.Request) {
	api.WriteJSONResponse(w, r, http.StatusOK, suggestionsResponse{Success: true, Suggestions: Suggestions()})
}
