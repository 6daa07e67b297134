package counter

import (
	"context"
	"errors"
	"net/http"

	"toolbox/internal/handlers"
	"toolbox/internal/observability"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("counter")

var errNoStore = errors.New("no counter store in request context")

// Resolver returns the counter store of the workspace in ctx.
type Resolver func(ctx context.Context) (*Store, bool)

type Handler struct {
	resolve Resolver
}

func NewHandler(resolve Resolver) *Handler {
	return &Handler{resolve: resolve}
}

// Get handles GET /workspaces/{id}/counter
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	store, ok := h.resolve(ctx)
	if !ok {
		observability.RecordError(ctx, trace.SpanFromContext(ctx), observability.LoggerWithTrace(ctx),
			errorCounter, "get", "workspace not found", errNoStore, http.StatusNotFound, w)
		return
	}
	handlers.WriteJSON(w, http.StatusOK, Render(ctx, store.State()))
}

// Dispatch handles POST /workspaces/{id}/counter/actions
func (h *Handler) Dispatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "counter.dispatch",
		trace.WithAttributes(attribute.String("request.id", requestID)),
	)
	defer span.End()

	store, ok := h.resolve(ctx)
	if !ok {
		observability.RecordError(ctx, span, logger, errorCounter, "dispatch", "workspace not found", errNoStore, http.StatusNotFound, w)
		return
	}

	var action Action
	if err := handlers.DecodeJSON(r, &action); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "dispatch", "invalid request body", err, http.StatusBadRequest, w)
		return
	}
	if err := action.Validate(); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "dispatch", err.Error(), err, http.StatusBadRequest, w)
		return
	}

	state := store.Dispatch(action)

	attrs := metric.WithAttributes(attribute.String("action", string(action.Type)))
	actionsCounter.Add(ctx, 1, attrs)
	valueGauge.Record(ctx, int64(state.Value))

	span.SetAttributes(
		attribute.String("counter.action", string(action.Type)),
		attribute.Int("counter.amount", action.Amount),
		attribute.Int("counter.value", state.Value),
	)
	span.SetStatus(codes.Ok, "")

	logger.Info("counter action dispatched",
		zap.String("action", string(action.Type)),
		zap.Int("amount", action.Amount),
		zap.Int("value", state.Value),
		zap.String("request_id", requestID),
	)

	handlers.WriteJSON(w, http.StatusOK, Render(ctx, state))
}
