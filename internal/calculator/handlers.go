package calculator

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"

	"toolbox/internal/handlers"
	"toolbox/internal/numeric"
	"toolbox/internal/observability"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// tracer is the calculator's dedicated OpenTelemetry tracer.
var tracer = otel.Tracer("calculator")

var errNoSession = errors.New("no calculator session in request context")

// Resolver returns the calculator session of the workspace in ctx.
type Resolver func(ctx context.Context) (*Session, bool)

// Handler serves one calculator session per workspace.
type Handler struct {
	resolve Resolver
}

func NewHandler(resolve Resolver) *Handler {
	return &Handler{resolve: resolve}
}

// Evaluate handles POST /calculator/evaluate. It presses the keys on a fresh
// calculator and returns the resulting view. Nothing is stored.
func Evaluate(w http.ResponseWriter, r *http.Request) {
	handleKeys(w, r, "evaluate", func(keys []Key) State {
		return NewState().PressAll(keys...)
	})
}

// Press handles POST /workspaces/{id}/calculator/keys
func (h *Handler) Press(w http.ResponseWriter, r *http.Request) {
	session, ok := h.resolve(r.Context())
	if !ok {
		h.notFound(w, r, "press")
		return
	}
	handleKeys(w, r, "press", func(keys []Key) State {
		return session.Press(keys...)
	})
}

// Get handles GET /workspaces/{id}/calculator
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	session, ok := h.resolve(r.Context())
	if !ok {
		h.notFound(w, r, "get")
		return
	}
	handlers.WriteJSON(w, http.StatusOK, Render(r.Context(), session.State()))
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request, opName string) {
	ctx := r.Context()
	observability.RecordError(ctx, trace.SpanFromContext(ctx), observability.LoggerWithTrace(ctx),
		errorCounter, opName, "workspace not found", errNoSession, http.StatusNotFound, w)
}

// handleKeys decodes a KeysRequest, applies it through press and writes the
// rendered view. Each key is added to the span as an event.
func handleKeys(w http.ResponseWriter, r *http.Request, opName string, press func([]Key) State) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, fmt.Sprintf("calculator.%s", opName),
		trace.WithAttributes(
			attribute.String("calculator.operation", opName),
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	var req KeysRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, opName, "invalid request body", err, http.StatusBadRequest, w)
		return
	}

	if len(req.Keys) == 0 {
		observability.RecordError(ctx, span, logger, errorCounter, opName, "no keys provided", fmt.Errorf("keys array is empty"), http.StatusBadRequest, w)
		return
	}

	keys, err := ParseKeys(req.Keys)
	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, opName, err.Error(), err, http.StatusBadRequest, w)
		return
	}

	for _, k := range keys {
		keysCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", string(k.Kind()))))
		span.AddEvent("key.pressed", trace.WithAttributes(attribute.String("key", string(k))))
	}

	state := press(keys)

	if keys[len(keys)-1] == KeyEquals {
		if v := numeric.Parse(state.Display); !math.IsNaN(v) && !math.IsInf(v, 0) {
			resultGauge.Record(ctx, v, metric.WithAttributes(attribute.String("operation", opName)))
		}
	}

	span.SetAttributes(
		attribute.Int("calculator.keys_count", len(keys)),
		attribute.String("calculator.display", state.Display),
	)
	span.SetStatus(codes.Ok, "")

	logger.Info("calculator keys applied",
		zap.String("operation", opName),
		zap.Strings("keys", req.Keys),
		zap.String("display", state.Display),
		zap.Bool("pending", state.Pending != nil),
		zap.String("request_id", requestID),
	)

	handlers.WriteJSON(w, http.StatusOK, Render(ctx, state))
}
