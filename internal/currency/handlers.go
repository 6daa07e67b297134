package currency

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"toolbox/internal/handlers"
	"toolbox/internal/observability"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("currency")

var errNoConverter = errors.New("no converter in request context")

// Resolver returns the converter of the workspace in ctx.
type Resolver func(ctx context.Context) (*Converter, bool)

type Handler struct {
	resolve Resolver
}

func NewHandler(resolve Resolver) *Handler {
	return &Handler{resolve: resolve}
}

// List handles GET /currencies
func List(w http.ResponseWriter, r *http.Request) {
	handlers.WriteJSON(w, http.StatusOK, All())
}

// Get handles GET /workspaces/{id}/currency
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	conv, ok := h.converter(w, r, "get")
	if !ok {
		return
	}
	handlers.WriteJSON(w, http.StatusOK, Render(r.Context(), conv.Snapshot()))
}

// SetAmount handles PUT /workspaces/{id}/currency/amount
func (h *Handler) SetAmount(w http.ResponseWriter, r *http.Request) {
	conv, ok := h.converter(w, r, "set_amount")
	if !ok {
		return
	}

	var req AmountRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.fail(w, r, "set_amount", "invalid request body", err, http.StatusBadRequest)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, Render(r.Context(), conv.SetAmount(req.Amount)))
}

// SetFrom handles PUT /workspaces/{id}/currency/from
func (h *Handler) SetFrom(w http.ResponseWriter, r *http.Request) {
	h.selectCode(w, r, "set_from", (*Converter).SetFrom)
}

// SetTo handles PUT /workspaces/{id}/currency/to
func (h *Handler) SetTo(w http.ResponseWriter, r *http.Request) {
	h.selectCode(w, r, "set_to", (*Converter).SetTo)
}

// Swap handles POST /workspaces/{id}/currency/swap. It never converts.
func (h *Handler) Swap(w http.ResponseWriter, r *http.Request) {
	conv, ok := h.converter(w, r, "swap")
	if !ok {
		return
	}

	snap := conv.Swap()
	observability.LoggerWithTrace(r.Context()).Info("currencies swapped",
		zap.String("from", string(snap.From)),
		zap.String("to", string(snap.To)),
		zap.String("request_id", observability.RequestIDFromContext(r.Context())),
	)

	handlers.WriteJSON(w, http.StatusOK, Render(r.Context(), snap))
}

// Convert handles POST /workspaces/{id}/currency/convert. Conversion
// failures are part of the rendered view, not HTTP errors.
func (h *Handler) Convert(w http.ResponseWriter, r *http.Request) {
	conv, ok := h.converter(w, r, "convert")
	if !ok {
		return
	}

	Track(r.Context(), "convert", conv.Convert)
	handlers.WriteJSON(w, http.StatusOK, Render(r.Context(), conv.Snapshot()))
}

func (h *Handler) selectCode(w http.ResponseWriter, r *http.Request, opName string, set func(*Converter, context.Context, Code) (Result, error)) {
	conv, ok := h.converter(w, r, opName)
	if !ok {
		return
	}

	var req CodeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.fail(w, r, opName, "invalid request body", err, http.StatusBadRequest)
		return
	}

	code, err := ParseCode(req.Code)
	if err != nil {
		h.fail(w, r, opName, err.Error(), err, http.StatusBadRequest)
		return
	}

	Track(r.Context(), opName, func(ctx context.Context) (Result, error) {
		return set(conv, ctx, code)
	})
	handlers.WriteJSON(w, http.StatusOK, Render(r.Context(), conv.Snapshot()))
}

func (h *Handler) converter(w http.ResponseWriter, r *http.Request, opName string) (*Converter, bool) {
	conv, ok := h.resolve(r.Context())
	if !ok {
		h.fail(w, r, opName, "workspace not found", errNoConverter, http.StatusNotFound)
	}
	return conv, ok
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, opName, msg string, err error, status int) {
	ctx := r.Context()
	observability.RecordError(ctx, trace.SpanFromContext(ctx), observability.LoggerWithTrace(ctx),
		errorCounter, opName, msg, err, status, w)
}

// Track runs convert inside a "currency.<opName>" span and records its
// duration, outcome and in-flight count.
func Track(ctx context.Context, opName string, convert func(context.Context) (Result, error)) (Result, error) {
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, fmt.Sprintf("currency.%s", opName),
		trace.WithAttributes(
			attribute.String("currency.operation", opName),
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	opAttr := attribute.String("operation", opName)
	inFlight.Add(ctx, 1, metric.WithAttributes(opAttr))
	start := time.Now()

	res, err := convert(ctx)

	elapsed := float64(time.Since(start).Microseconds()) / 1000.0
	inFlight.Add(ctx, -1, metric.WithAttributes(opAttr))

	outcome := "success"
	if err != nil {
		outcome = string(KindOf(err))
	}
	attrs := metric.WithAttributes(opAttr, attribute.String("outcome", outcome))
	conversionsCounter.Add(ctx, 1, attrs)
	conversionDuration.Record(ctx, elapsed, attrs)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, Message(err))

		logger.Warn("currency conversion failed",
			zap.String("operation", opName),
			zap.String("kind", outcome),
			zap.Error(err),
			zap.String("request_id", requestID),
			zap.Float64("duration_ms", elapsed),
		)
		return res, err
	}

	span.SetAttributes(
		attribute.Float64("currency.result", res.Result),
		attribute.Float64("currency.rate", res.Rate),
	)
	span.SetStatus(codes.Ok, "")

	logger.Info("currency conversion completed",
		zap.String("operation", opName),
		zap.Float64("result", res.Result),
		zap.Float64("rate", res.Rate),
		zap.String("request_id", requestID),
		zap.Float64("duration_ms", elapsed),
	)

	return res, nil
}
