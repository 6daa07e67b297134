package workspace

import (
	"context"
	"errors"
	"io"
	"net/http"
	"sync"

	"toolbox/internal/currency"
	"toolbox/internal/handlers"
	"toolbox/internal/observability"
	"toolbox/internal/theme"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("workspace")

// Options control how new workspaces start.
type Options struct {
	DefaultTheme theme.Theme
	// ConvertOnCreate runs the converter's first conversion as soon as the
	// workspace exists.
	ConvertOnCreate bool
}

// CreateRequest is the optional JSON body for POST /workspaces.
type CreateRequest struct {
	Theme string `json:"theme"`
}

// ThemeView is the response of the theme toggle.
type ThemeView struct {
	Theme theme.Theme `json:"theme"`
}

type Handler struct {
	registry *Registry
	opts     Options

	background sync.WaitGroup
}

func NewHandler(registry *Registry, opts Options) *Handler {
	if opts.DefaultTheme == "" {
		opts.DefaultTheme = theme.Light
	}
	return &Handler{registry: registry, opts: opts}
}

// Wait blocks until every initial conversion started by Create has finished.
func (h *Handler) Wait() {
	h.background.Wait()
}

// Create handles POST /workspaces
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "workspace.create",
		trace.WithAttributes(attribute.String("request.id", requestID)),
	)
	defer span.End()

	var req CreateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		observability.RecordError(ctx, span, logger, errorCounter, "create", "invalid request body", err, http.StatusBadRequest, w)
		return
	}

	t := h.opts.DefaultTheme
	if req.Theme != "" {
		parsed, err := theme.Parse(req.Theme)
		if err != nil {
			observability.RecordError(ctx, span, logger, errorCounter, "create", err.Error(), err, http.StatusBadRequest, w)
			return
		}
		t = parsed
	}

	ws := h.registry.Create(t)
	lifecycleCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("event", "created")))

	if h.opts.ConvertOnCreate {
		// Runs past the response; the converter shows loading until it lands.
		convert := ws.Converter.Start()
		bg := context.WithoutCancel(ctx)
		h.background.Go(func() {
			currency.Track(bg, "initial", convert)
		})
	}

	span.SetAttributes(
		attribute.String("workspace.id", ws.ID),
		attribute.String("workspace.theme", string(t)),
	)
	span.SetStatus(codes.Ok, "")

	logger.Info("workspace created",
		zap.String("workspace_id", ws.ID),
		zap.String("theme", string(t)),
		zap.Int("active", h.registry.Len()),
		zap.String("request_id", requestID),
	)

	handlers.WriteJSON(w, http.StatusCreated, ws.Render(ctx))
}

// Get handles GET /workspaces/{workspaceID}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	ws, _ := FromContext(r.Context())
	handlers.WriteJSON(w, http.StatusOK, ws.Render(r.Context()))
}

// Delete handles DELETE /workspaces/{workspaceID}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ws, _ := FromContext(ctx)

	if err := h.registry.Delete(ws.ID); err != nil {
		observability.RecordError(ctx, trace.SpanFromContext(ctx), observability.LoggerWithTrace(ctx),
			errorCounter, "delete", err.Error(), err, http.StatusNotFound, w)
		return
	}
	lifecycleCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("event", "deleted")))

	observability.LoggerWithTrace(ctx).Info("workspace deleted",
		zap.String("workspace_id", ws.ID),
		zap.String("request_id", observability.RequestIDFromContext(ctx)),
	)

	w.WriteHeader(http.StatusNoContent)
}

// ToggleTheme handles POST /workspaces/{workspaceID}/theme/toggle
func (h *Handler) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	ws, _ := FromContext(r.Context())
	handlers.WriteJSON(w, http.StatusOK, ThemeView{Theme: ws.Theme.Toggle()})
}

// Middleware loads the workspace named by the {workspaceID} URL parameter
// and puts it, and its theme, into the request context.
func (h *Handler) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id := chi.URLParam(r, "workspaceID")

		ws, err := h.registry.Get(id)
		if err != nil {
			observability.RecordError(ctx, trace.SpanFromContext(ctx), observability.LoggerWithTrace(ctx),
				errorCounter, "lookup", err.Error(), err, http.StatusNotFound, w)
			return
		}

		trace.SpanFromContext(ctx).SetAttributes(attribute.String("workspace.id", ws.ID))
		ctx = ws.Theme.Context(NewContext(ctx, ws))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
