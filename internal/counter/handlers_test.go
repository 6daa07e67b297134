package counter

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"toolbox/internal/observability"
	"toolbox/internal/testutil"
	"toolbox/internal/theme"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newTestRouter(t *testing.T, store *Store) http.Handler {
	t.Helper()
	if err := InitMetrics(); err != nil {
		t.Fatalf("initializing counter metrics: %v", err)
	}

	h := NewHandler(func(context.Context) (*Store, bool) { return store, store != nil })
	r := chi.NewRouter()
	h.Mount(r)
	return r
}

func dispatch(t *testing.T, h http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/counter/actions", bytes.NewReader([]byte(body)))
	req = req.WithContext(theme.NewContext(req.Context(), theme.Dark))
	return testutil.ExecuteRequest(req, h)
}

func TestDispatchAppliesActions(t *testing.T) {
	observability.Logger = zap.NewNop()
	h := newTestRouter(t, NewStore())

	var view View
	for _, body := range []string{
		`{"type":"increment"}`,
		`{"type":"incrementByAmount","amount":5}`,
		`{"type":"decrement"}`,
	} {
		w := dispatch(t, h, body)
		testutil.CheckResponseCode(t, http.StatusOK, w.Code)
		testutil.DecodeJSONBody(t, w.Body, &view)
	}

	if view.Value != 5 {
		t.Fatalf("expected value 5, got %d", view.Value)
	}
	if view.Theme != theme.Dark {
		t.Fatalf("expected dark theme, got %q", view.Theme)
	}
}

func TestDispatchLogsAction(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	observability.Logger = zap.New(core)
	t.Cleanup(func() { observability.Logger = zap.NewNop() })

	h := newTestRouter(t, NewStore())
	w := dispatch(t, h, `{"type":"incrementByAmount","amount":-4}`)
	testutil.CheckResponseCode(t, http.StatusOK, w.Code)

	entries := logs.FilterMessage("counter action dispatched").All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	if got := entries[0].ContextMap()["value"]; got != int64(-4) {
		t.Fatalf("expected value -4, got %#v", got)
	}
}

func TestDispatchRejectsBadInput(t *testing.T) {
	observability.Logger = zap.NewNop()
	store := NewStore()
	h := newTestRouter(t, store)

	for _, body := range []string{`{"type":`, `{"type":"reset"}`, `{"type":"increment","by":2}`} {
		w := dispatch(t, h, body)
		testutil.CheckResponseCode(t, http.StatusBadRequest, w.Code)
	}

	if got := store.State().Value; got != 0 {
		t.Fatalf("expected untouched store, got %d", got)
	}
}

func TestGetWithoutStoreReturnsNotFound(t *testing.T) {
	observability.Logger = zap.NewNop()
	h := newTestRouter(t, nil)

	w := testutil.ExecuteRequest(httptest.NewRequest(http.MethodGet, "/counter/", nil), h)
	testutil.CheckResponseCode(t, http.StatusNotFound, w.Code)
}
