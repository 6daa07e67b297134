package workspace

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"toolbox/internal/currency"
	"toolbox/internal/observability"
	"toolbox/internal/testutil"
	"toolbox/internal/theme"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T, opts Options, rater *staticRater) (http.Handler, *Handler, *Registry) {
	t.Helper()
	observability.Logger = zap.NewNop()
	if err := InitMetrics(); err != nil {
		t.Fatalf("initializing workspace metrics: %v", err)
	}
	if err := currency.InitMetrics(); err != nil {
		t.Fatalf("initializing currency metrics: %v", err)
	}

	reg := NewRegistry(rater)
	h := NewHandler(reg, opts)
	t.Cleanup(h.Wait)

	r := chi.NewRouter()
	h.RegisterRoutes(r)
	return r, h, reg
}

func TestCreateWorkspace(t *testing.T) {
	rater := &staticRater{gate: make(chan struct{})}
	h, handler, reg := newTestRouter(t, Options{ConvertOnCreate: true}, rater)
	t.Cleanup(rater.release)

	req := httptest.NewRequest(http.MethodPost, "/workspaces/", bytes.NewReader([]byte(`{"theme":"dark"}`)))
	w := testutil.ExecuteRequest(req, h)
	testutil.CheckResponseCode(t, http.StatusCreated, w.Code)

	var v View
	testutil.DecodeJSONBody(t, w.Body, &v)

	if v.ID == "" || v.Theme != theme.Dark {
		t.Fatalf("unexpected workspace %+v", v)
	}
	if reg.Len() != 1 {
		t.Fatalf("expected 1 workspace, got %d", reg.Len())
	}
	if !v.Currency.Loading || v.Currency.Result != nil {
		t.Fatalf("expected the initial conversion in flight, got %+v", v.Currency)
	}

	rater.release()
	handler.Wait()

	if n := rater.calls.Load(); n != 1 {
		t.Fatalf("expected initial conversion, got %d calls", n)
	}

	w = testutil.ExecuteRequest(httptest.NewRequest(http.MethodGet, "/workspaces/"+v.ID+"/", nil), h)
	testutil.CheckResponseCode(t, http.StatusOK, w.Code)
	testutil.DecodeJSONBody(t, w.Body, &v)
	if v.Currency.Loading || v.Currency.Result == nil || v.Currency.Result.Converted != "8300.00 INR" {
		t.Fatalf("expected initial result, got %+v", v.Currency)
	}
}

func TestCreateWorkspaceConversionOutlivesRequest(t *testing.T) {
	rater := &staticRater{gate: make(chan struct{})}
	h, handler, reg := newTestRouter(t, Options{ConvertOnCreate: true}, rater)
	t.Cleanup(rater.release)

	ctx, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest(http.MethodPost, "/workspaces/", nil).WithContext(ctx)
	w := testutil.ExecuteRequest(req, h)
	testutil.CheckResponseCode(t, http.StatusCreated, w.Code)

	var v View
	testutil.DecodeJSONBody(t, w.Body, &v)

	cancel()
	rater.release()
	handler.Wait()

	ws, err := reg.Get(v.ID)
	if err != nil {
		t.Fatalf("get workspace: %v", err)
	}
	snap := ws.Converter.Snapshot()
	if snap.Error != "" || snap.Result == nil {
		t.Fatalf("expected the conversion to survive the disconnect, got %+v", snap)
	}
}

func TestCreateWorkspaceWithoutBodyUsesDefaults(t *testing.T) {
	rater := &staticRater{}
	h, handler, _ := newTestRouter(t, Options{DefaultTheme: theme.Dark}, rater)

	w := testutil.ExecuteRequest(httptest.NewRequest(http.MethodPost, "/workspaces/", nil), h)
	testutil.CheckResponseCode(t, http.StatusCreated, w.Code)

	var v View
	testutil.DecodeJSONBody(t, w.Body, &v)
	if v.Theme != theme.Dark {
		t.Fatalf("expected default dark theme, got %q", v.Theme)
	}
	handler.Wait()
	if n := rater.calls.Load(); n != 0 {
		t.Fatalf("expected no conversion, got %d calls", n)
	}
	if v.Currency.Result != nil {
		t.Fatalf("expected no result, got %+v", v.Currency.Result)
	}
}

func TestCreateWorkspaceRejectsUnknownTheme(t *testing.T) {
	h, _, reg := newTestRouter(t, Options{}, &staticRater{})

	req := httptest.NewRequest(http.MethodPost, "/workspaces/", bytes.NewReader([]byte(`{"theme":"sepia"}`)))
	w := testutil.ExecuteRequest(req, h)
	testutil.CheckResponseCode(t, http.StatusBadRequest, w.Code)

	if reg.Len() != 0 {
		t.Fatalf("expected no workspace, got %d", reg.Len())
	}
}

func TestWorkspaceLookupToggleAndDelete(t *testing.T) {
	h, _, reg := newTestRouter(t, Options{}, &staticRater{})
	ws := reg.Create(theme.Light)
	base := "/workspaces/" + ws.ID

	w := testutil.ExecuteRequest(httptest.NewRequest(http.MethodPost, base+"/theme/toggle", nil), h)
	testutil.CheckResponseCode(t, http.StatusOK, w.Code)

	var tv ThemeView
	testutil.DecodeJSONBody(t, w.Body, &tv)
	if tv.Theme != theme.Dark {
		t.Fatalf("expected dark after toggle, got %q", tv.Theme)
	}

	w = testutil.ExecuteRequest(httptest.NewRequest(http.MethodGet, base+"/", nil), h)
	testutil.CheckResponseCode(t, http.StatusOK, w.Code)

	var v View
	testutil.DecodeJSONBody(t, w.Body, &v)
	if v.ID != ws.ID || v.Calculator.Theme != theme.Dark {
		t.Fatalf("unexpected workspace view %+v", v)
	}

	w = testutil.ExecuteRequest(httptest.NewRequest(http.MethodDelete, base+"/", nil), h)
	testutil.CheckResponseCode(t, http.StatusNoContent, w.Code)

	w = testutil.ExecuteRequest(httptest.NewRequest(http.MethodGet, base+"/", nil), h)
	testutil.CheckResponseCode(t, http.StatusNotFound, w.Code)
}

func TestUnknownWorkspaceReturnsNotFound(t *testing.T) {
	h, _, _ := newTestRouter(t, Options{}, &staticRater{})

	w := testutil.ExecuteRequest(httptest.NewRequest(http.MethodGet, "/workspaces/missing/", nil), h)
	testutil.CheckResponseCode(t, http.StatusNotFound, w.Code)

	var body map[string]string
	testutil.DecodeJSONBody(t, w.Body, &body)
	if body["error"] != "workspace not found" {
		t.Fatalf("unexpected error body %+v", body)
	}
}
