// Package workspace holds one set of widgets per mounted page: a calculator,
// a counter, a currency converter and the theme they all render with.
package workspace

import (
	"context"
	"errors"
	"sync"
	"time"

	"toolbox/internal/calculator"
	"toolbox/internal/counter"
	"toolbox/internal/currency"
	"toolbox/internal/theme"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("workspace not found")

// Workspace is one page's worth of widget state. Each widget guards its own
// state; nothing is shared between workspaces.
type Workspace struct {
	ID        string
	CreatedAt time.Time

	Theme      *theme.Provider
	Calculator *calculator.Session
	Counter    *counter.Store
	Converter  *currency.Converter
}

// View is the rendered workspace.
type View struct {
	ID         string          `json:"id"`
	CreatedAt  time.Time       `json:"created_at"`
	Theme      theme.Theme     `json:"theme"`
	Calculator calculator.View `json:"calculator"`
	Counter    counter.View    `json:"counter"`
	Currency   currency.View   `json:"currency"`
}

// Render renders every widget with the workspace's theme.
func (w *Workspace) Render(ctx context.Context) View {
	ctx = w.Theme.Context(ctx)
	return View{
		ID:         w.ID,
		CreatedAt:  w.CreatedAt,
		Theme:      theme.FromContext(ctx),
		Calculator: calculator.Render(ctx, w.Calculator.State()),
		Counter:    counter.Render(ctx, w.Counter.State()),
		Currency:   currency.Render(ctx, w.Converter.Snapshot()),
	}
}

// Registry keeps live workspaces in memory.
type Registry struct {
	rater currency.Rater

	mu    sync.RWMutex
	items map[string]*Workspace
}

func NewRegistry(rater currency.Rater) *Registry {
	return &Registry{
		rater: rater,
		items: make(map[string]*Workspace),
	}
}

// Create builds a workspace with fresh widgets.
func (r *Registry) Create(t theme.Theme) *Workspace {
	ws := &Workspace{
		ID:         uuid.New().String(),
		CreatedAt:  time.Now().UTC(),
		Theme:      theme.NewProvider(t),
		Calculator: calculator.NewSession(),
		Counter:    counter.NewStore(),
		Converter:  currency.NewConverter(r.rater),
	}

	r.mu.Lock()
	r.items[ws.ID] = ws
	r.mu.Unlock()

	return ws
}

func (r *Registry) Get(id string) (*Workspace, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ws, ok := r.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	return ws, nil
}

// Delete drops the workspace and all its widget state.
func (r *Registry) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return ErrNotFound
	}
	delete(r.items, id)
	return nil
}

// Len returns the number of live workspaces.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

type contextKey struct{}

func NewContext(ctx context.Context, ws *Workspace) context.Context {
	return context.WithValue(ctx, contextKey{}, ws)
}

func FromContext(ctx context.Context) (*Workspace, bool) {
	ws, ok := ctx.Value(contextKey{}).(*Workspace)
	return ws, ok && ws != nil
}
