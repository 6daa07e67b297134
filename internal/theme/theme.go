package theme

import (
	"context"
	"fmt"
	"sync"
)

// Theme is the colour scheme every widget renders with.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

type contextKey struct{}

func Parse(s string) (Theme, error) {
	switch Theme(s) {
	case Light, Dark:
		return Theme(s), nil
	case "":
		return Light, nil
	}
	return "", fmt.Errorf("unknown theme %q", s)
}

// Toggled returns the opposite theme.
func (t Theme) Toggled() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

func (t Theme) IsDark() bool {
	return t == Dark
}

// NewContext returns ctx carrying t for the widgets rendered under it.
func NewContext(ctx context.Context, t Theme) context.Context {
	return context.WithValue(ctx, contextKey{}, t)
}

// FromContext returns the theme in ctx, or Light when none was provided.
func FromContext(ctx context.Context) Theme {
	t, ok := ctx.Value(contextKey{}).(Theme)
	if !ok {
		return Light
	}
	return t
}

// Provider holds one workspace's theme.
type Provider struct {
	mu    sync.RWMutex
	theme Theme
}

func NewProvider(initial Theme) *Provider {
	if initial == "" {
		initial = Light
	}
	return &Provider{theme: initial}
}

func (p *Provider) Theme() Theme {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.theme
}

// Toggle flips the theme and returns the new value.
func (p *Provider) Toggle() Theme {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.theme = p.theme.Toggled()
	return p.theme
}

// Context attaches the current theme to ctx.
func (p *Provider) Context(ctx context.Context) context.Context {
	return NewContext(ctx, p.Theme())
}
