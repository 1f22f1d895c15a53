package builder

import (
	"context"
	"sync"

	dualmap "github.com/flywave/go-dualmap"
)

// Map is a canvas displaying layers.
type Map interface {
	AddLayer(*dualmap.Layer)
	RemoveLayer(*dualmap.Layer)
}

// Ticket orders the updates of a Canvas.
type Ticket uint64

// Canvas owns the layer shown on one Map. Updates are ticketed so that a
// build finishing after a newer one has been committed is discarded.
type Canvas struct {
	mu        sync.Mutex
	dst       Map
	layer     *dualmap.Layer
	issued    Ticket
	committed Ticket
}

func NewCanvas(m Map) *Canvas {
	return &Canvas{dst: m}
}

// Begin issues the ticket for a new update.
func (c *Canvas) Begin() Ticket {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.issued++
	return c.issued
}

// Commit replaces the displayed layer with l unless a newer ticket has
// already been committed. A nil l clears the canvas. Commit reports
// whether l was applied.
func (c *Canvas) Commit(t Ticket, l *dualmap.Layer) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if t <= c.committed {
		return false
	}
	c.committed = t
	if c.layer != nil {
		c.dst.RemoveLayer(c.layer)
	}
	c.layer = l
	if l != nil {
		c.dst.AddLayer(l)
	}
	return true
}

// Layer returns the layer currently shown.
func (c *Canvas) Layer() *dualmap.Layer {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.layer
}

// Update builds a layer with b and commits it.
func (c *Canvas) Update(ctx context.Context, b *Builder, mode dualmap.Mode, year string) bool {
	t := c.Begin()
	return c.Commit(t, b.Build(ctx, mode, year))
}
