// Package runctl holds the run-scoped cancellation token and the handles of
// the external resources that can block indefinitely: the media fetcher
// process and the browser session.
package runctl

import (
	"context"
	"sync"
)

// Slot names one single-occupancy handle reference.
type Slot int

const (
	SlotProcess Slot = iota
	SlotSession
	numSlots
)

func (s Slot) String() string {
	switch s {
	case SlotProcess:
		return "process"
	case SlotSession:
		return "session"
	}
	return "unknown"
}

// Handle is an in-flight external resource that can be forcibly stopped.
type Handle interface {
	Terminate() error
}

// HandleFunc adapts a function to Handle.
type HandleFunc func() error

func (f HandleFunc) Terminate() error { return f() }

type ctxKey struct{}

// Control is shared between the worker running the pipeline and whoever may
// stop it. Abort is safe to call from any goroutine, any number of times.
type Control struct {
	ctx    context.Context
	cancel context.CancelFunc

	mu    sync.Mutex
	slots [numSlots]*entry
}

// entry wraps a held handle so slots compare by identity; Handle values
// such as HandleFunc are not comparable.
type entry struct {
	h Handle
}

// New creates a Control whose context is derived from parent.
func New(parent context.Context) *Control {
	c := &Control{}
	ctx, cancel := context.WithCancel(parent)
	c.ctx = context.WithValue(ctx, ctxKey{}, c)
	c.cancel = cancel
	return c
}

// Context returns the run context. It carries the Control so adapters can
// register handles with Hold.
func (c *Control) Context() context.Context {
	return c.ctx
}

// Cancelled reports whether the run has been aborted.
func (c *Control) Cancelled() bool {
	return c.ctx.Err() != nil
}

// Abort signals cancellation and terminates every held handle.
// It returns the first termination error, if any.
func (c *Control) Abort() error {
	c.cancel()

	c.mu.Lock()
	held := c.slots
	c.slots = [numSlots]*entry{}
	c.mu.Unlock()

	var firstErr error
	for _, e := range held {
		if e == nil {
			continue
		}
		if err := e.h.Terminate(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Hold places h in slot, replacing any previous occupant. The returned
// function empties the slot if it still holds h. If the run is already
// aborted, h is terminated immediately.
func (c *Control) Hold(slot Slot, h Handle) (release func()) {
	c.mu.Lock()
	if c.ctx.Err() != nil {
		c.mu.Unlock()
		_ = h.Terminate()
		return func() {}
	}
	e := &entry{h: h}
	c.slots[slot] = e
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.slots[slot] == e {
			c.slots[slot] = nil
		}
	}
}

// Held returns the current occupant of slot.
func (c *Control) Held(slot Slot) Handle {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e := c.slots[slot]; e != nil {
		return e.h
	}
	return nil
}

// FromContext returns the Control carried by ctx, if any.
func FromContext(ctx context.Context) (*Control, bool) {
	c, ok := ctx.Value(ctxKey{}).(*Control)
	return c, ok
}

// Hold registers h with the Control carried by ctx. Without one it is a no-op.
func Hold(ctx context.Context, slot Slot, h Handle) (release func()) {
	if c, ok := FromContext(ctx); ok {
		return c.Hold(slot, h)
	}
	return func() {}
}
