// Package observability provides hooks for metrics, tracing, and logging.
//
// The grid package itself stays silent; the pipeline reports each pack
// and render through these hooks so a host application can attach
// metrics without cardgrid depending on any metrics backend.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetGridHooks(&myGridHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Grid().OnPackStart(ctx, "exact", len(cards))
//	// ... pack ...
//	observability.Grid().OnPackComplete(ctx, "exact", columns, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Grid Hooks
// =============================================================================

// GridHooks receives events from grid packing and rendering.
type GridHooks interface {
	// Pack events
	OnPackStart(ctx context.Context, strategy string, elements int)
	OnPackComplete(ctx context.Context, strategy string, columns int, duration time.Duration, err error)

	// Render events
	OnRenderStart(ctx context.Context, rows int)
	OnRenderComplete(ctx context.Context, size int, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopGridHooks is a no-op implementation of GridHooks.
type NoopGridHooks struct{}

func (NoopGridHooks) OnPackStart(context.Context, string, int)                          {}
func (NoopGridHooks) OnPackComplete(context.Context, string, int, time.Duration, error) {}
func (NoopGridHooks) OnRenderStart(context.Context, int)                                {}
func (NoopGridHooks) OnRenderComplete(context.Context, int, time.Duration, error)       {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	gridHooks GridHooks = NoopGridHooks{}
	hooksMu   sync.RWMutex
)

// SetGridHooks registers custom grid hooks.
// This should be called once at application startup before any packing.
func SetGridHooks(h GridHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		gridHooks = h
	}
}

// Grid returns the registered grid hooks.
func Grid() GridHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return gridHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	gridHooks = NoopGridHooks{}
}
