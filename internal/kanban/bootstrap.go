package kanban

import (
	"context"

	"github.com/npaulus/kanban-server/internal/codec"
	"github.com/npaulus/kanban-server/internal/domain"
	"github.com/npaulus/kanban-server/internal/fixture"
)

// Phase tracks the container's bootstrap progress.
type Phase string

// Bootstrap phases. Transitions only ever run forward.
const (
	PhaseUninitialized Phase = "uninitialized"
	PhaseHydrating     Phase = "hydrating"
	PhaseReady         Phase = "ready"
)

// SnapshotStore is the slice of the store hydration needs.
type SnapshotStore interface {
	IsSupported() bool
	Init(ctx context.Context) error
	GetState(ctx context.Context) ([]byte, bool, error)
}

// Phase returns the current bootstrap phase.
func (c *Container) Phase() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

// Initialize hydrates the container from the store. A persisted snapshot
// is adopted verbatim; with no snapshot, an unsupported store, or a failed
// init, the state falls back to the demo fixture in development mode and
// stays empty otherwise. Storage trouble is logged and tolerated, never
// surfaced. Calling Initialize again once hydration has started is a no-op.
func (c *Container) Initialize(ctx context.Context, store SnapshotStore) {
	c.mu.Lock()
	if c.phase != PhaseUninitialized {
		c.mu.Unlock()
		return
	}
	c.phase = PhaseHydrating
	c.mu.Unlock()

	state := c.hydrate(ctx, store)

	c.mu.Lock()
	c.state = state
	c.phase = PhaseReady
	c.notifyLocked()
	c.mu.Unlock()

	if c.logger != nil {
		c.logger.Info("Board state hydrated",
			"boards", len(state.Boards),
			"cards", len(state.Cards),
		)
	}
}

func (c *Container) hydrate(ctx context.Context, store SnapshotStore) *domain.BoardState {
	if store != nil && store.IsSupported() {
		if err := store.Init(ctx); err != nil {
			if c.logger != nil {
				c.logger.Warn("Storage init failed, falling back", "error", err)
			}
			return c.fallbackState()
		}

		data, ok, err := store.GetState(ctx)
		if err != nil {
			if c.logger != nil {
				c.logger.Warn("Reading persisted snapshot failed, falling back", "error", err)
			}
			return c.fallbackState()
		}
		if ok {
			// A malformed snapshot decodes to the empty state; that is
			// still an adoption, not a fixture fallback.
			return codec.Deserialize(data)
		}
	}

	return c.fallbackState()
}

func (c *Container) fallbackState() *domain.BoardState {
	if c.devMode {
		return fixture.State()
	}
	return domain.NewState()
}
