// Package kanban owns the in-memory board state and every mutation on it.
//
// The container is the single writer of the snapshot: each mutation clones
// the current state, applies its change, and swaps the pointer. Published
// snapshots are never mutated in place, so observers and the persistence
// writer can hold them without copying. Mutations report success as a bool;
// the failure message lands in the snapshot's error field instead of being
// thrown across the API boundary.
package kanban

import (
	"log/slog"
	"sync"
	"time"

	"github.com/npaulus/kanban-server/internal/domain"
	"github.com/npaulus/kanban-server/internal/id"
	"github.com/npaulus/kanban-server/internal/validation"
)

// Persister receives each successfully committed snapshot for background
// persistence.
type Persister interface {
	Schedule(state *domain.BoardState)
}

// Observer is called synchronously with the full new snapshot after every
// state replacement, on the goroutine that performed the mutation and with
// the container lock held. An observer must not call back into the
// container, nor invoke its own unsubscribe handle; doing either deadlocks.
// The snapshot must be treated as read-only.
type Observer func(state *domain.BoardState)

// Container holds the board state and serializes all access to it.
type Container struct {
	logger    *slog.Logger
	persister Persister
	validate  *validation.Validator
	devMode   bool

	mu          sync.Mutex
	state       *domain.BoardState
	phase       Phase
	lastErr     error
	subscribers map[string]Observer

	// injectable for deterministic tests
	now func() time.Time
}

// New creates a container with the defined empty state. Pass a nil
// persister to disable persistence scheduling entirely.
func New(persister Persister, logger *slog.Logger, devMode bool) *Container {
	return &Container{
		logger:      logger,
		persister:   persister,
		validate:    validation.New(),
		devMode:     devMode,
		state:       domain.NewState(),
		phase:       PhaseUninitialized,
		subscribers: make(map[string]Observer),
		now:         time.Now,
	}
}

// Subscribe registers an observer and returns its unsubscribe handle. The
// observer immediately receives the current snapshot.
func (c *Container) Subscribe(fn Observer) (unsubscribe func()) {
	c.mu.Lock()
	key := id.MustGenerate("sub")
	c.subscribers[key] = fn
	state := c.state
	c.mu.Unlock()

	fn(state)

	return func() {
		c.mu.Lock()
		delete(c.subscribers, key)
		c.mu.Unlock()
	}
}

// Snapshot returns a deep copy of the current state for callers that
// cannot subscribe.
func (c *Container) Snapshot() *domain.BoardState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Clone()
}

// LastError returns the failure message of the most recent failed
// mutation, empty after a success.
func (c *Container) LastError() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Error
}

// LastFailure returns the typed error behind LastError, nil after a
// success. Like the snapshot's error field it is shared state: under
// concurrent mutations it reflects whichever failure happened last.
func (c *Container) LastFailure() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

// commit publishes next as the new snapshot, notifies observers, and
// schedules persistence. Callers hold the mutex.
func (c *Container) commit(next *domain.BoardState) bool {
	next.Error = ""
	next.Loading = false
	c.state = next
	c.lastErr = nil
	c.notifyLocked()
	if c.persister != nil {
		c.persister.Schedule(next)
	}
	return true
}

// fail records the error in a fresh snapshot, leaving all entity data
// intact, and notifies observers. Nothing is scheduled for persistence.
// Callers hold the mutex.
func (c *Container) fail(err error) bool {
	next := c.state.Clone()
	next.Error = err.Error()
	next.Loading = false
	c.state = next
	c.lastErr = err
	c.notifyLocked()
	if c.logger != nil {
		c.logger.Warn("Mutation failed", "error", err)
	}
	return false
}

func (c *Container) notifyLocked() {
	for _, fn := range c.subscribers {
		fn(c.state)
	}
}
