// Package persist schedules board snapshot writes behind a single writer
// goroutine. Mutations hand their snapshot to Schedule and move on; the
// writer coalesces bursts with a trailing debounce so only the newest
// snapshot inside a quiet period reaches disk. At most one write is in
// flight at any time, so persisted snapshots can never interleave out of
// order.
package persist

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/npaulus/kanban-server/internal/codec"
	"github.com/npaulus/kanban-server/internal/domain"
)

// DefaultDebounce is the quiet period before a scheduled snapshot is
// written.
const DefaultDebounce = 250 * time.Millisecond

// shutdownFlushTimeout bounds the final write during Shutdown, whose caller
// context is usually already canceled.
const shutdownFlushTimeout = 5 * time.Second

// StateStore is the slice of the store the writer needs.
type StateStore interface {
	IsSupported() bool
	SetState(ctx context.Context, value []byte) error
}

// Writer owns all persistence writes. Create with New, call Start once,
// then Schedule from any goroutine.
type Writer struct {
	store    StateStore
	logger   *slog.Logger
	debounce time.Duration

	mu      sync.Mutex
	pending *domain.BoardState

	kick chan struct{}
	stop chan struct{}
	done chan struct{}

	startOnce sync.Once
	stopOnce  sync.Once
}

// New creates a writer. A non-positive debounce falls back to
// DefaultDebounce.
func New(store StateStore, logger *slog.Logger, debounce time.Duration) *Writer {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Writer{
		store:    store,
		logger:   logger,
		debounce: debounce,
		kick:     make(chan struct{}, 1),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start launches the writer goroutine. Calling it again does nothing.
func (w *Writer) Start() {
	w.startOnce.Do(func() {
		go w.run()
	})
}

// Schedule queues the snapshot for writing after the debounce quiet period.
// A snapshot scheduled while another is waiting replaces it; only the
// newest survives. The snapshot must not be mutated after scheduling; the
// container publishes immutable snapshots and never touches one again.
// Persistence failures are logged, never surfaced: board state stays
// authoritative in memory.
func (w *Writer) Schedule(state *domain.BoardState) {
	if !w.store.IsSupported() {
		return
	}

	w.mu.Lock()
	w.pending = state
	w.mu.Unlock()

	select {
	case w.kick <- struct{}{}:
	default:
	}
}

// Shutdown stops the writer, flushing any pending snapshot first. It
// returns once the final write has finished or ctx expires.
func (w *Writer) Shutdown(ctx context.Context) error {
	w.stopOnce.Do(func() {
		close(w.stop)
	})
	select {
	case <-w.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (w *Writer) run() {
	defer close(w.done)

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	armed := false

	for {
		select {
		case <-w.kick:
			if armed && !timer.Stop() {
				<-timer.C
			}
			timer.Reset(w.debounce)
			armed = true

		case <-timer.C:
			armed = false
			w.flush(context.Background())

		case <-w.stop:
			if armed && !timer.Stop() {
				<-timer.C
			}
			ctx, cancel := context.WithTimeout(context.Background(), shutdownFlushTimeout)
			w.flush(ctx)
			cancel()
			return
		}
	}
}

// flush writes the pending snapshot, if any.
func (w *Writer) flush(ctx context.Context) {
	w.mu.Lock()
	state := w.pending
	w.pending = nil
	w.mu.Unlock()

	if state == nil {
		return
	}

	data, err := codec.Serialize(state)
	if err != nil {
		w.logError("Failed to serialize board snapshot", err)
		return
	}

	if err := w.store.SetState(ctx, data); err != nil {
		w.logError("Failed to persist board snapshot", err)
		return
	}

	if w.logger != nil {
		w.logger.Debug("Board snapshot persisted", "bytes", len(data))
	}
}

func (w *Writer) logError(msg string, err error) {
	if w.logger != nil {
		w.logger.Error(msg, "error", err)
	}
}
