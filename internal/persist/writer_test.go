package persist

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/npaulus/kanban-server/internal/codec"
	"github.com/npaulus/kanban-server/internal/domain"
)

type fakeStore struct {
	mu        sync.Mutex
	supported bool
	writes    [][]byte
	failWith  error
}

func (f *fakeStore) IsSupported() bool { return f.supported }

func (f *fakeStore) SetState(_ context.Context, value []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return f.failWith
	}
	f.writes = append(f.writes, value)
	return nil
}

func (f *fakeStore) writeCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.writes)
}

func (f *fakeStore) lastWrite() []byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.writes) == 0 {
		return nil
	}
	return f.writes[len(f.writes)-1]
}

func stateWithBoard(title string) *domain.BoardState {
	s := domain.NewState()
	s.Boards = append(s.Boards, domain.Board{ID: "b1", Title: title, MemberIDs: []string{}})
	return s
}

func waitForWrites(t *testing.T, store *fakeStore, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if store.writeCount() >= n {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %d writes, got %d", n, store.writeCount())
}

func TestSchedule_WritesAfterQuietPeriod(t *testing.T) {
	store := &fakeStore{supported: true}
	w := New(store, nil, 20*time.Millisecond)
	w.Start()
	defer func() { _ = w.Shutdown(context.Background()) }()

	w.Schedule(stateWithBoard("Roadmap"))

	waitForWrites(t, store, 1)
	got := codec.Deserialize(store.lastWrite())
	require.Len(t, got.Boards, 1)
	assert.Equal(t, "Roadmap", got.Boards[0].Title)
}

func TestSchedule_CoalescesBursts(t *testing.T) {
	store := &fakeStore{supported: true}
	w := New(store, nil, 50*time.Millisecond)
	w.Start()
	defer func() { _ = w.Shutdown(context.Background()) }()

	w.Schedule(stateWithBoard("one"))
	w.Schedule(stateWithBoard("two"))
	w.Schedule(stateWithBoard("three"))

	waitForWrites(t, store, 1)
	// Burst collapsed to a single write carrying the newest snapshot.
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, 1, store.writeCount())

	got := codec.Deserialize(store.lastWrite())
	require.Len(t, got.Boards, 1)
	assert.Equal(t, "three", got.Boards[0].Title)
}

func TestSchedule_SeparateQuietPeriodsWriteSeparately(t *testing.T) {
	store := &fakeStore{supported: true}
	w := New(store, nil, 10*time.Millisecond)
	w.Start()
	defer func() { _ = w.Shutdown(context.Background()) }()

	w.Schedule(stateWithBoard("first"))
	waitForWrites(t, store, 1)

	w.Schedule(stateWithBoard("second"))
	waitForWrites(t, store, 2)

	got := codec.Deserialize(store.lastWrite())
	assert.Equal(t, "second", got.Boards[0].Title)
}

func TestShutdown_FlushesPending(t *testing.T) {
	store := &fakeStore{supported: true}
	w := New(store, nil, time.Hour)
	w.Start()

	w.Schedule(stateWithBoard("pending"))
	require.NoError(t, w.Shutdown(context.Background()))

	require.Equal(t, 1, store.writeCount())
	got := codec.Deserialize(store.lastWrite())
	assert.Equal(t, "pending", got.Boards[0].Title)
}

func TestShutdown_NoPendingWritesNothing(t *testing.T) {
	store := &fakeStore{supported: true}
	w := New(store, nil, 10*time.Millisecond)
	w.Start()

	require.NoError(t, w.Shutdown(context.Background()))
	assert.Equal(t, 0, store.writeCount())
}

func TestShutdown_Idempotent(t *testing.T) {
	w := New(&fakeStore{supported: true}, nil, 10*time.Millisecond)
	w.Start()

	require.NoError(t, w.Shutdown(context.Background()))
	require.NoError(t, w.Shutdown(context.Background()))
}

func TestSchedule_UnsupportedStoreIsNoop(t *testing.T) {
	store := &fakeStore{supported: false}
	w := New(store, nil, 10*time.Millisecond)
	w.Start()

	w.Schedule(stateWithBoard("ignored"))
	require.NoError(t, w.Shutdown(context.Background()))

	assert.Equal(t, 0, store.writeCount())
}

func TestWriteFailure_IsSwallowed(t *testing.T) {
	store := &fakeStore{supported: true, failWith: errors.New("disk full")}
	w := New(store, nil, 10*time.Millisecond)
	w.Start()
	defer func() { _ = w.Shutdown(context.Background()) }()

	w.Schedule(stateWithBoard("doomed"))
	time.Sleep(50 * time.Millisecond)

	// The writer keeps running; a later schedule still goes through once
	// the store recovers.
	store.mu.Lock()
	store.failWith = nil
	store.mu.Unlock()

	w.Schedule(stateWithBoard("recovered"))
	waitForWrites(t, store, 1)

	got := codec.Deserialize(store.lastWrite())
	assert.Equal(t, "recovered", got.Boards[0].Title)
}

func TestDefaultDebounce(t *testing.T) {
	w := New(&fakeStore{supported: true}, nil, 0)
	assert.Equal(t, DefaultDebounce, w.debounce)
}
