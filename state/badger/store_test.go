package badger

import (
	"context"
	"testing"
	"time"

	"github.com/poiesic/adaptivesearch/core"
	"github.com/poiesic/adaptivesearch/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) state.Store {
	t.Helper()
	store, err := NewMemoryStore()
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStore_PutGetRoundtrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	entry := core.StateEntry{
		Key:     "request:abc:query",
		Value:   []byte("find slack nodes"),
		AgentID: "refinement-loop",
	}
	require.NoError(t, store.Put(ctx, entry, time.Hour))

	got, err := store.Get(ctx, "request:abc:query")
	require.NoError(t, err)
	assert.Equal(t, entry.Key, got.Key)
	assert.Equal(t, entry.Value, got.Value)
	assert.Equal(t, entry.AgentID, got.AgentID)
	assert.False(t, got.UpdatedAt.IsZero(), "store must stamp UpdatedAt")
}

func TestStore_LastWriterWins(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	first := core.StateEntry{Key: "shared", Value: []byte("one"), AgentID: "agent-a"}
	second := core.StateEntry{Key: "shared", Value: []byte("two"), AgentID: "agent-b"}
	require.NoError(t, store.Put(ctx, first, 0))
	require.NoError(t, store.Put(ctx, second, 0))

	got, err := store.Get(ctx, "shared")
	require.NoError(t, err)
	assert.Equal(t, []byte("two"), got.Value)
	assert.Equal(t, "agent-b", got.AgentID)
}

func TestStore_GetMissing(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, state.ErrNotFound)
}

func TestStore_EmptyKey(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	assert.ErrorIs(t, store.Put(ctx, core.StateEntry{}, 0), state.ErrEmptyKey)
	_, err := store.Get(ctx, "")
	assert.ErrorIs(t, err, state.ErrEmptyKey)
	assert.ErrorIs(t, store.Delete(ctx, ""), state.ErrEmptyKey)
}

func TestStore_Delete(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	entry := core.StateEntry{Key: "temp", Value: []byte("x"), AgentID: "a"}
	require.NoError(t, store.Put(ctx, entry, 0))
	require.NoError(t, store.Delete(ctx, "temp"))

	_, err := store.Get(ctx, "temp")
	assert.ErrorIs(t, err, state.ErrNotFound)

	// Deleting a missing key is not an error.
	assert.NoError(t, store.Delete(ctx, "temp"))
}

func TestStore_IterationsOrdered(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	// Insert out of order; the iteration number keys the log.
	for _, i := range []int{3, 1, 2} {
		record := core.IterationRecord{
			Iteration:    i,
			Query:        "query",
			Strategy:     core.StrategySemanticNode,
			QualityAfter: float64(i) / 10,
			ResultCount:  i,
		}
		require.NoError(t, store.AppendIteration(ctx, "req-1", record))
	}

	records, err := store.Iterations(ctx, "req-1")
	require.NoError(t, err)
	require.Len(t, records, 3)
	for i, record := range records {
		assert.Equal(t, i+1, record.Iteration)
	}
}

func TestStore_IterationsIsolatedPerRequest(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	record := core.IterationRecord{Iteration: 1, Query: "q", Strategy: core.StrategyExactNode}
	require.NoError(t, store.AppendIteration(ctx, "req-a", record))
	require.NoError(t, store.AppendIteration(ctx, "req-b", record))

	records, err := store.Iterations(ctx, "req-a")
	require.NoError(t, err)
	assert.Len(t, records, 1)

	records, err = store.Iterations(ctx, "unknown")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestStore_Closed(t *testing.T) {
	store, err := NewMemoryStore()
	require.NoError(t, err)
	require.NoError(t, store.Close())

	ctx := context.Background()
	assert.ErrorIs(t, store.Put(ctx, core.StateEntry{Key: "k"}, 0), state.ErrStoreClosed)
	_, err = store.Get(ctx, "k")
	assert.ErrorIs(t, err, state.ErrStoreClosed)
	_, err = store.Iterations(ctx, "req")
	assert.ErrorIs(t, err, state.ErrStoreClosed)
}
