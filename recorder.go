package adaptivesearch

import (
	"context"
	"fmt"
	"time"

	"github.com/poiesic/adaptivesearch/core"
	"github.com/poiesic/adaptivesearch/loop"
	"github.com/poiesic/adaptivesearch/state"
)

// sessionTTL bounds how long per-request session entries survive.
// Iteration logs are kept without expiry.
const sessionTTL = 24 * time.Hour

const recorderAgentID = "refinement-loop"

// stateRecorder persists iteration events into the state store: the
// append-only trace plus a last-writer-wins entry holding the request's
// most recent query.
type stateRecorder struct {
	store state.Store
}

var _ loop.Recorder = (*stateRecorder)(nil)

func newStateRecorder(store state.Store) *stateRecorder {
	return &stateRecorder{store: store}
}

func (r *stateRecorder) RecordIteration(ctx context.Context, event loop.IterationEvent) error {
	if err := r.store.AppendIteration(ctx, event.RequestID, event.Record); err != nil {
		return err
	}

	entry := core.StateEntry{
		Key:     fmt.Sprintf("request:%s:query", event.RequestID),
		Value:   []byte(event.Record.Query),
		AgentID: recorderAgentID,
	}
	return r.store.Put(ctx, entry, sessionTTL)
}
