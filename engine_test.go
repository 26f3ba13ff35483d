package adaptivesearch

import (
	"context"
	"testing"

	"github.com/poiesic/adaptivesearch/ai/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	engine, err := NewEngine("",
		WithInMemoryState(),
		WithProvider(mock.NewProvider()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { engine.Close() })
	require.NoError(t, engine.Index(context.Background()))
	return engine
}

func TestEngine_Search(t *testing.T) {
	engine := newTestEngine(t)

	outcome, err := engine.Search(context.Background(), "How do I use the HTTP Request node?")
	require.NoError(t, err)

	assert.True(t, outcome.Succeeded)
	require.NotEmpty(t, outcome.FinalResults)
	assert.Equal(t, "http-request", outcome.FinalResults[0].ID)
	assert.NotEmpty(t, outcome.RequestID)
}

func TestEngine_TracePersistsIterations(t *testing.T) {
	engine := newTestEngine(t)
	ctx := context.Background()

	outcome, err := engine.Search(ctx, "How do I use the HTTP Request node?")
	require.NoError(t, err)

	records, err := engine.Trace(ctx, outcome.RequestID)
	require.NoError(t, err)
	require.Len(t, records, len(outcome.Iterations))
	assert.Equal(t, outcome.Iterations, records)

	// The recorder also leaves a last-writer-wins session entry.
	entry, err := engine.Store().Get(ctx, "request:"+outcome.RequestID+":query")
	require.NoError(t, err)
	assert.Equal(t, outcome.FinalQuery, string(entry.Value))
}

func TestEngine_SearchAlwaysReturnsOutcome(t *testing.T) {
	engine := newTestEngine(t)

	// A hopeless query still terminates with an explicit outcome.
	outcome, err := engine.Search(context.Background(), "zzzz qqqq xxxx")
	require.NoError(t, err)
	assert.NotNil(t, outcome)
	assert.NotEmpty(t, outcome.Reason)
	assert.LessOrEqual(t, len(outcome.Iterations), 3)
}

func TestEngine_BatchRunner(t *testing.T) {
	engine := newTestEngine(t)

	runner, err := engine.NewBatchRunner(WithPoolSize(2))
	require.NoError(t, err)
	defer runner.Release()

	queries := []string{
		"How do I use the HTTP Request node?",
		"I want to connect my Google Sheets to Slack",
		"what fields can I configure on the schedule trigger",
	}
	results := runner.RunAll(context.Background(), queries)

	require.Len(t, results, len(queries))
	for i, result := range results {
		assert.Equal(t, queries[i], result.Query)
		require.NoError(t, result.Err)
		require.NotNil(t, result.Outcome)
		assert.LessOrEqual(t, len(result.Outcome.Iterations), 3)
	}
}

func TestEngine_CloseReleasesProvider(t *testing.T) {
	provider := mock.NewProvider()
	engine, err := NewEngine("", WithInMemoryState(), WithProvider(provider))
	require.NoError(t, err)

	require.NoError(t, engine.Close())
	assert.True(t, provider.Closed())
}
