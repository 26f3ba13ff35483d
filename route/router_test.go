package route

import (
	"errors"
	"testing"

	"github.com/poiesic/adaptivesearch/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTable_CoversEveryIntent(t *testing.T) {
	table := DefaultTable()
	for _, it := range core.Intents {
		entry, ok := table[it]
		require.True(t, ok, "intent %q has no route", it)
		assert.NotEmpty(t, entry.PrimaryStrategy)
		assert.Len(t, entry.FallbackStrategies, 2)
		assert.Greater(t, entry.MaxResults, 0)
		assert.Greater(t, entry.ScoreThreshold, 0.0)
	}
}

func TestRoute_DecisionConstants(t *testing.T) {
	router := NewRouter()

	tests := []struct {
		intent     core.Intent
		strategy   core.Strategy
		modality   core.Modality
		maxResults int
		threshold  float64
	}{
		{core.IntentDirectLookup, core.StrategyExactNode, core.ModalityPatternMatch, 10, 0.7},
		{core.IntentSemantic, core.StrategySemanticNode, core.ModalityEmbedding, 20, 0.5},
		{core.IntentWorkflowPattern, core.StrategyTemplate, core.ModalityHybrid, 5, 0.6},
		{core.IntentPropertySearch, core.StrategyProperty, core.ModalityPropertyBased, 15, 0.55},
		{core.IntentIntegrationTask, core.StrategyIntegration, core.ModalityHybrid, 10, 0.6},
		{core.IntentRecommendation, core.StrategyRecommendation, core.ModalityHybrid, 8, 0.65},
	}

	for _, tt := range tests {
		t.Run(string(tt.intent), func(t *testing.T) {
			decision, err := router.Route(core.Classification{Intent: tt.intent, Confidence: 0.5})
			require.NoError(t, err)
			assert.Equal(t, tt.intent, decision.Intent)
			assert.Equal(t, tt.strategy, decision.PrimaryStrategy)
			assert.Equal(t, tt.modality, decision.Modality)
			assert.Equal(t, tt.maxResults, decision.MaxResults)
			assert.Equal(t, tt.threshold, decision.ScoreThreshold)
		})
	}
}

func TestRoute_CarriesConfidenceUnmodified(t *testing.T) {
	router := NewRouter()

	for _, confidence := range []float64{0.0, 0.3, 0.4, 1.0} {
		decision, err := router.Route(core.Classification{
			Intent:     core.IntentSemantic,
			Confidence: confidence,
		})
		require.NoError(t, err)
		assert.Equal(t, confidence, decision.Confidence)
	}
}

func TestRoute_MissingEntry(t *testing.T) {
	router := NewRouter(WithTable(map[core.Intent]Route{}))

	_, err := router.Route(core.Classification{Intent: core.IntentSemantic})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoRoute))
}

func TestRoute_FallbacksAreCopied(t *testing.T) {
	router := NewRouter()

	first, err := router.Route(core.Classification{Intent: core.IntentDirectLookup, Confidence: 1})
	require.NoError(t, err)
	first.FallbackStrategies[0] = core.Strategy("mutated")

	second, err := router.Route(core.Classification{Intent: core.IntentDirectLookup, Confidence: 1})
	require.NoError(t, err)
	assert.Equal(t, core.StrategySemanticNode, second.FallbackStrategies[0])
}
