package refine

import (
	"strings"
	"testing"

	"github.com/poiesic/adaptivesearch/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEngine_ZeroConfigFallsBackToDefaults(t *testing.T) {
	engine := NewEngine(Config{})
	assert.Equal(t, DefaultConfig(), engine.Config())
}

func TestSuggestRefinement_StopConditions(t *testing.T) {
	engine := NewEngine(DefaultConfig())

	t.Run("quality already at threshold", func(t *testing.T) {
		suggestion := engine.SuggestRefinement(core.NewQuery("anything"), 0.85,
			[]core.Dimension{core.DimensionMetadata}, core.IntentSemantic)
		assert.Nil(t, suggestion)
	})

	t.Run("iterations exhausted", func(t *testing.T) {
		query := core.Query{Text: "anything", Iteration: 3}
		suggestion := engine.SuggestRefinement(query, 0.2,
			[]core.Dimension{core.DimensionQuantity}, core.IntentSemantic)
		assert.Nil(t, suggestion)
	})

	t.Run("no failed dimensions", func(t *testing.T) {
		suggestion := engine.SuggestRefinement(core.NewQuery("anything"), 0.5, nil, core.IntentSemantic)
		assert.Nil(t, suggestion)
	})
}

func TestSuggestRefinement_QuantityBroadens(t *testing.T) {
	engine := NewEngine(DefaultConfig())

	suggestion := engine.SuggestRefinement(core.NewQuery("remind me about overdue invoices"), 0.1,
		[]core.Dimension{core.DimensionQuantity}, core.IntentSemantic)
	require.NotNil(t, suggestion)

	assert.True(t, strings.HasPrefix(suggestion.RefinedQuery, "how to "))
	assert.Equal(t, core.IntentSemantic, suggestion.Intent)
	assert.InDelta(t, 0.8, suggestion.Confidence, 1e-9)
	assert.InDelta(t, 0.2, suggestion.ExpectedImprovement, 1e-9)
	assert.Equal(t, 1, suggestion.Iteration)
}

func TestSuggestRefinement_QuantityNarrows(t *testing.T) {
	engine := NewEngine(DefaultConfig())

	suggestion := engine.SuggestRefinement(core.NewQuery("find some http nodes please"), 0.4,
		[]core.Dimension{core.DimensionQuantity}, core.IntentSemantic)
	require.NotNil(t, suggestion)

	assert.True(t, strings.HasPrefix(suggestion.RefinedQuery, "exact "))
	assert.NotContains(t, suggestion.RefinedQuery, "please")
	assert.Equal(t, core.IntentPropertySearch, suggestion.Intent)
	assert.InDelta(t, 0.75, suggestion.Confidence, 1e-9)
}

func TestSuggestRefinement_RelevanceAfterSemantic(t *testing.T) {
	engine := NewEngine(DefaultConfig())

	suggestion := engine.SuggestRefinement(core.NewQuery("send data somewhere"), 0.4,
		[]core.Dimension{core.DimensionRelevance}, core.IntentSemantic)
	require.NotNil(t, suggestion)

	assert.Contains(t, suggestion.RefinedQuery, "api")
	assert.Equal(t, core.IntentDirectLookup, suggestion.Intent)
	assert.InDelta(t, 0.85, suggestion.Confidence, 1e-9)
}

func TestSuggestRefinement_RelevanceSimplifies(t *testing.T) {
	engine := NewEngine(DefaultConfig())

	suggestion := engine.SuggestRefinement(
		core.NewQuery("configure the webhook trigger settings for incoming calls today"), 0.4,
		[]core.Dimension{core.DimensionRelevance}, core.IntentPropertySearch)
	require.NotNil(t, suggestion)

	assert.LessOrEqual(t, len(strings.Fields(suggestion.RefinedQuery)), 5)
	assert.NotContains(t, suggestion.RefinedQuery, "configure")
	assert.Equal(t, core.IntentSemantic, suggestion.Intent)
}

func TestSuggestRefinement_DimensionPriority(t *testing.T) {
	engine := NewEngine(DefaultConfig())

	// Quantity outranks every other failed dimension.
	suggestion := engine.SuggestRefinement(core.NewQuery("some query"), 0.4,
		[]core.Dimension{core.DimensionMetadata, core.DimensionQuantity, core.DimensionRelevance},
		core.IntentSemantic)
	require.NotNil(t, suggestion)
	assert.Equal(t, core.IntentPropertySearch, suggestion.Intent)
	assert.True(t, strings.HasPrefix(suggestion.RefinedQuery, "exact "))
}

func TestSuggestRefinement_MetadataTargetsProperties(t *testing.T) {
	engine := NewEngine(DefaultConfig())

	suggestion := engine.SuggestRefinement(core.NewQuery("the slack message sender node"), 0.5,
		[]core.Dimension{core.DimensionMetadata}, core.IntentSemantic)
	require.NotNil(t, suggestion)

	assert.Contains(t, suggestion.RefinedQuery, "properties")
	assert.Equal(t, core.IntentPropertySearch, suggestion.Intent)
	assert.InDelta(t, 0.72, suggestion.Confidence, 1e-9)
}

func TestSuggestRefinement_CoverageUsesPicker(t *testing.T) {
	engine := NewEngine(DefaultConfig(), WithPicker(NewSeededPicker(42)))

	first := engine.SuggestRefinement(core.NewQuery("send a slack notification message"), 0.5,
		[]core.Dimension{core.DimensionCoverage}, core.IntentSemantic)
	require.NotNil(t, first)
	assert.Equal(t, core.IntentWorkflowPattern, first.Intent)

	appended := strings.TrimPrefix(first.RefinedQuery, "send a slack notification message ")
	assert.Contains(t, diversifyTerms, appended)
}

func TestSuggestRefinement_DiversityAddsContext(t *testing.T) {
	engine := NewEngine(DefaultConfig())

	suggestion := engine.SuggestRefinement(core.NewQuery("send a slack notification message"), 0.5,
		[]core.Dimension{core.DimensionDiversity}, core.IntentSemantic)
	require.NotNil(t, suggestion)

	assert.Equal(t, core.IntentIntegrationTask, suggestion.Intent)
	appended := strings.TrimPrefix(suggestion.RefinedQuery, "send a slack notification message ")
	assert.Contains(t, contextTerms, appended)
}

func TestSuggestRefinement_LengthBounds(t *testing.T) {
	engine := NewEngine(DefaultConfig())

	t.Run("growth factor bounds short queries", func(t *testing.T) {
		query := core.NewQuery("invoices")
		suggestion := engine.SuggestRefinement(query, 0.1,
			[]core.Dimension{core.DimensionQuantity}, core.IntentSemantic)
		require.NotNil(t, suggestion)
		assert.LessOrEqual(t, len([]rune(suggestion.RefinedQuery)),
			int(1.5*float64(len([]rune(query.Text)))))
	})

	t.Run("hard cap applies to long queries", func(t *testing.T) {
		query := core.NewQuery(strings.Repeat("overdue invoice reminders ", 8))
		suggestion := engine.SuggestRefinement(query, 0.1,
			[]core.Dimension{core.DimensionQuantity}, core.IntentSemantic)
		require.NotNil(t, suggestion)
		assert.LessOrEqual(t, len([]rune(suggestion.RefinedQuery)), 150)
	})
}

func TestShouldContinue(t *testing.T) {
	engine := NewEngine(DefaultConfig())

	tests := []struct {
		name      string
		current   float64
		previous  float64
		iteration int
		want      bool
	}{
		{"first iteration with poor quality", 0.2, 0, 1, true},
		{"threshold reached", 0.85, 0.2, 1, false},
		{"iterations exhausted", 0.2, 0.1, 3, false},
		{"improving enough", 0.4, 0.3, 2, true},
		{"stalled improvement", 0.32, 0.3, 2, false},
		{"regressing", 0.2, 0.4, 2, false},
		{"first iteration ignores improvement gate", 0.01, 0.9, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, engine.ShouldContinue(tt.current, tt.previous, tt.iteration))
		})
	}
}

func TestRoundRobinPicker_Cycles(t *testing.T) {
	picker := NewRoundRobinPicker()
	terms := []string{"a", "b", "c"}

	got := []string{picker.Pick(terms), picker.Pick(terms), picker.Pick(terms), picker.Pick(terms)}
	assert.Equal(t, []string{"a", "b", "c", "a"}, got)
}

func TestSeededPicker_Reproducible(t *testing.T) {
	terms := []string{"a", "b", "c", "d"}

	first := NewSeededPicker(7)
	second := NewSeededPicker(7)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first.Pick(terms), second.Pick(terms))
	}
}
