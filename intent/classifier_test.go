package intent

import (
	"testing"

	"github.com/poiesic/adaptivesearch/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify_Intents(t *testing.T) {
	classifier := NewClassifier()

	tests := []struct {
		name       string
		query      string
		wantIntent core.Intent
	}{
		{
			name:       "direct lookup for a named node",
			query:      "How do I use the HTTP Request node?",
			wantIntent: core.IntentDirectLookup,
		},
		{
			name:       "integration task from service names",
			query:      "I want to connect my Google Sheets to Slack",
			wantIntent: core.IntentIntegrationTask,
		},
		{
			name:       "workflow pattern",
			query:      "show me an example of a workflow template",
			wantIntent: core.IntentWorkflowPattern,
		},
		{
			name:       "property search",
			query:      "what fields can I configure on the schedule trigger",
			wantIntent: core.IntentPropertySearch,
		},
		{
			name:       "recommendation",
			query:      "which database should I pick, recommend the best tool",
			wantIntent: core.IntentRecommendation,
		},
		{
			name:       "semantic phrasing",
			query:      "something that reminds me about overdue invoices",
			wantIntent: core.IntentSemantic,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			class := classifier.Classify(tt.query)
			assert.Equal(t, tt.wantIntent, class.Intent)
			assert.GreaterOrEqual(t, class.Confidence, 0.0)
			assert.LessOrEqual(t, class.Confidence, 1.0)
		})
	}
}

func TestClassify_PatternPhaseShortCircuits(t *testing.T) {
	classifier := NewClassifier()

	// Every direct-lookup pattern matches, so the pattern phase decides
	// alone with full confidence.
	class := classifier.Classify("How do I use the HTTP Request node?")
	assert.Equal(t, core.IntentDirectLookup, class.Intent)
	assert.InDelta(t, 1.0, class.Confidence, 1e-9)
}

func TestClassify_KeywordPhaseConfidence(t *testing.T) {
	classifier := NewClassifier()

	// No pattern matches; four of ten integration keywords do.
	class := classifier.Classify("I want to connect my Google Sheets to Slack")
	assert.Equal(t, core.IntentIntegrationTask, class.Intent)
	assert.InDelta(t, 0.4, class.Confidence, 1e-9)
}

func TestClassify_FallbackToSemantic(t *testing.T) {
	classifier := NewClassifier()

	class := classifier.Classify("zzz qqq xxx")
	assert.Equal(t, core.IntentSemantic, class.Intent)
	assert.InDelta(t, 0.3, class.Confidence, 1e-9)
}

func TestClassify_Deterministic(t *testing.T) {
	classifier := NewClassifier()

	queries := []string{
		"How do I use the HTTP Request node?",
		"I want to connect my Google Sheets to Slack",
		"zzz qqq xxx",
		"",
	}
	for _, query := range queries {
		first := classifier.Classify(query)
		for i := 0; i < 10; i++ {
			assert.Equal(t, first, classifier.Classify(query), "query %q", query)
		}
	}
}

func TestExtractKeyTerms(t *testing.T) {
	classifier := NewClassifier()

	t.Run("intent keywords come first in original order", func(t *testing.T) {
		class := classifier.Classify("I want to connect my Google Sheets to Slack")
		assert.Equal(t, []string{"connect", "google", "sheets", "slack"}, class.KeyTerms)
	})

	t.Run("padded with generic long words", func(t *testing.T) {
		class := classifier.Classify("How do I use the HTTP Request node?")
		require.Equal(t, core.IntentDirectLookup, class.Intent)
		assert.Equal(t, []string{"http", "node", "request"}, class.KeyTerms)
	})

	t.Run("never more than five terms", func(t *testing.T) {
		class := classifier.Classify(
			"connect integration sync google sheets slack webhook export import api")
		assert.Len(t, class.KeyTerms, 5)
	})

	t.Run("duplicates collapse", func(t *testing.T) {
		class := classifier.Classify("slack slack slack")
		assert.Equal(t, []string{"slack"}, class.KeyTerms)
	})
}
