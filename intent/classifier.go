package intent

import (
	"strings"

	"github.com/poiesic/adaptivesearch/core"
)

// patternCutoff is the pattern-phase confidence above which the keyword
// phase is skipped entirely.
const patternCutoff = 0.7

// defaultConfidence is the deliberately low confidence attached to the
// semantic fallback when neither phase produces a signal.
const defaultConfidence = 0.3

// Classifier maps raw query text to an intent with a confidence score
// and extracted key terms. It is stateless and safe for concurrent use.
type Classifier struct{}

// NewClassifier creates a classifier.
func NewClassifier() *Classifier {
	return &Classifier{}
}

// Classify classifies a query via pattern and keyword heuristics.
// Deterministic: identical input always yields identical output.
func (c *Classifier) Classify(query string) core.Classification {
	lower := strings.ToLower(strings.TrimSpace(query))

	// Phase 1: pattern matching. First intent reaching the maximum
	// score in enumeration order wins.
	patternIntent, patternScore := scorePatterns(query)
	if patternScore > patternCutoff {
		return core.Classification{
			Intent:     patternIntent,
			Confidence: min(patternScore, 1.0),
			KeyTerms:   extractKeyTerms(lower, patternIntent),
		}
	}

	// Phase 2: keyword matching over the lowercased query.
	keywordIntent, keywordScore := scoreKeywords(lower)
	if keywordScore > 0 {
		return core.Classification{
			Intent:     keywordIntent,
			Confidence: min(keywordScore, 1.0),
			KeyTerms:   extractKeyTerms(lower, keywordIntent),
		}
	}

	// A weak pattern signal still beats no signal at all.
	if patternScore > 0 {
		return core.Classification{
			Intent:     patternIntent,
			Confidence: min(patternScore, 1.0),
			KeyTerms:   extractKeyTerms(lower, patternIntent),
		}
	}

	// Unclassified: fall back to broad semantic search.
	return core.Classification{
		Intent:     core.IntentSemantic,
		Confidence: defaultConfidence,
		KeyTerms:   extractKeyTerms(lower, core.IntentSemantic),
	}
}

// scorePatterns evaluates every intent's pattern set against the query.
func scorePatterns(query string) (core.Intent, float64) {
	best := core.IntentSemantic
	bestScore := 0.0
	for _, it := range core.Intents {
		patterns := patternTable[it]
		matched := 0
		for _, p := range patterns {
			if p.MatchString(query) {
				matched++
			}
		}
		score := float64(matched) / float64(len(patterns))
		if score > bestScore {
			best = it
			bestScore = score
		}
	}
	return best, bestScore
}

// scoreKeywords evaluates every intent's keyword list against the
// lowercased query using substring matching.
func scoreKeywords(lower string) (core.Intent, float64) {
	best := core.IntentSemantic
	bestScore := 0.0
	for _, it := range core.Intents {
		keywords := keywordTable[it]
		matched := 0
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				matched++
			}
		}
		score := min(float64(matched)/float64(len(keywords)), 1.0)
		if score > bestScore {
			best = it
			bestScore = score
		}
	}
	return best, bestScore
}
