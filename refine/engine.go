package refine

import (
	"log/slog"
	"strings"

	"github.com/poiesic/adaptivesearch/core"
)

const (
	// growthFactor bounds a refined query to this multiple of the
	// original length.
	growthFactor = 1.5

	// maxQueryChars is the hard cap on refined query length.
	maxQueryChars = 150

	// baseConfidence is the floor for suggestion confidence; the
	// expected improvement is added on top, deliberately unclamped.
	baseConfidence = 0.6

	// broadenCutoff is the quality below which a quantity failure
	// broadens the query instead of narrowing it.
	broadenCutoff = 0.2

	// exactnessMarker prefixes a narrowed query.
	exactnessMarker = "exact"
)

// Config holds the refinement stopping criteria.
type Config struct {
	// QualityThreshold stops refinement once reached. Default 0.85.
	QualityThreshold float64

	// MaxIterations bounds the loop. Default 3.
	MaxIterations int

	// MinImprovement is the smallest quality delta between iterations
	// that still justifies continuing. Default 0.05.
	MinImprovement float64
}

// DefaultConfig returns the standard stopping criteria.
func DefaultConfig() Config {
	return Config{
		QualityThreshold: 0.85,
		MaxIterations:    3,
		MinImprovement:   0.05,
	}
}

// Engine decides whether to keep iterating and, if so, how to rewrite
// the query.
type Engine struct {
	config Config
	picker TermPicker
	logger *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithPicker replaces the default round-robin term picker.
func WithPicker(picker TermPicker) Option {
	return func(e *Engine) {
		if picker != nil {
			e.picker = picker
		}
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
	}
}

// NewEngine creates a refinement engine. Zero-valued config fields fall
// back to DefaultConfig values.
func NewEngine(config Config, opts ...Option) *Engine {
	defaults := DefaultConfig()
	if config.QualityThreshold == 0 {
		config.QualityThreshold = defaults.QualityThreshold
	}
	if config.MaxIterations == 0 {
		config.MaxIterations = defaults.MaxIterations
	}
	if config.MinImprovement == 0 {
		config.MinImprovement = defaults.MinImprovement
	}

	e := &Engine{
		config: config,
		picker: NewRoundRobinPicker(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Config returns the engine's effective stopping criteria.
func (e *Engine) Config() Config {
	return e.config
}

// SuggestRefinement proposes a rewritten query for a failed assessment.
// A nil return signals "stop": quality is good enough, iterations are
// exhausted, or nothing in the failed dimensions is actionable.
//
// Exactly the first failed dimension present, in the fixed priority
// order quantity, relevance, coverage, diversity, metadata, drives the
// transform.
func (e *Engine) SuggestRefinement(query core.Query, currentQuality float64, failed []core.Dimension, lastIntent core.Intent) *core.RefinementSuggestion {
	if currentQuality >= e.config.QualityThreshold {
		return nil
	}
	if query.Iteration >= e.config.MaxIterations {
		return nil
	}

	failedSet := make(map[core.Dimension]bool, len(failed))
	for _, d := range failed {
		failedSet[d] = true
	}

	var (
		refined     string
		reason      string
		nextIntent  core.Intent
		improvement float64
	)

	switch {
	case failedSet[core.DimensionQuantity]:
		if currentQuality < broadenCutoff {
			refined = broaden(query.Text)
			reason = "too few results; broadened the query"
			nextIntent = core.IntentSemantic
			improvement = 0.2
		} else {
			refined = narrow(query.Text)
			reason = "result count out of range; narrowed the query"
			nextIntent = core.IntentPropertySearch
			improvement = 0.15
		}
	case failedSet[core.DimensionRelevance]:
		if lastIntent == core.IntentSemantic {
			refined = injectTechnicalTerm(query.Text)
			reason = "low relevance after semantic search; added technical vocabulary"
			nextIntent = core.IntentDirectLookup
			improvement = 0.25
		} else {
			refined = stripConfiguration(query.Text)
			reason = "low relevance; simplified the query"
			nextIntent = core.IntentSemantic
			improvement = 0.2
		}
	case failedSet[core.DimensionCoverage]:
		refined = appendIfAbsent(query.Text, e.picker.Pick(diversifyTerms))
		reason = "poor metadata coverage; diversified the query"
		nextIntent = core.IntentWorkflowPattern
		improvement = 0.15
	case failedSet[core.DimensionDiversity]:
		refined = query.Text + " " + e.picker.Pick(contextTerms)
		reason = "near-duplicate results; added context"
		nextIntent = core.IntentIntegrationTask
		improvement = 0.1
	case failedSet[core.DimensionMetadata]:
		refined = appendIfAbsent(query.Text, "properties")
		reason = "incomplete result metadata; targeted properties"
		nextIntent = core.IntentPropertySearch
		improvement = 0.12
	default:
		return nil
	}

	refined = truncate(refined, query.Text)

	e.logger.Debug("refinement suggested",
		"iteration", query.Iteration, "intent", nextIntent, "reason", reason)

	return &core.RefinementSuggestion{
		Iteration:           query.Iteration,
		RefinedQuery:        refined,
		Reason:              reason,
		Intent:              nextIntent,
		Confidence:          baseConfidence + improvement,
		ExpectedImprovement: improvement,
	}
}

// ShouldContinue is the loop's second gate, independent of whether a
// suggestion exists. It returns false once quality meets the threshold,
// iterations are exhausted, or (after the first iteration) the quality
// delta versus the previous iteration drops below MinImprovement.
func (e *Engine) ShouldContinue(currentQuality, previousQuality float64, iteration int) bool {
	if currentQuality >= e.config.QualityThreshold {
		return false
	}
	if iteration >= e.config.MaxIterations {
		return false
	}
	if iteration > 1 && currentQuality-previousQuality < e.config.MinImprovement {
		return false
	}
	return true
}

// broaden strips property-specific phrasing and reframes the query as a
// how-to so broad semantic search has something to grab onto.
func broaden(text string) string {
	stripped := removeWords(text, propertyPhrasing)
	if stripped == "" {
		stripped = text
	}
	if !strings.HasPrefix(strings.ToLower(stripped), "how to") {
		stripped = "how to " + stripped
	}
	return stripped
}

// narrow prefixes an exactness marker and strips filler words.
func narrow(text string) string {
	stripped := removeWords(text, fillerWords)
	if stripped == "" {
		stripped = text
	}
	return exactnessMarker + " " + stripped
}

// injectTechnicalTerm appends the first technical term, but only when
// none is present already.
func injectTechnicalTerm(text string) string {
	lower := strings.ToLower(text)
	for _, term := range technicalTerms {
		if strings.Contains(lower, term) {
			return text
		}
	}
	return text + " " + technicalTerms[0]
}

// stripConfiguration removes configuration vocabulary and truncates the
// query to its first five words.
func stripConfiguration(text string) string {
	stripped := removeWords(text, configurationTerms)
	if stripped == "" {
		stripped = text
	}
	words := strings.Fields(stripped)
	if len(words) > 5 {
		words = words[:5]
	}
	return strings.Join(words, " ")
}

func appendIfAbsent(text, term string) string {
	if term == "" || strings.Contains(strings.ToLower(text), term) {
		return text
	}
	return text + " " + term
}

func removeWords(text string, vocabulary []string) string {
	drop := make(map[string]bool, len(vocabulary))
	for _, w := range vocabulary {
		drop[w] = true
	}
	words := strings.Fields(text)
	kept := make([]string, 0, len(words))
	for _, w := range words {
		if !drop[strings.ToLower(strings.Trim(w, ".,!?;:"))] {
			kept = append(kept, w)
		}
	}
	return strings.Join(kept, " ")
}

// truncate bounds the refined query to growthFactor times the original
// length, hard-capped at maxQueryChars, so refinement cannot grow the
// query without bound across iterations.
func truncate(refined, original string) string {
	limit := int(growthFactor * float64(len([]rune(original))))
	if limit > maxQueryChars {
		limit = maxQueryChars
	}
	runes := []rune(refined)
	if len(runes) > limit {
		runes = runes[:limit]
	}
	return strings.TrimSpace(string(runes))
}
