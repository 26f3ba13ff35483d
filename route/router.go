package route

import (
	"fmt"

	"github.com/poiesic/adaptivesearch/core"
)

// Route holds the fixed operating parameters for one intent.
type Route struct {
	PrimaryStrategy    core.Strategy
	FallbackStrategies []core.Strategy // most similar strategy first
	Modality           core.Modality
	MaxResults         int
	ScoreThreshold     float64
}

// DefaultTable returns the built-in routing table. The values are fixed
// design constants per intent.
func DefaultTable() map[core.Intent]Route {
	return map[core.Intent]Route{
		core.IntentDirectLookup: {
			PrimaryStrategy:    core.StrategyExactNode,
			FallbackStrategies: []core.Strategy{core.StrategySemanticNode, core.StrategyIntegration},
			Modality:           core.ModalityPatternMatch,
			MaxResults:         10,
			ScoreThreshold:     0.7,
		},
		core.IntentSemantic: {
			PrimaryStrategy:    core.StrategySemanticNode,
			FallbackStrategies: []core.Strategy{core.StrategyExactNode, core.StrategyTemplate},
			Modality:           core.ModalityEmbedding,
			MaxResults:         20,
			ScoreThreshold:     0.5,
		},
		core.IntentWorkflowPattern: {
			PrimaryStrategy:    core.StrategyTemplate,
			FallbackStrategies: []core.Strategy{core.StrategySemanticNode, core.StrategyRecommendation},
			Modality:           core.ModalityHybrid,
			MaxResults:         5,
			ScoreThreshold:     0.6,
		},
		core.IntentPropertySearch: {
			PrimaryStrategy:    core.StrategyProperty,
			FallbackStrategies: []core.Strategy{core.StrategyExactNode, core.StrategySemanticNode},
			Modality:           core.ModalityPropertyBased,
			MaxResults:         15,
			ScoreThreshold:     0.55,
		},
		core.IntentIntegrationTask: {
			PrimaryStrategy:    core.StrategyIntegration,
			FallbackStrategies: []core.Strategy{core.StrategySemanticNode, core.StrategyTemplate},
			Modality:           core.ModalityHybrid,
			MaxResults:         10,
			ScoreThreshold:     0.6,
		},
		core.IntentRecommendation: {
			PrimaryStrategy:    core.StrategyRecommendation,
			FallbackStrategies: []core.Strategy{core.StrategyTemplate, core.StrategySemanticNode},
			Modality:           core.ModalityHybrid,
			MaxResults:         8,
			ScoreThreshold:     0.65,
		},
	}
}

// Router turns classifications into routing decisions.
type Router struct {
	table map[core.Intent]Route
}

// Option configures a Router.
type Option func(*Router)

// WithTable replaces the built-in routing table. The table must cover
// every intent the classifier can produce; Route surfaces a missing
// entry as ErrNoRoute.
func WithTable(table map[core.Intent]Route) Option {
	return func(r *Router) {
		r.table = table
	}
}

// NewRouter creates a router over the built-in table.
func NewRouter(opts ...Option) *Router {
	r := &Router{table: DefaultTable()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Route maps a classification to a routing decision. The classifier's
// confidence is carried through unmodified. ErrNoRoute indicates a
// defective custom table and must not be swallowed by callers.
func (r *Router) Route(class core.Classification) (core.RoutingDecision, error) {
	entry, ok := r.table[class.Intent]
	if !ok {
		return core.RoutingDecision{}, fmt.Errorf("%w: intent %q", ErrNoRoute, class.Intent)
	}

	decision := core.RoutingDecision{
		Intent:             class.Intent,
		Confidence:         class.Confidence,
		PrimaryStrategy:    entry.PrimaryStrategy,
		FallbackStrategies: append([]core.Strategy(nil), entry.FallbackStrategies...),
		Modality:           entry.Modality,
		MaxResults:         entry.MaxResults,
		ScoreThreshold:     entry.ScoreThreshold,
	}
	if err := core.ValidateDecision(decision); err != nil {
		return core.RoutingDecision{}, err
	}
	return decision, nil
}
