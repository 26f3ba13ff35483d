package core

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// Intent is the closed category describing what kind of answer a query
// is seeking. Every intent has a routing table entry; there is no
// "unknown" intent, unclassifiable queries fall back to IntentSemantic.
type Intent string

const (
	IntentDirectLookup    Intent = "direct-lookup"
	IntentSemantic        Intent = "semantic"
	IntentWorkflowPattern Intent = "workflow-pattern"
	IntentPropertySearch  Intent = "property-search"
	IntentIntegrationTask Intent = "integration-task"
	IntentRecommendation  Intent = "recommendation"
)

// Intents lists all intents in their fixed evaluation order.
// Classification ties are broken by this order, so it must stay stable.
var Intents = []Intent{
	IntentDirectLookup,
	IntentSemantic,
	IntentWorkflowPattern,
	IntentPropertySearch,
	IntentIntegrationTask,
	IntentRecommendation,
}

// Modality identifies how a retrieval strategy searches the catalog.
type Modality string

const (
	ModalityEmbedding     Modality = "embedding"
	ModalityHybrid        Modality = "hybrid"
	ModalityPatternMatch  Modality = "pattern-match"
	ModalityPropertyBased Modality = "property-based"
)

// Strategy identifies a concrete retrieval strategy implementation.
type Strategy string

const (
	StrategyExactNode      Strategy = "exact-node-search"
	StrategySemanticNode   Strategy = "semantic-node-search"
	StrategyTemplate       Strategy = "template-search"
	StrategyProperty       Strategy = "property-search"
	StrategyIntegration    Strategy = "integration-search"
	StrategyRecommendation Strategy = "recommendation-search"
)

// Query is an immutable query text plus its iteration counter.
// Refinement produces a new Query value, never a mutation.
type Query struct {
	Text      string
	Iteration int
}

// NewQuery creates the first-iteration query for a request.
func NewQuery(text string) Query {
	return Query{Text: text, Iteration: 1}
}

// Refined returns a new Query carrying the rewritten text and the next
// iteration number. The receiver is unchanged.
func (q Query) Refined(text string) Query {
	return Query{Text: text, Iteration: q.Iteration + 1}
}

// Classification is the intent classifier's output for one query.
type Classification struct {
	Intent     Intent
	Confidence float64  // in [0,1]
	KeyTerms   []string // at most 5 terms, original order
}

// RoutingDecision is the chosen retrieval strategy plus its operating
// parameters for one iteration. Immutable once produced; consumed
// exactly once by the retrieval call.
type RoutingDecision struct {
	Intent             Intent
	Confidence         float64
	PrimaryStrategy    Strategy
	FallbackStrategies []Strategy // ordered, most similar strategy first
	Modality           Modality
	MaxResults         int
	ScoreThreshold     float64
}

// CandidateResult is a single record returned by a retrieval backend.
// The core only reads it.
type CandidateResult struct {
	ID       string
	Name     string
	Score    float64
	Content  string
	Metadata map[string]string
}

// ValidationVerdict is the per-result output of batch validation.
type ValidationVerdict struct {
	Index    int
	Valid    bool
	Errors   []string
	Warnings []string
	Score    float64 // starts at 1.0, reduced per error/warning, floored at 0
}

// ValidationSummary aggregates a batch of verdicts.
type ValidationSummary struct {
	ValidResults   int
	InvalidResults int
	ErrorCount     int
}

// Dimension is one independently scored aspect of a result set's fitness.
type Dimension string

const (
	DimensionQuantity  Dimension = "quantity"
	DimensionRelevance Dimension = "relevance"
	DimensionDiversity Dimension = "diversity"
	DimensionCoverage  Dimension = "coverage"
	DimensionMetadata  Dimension = "metadata"
)

// Dimensions lists all quality dimensions in assessment evaluation order.
var Dimensions = []Dimension{
	DimensionQuantity,
	DimensionRelevance,
	DimensionDiversity,
	DimensionCoverage,
	DimensionMetadata,
}

// QualityAssessment evaluates a result set as a whole. One per iteration.
type QualityAssessment struct {
	OverallScore     float64 // arithmetic mean of the dimension scores
	Passed           bool
	FailedDimensions []Dimension // evaluation order
	DimensionScores  map[Dimension]float64
}

// Failed reports whether the given dimension fell below its threshold.
func (a QualityAssessment) Failed(d Dimension) bool {
	for _, f := range a.FailedDimensions {
		if f == d {
			return true
		}
	}
	return false
}

// RefinementSuggestion proposes a rewritten query and the intent the
// next iteration should target. A nil suggestion signals "stop".
type RefinementSuggestion struct {
	Iteration           int
	RefinedQuery        string
	Reason              string
	Intent              Intent
	Confidence          float64 // 0.6 + ExpectedImprovement, deliberately unclamped
	ExpectedImprovement float64
}

// IterationRecord is one entry in a request's append-only trace.
type IterationRecord struct {
	Iteration     int
	Query         string
	Strategy      Strategy
	QualityBefore float64 // previous iteration's measured quality, 0 on the first
	QualityAfter  float64 // this iteration's measured quality
	Improvement   float64
	ResultCount   int
}

// Outcome is the loop's final answer to the caller. It always carries a
// result set (possibly best-effort), an explicit success flag, and the
// full iteration trace.
type Outcome struct {
	RequestID    string
	FinalResults []CandidateResult
	FinalQuery   string
	Assessment   QualityAssessment
	Iterations   []IterationRecord
	Succeeded    bool
	Reason       string
}

// Signature is a content fingerprint used to count distinct results.
type Signature uint64

// SignatureOf generates a deterministic fingerprint from text content
// using BLAKE2b hashing. Identical content produces identical signatures.
func SignatureOf(text string) Signature {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return Signature(binary.LittleEndian.Uint64(sum))
}

// StateEntry is a named value held by the session state collaborator.
// Writes are last-writer-wins; entries may carry an expiry.
type StateEntry struct {
	Key       string
	Value     []byte
	AgentID   string // who wrote the entry
	UpdatedAt time.Time
}
