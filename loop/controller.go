package loop

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/poiesic/adaptivesearch/core"
	"github.com/poiesic/adaptivesearch/intent"
	"github.com/poiesic/adaptivesearch/quality"
	"github.com/poiesic/adaptivesearch/refine"
	"github.com/poiesic/adaptivesearch/route"
)

// StrategyExecutor is the outbound contract the retrieval layer must
// satisfy. It must honor the context deadline; a deadline overrun or
// any other failure is treated by the loop as a zero-result retrieval.
type StrategyExecutor interface {
	ExecuteStrategy(ctx context.Context, decision core.RoutingDecision, query string) ([]core.CandidateResult, error)
}

// IterationEvent is the per-iteration tuple published to a Recorder.
type IterationEvent struct {
	RequestID     string
	Decision      core.RoutingDecision
	Assessment    core.QualityAssessment
	FilteredCount int
	Record        core.IterationRecord
}

// Recorder receives one event after each iteration. The loop treats
// recording as write-through: a recorder failure is logged and never
// fails the request.
type Recorder interface {
	RecordIteration(ctx context.Context, event IterationEvent) error
}

// Controller is the orchestrating state machine wiring classification,
// routing, retrieval, validation, filtering, assessment, and refinement
// into bounded iterations. Safe for concurrent use: all per-request
// state lives on the stack of Run.
type Controller struct {
	classifier    *intent.Classifier
	router        *route.Router
	validator     *quality.Validator
	assessor      *quality.Assessor
	filter        *quality.Filter
	engine        *refine.Engine
	executor      StrategyExecutor
	monitor       IterationMonitor
	recorder      Recorder
	searchTimeout time.Duration
	logger        *slog.Logger
}

// Option configures a Controller.
type Option func(*Controller)

// WithRouter replaces the default router.
func WithRouter(r *route.Router) Option {
	return func(c *Controller) {
		if r != nil {
			c.router = r
		}
	}
}

// WithValidator replaces the default result validator.
func WithValidator(v *quality.Validator) Option {
	return func(c *Controller) {
		if v != nil {
			c.validator = v
		}
	}
}

// WithAssessor replaces the default quality assessor.
func WithAssessor(a *quality.Assessor) Option {
	return func(c *Controller) {
		if a != nil {
			c.assessor = a
		}
	}
}

// WithFilter replaces the default quality-gated filter.
func WithFilter(f *quality.Filter) Option {
	return func(c *Controller) {
		if f != nil {
			c.filter = f
		}
	}
}

// WithEngine replaces the default refinement engine.
func WithEngine(e *refine.Engine) Option {
	return func(c *Controller) {
		if e != nil {
			c.engine = e
		}
	}
}

// WithMonitor attaches an observer for the loop's stages.
func WithMonitor(m IterationMonitor) Option {
	return func(c *Controller) {
		if m != nil {
			c.monitor = m
		}
	}
}

// WithRecorder attaches a per-iteration recorder.
func WithRecorder(r Recorder) Option {
	return func(c *Controller) {
		c.recorder = r
	}
}

// WithSearchTimeout bounds each retrieval call. Zero means the caller's
// context alone bounds the search.
func WithSearchTimeout(d time.Duration) Option {
	return func(c *Controller) {
		c.searchTimeout = d
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		if logger == nil {
			logger = slog.Default()
		}
		c.logger = logger
	}
}

// NewController creates a fully wired controller around the given
// strategy executor.
func NewController(executor StrategyExecutor, opts ...Option) (*Controller, error) {
	if executor == nil {
		return nil, ErrExecutorRequired
	}

	filter, err := quality.NewFilter(quality.DefaultFilterConfig())
	if err != nil {
		return nil, err
	}

	c := &Controller{
		classifier: intent.NewClassifier(),
		router:     route.NewRouter(),
		validator:  quality.NewValidator(quality.DefaultValidatorConfig()),
		assessor:   quality.NewAssessor(quality.DefaultAssessorConfig()),
		filter:     filter,
		engine:     refine.NewEngine(refine.DefaultConfig()),
		executor:   executor,
		monitor:    &noopMonitor{},
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// iterationState bundles one iteration's surviving output.
type iterationState struct {
	query      core.Query
	results    []core.CandidateResult
	assessment core.QualityAssessment
}

// Run executes the adaptive search loop for one request. It terminates
// within the engine's iteration bound for any input and returns the
// best iteration's results with an explicit success flag, even when
// quality gates never passed.
//
// Cancellation is honored at every iteration boundary and during the
// retrieval call; a canceled request returns the context error without
// touching any other in-flight request.
func (c *Controller) Run(ctx context.Context, initialQuery string) (*core.Outcome, error) {
	if strings.TrimSpace(initialQuery) == "" {
		return nil, core.ErrEmptyQuery
	}

	requestID := uuid.NewString()
	q := core.NewQuery(initialQuery)

	var (
		best  *iterationState
		prev  *iterationState
		trace []core.IterationRecord
	)

	c.monitor.Start(requestID, initialQuery)

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		class := c.classifier.Classify(q.Text)
		c.monitor.AfterClassification(q.Iteration, class)

		decision, err := c.router.Route(class)
		if err != nil {
			// Configuration defect: surface, never recover silently.
			return nil, err
		}
		c.monitor.AfterRouting(q.Iteration, decision)

		results, searchErr := c.executeSearch(ctx, decision, q.Text)
		if searchErr != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			// Retrieval failure degrades to an empty result set that
			// fails the quantity dimension.
			c.logger.Warn("retrieval failed, assessing empty result set",
				"requestID", requestID, "iteration", q.Iteration, "err", searchErr)
			results = nil
		}
		c.monitor.AfterSearch(q.Iteration, results, searchErr)

		verdicts, summary := c.validator.ValidateBatch(results)
		c.monitor.AfterValidation(q.Iteration, summary)

		var prevAssessment *core.QualityAssessment
		if prev != nil {
			prevAssessment = &prev.assessment
		}
		filtered := c.filter.Apply(results, verdicts, prevAssessment)
		c.monitor.AfterFiltering(q.Iteration, len(filtered))

		assessment := c.assessor.Assess(quality.ResultSet{
			Query:    q.Text,
			Results:  filtered,
			Modality: decision.Modality,
		})
		c.monitor.AfterAssessment(q.Iteration, assessment)

		previousQuality := 0.0
		if prev != nil {
			previousQuality = prev.assessment.OverallScore
		}
		record := core.IterationRecord{
			Iteration:     q.Iteration,
			Query:         q.Text,
			Strategy:      decision.PrimaryStrategy,
			QualityBefore: previousQuality,
			QualityAfter:  assessment.OverallScore,
			Improvement:   assessment.OverallScore - previousQuality,
			ResultCount:   len(filtered),
		}
		trace = append(trace, record)
		c.record(ctx, IterationEvent{
			RequestID:     requestID,
			Decision:      decision,
			Assessment:    assessment,
			FilteredCount: len(filtered),
			Record:        record,
		})

		state := &iterationState{query: q, results: filtered, assessment: assessment}
		if best == nil || assessment.OverallScore > best.assessment.OverallScore {
			best = state
		}

		if assessment.Passed {
			return c.finish(requestID, state, trace, "quality gates passed")
		}

		suggestion := c.engine.SuggestRefinement(q, assessment.OverallScore, assessment.FailedDimensions, decision.Intent)
		if !c.engine.ShouldContinue(assessment.OverallScore, previousQuality, q.Iteration) || suggestion == nil {
			reason := stopReason(q.Iteration, c.engine.Config(), suggestion)
			if best.assessment.OverallScore >= c.engine.Config().QualityThreshold {
				reason = stopReasonThresholdMet
			}
			return c.finish(requestID, best, trace, reason)
		}

		c.monitor.RefinementProposed(q.Iteration, *suggestion)
		prev = state
		q = q.Refined(suggestion.RefinedQuery)
	}
}

func (c *Controller) executeSearch(ctx context.Context, decision core.RoutingDecision, query string) ([]core.CandidateResult, error) {
	if c.searchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.searchTimeout)
		defer cancel()
	}
	return c.executor.ExecuteStrategy(ctx, decision, query)
}

func (c *Controller) record(ctx context.Context, event IterationEvent) {
	if c.recorder == nil {
		return
	}
	if err := c.recorder.RecordIteration(ctx, event); err != nil {
		c.logger.Warn("failed to record iteration",
			"requestID", event.RequestID, "iteration", event.Record.Iteration, "err", err)
	}
}

func (c *Controller) finish(requestID string, state *iterationState, trace []core.IterationRecord, reason string) (*core.Outcome, error) {
	// Meeting the overall quality threshold counts as success even when
	// a single dimension stayed below its own bar.
	succeeded := state.assessment.Passed ||
		state.assessment.OverallScore >= c.engine.Config().QualityThreshold
	outcome := &core.Outcome{
		RequestID:    requestID,
		FinalResults: state.results,
		FinalQuery:   state.query.Text,
		Assessment:   state.assessment,
		Iterations:   trace,
		Succeeded:    succeeded,
		Reason:       reason,
	}
	c.logger.Info("adaptive search finished",
		"requestID", requestID,
		"iterations", len(trace),
		"succeeded", outcome.Succeeded,
		"quality", state.assessment.OverallScore,
		"results", len(state.results))
	c.monitor.Finish(outcome)
	return outcome, nil
}

func stopReason(iteration int, cfg refine.Config, suggestion *core.RefinementSuggestion) string {
	switch {
	case iteration >= cfg.MaxIterations:
		return "maximum iterations reached; returning best results seen"
	case suggestion == nil:
		return "no actionable refinement; returning best results seen"
	}
	return "refinement stopped improving quality; returning best results seen"
}

const stopReasonThresholdMet = "quality threshold met"
