package loop

import (
	"github.com/poiesic/adaptivesearch/core"
)

// IterationMonitor provides hooks to observe the refinement loop.
// Implement this interface to track intermediate stages of a request.
type IterationMonitor interface {
	Start(requestID, query string)
	AfterClassification(iteration int, class core.Classification)
	AfterRouting(iteration int, decision core.RoutingDecision)
	AfterSearch(iteration int, results []core.CandidateResult, err error)
	AfterValidation(iteration int, summary core.ValidationSummary)
	AfterFiltering(iteration int, kept int)
	AfterAssessment(iteration int, assessment core.QualityAssessment)
	RefinementProposed(iteration int, suggestion core.RefinementSuggestion)
	Finish(outcome *core.Outcome)
}

// noopMonitor is a no-op implementation of IterationMonitor
type noopMonitor struct{}

var _ IterationMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_, _ string)                                          {}
func (n *noopMonitor) AfterClassification(_ int, _ core.Classification)           {}
func (n *noopMonitor) AfterRouting(_ int, _ core.RoutingDecision)                 {}
func (n *noopMonitor) AfterSearch(_ int, _ []core.CandidateResult, _ error)       {}
func (n *noopMonitor) AfterValidation(_ int, _ core.ValidationSummary)            {}
func (n *noopMonitor) AfterFiltering(_ int, _ int)                                {}
func (n *noopMonitor) AfterAssessment(_ int, _ core.QualityAssessment)            {}
func (n *noopMonitor) RefinementProposed(_ int, _ core.RefinementSuggestion)      {}
func (n *noopMonitor) Finish(_ *core.Outcome)                                     {}
