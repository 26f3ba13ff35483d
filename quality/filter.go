package quality

import (
	"github.com/poiesic/adaptivesearch/core"
)

// WarningPolicy controls how the filter treats results with warnings.
type WarningPolicy string

const (
	// WarningStrict drops any result with at least one warning.
	WarningStrict WarningPolicy = "strict"
	// WarningLenient drops a warned result only when its validator
	// score is below lenientScoreFloor.
	WarningLenient WarningPolicy = "lenient"
	// WarningNone keeps warned results regardless.
	WarningNone WarningPolicy = "none"
)

// lenientScoreFloor is the validator score below which the lenient
// policy drops a warned result.
const lenientScoreFloor = 0.3

// FilterConfig holds the filtering policy.
type FilterConfig struct {
	// MinScore is the floor on the candidate's own relevance score.
	MinScore float64

	// FilterErrors drops results whose verdict carries one or more
	// errors.
	FilterErrors bool

	// WarningPolicy selects the warning handling mode. Defaults to
	// WarningLenient.
	WarningPolicy WarningPolicy
}

// DefaultFilterConfig returns the standard filtering policy.
func DefaultFilterConfig() FilterConfig {
	return FilterConfig{
		MinScore:      0.2,
		FilterErrors:  true,
		WarningPolicy: WarningLenient,
	}
}

// Filter applies the quality-gated filtering policy to a candidate set.
type Filter struct {
	config FilterConfig
}

// NewFilter creates a filter. An unset warning policy defaults to
// lenient. ErrInvalidPolicy is returned for an unknown policy value.
func NewFilter(config FilterConfig) (*Filter, error) {
	if config.WarningPolicy == "" {
		config.WarningPolicy = WarningLenient
	}
	switch config.WarningPolicy {
	case WarningStrict, WarningLenient, WarningNone:
	default:
		return nil, ErrInvalidPolicy
	}
	return &Filter{config: config}, nil
}

// Apply filters the candidate set in original order. The assessment, if
// present, relaxes the score floor when quantity already failed: when
// results are scarce, dropping more of them only deepens the failure.
//
// Invariant: given at least one candidate, the output is never empty.
// If every candidate is filtered out, the single highest-score original
// candidate is returned instead.
func (f *Filter) Apply(results []core.CandidateResult, verdicts []core.ValidationVerdict, assessment *core.QualityAssessment) []core.CandidateResult {
	if len(results) == 0 {
		return nil
	}

	scarce := assessment != nil && assessment.Failed(core.DimensionQuantity)

	kept := make([]core.CandidateResult, 0, len(results))
	for i, result := range results {
		if !scarce && result.Score < f.config.MinScore {
			continue
		}

		if i < len(verdicts) {
			verdict := verdicts[i]
			if f.config.FilterErrors && len(verdict.Errors) > 0 {
				continue
			}
			if len(verdict.Warnings) > 0 && f.dropForWarnings(verdict) {
				continue
			}
		}

		kept = append(kept, result)
	}

	if len(kept) > 0 {
		return kept
	}

	// Everything was filtered out; downstream stages still need
	// something to reason about.
	return []core.CandidateResult{bestOf(results)}
}

func (f *Filter) dropForWarnings(verdict core.ValidationVerdict) bool {
	switch f.config.WarningPolicy {
	case WarningStrict:
		return true
	case WarningLenient:
		return verdict.Score < lenientScoreFloor
	}
	return false
}

func bestOf(results []core.CandidateResult) core.CandidateResult {
	best := results[0]
	for _, r := range results[1:] {
		if r.Score > best.Score {
			best = r
		}
	}
	return best
}
