package quality

import (
	"github.com/poiesic/adaptivesearch/core"
)

// AssessorConfig holds the per-dimension quality thresholds.
type AssessorConfig struct {
	// MinQuantity and MaxQuantity bound the acceptable result count.
	MinQuantity int
	MaxQuantity int

	// MinRelevanceScore is the minimum mean result score.
	MinRelevanceScore float64

	// MinDiversityRatio is the minimum ratio of distinct result
	// identities to total count.
	MinDiversityRatio float64

	// MinCoverage is the minimum fraction of results carrying non-empty
	// metadata.
	MinCoverage float64

	// MinMetadataComplete is the minimum fraction of results carrying at
	// least MinMetadataKeys metadata keys. Correlated with coverage but
	// reported under a distinct failure code so refinement can react
	// differently.
	MinMetadataComplete float64
	MinMetadataKeys     int
}

// DefaultAssessorConfig returns the standard quality thresholds.
func DefaultAssessorConfig() AssessorConfig {
	return AssessorConfig{
		MinQuantity:         1,
		MaxQuantity:         50,
		MinRelevanceScore:   0.5,
		MinDiversityRatio:   0.3,
		MinCoverage:         0.5,
		MinMetadataComplete: 0.4,
		MinMetadataKeys:     2,
	}
}

// ResultSet is the assessor's input: the query that produced the
// results and the modality that retrieved them.
type ResultSet struct {
	Query    string
	Results  []core.CandidateResult
	Modality core.Modality
}

// Assessor evaluates a result set as a whole. Each dimension produces a
// continuous score in [0,1] so that marginal improvement between
// iterations stays observable, plus a pass/fail against its threshold.
type Assessor struct {
	config AssessorConfig
}

// NewAssessor creates an assessor. Zero-valued config fields fall back
// to DefaultAssessorConfig values.
func NewAssessor(config AssessorConfig) *Assessor {
	defaults := DefaultAssessorConfig()
	if config.MinQuantity == 0 {
		config.MinQuantity = defaults.MinQuantity
	}
	if config.MaxQuantity == 0 {
		config.MaxQuantity = defaults.MaxQuantity
	}
	if config.MinRelevanceScore == 0 {
		config.MinRelevanceScore = defaults.MinRelevanceScore
	}
	if config.MinDiversityRatio == 0 {
		config.MinDiversityRatio = defaults.MinDiversityRatio
	}
	if config.MinCoverage == 0 {
		config.MinCoverage = defaults.MinCoverage
	}
	if config.MinMetadataComplete == 0 {
		config.MinMetadataComplete = defaults.MinMetadataComplete
	}
	if config.MinMetadataKeys == 0 {
		config.MinMetadataKeys = defaults.MinMetadataKeys
	}
	return &Assessor{config: config}
}

// Assess scores the result set across all five dimensions. The failed
// dimension list preserves evaluation order: quantity, relevance,
// diversity, coverage, metadata.
func (a *Assessor) Assess(set ResultSet) core.QualityAssessment {
	scores := map[core.Dimension]float64{
		core.DimensionQuantity:  a.quantityScore(set.Results),
		core.DimensionRelevance: a.relevanceScore(set.Results),
		core.DimensionDiversity: a.diversityScore(set.Results),
		core.DimensionCoverage:  a.coverageScore(set.Results),
		core.DimensionMetadata:  a.metadataScore(set.Results),
	}

	var failed []core.Dimension
	for _, d := range core.Dimensions {
		if !a.passes(d, set.Results, scores[d]) {
			failed = append(failed, d)
		}
	}

	var sum float64
	for _, d := range core.Dimensions {
		sum += scores[d]
	}

	return core.QualityAssessment{
		OverallScore:     sum / float64(len(core.Dimensions)),
		Passed:           len(failed) == 0,
		FailedDimensions: failed,
		DimensionScores:  scores,
	}
}

func (a *Assessor) passes(d core.Dimension, results []core.CandidateResult, score float64) bool {
	switch d {
	case core.DimensionQuantity:
		return len(results) >= a.config.MinQuantity && len(results) <= a.config.MaxQuantity
	case core.DimensionRelevance:
		return score >= a.config.MinRelevanceScore
	case core.DimensionDiversity:
		return score >= a.config.MinDiversityRatio
	case core.DimensionCoverage:
		return score >= a.config.MinCoverage
	case core.DimensionMetadata:
		return score >= a.config.MinMetadataComplete
	}
	return false
}

// quantityScore is 1.0 inside [MinQuantity, MaxQuantity] and degrades
// proportionally outside the range.
func (a *Assessor) quantityScore(results []core.CandidateResult) float64 {
	count := len(results)
	switch {
	case count == 0:
		return 0
	case count < a.config.MinQuantity:
		return float64(count) / float64(a.config.MinQuantity)
	case count > a.config.MaxQuantity:
		return float64(a.config.MaxQuantity) / float64(count)
	}
	return 1.0
}

// relevanceScore is the mean of the result scores.
func (a *Assessor) relevanceScore(results []core.CandidateResult) float64 {
	if len(results) == 0 {
		return 0
	}
	var sum float64
	for _, r := range results {
		sum += r.Score
	}
	return sum / float64(len(results))
}

// diversityScore is the ratio of distinct result identities to total
// count. Identity is the content signature when content is present,
// falling back to ID, then name.
func (a *Assessor) diversityScore(results []core.CandidateResult) float64 {
	if len(results) == 0 {
		return 0
	}
	distinct := make(map[core.Signature]bool, len(results))
	for _, r := range results {
		distinct[identity(r)] = true
	}
	return float64(len(distinct)) / float64(len(results))
}

// coverageScore is the fraction of results carrying non-empty metadata.
func (a *Assessor) coverageScore(results []core.CandidateResult) float64 {
	if len(results) == 0 {
		return 0
	}
	covered := 0
	for _, r := range results {
		if len(r.Metadata) > 0 {
			covered++
		}
	}
	return float64(covered) / float64(len(results))
}

// metadataScore is the fraction of results carrying at least
// MinMetadataKeys metadata keys.
func (a *Assessor) metadataScore(results []core.CandidateResult) float64 {
	if len(results) == 0 {
		return 0
	}
	complete := 0
	for _, r := range results {
		if len(r.Metadata) >= a.config.MinMetadataKeys {
			complete++
		}
	}
	return float64(complete) / float64(len(results))
}

func identity(r core.CandidateResult) core.Signature {
	switch {
	case r.Content != "":
		return core.SignatureOf(r.Content)
	case r.ID != "":
		return core.SignatureOf(r.ID)
	}
	return core.SignatureOf(r.Name)
}
