package quality

import (
	"fmt"
	"strings"

	"github.com/poiesic/adaptivesearch/core"
)

// ValidatorConfig holds per-result validation thresholds.
type ValidatorConfig struct {
	// MinContentLength and MaxContentLength bound the content field.
	// A violation is an error and marks the result invalid.
	MinContentLength int
	MaxContentLength int

	// RequiredFields must all be present; a missing field is an error.
	// Fields are addressed by name: "id", "name", "content", "score",
	// "metadata", or "metadata.<key>" for a specific metadata key.
	RequiredFields []string

	// RecommendedFields produce warnings when absent; the verdict stays
	// valid.
	RecommendedFields []string

	// ErrorPenalty and WarningPenalty are subtracted from the per-result
	// score (which starts at 1.0) for each finding. The score is floored
	// at 0.
	ErrorPenalty   float64
	WarningPenalty float64
}

// DefaultValidatorConfig returns the standard validation thresholds.
func DefaultValidatorConfig() ValidatorConfig {
	return ValidatorConfig{
		MinContentLength:  1,
		MaxContentLength:  10000,
		RequiredFields:    []string{"id", "name"},
		RecommendedFields: []string{"content", "metadata"},
		ErrorPenalty:      0.3,
		WarningPenalty:    0.1,
	}
}

// Validator checks individual candidate results against structural and
// content constraints. It never returns an error for malformed input;
// findings downgrade the result's verdict and score instead.
type Validator struct {
	config ValidatorConfig
}

// NewValidator creates a validator. Zero-valued config fields fall back
// to DefaultValidatorConfig values.
func NewValidator(config ValidatorConfig) *Validator {
	defaults := DefaultValidatorConfig()
	if config.MinContentLength == 0 {
		config.MinContentLength = defaults.MinContentLength
	}
	if config.MaxContentLength == 0 {
		config.MaxContentLength = defaults.MaxContentLength
	}
	if config.RequiredFields == nil {
		config.RequiredFields = defaults.RequiredFields
	}
	if config.RecommendedFields == nil {
		config.RecommendedFields = defaults.RecommendedFields
	}
	if config.ErrorPenalty == 0 {
		config.ErrorPenalty = defaults.ErrorPenalty
	}
	if config.WarningPenalty == 0 {
		config.WarningPenalty = defaults.WarningPenalty
	}
	return &Validator{config: config}
}

// ValidateBatch validates every result and returns per-result verdicts
// in input order plus a batch summary.
func (v *Validator) ValidateBatch(results []core.CandidateResult) ([]core.ValidationVerdict, core.ValidationSummary) {
	verdicts := make([]core.ValidationVerdict, len(results))
	var summary core.ValidationSummary

	for i, result := range results {
		verdict := v.validate(i, result)
		verdicts[i] = verdict

		if verdict.Valid {
			summary.ValidResults++
		} else {
			summary.InvalidResults++
		}
		summary.ErrorCount += len(verdict.Errors)
	}

	return verdicts, summary
}

func (v *Validator) validate(index int, result core.CandidateResult) core.ValidationVerdict {
	var errs, warnings []string

	if len(result.Content) < v.config.MinContentLength {
		errs = append(errs, fmt.Sprintf("content shorter than %d characters", v.config.MinContentLength))
	} else if len(result.Content) > v.config.MaxContentLength {
		errs = append(errs, fmt.Sprintf("content longer than %d characters", v.config.MaxContentLength))
	}

	for _, field := range v.config.RequiredFields {
		if !fieldPresent(result, field) {
			errs = append(errs, fmt.Sprintf("missing required field %q", field))
		}
	}

	for _, field := range v.config.RecommendedFields {
		if !fieldPresent(result, field) {
			warnings = append(warnings, fmt.Sprintf("missing recommended field %q", field))
		}
	}

	score := 1.0
	score -= v.config.ErrorPenalty * float64(len(errs))
	score -= v.config.WarningPenalty * float64(len(warnings))
	if score < 0 {
		score = 0
	}

	return core.ValidationVerdict{
		Index:    index,
		Valid:    len(errs) == 0,
		Errors:   errs,
		Warnings: warnings,
		Score:    score,
	}
}

// fieldPresent resolves a field name against a candidate result.
// "metadata.<key>" addresses a specific metadata key.
func fieldPresent(result core.CandidateResult, field string) bool {
	if key, ok := strings.CutPrefix(field, "metadata."); ok {
		return result.Metadata[key] != ""
	}
	switch field {
	case "id":
		return result.ID != ""
	case "name":
		return result.Name != ""
	case "content":
		return result.Content != ""
	case "score":
		return result.Score > 0
	case "metadata":
		return len(result.Metadata) > 0
	}
	return false
}
