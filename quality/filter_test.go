package quality

import (
	"testing"

	"github.com/poiesic/adaptivesearch/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFilter_PolicyValidation(t *testing.T) {
	t.Run("empty policy defaults to lenient", func(t *testing.T) {
		filter, err := NewFilter(FilterConfig{})
		require.NoError(t, err)
		assert.NotNil(t, filter)
	})

	t.Run("unknown policy rejected", func(t *testing.T) {
		_, err := NewFilter(FilterConfig{WarningPolicy: "permissive"})
		assert.ErrorIs(t, err, ErrInvalidPolicy)
	})
}

func TestApply_ScoreFloor(t *testing.T) {
	filter, err := NewFilter(DefaultFilterConfig())
	require.NoError(t, err)

	results := makeResults(3, 0.9)
	results[1].Score = 0.1

	verdicts, _ := NewValidator(DefaultValidatorConfig()).ValidateBatch(results)
	kept := filter.Apply(results, verdicts, nil)

	require.Len(t, kept, 2)
	assert.Equal(t, "node-0", kept[0].ID)
	assert.Equal(t, "node-2", kept[1].ID)
}

func TestApply_DropsErroredResults(t *testing.T) {
	filter, err := NewFilter(DefaultFilterConfig())
	require.NoError(t, err)

	results := makeResults(2, 0.9)
	results[0].ID = "" // missing required field

	verdicts, _ := NewValidator(DefaultValidatorConfig()).ValidateBatch(results)
	kept := filter.Apply(results, verdicts, nil)

	require.Len(t, kept, 1)
	assert.Equal(t, "node-1", kept[0].ID)
}

func TestApply_WarningPolicies(t *testing.T) {
	results := makeResults(1, 0.9)
	results[0].Metadata = nil // warning, score 0.9

	verdicts, _ := NewValidator(DefaultValidatorConfig()).ValidateBatch(results)

	t.Run("strict drops warned results", func(t *testing.T) {
		filter, err := NewFilter(FilterConfig{WarningPolicy: WarningStrict})
		require.NoError(t, err)
		kept := filter.Apply(results, verdicts, nil)
		// Never-empty invariant resurrects the best candidate.
		require.Len(t, kept, 1)
		assert.Equal(t, results[0].ID, kept[0].ID)
	})

	t.Run("lenient keeps warned results above the floor", func(t *testing.T) {
		filter, err := NewFilter(FilterConfig{WarningPolicy: WarningLenient})
		require.NoError(t, err)
		kept := filter.Apply(results, verdicts, nil)
		assert.Len(t, kept, 1)
	})

	t.Run("lenient drops heavily penalized results", func(t *testing.T) {
		low := makeResults(2, 0.9)
		low[0].ID = ""
		low[0].Name = ""
		low[0].Metadata = nil
		low[0].Content = "" // errors plus warnings push the score under 0.3

		lowVerdicts, _ := NewValidator(DefaultValidatorConfig()).ValidateBatch(low)
		filter, err := NewFilter(FilterConfig{FilterErrors: false, WarningPolicy: WarningLenient})
		require.NoError(t, err)
		kept := filter.Apply(low, lowVerdicts, nil)
		require.Len(t, kept, 1)
		assert.Equal(t, "node-1", kept[0].ID)
	})

	t.Run("none keeps warned results", func(t *testing.T) {
		filter, err := NewFilter(FilterConfig{WarningPolicy: WarningNone})
		require.NoError(t, err)
		kept := filter.Apply(results, verdicts, nil)
		assert.Len(t, kept, 1)
	})
}

func TestApply_ScarcityRelaxesScoreFloor(t *testing.T) {
	filter, err := NewFilter(DefaultFilterConfig())
	require.NoError(t, err)

	results := makeResults(2, 0.1) // below the 0.2 floor
	verdicts, _ := NewValidator(DefaultValidatorConfig()).ValidateBatch(results)

	scarce := core.QualityAssessment{
		FailedDimensions: []core.Dimension{core.DimensionQuantity},
	}
	kept := filter.Apply(results, verdicts, &scarce)
	assert.Len(t, kept, 2)

	// Without the quantity failure the floor applies again.
	healthy := core.QualityAssessment{}
	kept = filter.Apply(results, verdicts, &healthy)
	assert.Len(t, kept, 1) // never-empty invariant
}

func TestApply_NeverEmptyInvariant(t *testing.T) {
	filter, err := NewFilter(DefaultFilterConfig())
	require.NoError(t, err)

	// Every candidate fails the floor; the single best one survives.
	results := makeResults(3, 0.05)
	results[1].Score = 0.15
	verdicts, _ := NewValidator(DefaultValidatorConfig()).ValidateBatch(results)

	kept := filter.Apply(results, verdicts, nil)
	require.Len(t, kept, 1)
	assert.Equal(t, "node-1", kept[0].ID)
}

func TestApply_EmptyInput(t *testing.T) {
	filter, err := NewFilter(DefaultFilterConfig())
	require.NoError(t, err)

	assert.Nil(t, filter.Apply(nil, nil, nil))
}
