package core

import "testing"

func TestQueryRefined(t *testing.T) {
	first := NewQuery("find slack nodes")
	if first.Iteration != 1 {
		t.Fatalf("NewQuery iteration = %d, want 1", first.Iteration)
	}

	second := first.Refined("find slack integration nodes")
	if second.Iteration != 2 {
		t.Errorf("Refined iteration = %d, want 2", second.Iteration)
	}
	if second.Text != "find slack integration nodes" {
		t.Errorf("Refined text = %q", second.Text)
	}
	if first.Text != "find slack nodes" || first.Iteration != 1 {
		t.Errorf("receiver was mutated: %+v", first)
	}
}

func TestSignatureOf(t *testing.T) {
	a := SignatureOf("identical content")
	b := SignatureOf("identical content")
	c := SignatureOf("different content")

	if a != b {
		t.Error("identical content must produce identical signatures")
	}
	if a == c {
		t.Error("different content should produce different signatures")
	}
}

func TestQualityAssessmentFailed(t *testing.T) {
	assessment := QualityAssessment{
		FailedDimensions: []Dimension{DimensionQuantity, DimensionMetadata},
	}

	if !assessment.Failed(DimensionQuantity) {
		t.Error("quantity should report failed")
	}
	if assessment.Failed(DimensionRelevance) {
		t.Error("relevance should not report failed")
	}
}
