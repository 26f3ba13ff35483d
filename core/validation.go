// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package core

import (
	"fmt"
	"strings"
)

// ValidIntent reports whether the intent belongs to the closed enumeration.
func ValidIntent(i Intent) bool {
	for _, known := range Intents {
		if i == known {
			return true
		}
	}
	return false
}

// ValidModality reports whether the modality belongs to the closed set.
func ValidModality(m Modality) bool {
	switch m {
	case ModalityEmbedding, ModalityHybrid, ModalityPatternMatch, ModalityPropertyBased:
		return true
	}
	return false
}

// ValidateQuery validates a Query according to domain rules.
//
// Validation rules:
//   - Text must not be blank
//   - Iteration must be at least 1
func ValidateQuery(q Query) error {
	if strings.TrimSpace(q.Text) == "" {
		return ErrEmptyQuery
	}
	if q.Iteration < 1 {
		return fmt.Errorf("%w: iteration %d", ErrInvalidDecision, q.Iteration)
	}
	return nil
}

// ValidateClassification validates a classifier output.
//
// Validation rules:
//   - Intent must be a known intent
//   - Confidence must be in [0,1]
//   - At most 5 key terms
func ValidateClassification(c Classification) error {
	if !ValidIntent(c.Intent) {
		return fmt.Errorf("%w: %q", ErrInvalidIntent, c.Intent)
	}
	if c.Confidence < 0 || c.Confidence > 1 {
		return fmt.Errorf("%w: %f", ErrInvalidConfidence, c.Confidence)
	}
	if len(c.KeyTerms) > 5 {
		return fmt.Errorf("%w: %d key terms", ErrInvalidDecision, len(c.KeyTerms))
	}
	return nil
}

// ValidateDecision validates a RoutingDecision before it is published to
// the retrieval layer. A failure here is a configuration defect, not a
// runtime condition; callers must surface it rather than recover.
func ValidateDecision(d RoutingDecision) error {
	if !ValidIntent(d.Intent) {
		return fmt.Errorf("%w: %w %q", ErrInvalidDecision, ErrInvalidIntent, d.Intent)
	}
	if d.Confidence < 0 || d.Confidence > 1 {
		return fmt.Errorf("%w: %w", ErrInvalidDecision, ErrInvalidConfidence)
	}
	if d.PrimaryStrategy == "" {
		return fmt.Errorf("%w: missing primary strategy", ErrInvalidDecision)
	}
	if !ValidModality(d.Modality) {
		return fmt.Errorf("%w: %w %q", ErrInvalidDecision, ErrInvalidModality, d.Modality)
	}
	if d.MaxResults <= 0 {
		return fmt.Errorf("%w: %w", ErrInvalidDecision, ErrInvalidMaxResults)
	}
	if d.ScoreThreshold < 0 || d.ScoreThreshold > 1 {
		return fmt.Errorf("%w: %w", ErrInvalidDecision, ErrInvalidThreshold)
	}
	return nil
}
