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

import "errors"

// Domain validation errors
var (
	// ErrEmptyQuery indicates a query with no text.
	ErrEmptyQuery = errors.New("query text cannot be empty")

	// ErrInvalidConfidence indicates a confidence value outside [0,1].
	ErrInvalidConfidence = errors.New("confidence must be in [0,1]")

	// ErrInvalidDecision indicates a RoutingDecision failed validation.
	ErrInvalidDecision = errors.New("invalid routing decision")

	// ErrInvalidMaxResults indicates a non-positive result cap.
	ErrInvalidMaxResults = errors.New("max results must be positive")

	// ErrInvalidThreshold indicates a score threshold outside [0,1].
	ErrInvalidThreshold = errors.New("score threshold must be in [0,1]")

	// ErrInvalidModality indicates a modality outside the closed set.
	ErrInvalidModality = errors.New("invalid search modality")

	// ErrInvalidIntent indicates an intent outside the closed enumeration.
	ErrInvalidIntent = errors.New("invalid intent")
)
