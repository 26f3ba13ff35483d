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

package catalog

import "errors"

var (
	// ErrNilEmbedder is returned when a semantic modality is requested
	// but the catalog was built without an embedder.
	ErrNilEmbedder = errors.New("embedder is required for semantic search")

	// ErrNotIndexed is returned when a semantic modality is requested
	// before Index has computed node embeddings.
	ErrNotIndexed = errors.New("catalog is not indexed")

	// ErrUnknownModality is returned for a modality the catalog cannot
	// dispatch. Indicates a routing table defect.
	ErrUnknownModality = errors.New("unknown search modality")
)
