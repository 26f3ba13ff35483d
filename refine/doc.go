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


// Package refine rewrites queries in response to quality failures.
//
// The Engine inspects a failed assessment's dimensions in a fixed
// priority order (quantity, relevance, coverage, diversity, metadata)
// and acts on the first match only, producing a deterministic query
// transform and a suggested next intent. Term selection for the
// diversify and contextualize transforms goes through an injected
// TermPicker so suggestions stay reproducible under test.
package refine
