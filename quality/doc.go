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


// Package quality scores retrieval results, both per result and as a set.
//
// Three cooperating pieces:
//   - Validator checks each candidate against structural constraints and
//     produces per-result verdicts. Malformed candidates are downgraded,
//     never rejected with an error.
//   - Assessor evaluates the result set as a whole across five
//     dimensions (quantity, relevance, diversity, coverage, metadata)
//     and reports which dimensions fell below their thresholds.
//   - Filter combines verdicts with filtering policy to produce the
//     final result list, guaranteeing at least one survivor whenever
//     any candidates exist.
//
// All three are pure computations over in-memory data.
package quality
