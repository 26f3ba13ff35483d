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


// Package intent classifies free-text queries into retrieval intents.
//
// Classification runs in two phases:
//   - Pattern phase: fixed regular-expression patterns per intent. Exact
//     linguistic patterns are higher-precision signals, so a strong
//     pattern score (> 0.7) short-circuits the keyword phase.
//   - Keyword phase: substring keyword matching over the lowercased
//     query, run only when the pattern phase is inconclusive.
//
// Classification is a pure function of the query text: no I/O, no
// randomness, deterministic for identical input.
package intent
