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


// Package route maps classified intents to routing decisions.
//
// The Router is a static lookup table: one entry per intent supplying
// the primary strategy, ordered fallback strategies, search modality,
// result cap, and score threshold. The classifier's confidence passes
// through unmodified. Every intent in the closed enumeration has an
// entry; a missing entry in a custom table is a configuration defect
// surfaced as ErrNoRoute, never recovered silently.
package route
