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


// Package ai defines the embedding service abstraction used by the
// embedding and hybrid search modalities.
//
// The core refinement loop never calls a model; only the reference
// catalog backend consumes these interfaces. Production deployments use
// the openai subpackage (any OpenAI-compatible endpoint); tests use the
// deterministic doubles in the mock subpackage.
package ai
