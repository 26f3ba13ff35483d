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


// Package loop runs the adaptive search refinement loop.
//
// One iteration is classify → route → search → validate → filter →
// assess → decide. The external retrieval call is the only suspension
// point; every other stage is a pure, synchronous computation. The
// Controller owns the iteration counter and the trace; everything else
// is a request-scoped value, so independent requests run concurrently
// without shared mutable state.
//
// Retrieval failures and timeouts degrade to an empty result set that
// fails the quantity dimension, letting refinement react instead of
// aborting the request. The caller always receives an Outcome with an
// explicit success flag and the full iteration trace.
package loop
