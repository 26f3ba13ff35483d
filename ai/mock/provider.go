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

package mock

import "github.com/poiesic/adaptivesearch/ai"

// Provider is a test double for ai.Provider backed by mock services.
type Provider struct {
	embedder *Embedder
	closed   bool
}

var _ ai.Provider = (*Provider)(nil)

// NewProvider creates a mock provider with a default mock embedder.
func NewProvider() *Provider {
	return &Provider{embedder: NewEmbedder()}
}

// Embedder returns the mock embedder.
func (p *Provider) Embedder() ai.Embedder {
	return p.embedder
}

// MockEmbedder returns the concrete mock embedder for test configuration.
func (p *Provider) MockEmbedder() *Embedder {
	return p.embedder
}

// Close marks the provider as closed.
func (p *Provider) Close() error {
	p.closed = true
	return nil
}

// Closed reports whether Close has been called.
func (p *Provider) Closed() bool {
	return p.closed
}
