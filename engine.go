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

// Package adaptivesearch ties the catalog, the refinement loop, and
// the session state store into a single embeddable engine.
package adaptivesearch

import (
	"context"
	"log/slog"

	"github.com/poiesic/adaptivesearch/ai"
	"github.com/poiesic/adaptivesearch/ai/openai"
	"github.com/poiesic/adaptivesearch/catalog"
	"github.com/poiesic/adaptivesearch/core"
	"github.com/poiesic/adaptivesearch/loop"
	"github.com/poiesic/adaptivesearch/state"
	"github.com/poiesic/adaptivesearch/state/badger"
)

// Engine is the top-level entry point. It owns the catalog, the state
// store, and the loop controller, and releases them on Close.
type Engine struct {
	catalog    *catalog.Catalog
	store      state.Store
	provider   ai.Provider
	controller *loop.Controller
	logger     *slog.Logger
}

// EngineOption configures an Engine.
type EngineOption func(*engineOptions)

type engineOptions struct {
	aiConfig *ai.Config
	provider ai.Provider
	nodes    []catalog.Node
	loopOpts []loop.Option
	inMemory bool
}

// WithAIConfig sets the embedding service configuration.
func WithAIConfig(config *ai.Config) EngineOption {
	return func(o *engineOptions) {
		if config != nil {
			o.aiConfig = config
		}
	}
}

// WithProvider injects an AI provider directly, bypassing the OpenAI
// client construction. Used by tests with mock providers.
func WithProvider(provider ai.Provider) EngineOption {
	return func(o *engineOptions) {
		o.provider = provider
	}
}

// WithNodes replaces the built-in demo catalog.
func WithNodes(nodes []catalog.Node) EngineOption {
	return func(o *engineOptions) {
		if len(nodes) > 0 {
			o.nodes = nodes
		}
	}
}

// WithLoopOptions forwards options to the loop controller.
func WithLoopOptions(opts ...loop.Option) EngineOption {
	return func(o *engineOptions) {
		o.loopOpts = append(o.loopOpts, opts...)
	}
}

// WithInMemoryState keeps session state in memory instead of on disk.
func WithInMemoryState() EngineOption {
	return func(o *engineOptions) {
		o.inMemory = true
	}
}

// NewEngine creates a fully wired engine. The filePath locates the
// session state database; it is ignored with WithInMemoryState.
func NewEngine(filePath string, opts ...EngineOption) (*Engine, error) {
	options := &engineOptions{
		aiConfig: ai.DefaultConfig(),
		nodes:    catalog.DemoNodes(),
	}
	for _, opt := range opts {
		opt(options)
	}

	backend, err := badger.OpenBackend(filePath, options.inMemory)
	if err != nil {
		return nil, err
	}
	store := badger.NewStore(backend)

	provider := options.provider
	if provider == nil {
		provider, err = openai.NewProvider(options.aiConfig)
		if err != nil {
			store.Close()
			return nil, err
		}
	}

	cat := catalog.New(options.nodes, catalog.WithEmbedder(provider.Embedder()))

	loopOpts := append([]loop.Option{
		loop.WithRecorder(newStateRecorder(store)),
	}, options.loopOpts...)
	controller, err := loop.NewController(cat, loopOpts...)
	if err != nil {
		provider.Close()
		store.Close()
		return nil, err
	}

	return &Engine{
		catalog:    cat,
		store:      store,
		provider:   provider,
		controller: controller,
		logger:     slog.Default(),
	}, nil
}

// Index computes catalog embeddings. Must run once before queries that
// route to embedding or hybrid strategies; pattern and property
// strategies work without it.
func (e *Engine) Index(ctx context.Context) error {
	return e.catalog.Index(ctx)
}

// Search runs the adaptive refinement loop for one query.
func (e *Engine) Search(ctx context.Context, query string) (*core.Outcome, error) {
	return e.controller.Run(ctx, query)
}

// Trace returns the persisted iteration log for a finished request.
func (e *Engine) Trace(ctx context.Context, requestID string) ([]core.IterationRecord, error) {
	return e.store.Iterations(ctx, requestID)
}

// Store exposes the session state store.
func (e *Engine) Store() state.Store {
	return e.store
}

// NewBatchRunner creates a concurrent runner sharing this engine's
// loop controller.
func (e *Engine) NewBatchRunner(opts ...BatchOption) (*BatchRunner, error) {
	return NewBatchRunner(e.controller, opts...)
}

// Close releases the provider and the state store.
func (e *Engine) Close() error {
	if err := e.provider.Close(); err != nil {
		e.logger.Error("error closing AI provider", "err", err)
	}
	if err := e.store.Close(); err != nil {
		e.logger.Error("error closing state store", "err", err)
		return err
	}
	return nil
}
