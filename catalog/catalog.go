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

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/poiesic/adaptivesearch/ai"
	"github.com/poiesic/adaptivesearch/core"
	"github.com/poiesic/adaptivesearch/loop"
)

// hybridAlpha weights the semantic score against the lexical score in
// hybrid modality. 0.7 favors semantic similarity.
const hybridAlpha = 0.7

// exactNameBoost lifts results whose name matches the query verbatim
// in pattern-match modality.
const exactNameBoost = 0.3

// Catalog is an in-memory node index that executes routing decisions.
// Safe for concurrent search once built; Index must complete before
// semantic modalities are used.
type Catalog struct {
	nodes    []Node
	vectors  [][]float32
	embedder ai.Embedder
	logger   *slog.Logger

	mu      sync.RWMutex
	indexed bool
}

var _ loop.StrategyExecutor = (*Catalog)(nil)

// Option configures a Catalog.
type Option func(*Catalog)

// WithEmbedder sets the embedding service used by semantic modalities.
func WithEmbedder(embedder ai.Embedder) Option {
	return func(c *Catalog) {
		c.embedder = embedder
	}
}

// WithLogger sets the logger for catalog operations.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Catalog) {
		c.logger = logger
	}
}

// New creates a catalog over the given nodes.
func New(nodes []Node, opts ...Option) *Catalog {
	c := &Catalog{
		nodes:  nodes,
		logger: slog.Default().With("component", "catalog"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Len returns the number of nodes in the catalog.
func (c *Catalog) Len() int {
	return len(c.nodes)
}

// Index computes and stores an embedding for every node. Required
// before embedding or hybrid searches. Idempotent.
func (c *Catalog) Index(ctx context.Context) error {
	if c.embedder == nil {
		return ErrNilEmbedder
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.indexed {
		return nil
	}

	texts := make([]string, len(c.nodes))
	for i, node := range c.nodes {
		texts[i] = node.searchText()
	}

	c.logger.Debug("indexing catalog", "nodes", len(texts))
	vectors, err := c.embedder.EmbedTexts(ctx, texts)
	if err != nil {
		return fmt.Errorf("embedding catalog nodes: %w", err)
	}
	if len(vectors) != len(c.nodes) {
		return fmt.Errorf("embedder returned %d vectors for %d nodes", len(vectors), len(c.nodes))
	}

	c.vectors = make([][]float32, len(vectors))
	for i, v := range vectors {
		c.vectors[i] = normalizeVector(v)
	}
	c.indexed = true
	return nil
}

// ExecuteStrategy runs one retrieval pass for a routing decision and
// returns scored candidates, best first, capped at the decision's
// MaxResults and filtered by its ScoreThreshold.
func (c *Catalog) ExecuteStrategy(ctx context.Context, decision core.RoutingDecision, query string) ([]core.CandidateResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var scores []float64
	var err error
	switch decision.Modality {
	case core.ModalityPatternMatch:
		scores = c.scorePattern(query)
	case core.ModalityEmbedding:
		scores, err = c.scoreSemantic(ctx, query)
	case core.ModalityPropertyBased:
		scores = c.scoreProperties(query)
	case core.ModalityHybrid:
		scores, err = c.scoreHybrid(ctx, query)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownModality, decision.Modality)
	}
	if err != nil {
		return nil, err
	}

	results := c.collect(scores, decision.ScoreThreshold, decision.MaxResults)
	c.logger.Debug("strategy executed",
		"strategy", decision.PrimaryStrategy,
		"modality", decision.Modality,
		"results", len(results))
	return results, nil
}

// scorePattern scores nodes by lexical overlap with an exact-name boost.
func (c *Catalog) scorePattern(query string) []float64 {
	lowered := strings.ToLower(query)
	scores := make([]float64, len(c.nodes))
	for i, node := range c.nodes {
		score := lexicalOverlap(node.searchText(), query)
		if strings.Contains(lowered, strings.ToLower(node.Name)) {
			score += exactNameBoost
		}
		if score > 1.0 {
			score = 1.0
		}
		scores[i] = score
	}
	return scores
}

// scoreSemantic scores nodes by cosine similarity to the query embedding.
func (c *Catalog) scoreSemantic(ctx context.Context, query string) ([]float64, error) {
	if c.embedder == nil {
		return nil, ErrNilEmbedder
	}
	c.mu.RLock()
	indexed := c.indexed
	c.mu.RUnlock()
	if !indexed {
		return nil, ErrNotIndexed
	}

	vector, err := c.embedder.EmbedText(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embedding query: %w", err)
	}
	vector = normalizeVector(vector)

	scores := make([]float64, len(c.nodes))
	for i := range c.nodes {
		scores[i] = cosineSimilarity(vector, c.vectors[i])
	}
	return scores, nil
}

// scoreProperties scores nodes by how many query tokens appear among
// property keys and values.
func (c *Catalog) scoreProperties(query string) []float64 {
	terms := tokenizeAndFilter(query)
	scores := make([]float64, len(c.nodes))
	if len(terms) == 0 {
		return scores
	}

	for i, node := range c.nodes {
		matched := 0
		for _, term := range terms {
			if propertyMatches(node.Properties, term) {
				matched++
			}
		}
		scores[i] = float64(matched) / float64(len(terms))
	}
	return scores
}

// scoreHybrid blends semantic and lexical scores.
func (c *Catalog) scoreHybrid(ctx context.Context, query string) ([]float64, error) {
	semantic, err := c.scoreSemantic(ctx, query)
	if err != nil {
		return nil, err
	}

	scores := make([]float64, len(c.nodes))
	for i, node := range c.nodes {
		lexical := lexicalOverlap(node.searchText(), query)
		scores[i] = hybridAlpha*semantic[i] + (1-hybridAlpha)*lexical
	}
	return scores, nil
}

// collect turns per-node scores into sorted, thresholded results.
func (c *Catalog) collect(scores []float64, threshold float64, maxResults int) []core.CandidateResult {
	results := make([]core.CandidateResult, 0, len(c.nodes))
	for i, node := range c.nodes {
		if scores[i] < threshold || scores[i] <= 0 {
			continue
		}
		results = append(results, core.CandidateResult{
			ID:       node.ID,
			Name:     node.Name,
			Score:    scores[i],
			Content:  node.Description,
			Metadata: node.metadata(),
		})
	}

	// Stable sort keeps catalog order as the tie-breaker
	sort.SliceStable(results, func(a, b int) bool {
		return results[a].Score > results[b].Score
	})

	if maxResults > 0 && len(results) > maxResults {
		results = results[:maxResults]
	}
	return results
}

func propertyMatches(properties map[string]string, term string) bool {
	for key, value := range properties {
		if strings.Contains(strings.ToLower(key), term) ||
			strings.Contains(strings.ToLower(value), term) {
			return true
		}
	}
	return false
}
