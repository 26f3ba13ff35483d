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

package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/poiesic/adaptivesearch"
	"github.com/poiesic/adaptivesearch/ai"
	"github.com/poiesic/adaptivesearch/intent"
	"github.com/poiesic/adaptivesearch/loop"
	"github.com/poiesic/adaptivesearch/refine"
	"github.com/poiesic/adaptivesearch/route"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "adaptivesearch",
		Usage: "Adaptive query routing with quality-gated refinement",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "search",
				Usage:     "Run the refinement loop for a query and print results",
				ArgsUsage: "<query>",
				Action:    searchCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "db",
						Aliases: []string{"d"},
						Usage:   "Path to BadgerDB session state directory (in-memory if empty)",
					},
					&cli.StringFlag{
						Name:  "embedding-host",
						Usage: "Embedding service host URL",
						Value: "http://localhost:11434/v1",
					},
					&cli.StringFlag{
						Name:  "embedding-model",
						Usage: "Embedding model name",
						Value: "embeddinggemma",
					},
					&cli.Float64Flag{
						Name:  "quality-threshold",
						Usage: "Overall quality score that ends refinement",
						Value: 0.85,
					},
					&cli.IntFlag{
						Name:  "max-iterations",
						Usage: "Maximum refinement iterations per request",
						Value: 3,
					},
					&cli.DurationFlag{
						Name:  "search-timeout",
						Usage: "Per-iteration retrieval timeout",
						Value: 10 * time.Second,
					},
					&cli.BoolFlag{
						Name:  "no-embeddings",
						Usage: "Skip catalog indexing; semantic strategies degrade to empty results",
					},
				},
			},
			{
				Name:      "classify",
				Usage:     "Classify a query's intent and show its routing decision",
				ArgsUsage: "<query>",
				Action:    classifyCommand,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func searchCommand(c *cli.Context) error {
	query := strings.Join(c.Args().Slice(), " ")
	if query == "" {
		return fmt.Errorf("query argument is required")
	}

	ctx := context.Background()

	refineConfig := refine.Config{
		QualityThreshold: c.Float64("quality-threshold"),
		MaxIterations:    c.Int("max-iterations"),
		MinImprovement:   refine.DefaultConfig().MinImprovement,
	}

	engineOpts := []adaptivesearch.EngineOption{
		adaptivesearch.WithAIConfig(ai.NewConfig(
			ai.WithHost(c.String("embedding-host")),
			ai.WithModel(c.String("embedding-model")),
		)),
		adaptivesearch.WithLoopOptions(
			loop.WithEngine(refine.NewEngine(refineConfig)),
			loop.WithSearchTimeout(c.Duration("search-timeout")),
		),
	}

	dbPath := c.String("db")
	if dbPath == "" {
		engineOpts = append(engineOpts, adaptivesearch.WithInMemoryState())
	}

	engine, err := adaptivesearch.NewEngine(dbPath, engineOpts...)
	if err != nil {
		return fmt.Errorf("failed to create engine: %w", err)
	}
	defer engine.Close()

	if !c.Bool("no-embeddings") {
		if err := engine.Index(ctx); err != nil {
			return fmt.Errorf("failed to index catalog: %w", err)
		}
	}

	outcome, err := engine.Search(ctx, query)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	fmt.Printf("Request %s: %s\n", outcome.RequestID, outcome.Reason)
	fmt.Printf("Final query: %q (quality %.3f, succeeded=%t)\n",
		outcome.FinalQuery, outcome.Assessment.OverallScore, outcome.Succeeded)
	for _, record := range outcome.Iterations {
		fmt.Printf("  iteration %d: %-24s quality %.3f (%+.3f) %d results\n",
			record.Iteration, record.Strategy, record.QualityAfter,
			record.Improvement, record.ResultCount)
	}
	fmt.Printf("Found %d results\n", len(outcome.FinalResults))
	for i, result := range outcome.FinalResults {
		fmt.Printf("%d: %s [%0.3f] %s\n", i, result.Name, result.Score, result.Content)
	}
	return nil
}

func classifyCommand(c *cli.Context) error {
	query := strings.Join(c.Args().Slice(), " ")
	if query == "" {
		return fmt.Errorf("query argument is required")
	}

	classifier := intent.NewClassifier()
	class := classifier.Classify(query)

	router := route.NewRouter()
	decision, err := router.Route(class)
	if err != nil {
		return err
	}

	fmt.Printf("Intent:     %s (confidence %.3f)\n", class.Intent, class.Confidence)
	fmt.Printf("Key terms:  %s\n", strings.Join(class.KeyTerms, ", "))
	fmt.Printf("Strategy:   %s via %s\n", decision.PrimaryStrategy, decision.Modality)
	fmt.Printf("Fallbacks:  %v\n", decision.FallbackStrategies)
	fmt.Printf("Limits:     max %d results, score threshold %.2f\n",
		decision.MaxResults, decision.ScoreThreshold)
	return nil
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
