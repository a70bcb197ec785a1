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
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/poiesic/corpora/ai"
	"github.com/poiesic/corpora/ai/openai"
	"github.com/poiesic/corpora/ingest"
	"github.com/poiesic/corpora/storage"
	"github.com/poiesic/corpora/storage/badger"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "corpora",
		Usage: "Article corpus preprocessing for sentence-level analysis",
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
				Name:   "preprocess",
				Usage:  "Preprocess articles into a tokenized sentence table",
				Action: preprocessCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "table",
						Usage: "Name of the sentence table to populate",
						Value: "sentences",
					},
					&cli.BoolFlag{
						Name:  "fresh",
						Usage: "Run a full preprocessing pass (otherwise reuse the existing table)",
					},
					&cli.BoolFlag{
						Name:  "stem",
						Usage: "Reduce tokens to their Snowball English stems",
					},
					&cli.BoolFlag{
						Name:  "remove-num",
						Usage: "Drop tokens that do not begin with a letter",
					},
					&cli.IntFlag{
						Name:  "chunk-size",
						Usage: "Number of articles per worker task",
						Value: 1000,
					},
					&cli.IntFlag{
						Name:  "sample-size",
						Usage: "Maximum body sentences kept per article",
						Value: 20,
					},
					&cli.IntFlag{
						Name:  "pool-size",
						Usage: "Number of concurrent workers",
						Value: runtime.NumCPU(),
					},
					&cli.IntFlag{
						Name:  "max-attempts",
						Usage: "Maximum attempts for contended table appends",
						Value: 5,
					},
					&cli.DurationFlag{
						Name:  "retry-delay",
						Usage: "Fixed delay between append retries",
						Value: 2 * time.Second,
					},
					&cli.IntFlag{
						Name:  "report-interval",
						Usage: "Report progress every N articles",
						Value: 10,
					},
					&cli.StringFlag{
						Name:  "embedding-host",
						Usage: "Embedding service host URL",
						Value: "http://localhost:11434/v1",
					},
					&cli.StringFlag{
						Name:  "embedding-model",
						Usage: "Embedding model name (omit to skip vectorization)",
					},
				},
			},
			{
				Name:   "stats",
				Usage:  "Show corpus and sentence table statistics",
				Action: statsCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "table",
						Usage: "Name of the sentence table to inspect",
						Value: "sentences",
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func preprocessCommand(c *cli.Context) error {
	ctx := context.Background()

	dbPath := c.String("db")
	if !c.Bool("fresh") && !badger.StoreExists(dbPath) {
		return fmt.Errorf("database %q does not exist; run with --fresh to build it", dbPath)
	}

	backend, err := badger.OpenBackend(dbPath, false)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer backend.Close()

	articleRepo, err := badger.NewArticleRepository(backend)
	if err != nil {
		return fmt.Errorf("failed to create article repository: %w", err)
	}
	defer articleRepo.Close()

	sentenceRepo, err := badger.NewSentenceRepository(backend)
	if err != nil {
		return fmt.Errorf("failed to create sentence repository: %w", err)
	}
	defer sentenceRepo.Close()

	// Vectorization is opt-in: only build an embedder when a model is named
	var vectorizer ai.Vectorizer
	if model := c.String("embedding-model"); model != "" {
		aiConfig := ai.NewConfig(
			ai.WithEmbeddingHost(c.String("embedding-host")),
			ai.WithEmbeddingModel(model),
		)
		vectorizer, err = openai.NewVectorizer(aiConfig)
		if err != nil {
			return fmt.Errorf("failed to create vectorizer: %w", err)
		}
	}

	config := ingest.Config{
		Table:          c.String("table"),
		Fresh:          c.Bool("fresh"),
		StemWords:      c.Bool("stem"),
		RemoveNumeric:  c.Bool("remove-num"),
		ChunkSize:      c.Int("chunk-size"),
		SampleSize:     c.Int("sample-size"),
		PoolSize:       c.Int("pool-size"),
		MaxAttempts:    c.Int("max-attempts"),
		RetryDelay:     c.Duration("retry-delay"),
		ReportInterval: c.Int("report-interval"),
	}

	pipeline, err := ingest.NewPipeline(articleRepo, sentenceRepo, vectorizer, config)
	if err != nil {
		return fmt.Errorf("failed to create pipeline: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Database: %s\n", dbPath)
	fmt.Fprintf(os.Stderr, "Table: %s\n", config.Table)
	if vectorizer != nil {
		fmt.Fprintf(os.Stderr, "Embedding host: %s\n", c.String("embedding-host"))
		fmt.Fprintf(os.Stderr, "Embedding model: %s\n", c.String("embedding-model"))
	}
	fmt.Fprintln(os.Stderr)

	if err := pipeline.Run(ctx); err != nil {
		return fmt.Errorf("preprocessing failed: %w", err)
	}

	return nil
}

func statsCommand(c *cli.Context) error {
	ctx := context.Background()

	backend, err := badger.OpenBackend(c.String("db"), false)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer backend.Close()

	articleRepo, err := badger.NewArticleRepository(backend)
	if err != nil {
		return fmt.Errorf("failed to create article repository: %w", err)
	}
	defer articleRepo.Close()

	sentenceRepo, err := badger.NewSentenceRepository(backend)
	if err != nil {
		return fmt.Errorf("failed to create sentence repository: %w", err)
	}
	defer sentenceRepo.Close()

	articles, err := articleRepo.CountArticles(ctx)
	if err != nil {
		return fmt.Errorf("failed to count articles: %w", err)
	}

	table := c.String("table")
	rows, err := sentenceRepo.CountRows(ctx, table)
	if err != nil {
		return fmt.Errorf("failed to count sentence rows: %w", err)
	}

	fmt.Printf("Articles: %d\n", articles)
	fmt.Printf("Table %q rows: %d\n", table, rows)

	marker, err := sentenceRepo.GetRunMarker(ctx, table)
	switch {
	case err == nil:
		fmt.Printf("Last run: %s (%d rows, fingerprint %d)\n",
			marker.CompletedAt.Format(time.RFC3339), marker.Rows, marker.Fingerprint)
	case errors.Is(err, storage.ErrNotFound):
		fmt.Println("Last run: none recorded")
	default:
		return fmt.Errorf("failed to read run marker: %w", err)
	}

	return nil
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
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

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
