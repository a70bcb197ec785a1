package openai

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/poiesic/corpora/ai"
	"github.com/tmc/langchaingo/embeddings"
	"github.com/tmc/langchaingo/llms/openai"
)

// Vectorizer implements ai.Vectorizer using OpenAI-compatible embedding APIs.
type Vectorizer struct {
	embedder embeddings.Embedder
	logger   *slog.Logger
}

var _ ai.Vectorizer = (*Vectorizer)(nil)

// NewVectorizer creates a vectorizer using the provided configuration.
//
// Returns ai.Vectorizer interface to enforce abstraction.
func NewVectorizer(config *ai.Config) (ai.Vectorizer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	// Create OpenAI client configured for embeddings
	// Use "none" as token for local OpenAI-compatible services that don't require authentication
	client, err := openai.New(
		openai.WithBaseURL(config.EmbeddingHost),
		openai.WithToken("none"),
		openai.WithEmbeddingModel(config.EmbeddingModel),
	)
	if err != nil {
		return nil, err
	}

	// Wrap in langchaingo embedder
	embedder, err := embeddings.NewEmbedder(client, embeddings.WithStripNewLines(true))
	if err != nil {
		return nil, err
	}

	return &Vectorizer{
		embedder: embedder,
		logger:   slog.Default().With("component", "openai-vectorizer"),
	}, nil
}

// Vectorize generates a vector embedding for a normalized sentence.
// The tokens are joined with spaces before being sent to the embedding API.
func (v *Vectorizer) Vectorize(ctx context.Context, tokens []string) ([]float32, error) {
	text := strings.Join(tokens, " ")
	v.logger.Debug("generating embedding for sentence", "tokens", len(tokens))

	vectors, err := v.embedder.EmbedDocuments(ctx, []string{text})
	if err != nil {
		v.logger.Error("failed to generate embedding", "err", err)
		return nil, err
	}

	if len(vectors) == 0 {
		v.logger.Warn("embedder returned empty result")
		return nil, errors.New("openai: embedder returned no vectors")
	}

	return vectors[0], nil
}
