package ai

import "context"

// Vectorizer computes embedding vectors for normalized sentences.
// Implementations must be thread-safe for concurrent use.
type Vectorizer interface {
	// Vectorize computes an embedding for a single tokenized sentence.
	// Tokens are joined in order to form the embedded text.
	// An error means no embedding could be produced for this sentence;
	// callers treat that as expected noise, not a batch failure.
	Vectorize(ctx context.Context, tokens []string) ([]float32, error)
}
