package mock

import (
	"context"
	"hash/fnv"
	"math"
	"strings"
	"sync/atomic"
)

// MockVectorizer is a test double for ai.Vectorizer.
// It allows custom behavior injection via a function field.
type MockVectorizer struct {
	// VectorizeFunc is called by Vectorize if set.
	// If nil, uses default deterministic behavior.
	VectorizeFunc func(ctx context.Context, tokens []string) ([]float32, error)

	callCount atomic.Int64
}

// NewMockVectorizer creates a mock vectorizer with default deterministic behavior.
// Note: Returns concrete type to allow test assertions via CallCount().
func NewMockVectorizer() *MockVectorizer {
	return &MockVectorizer{}
}

// Vectorize generates a deterministic embedding based on the joined token hash.
func (m *MockVectorizer) Vectorize(ctx context.Context, tokens []string) ([]float32, error) {
	m.callCount.Add(1)

	if m.VectorizeFunc != nil {
		return m.VectorizeFunc(ctx, tokens)
	}

	return generateDeterministicVector(strings.Join(tokens, " "), 384), nil
}

// CallCount returns the number of times Vectorize was called.
func (m *MockVectorizer) CallCount() int {
	return int(m.callCount.Load())
}

// Reset clears the call count and any injected behavior.
func (m *MockVectorizer) Reset() {
	m.callCount.Store(0)
	m.VectorizeFunc = nil
}

// generateDeterministicVector creates a deterministic embedding vector from text.
// It uses FNV hash to ensure the same text always produces the same vector.
func generateDeterministicVector(text string, dim int) []float32 {
	h := fnv.New32a()
	h.Write([]byte(text))
	seed := h.Sum32()

	vector := make([]float32, dim)
	for i := 0; i < dim; i++ {
		// Simple pseudo-random generation based on seed and index
		seed = seed*1664525 + 1013904223 // LCG constants
		vector[i] = float32(seed%1000) / 1000.0
	}

	// Normalize to unit vector
	var sumSquares float64
	for _, v := range vector {
		sumSquares += float64(v) * float64(v)
	}
	if sumSquares > 0 {
		norm := float32(math.Sqrt(sumSquares))
		for i := range vector {
			vector[i] /= norm
		}
	}

	return vector
}
