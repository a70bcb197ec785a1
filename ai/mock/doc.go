// Package mock provides test double implementations of AI service interfaces.
//
// This package contains a mock implementation of ai.Vectorizer for use in
// unit tests. The mock allows tests to run without external embedding
// service dependencies and enables controlled, deterministic behavior.
//
// # Usage in Tests
//
//	// Basic usage with default behavior
//	mockVectorizer := mock.NewMockVectorizer()
//	vector, err := mockVectorizer.Vectorize(ctx, []string{"covid", "spread"})
//
//	// Custom behavior injection
//	mockVectorizer.VectorizeFunc = func(ctx context.Context, tokens []string) ([]float32, error) {
//	    return nil, errors.New("service down")
//	}
//
//	// Check call counts
//	count := mockVectorizer.CallCount()
//
// # Default Behavior
//
// The default implementation returns deterministic 384-dimension vectors
// derived from a hash of the joined tokens, so the same sentence always
// produces the same vector.
package mock
