package mock

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockVectorizer_Deterministic(t *testing.T) {
	m := NewMockVectorizer()
	ctx := context.Background()

	v1, err := m.Vectorize(ctx, []string{"covid", "spread", "fast"})
	require.NoError(t, err)
	v2, err := m.Vectorize(ctx, []string{"covid", "spread", "fast"})
	require.NoError(t, err)

	assert.Equal(t, v1, v2)
	assert.Len(t, v1, 384)
	assert.Equal(t, 2, m.CallCount())
}

func TestMockVectorizer_DifferentTokens(t *testing.T) {
	m := NewMockVectorizer()
	ctx := context.Background()

	v1, err := m.Vectorize(ctx, []string{"alpha"})
	require.NoError(t, err)
	v2, err := m.Vectorize(ctx, []string{"beta"})
	require.NoError(t, err)

	assert.NotEqual(t, v1, v2)
}

func TestMockVectorizer_UnitLength(t *testing.T) {
	m := NewMockVectorizer()

	v, err := m.Vectorize(context.Background(), []string{"vaccination", "reduced", "admissions"})
	require.NoError(t, err)

	var sumSquares float64
	for _, x := range v {
		sumSquares += float64(x) * float64(x)
	}
	assert.InDelta(t, 1.0, sumSquares, 1e-3)
}

func TestMockVectorizer_InjectedBehavior(t *testing.T) {
	m := NewMockVectorizer()
	m.VectorizeFunc = func(ctx context.Context, tokens []string) ([]float32, error) {
		return nil, errors.New("service unavailable")
	}

	_, err := m.Vectorize(context.Background(), []string{"anything"})
	assert.Error(t, err)
	assert.Equal(t, 1, m.CallCount())

	m.Reset()
	assert.Equal(t, 0, m.CallCount())
	assert.Nil(t, m.VectorizeFunc)
}
