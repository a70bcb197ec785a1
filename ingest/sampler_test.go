package ingest

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeSentencePairs(n int) ([][]string, []string) {
	tokens := make([][]string, n)
	raw := make([]string, n)
	for i := 0; i < n; i++ {
		raw[i] = fmt.Sprintf("Sentence number %d.", i)
		tokens[i] = []string{"sentence", "number", fmt.Sprintf("tok%d", i)}
	}
	return tokens, raw
}

func TestSampleSentencePairs_UnderLimit(t *testing.T) {
	tokens, raw := makeSentencePairs(15)

	gotTokens, gotRaw := SampleSentencePairs(tokens, raw, 20)

	// Returned unchanged, same order
	assert.Equal(t, tokens, gotTokens)
	assert.Equal(t, raw, gotRaw)
}

func TestSampleSentencePairs_AtLimit(t *testing.T) {
	tokens, raw := makeSentencePairs(20)
	gotTokens, gotRaw := SampleSentencePairs(tokens, raw, 20)
	assert.Equal(t, tokens, gotTokens)
	assert.Equal(t, raw, gotRaw)
}

func TestSampleSentencePairs_OverLimit(t *testing.T) {
	tokens, raw := makeSentencePairs(30)

	gotTokens, gotRaw := SampleSentencePairs(tokens, raw, 20)

	require.Len(t, gotTokens, 20)
	require.Len(t, gotRaw, 20)

	// Every sampled pair comes from the input, no raw sentence twice,
	// and token/raw alignment is preserved.
	rawIndex := make(map[string]int, len(raw))
	for i, r := range raw {
		rawIndex[r] = i
	}

	seen := make(map[string]bool)
	for i, r := range gotRaw {
		src, ok := rawIndex[r]
		require.True(t, ok, "sampled raw sentence not in input: %q", r)
		assert.False(t, seen[r], "raw sentence sampled twice: %q", r)
		seen[r] = true
		assert.Equal(t, tokens[src], gotTokens[i])
	}
}

func TestSampleSentencePairs_EmptyInput(t *testing.T) {
	gotTokens, gotRaw := SampleSentencePairs(nil, nil, 20)
	assert.Empty(t, gotTokens)
	assert.Empty(t, gotRaw)
}
