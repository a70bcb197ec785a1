package ingest

import "math/rand/v2"

// SampleSentencePairs selects up to limit aligned (tokens, raw) sentence pairs
// uniformly at random, without replacement. When the input already fits within
// the limit both slices are returned unchanged. Sampled pairs come back in
// shuffled order, and alignment between tokens and raw is preserved.
func SampleSentencePairs(tokens [][]string, raw []string, limit int) ([][]string, []string) {
	if limit < 1 || len(tokens) <= limit {
		return tokens, raw
	}

	perm := rand.Perm(len(tokens))
	sampledTokens := make([][]string, limit)
	sampledRaw := make([]string, limit)
	for i := 0; i < limit; i++ {
		sampledTokens[i] = tokens[perm[i]]
		sampledRaw[i] = raw[perm[i]]
	}
	return sampledTokens, sampledRaw
}
