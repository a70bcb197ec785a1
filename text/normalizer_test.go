package text

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newNormalizer(t *testing.T, opts ...Option) *Normalizer {
	t.Helper()
	n, err := NewNormalizer(opts...)
	require.NoError(t, err)
	return n
}

func TestNormalize_Alignment(t *testing.T) {
	n := newNormalizer(t)

	inputs := []string{
		"",
		"COVID-19 spreads fast. We study transmission dynamics in dense cities.",
		"The. A. An.", // sentences that normalize to nothing
		"Hospitals reported rising admissions. The. Vaccination reduced severe outcomes.",
	}

	for _, input := range inputs {
		normalized, raw := n.Normalize(input)
		assert.Equal(t, len(normalized), len(raw), "input %q", input)
		for _, tokens := range normalized {
			assert.NotEmpty(t, tokens, "empty sentences must be dropped, input %q", input)
		}
	}
}

func TestNormalize_DropsEmptySentencesJointly(t *testing.T) {
	n := newNormalizer(t)

	// The middle sentence is all stop words and must vanish together with
	// its raw counterpart.
	normalized, raw := n.Normalize(
		"Hospitals reported rising admissions. It is. Vaccination reduced severe outcomes.")

	require.Len(t, raw, 2)
	require.Len(t, normalized, 2)
	assert.Contains(t, raw[0], "Hospitals")
	assert.Contains(t, raw[1], "Vaccination")
}

func TestNormalize_TokenProperties(t *testing.T) {
	n := newNormalizer(t, WithNumericRemoval())

	normalized, _ := n.Normalize(
		"In 2020, 7 of 10 patients recovered within 14 days. A 2nd wave hit hospitals by winter.")

	require.NotEmpty(t, normalized)
	for _, tokens := range normalized {
		for _, tok := range tokens {
			assert.GreaterOrEqual(t, len(tok), 2, "token %q too short", tok)
			assert.Equal(t, strings.ToLower(tok), tok, "token %q not lower-cased", tok)
			first := tok[0]
			assert.True(t, first >= 'a' && first <= 'z',
				"token %q should start with a letter when numeric removal is on", tok)
		}
	}
}

func TestNormalize_StopWordsRemoved(t *testing.T) {
	n := newNormalizer(t)

	normalized, raw := n.Normalize("The virus is spreading through the population.")

	require.Len(t, raw, 1)
	require.Len(t, normalized, 1)
	for _, tok := range normalized[0] {
		assert.False(t, stopWords[tok], "stop word %q survived normalization", tok)
	}
	assert.Contains(t, normalized[0], "virus")
	assert.Contains(t, normalized[0], "spreading")
}

func TestNormalize_Stemming(t *testing.T) {
	plain := newNormalizer(t)
	stemmed := newNormalizer(t, WithStemming())

	normalizedPlain, _ := plain.Normalize("Infections were spreading quickly.")
	normalizedStemmed, _ := stemmed.Normalize("Infections were spreading quickly.")

	require.Len(t, normalizedPlain, 1)
	require.Len(t, normalizedStemmed, 1)
	assert.Contains(t, normalizedPlain[0], "infections")
	assert.Contains(t, normalizedStemmed[0], "infect")
	assert.NotContains(t, normalizedStemmed[0], "infections")
}

func TestNormalize_TitleScenario(t *testing.T) {
	n := newNormalizer(t, WithNumericRemoval())

	normalized, raw := n.Normalize("COVID-19 spreads fast.")

	require.Len(t, raw, 1)
	require.Len(t, normalized, 1)
	assert.Equal(t, "COVID-19 spreads fast.", raw[0])
	assert.Contains(t, normalized[0], "covid")
	assert.NotContains(t, normalized[0], "19")
}

func TestNormalize_UnicodeWordsStayWhole(t *testing.T) {
	n := newNormalizer(t)

	normalized, raw := n.Normalize("The naïve model overfit the Zürich cohort.")

	require.Len(t, raw, 1)
	require.Len(t, normalized, 1)
	assert.Contains(t, normalized[0], "naïve")
	assert.Contains(t, normalized[0], "zürich")
	// Accented words must not split into ASCII fragments
	assert.NotContains(t, normalized[0], "na")
	assert.NotContains(t, normalized[0], "ve")
	assert.NotContains(t, normalized[0], "rich")
}

func TestNormalize_Idempotent(t *testing.T) {
	n := newNormalizer(t, WithNumericRemoval())

	first, _ := n.Normalize("The virus spreads through droplets in crowded rooms.")
	require.Len(t, first, 1)

	// Re-normalizing the already-normalized sentence must be a fixed point.
	second, secondRaw := n.Normalize(strings.Join(first[0], " "))
	require.Len(t, second, 1)
	assert.Equal(t, first[0], second[0])
	assert.Equal(t, strings.Join(first[0], " "), secondRaw[0])
}

func TestNormalize_Empty(t *testing.T) {
	n := newNormalizer(t)

	normalized, raw := n.Normalize("")
	assert.Empty(t, normalized)
	assert.Empty(t, raw)

	normalized, raw = n.Normalize("   \n\t ")
	assert.Empty(t, normalized)
	assert.Empty(t, raw)
}
