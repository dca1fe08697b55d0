package process

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	got := Normalize("The trick is to always check your work twice before submitting")

	// stopwords gone, survivors stemmed, order kept
	assert.NotContains(t, strings.Fields(got), "the")
	assert.NotContains(t, strings.Fields(got), "is")
	assert.NotContains(t, strings.Fields(got), "your")
	assert.Contains(t, got, "trick")
	assert.Less(t, strings.Index(got, "trick"), strings.Index(got, "submit"))
}

func TestNormalizeNeverGrows(t *testing.T) {
	for _, text := range []string{
		"",
		"the",
		"The trick is to always check your work twice before submitting",
		"You won't believe what happens when running dogs are chasing cars",
		"plain words without any stopwords whatsoever",
	} {
		t.Run(text, func(t *testing.T) {
			raw := len(strings.Fields(text))
			normalized := len(strings.Fields(Normalize(text)))
			assert.LessOrEqual(t, normalized, raw)
		})
	}
}

func TestFilterStopwordsIdempotent(t *testing.T) {
	// filtering the output of a full normalization changes nothing: no
	// stopword resurfaces after stemming
	normalized := Normalize("You won't believe this trick, it is the best thing that they were doing")
	tokens := strings.Fields(normalized)

	again := FilterStopwords(tokens)
	require.Equal(t, tokens, again)
}

func TestFilterStopwordsKeepsOrder(t *testing.T) {
	got := FilterStopwords([]string{"first", "the", "second", "is", "third"})
	assert.Equal(t, []string{"first", "second", "third"}, got)
}

func TestFilterStopwordsCaseInsensitive(t *testing.T) {
	got := FilterStopwords([]string{"The", "Trick", "IS", "here"})
	assert.Equal(t, []string{"Trick", "here"}, got)
}

func TestTokenize(t *testing.T) {
	got := Tokenize("check your work")
	assert.Equal(t, []string{"check", "your", "work"}, got)
}
