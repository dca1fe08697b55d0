package process

import (
	"strings"

	prose "github.com/jdkato/prose/v2"
	"github.com/kljensen/snowball/english"
)

// Normalize shrinks transcript text before it is sent to a token-priced
// completion model: tokenize, stem every token, drop stopwords. Word order is
// preserved and the result never holds more tokens than the input had words.
// Exact phrasing is lost, which is fine for answering, the prompt only needs
// the semantic content.
func Normalize(text string) string {
	tokens := Tokenize(text)
	stemmed := make([]string, 0, len(tokens))
	for _, token := range tokens {
		stemmed = append(stemmed, english.Stem(token, false))
	}

	return strings.Join(FilterStopwords(stemmed), " ")
}

// Tokenize splits text into word tokens.
func Tokenize(text string) []string {
	doc, err := prose.NewDocument(text,
		prose.WithTagging(false),
		prose.WithExtraction(false),
		prose.WithSegmentation(false))
	if err != nil {
		// The tokenizer only errors on model setup, not on input. Fall back
		// to whitespace splitting rather than failing the whole pipeline.
		return strings.Fields(text)
	}

	tokens := make([]string, 0, len(doc.Tokens()))
	for _, token := range doc.Tokens() {
		if token.Text == "" {
			continue
		}
		tokens = append(tokens, token.Text)
	}

	return tokens
}

// FilterStopwords removes tokens whose lower-cased form is an English
// stopword. Order of the surviving tokens is untouched and the operation is
// idempotent.
func FilterStopwords(tokens []string) []string {
	kept := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if _, ok := stopwords[strings.ToLower(token)]; ok {
			continue
		}
		kept = append(kept, token)
	}

	return kept
}
