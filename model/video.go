package model

import "github.com/sashabaranov/go-openai"

// TranscriptMode selects how much editing a transcript gets before it is
// used as prompt material.
type TranscriptMode string

const (
	// TranscriptRaw keeps the caption text as fetched, joined into one line.
	TranscriptRaw TranscriptMode = "raw"
	// TranscriptNormalized tokenizes, stems and strips stopwords. Cheaper to
	// send to a token-priced model, at the cost of exact phrasing.
	TranscriptNormalized TranscriptMode = "normalized"
)

type YoutubeVideoID string

const (
	DefaultQuestionModel = openai.GPT3TextDavinci003

	// A raw transcript keeps its full phrasing, so answering gets the large
	// tier. A normalized transcript is already boiled down to content words
	// and a smaller tier does fine.
	DefaultAnswerModelRaw        = openai.GPT3TextDavinci003
	DefaultAnswerModelNormalized = openai.GPT3TextCurie001
)

// AnswerModelFor returns the default answer model for the given transcript mode.
func AnswerModelFor(mode TranscriptMode) string {
	if mode == TranscriptNormalized {
		return DefaultAnswerModelNormalized
	}
	return DefaultAnswerModelRaw
}
