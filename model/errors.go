package model

import "errors"

// Failure kinds for the pipeline. Every error returned by a source or by the
// session wraps exactly one of these, so callers can match with errors.Is
// without depending on upstream client types.
var (
	// ErrInvalidInput means the video URL could not be parsed.
	ErrInvalidInput = errors.New("invalid input")
	// ErrUpstreamUnavailable means a network or non-2xx failure talking to
	// YouTube.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
	// ErrMalformedResponse means the metadata lookup answered with an
	// unexpected shape.
	ErrMalformedResponse = errors.New("malformed response")
	// ErrTranscriptUnavailable means the video has no caption track.
	ErrTranscriptUnavailable = errors.New("transcript unavailable")
	// ErrCompletionFailed means the completion API rejected the request or
	// returned an error status.
	ErrCompletionFailed = errors.New("completion failed")
)
