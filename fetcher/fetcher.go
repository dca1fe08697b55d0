package fetcher

import (
	"context"

	"ewintr.nl/baitbiter/model"
)

// TitleSource looks up the display title of a video.
type TitleSource interface {
	Title(ctx context.Context, id model.YoutubeVideoID) (string, error)
}

// TranscriptSource fetches a caption track and flattens it to a single line
// of text.
type TranscriptSource interface {
	Transcript(ctx context.Context, id model.YoutubeVideoID) (string, error)
}
