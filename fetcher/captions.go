package fetcher

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"ewintr.nl/baitbiter/model"
	"github.com/kkdai/youtube/v2"
)

// flatten replaces the whitespace found in caption segments with plain
// spaces before joining.
var flatten = strings.NewReplacer("\n", " ", " ", " ")

// Captions fetches a video's caption track, human- or auto-generated, and
// joins all segments into one line of text.
type Captions struct {
	client *youtube.Client
	lang   string
}

func NewCaptions(lang string) *Captions {
	if lang == "" {
		lang = "en"
	}

	return &Captions{
		client: &youtube.Client{},
		lang:   lang,
	}
}

func (c *Captions) Transcript(ctx context.Context, id model.YoutubeVideoID) (string, error) {
	video, err := c.client.GetVideoContext(ctx, string(id))
	if err != nil {
		return "", fmt.Errorf("%w: %v", model.ErrUpstreamUnavailable, err)
	}

	transcript, err := c.client.GetTranscriptCtx(ctx, video, c.lang)
	if err != nil {
		if errors.Is(err, youtube.ErrTranscriptDisabled) {
			return "", fmt.Errorf("%w: %v", model.ErrTranscriptUnavailable, err)
		}
		return "", fmt.Errorf("%w: %v", model.ErrUpstreamUnavailable, err)
	}
	if len(transcript) == 0 {
		return "", fmt.Errorf("%w: empty caption track", model.ErrTranscriptUnavailable)
	}

	segments := make([]string, 0, len(transcript))
	for _, segment := range transcript {
		segments = append(segments, flatten.Replace(segment.Text))
	}

	return strings.Join(segments, " "), nil
}
