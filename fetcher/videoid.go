package fetcher

import (
	"fmt"
	"net/url"
	"strings"

	"ewintr.nl/baitbiter/model"
	"github.com/kkdai/youtube/v2"
)

// ExtractVideoID derives the video identifier from any of the usual YouTube
// URL shapes (watch, youtu.be, embed, shorts) or from a bare identifier.
// Tracking parameters are ignored, so URLs pointing at the same video always
// yield the same identifier.
func ExtractVideoID(rawURL string) (model.YoutubeVideoID, error) {
	// the id matcher below is lenient about hosts, so reject non-YouTube
	// URLs first
	if u, err := url.Parse(rawURL); err == nil && u.Host != "" {
		host := strings.TrimPrefix(u.Hostname(), "www.")
		if !strings.HasSuffix(host, "youtube.com") && host != "youtu.be" {
			return "", fmt.Errorf("%w: %q is not a youtube url", model.ErrInvalidInput, rawURL)
		}
	}

	id, err := youtube.ExtractVideoID(rawURL)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", model.ErrInvalidInput, rawURL, err)
	}

	return model.YoutubeVideoID(id), nil
}
