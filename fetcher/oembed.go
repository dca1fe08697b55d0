package fetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"ewintr.nl/baitbiter/model"
)

const oEmbedEndpoint = "https://www.youtube.com/oembed?url=https://www.youtube.com/watch?v=%s&format=json"

// OEmbed fetches video titles from the public oEmbed endpoint. No API key is
// needed, one GET per lookup, no retries.
type OEmbed struct {
	client   *http.Client
	endpoint string
}

func NewOEmbed(client *http.Client) *OEmbed {
	if client == nil {
		client = http.DefaultClient
	}

	return &OEmbed{
		client:   client,
		endpoint: oEmbedEndpoint,
	}
}

func (o *OEmbed) Title(ctx context.Context, id model.YoutubeVideoID) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf(o.endpoint, id), nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", model.ErrUpstreamUnavailable, err)
	}

	resp, err := o.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", model.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: oembed returned status %d", model.ErrUpstreamUnavailable, resp.StatusCode)
	}

	var body struct {
		Title *string `json:"title"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("%w: %v", model.ErrMalformedResponse, err)
	}
	if body.Title == nil {
		return "", fmt.Errorf("%w: no title field in oembed response", model.ErrMalformedResponse)
	}

	return *body.Title, nil
}
