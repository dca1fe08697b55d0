package fetcher

import (
	"context"
	"fmt"

	"ewintr.nl/baitbiter/model"
	"google.golang.org/api/youtube/v3"
)

// DataAPI is a TitleSource backed by the authenticated YouTube Data API.
// Drop-in alternative for OEmbed when an API key is around.
type DataAPI struct {
	client *youtube.Service
}

func NewDataAPI(client *youtube.Service) *DataAPI {
	return &DataAPI{client: client}
}

func (d *DataAPI) Title(ctx context.Context, id model.YoutubeVideoID) (string, error) {
	call := d.client.Videos.
		List([]string{"snippet"}).
		Id(string(id)).
		Context(ctx)

	response, err := call.Do()
	if err != nil {
		return "", fmt.Errorf("%w: %v", model.ErrUpstreamUnavailable, err)
	}
	if len(response.Items) == 0 {
		return "", fmt.Errorf("%w: no video with id %s", model.ErrMalformedResponse, id)
	}

	return response.Items[0].Snippet.Title, nil
}
