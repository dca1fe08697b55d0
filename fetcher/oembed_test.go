package fetcher

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"ewintr.nl/baitbiter/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOEmbed(handler http.HandlerFunc) (*OEmbed, *httptest.Server) {
	srv := httptest.NewServer(handler)
	src := NewOEmbed(srv.Client())
	src.endpoint = srv.URL + "/oembed?v=%s"

	return src, srv
}

func TestOEmbedTitle(t *testing.T) {
	var gotPath string
	src, srv := newTestOEmbed(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.String()
		w.Write([]byte(`{"title":"You Won't Believe This Trick","author_name":"someone"}`))
	})
	defer srv.Close()

	title, err := src.Title(context.Background(), "dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.Equal(t, "You Won't Believe This Trick", title)
	assert.Contains(t, gotPath, "dQw4w9WgXcQ")
}

func TestOEmbedTitleNotFound(t *testing.T) {
	src, srv := newTestOEmbed(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Not Found", http.StatusNotFound)
	})
	defer srv.Close()

	_, err := src.Title(context.Background(), "dQw4w9WgXcQ")
	assert.ErrorIs(t, err, model.ErrUpstreamUnavailable)
}

func TestOEmbedTitleMalformed(t *testing.T) {
	for _, tt := range []struct {
		name string
		body string
	}{
		{"no title field", `{"author_name":"someone"}`},
		{"not json", `<html>nope</html>`},
	} {
		t.Run(tt.name, func(t *testing.T) {
			src, srv := newTestOEmbed(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			})
			defer srv.Close()

			_, err := src.Title(context.Background(), "dQw4w9WgXcQ")
			assert.ErrorIs(t, err, model.ErrMalformedResponse)
		})
	}
}

func TestOEmbedTitleConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(nil)
	src := NewOEmbed(srv.Client())
	src.endpoint = srv.URL + "/oembed?v=%s"
	srv.Close()

	_, err := src.Title(context.Background(), "dQw4w9WgXcQ")
	assert.ErrorIs(t, err, model.ErrUpstreamUnavailable)
}
