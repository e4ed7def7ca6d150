package vo

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func imageURLs(n int) []string {
	urls := make([]string, n)
	for i := range urls {
		urls[i] = fmt.Sprintf("https://cdn.example.com/img/%02d.jpg", i)
	}

	return urls
}

func TestNewGallery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		urls    []string
		wantErr string
	}{
		{name: "single image", urls: imageURLs(1)},
		{name: "fifteen images", urls: imageURLs(15)},
		{name: "empty", urls: nil, wantErr: "must contain at least 1 image"},
		{name: "sixteen images", urls: imageURLs(16), wantErr: "cannot contain more than 15 images"},
		{name: "duplicate", urls: []string{"https://a.example.com/1.png", " https://a.example.com/1.png"}, wantErr: "duplicate image URLs"},
		{name: "ftp scheme", urls: []string{"ftp://a.example.com/1.png"}, wantErr: "http or https"},
		{name: "relative", urls: []string{"/img/1.png"}, wantErr: "http or https"},
		{name: "not a uri", urls: []string{"just words"}, wantErr: "well-formed"},
		{name: "blank entry", urls: []string{" "}, wantErr: "must not be blank"},
		{name: "too long", urls: []string{"https://a.example.com/" + strings.Repeat("x", MaxImageURLLength)}, wantErr: "must not exceed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			g, err := NewGallery(tt.urls)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, len(tt.urls), g.Len())
		})
	}
}

func TestGallery_IsOrderedAndImmutable(t *testing.T) {
	t.Parallel()

	urls := []string{"https://cdn.example.com/b.jpg", "https://cdn.example.com/a.jpg"}
	g, err := NewGallery(urls)
	require.NoError(t, err)

	urls[0] = "https://evil.example.com/x.jpg"
	images := g.Images()
	images[1] = "https://evil.example.com/y.jpg"

	assert.Equal(t, "https://cdn.example.com/b.jpg", g.Primary())
	assert.True(t, g.Contains("https://cdn.example.com/a.jpg"))

	reversed, err := NewGallery([]string{"https://cdn.example.com/a.jpg", "https://cdn.example.com/b.jpg"})
	require.NoError(t, err)
	assert.False(t, g.Equals(reversed))
}
