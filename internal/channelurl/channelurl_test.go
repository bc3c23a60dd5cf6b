package channelurl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    Channel
		listing string
	}{
		{
			name:    "handle",
			raw:     "https://www.youtube.com/@MrBeast",
			want:    Channel{Kind: KindHandle, ID: "MrBeast"},
			listing: "https://www.youtube.com/@MrBeast/shorts",
		},
		{
			name:    "handle with videos tab",
			raw:     "https://www.youtube.com/@MrBeast/videos",
			want:    Channel{Kind: KindHandle, ID: "MrBeast"},
			listing: "https://www.youtube.com/@MrBeast/shorts",
		},
		{
			name:    "handle already on shorts",
			raw:     "https://youtube.com/@some.creator-1/shorts/",
			want:    Channel{Kind: KindHandle, ID: "some.creator-1"},
			listing: "https://www.youtube.com/@some.creator-1/shorts",
		},
		{
			name:    "channel id without scheme",
			raw:     "youtube.com/channel/UCX6OQ3DkcsbYNE6H8uQQuVA",
			want:    Channel{Kind: KindChannel, ID: "UCX6OQ3DkcsbYNE6H8uQQuVA"},
			listing: "https://www.youtube.com/channel/UCX6OQ3DkcsbYNE6H8uQQuVA/shorts",
		},
		{
			name:    "user",
			raw:     "https://www.youtube.com/user/PewDiePie/about",
			want:    Channel{Kind: KindUser, ID: "PewDiePie"},
			listing: "https://www.youtube.com/user/PewDiePie/shorts",
		},
		{
			name:    "custom on mobile host",
			raw:     "https://m.youtube.com/c/Veritasium",
			want:    Channel{Kind: KindCustom, ID: "Veritasium"},
			listing: "https://www.youtube.com/c/Veritasium/shorts",
		},
		{
			name:    "bare name",
			raw:     "https://www.youtube.com/Vsauce",
			want:    Channel{Kind: KindBare, ID: "Vsauce"},
			listing: "https://www.youtube.com/Vsauce/shorts",
		},
		{
			name:    "bare name with community tab",
			raw:     "https://www.youtube.com/Vsauce/community",
			want:    Channel{Kind: KindBare, ID: "Vsauce"},
			listing: "https://www.youtube.com/Vsauce/shorts",
		},
		{
			name:    "lone handle",
			raw:     "  @veritasium ",
			want:    Channel{Kind: KindHandle, ID: "veritasium"},
			listing: "https://www.youtube.com/@veritasium/shorts",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.listing, got.ListingURL())
			assert.Equal(t, tt.listing, ListingURL(tt.raw))
		})
	}
}

func TestParse_Unsupported(t *testing.T) {
	for _, raw := range []string{
		"",
		"https://example.com/@someone",
		"https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		"https://www.youtube.com/",
		"https://www.youtube.com/shorts/abc123",
	} {
		t.Run(raw, func(t *testing.T) {
			_, err := Parse(raw)
			assert.ErrorIs(t, err, ErrUnsupportedURL)
		})
	}
}

func TestListingURL_FallsBackToSuffixAppend(t *testing.T) {
	assert.Equal(t, "https://example.com/creator/shorts", ListingURL("https://example.com/creator/"))
}

func TestChannelName(t *testing.T) {
	assert.Equal(t, "MrBeast", ChannelName("https://www.youtube.com/@MrBeast/videos", "channel"))
	assert.Equal(t, "café", ChannelName("https://www.youtube.com/@caf%C3%A9", "channel"))
	assert.Equal(t, "channel", ChannelName("not a channel", "channel"))
}
