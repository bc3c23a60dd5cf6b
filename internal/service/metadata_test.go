package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"shortsbatcher/internal/core/domain"
	"shortsbatcher/internal/core/ports"
	"shortsbatcher/internal/core/ports/mocks"
)

func TestMetadataFetcher_FetchEachToleratesFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	media := mocks.NewMockMediaFetcher(ctrl)
	urls := []string{ShortURL("A"), ShortURL("B"), ShortURL("C"), ShortURL("D")}

	gomock.InOrder(
		media.EXPECT().FetchInfo(gomock.Any(), urls[0], "http://proxy:8080").
			Return(&ports.VideoInfo{ID: "A", Title: "First", Description: "desc"}, nil),
		media.EXPECT().FetchInfo(gomock.Any(), urls[1], "http://proxy:8080").
			Return(nil, errors.New("exit status 1")),
		media.EXPECT().FetchInfo(gomock.Any(), urls[2], "http://proxy:8080").
			Return(&ports.VideoInfo{}, nil),
		media.EXPECT().FetchInfo(gomock.Any(), urls[3], "http://proxy:8080").
			Return(&ports.VideoInfo{ID: "D"}, nil),
	)

	f := NewMetadataFetcher(media, quietReporter(ctrl), testLogger())
	records, failed, err := f.FetchEach(context.Background(), urls, "http://proxy:8080")

	require.NoError(t, err)
	assert.Equal(t, []domain.VideoRecord{
		{URL: ShortURL("A"), Title: "First", Description: "desc"},
		{URL: ShortURL("D"), Title: DefaultTitle},
	}, records)
	assert.Equal(t, []string{urls[1], urls[2]}, failed)
}

func TestMetadataFetcher_FetchEachKeepsPartialOnCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	media := mocks.NewMockMediaFetcher(ctrl)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	media.EXPECT().FetchInfo(gomock.Any(), ShortURL("A"), "").
		DoAndReturn(func(context.Context, string, string) (*ports.VideoInfo, error) {
			cancel()
			return &ports.VideoInfo{ID: "A", Title: "First"}, nil
		})

	f := NewMetadataFetcher(media, quietReporter(ctrl), testLogger())
	records, _, err := f.FetchEach(ctx, []string{ShortURL("A"), ShortURL("B")}, "")

	assert.ErrorIs(t, err, context.Canceled)
	require.Len(t, records, 1)
	assert.Equal(t, ShortURL("A"), records[0].URL)
}

func TestMetadataFetcher_FetchEachToolMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	media := mocks.NewMockMediaFetcher(ctrl)
	media.EXPECT().FetchInfo(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, ports.ErrToolNotFound)

	f := NewMetadataFetcher(media, quietReporter(ctrl), testLogger())
	_, _, err := f.FetchEach(context.Background(), []string{ShortURL("A"), ShortURL("B")}, "")

	assert.ErrorIs(t, err, ports.ErrToolNotFound)
}

func TestMetadataFetcher_FetchListing(t *testing.T) {
	ctrl := gomock.NewController(t)
	media := mocks.NewMockMediaFetcher(ctrl)
	media.EXPECT().FetchListing(gomock.Any(), testListing, 3, "").Return([]ports.VideoInfo{
		{ID: "A", Title: "First"},
		{Title: "no id"},
		{ID: "B", Title: "  ", Description: "second"},
	}, nil)

	f := NewMetadataFetcher(media, quietReporter(ctrl), testLogger())
	records, err := f.FetchListing(context.Background(), testListing, 3, "")

	require.NoError(t, err)
	assert.Equal(t, []domain.VideoRecord{
		{URL: ShortURL("A"), Title: "First"},
		{URL: ShortURL("B"), Title: DefaultTitle, Description: "second"},
	}, records)
}

func TestMetadataFetcher_FetchListingError(t *testing.T) {
	ctrl := gomock.NewController(t)
	media := mocks.NewMockMediaFetcher(ctrl)
	boom := errors.New("exit status 1")
	media.EXPECT().FetchListing(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, boom)

	f := NewMetadataFetcher(media, quietReporter(ctrl), testLogger())
	records, err := f.FetchListing(context.Background(), testListing, 0, "")

	assert.ErrorIs(t, err, boom)
	assert.Empty(t, records)
}
