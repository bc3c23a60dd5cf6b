package ytdlp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"shortsbatcher/internal/core/ports"
)

// videoJSON is the subset of the yt-dlp info dict that is used.
type videoJSON struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Entries     []*videoJSON `json:"entries"`
}

func (v *videoJSON) info() ports.VideoInfo {
	if v == nil {
		return ports.VideoInfo{}
	}
	return ports.VideoInfo{ID: v.ID, Title: v.Title, Description: v.Description}
}

// FetchInfo queries one video without downloading it.
func (d *YtDlpDownloader) FetchInfo(ctx context.Context, videoURL, proxy string) (*ports.VideoInfo, error) {
	if d.infoTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.infoTimeout)
		defer cancel()
	}

	v, err := d.dumpJSON(ctx, infoArgs(videoURL, proxy))
	if err != nil {
		return nil, err
	}
	info := v.info()
	return &info, nil
}

// FetchListing queries the first limit entries of a listing in one call.
// Entries the tool could not resolve come back with an empty ID.
func (d *YtDlpDownloader) FetchListing(ctx context.Context, listingURL string, limit int, proxy string) ([]ports.VideoInfo, error) {
	v, err := d.dumpJSON(ctx, listingArgs(listingURL, limit, proxy))
	if err != nil {
		return nil, err
	}
	infos := make([]ports.VideoInfo, len(v.Entries))
	for i, e := range v.Entries {
		infos[i] = e.info()
	}
	return infos, nil
}

func (d *YtDlpDownloader) dumpJSON(ctx context.Context, args []string) (*videoJSON, error) {
	var out bytes.Buffer
	code, stderr, err := d.run(ctx, args, &out)
	if err != nil {
		return nil, err
	}
	// --ignore-errors exits non-zero when some entries failed but still prints the dict
	if code != 0 && out.Len() == 0 {
		return nil, fmt.Errorf("yt-dlp exited with code %d: %s", code, lastLine(stderr))
	}
	return parseVideoJSON(out.Bytes())
}

func parseVideoJSON(data []byte) (*videoJSON, error) {
	var v videoJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("failed to parse yt-dlp output: %w", err)
	}
	return &v, nil
}

func infoArgs(videoURL, proxy string) []string {
	args := []string{"--dump-single-json", "--no-warnings"}
	if proxy != "" {
		args = append(args, "--proxy", proxy)
	}
	return append(args, videoURL)
}

func listingArgs(listingURL string, limit int, proxy string) []string {
	items := "1:"
	if limit > 0 {
		items += strconv.Itoa(limit)
	}
	args := []string{"--dump-single-json", "--no-warnings", "--ignore-errors", "--playlist-items", items}
	if proxy != "" {
		args = append(args, "--proxy", proxy)
	}
	return append(args, listingURL)
}
