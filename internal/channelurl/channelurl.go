// Package channelurl turns the channel URL shapes users paste into the
// canonical shorts listing URL.
package channelurl

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// Kind is the shape a channel URL was given in.
type Kind string

const (
	KindHandle  Kind = "handle"  // /@name
	KindChannel Kind = "channel" // /channel/UC...
	KindUser    Kind = "user"    // /user/name
	KindCustom  Kind = "custom"  // /c/name
	KindBare    Kind = "bare"    // /name
)

// BaseURL is the origin every canonical URL is built on.
const BaseURL = "https://www.youtube.com"

// ShortsPath is the listing suffix appended to a channel URL.
const ShortsPath = "/shorts"

// ErrUnsupportedURL is returned when no matcher accepts the input.
var ErrUnsupportedURL = errors.New("unsupported channel url")

// Channel is a parsed channel reference.
type Channel struct {
	Kind Kind
	ID   string
}

// ListingURL returns the canonical shorts listing URL.
func (c Channel) ListingURL() string {
	switch c.Kind {
	case KindHandle:
		return BaseURL + "/@" + c.ID + ShortsPath
	case KindChannel:
		return BaseURL + "/channel/" + c.ID + ShortsPath
	case KindUser:
		return BaseURL + "/user/" + c.ID + ShortsPath
	case KindCustom:
		return BaseURL + "/c/" + c.ID + ShortsPath
	default:
		return BaseURL + "/" + c.ID + ShortsPath
	}
}

// Name is the unescaped handle or id, used to name run level exports.
func (c Channel) Name() string {
	if name, err := url.PathUnescape(c.ID); err == nil {
		return name
	}
	return c.ID
}

// matcher recognises one URL path shape.
type matcher struct {
	kind    Kind
	pattern *regexp.Regexp
}

// Segment charset follows what the site allows in handles and ids, plus
// percent escapes for non-ASCII handles.
var matchers = []matcher{
	{KindHandle, regexp.MustCompile(`^/@([\w.\-%]+)(?:/.*)?$`)},
	{KindChannel, regexp.MustCompile(`^/channel/([\w\-]+)(?:/.*)?$`)},
	{KindUser, regexp.MustCompile(`^/user/([\w.\-%]+)(?:/.*)?$`)},
	{KindCustom, regexp.MustCompile(`^/c/([\w.\-%]+)(?:/.*)?$`)},
}

var barePattern = regexp.MustCompile(`^/([\w.\-%]+)/?$`)

var bareHandle = regexp.MustCompile(`^@([\w.\-]+)$`)

// listingSuffixes are channel tabs that are not the shorts listing.
var listingSuffixes = []string{
	"/about", "/community", "/playlists", "/playlist", "/streams", "/featured", "/videos", "/shorts",
}

// reserved first path segments that are never a bare channel name.
var reserved = map[string]bool{
	"watch": true, "shorts": true, "playlist": true, "results": true, "feed": true, "embed": true,
}

var hosts = map[string]bool{
	"youtube.com": true, "www.youtube.com": true, "m.youtube.com": true,
}

// Parse recognises a channel URL. Accepted shapes are /@handle,
// /channel/<id>, /user/<id>, /c/<id>, a bare /<name> and a lone @handle.
// The scheme may be omitted.
func Parse(raw string) (Channel, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Channel{}, fmt.Errorf("%w: empty", ErrUnsupportedURL)
	}
	if m := bareHandle.FindStringSubmatch(raw); m != nil {
		return Channel{Kind: KindHandle, ID: m[1]}, nil
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return Channel{}, fmt.Errorf("%w: %v", ErrUnsupportedURL, err)
	}
	if !hosts[strings.ToLower(u.Host)] {
		return Channel{}, fmt.Errorf("%w: host %q", ErrUnsupportedURL, u.Host)
	}

	path := u.EscapedPath()
	for _, m := range matchers {
		if sub := m.pattern.FindStringSubmatch(path); sub != nil {
			return Channel{Kind: m.kind, ID: sub[1]}, nil
		}
	}

	path = stripListingSuffix(path)
	if sub := barePattern.FindStringSubmatch(path); sub != nil && !reserved[strings.ToLower(sub[1])] {
		return Channel{Kind: KindBare, ID: sub[1]}, nil
	}
	return Channel{}, fmt.Errorf("%w: %s", ErrUnsupportedURL, raw)
}

// ListingURL returns the canonical shorts listing URL for raw. Input no
// matcher accepts falls back to appending the listing suffix.
func ListingURL(raw string) string {
	if c, err := Parse(raw); err == nil {
		return c.ListingURL()
	}
	return strings.TrimRight(strings.TrimSpace(raw), "/") + ShortsPath
}

// ChannelName returns the handle or id of raw, or fallback when raw is not
// a recognised channel URL.
func ChannelName(raw, fallback string) string {
	if c, err := Parse(raw); err == nil {
		return c.Name()
	}
	return fallback
}

func stripListingSuffix(path string) string {
	path = strings.TrimRight(path, "/")
	for _, s := range listingSuffixes {
		if i := strings.Index(path, s); i > 0 {
			return path[:i]
		}
	}
	return path
}
