package domain

// FormatPreset maps a user facing quality choice to a yt-dlp format selector.
type FormatPreset struct {
	Name     string
	Label    string
	Selector string
}

// DefaultFormat is the preset used when none is configured.
const DefaultFormat = "best"

// FormatPresets is the fixed set of quality/container combinations on offer.
var FormatPresets = []FormatPreset{
	{Name: "best", Label: "Best Quality (Default)", Selector: "bestvideo+bestaudio/best"},
	{Name: "best-mp4", Label: "Best Quality (MP4)", Selector: "bestvideo[ext=mp4]+bestaudio[ext=m4a]/best[ext=mp4]"},
	{Name: "best-mkv", Label: "Best Quality (MKV)", Selector: "bestvideo[ext=mkv]+bestaudio[ext=opus]/best[ext=mkv]"},
	{Name: "1080p", Label: "1080p (MP4)", Selector: "bestvideo[height<=1080][ext=mp4]+bestaudio[ext=m4a]/best[height<=1080][ext=mp4]/best[ext=mp4]"},
	{Name: "720p", Label: "720p (MP4)", Selector: "bestvideo[height<=720][ext=mp4]+bestaudio[ext=m4a]/best[height<=720][ext=mp4]/best[ext=mp4]"},
	{Name: "480p", Label: "480p (MP4)", Selector: "bestvideo[height<=480][ext=mp4]+bestaudio[ext=m4a]/best[height<=480][ext=mp4]/best[ext=mp4]"},
}

// LookupFormat finds a preset by name.
func LookupFormat(name string) (FormatPreset, bool) {
	for _, p := range FormatPresets {
		if p.Name == name {
			return p, true
		}
	}
	return FormatPreset{}, false
}

// FormatNames returns the preset names in display order.
func FormatNames() []string {
	names := make([]string, len(FormatPresets))
	for i, p := range FormatPresets {
		names[i] = p.Name
	}
	return names
}
