package spotify

import "regexp"

var (
	playlistURLPattern = regexp.MustCompile(`https://open\.spotify\.com/playlist/([a-zA-Z0-9]+)`)
	playlistURIPattern = regexp.MustCompile(`spotify:playlist:([a-zA-Z0-9]+)`)
)

// ExtractPlaylistID returns the bare playlist ID from a share URL
// (https://open.spotify.com/playlist/<id>), a spotify:playlist:<id> URI, or
// a raw ID. Unrecognized input is returned unchanged and will surface as an
// API error downstream rather than being validated here.
func ExtractPlaylistID(input string) string {
	if m := playlistURLPattern.FindStringSubmatch(input); m != nil {
		return m[1]
	}
	if m := playlistURIPattern.FindStringSubmatch(input); m != nil {
		return m[1]
	}
	return input
}
