// Package spotify provides helpers around the Spotify Web API client.
package spotify

import (
	"context"

	"github.com/zmb3/spotify/v2"
	"golang.org/x/oauth2"
)

// PlaylistClient is the subset of the Spotify Web API used to clean
// playlists. *spotify.Client satisfies it; tests substitute fakes.
type PlaylistClient interface {
	GetPlaylistItems(ctx context.Context, playlistID spotify.ID, opts ...spotify.RequestOption) (*spotify.PlaylistItemPage, error)
	RemoveTracksFromPlaylist(ctx context.Context, playlistID spotify.ID, trackIDs ...spotify.ID) (string, error)
}

var _ PlaylistClient = (*spotify.Client)(nil)

// NewFromToken builds an API client from a bearer access token. The token
// is used as-is for the lifetime of the request; it is never refreshed or
// stored server-side.
func NewFromToken(ctx context.Context, accessToken string) *spotify.Client {
	src := oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: accessToken,
		TokenType:   "Bearer",
	})
	return spotify.New(oauth2.NewClient(ctx, src))
}
