// Package auth implements the Spotify authorization-code flow pieces used
// by the web application.
package auth

import (
	"context"
	"net/http"

	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"golang.org/x/oauth2"
)

// Authenticator wraps the Spotify OAuth2 helper with the scopes needed to
// modify playlists.
type Authenticator struct {
	auth *spotifyauth.Authenticator
}

// New creates an Authenticator for the given application credentials.
// redirectURL must match the value registered with Spotify.
func New(clientID, clientSecret, redirectURL string) *Authenticator {
	return &Authenticator{
		auth: spotifyauth.New(
			spotifyauth.WithClientID(clientID),
			spotifyauth.WithClientSecret(clientSecret),
			spotifyauth.WithRedirectURL(redirectURL),
			spotifyauth.WithScopes(
				spotifyauth.ScopePlaylistModifyPublic,
				spotifyauth.ScopePlaylistModifyPrivate,
			),
		),
	}
}

// AuthURL returns the provider authorization URL for the given state.
// show_dialog is set so the user is always prompted to log in.
func (a *Authenticator) AuthURL(state string) string {
	return a.auth.AuthURL(state, spotifyauth.ShowDialog)
}

// Exchange trades the authorization code carried by the callback request
// for a token. The returned error includes the provider response body when
// the token endpoint rejects the exchange.
func (a *Authenticator) Exchange(ctx context.Context, state string, r *http.Request) (*oauth2.Token, error) {
	return a.auth.Token(ctx, state, r)
}
