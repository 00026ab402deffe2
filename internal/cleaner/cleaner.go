// Package cleaner removes every track credited to a target artist from a
// Spotify playlist.
package cleaner

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/samber/lo"
	"github.com/zmb3/spotify/v2"

	spotifyapi "playlistcleaner/internal/spotify"
)

// TargetArtistID is the artist whose tracks are purged: Kanye West.
const TargetArtistID = spotify.ID("5K4W6rqBFWDnAN6FQUkS6x")

// Result reports the outcome of one cleanup run.
type Result struct {
	PlaylistID spotify.ID
	Matched    int
	Removed    int
}

// Service performs playlist cleanups. A fresh API client is built per call
// from the access token the browser carries through the flow.
type Service struct {
	artistID  spotify.ID
	logger    *log.Logger
	newClient func(ctx context.Context, accessToken string) spotifyapi.PlaylistClient
}

// NewService creates a Service targeting the given artist.
func NewService(artistID spotify.ID, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Service{
		artistID: artistID,
		logger:   logger,
		newClient: func(ctx context.Context, accessToken string) spotifyapi.PlaylistClient {
			return spotifyapi.NewFromToken(ctx, accessToken)
		},
	}
}

// Remove fetches the playlist's tracks, marks every track credited to the
// target artist, and issues a single removal call for the marked tracks.
// Zero matches is a success with Removed == 0 and no removal call issued.
//
// Only the first page of playlist items is inspected; tracks beyond the API
// page size are left untouched, matching the upstream flow.
func (s *Service) Remove(ctx context.Context, accessToken, playlistRef string) (Result, error) {
	playlistID := spotify.ID(spotifyapi.ExtractPlaylistID(playlistRef))
	client := s.newClient(ctx, accessToken)

	page, err := client.GetPlaylistItems(ctx, playlistID)
	if err != nil {
		return Result{}, fmt.Errorf("fetching playlist tracks: %w", err)
	}

	if int(page.Total) > len(page.Items) {
		s.logger.Warn("playlist exceeds one page; trailing tracks not inspected",
			"playlist", playlistID, "total", page.Total, "inspected", len(page.Items))
	}

	ids := lo.Uniq(s.matchingTrackIDs(page.Items))

	result := Result{PlaylistID: playlistID, Matched: len(ids)}
	if len(ids) == 0 {
		s.logger.Info("no tracks matched", "playlist", playlistID, "artist", s.artistID)
		return result, nil
	}

	if _, err := client.RemoveTracksFromPlaylist(ctx, playlistID, ids...); err != nil {
		return Result{}, fmt.Errorf("removing tracks: %w", err)
	}

	result.Removed = len(ids)
	s.logger.Info("removed tracks", "playlist", playlistID, "count", result.Removed)
	return result, nil
}

// matchingTrackIDs returns the IDs of tracks with any credit for the target
// artist. Each track is marked at most once.
func (s *Service) matchingTrackIDs(items []spotify.PlaylistItem) []spotify.ID {
	var ids []spotify.ID
	for _, item := range items {
		track := item.Track.Track
		if track == nil {
			// Podcast episodes and local files have no track payload.
			continue
		}
		for _, artist := range track.Artists {
			if artist.ID == s.artistID {
				ids = append(ids, track.ID)
				break
			}
		}
	}
	return ids
}
