package web

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"playlistcleaner/internal/cleaner"
)

const stateCookieName = "oauth_state"

// Exchanger turns an authorization callback into an OAuth token.
// auth.Authenticator satisfies it; tests substitute fakes.
type Exchanger interface {
	AuthURL(state string) string
	Exchange(ctx context.Context, state string, r *http.Request) (*oauth2.Token, error)
}

// Remover purges the target artist's tracks from a playlist.
type Remover interface {
	Remove(ctx context.Context, accessToken, playlistRef string) (cleaner.Result, error)
}

// Handlers contains HTTP handlers for the web application.
type Handlers struct {
	auth      Exchanger
	remover   Remover
	templates *Templates
	logger    *log.Logger
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(auth Exchanger, remover Remover, templates *Templates, logger *log.Logger) *Handlers {
	return &Handlers{
		auth:      auth,
		remover:   remover,
		templates: templates,
		logger:    logger,
	}
}

// Home renders the entry page with a generated authorization URL (GET /).
func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	// State for CSRF protection, validated on callback.
	state := uuid.NewString()

	http.SetCookie(w, &http.Cookie{
		Name:     stateCookieName,
		Value:    state,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   300, // 5 minutes
	})

	data := HomePageData{
		PageData: PageData{Title: "Playlist Cleaner"},
		AuthURL:  h.auth.AuthURL(state),
	}
	h.render(w, "home", data)
}

// Callback handles the OAuth callback from Spotify (GET /callback).
// On success the browser is redirected onward carrying the access token by
// value; nothing is held server-side. The refresh token stays inside the
// exchanged token and is not propagated (there is no refresh flow).
func (h *Handlers) Callback(w http.ResponseWriter, r *http.Request) {
	if errMsg := r.URL.Query().Get("error"); errMsg != "" {
		h.renderError(w, http.StatusBadRequest, "Spotify authorization failed: "+errMsg)
		return
	}

	stateCookie, err := r.Cookie(stateCookieName)
	if err != nil {
		h.renderError(w, http.StatusBadRequest, "Missing state cookie. Start again from the home page.")
		return
	}

	if r.URL.Query().Get("state") != stateCookie.Value {
		h.renderError(w, http.StatusBadRequest, "State mismatch. Start again from the home page.")
		return
	}

	// Clear state cookie
	http.SetCookie(w, &http.Cookie{
		Name:     stateCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})

	token, err := h.auth.Exchange(r.Context(), stateCookie.Value, r)
	if err != nil {
		h.renderError(w, http.StatusBadGateway, fmt.Sprintf("Failed to retrieve access token: %v", err))
		return
	}

	next := "/select_playlist?access_token=" + url.QueryEscape(token.AccessToken)
	http.Redirect(w, r, next, http.StatusSeeOther)
}

// SelectPlaylist renders the playlist form (GET /select_playlist).
func (h *Handlers) SelectPlaylist(w http.ResponseWriter, r *http.Request) {
	accessToken := r.URL.Query().Get("access_token")
	if accessToken == "" {
		h.renderError(w, http.StatusBadRequest, "Access token missing.")
		return
	}

	data := SelectPlaylistPageData{
		PageData:    PageData{Title: "Select Playlist"},
		AccessToken: accessToken,
	}
	h.render(w, "select_playlist", data)
}

// RemoveTracks performs the cleanup and renders the result (POST /remove_tracks).
func (h *Handlers) RemoveTracks(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderError(w, http.StatusBadRequest, "Invalid form submission.")
		return
	}

	accessToken := r.PostFormValue("access_token")
	playlistInput := r.PostFormValue("playlist_input")
	if accessToken == "" || playlistInput == "" {
		h.renderError(w, http.StatusBadRequest, "Access token or playlist input missing.")
		return
	}

	result, err := h.remover.Remove(r.Context(), accessToken, playlistInput)
	if err != nil {
		h.renderError(w, http.StatusBadGateway, err.Error())
		return
	}

	message := "Tracks removed successfully!"
	if result.Removed == 0 {
		message = "No tracks to remove!"
	}

	data := ResultPageData{
		PageData: PageData{Title: "Cleanup Result"},
		Message:  message,
		Removed:  result.Removed,
	}
	h.render(w, "result", data)
}

// render writes a page template, logging render failures.
func (h *Handlers) render(w http.ResponseWriter, page string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.templates.Render(w, page, data); err != nil {
		h.logger.Error("rendering template", "page", page, "err", err)
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
	}
}

// renderError writes the error page with the given status and message.
// Every failure in this flow is terminal; the user restarts from the entry
// page.
func (h *Handlers) renderError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)

	data := ErrorPageData{
		PageData: PageData{Title: "Error"},
		Message:  message,
	}
	if err := h.templates.Render(w, "error", data); err != nil {
		h.logger.Error("rendering error page", "err", err)
	}
}
