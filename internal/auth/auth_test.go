package auth

import (
	"net/url"
	"strings"
	"testing"
)

func TestAuthURL(t *testing.T) {
	a := New("test-client-id", "test-client-secret", "http://127.0.0.1:8080/callback")

	rawURL := a.AuthURL("test-state")

	u, err := url.Parse(rawURL)
	if err != nil {
		t.Fatalf("AuthURL() returned unparseable URL: %v", err)
	}

	if !strings.HasPrefix(rawURL, "https://accounts.spotify.com/authorize") {
		t.Errorf("AuthURL() = %q, want accounts.spotify.com/authorize prefix", rawURL)
	}

	q := u.Query()
	want := map[string]string{
		"client_id":     "test-client-id",
		"response_type": "code",
		"redirect_uri":  "http://127.0.0.1:8080/callback",
		"state":         "test-state",
		"show_dialog":   "true",
	}
	for key, value := range want {
		if got := q.Get(key); got != value {
			t.Errorf("query param %s = %q, want %q", key, got, value)
		}
	}

	scope := q.Get("scope")
	for _, s := range []string{"playlist-modify-public", "playlist-modify-private"} {
		if !strings.Contains(scope, s) {
			t.Errorf("scope = %q, missing %q", scope, s)
		}
	}
}

func TestAuthURL_StateVaries(t *testing.T) {
	a := New("id", "secret", "http://127.0.0.1:8080/callback")

	first := a.AuthURL("state-one")
	second := a.AuthURL("state-two")

	if first == second {
		t.Error("AuthURL() returned identical URLs for different states")
	}
}
