package config

import (
	"os"
	"testing"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		secret   string
		addr     string
		wantErr  bool
		wantAddr string
	}{
		{
			name:     "all set",
			id:       "test-id",
			secret:   "test-secret",
			addr:     "0.0.0.0:9090",
			wantAddr: "0.0.0.0:9090",
		},
		{
			name:     "addr defaults",
			id:       "test-id",
			secret:   "test-secret",
			wantAddr: "127.0.0.1:8080",
		},
		{
			name:    "missing client id",
			secret:  "test-secret",
			wantErr: true,
		},
		{
			name:    "missing client secret",
			id:      "test-id",
			wantErr: true,
		},
		{
			name:    "both missing",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("SPOTIFY_CLIENT_ID", tt.id)
			t.Setenv("SPOTIFY_CLIENT_SECRET", tt.secret)
			t.Setenv("ADDR", tt.addr)
			if tt.addr == "" {
				// An empty-but-set ADDR would win over the default;
				// t.Setenv already registered the restore.
				os.Unsetenv("ADDR")
			}

			cfg, err := Load()
			if tt.wantErr {
				if err == nil {
					t.Fatal("Load() error = nil, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}

			if cfg.ClientID != tt.id {
				t.Errorf("ClientID = %q, want %q", cfg.ClientID, tt.id)
			}
			if cfg.ClientSecret != tt.secret {
				t.Errorf("ClientSecret = %q, want %q", cfg.ClientSecret, tt.secret)
			}
			if cfg.Addr != tt.wantAddr {
				t.Errorf("Addr = %q, want %q", cfg.Addr, tt.wantAddr)
			}
		})
	}
}
