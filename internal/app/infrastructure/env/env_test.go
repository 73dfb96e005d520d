package env

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		vars    map[string]string
		wantErr bool
		check   func(t *testing.T, e *Environment)
	}{
		{
			name: "minimal_with_defaults",
			vars: map[string]string{
				"BOT_TOKEN": "123:abc",
				"OWNER_ID":  "4242",
			},
			check: func(t *testing.T, e *Environment) {
				assert.Equal(t, "123:abc", e.BotToken)
				assert.Equal(t, int64(4242), e.OwnerID)
				assert.Equal(t, "data.json", e.DataFile)
				assert.Equal(t, "info", e.LogLevel)
				assert.Equal(t, "release", e.GinMode)
				assert.Equal(t, ":8880", e.ListenAddr)
				assert.Empty(t, e.AuthToken)
			},
		},
		{
			name: "overrides",
			vars: map[string]string{
				"BOT_TOKEN":   "123:abc",
				"OWNER_ID":    "4242",
				"DATA_FILE":   "/var/lib/bot/chats.json",
				"LOG_LEVEL":   "debug",
				"LISTEN_ADDR": ":9000",
				"AUTH_TOKEN":  "secret",
			},
			check: func(t *testing.T, e *Environment) {
				assert.Equal(t, "/var/lib/bot/chats.json", e.DataFile)
				assert.Equal(t, "debug", e.LogLevel)
				assert.Equal(t, ":9000", e.ListenAddr)
				assert.Equal(t, "secret", e.AuthToken)
			},
		},
		{
			name:    "missing_token",
			vars:    map[string]string{"OWNER_ID": "4242"},
			wantErr: true,
		},
		{
			name:    "missing_owner",
			vars:    map[string]string{"BOT_TOKEN": "123:abc"},
			wantErr: true,
		},
		{
			name: "owner_not_numeric",
			vars: map[string]string{
				"BOT_TOKEN": "123:abc",
				"OWNER_ID":  "@someone",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range []string{"BOT_TOKEN", "OWNER_ID", "DATA_FILE", "LOG_LEVEL", "GIN_MODE", "LISTEN_ADDR", "AUTH_TOKEN"} {
				t.Setenv(key, "")
			}
			for key, val := range tt.vars {
				t.Setenv(key, val)
			}

			e, err := New()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			tt.check(t, e)
		})
	}
}
