package config_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"mpin_check/internal/config"
)

func TestLoad(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name  string
		env   map[string]string
		err   error
		check func(cfg config.Config)
	}{
		{
			name: "Defaults",
			check: func(cfg config.Config) {
				rq.Equal("mpin-check", cfg.App.Name)
				rq.Equal(slog.LevelInfo, cfg.App.LogLevel)
				rq.Equal(":8080", cfg.HTTP.ListenAddress)
				rq.Equal(10*time.Second, cfg.HTTP.ShutdownTimeout)
				rq.Equal(4096, cfg.HTTP.LogFieldMaxLen)
				rq.Equal(10*time.Minute, cfg.Cache.CandidateTTL)
				rq.False(cfg.Bot.Enabled)
				rq.Empty(cfg.Bot.AllowedChatIDs)
			},
		},
		{
			name: "Overrides",
			env: map[string]string{
				"LOG_LEVEL":            "DEBUG",
				"HTTP_LISTEN_ADDRESS":  ":18080",
				"CACHE_CANDIDATE_TTL":  "1m",
				"BOT_ENABLED":          "true",
				"BOT_TOKEN":            "token",
				"BOT_ALLOWED_CHAT_IDS": "1,-100200",
			},
			check: func(cfg config.Config) {
				rq.Equal(slog.LevelDebug, cfg.App.LogLevel)
				rq.Equal(":18080", cfg.HTTP.ListenAddress)
				rq.Equal(time.Minute, cfg.Cache.CandidateTTL)
				rq.True(cfg.Bot.Enabled)
				rq.Equal("token", cfg.Bot.Token)
				rq.Equal([]int64{1, -100200}, cfg.Bot.AllowedChatIDs)
			},
		},
		{
			name: "Bot without token",
			env: map[string]string{
				"BOT_ENABLED": "true",
			},
			err: config.ErrBotTokenRequired,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			cfg, err := config.Load()
			if tc.err != nil {
				rq.ErrorIs(err, tc.err)

				return
			}

			rq.NoError(err)
			tc.check(cfg)
		})
	}
}
