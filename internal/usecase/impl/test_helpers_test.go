package impl

import (
	"io"
	"log/slog"
	"time"

	"community/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(linkPolicy string) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			LinkPolicy: linkPolicy,
			BcryptCost: 4,
		},
		Session: &config.SessionConfig{
			TTL: 30 * time.Minute,
		},
	}
}
