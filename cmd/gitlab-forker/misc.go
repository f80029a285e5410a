package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/sgaunet/gitlab-forker/pkg/config"
	"github.com/sgaunet/gitlab-forker/pkg/constants"
)

func initTrace(debugLevel string, noLogTime bool) *slog.Logger {
	handlerOptions := &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}
	if noLogTime {
		handlerOptions.ReplaceAttr = func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{} // Remove the time attribute
			}
			return a
		}
	}

	switch debugLevel {
	case "debug":
		handlerOptions.Level = slog.LevelDebug
		handlerOptions.AddSource = true
	case "info":
		handlerOptions.Level = slog.LevelInfo
	case "warn":
		handlerOptions.Level = slog.LevelWarn
	case "error":
		handlerOptions.Level = slog.LevelError
	default:
		handlerOptions.Level = slog.LevelInfo
	}

	handler := slog.NewTextHandler(os.Stdout, handlerOptions)
	logger := slog.New(handler)
	return logger
}

// redactCredentials removes the secrets of cfg from msg.
func redactCredentials(msg string, cfg *config.Config) string {
	for _, secret := range []string{cfg.GitlabToken, cfg.S3cfg.AccessKey, cfg.S3cfg.SecretKey} {
		if secret != "" {
			msg = strings.ReplaceAll(msg, secret, constants.RedactedValue)
		}
	}
	return msg
}
