package bootstrap

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/abgdnv/minicatalog/pkg/config"
	"github.com/abgdnv/minicatalog/pkg/logger"
	"github.com/abgdnv/minicatalog/pkg/messaging"
	pubnats "github.com/abgdnv/minicatalog/pkg/nats"
)

// NewLogger creates a new slog.Logger instance with the specified log level.
func NewLogger(level string) *slog.Logger {
	return newLogger(os.Stdout, level)
}

func newLogger(w io.Writer, level string) *slog.Logger {
	logLevel := toLevel(level)
	loggerOpts := &slog.HandlerOptions{
		AddSource: logLevel == slog.LevelDebug,
		Level:     logLevel,
	}
	logHandler := logger.NewContextHandler(slog.NewJSONHandler(w, loggerOpts))
	return slog.New(logHandler)
}

// NewPublisher connects to NATS and prepares the product stream when messaging is enabled.
// Otherwise it returns a no-op publisher. The returned close function is never nil.
func NewPublisher(ctx context.Context, cfg config.NATSConfig, logger *slog.Logger) (messaging.Publisher, func(), error) {
	if !cfg.Enabled {
		logger.Info("NATS publishing is disabled")
		return messaging.NoopPublisher{}, func() {}, nil
	}
	nc, err := pubnats.NewClient(cfg.Url, cfg.Timeout)
	if err != nil {
		return nil, nil, err
	}
	js, err := pubnats.NewJetStreamContext(nc)
	if err != nil {
		return nil, nil, err
	}
	streamCtx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()
	if err := pubnats.EnsureStream(streamCtx, js, cfg.Stream, messaging.ProductsSubjects); err != nil {
		nc.Close()
		return nil, nil, fmt.Errorf("failed to prepare NATS stream: %w", err)
	}
	logger.Info("Connected to NATS", "url", cfg.Url, "stream", cfg.Stream)
	return pubnats.NewNatsPublisher(js), func() { _ = nc.Drain() }, nil
}

// toLevel converts a string representation of a log level to slog.Level.
func toLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
