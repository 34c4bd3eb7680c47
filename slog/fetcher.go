// Package slog provides logging decorators for the domain interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/contactfind/contactfind"
)

// Ensure LoggingFetcher implements contactfind.Fetcher at compile time.
var _ contactfind.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with structured logging of every fetch:
// URL, response size, duration, redirect target and failure code.
type LoggingFetcher struct {
	next   contactfind.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next contactfind.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the outcome.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (*contactfind.FetchResult, error) {
	begin := time.Now()
	result, err := f.next.Fetch(ctx, url)
	duration := time.Since(begin)

	if err != nil {
		f.logger.Debug("fetch",
			"url", url,
			"duration", duration,
			"code", contactfind.ErrorCode(err),
			"err", err.Error(),
		)
		return nil, err
	}

	attrs := []any{
		"url", url,
		"bytes", len(result.HTML),
		"duration", duration,
	}
	if result.FinalURL != "" && result.FinalURL != url {
		attrs = append(attrs, "redirected", result.FinalURL)
	}
	f.logger.Debug("fetch", attrs...)
	return result, nil
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
