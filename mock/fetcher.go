// Package mock provides function-field mock implementations of the domain
// interfaces for use in tests.
package mock

import (
	"context"

	"github.com/contactfind/contactfind"
)

var _ contactfind.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of contactfind.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*contactfind.FetchResult, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*contactfind.FetchResult, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}
