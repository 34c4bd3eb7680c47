package mock

import (
	"context"

	"github.com/contactfind/contactfind"
)

var _ contactfind.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of contactfind.SitemapService.
type SitemapService struct {
	DiscoverContactURLsFn func(ctx context.Context, baseURL string, limit int) ([]string, error)
}

func (s *SitemapService) DiscoverContactURLs(ctx context.Context, baseURL string, limit int) ([]string, error) {
	return s.DiscoverContactURLsFn(ctx, baseURL, limit)
}
