package contactfind

import "context"

// SitemapService discovers contact-relevant URLs from a site's sitemap.
type SitemapService interface {
	// DiscoverContactURLs returns up to limit URLs under baseURL whose path
	// suggests a contact or about page, discovered via robots.txt sitemap
	// directives and the conventional /sitemap.xml location. An unreachable
	// or malformed sitemap yields an empty result, not an error.
	DiscoverContactURLs(ctx context.Context, baseURL string, limit int) ([]string, error)
}
