package mock

import (
	"context"

	"github.com/contactfind/contactfind"
)

var _ contactfind.ContactExtractor = (*ContactExtractor)(nil)

// ContactExtractor is a mock implementation of contactfind.ContactExtractor.
type ContactExtractor struct {
	ExtractContactFn func(ctx context.Context, req contactfind.ContactExtractRequest) (contactfind.Contact, error)
}

func (e *ContactExtractor) ExtractContact(ctx context.Context, req contactfind.ContactExtractRequest) (contactfind.Contact, error) {
	return e.ExtractContactFn(ctx, req)
}

var _ contactfind.NameExtractor = (*NameExtractor)(nil)

// NameExtractor is a mock implementation of contactfind.NameExtractor.
type NameExtractor struct {
	ExtractCompanyNamesFn func(ctx context.Context, documentText string) ([]string, error)
}

func (e *NameExtractor) ExtractCompanyNames(ctx context.Context, documentText string) ([]string, error) {
	return e.ExtractCompanyNamesFn(ctx, documentText)
}
