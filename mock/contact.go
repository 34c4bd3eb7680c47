package mock

import (
	"context"

	"github.com/contactfind/contactfind"
)

var _ contactfind.ContactService = (*ContactService)(nil)

// ContactService is a mock implementation of contactfind.ContactService.
type ContactService struct {
	UpsertContactsFn     func(ctx context.Context, records []*contactfind.ContactRecord, extractedBy string) error
	FindContactsByNameFn func(ctx context.Context, names []string) (map[string]*contactfind.ContactRecord, error)
}

func (s *ContactService) UpsertContacts(ctx context.Context, records []*contactfind.ContactRecord, extractedBy string) error {
	return s.UpsertContactsFn(ctx, records, extractedBy)
}

func (s *ContactService) FindContactsByName(ctx context.Context, names []string) (map[string]*contactfind.ContactRecord, error) {
	return s.FindContactsByNameFn(ctx, names)
}
