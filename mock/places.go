package mock

import (
	"context"

	"github.com/contactfind/contactfind"
)

var _ contactfind.PlacesService = (*PlacesService)(nil)

// PlacesService is a mock implementation of contactfind.PlacesService.
type PlacesService struct {
	LookupPlaceFn func(ctx context.Context, companyName string) (*contactfind.PlaceInfo, error)
}

func (s *PlacesService) LookupPlace(ctx context.Context, companyName string) (*contactfind.PlaceInfo, error) {
	return s.LookupPlaceFn(ctx, companyName)
}
