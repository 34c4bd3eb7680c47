package contactfind

import "context"

// PlaceInfo holds the result of a places-API lookup for a company name.
type PlaceInfo struct {
	Phone   string
	Website string
	Address string
	Status  string // human-readable status, e.g. "OK" or "place not found"
}

// PlacesService looks up a company in an external places directory.
// Lookup failures are reported via Status rather than error where the lookup
// itself succeeded but found nothing.
type PlacesService interface {
	LookupPlace(ctx context.Context, companyName string) (*PlaceInfo, error)
}
