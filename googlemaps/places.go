// Package googlemaps implements the places lookup against the Google Places
// web API: a find-place text search resolves the company name to a place ID,
// and a details request retrieves the phone, website and address.
package googlemaps

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"

	"github.com/contactfind/contactfind"
)

const defaultBaseURL = "https://maps.googleapis.com/maps/api/place"

// Searches are biased to a circle covering most of India first, then retried
// globally when nothing is found.
const indiaLocationBias = "circle:1000000@20.5937,78.9629"

// Ensure PlacesService implements contactfind.PlacesService at compile time.
var _ contactfind.PlacesService = (*PlacesService)(nil)

// PlacesService looks up companies in the Google Places directory.
type PlacesService struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// Option configures a PlacesService.
type Option func(*PlacesService)

// WithBaseURL overrides the API base URL. Used in tests.
func WithBaseURL(baseURL string) Option {
	return func(s *PlacesService) { s.baseURL = baseURL }
}

// WithClient overrides the HTTP client.
func WithClient(client *http.Client) Option {
	return func(s *PlacesService) { s.client = client }
}

// NewPlacesService creates a PlacesService with the given API key.
func NewPlacesService(apiKey string, opts ...Option) *PlacesService {
	s := &PlacesService{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		client:  http.DefaultClient,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type findPlaceResponse struct {
	Candidates []struct {
		PlaceID string `json:"place_id"`
	} `json:"candidates"`
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
}

type detailsResponse struct {
	Result struct {
		FormattedPhoneNumber     string `json:"formatted_phone_number"`
		InternationalPhoneNumber string `json:"international_phone_number"`
		Website                  string `json:"website"`
		FormattedAddress         string `json:"formatted_address"`
	} `json:"result"`
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
}

// LookupPlace searches for the company, India-biased first and globally as a
// fallback. A company the API does not know is not an error: the miss is
// reported in PlaceInfo.Status with empty fields.
func (s *PlacesService) LookupPlace(ctx context.Context, companyName string) (*contactfind.PlaceInfo, error) {
	if companyName == "" {
		return nil, contactfind.Errorf(contactfind.EINVALID, "company name required")
	}

	info, err := s.lookup(ctx, companyName+", India", indiaLocationBias)
	if err != nil {
		return nil, err
	}
	if info.Phone == "" && info.Website == "" {
		global, err := s.lookup(ctx, companyName, "")
		if err != nil {
			return nil, err
		}
		if global.Phone != "" || global.Website != "" {
			return global, nil
		}
	}
	return info, nil
}

func (s *PlacesService) lookup(ctx context.Context, query, locationBias string) (*contactfind.PlaceInfo, error) {
	params := url.Values{}
	params.Set("input", query)
	params.Set("inputtype", "textquery")
	params.Set("fields", "place_id")
	params.Set("key", s.apiKey)
	if locationBias != "" {
		params.Set("locationbias", locationBias)
	}

	var find findPlaceResponse
	if err := s.get(ctx, "/findplacefromtext/json", params, &find); err != nil {
		return nil, err
	}
	if find.ErrorMessage != "" {
		return nil, contactfind.Errorf(contactfind.EUNAVAILABLE, "places search: %s", find.ErrorMessage)
	}
	if len(find.Candidates) == 0 {
		return &contactfind.PlaceInfo{Status: "place not found"}, nil
	}

	detailsParams := url.Values{}
	detailsParams.Set("place_id", find.Candidates[0].PlaceID)
	detailsParams.Set("fields", "formatted_phone_number,international_phone_number,website,formatted_address")
	detailsParams.Set("key", s.apiKey)

	var details detailsResponse
	if err := s.get(ctx, "/details/json", detailsParams, &details); err != nil {
		return nil, err
	}
	if details.ErrorMessage != "" {
		return nil, contactfind.Errorf(contactfind.EUNAVAILABLE, "places details: %s", details.ErrorMessage)
	}

	// The formatted number is in national format (no "+", trunk prefix);
	// prefer the international form so the validators accept it directly.
	phone := details.Result.InternationalPhoneNumber
	if phone == "" {
		phone = details.Result.FormattedPhoneNumber
	}

	return &contactfind.PlaceInfo{
		Phone:   phone,
		Website: details.Result.Website,
		Address: details.Result.FormattedAddress,
		Status:  "OK",
	}, nil
}

func (s *PlacesService) get(ctx context.Context, path string, params url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return contactfind.Errorf(contactfind.EINTERNAL, "building places request: %v", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return contactfind.Errorf(contactfind.EUNAVAILABLE, "places request: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return contactfind.Errorf(contactfind.EUNAVAILABLE, "reading places response: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		return contactfind.Errorf(contactfind.EUNAVAILABLE, "places request: %s", resp.Status)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return contactfind.Errorf(contactfind.EINTERNAL, "decoding places response: %v", err)
	}
	return nil
}
