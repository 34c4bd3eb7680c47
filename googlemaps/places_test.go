package googlemaps_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/contactfind/contactfind"
	"github.com/contactfind/contactfind/googlemaps"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlacesService_LookupPlace(t *testing.T) {
	t.Parallel()

	t.Run("resolves phone and website via find-place and details", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		mux.HandleFunc("/findplacefromtext/json", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Acme Tools Pvt Ltd, India", r.URL.Query().Get("input"))
			assert.Equal(t, "textquery", r.URL.Query().Get("inputtype"))
			assert.Contains(t, r.URL.Query().Get("locationbias"), "circle:")
			fmt.Fprint(w, `{"candidates":[{"place_id":"abc123"}],"status":"OK"}`)
		})
		mux.HandleFunc("/details/json", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "abc123", r.URL.Query().Get("place_id"))
			assert.Contains(t, r.URL.Query().Get("fields"), "international_phone_number")
			fmt.Fprint(w, `{"result":{"formatted_phone_number":"098765 43210","international_phone_number":"+91 98765 43210","website":"https://acmetools.com","formatted_address":"Mumbai, Maharashtra"},"status":"OK"}`)
		})
		srv := httptest.NewServer(mux)
		defer srv.Close()

		s := googlemaps.NewPlacesService("test-key", googlemaps.WithBaseURL(srv.URL))
		info, err := s.LookupPlace(context.Background(), "Acme Tools Pvt Ltd")

		require.NoError(t, err)
		assert.Equal(t, "+91 98765 43210", info.Phone)
		assert.Equal(t, "https://acmetools.com", info.Website)
		assert.Equal(t, "Mumbai, Maharashtra", info.Address)
		assert.Equal(t, "OK", info.Status)
	})

	t.Run("national format is returned when international is absent", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		mux.HandleFunc("/findplacefromtext/json", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"candidates":[{"place_id":"abc123"}],"status":"OK"}`)
		})
		mux.HandleFunc("/details/json", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"result":{"formatted_phone_number":"099229 93972","website":"https://epsilon.in"},"status":"OK"}`)
		})
		srv := httptest.NewServer(mux)
		defer srv.Close()

		s := googlemaps.NewPlacesService("test-key", googlemaps.WithBaseURL(srv.URL))
		info, err := s.LookupPlace(context.Background(), "Epsilon Motors")

		require.NoError(t, err)
		assert.Equal(t, "099229 93972", info.Phone)
	})

	t.Run("falls back to global search when India search misses", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		mux.HandleFunc("/findplacefromtext/json", func(w http.ResponseWriter, r *http.Request) {
			if strings.HasSuffix(r.URL.Query().Get("input"), ", India") {
				fmt.Fprint(w, `{"candidates":[],"status":"ZERO_RESULTS"}`)
				return
			}
			fmt.Fprint(w, `{"candidates":[{"place_id":"global1"}],"status":"OK"}`)
		})
		mux.HandleFunc("/details/json", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"result":{"formatted_phone_number":"+1 555 0100","website":"https://acme.com"},"status":"OK"}`)
		})
		srv := httptest.NewServer(mux)
		defer srv.Close()

		s := googlemaps.NewPlacesService("test-key", googlemaps.WithBaseURL(srv.URL))
		info, err := s.LookupPlace(context.Background(), "Acme Tools Pvt Ltd")

		require.NoError(t, err)
		assert.Equal(t, "+1 555 0100", info.Phone)
		assert.Equal(t, "OK", info.Status)
	})

	t.Run("miss everywhere reports status without error", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		mux.HandleFunc("/findplacefromtext/json", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"candidates":[],"status":"ZERO_RESULTS"}`)
		})
		srv := httptest.NewServer(mux)
		defer srv.Close()

		s := googlemaps.NewPlacesService("test-key", googlemaps.WithBaseURL(srv.URL))
		info, err := s.LookupPlace(context.Background(), "Unknown Widgets")

		require.NoError(t, err)
		assert.Empty(t, info.Phone)
		assert.Empty(t, info.Website)
		assert.Equal(t, "place not found", info.Status)
	})

	t.Run("API error message becomes unavailable error", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		mux.HandleFunc("/findplacefromtext/json", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"candidates":[],"status":"REQUEST_DENIED","error_message":"The provided API key is invalid."}`)
		})
		srv := httptest.NewServer(mux)
		defer srv.Close()

		s := googlemaps.NewPlacesService("bad-key", googlemaps.WithBaseURL(srv.URL))
		_, err := s.LookupPlace(context.Background(), "Acme Tools Pvt Ltd")

		require.Error(t, err)
		assert.Equal(t, contactfind.EUNAVAILABLE, contactfind.ErrorCode(err))
		assert.Contains(t, contactfind.ErrorMessage(err), "API key is invalid")
	})

	t.Run("rejects empty company name", func(t *testing.T) {
		t.Parallel()

		s := googlemaps.NewPlacesService("test-key")
		_, err := s.LookupPlace(context.Background(), "")

		require.Error(t, err)
		assert.Equal(t, contactfind.EINVALID, contactfind.ErrorCode(err))
	})
}
