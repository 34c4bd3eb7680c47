package http_test

import (
	"context"
	nethttp "net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/contactfind/contactfind"
	contacthttp "github.com/contactfind/contactfind/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns HTML and final URL", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			w.Write([]byte("<html><body>Contact us</body></html>"))
		}))
		defer srv.Close()

		f := contacthttp.NewFetcher()
		result, err := f.Fetch(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.Equal(t, srv.URL, result.URL)
		assert.Equal(t, srv.URL, result.FinalURL)
		assert.Contains(t, result.HTML, "Contact us")
	})

	t.Run("final URL reflects redirects", func(t *testing.T) {
		t.Parallel()

		mux := nethttp.NewServeMux()
		mux.HandleFunc("/", func(w nethttp.ResponseWriter, r *nethttp.Request) {
			nethttp.Redirect(w, r, "/login", nethttp.StatusFound)
		})
		mux.HandleFunc("/login", func(w nethttp.ResponseWriter, r *nethttp.Request) {
			w.Write([]byte("<html>Sign in</html>"))
		})
		srv := httptest.NewServer(mux)
		defer srv.Close()

		f := contacthttp.NewFetcher()
		result, err := f.Fetch(context.Background(), srv.URL+"/")

		require.NoError(t, err)
		assert.Equal(t, srv.URL+"/login", result.FinalURL)
	})

	t.Run("classifies status codes", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			status int
			code   string
		}{
			{nethttp.StatusNotFound, contactfind.ENOTFOUND},
			{nethttp.StatusGone, contactfind.ENOTFOUND},
			{nethttp.StatusForbidden, contactfind.EFORBIDDEN},
			{nethttp.StatusUnauthorized, contactfind.EFORBIDDEN},
			{nethttp.StatusTooManyRequests, contactfind.EUNAVAILABLE},
			{nethttp.StatusInternalServerError, contactfind.EUNAVAILABLE},
			{nethttp.StatusBadGateway, contactfind.EUNAVAILABLE},
		}

		for _, tt := range tests {
			tt := tt
			srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
				w.WriteHeader(tt.status)
			}))

			f := contacthttp.NewFetcher()
			_, err := f.Fetch(context.Background(), srv.URL)
			srv.Close()

			require.Error(t, err, "status %d", tt.status)
			assert.Equal(t, tt.code, contactfind.ErrorCode(err), "status %d", tt.status)
		}
	})

	t.Run("connection failure is transient", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {}))
		srv.Close() // deliberately closed

		f := contacthttp.NewFetcher()
		_, err := f.Fetch(context.Background(), srv.URL)

		require.Error(t, err)
		assert.Equal(t, contactfind.EUNAVAILABLE, contactfind.ErrorCode(err))
	})

	t.Run("rotates user agents across requests", func(t *testing.T) {
		t.Parallel()

		var mu sync.Mutex
		agents := make(map[string]bool)
		srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			mu.Lock()
			agents[r.Header.Get("User-Agent")] = true
			mu.Unlock()
		}))
		defer srv.Close()

		f := contacthttp.NewFetcher()
		for i := 0; i < 5; i++ {
			_, err := f.Fetch(context.Background(), srv.URL)
			require.NoError(t, err)
		}

		mu.Lock()
		defer mu.Unlock()
		assert.Greater(t, len(agents), 1)
	})
}
