package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	newsgrabhttp "github.com/jsimek/newsgrab/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sitemapSite serves a fake site from a path to response body map.
// Missing paths return 404.
func sitemapSite(t *testing.T, pages map[string]string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := pages[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestSitemapSeeder_DiscoverURLs(t *testing.T) {
	t.Parallel()

	t.Run("reads sitemap location from robots.txt", func(t *testing.T) {
		t.Parallel()

		var loc string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/robots.txt":
				_, _ = w.Write([]byte("User-agent: *\nDisallow: /admin\nSitemap: " + loc + "/news-sitemap.xml\n"))
			case "/news-sitemap.xml":
				_, _ = w.Write([]byte(`<?xml version="1.0"?>
					<urlset>
						<url><loc>` + loc + `/clanek/a</loc></url>
						<url><loc>` + loc + `/clanek/b</loc></url>
					</urlset>`))
			default:
				w.WriteHeader(http.StatusNotFound)
			}
		}))
		t.Cleanup(server.Close)
		loc = server.URL

		seeder := newsgrabhttp.NewSitemapSeeder(nil)
		urls, err := seeder.DiscoverURLs(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, []string{loc + "/clanek/a", loc + "/clanek/b"}, urls)
	})

	t.Run("falls back to conventional sitemap location", func(t *testing.T) {
		t.Parallel()

		var loc string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/sitemap.xml" {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			_, _ = w.Write([]byte(`<?xml version="1.0"?>
				<urlset><url><loc>` + loc + `/clanek/only</loc></url></urlset>`))
		}))
		t.Cleanup(server.Close)
		loc = server.URL

		seeder := newsgrabhttp.NewSitemapSeeder(nil)
		urls, err := seeder.DiscoverURLs(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, []string{server.URL + "/clanek/only"}, urls)
	})

	t.Run("follows sitemap index recursively", func(t *testing.T) {
		t.Parallel()

		var loc string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/sitemap.xml":
				_, _ = w.Write([]byte(`<?xml version="1.0"?>
					<sitemapindex>
						<sitemap><loc>` + loc + `/sitemap-1.xml</loc></sitemap>
						<sitemap><loc>` + loc + `/sitemap-2.xml</loc></sitemap>
					</sitemapindex>`))
			case "/sitemap-1.xml":
				_, _ = w.Write([]byte(`<urlset><url><loc>` + loc + `/clanek/a</loc></url></urlset>`))
			case "/sitemap-2.xml":
				_, _ = w.Write([]byte(`<urlset>
					<url><loc>` + loc + `/clanek/a</loc></url>
					<url><loc>` + loc + `/clanek/b</loc></url>
				</urlset>`))
			default:
				w.WriteHeader(http.StatusNotFound)
			}
		}))
		t.Cleanup(server.Close)
		loc = server.URL

		seeder := newsgrabhttp.NewSitemapSeeder(nil)
		urls, err := seeder.DiscoverURLs(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, []string{loc + "/clanek/a", loc + "/clanek/b"}, urls,
			"URLs repeated across sitemaps are deduplicated")
	})

	t.Run("returns empty slice when site has no sitemap", func(t *testing.T) {
		t.Parallel()

		server := sitemapSite(t, map[string]string{})

		seeder := newsgrabhttp.NewSitemapSeeder(nil)
		urls, err := seeder.DiscoverURLs(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Empty(t, urls)
		assert.NotNil(t, urls)
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		server := sitemapSite(t, map[string]string{})

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		seeder := newsgrabhttp.NewSitemapSeeder(nil)
		_, err := seeder.DiscoverURLs(ctx, server.URL)
		assert.Error(t, err)
	})
}
