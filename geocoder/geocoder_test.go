package geocoder

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func newTestServer(t *testing.T, body string, status int, hits *atomic.Int32) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.Equal(t, "1", r.URL.Query().Get("limit"))
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestGeocoder(url string, opts ...Option) *Nominatim {
	n := NewNominatim(append([]Option{WithBaseURL(url + "/")}, opts...)...)
	n.limiter = rate.NewLimiter(rate.Inf, 1)
	return n
}

func TestResolve(t *testing.T) {
	var hits atomic.Int32
	srv := newTestServer(t, `[{"lat": "37.8044", "lon": "-122.2712", "display_name": "Oakland, Alameda County"}]`, http.StatusOK, &hits)
	cache := NewMemoryCache()
	g := newTestGeocoder(srv.URL, WithCache(cache))

	lat, lon, err := g.Resolve(context.Background(), "Lake Merritt, Oakland")
	require.NoError(t, err)
	assert.InDelta(t, 37.8044, lat, 1e-9)
	assert.InDelta(t, -122.2712, lon, 1e-9)

	// same place, different spelling, served from cache
	lat, _, err = g.Resolve(context.Background(), "  lake merritt,   OAKLAND ")
	require.NoError(t, err)
	assert.InDelta(t, 37.8044, lat, 1e-9)
	assert.Equal(t, int32(1), hits.Load())
}

func TestResolveNotFound(t *testing.T) {
	var hits atomic.Int32
	srv := newTestServer(t, `[]`, http.StatusOK, &hits)
	g := newTestGeocoder(srv.URL)

	_, _, err := g.Resolve(context.Background(), "nowhere at all")
	assert.True(t, eris.Is(err, ErrNotFound))

	_, _, err = g.Resolve(context.Background(), "   ")
	assert.True(t, eris.Is(err, ErrNotFound))
	assert.Equal(t, int32(1), hits.Load())
}

func TestResolveErrors(t *testing.T) {
	var hits atomic.Int32
	srv := newTestServer(t, `oops`, http.StatusServiceUnavailable, &hits)
	_, _, err := newTestGeocoder(srv.URL).Resolve(context.Background(), "Oakland")
	require.Error(t, err)
	assert.False(t, eris.Is(err, ErrNotFound))

	srv = newTestServer(t, `{"not": "a list"}`, http.StatusOK, &hits)
	_, _, err = newTestGeocoder(srv.URL).Resolve(context.Background(), "Oakland")
	assert.Error(t, err)

	srv = newTestServer(t, `[{"lat": "north", "lon": "-122.2"}]`, http.StatusOK, &hits)
	_, _, err = newTestGeocoder(srv.URL).Resolve(context.Background(), "Oakland")
	assert.Error(t, err)
}

func TestResolveRespectsContext(t *testing.T) {
	var hits atomic.Int32
	srv := newTestServer(t, `[]`, http.StatusOK, &hits)
	g := NewNominatim(WithBaseURL(srv.URL), WithRateLimit(0.001))
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	// the first request consumes the only token
	_, _, _ = g.Resolve(ctx, "first")
	_, _, err := g.Resolve(ctx, "second")
	assert.Error(t, err)
	assert.Equal(t, int32(1), hits.Load())
}

func TestCacheKey(t *testing.T) {
	assert.Equal(t, cacheKey("Lake  Merritt"), cacheKey(" lake merritt"))
	assert.NotEqual(t, cacheKey("Lake Merritt"), cacheKey("Lake Temescal"))
	assert.Len(t, cacheKey("x"), 64)
}

func TestRedisCache(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}
	ctx := context.Background()
	rc, err := OpenRedis(ctx, addr, "", 0)
	require.NoError(t, err)
	defer rc.Close()

	c := NewRedisCache(rc, time.Minute)
	key := uuid.NewString()
	_, ok, err := c.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, key, Location{Lat: 37.8, Lon: -122.27}))
	loc, ok, err := c.Get(ctx, key)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, Location{Lat: 37.8, Lon: -122.27}, loc)
	rc.Del(ctx, cacheKeyPrefix+key)
}
