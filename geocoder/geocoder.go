// Package geocoder resolves destination names to coordinates using the
// Nominatim search API.
package geocoder

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

var log = logrus.WithField("module", "geocoder")

// ErrNotFound is returned when the place cannot be resolved.
var ErrNotFound = eris.New("geocoder: place not found")

const (
	DefaultBaseURL   = "https://nominatim.openstreetmap.org"
	DefaultUserAgent = "saferoute"
	// Nominatim usage policy allows at most one request per second
	DefaultRPS = 1.0
)

// Geocoder resolves a free-text place name to WGS84 coordinates.
type Geocoder interface {
	Resolve(ctx context.Context, place string) (lat, lon float64, err error)
}

// Location is a resolved place.
type Location struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Option configures the Nominatim geocoder.
type Option func(*Nominatim)

// WithBaseURL points the geocoder at another Nominatim instance.
func WithBaseURL(u string) Option {
	return func(n *Nominatim) {
		n.baseURL = strings.TrimRight(u, "/")
	}
}

// WithRateLimit sets the requests-per-second rate limit.
func WithRateLimit(rps float64) Option {
	return func(n *Nominatim) {
		if rps > 0 {
			n.limiter = rate.NewLimiter(rate.Limit(rps), max(int(rps), 1))
		}
	}
}

// WithCache enables result caching.
func WithCache(c Cache) Option {
	return func(n *Nominatim) {
		n.cache = c
	}
}

// WithUserAgent sets the User-Agent header Nominatim requires.
func WithUserAgent(ua string) Option {
	return func(n *Nominatim) {
		if ua != "" {
			n.userAgent = ua
		}
	}
}

// WithCountryCodes limits results to the given ISO 3166-1 alpha-2 codes.
func WithCountryCodes(codes ...string) Option {
	return func(n *Nominatim) {
		n.countryCodes = strings.ToLower(strings.Join(codes, ","))
	}
}

// Nominatim is a Geocoder backed by the Nominatim /search endpoint.
type Nominatim struct {
	baseURL      string
	userAgent    string
	countryCodes string
	httpClient   *http.Client
	limiter      *rate.Limiter
	cache        Cache
}

func NewNominatim(opts ...Option) *Nominatim {
	n := &Nominatim{
		baseURL:    DefaultBaseURL,
		userAgent:  DefaultUserAgent,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		limiter:    rate.NewLimiter(rate.Limit(DefaultRPS), 1),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

type searchResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// normalizePlace folds case and whitespace so equivalent queries share a cache entry.
func normalizePlace(place string) string {
	return strings.Join(strings.Fields(strings.ToLower(place)), " ")
}

// cacheKey returns SHA-256 hex of the normalized place name.
func cacheKey(place string) string {
	h := sha256.Sum256([]byte(normalizePlace(place)))
	return fmt.Sprintf("%x", h)
}

// Resolve returns the coordinates of the best match for place.
func (n *Nominatim) Resolve(ctx context.Context, place string) (float64, float64, error) {
	if normalizePlace(place) == "" {
		return 0, 0, eris.Wrap(ErrNotFound, "geocoder: empty place")
	}
	key := cacheKey(place)
	if n.cache != nil {
		loc, ok, err := n.cache.Get(ctx, key)
		if err != nil {
			log.Warnf("geocode cache lookup failed: %v", err)
		} else if ok {
			return loc.Lat, loc.Lon, nil
		}
	}

	loc, err := n.search(ctx, place)
	if err != nil {
		return 0, 0, err
	}
	if n.cache != nil {
		if err := n.cache.Set(ctx, key, loc); err != nil {
			log.Warnf("geocode cache store failed: %v", err)
		}
	}
	return loc.Lat, loc.Lon, nil
}

func (n *Nominatim) search(ctx context.Context, place string) (Location, error) {
	if err := n.limiter.Wait(ctx); err != nil {
		return Location{}, eris.Wrap(err, "geocoder: rate limit")
	}
	params := url.Values{
		"q":      {place},
		"format": {"json"},
		"limit":  {"1"},
	}
	if n.countryCodes != "" {
		params.Set("countrycodes", n.countryCodes)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, n.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return Location{}, eris.Wrap(err, "geocoder: build request")
	}
	req.Header.Set("User-Agent", n.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return Location{}, eris.Wrap(err, "geocoder: request")
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return Location{}, eris.Errorf("geocoder: nominatim returned status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Location{}, eris.Wrap(err, "geocoder: read body")
	}
	var results []searchResult
	if err := json.Unmarshal(body, &results); err != nil {
		return Location{}, eris.Wrap(err, "geocoder: parse response")
	}
	if len(results) == 0 {
		return Location{}, eris.Wrapf(ErrNotFound, "geocoder: %q", place)
	}
	lat, latErr := strconv.ParseFloat(results[0].Lat, 64)
	lon, lonErr := strconv.ParseFloat(results[0].Lon, 64)
	if latErr != nil || lonErr != nil {
		return Location{}, eris.Errorf("geocoder: bad coordinates %q, %q", results[0].Lat, results[0].Lon)
	}
	log.Debugf("resolved %q to %s (%v, %v)", place, results[0].DisplayName, lat, lon)
	return Location{Lat: lat, Lon: lon}, nil
}
