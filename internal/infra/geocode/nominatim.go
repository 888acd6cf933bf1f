// Package geocode implements the Geocoder service against a Nominatim-style
// search endpoint. Results feed listing display only; callers must treat
// failures as non-fatal.
package geocode

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"bizdir/config"
	"bizdir/internal/domain/service"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

const defaultLookupTimeout = 5 * time.Second

// ErrNoResult is returned when the endpoint finds nothing for the query.
var ErrNoResult = errors.New("no geocoding result")

type nominatimGeocoder struct {
	baseURL   string
	userAgent string
	client    *http.Client
}

// searchResult mirrors the subset of the Nominatim response we read.
type searchResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// NewNominatimGeocoder is the constructor for nominatimGeocoder.
func NewNominatimGeocoder(cfg *config.Config) (service.Geocoder, error) {
	if cfg.Geocoder == nil || cfg.Geocoder.BaseURL == "" {
		return nil, errors.New("geocoder base URL must be provided")
	}

	timeout := cfg.Geocoder.Timeout
	if timeout == 0 {
		timeout = defaultLookupTimeout
	}

	return &nominatimGeocoder{
		baseURL:   cfg.Geocoder.BaseURL,
		userAgent: cfg.Geocoder.UserAgent,
		client:    &http.Client{Timeout: timeout},
	}, nil
}

// Geocode resolves free-text location to a lon/lat point.
func (g *nominatimGeocoder) Geocode(ctx context.Context, location string) (orb.Point, error) {
	endpoint, err := url.Parse(g.baseURL)
	if err != nil {
		return orb.Point{}, errors.Wrap(err, "invalid geocoder base URL")
	}

	query := endpoint.Query()
	query.Set("q", location)
	query.Set("format", "json")
	query.Set("limit", "1")
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return orb.Point{}, errors.Wrap(err, "failed to build geocoding request")
	}
	if g.userAgent != "" {
		req.Header.Set("User-Agent", g.userAgent)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return orb.Point{}, errors.Wrap(err, "geocoding request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return orb.Point{}, errors.Errorf("geocoding endpoint returned %d", resp.StatusCode)
	}

	var results []searchResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return orb.Point{}, errors.Wrap(err, "failed to decode geocoding response")
	}
	if len(results) == 0 {
		return orb.Point{}, ErrNoResult
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return orb.Point{}, errors.Wrap(err, "invalid latitude in geocoding response")
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return orb.Point{}, errors.Wrap(err, "invalid longitude in geocoding response")
	}

	return orb.Point{lon, lat}, nil
}
