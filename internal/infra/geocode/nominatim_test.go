package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bizdir/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGeocoder(t *testing.T, handler http.HandlerFunc) *nominatimGeocoder {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{Geocoder: &config.GeocoderConfig{
		BaseURL:   server.URL,
		UserAgent: "bizdir-test",
		Timeout:   time.Second,
	}}

	svc, err := NewNominatimGeocoder(cfg)
	require.NoError(t, err)

	return svc.(*nominatimGeocoder)
}

func TestNominatimGeocoder_Geocode(t *testing.T) {
	geocoder := newTestGeocoder(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "10 Downing Street, London", r.URL.Query().Get("q"))
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.Equal(t, "bizdir-test", r.Header.Get("User-Agent"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"lat":"51.5034","lon":"-0.1276"}]`))
	})

	point, err := geocoder.Geocode(context.Background(), "10 Downing Street, London")

	require.NoError(t, err)
	assert.InDelta(t, -0.1276, point.Lon(), 1e-9)
	assert.InDelta(t, 51.5034, point.Lat(), 1e-9)
}

func TestNominatimGeocoder_NoResult(t *testing.T) {
	geocoder := newTestGeocoder(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	})

	_, err := geocoder.Geocode(context.Background(), "nowhere at all")

	assert.ErrorIs(t, err, ErrNoResult)
}

func TestNominatimGeocoder_UpstreamFailure(t *testing.T) {
	geocoder := newTestGeocoder(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := geocoder.Geocode(context.Background(), "anywhere")

	assert.Error(t, err)
}

func TestNewNominatimGeocoder_RequiresBaseURL(t *testing.T) {
	_, err := NewNominatimGeocoder(&config.Config{})
	assert.Error(t, err)
}
