package geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

var ErrNoResults = errors.New("geocoder: no results for address")

// Geocoder resolves street addresses to coordinates via the Google Maps
// Geocoding API. Results are cached in-process; addresses rarely move.
type Geocoder struct {
	apiKey     string
	httpClient *http.Client
	cache      *gocache.Cache
	baseURL    string
}

func NewGeocoder(apiKey string) *Geocoder {
	return &Geocoder{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 5 * time.Second},
		cache:      gocache.New(24*time.Hour, time.Hour),
		baseURL:    "https://maps.googleapis.com/maps/api/geocode/json",
	}
}

// Enabled reports whether an API key is configured. Callers skip geocoding
// entirely when it is not, the same as leaving coordinates null.
func (g *Geocoder) Enabled() bool {
	return g.apiKey != ""
}

type geocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// Geocode returns (lat, lng) for an address.
func (g *Geocoder) Geocode(ctx context.Context, address string) (float64, float64, error) {
	if !g.Enabled() {
		return 0, 0, errors.New("geocoder: api key not configured")
	}

	if cached, ok := g.cache.Get(address); ok {
		coords := cached.([2]float64)
		return coords[0], coords[1], nil
	}

	params := url.Values{}
	params.Set("address", address)
	params.Set("key", g.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return 0, 0, err
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return 0, 0, fmt.Errorf("geocoder: request failed: %w", err)
	}
	defer resp.Body.Close()

	var body geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, 0, fmt.Errorf("geocoder: decode failed: %w", err)
	}

	if body.Status != "OK" || len(body.Results) == 0 {
		return 0, 0, ErrNoResults
	}

	loc := body.Results[0].Geometry.Location
	g.cache.Set(address, [2]float64{loc.Lat, loc.Lng}, gocache.DefaultExpiration)
	return loc.Lat, loc.Lng, nil
}
