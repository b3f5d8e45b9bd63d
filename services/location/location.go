package location

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"cleancare/config"
	"cleancare/models"
	"cleancare/utils"

	"go.uber.org/zap"
)

// DefaultRegion is where the map centers when no lookup has succeeded.
var DefaultRegion = models.Region{Latitude: 18.101672, Longitude: 78.850939}

// Lookups are capped so a slow upstream degrades to a LookupFailure
// instead of hanging the caller.
const lookupTimeout = 6 * time.Second

// Resolver answers reverse-geocode and place-search queries.
type Resolver interface {
	ReverseGeocode(ctx context.Context, lat, lng float64) (string, error)
	SearchPlaces(ctx context.Context, query string) ([]models.PlaceCandidate, error)
}

// GoogleResolver resolves against the Google geocoding HTTP API.
type GoogleResolver struct {
	HTTPClient *http.Client
	APIKey     string
}

// NewGoogleResolver creates a resolver with the configured API key and a
// capped-timeout HTTP client.
func NewGoogleResolver() *GoogleResolver {
	return &GoogleResolver{
		HTTPClient: &http.Client{Timeout: lookupTimeout},
		APIKey:     config.AppConfig.GoogleAPIKey,
	}
}

type geocodeResponse struct {
	Results []struct {
		PlaceID          string `json:"place_id"`
		FormattedAddress string `json:"formatted_address"`
		Geometry         struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
	Status string `json:"status"`
}

// ReverseGeocode resolves coordinates to a formatted address string.
func (r *GoogleResolver) ReverseGeocode(ctx context.Context, lat, lng float64) (string, error) {
	endpoint := fmt.Sprintf(
		"https://maps.googleapis.com/maps/api/geocode/json?latlng=%f,%f&key=%s",
		lat, lng, r.APIKey,
	)
	resp, err := r.fetch(ctx, endpoint)
	if err != nil {
		return "", err
	}
	if len(resp.Results) == 0 {
		return "", &LookupFailure{Reason: "no address found"}
	}
	return resp.Results[0].FormattedAddress, nil
}

// SearchPlaces resolves a free-text query to place candidates.
func (r *GoogleResolver) SearchPlaces(ctx context.Context, query string) ([]models.PlaceCandidate, error) {
	endpoint := fmt.Sprintf(
		"https://maps.googleapis.com/maps/api/geocode/json?address=%s&key=%s",
		url.QueryEscape(query), r.APIKey,
	)
	resp, err := r.fetch(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	if len(resp.Results) == 0 {
		return nil, &LookupFailure{Reason: "no results for query"}
	}

	candidates := make([]models.PlaceCandidate, 0, len(resp.Results))
	for _, res := range resp.Results {
		candidates = append(candidates, models.PlaceCandidate{
			PlaceID:          res.PlaceID,
			FormattedAddress: res.FormattedAddress,
			Latitude:         res.Geometry.Location.Lat,
			Longitude:        res.Geometry.Location.Lng,
		})
	}
	return candidates, nil
}

func (r *GoogleResolver) fetch(ctx context.Context, endpoint string) (*geocodeResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build geocode request: %w", err)
	}

	resp, err := r.HTTPClient.Do(req)
	if err != nil {
		utils.GetLogger().Warn("geocode request failed", zap.Error(err))
		return nil, &LookupFailure{Reason: "request failed or timed out"}
	}
	defer resp.Body.Close()

	var decoded geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, &LookupFailure{Reason: "malformed geocode response"}
	}
	return &decoded, nil
}
