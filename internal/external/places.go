package external

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/Aryan1212a/TripSync/config"
)

const openTripMapBase = "https://api.opentripmap.com/0.1/en/places"

// Attraction is one nearby point of interest.
type Attraction struct {
	Name      string  `json:"name"`
	Kind      string  `json:"kind"`
	Rating    any     `json:"rating"`
	DistanceM float64 `json:"distance_m"`
}

// PlacesClient searches points of interest via OpenTripMap.
type PlacesClient struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
}

func NewPlacesClient(cfg config.ExternalConfig) *PlacesClient {
	return &PlacesClient{
		httpClient: &http.Client{Timeout: requestTimeout},
		apiKey:     cfg.OpenTripMapKey,
		baseURL:    openTripMapBase,
	}
}

// Search geocodes a city and returns up to 15 rated attractions within a
// 3km radius, the same two-step flow the OpenTripMap API requires.
func (c *PlacesClient) Search(ctx context.Context, city string) ([]Attraction, error) {
	if c.apiKey == "" {
		return nil, ErrMissingKey
	}

	geoURL := fmt.Sprintf("%s/geoname?name=%s&apikey=%s",
		c.baseURL, url.QueryEscape(city), url.QueryEscape(c.apiKey))

	var geo struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	}
	ok, err := c.getJSON(ctx, geoURL, &geo)
	if err != nil {
		return nil, err
	}
	if !ok || (geo.Lat == 0 && geo.Lon == 0) {
		return nil, ErrNotFound
	}

	radiusURL := fmt.Sprintf("%s/radius?radius=3000&lon=%f&lat=%f&rate=3&limit=15&apikey=%s",
		c.baseURL, geo.Lon, geo.Lat, url.QueryEscape(c.apiKey))

	var features struct {
		Features []struct {
			Properties struct {
				Name  string  `json:"name"`
				Kinds string  `json:"kinds"`
				Rate  any     `json:"rate"`
				Dist  float64 `json:"dist"`
			} `json:"properties"`
		} `json:"features"`
	}
	if _, err := c.getJSON(ctx, radiusURL, &features); err != nil {
		return nil, err
	}

	attractions := make([]Attraction, 0, len(features.Features))
	for _, f := range features.Features {
		attractions = append(attractions, Attraction{
			Name:      f.Properties.Name,
			Kind:      f.Properties.Kinds,
			Rating:    f.Properties.Rate,
			DistanceM: f.Properties.Dist,
		})
	}
	return attractions, nil
}

// Details returns the raw OpenTripMap detail document for a place xid.
func (c *PlacesClient) Details(ctx context.Context, xid string) (map[string]any, error) {
	if c.apiKey == "" {
		return nil, ErrMissingKey
	}

	detailURL := fmt.Sprintf("%s/xid/%s?apikey=%s",
		c.baseURL, url.PathEscape(xid), url.QueryEscape(c.apiKey))

	var details map[string]any
	ok, err := c.getJSON(ctx, detailURL, &details)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotFound
	}
	return details, nil
}

func (c *PlacesClient) getJSON(ctx context.Context, endpoint string, out any) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return false, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return false, err
	}
	return true, nil
}
