// Package external wraps the third-party geo/weather APIs the frontend
// consumes through this backend. Calls are single-shot pass-throughs: no
// retry, no caching.
package external

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/Aryan1212a/TripSync/config"
)

const (
	openWeatherBase = "https://api.openweathermap.org/data/2.5"
	requestTimeout  = 10 * time.Second
)

var (
	// ErrMissingKey means the deployment has no API key configured.
	ErrMissingKey = errors.New("api key missing")
	// ErrNotFound means the upstream API had no data for the query.
	ErrNotFound = errors.New("not found")
)

// WeatherReport is the trimmed OpenWeather response served to clients.
type WeatherReport struct {
	City        string  `json:"city"`
	Temperature float64 `json:"temperature"`
	Humidity    int     `json:"humidity"`
	Wind        float64 `json:"wind"`
	Weather     string  `json:"weather"`
	Icon        string  `json:"icon"`
}

// WeatherClient fetches current weather from OpenWeather.
type WeatherClient struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
}

func NewWeatherClient(cfg config.ExternalConfig) *WeatherClient {
	return &WeatherClient{
		httpClient: &http.Client{Timeout: requestTimeout},
		apiKey:     cfg.OpenWeatherKey,
		baseURL:    openWeatherBase,
	}
}

// Current returns the current weather for a city in metric units.
func (c *WeatherClient) Current(ctx context.Context, city string) (WeatherReport, error) {
	if c.apiKey == "" {
		return WeatherReport{}, ErrMissingKey
	}

	endpoint := fmt.Sprintf("%s/weather?q=%s&appid=%s&units=metric",
		c.baseURL, url.QueryEscape(city), url.QueryEscape(c.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return WeatherReport{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return WeatherReport{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return WeatherReport{}, ErrNotFound
	}

	var payload struct {
		Name string `json:"name"`
		Main struct {
			Temp     float64 `json:"temp"`
			Humidity int     `json:"humidity"`
		} `json:"main"`
		Wind struct {
			Speed float64 `json:"speed"`
		} `json:"wind"`
		Weather []struct {
			Description string `json:"description"`
			Icon        string `json:"icon"`
		} `json:"weather"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return WeatherReport{}, err
	}

	report := WeatherReport{
		City:        payload.Name,
		Temperature: payload.Main.Temp,
		Humidity:    payload.Main.Humidity,
		Wind:        payload.Wind.Speed,
	}
	if len(payload.Weather) > 0 {
		report.Weather = payload.Weather[0].Description
		report.Icon = payload.Weather[0].Icon
	}
	return report, nil
}
