// File: services/weather/client.go
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"windward/models"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Fetcher retrieves a fresh hourly forecast for a location.
type Fetcher interface {
	Fetch(ctx context.Context, location string) (models.WeatherSnapshot, error)
}

// HTTPFetcher calls the upstream forecast API. The provider returns hourly
// wind data keyed by unix timestamp; anything else in the payload is ignored.
type HTTPFetcher struct {
	BaseURL string
	APIKey  string
	Lat     float64
	Lon     float64
	Client  *http.Client
	Limiter *rate.Limiter
	Logger  *zap.Logger
}

// NewHTTPFetcher constructs a fetcher throttled to a handful of upstream
// calls per minute, so cache misses cannot stampede the provider.
func NewHTTPFetcher(baseURL, apiKey string, lat, lon float64, logger *zap.Logger) *HTTPFetcher {
	return &HTTPFetcher{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Lat:     lat,
		Lon:     lon,
		Client:  &http.Client{Timeout: 10 * time.Second},
		Limiter: rate.NewLimiter(rate.Every(time.Minute/10), 2),
		Logger:  logger,
	}
}

type forecastResponse struct {
	Hourly map[int64]struct {
		WindSpeed     float64 `json:"windSpeed"`
		WindDirection float64 `json:"windDirection"`
		Description   string  `json:"description"`
	} `json:"hourly"`
}

func (f *HTTPFetcher) Fetch(ctx context.Context, location string) (models.WeatherSnapshot, error) {
	if err := f.Limiter.Wait(ctx); err != nil {
		return models.WeatherSnapshot{}, fmt.Errorf("weather fetch throttled: %w", err)
	}

	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(f.Lat, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(f.Lon, 'f', -1, 64))
	if f.APIKey != "" {
		q.Set("apikey", f.APIKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.BaseURL+"?"+q.Encode(), nil)
	if err != nil {
		return models.WeatherSnapshot{}, fmt.Errorf("failed to build forecast request: %w", err)
	}

	resp, err := f.Client.Do(req)
	if err != nil {
		return models.WeatherSnapshot{}, fmt.Errorf("forecast request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.WeatherSnapshot{}, fmt.Errorf("forecast request returned status %d", resp.StatusCode)
	}

	var payload forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return models.WeatherSnapshot{}, fmt.Errorf("failed to decode forecast payload: %w", err)
	}

	snapshot := models.WeatherSnapshot{
		Location:  location,
		Hourly:    make(map[int64]models.HourlyForecast, len(payload.Hourly)),
		FetchedAt: time.Now(),
	}
	for ts, entry := range payload.Hourly {
		snapshot.Hourly[ts] = models.HourlyForecast{
			Timestamp:     ts,
			WindSpeed:     entry.WindSpeed,
			WindDirection: entry.WindDirection,
			Description:   entry.Description,
		}
	}

	f.Logger.Debug("fetched forecast",
		zap.String("location", location),
		zap.Int("hours", len(snapshot.Hourly)))
	return snapshot, nil
}
