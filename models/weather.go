package models

import "time"

// HourlyForecast is a single forecast point keyed by its unix timestamp.
type HourlyForecast struct {
	Timestamp     int64   `json:"timestamp"`     // unix seconds
	WindSpeed     float64 `json:"windSpeed"`     // knots
	WindDirection float64 `json:"windDirection"` // degrees
	Description   string  `json:"description"`
}

// WeatherSnapshot is the latest forecast fetched for a location. Fresh if
// age is under one hour.
type WeatherSnapshot struct {
	Location  string                   `json:"location"`
	Hourly    map[int64]HourlyForecast `json:"hourly"`
	FetchedAt time.Time                `json:"fetchedAt"`
}

// Age returns how old the snapshot is relative to now.
func (s WeatherSnapshot) Age(now time.Time) time.Duration {
	return now.Sub(s.FetchedAt)
}

// WindLimits are the thresholds within which a lesson is sailable.
type WindLimits struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}
