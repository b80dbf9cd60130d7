// File: services/weather/suitability.go
package weather

import (
	"time"

	"windward/models"
)

// Forecast suitability is only enforced inside this horizon; further out
// there is no usable forecast and the booking is treated as suitable.
const CheckHorizonDays = 7

// A booking time matches a forecast entry when they are within this many
// seconds of each other.
const matchToleranceSecs = 1800

const (
	ReasonNoForecast = "No forecast data available for this time."
	ReasonWindLow    = "Wind too low"
	ReasonWindHigh   = "Wind too high"
)

// Verdict is the outcome of a suitability evaluation.
type Verdict struct {
	Suitable bool   `json:"suitable"`
	Reason   string `json:"reason,omitempty"`
}

// IsCheckRequired reports whether a booking at the given time needs a
// weather check: true when the calendar-day difference from now is at most
// CheckHorizonDays (exactly 7 days out still requires the check).
func IsCheckRequired(now, at time.Time) bool {
	nowDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	atDay := time.Date(at.Year(), at.Month(), at.Day(), 0, 0, 0, 0, time.UTC)
	diffDays := int(atDay.Sub(nowDay).Hours() / 24)
	return diffDays <= CheckHorizonDays
}

// Evaluate decides whether the booking time is sailable under the given
// wind limits. The forecast entry nearest the booking time is used,
// provided it is within the match tolerance.
func Evaluate(snapshot models.WeatherSnapshot, at time.Time, limits models.WindLimits) Verdict {
	target := at.Unix()

	var nearest *models.HourlyForecast
	var nearestDelta int64
	for ts, entry := range snapshot.Hourly {
		delta := ts - target
		if delta < 0 {
			delta = -delta
		}
		if delta > matchToleranceSecs {
			continue
		}
		if nearest == nil || delta < nearestDelta {
			e := entry
			nearest = &e
			nearestDelta = delta
		}
	}

	if nearest == nil {
		return Verdict{Suitable: false, Reason: ReasonNoForecast}
	}
	if nearest.WindSpeed < limits.Min {
		return Verdict{Suitable: false, Reason: ReasonWindLow}
	}
	if nearest.WindSpeed > limits.Max {
		return Verdict{Suitable: false, Reason: ReasonWindHigh}
	}
	return Verdict{Suitable: true}
}
