package weather

import (
	"testing"
	"time"

	"windward/models"
)

func TestIsCheckRequired_HorizonBoundary(t *testing.T) {
	now := time.Date(2025, 6, 2, 8, 30, 0, 0, time.UTC)

	cases := []struct {
		name string
		at   time.Time
		want bool
	}{
		{"same day", now.Add(2 * time.Hour), true},
		{"tomorrow", now.AddDate(0, 0, 1), true},
		{"exactly seven days", now.AddDate(0, 0, 7), true},
		{"seven days ignoring time of day", time.Date(2025, 6, 9, 23, 0, 0, 0, time.UTC), true},
		{"eight days", now.AddDate(0, 0, 8), false},
		{"two weeks", now.AddDate(0, 0, 14), false},
	}
	for _, tc := range cases {
		if got := IsCheckRequired(now, tc.at); got != tc.want {
			t.Errorf("%s: IsCheckRequired = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func testSnapshot(at time.Time, windSpeed float64) models.WeatherSnapshot {
	return models.WeatherSnapshot{
		Location: "spot",
		Hourly: map[int64]models.HourlyForecast{
			at.Unix(): {Timestamp: at.Unix(), WindSpeed: windSpeed, WindDirection: 200, Description: "cross-onshore"},
		},
		FetchedAt: at,
	}
}

func TestEvaluate_WindLimits(t *testing.T) {
	at := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	limits := models.WindLimits{Min: 8, Max: 30}

	if v := Evaluate(testSnapshot(at, 15), at, limits); !v.Suitable {
		t.Errorf("15 knots should be suitable, got reason %q", v.Reason)
	}
	if v := Evaluate(testSnapshot(at, 4), at, limits); v.Suitable || v.Reason != ReasonWindLow {
		t.Errorf("4 knots: expected %q, got %+v", ReasonWindLow, v)
	}
	if v := Evaluate(testSnapshot(at, 38), at, limits); v.Suitable || v.Reason != ReasonWindHigh {
		t.Errorf("38 knots: expected %q, got %+v", ReasonWindHigh, v)
	}
	// Limits are inclusive: exactly min and exactly max pass.
	if v := Evaluate(testSnapshot(at, 8), at, limits); !v.Suitable {
		t.Errorf("8 knots should be suitable, got %+v", v)
	}
	if v := Evaluate(testSnapshot(at, 30), at, limits); !v.Suitable {
		t.Errorf("30 knots should be suitable, got %+v", v)
	}
}

func TestEvaluate_MatchTolerance(t *testing.T) {
	entry := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	limits := models.WindLimits{Min: 8, Max: 30}
	snapshot := testSnapshot(entry, 15)

	// 30 minutes off still matches the hourly entry.
	if v := Evaluate(snapshot, entry.Add(30*time.Minute), limits); !v.Suitable {
		t.Errorf("booking 30m from entry should match, got %+v", v)
	}
	// 31 minutes off does not.
	v := Evaluate(snapshot, entry.Add(31*time.Minute), limits)
	if v.Suitable || v.Reason != ReasonNoForecast {
		t.Errorf("booking outside tolerance: expected %q, got %+v", ReasonNoForecast, v)
	}
}

func TestEvaluate_NearestEntryWins(t *testing.T) {
	at := time.Date(2025, 6, 2, 10, 20, 0, 0, time.UTC)
	limits := models.WindLimits{Min: 8, Max: 30}
	tenOClock := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	elevenOClock := time.Date(2025, 6, 2, 11, 0, 0, 0, time.UTC)

	snapshot := models.WeatherSnapshot{
		Location: "spot",
		Hourly: map[int64]models.HourlyForecast{
			tenOClock.Unix():    {Timestamp: tenOClock.Unix(), WindSpeed: 15},
			elevenOClock.Unix(): {Timestamp: elevenOClock.Unix(), WindSpeed: 50},
		},
	}

	// 10:20 is nearer the calm 10:00 entry than the stormy 11:00 one.
	if v := Evaluate(snapshot, at, limits); !v.Suitable {
		t.Errorf("expected nearest entry (10:00, 15kn) to decide, got %+v", v)
	}
}
