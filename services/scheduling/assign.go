// File: services/scheduling/assign.go
package scheduling

import (
	"sort"
	"time"

	"windward/models"
)

// RankedCandidate is a candidate instructor with its derived metrics.
type RankedCandidate struct {
	ID      string
	Name    string
	Metrics models.InstructorMetrics
}

// FindAvailableInstructors applies the three-stage filter for a requested
// interval: qualified, minus anyone with an overlapping non-cancelled
// booking, intersected with those whose availability fully contains the
// request. Input order is preserved.
func FindAvailableInstructors(
	qualified []string,
	overlapping []models.Booking,
	availability map[string][]models.TimeRange,
	request models.TimeRange,
) []string {
	busy := make(map[string]struct{})
	for _, b := range overlapping {
		if b.OverlapsRange(request.Start, request.End) {
			busy[b.InstructorID] = struct{}{}
		}
	}

	var candidates []string
	for _, id := range qualified {
		if _, isBusy := busy[id]; isBusy {
			continue
		}
		if !containsRequest(availability[id], request) {
			continue
		}
		candidates = append(candidates, id)
	}
	return candidates
}

func containsRequest(intervals []models.TimeRange, request models.TimeRange) bool {
	for _, iv := range intervals {
		if iv.Contains(request.Start, request.End) {
			return true
		}
	}
	return false
}

// RankCandidates orders candidates ascending by same-day load, then by
// earliest last finish time, then by name. The first entry is the
// deterministic winner; there is no randomness anywhere.
func RankCandidates(
	candidates []string,
	names map[string]string,
	sameDayBookings map[string][]models.Booking,
) []RankedCandidate {
	ranked := make([]RankedCandidate, 0, len(candidates))
	for _, id := range candidates {
		bookings := sameDayBookings[id]
		var lastFinish time.Time
		for _, b := range bookings {
			if b.EndTime.After(lastFinish) {
				lastFinish = b.EndTime
			}
		}
		ranked = append(ranked, RankedCandidate{
			ID:   id,
			Name: names[id],
			Metrics: models.InstructorMetrics{
				InstructorID:   id,
				SameDayLoad:    len(bookings),
				LastFinishTime: lastFinish,
			},
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.Metrics.SameDayLoad != b.Metrics.SameDayLoad {
			return a.Metrics.SameDayLoad < b.Metrics.SameDayLoad
		}
		if !a.Metrics.LastFinishTime.Equal(b.Metrics.LastFinishTime) {
			return a.Metrics.LastFinishTime.Before(b.Metrics.LastFinishTime)
		}
		return a.Name < b.Name
	})
	return ranked
}
