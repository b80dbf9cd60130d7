// File: services/scheduling/availability.go
package scheduling

import (
	"context"
	"fmt"
	"sort"

	availabilityRepo "windward/database/repository/availability"
	"windward/models"

	"go.uber.org/zap"
)

// Safety cap on weekly expansion so a pathological anchor far in the past
// cannot spin the loop.
const maxWeeklySteps = 1000

// AvailabilityResolver expands raw availability rows into concrete
// intervals for a query window.
type AvailabilityResolver struct {
	Repo   availabilityRepo.AvailabilityRepository
	Logger *zap.Logger
}

// ResolveIntervals returns the instructor's concrete intervals intersecting
// the window, ordered by start. One-time rows are kept only when fully
// inside the window; weekly rows are advanced in 7-day steps from their
// anchor. No deduplication is performed. Persistence errors propagate.
func (r *AvailabilityResolver) ResolveIntervals(ctx context.Context, instructorID string, window models.TimeRange) ([]models.TimeRange, error) {
	rows, err := r.Repo.GetByInstructorUpTo(ctx, instructorID, window.End)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch availability for instructor %s: %w", instructorID, err)
	}

	var out []models.TimeRange
	for _, row := range rows {
		switch row.Recurrence {
		case models.RecurrenceWeekly:
			out = append(out, expandWeekly(row, window)...)
		default:
			// One-time entries count only when fully within the window.
			if !row.StartTime.Before(window.Start) && !row.EndTime.After(window.End) {
				out = append(out, models.TimeRange{Start: row.StartTime, End: row.EndTime})
			}
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Start.Before(out[j].Start)
	})

	r.Logger.Debug("resolved availability",
		zap.String("instructorId", instructorID),
		zap.Int("rows", len(rows)),
		zap.Int("intervals", len(out)))
	return out, nil
}

// expandWeekly walks the template forward from its anchor in 7-day steps,
// emitting every occurrence that intersects the window, and stops once the
// advancing start passes the window end.
func expandWeekly(row models.AvailabilityInterval, window models.TimeRange) []models.TimeRange {
	var out []models.TimeRange
	start, end := row.StartTime, row.EndTime

	for steps := 0; steps < maxWeeklySteps; steps++ {
		if start.After(window.End) {
			break
		}
		occurrence := models.TimeRange{Start: start, End: end}
		if occurrence.Overlaps(window) {
			out = append(out, occurrence)
		}
		start = start.AddDate(0, 0, 7)
		end = end.AddDate(0, 0, 7)
	}
	return out
}
