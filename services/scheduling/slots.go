// File: services/scheduling/slots.go
package scheduling

import (
	"sort"
	"time"

	"windward/models"
)

// SlotInput is everything the calculator needs, already fetched. The
// calculation itself is pure: identical inputs yield identical, identically
// ordered output.
type SlotInput struct {
	Lessons      []models.LessonType
	Qualified    map[int][]string              // lesson type id -> qualified instructor ids
	Availability map[string][]models.TimeRange // instructor id -> concrete intervals
	Bookings     map[string][]models.Booking   // instructor id -> non-cancelled bookings
	Day          models.TimeRange
}

// CalculateDaySlots enumerates bookable start times per lesson type. For
// each qualified instructor, a cursor steps through each availability
// interval (intersected with the day window) in increments of exactly the
// lesson duration; a candidate survives when it fits the interval and does
// not overlap any of that instructor's bookings. Surviving candidates are
// bucketed by exact RFC3339 start string; the count per bucket is the
// number of distinct instructors covering that start.
func CalculateDaySlots(in SlotInput) []models.AvailableSlot {
	var out []models.AvailableSlot

	for _, lesson := range in.Lessons {
		if lesson.DurationMinutes <= 0 {
			continue
		}
		duration := time.Duration(lesson.DurationMinutes) * time.Minute
		covering := make(map[string]map[string]struct{})

		for _, instructorID := range in.Qualified[lesson.ID] {
			bookings := in.Bookings[instructorID]

			for _, interval := range in.Availability[instructorID] {
				start := interval.Start
				if start.Before(in.Day.Start) {
					start = in.Day.Start
				}
				end := interval.End
				if end.After(in.Day.End) {
					end = in.Day.End
				}

				for cursor := start; !cursor.Add(duration).After(end); cursor = cursor.Add(duration) {
					slotEnd := cursor.Add(duration)
					if overlapsAny(bookings, cursor, slotEnd) {
						continue
					}
					key := cursor.UTC().Format(time.RFC3339)
					if covering[key] == nil {
						covering[key] = make(map[string]struct{})
					}
					covering[key][instructorID] = struct{}{}
				}
			}
		}

		for startISO, instructors := range covering {
			out = append(out, models.AvailableSlot{
				StartTime:          startISO,
				AvailableSlotCount: len(instructors),
				LessonID:           lesson.ID,
				LessonName:         lesson.Name,
				Price:              lesson.Price,
				DurationMinutes:    lesson.DurationMinutes,
			})
		}
	}

	// Lexicographic RFC3339 ordering is chronologically correct; lesson id
	// settles equal starts so the output is fully deterministic.
	sort.Slice(out, func(i, j int) bool {
		if out[i].StartTime == out[j].StartTime {
			return out[i].LessonID < out[j].LessonID
		}
		return out[i].StartTime < out[j].StartTime
	})
	return out
}

func overlapsAny(bookings []models.Booking, start, end time.Time) bool {
	for _, b := range bookings {
		if b.OverlapsRange(start, end) {
			return true
		}
	}
	return false
}
