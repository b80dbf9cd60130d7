package models

import "time"

// RecurrenceRule is a closed set: either a one-time block or a weekly
// template anchored at the row's start/end times.
type RecurrenceRule string

const (
	RecurrenceNone   RecurrenceRule = "none"
	RecurrenceWeekly RecurrenceRule = "weekly"
)

// AvailabilityInterval is a raw availability row owned by an instructor.
// A weekly row is a template expanded on read, never materialized per
// occurrence; editing the template changes all future occurrences.
type AvailabilityInterval struct {
	ID           string         `bson:"id" json:"id"`
	InstructorID string         `bson:"instructorId" json:"instructorId"`
	StartTime    time.Time      `bson:"startTime" json:"startTime"`
	EndTime      time.Time      `bson:"endTime" json:"endTime"`
	Recurrence   RecurrenceRule `bson:"recurrence" json:"recurrence"`
}

// TimeRange is a concrete half-open interval [Start, End).
type TimeRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Overlaps reports whether two half-open intervals intersect.
func (r TimeRange) Overlaps(other TimeRange) bool {
	return r.Start.Before(other.End) && r.End.After(other.Start)
}

// Contains reports whether the range fully contains [start, end).
func (r TimeRange) Contains(start, end time.Time) bool {
	return !r.Start.After(start) && !r.End.Before(end)
}
