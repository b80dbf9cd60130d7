package models

// AvailableSlot is one bookable start time for a lesson type across a day.
// AvailableSlotCount is the number of distinct instructors free at that
// exact start time.
type AvailableSlot struct {
	StartTime          string  `json:"startTime"` // RFC3339
	AvailableSlotCount int     `json:"availableSlotCount"`
	LessonID           int     `json:"lessonId"`
	LessonName         string  `json:"lessonName"`
	Price              float64 `json:"price"`
	DurationMinutes    int     `json:"durationMinutes"`
}
