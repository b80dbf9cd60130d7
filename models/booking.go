package models

import "time"

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

// Booking represents a lesson booking record. InstructorID is empty while
// the booking is pending assignment. Cancelled bookings never participate
// in conflict checks.
type Booking struct {
	ID           string        `bson:"id" json:"id"`
	InstructorID string        `bson:"instructorId,omitempty" json:"instructorId,omitempty"`
	CustomerID   string        `bson:"customerId" json:"customerId"`
	LessonTypeID int           `bson:"lessonTypeId" json:"lessonTypeId"`
	StartTime    time.Time     `bson:"startTime" json:"startTime"`
	EndTime      time.Time     `bson:"endTime" json:"endTime"`
	Status       BookingStatus `bson:"status" json:"status"`
	CreatedAt    time.Time     `bson:"createdAt" json:"createdAt"`
}

// OverlapsRange applies the half-open overlap rule against [start, end).
func (b Booking) OverlapsRange(start, end time.Time) bool {
	return b.StartTime.Before(end) && b.EndTime.After(start)
}
