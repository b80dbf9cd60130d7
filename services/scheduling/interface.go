// File: services/scheduling/interface.go
package scheduling

import (
	"context"
	"time"

	"windward/models"
)

// SlotQuery filters the day's slot enumeration.
type SlotQuery struct {
	Day        time.Time // midnight UTC of the requested date
	SkillLevel models.SkillLevel
	NameFilter string
}

// AssignRequest asks for one instructor for one interval.
type AssignRequest struct {
	LessonTypeID int
	Start        time.Time
	End          time.Time
}

// SchedulingService is the engine behind the two public operations. It is
// advisory: concurrent requests may both see the same slot as free, and the
// authoritative conflict check belongs to the booking writer.
type SchedulingService interface {
	GetAvailableSlots(ctx context.Context, query SlotQuery) ([]models.AvailableSlot, error)
	AssignInstructor(ctx context.Context, req AssignRequest) (string, error)
}
