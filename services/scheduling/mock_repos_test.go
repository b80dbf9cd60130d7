package scheduling

import (
	"context"
	"fmt"
	"time"

	"windward/models"
)

// In-memory repository doubles for engine tests.

type mockLessonRepo struct {
	lessons []models.LessonType
	links   []models.InstructorLesson
	err     error
}

func (m *mockLessonRepo) GetActive(_ context.Context) ([]models.LessonType, error) {
	if m.err != nil {
		return nil, m.err
	}
	var active []models.LessonType
	for _, l := range m.lessons {
		if l.Active {
			active = append(active, l)
		}
	}
	return active, nil
}

func (m *mockLessonRepo) GetByID(_ context.Context, id int) (*models.LessonType, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, l := range m.lessons {
		if l.ID == id {
			lesson := l
			return &lesson, nil
		}
	}
	return nil, fmt.Errorf("lesson type %d not found", id)
}

func (m *mockLessonRepo) GetQualifications(_ context.Context) ([]models.InstructorLesson, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.links, nil
}

func (m *mockLessonRepo) GetQualifiedInstructorIDs(_ context.Context, lessonTypeID int) ([]string, error) {
	if m.err != nil {
		return nil, m.err
	}
	var ids []string
	for _, link := range m.links {
		if link.LessonTypeID == lessonTypeID {
			ids = append(ids, link.InstructorID)
		}
	}
	return ids, nil
}

type mockAvailabilityRepo struct {
	rows []models.AvailabilityInterval
	err  error
}

func (m *mockAvailabilityRepo) GetByInstructorUpTo(_ context.Context, instructorID string, until time.Time) ([]models.AvailabilityInterval, error) {
	if m.err != nil {
		return nil, m.err
	}
	var rows []models.AvailabilityInterval
	for _, row := range m.rows {
		if row.InstructorID == instructorID && !row.StartTime.After(until) {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

func (m *mockAvailabilityRepo) Create(_ context.Context, interval models.AvailabilityInterval) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	if interval.ID == "" {
		interval.ID = fmt.Sprintf("avail-%d", len(m.rows)+1)
	}
	m.rows = append(m.rows, interval)
	return interval.ID, nil
}

func (m *mockAvailabilityRepo) DeleteByID(_ context.Context, instructorID, intervalID string) error {
	for i, row := range m.rows {
		if row.ID == intervalID && row.InstructorID == instructorID {
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("not found")
}

type mockBookingRepo struct {
	bookings []models.Booking
	err      error
}

func (m *mockBookingRepo) GetActiveInRange(_ context.Context, from, to time.Time) ([]models.Booking, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []models.Booking
	for _, b := range m.bookings {
		if b.Status == models.BookingCancelled {
			continue
		}
		if b.OverlapsRange(from, to) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *mockBookingRepo) GetActiveByInstructorInRange(_ context.Context, instructorID string, from, to time.Time) ([]models.Booking, error) {
	all, err := m.GetActiveInRange(context.Background(), from, to)
	if err != nil {
		return nil, err
	}
	var out []models.Booking
	for _, b := range all {
		if b.InstructorID == instructorID {
			out = append(out, b)
		}
	}
	return out, nil
}

type mockInstructorRepo struct {
	instructors []models.Instructor
	err         error
}

func (m *mockInstructorRepo) GetByIDs(_ context.Context, ids []string) ([]models.Instructor, error) {
	if m.err != nil {
		return nil, m.err
	}
	want := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}
	var out []models.Instructor
	for _, inst := range m.instructors {
		if _, ok := want[inst.ID]; ok {
			out = append(out, inst)
		}
	}
	return out, nil
}
