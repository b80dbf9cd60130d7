package scheduling

import (
	"context"
	"errors"
	"testing"
	"time"

	"windward/models"
	"windward/services/weather"

	"go.uber.org/zap"
)

type stubFetcher struct {
	snapshot models.WeatherSnapshot
	err      error
}

func (s *stubFetcher) Fetch(_ context.Context, _ string) (models.WeatherSnapshot, error) {
	if s.err != nil {
		return models.WeatherSnapshot{}, s.err
	}
	return s.snapshot, nil
}

type memSnapshotStore struct {
	snapshots map[string]*models.WeatherSnapshot
}

func (m *memSnapshotStore) Get(_ context.Context, location string) (*models.WeatherSnapshot, error) {
	return m.snapshots[location], nil
}

func (m *memSnapshotStore) Set(_ context.Context, snapshot models.WeatherSnapshot) error {
	if m.snapshots == nil {
		m.snapshots = make(map[string]*models.WeatherSnapshot)
	}
	m.snapshots[snapshot.Location] = &snapshot
	return nil
}

const testLocation = "12.3456,-7.8901"

func fixedNow(t *testing.T) time.Time {
	t.Helper()
	return mustTime(t, "2025-06-02T08:00:00Z")
}

// freshWeather returns a weather service whose cached snapshot carries the
// given wind speed at the booking hour.
func freshWeather(t *testing.T, windSpeed float64) *weather.Service {
	t.Helper()
	now := fixedNow(t)
	at := mustTime(t, "2025-06-02T10:00:00Z")
	snapshot := models.WeatherSnapshot{
		Location: testLocation,
		Hourly: map[int64]models.HourlyForecast{
			at.Unix(): {Timestamp: at.Unix(), WindSpeed: windSpeed, WindDirection: 180, Description: "steady"},
		},
		FetchedAt: now,
	}
	store := &memSnapshotStore{snapshots: map[string]*models.WeatherSnapshot{testLocation: &snapshot}}
	svc := weather.NewService(&stubFetcher{err: errors.New("upstream down")}, store, zap.NewNop())
	svc.Now = func() time.Time { return now }
	return svc
}

func newTestService(t *testing.T, weatherSvc *weather.Service) (*DefaultSchedulingService, *mockBookingRepo) {
	t.Helper()
	lessons := &mockLessonRepo{
		lessons: []models.LessonType{
			{ID: 1, Name: "Beginner Kite", SkillLevel: models.SkillBeginner, DurationMinutes: 60, Price: 80, Active: true},
		},
		links: []models.InstructorLesson{
			{InstructorID: "inst-a", LessonTypeID: 1},
			{InstructorID: "inst-b", LessonTypeID: 1},
			{InstructorID: "inst-c", LessonTypeID: 1},
		},
	}
	availability := &mockAvailabilityRepo{rows: []models.AvailabilityInterval{
		{ID: "a1", InstructorID: "inst-a", StartTime: mustTime(t, "2025-06-02T09:00:00Z"), EndTime: mustTime(t, "2025-06-02T17:00:00Z"), Recurrence: models.RecurrenceNone},
		{ID: "a2", InstructorID: "inst-b", StartTime: mustTime(t, "2025-06-02T09:00:00Z"), EndTime: mustTime(t, "2025-06-02T17:00:00Z"), Recurrence: models.RecurrenceNone},
		// inst-c has no availability on the day.
	}}
	bookings := &mockBookingRepo{}
	instructors := &mockInstructorRepo{instructors: []models.Instructor{
		{ID: "inst-a", Name: "Alice"},
		{ID: "inst-b", Name: "Bruno"},
		{ID: "inst-c", Name: "Chris"},
	}}

	svc := &DefaultSchedulingService{
		LessonRepo:     lessons,
		BookingRepo:    bookings,
		InstructorRepo: instructors,
		Resolver:       &AvailabilityResolver{Repo: availability, Logger: zap.NewNop()},
		Weather:        weatherSvc,
		Location:       testLocation,
		WindLimits:     models.WindLimits{Min: 8, Max: 30},
		Logger:         zap.NewNop(),
		Now:            func() time.Time { return fixedNow(t) },
	}
	return svc, bookings
}

func TestFindAvailableInstructors_ThreeStageFilter(t *testing.T) {
	request := models.TimeRange{
		Start: mustTime(t, "2025-06-02T10:00:00Z"),
		End:   mustTime(t, "2025-06-02T11:00:00Z"),
	}
	fullDay := []models.TimeRange{{
		Start: mustTime(t, "2025-06-02T09:00:00Z"),
		End:   mustTime(t, "2025-06-02T17:00:00Z"),
	}}
	overlapping := []models.Booking{
		{
			ID:           "b1",
			InstructorID: "B",
			StartTime:    mustTime(t, "2025-06-02T10:30:00Z"),
			EndTime:      mustTime(t, "2025-06-02T11:30:00Z"),
			Status:       models.BookingConfirmed,
		},
	}
	availability := map[string][]models.TimeRange{
		"A": fullDay,
		"B": fullDay,
		// C is qualified but has no interval containing the request.
		"C": {{Start: mustTime(t, "2025-06-02T14:00:00Z"), End: mustTime(t, "2025-06-02T17:00:00Z")}},
	}

	candidates := FindAvailableInstructors([]string{"A", "B", "C"}, overlapping, availability, request)
	if len(candidates) != 1 || candidates[0] != "A" {
		t.Fatalf("expected exactly [A], got %v", candidates)
	}
}

func TestRankCandidates_TotalOrder(t *testing.T) {
	names := map[string]string{"x": "Zoe", "y": "Adam", "z": "Mara"}
	day := func(hhStart, hhEnd int) models.Booking {
		return models.Booking{
			StartTime: time.Date(2025, 6, 2, hhStart, 0, 0, 0, time.UTC),
			EndTime:   time.Date(2025, 6, 2, hhEnd, 0, 0, 0, time.UTC),
			Status:    models.BookingConfirmed,
		}
	}

	// Lower load wins regardless of name.
	ranked := RankCandidates([]string{"x", "y"}, names, map[string][]models.Booking{
		"y": {day(9, 10)},
	})
	if ranked[0].ID != "x" {
		t.Errorf("expected zero-load Zoe first, got %s", ranked[0].ID)
	}

	// Equal load: earlier last finish wins.
	ranked = RankCandidates([]string{"x", "y"}, names, map[string][]models.Booking{
		"x": {day(9, 12)},
		"y": {day(9, 10)},
	})
	if ranked[0].ID != "y" {
		t.Errorf("expected earlier-finishing candidate first, got %s", ranked[0].ID)
	}

	// Equal load and finish: alphabetical name order.
	ranked = RankCandidates([]string{"x", "y", "z"}, names, map[string][]models.Booking{
		"x": {day(9, 10)},
		"y": {day(9, 10)},
		"z": {day(9, 10)},
	})
	if ranked[0].Name != "Adam" || ranked[1].Name != "Mara" || ranked[2].Name != "Zoe" {
		t.Errorf("expected alphabetical tie-break, got %v", []string{ranked[0].Name, ranked[1].Name, ranked[2].Name})
	}
}

func TestAssignInstructor_PicksLowestLoad(t *testing.T) {
	svc, bookings := newTestService(t, freshWeather(t, 15))
	// Alice already teaches earlier that day; Bruno is free.
	bookings.bookings = []models.Booking{
		{
			ID:           "b1",
			InstructorID: "inst-a",
			StartTime:    mustTime(t, "2025-06-02T09:00:00Z"),
			EndTime:      mustTime(t, "2025-06-02T10:00:00Z"),
			Status:       models.BookingConfirmed,
		},
	}

	id, err := svc.AssignInstructor(context.Background(), AssignRequest{
		LessonTypeID: 1,
		Start:        mustTime(t, "2025-06-02T10:00:00Z"),
		End:          mustTime(t, "2025-06-02T11:00:00Z"),
	})
	if err != nil {
		t.Fatalf("AssignInstructor failed: %v", err)
	}
	if id != "inst-b" {
		t.Errorf("expected the unloaded instructor inst-b, got %s", id)
	}
}

func TestAssignInstructor_WeatherUnsuitable(t *testing.T) {
	svc, _ := newTestService(t, freshWeather(t, 45))

	_, err := svc.AssignInstructor(context.Background(), AssignRequest{
		LessonTypeID: 1,
		Start:        mustTime(t, "2025-06-02T10:00:00Z"),
		End:          mustTime(t, "2025-06-02T11:00:00Z"),
	})
	var bizErr *BusinessError
	if !errors.As(err, &bizErr) {
		t.Fatalf("expected BusinessError, got %v", err)
	}
	if bizErr.Code != CodeWeatherUnsuitable {
		t.Errorf("expected code %s, got %s", CodeWeatherUnsuitable, bizErr.Code)
	}
	if bizErr.Message != weather.ReasonWindHigh {
		t.Errorf("expected reason %q, got %q", weather.ReasonWindHigh, bizErr.Message)
	}
}

func TestAssignInstructor_BeyondHorizonSkipsWeather(t *testing.T) {
	// Empty cache and a dead upstream: a weather check would hard-fail, so
	// success proves the horizon gate skipped it.
	deadWeather := weather.NewService(&stubFetcher{err: errors.New("upstream down")}, &memSnapshotStore{}, zap.NewNop())
	svc, _ := newTestService(t, deadWeather)

	// 10 days out; availability must exist on that day.
	avail := svc.Resolver.Repo.(*mockAvailabilityRepo)
	avail.rows = append(avail.rows, models.AvailabilityInterval{
		ID:           "far",
		InstructorID: "inst-a",
		StartTime:    mustTime(t, "2025-06-12T09:00:00Z"),
		EndTime:      mustTime(t, "2025-06-12T17:00:00Z"),
		Recurrence:   models.RecurrenceNone,
	})

	id, err := svc.AssignInstructor(context.Background(), AssignRequest{
		LessonTypeID: 1,
		Start:        mustTime(t, "2025-06-12T10:00:00Z"),
		End:          mustTime(t, "2025-06-12T11:00:00Z"),
	})
	if err != nil {
		t.Fatalf("AssignInstructor failed: %v", err)
	}
	if id != "inst-a" {
		t.Errorf("expected inst-a, got %s", id)
	}
}

func TestAssignInstructor_NoCandidates(t *testing.T) {
	svc, bookings := newTestService(t, freshWeather(t, 15))
	// Book both present instructors over the requested interval.
	bookings.bookings = []models.Booking{
		{ID: "b1", InstructorID: "inst-a", StartTime: mustTime(t, "2025-06-02T10:00:00Z"), EndTime: mustTime(t, "2025-06-02T11:00:00Z"), Status: models.BookingConfirmed},
		{ID: "b2", InstructorID: "inst-b", StartTime: mustTime(t, "2025-06-02T10:00:00Z"), EndTime: mustTime(t, "2025-06-02T11:00:00Z"), Status: models.BookingPending},
	}

	_, err := svc.AssignInstructor(context.Background(), AssignRequest{
		LessonTypeID: 1,
		Start:        mustTime(t, "2025-06-02T10:00:00Z"),
		End:          mustTime(t, "2025-06-02T11:00:00Z"),
	})
	var bizErr *BusinessError
	if !errors.As(err, &bizErr) {
		t.Fatalf("expected BusinessError, got %v", err)
	}
	if bizErr.Code != CodeNoInstructorAvailable {
		t.Errorf("expected code %s, got %s", CodeNoInstructorAvailable, bizErr.Code)
	}
}

func TestAssignInstructor_CancelledBookingsIgnored(t *testing.T) {
	svc, bookings := newTestService(t, freshWeather(t, 15))
	bookings.bookings = []models.Booking{
		{ID: "b1", InstructorID: "inst-a", StartTime: mustTime(t, "2025-06-02T10:00:00Z"), EndTime: mustTime(t, "2025-06-02T11:00:00Z"), Status: models.BookingCancelled},
		{ID: "b2", InstructorID: "inst-b", StartTime: mustTime(t, "2025-06-02T10:00:00Z"), EndTime: mustTime(t, "2025-06-02T11:00:00Z"), Status: models.BookingConfirmed},
	}

	id, err := svc.AssignInstructor(context.Background(), AssignRequest{
		LessonTypeID: 1,
		Start:        mustTime(t, "2025-06-02T10:00:00Z"),
		End:          mustTime(t, "2025-06-02T11:00:00Z"),
	})
	if err != nil {
		t.Fatalf("AssignInstructor failed: %v", err)
	}
	if id != "inst-a" {
		t.Errorf("cancelled booking should not block inst-a, got %s", id)
	}
}
