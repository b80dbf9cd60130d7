// File: services/scheduling/service.go
package scheduling

import (
	"context"
	"fmt"
	"strings"
	"time"

	bookingRepo "windward/database/repository/booking"
	instructorRepo "windward/database/repository/instructor"
	lessonRepo "windward/database/repository/lesson"
	"windward/models"
	"windward/services/weather"

	"go.uber.org/zap"
)

// DefaultSchedulingService wires the resolver, calculator, ranking and
// weather gate together. All state lives in the repositories; each request
// runs to completion synchronously.
type DefaultSchedulingService struct {
	LessonRepo     lessonRepo.LessonRepository
	BookingRepo    bookingRepo.BookingRepository
	InstructorRepo instructorRepo.InstructorRepository
	Resolver       *AvailabilityResolver
	Weather        *weather.Service
	Location       string
	WindLimits     models.WindLimits
	Logger         *zap.Logger

	// Now is swapped in tests.
	Now func() time.Time
}

func (s *DefaultSchedulingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// GetAvailableSlots enumerates bookable start times for every matching
// lesson type across the requested day.
func (s *DefaultSchedulingService) GetAvailableSlots(ctx context.Context, query SlotQuery) ([]models.AvailableSlot, error) {
	day := models.TimeRange{
		Start: query.Day,
		End:   query.Day.AddDate(0, 0, 1),
	}

	lessons, err := s.LessonRepo.GetActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load lesson types: %w", err)
	}
	lessons = filterLessons(lessons, query.SkillLevel, query.NameFilter)
	if len(lessons) == 0 {
		return []models.AvailableSlot{}, nil
	}

	links, err := s.LessonRepo.GetQualifications(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load qualifications: %w", err)
	}
	qualified := make(map[int][]string)
	instructorSet := make(map[string]struct{})
	for _, lesson := range lessons {
		for _, link := range links {
			if link.LessonTypeID != lesson.ID {
				continue
			}
			qualified[lesson.ID] = append(qualified[lesson.ID], link.InstructorID)
			instructorSet[link.InstructorID] = struct{}{}
		}
	}

	availability := make(map[string][]models.TimeRange, len(instructorSet))
	for instructorID := range instructorSet {
		intervals, err := s.Resolver.ResolveIntervals(ctx, instructorID, day)
		if err != nil {
			return nil, err
		}
		availability[instructorID] = intervals
	}

	dayBookings, err := s.BookingRepo.GetActiveInRange(ctx, day.Start, day.End)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings: %w", err)
	}
	byInstructor := make(map[string][]models.Booking)
	for _, b := range dayBookings {
		byInstructor[b.InstructorID] = append(byInstructor[b.InstructorID], b)
	}

	slots := CalculateDaySlots(SlotInput{
		Lessons:      lessons,
		Qualified:    qualified,
		Availability: availability,
		Bookings:     byInstructor,
		Day:          day,
	})

	s.Logger.Debug("calculated day slots",
		zap.Time("day", day.Start),
		zap.Int("lessons", len(lessons)),
		zap.Int("slots", len(slots)))
	return slots, nil
}

func filterLessons(lessons []models.LessonType, skill models.SkillLevel, nameFilter string) []models.LessonType {
	var out []models.LessonType
	needle := strings.ToLower(nameFilter)
	for _, lesson := range lessons {
		if skill != "" && lesson.SkillLevel != skill {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(lesson.Name), needle) {
			continue
		}
		out = append(out, lesson)
	}
	return out
}

// AssignInstructor picks the best qualified, free and present instructor
// for the requested interval, gated by weather feasibility inside the
// forecast horizon. Returns a BusinessError for rule violations.
func (s *DefaultSchedulingService) AssignInstructor(ctx context.Context, req AssignRequest) (string, error) {
	if !req.End.After(req.Start) {
		return "", fmt.Errorf("requested end must be after start")
	}

	now := s.now()
	if weather.IsCheckRequired(now, req.Start) {
		snapshot, status, err := s.Weather.Latest(ctx, s.Location)
		if err != nil {
			return "", fmt.Errorf("weather check failed: %w", err)
		}
		verdict := weather.Evaluate(snapshot, req.Start, s.WindLimits)
		s.Logger.Debug("weather gate evaluated",
			zap.String("cacheStatus", string(status)),
			zap.Bool("suitable", verdict.Suitable),
			zap.String("reason", verdict.Reason))
		if !verdict.Suitable {
			return "", NewWeatherUnsuitableError(verdict.Reason)
		}
	}

	qualifiedIDs, err := s.LessonRepo.GetQualifiedInstructorIDs(ctx, req.LessonTypeID)
	if err != nil {
		return "", fmt.Errorf("failed to load qualified instructors: %w", err)
	}
	if len(qualifiedIDs) == 0 {
		return "", NewNoInstructorError()
	}

	request := models.TimeRange{Start: req.Start, End: req.End}
	day := dayWindow(req.Start)

	overlapping, err := s.BookingRepo.GetActiveInRange(ctx, req.Start, req.End)
	if err != nil {
		return "", fmt.Errorf("failed to load bookings: %w", err)
	}

	availability := make(map[string][]models.TimeRange, len(qualifiedIDs))
	for _, id := range qualifiedIDs {
		intervals, err := s.Resolver.ResolveIntervals(ctx, id, day)
		if err != nil {
			return "", err
		}
		availability[id] = intervals
	}

	candidates := FindAvailableInstructors(qualifiedIDs, overlapping, availability, request)
	if len(candidates) == 0 {
		return "", NewNoInstructorError()
	}

	sameDay, err := s.BookingRepo.GetActiveInRange(ctx, day.Start, day.End)
	if err != nil {
		return "", fmt.Errorf("failed to load same-day bookings: %w", err)
	}
	sameDayByInstructor := make(map[string][]models.Booking)
	for _, b := range sameDay {
		sameDayByInstructor[b.InstructorID] = append(sameDayByInstructor[b.InstructorID], b)
	}

	profiles, err := s.InstructorRepo.GetByIDs(ctx, candidates)
	if err != nil {
		return "", fmt.Errorf("failed to load instructor profiles: %w", err)
	}
	names := make(map[string]string, len(profiles))
	for _, p := range profiles {
		names[p.ID] = p.Name
	}

	ranked := RankCandidates(candidates, names, sameDayByInstructor)
	winner := ranked[0]

	// Observation hook: the engine is advisory, so an overlapping booking
	// written between ranking and response is logged, never blocked.
	conflicts, err := s.BookingRepo.GetActiveByInstructorInRange(ctx, winner.ID, req.Start, req.End)
	if err != nil {
		s.Logger.Warn("post-assignment conflict check failed", zap.String("instructorId", winner.ID), zap.Error(err))
	} else if len(conflicts) > 0 {
		s.Logger.Warn("assigned instructor already has an overlapping booking",
			zap.String("instructorId", winner.ID),
			zap.Int("conflicts", len(conflicts)))
	}

	s.Logger.Info("instructor assigned",
		zap.String("instructorId", winner.ID),
		zap.Int("sameDayLoad", winner.Metrics.SameDayLoad),
		zap.Int("candidates", len(candidates)))
	return winner.ID, nil
}

func dayWindow(at time.Time) models.TimeRange {
	start := time.Date(at.Year(), at.Month(), at.Day(), 0, 0, 0, 0, time.UTC)
	return models.TimeRange{Start: start, End: start.AddDate(0, 0, 1)}
}
