package models

// SkillLevel is the rider level a lesson type targets.
type SkillLevel string

const (
	SkillBeginner     SkillLevel = "beginner"
	SkillIntermediate SkillLevel = "intermediate"
	SkillAdvanced     SkillLevel = "advanced"
)

// Valid reports whether the skill level is one of the known values.
func (s SkillLevel) Valid() bool {
	switch s {
	case SkillBeginner, SkillIntermediate, SkillAdvanced:
		return true
	}
	return false
}

// LessonType describes a bookable lesson product. DurationMinutes is the
// fixed step size used when enumerating slots.
type LessonType struct {
	ID              int        `bson:"id" json:"id"`
	Name            string     `bson:"name" json:"name"`
	SkillLevel      SkillLevel `bson:"skillLevel" json:"skillLevel"`
	DurationMinutes int        `bson:"durationMinutes" json:"durationMinutes"`
	Price           float64    `bson:"price" json:"price"`
	Active          bool       `bson:"active" json:"active"`
}

// InstructorLesson links an instructor to a lesson type they are qualified
// to teach. One document per link.
type InstructorLesson struct {
	InstructorID string `bson:"instructorId" json:"instructorId"`
	LessonTypeID int    `bson:"lessonTypeId" json:"lessonTypeId"`
}
