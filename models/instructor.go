package models

import "time"

// Instructor is the minimal profile the engine reads. Full profile CRUD
// lives elsewhere.
type Instructor struct {
	ID   string `bson:"id" json:"id"`
	Name string `bson:"name" json:"name"`
}

// InstructorMetrics are derived per ranking run, never persisted.
type InstructorMetrics struct {
	InstructorID   string
	SameDayLoad    int
	LastFinishTime time.Time
}
