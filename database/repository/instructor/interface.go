// File: database/repository/instructor/interface.go
package instructorRepo

import (
	"context"

	"windward/database"
	"windward/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// InstructorRepository reads the minimal instructor profile the engine
// needs for ranking (names). Profile CRUD is not this service's job.
type InstructorRepository interface {
	GetByIDs(ctx context.Context, ids []string) ([]models.Instructor, error)
}

type mongoInstructorRepo struct {
	coll *mongo.Collection
}

// NewMongoInstructorRepo constructs a new MongoDB InstructorRepository.
func NewMongoInstructorRepo() InstructorRepository {
	db := database.MongoClient.Database("windward")
	return &mongoInstructorRepo{
		coll: db.Collection("instructors"),
	}
}
