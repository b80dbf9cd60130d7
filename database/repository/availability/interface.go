// File: database/repository/availability/interface.go
package availabilityRepo

import (
	"context"
	"time"

	"windward/database"
	"windward/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// AvailabilityRepository reads raw availability rows. Weekly rows are
// templates; expansion happens in the scheduling service.
type AvailabilityRepository interface {
	GetByInstructorUpTo(ctx context.Context, instructorID string, until time.Time) ([]models.AvailabilityInterval, error)
	Create(ctx context.Context, interval models.AvailabilityInterval) (string, error)
	DeleteByID(ctx context.Context, instructorID, intervalID string) error
}

type mongoAvailabilityRepo struct {
	coll *mongo.Collection
}

// NewMongoAvailabilityRepo constructs a new MongoDB AvailabilityRepository.
func NewMongoAvailabilityRepo() AvailabilityRepository {
	db := database.MongoClient.Database("windward")
	return &mongoAvailabilityRepo{
		coll: db.Collection("availability"),
	}
}
