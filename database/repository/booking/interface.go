// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"
	"time"

	"windward/database"
	"windward/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BookingRepository reads booking records for conflict checks and ranking.
// The authoritative booking write belongs to the booking-persistence
// collaborator; this engine only reads.
type BookingRepository interface {
	GetActiveInRange(ctx context.Context, from, to time.Time) ([]models.Booking, error)
	GetActiveByInstructorInRange(ctx context.Context, instructorID string, from, to time.Time) ([]models.Booking, error)
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a new MongoDB BookingRepository.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database("windward")
	return &mongoBookingRepo{
		coll: db.Collection("bookings"),
	}
}
