// File: database/repository/booking/booking_mongo.go
package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"windward/models"

	"go.mongodb.org/mongo-driver/bson"
)

// activeStatuses excludes cancelled bookings from every conflict check.
var activeStatuses = bson.A{string(models.BookingPending), string(models.BookingConfirmed)}

func (r *mongoBookingRepo) GetActiveInRange(ctx context.Context, from, to time.Time) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// Half-open overlap: startTime < to AND endTime > from.
	filter := bson.M{
		"status":    bson.M{"$in": activeStatuses},
		"startTime": bson.M{"$lt": to},
		"endTime":   bson.M{"$gt": from},
	}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %w", err)
	}
	return bookings, nil
}

func (r *mongoBookingRepo) GetActiveByInstructorInRange(ctx context.Context, instructorID string, from, to time.Time) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"instructorId": instructorID,
		"status":       bson.M{"$in": activeStatuses},
		"startTime":    bson.M{"$lt": to},
		"endTime":      bson.M{"$gt": from},
	}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %w", err)
	}
	return bookings, nil
}
