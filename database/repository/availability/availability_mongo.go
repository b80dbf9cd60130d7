// File: database/repository/availability/availability_mongo.go
package availabilityRepo

import (
	"context"
	"fmt"
	"time"

	"windward/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoAvailabilityRepo) GetByInstructorUpTo(ctx context.Context, instructorID string, until time.Time) ([]models.AvailabilityInterval, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"instructorId": instructorID,
		"startTime":    bson.M{"$lte": until},
	}
	opts := options.Find().SetSort(bson.D{{Key: "startTime", Value: 1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch availability: %w", err)
	}
	defer cursor.Close(ctx)

	var intervals []models.AvailabilityInterval
	if err := cursor.All(ctx, &intervals); err != nil {
		return nil, fmt.Errorf("error decoding availability: %w", err)
	}
	return intervals, nil
}

func (r *mongoAvailabilityRepo) Create(ctx context.Context, interval models.AvailabilityInterval) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if !interval.EndTime.After(interval.StartTime) {
		return "", fmt.Errorf("availability end must be after start")
	}
	if interval.ID == "" {
		interval.ID = uuid.New().String()
	}
	if _, err := r.coll.InsertOne(ctx, interval); err != nil {
		return "", fmt.Errorf("failed to insert availability: %w", err)
	}
	return interval.ID, nil
}

func (r *mongoAvailabilityRepo) DeleteByID(ctx context.Context, instructorID, intervalID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": intervalID, "instructorId": instructorID})
	if err != nil {
		return fmt.Errorf("failed to delete availability: %w", err)
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
