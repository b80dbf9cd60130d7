// File: database/repository/instructor/instructor_mongo.go
package instructorRepo

import (
	"context"
	"fmt"
	"time"

	"windward/models"

	"go.mongodb.org/mongo-driver/bson"
)

func (r *mongoInstructorRepo) GetByIDs(ctx context.Context, ids []string) ([]models.Instructor, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if len(ids) == 0 {
		return []models.Instructor{}, nil
	}

	cursor, err := r.coll.Find(ctx, bson.M{"id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch instructors: %w", err)
	}
	defer cursor.Close(ctx)

	var instructors []models.Instructor
	if err := cursor.All(ctx, &instructors); err != nil {
		return nil, fmt.Errorf("error decoding instructors: %w", err)
	}
	return instructors, nil
}
