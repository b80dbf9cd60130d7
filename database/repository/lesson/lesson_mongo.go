// File: database/repository/lesson/lesson_mongo.go
package lessonRepo

import (
	"context"
	"fmt"
	"time"

	"windward/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func (r *mongoLessonRepo) GetActive(ctx context.Context) ([]models.LessonType, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.lessonColl.Find(ctx, bson.M{"active": true})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch lesson types: %w", err)
	}
	defer cursor.Close(ctx)

	var lessons []models.LessonType
	if err := cursor.All(ctx, &lessons); err != nil {
		return nil, fmt.Errorf("error decoding lesson types: %w", err)
	}
	return lessons, nil
}

func (r *mongoLessonRepo) GetByID(ctx context.Context, id int) (*models.LessonType, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var lesson models.LessonType
	err := r.lessonColl.FindOne(ctx, bson.M{"id": id}).Decode(&lesson)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("lesson type %d not found", id)
		}
		return nil, fmt.Errorf("find error: %w", err)
	}
	return &lesson, nil
}

func (r *mongoLessonRepo) GetQualifications(ctx context.Context) ([]models.InstructorLesson, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.linkColl.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch qualifications: %w", err)
	}
	defer cursor.Close(ctx)

	var links []models.InstructorLesson
	if err := cursor.All(ctx, &links); err != nil {
		return nil, fmt.Errorf("error decoding qualifications: %w", err)
	}
	return links, nil
}

func (r *mongoLessonRepo) GetQualifiedInstructorIDs(ctx context.Context, lessonTypeID int) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.linkColl.Find(ctx, bson.M{"lessonTypeId": lessonTypeID})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch qualifications: %w", err)
	}
	defer cursor.Close(ctx)

	var links []models.InstructorLesson
	if err := cursor.All(ctx, &links); err != nil {
		return nil, fmt.Errorf("error decoding qualifications: %w", err)
	}

	ids := make([]string, 0, len(links))
	for _, link := range links {
		ids = append(ids, link.InstructorID)
	}
	return ids, nil
}
