// File: database/repository/lesson/interface.go
package lessonRepo

import (
	"context"

	"windward/database"
	"windward/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// LessonRepository reads lesson types and instructor qualification links.
type LessonRepository interface {
	GetActive(ctx context.Context) ([]models.LessonType, error)
	GetByID(ctx context.Context, id int) (*models.LessonType, error)
	GetQualifications(ctx context.Context) ([]models.InstructorLesson, error)
	GetQualifiedInstructorIDs(ctx context.Context, lessonTypeID int) ([]string, error)
}

type mongoLessonRepo struct {
	lessonColl *mongo.Collection
	linkColl   *mongo.Collection
}

// NewMongoLessonRepo constructs a new MongoDB LessonRepository.
func NewMongoLessonRepo() LessonRepository {
	db := database.MongoClient.Database("windward")
	return &mongoLessonRepo{
		lessonColl: db.Collection("lessonTypes"),
		linkColl:   db.Collection("instructorLessons"),
	}
}
