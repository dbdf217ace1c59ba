package trainingRepo

import (
	"context"

	"veritek/database"
	"veritek/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// TrainingRepository provides access to the training module documents.
type TrainingRepository interface {
	GetAll(ctx context.Context) ([]models.TrainingModule, error)
	GetByID(ctx context.Context, id string) (*models.TrainingModule, error)
	Upsert(ctx context.Context, module models.TrainingModule) error
}

type mongoTrainingRepo struct {
	coll *mongo.Collection
}

// NewMongoTrainingRepo returns a new TrainingRepository instance using MongoDB.
func NewMongoTrainingRepo() TrainingRepository {
	db := database.MongoClient.Database("veritek")
	return &mongoTrainingRepo{
		coll: db.Collection("training_modules"),
	}
}
