package trainingRepo

import (
	"context"
	"errors"

	"veritek/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrModuleNotFound is returned when no module document matches the id.
var ErrModuleNotFound = errors.New("training module not found")

// GetAll returns every training module document.
func (r *mongoTrainingRepo) GetAll(ctx context.Context) ([]models.TrainingModule, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var modules []models.TrainingModule
	if err := cursor.All(ctx, &modules); err != nil {
		return nil, err
	}
	return modules, nil
}

// GetByID returns a training module by its ID.
func (r *mongoTrainingRepo) GetByID(ctx context.Context, id string) (*models.TrainingModule, error) {
	var module models.TrainingModule
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&module)
	if err == mongo.ErrNoDocuments {
		return nil, ErrModuleNotFound
	}
	if err != nil {
		return nil, err
	}
	return &module, nil
}

// Upsert inserts or replaces a training module document keyed by its ID.
func (r *mongoTrainingRepo) Upsert(ctx context.Context, module models.TrainingModule) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.coll.ReplaceOne(ctx, bson.M{"id": module.ID}, module, opts)
	return err
}
