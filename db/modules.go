package db

import (
	"context"
	"fmt"

	"leximax/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ListModules returns every document of the modules collection.
func ListModules(ctx context.Context) ([]models.LearningModule, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	cursor, err := GetCollection(ModulesCollection).Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list modules: %w", err)
	}
	defer cursor.Close(ctx)

	modules := []models.LearningModule{}
	if err := cursor.All(ctx, &modules); err != nil {
		return nil, fmt.Errorf("decode modules: %w", err)
	}
	return modules, nil
}

// UpsertModules writes the given modules, replacing documents with the same id.
func UpsertModules(ctx context.Context, modules []models.LearningModule) (int64, error) {
	if len(modules) == 0 {
		return 0, nil
	}
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	writes := make([]mongo.WriteModel, 0, len(modules))
	for _, m := range modules {
		writes = append(writes, mongo.NewReplaceOneModel().
			SetFilter(bson.M{"_id": m.ID}).
			SetReplacement(m).
			SetUpsert(true))
	}
	res, err := GetCollection(ModulesCollection).BulkWrite(ctx, writes)
	if err != nil {
		return 0, fmt.Errorf("upsert modules: %w", err)
	}
	return res.UpsertedCount + res.ModifiedCount, nil
}
