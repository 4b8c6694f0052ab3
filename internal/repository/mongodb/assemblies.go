package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/seogestao/condogest/internal/domain/models"
)

// ListAssemblies returns all assemblies, most recent first.
func (r *Repository) ListAssemblies(ctx context.Context) ([]models.Assembly, error) {
	cur, err := r.col(colAssemblies).Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list assemblies: %w", err)
	}

	var out []models.Assembly
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode assemblies: %w", err)
	}
	return out, nil
}

// CreateAssembly inserts a planned assembly with its seeded resolutions.
func (r *Repository) CreateAssembly(ctx context.Context, a models.Assembly) (models.Assembly, error) {
	a.ID = primitive.NewObjectID().Hex()
	if _, err := r.col(colAssemblies).InsertOne(ctx, a); err != nil {
		return models.Assembly{}, fmt.Errorf("insert assembly: %w", err)
	}
	return a, nil
}

// FinalizeAssembly persists the minuting outcome in a single document update:
// revised resolutions, attendance, board names, minutes text and the COMPLETED
// status all land together or not at all.
func (r *Repository) FinalizeAssembly(ctx context.Context, id string, a models.Assembly) (models.Assembly, error) {
	update := bson.M{"$set": bson.M{
		"end_time":       a.EndTime,
		"president_name": a.PresidentName,
		"secretary_name": a.SecretaryName,
		"attendees":      a.Attendees,
		"resolutions":    a.Resolutions,
		"minutes_text":   a.MinutesText,
		"status":         a.Status,
	}}

	var updated models.Assembly
	err := r.col(colAssemblies).FindOneAndUpdate(ctx, bson.M{"_id": id}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&updated)
	if err != nil {
		return models.Assembly{}, fmt.Errorf("finalize assembly %s: %w", id, err)
	}
	return updated, nil
}

// UpdateAssemblyStatus sets the lifecycle status and returns the updated record.
func (r *Repository) UpdateAssemblyStatus(ctx context.Context, id string, status models.AssemblyStatus) (models.Assembly, error) {
	var updated models.Assembly
	err := r.col(colAssemblies).FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status}},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&updated)
	if err != nil {
		return models.Assembly{}, fmt.Errorf("update assembly %s: %w", id, err)
	}
	return updated, nil
}
