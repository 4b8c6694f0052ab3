package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/seogestao/condogest/internal/domain/models"
)

// ListInspections returns all inspections ordered by next due date.
func (r *Repository) ListInspections(ctx context.Context) ([]models.Inspection, error) {
	cur, err := r.col(colInspections).Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "next_date", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list inspections: %w", err)
	}

	var out []models.Inspection
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode inspections: %w", err)
	}
	return out, nil
}

// CreateInspection inserts an inspection and returns it with its assigned id.
func (r *Repository) CreateInspection(ctx context.Context, ins models.Inspection) (models.Inspection, error) {
	ins.ID = primitive.NewObjectID().Hex()
	if _, err := r.col(colInspections).InsertOne(ctx, ins); err != nil {
		return models.Inspection{}, fmt.Errorf("insert inspection: %w", err)
	}
	return ins, nil
}

// UpdateInspectionStatus sets an explicit status and returns the updated record.
func (r *Repository) UpdateInspectionStatus(ctx context.Context, id string, status models.InspectionStatus) (models.Inspection, error) {
	var updated models.Inspection
	err := r.col(colInspections).FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status}},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&updated)
	if err != nil {
		return models.Inspection{}, fmt.Errorf("update inspection %s: %w", id, err)
	}
	return updated, nil
}

// DeleteInspection removes an inspection.
func (r *Repository) DeleteInspection(ctx context.Context, id string) error {
	if _, err := r.col(colInspections).DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("delete inspection %s: %w", id, err)
	}
	return nil
}
