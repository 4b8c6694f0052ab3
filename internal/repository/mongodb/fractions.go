package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/seogestao/condogest/internal/domain/models"
)

// ListFractions returns all fractions ordered by code.
func (r *Repository) ListFractions(ctx context.Context) ([]models.Fraction, error) {
	cur, err := r.col(colFractions).Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "code", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list fractions: %w", err)
	}

	var out []models.Fraction
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode fractions: %w", err)
	}
	return out, nil
}

// CreateFraction inserts a fraction and returns it with its assigned id.
func (r *Repository) CreateFraction(ctx context.Context, f models.Fraction) (models.Fraction, error) {
	f.ID = primitive.NewObjectID().Hex()
	if _, err := r.col(colFractions).InsertOne(ctx, f); err != nil {
		return models.Fraction{}, fmt.Errorf("insert fraction: %w", err)
	}
	return f, nil
}

// UpdateFraction overwrites a fraction's mutable fields and returns the
// post-update record. Last writer wins; there is no version check.
func (r *Repository) UpdateFraction(ctx context.Context, id string, f models.Fraction) (models.Fraction, error) {
	update := bson.M{"$set": bson.M{
		"code":          f.Code,
		"owner_name":    f.OwnerName,
		"permilage":     f.Permilage,
		"monthly_quota": f.MonthlyQuota,
		"nif":           f.NIF,
		"status":        f.Status,
	}}

	var updated models.Fraction
	err := r.col(colFractions).FindOneAndUpdate(ctx, bson.M{"_id": id}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&updated)
	if err != nil {
		return models.Fraction{}, fmt.Errorf("update fraction %s: %w", id, err)
	}
	return updated, nil
}

// DeleteFraction removes a fraction.
func (r *Repository) DeleteFraction(ctx context.Context, id string) error {
	if _, err := r.col(colFractions).DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("delete fraction %s: %w", id, err)
	}
	return nil
}
