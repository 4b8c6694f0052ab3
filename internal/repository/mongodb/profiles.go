package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/seogestao/condogest/internal/domain/models"
)

// ListProfiles returns all user profiles ordered by name.
func (r *Repository) ListProfiles(ctx context.Context) ([]models.Profile, error) {
	cur, err := r.col(colProfiles).Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}

	var out []models.Profile
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode profiles: %w", err)
	}
	return out, nil
}

// GetProfileByEmail fetches the profile used to resolve a sign-in.
func (r *Repository) GetProfileByEmail(ctx context.Context, email string) (models.Profile, error) {
	var p models.Profile
	if err := r.col(colProfiles).FindOne(ctx, bson.M{"email": email}).Decode(&p); err != nil {
		return models.Profile{}, fmt.Errorf("get profile by email: %w", err)
	}
	return p, nil
}

// CreateProfile inserts a profile record.
func (r *Repository) CreateProfile(ctx context.Context, p models.Profile) (models.Profile, error) {
	p.ID = primitive.NewObjectID().Hex()
	if _, err := r.col(colProfiles).InsertOne(ctx, p); err != nil {
		return models.Profile{}, fmt.Errorf("insert profile: %w", err)
	}
	return p, nil
}

// UpdateProfile overwrites a profile's name, role and fraction binding.
func (r *Repository) UpdateProfile(ctx context.Context, id string, p models.Profile) (models.Profile, error) {
	update := bson.M{"$set": bson.M{
		"name":          p.Name,
		"role":          p.Role,
		"fraction_code": p.FractionCode,
	}}

	var updated models.Profile
	err := r.col(colProfiles).FindOneAndUpdate(ctx, bson.M{"_id": id}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&updated)
	if err != nil {
		return models.Profile{}, fmt.Errorf("update profile %s: %w", id, err)
	}
	return updated, nil
}

// DeleteProfile removes a profile record.
func (r *Repository) DeleteProfile(ctx context.Context, id string) error {
	if _, err := r.col(colProfiles).DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("delete profile %s: %w", id, err)
	}
	return nil
}

// SaveDailySnapshot persists one reporting snapshot.
func (r *Repository) SaveDailySnapshot(ctx context.Context, s models.DailySnapshot) error {
	if _, err := r.col(colSnapshots).InsertOne(ctx, s); err != nil {
		return fmt.Errorf("insert daily snapshot: %w", err)
	}
	return nil
}
