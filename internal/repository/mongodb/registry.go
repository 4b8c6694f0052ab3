package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/seogestao/condogest/internal/domain/models"
)

// ListOccurrences returns all incidents, most recent first.
func (r *Repository) ListOccurrences(ctx context.Context) ([]models.Occurrence, error) {
	cur, err := r.col(colOccurrences).Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list occurrences: %w", err)
	}

	var out []models.Occurrence
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode occurrences: %w", err)
	}
	return out, nil
}

// CreateOccurrence inserts an incident stamped with the creation time.
func (r *Repository) CreateOccurrence(ctx context.Context, o models.Occurrence) (models.Occurrence, error) {
	o.ID = primitive.NewObjectID().Hex()
	o.Date = time.Now().UTC().Format(time.RFC3339)
	if _, err := r.col(colOccurrences).InsertOne(ctx, o); err != nil {
		return models.Occurrence{}, fmt.Errorf("insert occurrence: %w", err)
	}
	return o, nil
}

// UpdateOccurrenceStatus moves an incident through its handling states.
func (r *Repository) UpdateOccurrenceStatus(ctx context.Context, id string, status models.OccurrenceStatus) (models.Occurrence, error) {
	var updated models.Occurrence
	err := r.col(colOccurrences).FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status}},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&updated)
	if err != nil {
		return models.Occurrence{}, fmt.Errorf("update occurrence %s: %w", id, err)
	}
	return updated, nil
}

// ListVisitors returns the visitor log, latest entries first.
func (r *Repository) ListVisitors(ctx context.Context) ([]models.Visitor, error) {
	cur, err := r.col(colVisitors).Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "entry_time", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list visitors: %w", err)
	}

	var out []models.Visitor
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode visitors: %w", err)
	}
	return out, nil
}

// CreateVisitor registers an entry in the visitor log.
func (r *Repository) CreateVisitor(ctx context.Context, v models.Visitor) (models.Visitor, error) {
	v.ID = primitive.NewObjectID().Hex()
	if _, err := r.col(colVisitors).InsertOne(ctx, v); err != nil {
		return models.Visitor{}, fmt.Errorf("insert visitor: %w", err)
	}
	return v, nil
}

// MarkVisitorExit stamps the exit time and flips the visitor to OUT.
func (r *Repository) MarkVisitorExit(ctx context.Context, id string) (models.Visitor, error) {
	update := bson.M{"$set": bson.M{
		"status":    models.VisitorOut,
		"exit_time": time.Now().UTC().Format(time.RFC3339),
	}}

	var updated models.Visitor
	err := r.col(colVisitors).FindOneAndUpdate(ctx, bson.M{"_id": id}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&updated)
	if err != nil {
		return models.Visitor{}, fmt.Errorf("mark visitor exit %s: %w", id, err)
	}
	return updated, nil
}

// ListCommonAreas returns the bookable facilities.
func (r *Repository) ListCommonAreas(ctx context.Context) ([]models.CommonArea, error) {
	cur, err := r.col(colCommonAreas).Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list common areas: %w", err)
	}

	var out []models.CommonArea
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode common areas: %w", err)
	}
	return out, nil
}

// CreateCommonArea inserts a facility.
func (r *Repository) CreateCommonArea(ctx context.Context, a models.CommonArea) (models.CommonArea, error) {
	a.ID = primitive.NewObjectID().Hex()
	if _, err := r.col(colCommonAreas).InsertOne(ctx, a); err != nil {
		return models.CommonArea{}, fmt.Errorf("insert common area: %w", err)
	}
	return a, nil
}

// UpdateCommonArea overwrites a facility's fields.
func (r *Repository) UpdateCommonArea(ctx context.Context, id string, a models.CommonArea) (models.CommonArea, error) {
	update := bson.M{"$set": bson.M{
		"name":     a.Name,
		"capacity": a.Capacity,
		"price":    a.Price,
		"rules":    a.Rules,
	}}

	var updated models.CommonArea
	err := r.col(colCommonAreas).FindOneAndUpdate(ctx, bson.M{"_id": id}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&updated)
	if err != nil {
		return models.CommonArea{}, fmt.Errorf("update common area %s: %w", id, err)
	}
	return updated, nil
}

// DeleteCommonArea removes a facility.
func (r *Repository) DeleteCommonArea(ctx context.Context, id string) error {
	if _, err := r.col(colCommonAreas).DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("delete common area %s: %w", id, err)
	}
	return nil
}

// ListBookings returns all reservations.
func (r *Repository) ListBookings(ctx context.Context) ([]models.Booking, error) {
	cur, err := r.col(colBookings).Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	var out []models.Booking
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode bookings: %w", err)
	}
	return out, nil
}

// CreateBooking reserves a common area.
func (r *Repository) CreateBooking(ctx context.Context, b models.Booking) (models.Booking, error) {
	b.ID = primitive.NewObjectID().Hex()
	if _, err := r.col(colBookings).InsertOne(ctx, b); err != nil {
		return models.Booking{}, fmt.Errorf("insert booking: %w", err)
	}
	return b, nil
}
