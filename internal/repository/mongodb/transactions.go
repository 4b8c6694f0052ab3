package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/seogestao/condogest/internal/domain/models"
)

// ListTransactions returns all transactions, most recent first.
func (r *Repository) ListTransactions(ctx context.Context) ([]models.Transaction, error) {
	cur, err := r.col(colTransactions).Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}

	var out []models.Transaction
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode transactions: %w", err)
	}
	return out, nil
}

// CreateTransaction inserts a movement. Transactions are immutable once
// created; no update or delete exists for them.
func (r *Repository) CreateTransaction(ctx context.Context, t models.Transaction) (models.Transaction, error) {
	t.ID = primitive.NewObjectID().Hex()
	if _, err := r.col(colTransactions).InsertOne(ctx, t); err != nil {
		return models.Transaction{}, fmt.Errorf("insert transaction: %w", err)
	}
	return t, nil
}
