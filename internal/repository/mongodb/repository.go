package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names at the gateway boundary.
const (
	colFractions   = "fractions"
	colTransactions = "transactions"
	colInspections = "inspections"
	colAssemblies  = "assemblies"
	colOccurrences = "occurrences"
	colVisitors    = "visitors"
	colCommonAreas = "common_areas"
	colBookings    = "bookings"
	colProfiles    = "profiles"
	colSnapshots   = "daily_snapshots"
)

// Repository is the hosted persistence gateway. Every entity except staff is
// stored here; sub-structures such as assembly resolutions and attendees are
// embedded in their parent document, so a multi-entity action is persisted as
// a single-document update.
type Repository struct {
	client *mongo.Client
	dbName string
}

// NewRepository connects to MongoDB and verifies the connection.
func NewRepository(ctx context.Context, uri string, dbName string) (*Repository, error) {
	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &Repository{client: client, dbName: dbName}, nil
}

func (r *Repository) col(name string) *mongo.Collection {
	return r.client.Database(r.dbName).Collection(name)
}

// Close closes the MongoDB connection.
func (r *Repository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}
