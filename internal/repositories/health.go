package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/atria-app/web-mobile-connect/internal/logger"
)

// HealthReadRepository exercises a trivial store operation so the health
// endpoint can verify connectivity.
type HealthReadRepository struct {
	db *mongo.Database
}

func NewHealthReadRepository(db *mongo.Database) *HealthReadRepository {
	return &HealthReadRepository{db: db}
}

// ListCollectionNames lists the database's collections.
func (r *HealthReadRepository) ListCollectionNames(ctx context.Context) ([]string, error) {
	names, err := r.db.ListCollectionNames(ctx, bson.M{})

	logger.Log.Infow("list collection names",
		"database", r.db.Name(),
		"count", len(names),
		"error", err,
	)

	return names, err
}
