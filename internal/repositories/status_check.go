package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/atria-app/web-mobile-connect/internal/logger"
	"github.com/atria-app/web-mobile-connect/internal/models"
)

const statusChecksCollection = "status_checks"

// StatusCheckWriteRepository persists status checks. The collection is
// append-only; there is no update or delete path.
type StatusCheckWriteRepository struct {
	db *mongo.Database
}

func NewStatusCheckWriteRepository(db *mongo.Database) *StatusCheckWriteRepository {
	return &StatusCheckWriteRepository{db: db}
}

// Save inserts a status check and reports whether the store acknowledged
// the write.
func (r *StatusCheckWriteRepository) Save(ctx context.Context, check models.StatusCheck) (bool, error) {
	res, err := r.db.Collection(statusChecksCollection).InsertOne(ctx, check)

	acknowledged := err == nil && res != nil && res.InsertedID != nil
	logger.Log.Infow("insert status_check",
		"collection", statusChecksCollection,
		"id", check.ID,
		"acknowledged", acknowledged,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return acknowledged, nil
}

// StatusCheckReadRepository reads status checks.
type StatusCheckReadRepository struct {
	db *mongo.Database
}

func NewStatusCheckReadRepository(db *mongo.Database) *StatusCheckReadRepository {
	return &StatusCheckReadRepository{db: db}
}

// List returns up to limit status checks, newest timestamp first, optionally
// filtered by platform.
func (r *StatusCheckReadRepository) List(ctx context.Context, platform *string, limit int64) ([]models.StatusCheck, error) {
	filter := bson.M{}
	if platform != nil && *platform != "" {
		filter["platform"] = *platform
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(limit)

	cur, err := r.db.Collection(statusChecksCollection).Find(ctx, filter, opts)
	if err != nil {
		logger.Log.Infow("find status_checks",
			"collection", statusChecksCollection,
			"filter", filter,
			"error", err,
		)
		return nil, err
	}
	defer cur.Close(ctx)

	checks := []models.StatusCheck{}
	err = cur.All(ctx, &checks)

	logger.Log.Infow("find status_checks",
		"collection", statusChecksCollection,
		"filter", filter,
		"limit", limit,
		"count", len(checks),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return checks, nil
}

// ListSince returns up to limit status checks with a timestamp at or after
// since. A nil since matches everything.
func (r *StatusCheckReadRepository) ListSince(ctx context.Context, since *time.Time, limit int64) ([]models.StatusCheck, error) {
	filter := bson.M{}
	if since != nil {
		filter["timestamp"] = bson.M{"$gte": *since}
	}

	cur, err := r.db.Collection(statusChecksCollection).Find(ctx, filter, options.Find().SetLimit(limit))
	if err != nil {
		logger.Log.Infow("find status_checks since",
			"collection", statusChecksCollection,
			"filter", filter,
			"error", err,
		)
		return nil, err
	}
	defer cur.Close(ctx)

	checks := []models.StatusCheck{}
	err = cur.All(ctx, &checks)

	logger.Log.Infow("find status_checks since",
		"collection", statusChecksCollection,
		"filter", filter,
		"limit", limit,
		"count", len(checks),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return checks, nil
}

// Count returns the total number of status checks.
func (r *StatusCheckReadRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.db.Collection(statusChecksCollection).CountDocuments(ctx, bson.M{})

	logger.Log.Infow("count status_checks",
		"collection", statusChecksCollection,
		"result", n,
		"error", err,
	)

	return n, err
}
