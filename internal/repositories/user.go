package repositories

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/atria-app/web-mobile-connect/internal/logger"
	"github.com/atria-app/web-mobile-connect/internal/models"
)

const usersCollection = "users"

// UserReadRepository reads user documents.
type UserReadRepository struct {
	db *mongo.Database
}

func NewUserReadRepository(db *mongo.Database) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByEmail returns the user with the given email, or nil when none exists.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getOne(ctx, bson.M{"email": email})
}

// GetByID returns the user with the given id, or nil when none exists.
func (r *UserReadRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	return r.getOne(ctx, bson.M{"id": id})
}

func (r *UserReadRepository) getOne(ctx context.Context, filter bson.M) (*models.User, error) {
	var user models.User
	err := r.db.Collection(usersCollection).FindOne(ctx, filter).Decode(&user)

	logger.Log.Infow("find user",
		"collection", usersCollection,
		"filter", filter,
		"error", err,
	)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// List returns up to limit users, newest created_at first, optionally
// filtered by platform and active flag.
func (r *UserReadRepository) List(ctx context.Context, platform *string, activeOnly bool, limit int64) ([]models.User, error) {
	filter := bson.M{}
	if platform != nil && *platform != "" {
		filter["platform"] = *platform
	}
	if activeOnly {
		filter["is_active"] = true
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)

	cur, err := r.db.Collection(usersCollection).Find(ctx, filter, opts)
	if err != nil {
		logger.Log.Infow("find users",
			"collection", usersCollection,
			"filter", filter,
			"error", err,
		)
		return nil, err
	}
	defer cur.Close(ctx)

	users := []models.User{}
	err = cur.All(ctx, &users)

	logger.Log.Infow("find users",
		"collection", usersCollection,
		"filter", filter,
		"limit", limit,
		"count", len(users),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return users, nil
}

// CountAll returns the total number of users.
func (r *UserReadRepository) CountAll(ctx context.Context) (int64, error) {
	return r.count(ctx, bson.M{})
}

// CountActive returns the number of users with is_active=true.
func (r *UserReadRepository) CountActive(ctx context.Context) (int64, error) {
	return r.count(ctx, bson.M{"is_active": true})
}

// CountByPlatform returns the number of users on the given platform.
func (r *UserReadRepository) CountByPlatform(ctx context.Context, platform string) (int64, error) {
	return r.count(ctx, bson.M{"platform": platform})
}

func (r *UserReadRepository) count(ctx context.Context, filter bson.M) (int64, error) {
	n, err := r.db.Collection(usersCollection).CountDocuments(ctx, filter)

	logger.Log.Infow("count users",
		"collection", usersCollection,
		"filter", filter,
		"result", n,
		"error", err,
	)

	return n, err
}

// UserWriteRepository persists and mutates user documents.
type UserWriteRepository struct {
	db *mongo.Database
}

func NewUserWriteRepository(db *mongo.Database) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// EnsureIndexes creates the unique index on email. The service layer checks
// for duplicates before inserting; the index backs that check up at the
// store level.
func (r *UserWriteRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.db.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})

	logger.Log.Infow("ensure user indexes",
		"collection", usersCollection,
		"error", err,
	)

	return err
}

// Save inserts a user and reports whether the store acknowledged the write.
func (r *UserWriteRepository) Save(ctx context.Context, user models.User) (bool, error) {
	res, err := r.db.Collection(usersCollection).InsertOne(ctx, user)

	acknowledged := err == nil && res != nil && res.InsertedID != nil
	logger.Log.Infow("insert user",
		"collection", usersCollection,
		"id", user.ID,
		"email", user.Email,
		"acknowledged", acknowledged,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return acknowledged, nil
}

// TouchActivity sets last_active on the user with the given id and returns
// the number of matched documents (zero when the id is unknown).
func (r *UserWriteRepository) TouchActivity(ctx context.Context, id string, at time.Time) (int64, error) {
	res, err := r.db.Collection(usersCollection).UpdateOne(ctx,
		bson.M{"id": id},
		bson.M{"$set": bson.M{"last_active": at}},
	)

	var matched int64
	if res != nil {
		matched = res.MatchedCount
	}

	logger.Log.Infow("touch user activity",
		"collection", usersCollection,
		"id", id,
		"matched", matched,
		"error", err,
	)

	if err != nil {
		return 0, err
	}
	return matched, nil
}
