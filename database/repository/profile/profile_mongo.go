package profileRepo

import (
	"context"
	"fmt"
	"time"

	"lillia/database"
	"lillia/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoProfileRepo implements ProfileRepository using MongoDB.
type MongoProfileRepo struct {
	coll *mongo.Collection
}

// NewMongoProfileRepo creates a new instance of ProfileRepository using MongoDB.
func NewMongoProfileRepo() ProfileRepository {
	coll := database.MongoClient.Database("lillia").Collection("profiles")
	repo := &MongoProfileRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoProfileRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "details.email", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new profile document.
func (r *MongoProfileRepo) Create(profile *models.Profile) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	profile.CreatedAt = now
	profile.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, profile); err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}
	return nil
}

// GetByID retrieves a profile by its unique ID.
func (r *MongoProfileRepo) GetByID(id string) (*models.Profile, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var profile models.Profile
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&profile); err != nil {
		return nil, fmt.Errorf("failed to fetch profile with id %s: %w", id, err)
	}
	return &profile, nil
}

// GetByEmail retrieves a profile by the onboarding email. An absent profile
// is not an error; callers use this as an existence check.
func (r *MongoProfileRepo) GetByEmail(email string) (*models.Profile, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var profile models.Profile
	if err := r.coll.FindOne(ctx, bson.M{"details.email": email}).Decode(&profile); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch profile with email %s: %w", email, err)
	}
	return &profile, nil
}

// Delete removes a profile document by its ID.
func (r *MongoProfileRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete profile with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("profile with id %s not found", id)
	}
	return nil
}
