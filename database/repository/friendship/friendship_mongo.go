package friendshipRepo

import (
	"context"
	"fmt"
	"time"

	"gatherly/database"
	"gatherly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoFriendshipRepo implements FriendshipRepository using MongoDB.
type MongoFriendshipRepo struct {
	coll *mongo.Collection
}

// NewMongoFriendshipRepo creates a new instance of FriendshipRepository using MongoDB.
func NewMongoFriendshipRepo() FriendshipRepository {
	repo := &MongoFriendshipRepo{coll: database.Collection("friendships")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoFriendshipRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "fromId", Value: 1}}},
		{Keys: bson.D{{Key: "toId", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new friendship document.
func (r *MongoFriendshipRepo) Create(f *models.Friendship) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	f.CreatedAt = now
	f.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, f); err != nil {
		return fmt.Errorf("failed to create friendship: %w", err)
	}
	return nil
}

// Delete removes a friendship document by its ID.
func (r *MongoFriendshipRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete friendship with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("friendship with id %s not found", id)
	}
	return nil
}

// GetByID retrieves a friendship by its unique ID. Returns (nil, nil) when absent.
func (r *MongoFriendshipRepo) GetByID(id string) (*models.Friendship, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var f models.Friendship
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&f); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch friendship with id %s: %w", id, err)
	}
	return &f, nil
}

// GetBetween retrieves the friendship linking two users in either direction.
// Returns (nil, nil) when no such friendship exists.
func (r *MongoFriendshipRepo) GetBetween(userA, userB string) (*models.Friendship, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"$or": bson.A{
		bson.M{"fromId": userA, "toId": userB},
		bson.M{"fromId": userB, "toId": userA},
	}}

	var f models.Friendship
	if err := r.coll.FindOne(ctx, filter).Decode(&f); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch friendship between %s and %s: %w", userA, userB, err)
	}
	return &f, nil
}

// ListForUser retrieves all friendships where userID is either side.
func (r *MongoFriendshipRepo) ListForUser(userID string) ([]models.Friendship, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{"$or": bson.A{
		bson.M{"fromId": userID},
		bson.M{"toId": userID},
	}}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve friendships for user %s: %w", userID, err)
	}
	defer cursor.Close(ctx)

	var friendships []models.Friendship
	if err := cursor.All(ctx, &friendships); err != nil {
		return nil, fmt.Errorf("failed to decode friendships: %w", err)
	}
	return friendships, nil
}

// SetStatus updates the status field of one friendship document.
func (r *MongoFriendshipRepo) SetStatus(id string, status models.FriendStatus) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update friendship with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("friendship with id %s not found", id)
	}
	return nil
}
