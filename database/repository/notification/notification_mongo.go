package notificationRepo

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

// MongoNotificationRepo implements NotificationRepository using MongoDB.
type MongoNotificationRepo struct {
	coll *mongo.Collection
}

// NewMongoNotificationRepo creates a new instance of NotificationRepository using MongoDB.
func NewMongoNotificationRepo() NotificationRepository {
	repo := &MongoNotificationRepo{coll: database.Collection("notifications")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoNotificationRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "timestamp", Value: -1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new notification document.
func (r *MongoNotificationRepo) Create(n *models.Notification) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if n.Timestamp.IsZero() {
		n.Timestamp = time.Now()
	}

	if _, err := r.coll.InsertOne(ctx, n); err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

// Delete removes one notification owned by userID. A hard delete, not a soft one.
func (r *MongoNotificationRepo) Delete(userID, notificationID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"userId": userID, "id": notificationID})
	if err != nil {
		return fmt.Errorf("failed to delete notification %s: %w", notificationID, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("notification %s not found for user %s", notificationID, userID)
	}
	return nil
}

// ListForUser retrieves all notifications of a user as an unordered keyed map,
// the raw shape the feed builder consumes.
func (r *MongoNotificationRepo) ListForUser(userID string) (map[string]models.Notification, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve notifications for user %s: %w", userID, err)
	}
	defer cursor.Close(ctx)

	raw := make(map[string]models.Notification)
	for cursor.Next(ctx) {
		var n models.Notification
		if err := cursor.Decode(&n); err != nil {
			return nil, fmt.Errorf("failed to decode notification: %w", err)
		}
		raw[n.ID] = n
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate notifications: %w", err)
	}
	return raw, nil
}

// MarkRead sets the read flag on exactly one notification. Marking an
// already-read notification matches the document and changes nothing, so the
// operation is idempotent.
func (r *MongoNotificationRepo) MarkRead(userID, notificationID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"userId": userID, "id": notificationID}
	result, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": bson.M{"read": true}})
	if err != nil {
		return fmt.Errorf("failed to mark notification %s read: %w", notificationID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("notification %s not found for user %s", notificationID, userID)
	}
	return nil
}

// DeleteReadOlderThan prunes read notifications older than the cutoff.
// Used by the background worker.
func (r *MongoNotificationRepo) DeleteReadOlderThan(cutoffDays int) (int64, error) {
	ctx, cancel := newContext(30 * time.Second)
	defer cancel()

	cutoff := time.Now().AddDate(0, 0, -cutoffDays)
	result, err := r.coll.DeleteMany(ctx, bson.M{"read": true, "timestamp": bson.M{"$lt": cutoff}})
	if err != nil {
		return 0, fmt.Errorf("failed to prune notifications: %w", err)
	}
	return result.DeletedCount, nil
}
