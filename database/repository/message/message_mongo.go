package messageRepo

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

// MongoMessageRepo implements MessageRepository using MongoDB.
type MongoMessageRepo struct {
	coll *mongo.Collection
}

// NewMongoMessageRepo creates a new instance of MessageRepository using MongoDB.
func NewMongoMessageRepo() MessageRepository {
	repo := &MongoMessageRepo{coll: database.Collection("groupMessages")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoMessageRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "groupId", Value: 1}, {Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "groupId", Value: 1}, {Key: "createdAt", Value: -1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new message document.
func (r *MongoMessageRepo) Create(m *models.Message) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}

	if _, err := r.coll.InsertOne(ctx, m); err != nil {
		return fmt.Errorf("failed to create message: %w", err)
	}
	return nil
}

// Delete removes a message document.
func (r *MongoMessageRepo) Delete(groupID, messageID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"groupId": groupID, "id": messageID})
	if err != nil {
		return fmt.Errorf("failed to delete message %s: %w", messageID, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("message %s not found in group %s", messageID, groupID)
	}
	return nil
}

// GetByID retrieves one message snapshot. Returns (nil, nil) when absent.
func (r *MongoMessageRepo) GetByID(groupID, messageID string) (*models.Message, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var m models.Message
	if err := r.coll.FindOne(ctx, bson.M{"groupId": groupID, "id": messageID}).Decode(&m); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch message %s: %w", messageID, err)
	}
	return &m, nil
}

// ListForGroup retrieves the most recent messages of a group, newest last.
func (r *MongoMessageRepo) ListForGroup(groupID string, limit int64) ([]models.Message, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := r.coll.Find(ctx, bson.M{"groupId": groupID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve messages for group %s: %w", groupID, err)
	}
	defer cursor.Close(ctx)

	var messages []models.Message
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, fmt.Errorf("failed to decode messages: %w", err)
	}

	// Reverse into chronological order for the client.
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}

// ReplacePoll overwrites the whole poll sub-document of a message.
func (r *MongoMessageRepo) ReplacePoll(groupID, messageID string, poll models.PollRecord) error {
	return r.setField(groupID, messageID, "poll", poll)
}

// ReplaceReactions overwrites the whole reactions map of a message. An empty
// map removes the field entirely so absent and empty are indistinguishable.
func (r *MongoMessageRepo) ReplaceReactions(groupID, messageID string, reactions models.ReactionMap) error {
	if len(reactions) == 0 {
		ctx, cancel := newContext(5 * time.Second)
		defer cancel()

		filter := bson.M{"groupId": groupID, "id": messageID}
		result, err := r.coll.UpdateOne(ctx, filter, bson.M{"$unset": bson.M{"reactions": ""}})
		if err != nil {
			return fmt.Errorf("failed to clear reactions on message %s: %w", messageID, err)
		}
		if result.MatchedCount == 0 {
			return fmt.Errorf("message %s not found in group %s", messageID, groupID)
		}
		return nil
	}
	return r.setField(groupID, messageID, "reactions", reactions)
}

func (r *MongoMessageRepo) setField(groupID, messageID, field string, value any) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"groupId": groupID, "id": messageID}
	result, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": bson.M{field: value}})
	if err != nil {
		return fmt.Errorf("failed to update %s on message %s: %w", field, messageID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("message %s not found in group %s", messageID, groupID)
	}
	return nil
}
