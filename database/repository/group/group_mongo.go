package groupRepo

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

// MongoGroupRepo implements GroupRepository using MongoDB.
type MongoGroupRepo struct {
	coll *mongo.Collection
}

// NewMongoGroupRepo creates a new instance of GroupRepository using MongoDB.
func NewMongoGroupRepo() GroupRepository {
	repo := &MongoGroupRepo{coll: database.Collection("groups")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoGroupRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "members", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new group document.
func (r *MongoGroupRepo) Create(g *models.Group) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	g.CreatedAt = now
	g.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, g); err != nil {
		return fmt.Errorf("failed to create group: %w", err)
	}
	return nil
}

// Update modifies an existing group document.
func (r *MongoGroupRepo) Update(g *models.Group) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	g.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": g.ID}, bson.M{"$set": g})
	if err != nil {
		return fmt.Errorf("failed to update group with id %s: %w", g.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("group with id %s not found", g.ID)
	}
	return nil
}

// Delete removes a group document by its ID.
func (r *MongoGroupRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete group with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("group with id %s not found", id)
	}
	return nil
}

// GetByID retrieves a group by its unique ID. Returns (nil, nil) when absent.
func (r *MongoGroupRepo) GetByID(id string) (*models.Group, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var g models.Group
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&g); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch group with id %s: %w", id, err)
	}
	return &g, nil
}

// ListForUser retrieves all groups userID is a member of.
func (r *MongoGroupRepo) ListForUser(userID string) ([]models.Group, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"members": userID})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve groups for user %s: %w", userID, err)
	}
	defer cursor.Close(ctx)

	var groups []models.Group
	if err := cursor.All(ctx, &groups); err != nil {
		return nil, fmt.Errorf("failed to decode groups: %w", err)
	}
	return groups, nil
}

// AddInvite records a pending invitation on the group document.
func (r *MongoGroupRepo) AddInvite(groupID, userID string) error {
	return r.applyUpdate(groupID, bson.M{"$addToSet": bson.M{"invited": userID}})
}

// RemoveInvite clears a pending invitation.
func (r *MongoGroupRepo) RemoveInvite(groupID, userID string) error {
	return r.applyUpdate(groupID, bson.M{"$pull": bson.M{"invited": userID}})
}

// AddMember adds userID to the member list and clears any pending invite in
// the same update, so accept is a single atomic document change.
func (r *MongoGroupRepo) AddMember(groupID, userID string) error {
	return r.applyUpdate(groupID, bson.M{
		"$addToSet": bson.M{"members": userID},
		"$pull":     bson.M{"invited": userID},
	})
}

// RemoveMember removes userID from the member list.
func (r *MongoGroupRepo) RemoveMember(groupID, userID string) error {
	return r.applyUpdate(groupID, bson.M{"$pull": bson.M{"members": userID}})
}

// SetOuting applies a partial $set update for outing scheduling fields.
func (r *MongoGroupRepo) SetOuting(groupID string, fields map[string]any) error {
	return r.applyUpdate(groupID, bson.M{"$set": fields})
}

func (r *MongoGroupRepo) applyUpdate(groupID string, update bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if set, ok := update["$set"].(bson.M); ok {
		set["updatedAt"] = time.Now()
	} else if set, ok := update["$set"].(map[string]any); ok {
		set["updatedAt"] = time.Now()
	} else {
		update["$set"] = bson.M{"updatedAt": time.Now()}
	}

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": groupID}, update)
	if err != nil {
		return fmt.Errorf("failed to update group with id %s: %w", groupID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("group with id %s not found", groupID)
	}
	return nil
}
