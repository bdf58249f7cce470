package repository

import (
	"context"
	"time"

	"airport-ops-service/internal/domain/entity"
	"airport-ops-service/internal/domain/repository"
	"airport-ops-service/pkg/apperr"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoGateRepository implements GateRepository
type MongoGateRepository struct {
	collection *mongo.Collection
}

// NewMongoGateRepository creates a new gate repository
func NewMongoGateRepository(db *mongo.Database) repository.GateRepository {
	collection := db.Collection("gates")

	// Unique index on code backs the pre-check uniqueness query
	ctx := context.Background()
	codeIndex := mongo.IndexModel{
		Keys:    bson.M{"code": 1},
		Options: options.Index().SetUnique(true),
	}
	collection.Indexes().CreateOne(ctx, codeIndex)

	return &MongoGateRepository{
		collection: collection,
	}
}

// Insert saves a new gate, assigning its id and timestamps
func (r *MongoGateRepository) Insert(ctx context.Context, gate *entity.Gate) error {
	now := time.Now()
	gate.ID = primitive.NewObjectID().Hex()
	gate.CreatedAt = now
	gate.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, gate)
	if mongo.IsDuplicateKeyError(err) {
		return apperr.Conflict("a gate with this code already exists")
	}
	return err
}

// FindAll returns all gates
func (r *MongoGateRepository) FindAll(ctx context.Context) ([]*entity.Gate, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var gates []*entity.Gate
	if err := cursor.All(ctx, &gates); err != nil {
		return nil, err
	}
	return gates, nil
}

// FindByID finds a gate by id
func (r *MongoGateRepository) FindByID(ctx context.Context, id string) (*entity.Gate, error) {
	var gate entity.Gate
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&gate)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &gate, nil
}

// FindByCode finds a gate by its code, optionally excluding one document
func (r *MongoGateRepository) FindByCode(ctx context.Context, code, excludeID string) (*entity.Gate, error) {
	filter := bson.M{"code": code}
	if excludeID != "" {
		filter["_id"] = bson.M{"$ne": excludeID}
	}

	var gate entity.Gate
	err := r.collection.FindOne(ctx, filter).Decode(&gate)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &gate, nil
}

// Update replaces the stored fields of an existing gate
func (r *MongoGateRepository) Update(ctx context.Context, gate *entity.Gate) error {
	gate.UpdatedAt = time.Now()

	update := bson.M{"$set": bson.M{
		"code":      gate.Code,
		"available": gate.Available,
		"updatedAt": gate.UpdatedAt,
	}}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": gate.ID}, update)
	if mongo.IsDuplicateKeyError(err) {
		return apperr.Conflict("a gate with this code already exists")
	}
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperr.NotFound("boarding gate not found")
	}
	return nil
}

// SetAvailability writes the availability flag unconditionally
func (r *MongoGateRepository) SetAvailability(ctx context.Context, id string, available bool) error {
	_, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"available": available,
			"updatedAt": time.Now(),
		}},
	)
	return err
}

// ClaimIfAvailable flips the gate to unavailable only when it is currently
// available. The availability predicate in the filter makes the
// read-modify-write a single compare-and-swap, so two concurrent claims on
// the same gate cannot both succeed.
func (r *MongoGateRepository) ClaimIfAvailable(ctx context.Context, id string) (bool, error) {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id, "available": true},
		bson.M{"$set": bson.M{
			"available": false,
			"updatedAt": time.Now(),
		}},
	)
	if err != nil {
		return false, err
	}
	return result.MatchedCount > 0, nil
}

// Delete removes a gate by id
func (r *MongoGateRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return apperr.NotFound("boarding gate not found")
	}
	return nil
}
