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

// MongoPassengerRepository implements PassengerRepository
type MongoPassengerRepository struct {
	collection *mongo.Collection
}

// NewMongoPassengerRepository creates a new passenger repository
func NewMongoPassengerRepository(db *mongo.Database) repository.PassengerRepository {
	collection := db.Collection("passengers")

	ctx := context.Background()

	// Unique index on cpf backs the pre-check uniqueness query
	cpfIndex := mongo.IndexModel{
		Keys:    bson.M{"cpf": 1},
		Options: options.Index().SetUnique(true),
	}

	// Index on flightId for the per-flight passenger lookups
	flightIndex := mongo.IndexModel{
		Keys: bson.M{"flightId": 1},
	}

	collection.Indexes().CreateMany(ctx, []mongo.IndexModel{cpfIndex, flightIndex})

	return &MongoPassengerRepository{
		collection: collection,
	}
}

// Insert saves a new passenger, assigning its id and timestamps
func (r *MongoPassengerRepository) Insert(ctx context.Context, passenger *entity.Passenger) error {
	now := time.Now()
	passenger.ID = primitive.NewObjectID().Hex()
	passenger.CreatedAt = now
	passenger.UpdatedAt = now

	if passenger.CheckInStatus == "" {
		passenger.CheckInStatus = entity.CheckInPending
	}

	_, err := r.collection.InsertOne(ctx, passenger)
	if mongo.IsDuplicateKeyError(err) {
		return apperr.Conflict("a passenger with this CPF already exists")
	}
	return err
}

// FindAll returns all passengers
func (r *MongoPassengerRepository) FindAll(ctx context.Context) ([]*entity.Passenger, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var passengers []*entity.Passenger
	if err := cursor.All(ctx, &passengers); err != nil {
		return nil, err
	}
	return passengers, nil
}

// FindByID finds a passenger by id
func (r *MongoPassengerRepository) FindByID(ctx context.Context, id string) (*entity.Passenger, error) {
	var passenger entity.Passenger
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&passenger)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &passenger, nil
}

// FindByCPF finds a passenger by CPF, optionally excluding one document
func (r *MongoPassengerRepository) FindByCPF(ctx context.Context, cpf, excludeID string) (*entity.Passenger, error) {
	filter := bson.M{"cpf": cpf}
	if excludeID != "" {
		filter["_id"] = bson.M{"$ne": excludeID}
	}

	var passenger entity.Passenger
	err := r.collection.FindOne(ctx, filter).Decode(&passenger)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &passenger, nil
}

// FindByFlight returns all passengers referencing the given flight
func (r *MongoPassengerRepository) FindByFlight(ctx context.Context, flightID string) ([]*entity.Passenger, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"flightId": flightID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var passengers []*entity.Passenger
	if err := cursor.All(ctx, &passengers); err != nil {
		return nil, err
	}
	return passengers, nil
}

// Update replaces the stored fields of an existing passenger
func (r *MongoPassengerRepository) Update(ctx context.Context, passenger *entity.Passenger) error {
	passenger.UpdatedAt = time.Now()

	update := bson.M{"$set": bson.M{
		"name":          passenger.Name,
		"cpf":           passenger.CPF,
		"flightId":      passenger.FlightID,
		"checkInStatus": passenger.CheckInStatus,
		"updatedAt":     passenger.UpdatedAt,
	}}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": passenger.ID}, update)
	if mongo.IsDuplicateKeyError(err) {
		return apperr.Conflict("a passenger with this CPF already exists")
	}
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperr.NotFound("passenger not found")
	}
	return nil
}

// DetachAllFromFlight clears the flight reference on every passenger of the
// flight and resets their check-in to pending (cascading detach, not delete)
func (r *MongoPassengerRepository) DetachAllFromFlight(ctx context.Context, flightID string) error {
	_, err := r.collection.UpdateMany(
		ctx,
		bson.M{"flightId": flightID},
		bson.M{"$set": bson.M{
			"flightId":      nil,
			"checkInStatus": entity.CheckInPending,
			"updatedAt":     time.Now(),
		}},
	)
	return err
}

// Delete removes a passenger by id
func (r *MongoPassengerRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return apperr.NotFound("passenger not found")
	}
	return nil
}
