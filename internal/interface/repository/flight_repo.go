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

// MongoFlightRepository implements FlightRepository
type MongoFlightRepository struct {
	collection *mongo.Collection
}

// NewMongoFlightRepository creates a new flight repository
func NewMongoFlightRepository(db *mongo.Database) repository.FlightRepository {
	collection := db.Collection("flights")

	// Unique index on flightNumber backs the pre-check uniqueness query
	ctx := context.Background()
	numberIndex := mongo.IndexModel{
		Keys:    bson.M{"flightNumber": 1},
		Options: options.Index().SetUnique(true),
	}

	// Compound index for the daily report query
	departureIndex := mongo.IndexModel{
		Keys: bson.D{
			{Key: "departureTime", Value: 1},
			{Key: "status", Value: 1},
		},
	}

	collection.Indexes().CreateMany(ctx, []mongo.IndexModel{numberIndex, departureIndex})

	return &MongoFlightRepository{
		collection: collection,
	}
}

// Insert saves a new flight, assigning its id and timestamps
func (r *MongoFlightRepository) Insert(ctx context.Context, flight *entity.Flight) error {
	now := time.Now()
	flight.ID = primitive.NewObjectID().Hex()
	flight.CreatedAt = now
	flight.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, flight)
	if mongo.IsDuplicateKeyError(err) {
		return apperr.Conflict("a flight with this number already exists")
	}
	return err
}

// FindAll returns all flights
func (r *MongoFlightRepository) FindAll(ctx context.Context) ([]*entity.Flight, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var flights []*entity.Flight
	if err := cursor.All(ctx, &flights); err != nil {
		return nil, err
	}
	return flights, nil
}

// FindByID finds a flight by id
func (r *MongoFlightRepository) FindByID(ctx context.Context, id string) (*entity.Flight, error) {
	var flight entity.Flight
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&flight)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &flight, nil
}

// FindByNumber finds a flight by its number, optionally excluding one document
func (r *MongoFlightRepository) FindByNumber(ctx context.Context, number, excludeID string) (*entity.Flight, error) {
	filter := bson.M{"flightNumber": number}
	if excludeID != "" {
		filter["_id"] = bson.M{"$ne": excludeID}
	}

	var flight entity.Flight
	err := r.collection.FindOne(ctx, filter).Decode(&flight)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &flight, nil
}

// FindDepartingBetween returns flights departing in [from, to) with one of
// the given statuses
func (r *MongoFlightRepository) FindDepartingBetween(ctx context.Context, from, to time.Time, statuses []string) ([]*entity.Flight, error) {
	filter := bson.M{
		"departureTime": bson.M{"$gte": from, "$lt": to},
		"status":        bson.M{"$in": statuses},
	}

	cursor, err := r.collection.Find(ctx, filter, &options.FindOptions{
		Sort: bson.D{{Key: "departureTime", Value: 1}},
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var flights []*entity.Flight
	if err := cursor.All(ctx, &flights); err != nil {
		return nil, err
	}
	return flights, nil
}

// Update replaces the stored fields of an existing flight
func (r *MongoFlightRepository) Update(ctx context.Context, flight *entity.Flight) error {
	flight.UpdatedAt = time.Now()

	update := bson.M{"$set": bson.M{
		"flightNumber":  flight.FlightNumber,
		"origin":        flight.Origin,
		"destination":   flight.Destination,
		"departureTime": flight.DepartureTime,
		"arrivalTime":   flight.ArrivalTime,
		"gateId":        flight.GateID,
		"status":        flight.Status,
		"updatedAt":     flight.UpdatedAt,
	}}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": flight.ID}, update)
	if mongo.IsDuplicateKeyError(err) {
		return apperr.Conflict("a flight with this number already exists")
	}
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperr.NotFound("flight not found")
	}
	return nil
}

// Delete removes a flight by id
func (r *MongoFlightRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return apperr.NotFound("flight not found")
	}
	return nil
}
