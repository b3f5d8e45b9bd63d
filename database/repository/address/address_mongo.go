package addressRepo

import (
	"context"
	"fmt"
	"time"

	"cleancare/database"
	"cleancare/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoAddressRepo implements AddressRepository using MongoDB.
type MongoAddressRepo struct {
	coll *mongo.Collection
}

// NewMongoAddressRepo creates a new instance of AddressRepository using MongoDB.
func NewMongoAddressRepo() AddressRepository {
	coll := database.MongoClient.Database("cleancare").Collection("addresses")
	repo := &MongoAddressRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoAddressRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Insert stores a new address document.
func (r *MongoAddressRepo) Insert(addr *models.Address) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	addr.CreatedAt = now
	addr.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, addr); err != nil {
		return fmt.Errorf("failed to insert address: %w", err)
	}
	return nil
}

// Update replaces an existing address document by id.
func (r *MongoAddressRepo) Update(addr *models.Address) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	addr.UpdatedAt = time.Now()
	filter := bson.M{"id": addr.ID, "userId": addr.UserID}
	update := bson.M{"$set": addr}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update address with id %s: %w", addr.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("address with id %s: %w", addr.ID, ErrNotFound)
	}
	return nil
}

// GetByID retrieves one of the user's addresses.
func (r *MongoAddressRepo) GetByID(userID, id string) (*models.Address, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var addr models.Address
	err := r.coll.FindOne(ctx, bson.M{"id": id, "userId": userID}).Decode(&addr)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch address with id %s: %w", id, err)
	}
	return &addr, nil
}

// ListByUser retrieves all addresses for a user in creation order.
func (r *MongoAddressRepo) ListByUser(userID string) ([]models.Address, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve addresses for user %s: %w", userID, err)
	}
	defer cursor.Close(ctx)

	var addrs []models.Address
	for cursor.Next(ctx) {
		var a models.Address
		if err := cursor.Decode(&a); err != nil {
			return nil, fmt.Errorf("failed to decode address: %w", err)
		}
		addrs = append(addrs, a)
	}
	return addrs, nil
}
