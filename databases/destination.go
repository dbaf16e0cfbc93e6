package databases

// go generate: mockery --name DestinationDatabase

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hoplytravel/hoply-api/grouptrip"
	"github.com/hoplytravel/hoply-api/models"
)

const destinationCollectionName = "destinations"

// DestinationDatabase contains the methods to use with the destination catalog collection
type DestinationDatabase interface {
	FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) (*models.Destination, error)
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.Destination, error)
	CountDocuments(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error)
	InsertOne(ctx context.Context, destination models.Destination, opts ...*options.InsertOneOptions) (InsertOneResultHelper, error)
}

type destinationDatabase struct {
	db DatabaseHelper
}

// NewDestinationDatabase initializes a new instance of destination database with the provided db connection
func NewDestinationDatabase(db DatabaseHelper) DestinationDatabase {
	return &destinationDatabase{
		db: db,
	}
}

func (c *destinationDatabase) FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) (*models.Destination, error) {
	destination := &models.Destination{}
	err := c.db.Collection(destinationCollectionName).FindOne(ctx, filter, opts...).Decode(&destination)
	if err != nil {
		return nil, err
	}
	return destination, nil
}

func (c *destinationDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.Destination, error) {
	var destinations []models.Destination
	cur, err := c.db.Collection(destinationCollectionName).Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	err = cur.Decode(&destinations)
	if err != nil {
		return nil, err
	}
	return destinations, nil
}

func (c *destinationDatabase) CountDocuments(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error) {
	return c.db.Collection(destinationCollectionName).CountDocuments(ctx, filter, opts...)
}

func (c *destinationDatabase) InsertOne(ctx context.Context, destination models.Destination, opts ...*options.InsertOneOptions) (InsertOneResultHelper, error) {
	return c.db.Collection(destinationCollectionName).InsertOne(ctx, destination, opts...)
}

// DestinationCatalog adapts the destination collection to the catalog
// interface the group trip service validates votes against.
type DestinationCatalog struct {
	DB DestinationDatabase
}

// NewDestinationCatalog wraps db as a grouptrip.Catalog
func NewDestinationCatalog(db DestinationDatabase) *DestinationCatalog {
	return &DestinationCatalog{DB: db}
}

// Exists reports whether a destination with the given id is cataloged
func (c *DestinationCatalog) Exists(ctx context.Context, destID string) (bool, error) {
	count, err := c.DB.CountDocuments(ctx, bson.M{"_id": destID})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Lookup fetches a single destination by id
func (c *DestinationCatalog) Lookup(ctx context.Context, destID string) (models.Destination, error) {
	destination, err := c.DB.FindOne(ctx, bson.M{"_id": destID})
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Destination{}, grouptrip.ErrDestinationNotFound
		}
		return models.Destination{}, err
	}
	return *destination, nil
}

// List returns the whole catalog
func (c *DestinationCatalog) List(ctx context.Context) ([]models.Destination, error) {
	return c.DB.Find(ctx, bson.D{})
}
