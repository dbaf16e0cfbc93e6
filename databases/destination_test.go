package databases_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hoplytravel/hoply-api/config"
	"github.com/hoplytravel/hoply-api/databases"
	"github.com/hoplytravel/hoply-api/databases/mocks"
	"github.com/hoplytravel/hoply-api/grouptrip"
	"github.com/hoplytravel/hoply-api/models"
)

func TestNewDestinationDatabase(t *testing.T) {
	os.Setenv("DB_URI", "mongodb://127.0.0.1:27017")
	os.Setenv("DB_NAME", "test")
	conf := config.New()

	dbClient, err := databases.NewClient(conf)
	assert.NoError(t, err)

	db := databases.NewDatabase(conf, dbClient)

	destDB := databases.NewDestinationDatabase(db)

	assert.NotEmpty(t, destDB)
}

func TestDestinationDatabase_FindOne(t *testing.T) {

	// define variables for interfaces
	var dbHelper databases.DatabaseHelper
	var collectionHelper databases.CollectionHelper
	var srHelperErr databases.SingleResultHelper
	var srHelperCorrect databases.SingleResultHelper

	// set interfaces implementation to mocked structures
	dbHelper = &mocks.DatabaseHelper{}
	collectionHelper = &mocks.CollectionHelper{}
	srHelperErr = &mocks.SingleResultHelper{}
	srHelperCorrect = &mocks.SingleResultHelper{}

	srHelperErr.(*mocks.SingleResultHelper).
		On("Decode", mock.Anything).
		Return(errors.New("mocked-error"))

	srHelperCorrect.(*mocks.SingleResultHelper).
		On("Decode", mock.Anything).
		Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(**models.Destination)
		(*arg).ID = "bariloche"
	})

	collectionHelper.(*mocks.CollectionHelper).
		On("FindOne", context.Background(), bson.M{"error": true}).
		Return(srHelperErr)

	collectionHelper.(*mocks.CollectionHelper).
		On("FindOne", context.Background(), bson.M{"error": false}).
		Return(srHelperCorrect)

	dbHelper.(*mocks.DatabaseHelper).
		On("Collection", "destinations").Return(collectionHelper)

	destDB := databases.NewDestinationDatabase(dbHelper)

	destination, err := destDB.FindOne(context.Background(), bson.M{"error": true})
	assert.Empty(t, destination)
	assert.EqualError(t, err, "mocked-error")

	destination, err = destDB.FindOne(context.Background(), bson.M{"error": false})
	assert.Equal(t, &models.Destination{ID: "bariloche"}, destination)
	assert.NoError(t, err)
}

func TestDestinationDatabase_Find(t *testing.T) {

	var dbHelper databases.DatabaseHelper
	var collectionHelper databases.CollectionHelper
	var cursorHelperCorrect databases.CursorHelper

	dbHelper = &mocks.DatabaseHelper{}
	collectionHelper = &mocks.CollectionHelper{}
	cursorHelperCorrect = &mocks.CursorHelper{}

	cursorHelperCorrect.(*mocks.CursorHelper).
		On("Decode", mock.Anything).
		Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(*[]models.Destination)
		*arg = []models.Destination{{ID: "mendoza"}, {ID: "salta"}}
	})

	collectionHelper.(*mocks.CollectionHelper).
		On("Find", context.Background(), bson.M{"error": true}).
		Return(nil, errors.New("mocked-error"))

	collectionHelper.(*mocks.CollectionHelper).
		On("Find", context.Background(), bson.M{"error": false}).
		Return(cursorHelperCorrect, nil)

	dbHelper.(*mocks.DatabaseHelper).
		On("Collection", "destinations").Return(collectionHelper)

	destDB := databases.NewDestinationDatabase(dbHelper)

	destinations, err := destDB.Find(context.Background(), bson.M{"error": true})
	assert.Empty(t, destinations)
	assert.EqualError(t, err, "mocked-error")

	destinations, err = destDB.Find(context.Background(), bson.M{"error": false})
	assert.Len(t, destinations, 2)
	assert.NoError(t, err)
}

func TestDestinationCatalog_Exists(t *testing.T) {

	var dbHelper databases.DatabaseHelper
	var collectionHelper databases.CollectionHelper

	dbHelper = &mocks.DatabaseHelper{}
	collectionHelper = &mocks.CollectionHelper{}

	collectionHelper.(*mocks.CollectionHelper).
		On("CountDocuments", context.Background(), bson.M{"_id": "bariloche"}).
		Return(int64(1), nil)

	collectionHelper.(*mocks.CollectionHelper).
		On("CountDocuments", context.Background(), bson.M{"_id": "atlantis"}).
		Return(int64(0), nil)

	dbHelper.(*mocks.DatabaseHelper).
		On("Collection", "destinations").Return(collectionHelper)

	catalog := databases.NewDestinationCatalog(databases.NewDestinationDatabase(dbHelper))

	known, err := catalog.Exists(context.Background(), "bariloche")
	assert.NoError(t, err)
	assert.True(t, known)

	known, err = catalog.Exists(context.Background(), "atlantis")
	assert.NoError(t, err)
	assert.False(t, known)
}

func TestDestinationCatalog_LookupNotFound(t *testing.T) {

	var dbHelper databases.DatabaseHelper
	var collectionHelper databases.CollectionHelper
	var srHelperErr databases.SingleResultHelper

	dbHelper = &mocks.DatabaseHelper{}
	collectionHelper = &mocks.CollectionHelper{}
	srHelperErr = &mocks.SingleResultHelper{}

	srHelperErr.(*mocks.SingleResultHelper).
		On("Decode", mock.Anything).
		Return(mongo.ErrNoDocuments)

	collectionHelper.(*mocks.CollectionHelper).
		On("FindOne", context.Background(), bson.M{"_id": "atlantis"}).
		Return(srHelperErr)

	dbHelper.(*mocks.DatabaseHelper).
		On("Collection", "destinations").Return(collectionHelper)

	catalog := databases.NewDestinationCatalog(databases.NewDestinationDatabase(dbHelper))

	_, err := catalog.Lookup(context.Background(), "atlantis")
	assert.ErrorIs(t, err, grouptrip.ErrDestinationNotFound)
}
