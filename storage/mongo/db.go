// Package mongodb implements the repositories on top of the managed MongoDB
// document store.
package mongodb

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/edupathpro/edupath/core"
)

// Collection names.
const (
	colUsers        = "users"
	colColleges     = "colleges"
	colCourses      = "courses"
	colScholarships = "scholarships"
	colCareers      = "careers"
	colResources    = "resources"
	colBookmarks    = "bookmarks"
	colApplications = "applications"
	colTimeline     = "timeline"
	colContacts     = "contacts"
)

type DB struct {
	client *mongo.Client
	db     *mongo.Database

	users        *mongo.Collection
	colleges     *mongo.Collection
	courses      *mongo.Collection
	scholarships *mongo.Collection
	careers      *mongo.Collection
	resources    *mongo.Collection
	bookmarks    *mongo.Collection
	applications *mongo.Collection
	timeline     *mongo.Collection
	contacts     *mongo.Collection
}

// Open connects to the document store, pings it and prepares collection
// handles and indexes.
func Open(conf *core.Config) (*DB, error) {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opts := options.Client().ApplyURI(conf.Database.URI).SetServerAPIOptions(serverAPI)

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, errors.Wrap(err, "connecting to mongo")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err = client.Ping(ctx, nil); err != nil {
		return nil, errors.Wrap(err, "pinging mongo")
	}

	mdb := client.Database(conf.Database.Name)
	db := &DB{
		client:       client,
		db:           mdb,
		users:        mdb.Collection(colUsers),
		colleges:     mdb.Collection(colColleges),
		courses:      mdb.Collection(colCourses),
		scholarships: mdb.Collection(colScholarships),
		careers:      mdb.Collection(colCareers),
		resources:    mdb.Collection(colResources),
		bookmarks:    mdb.Collection(colBookmarks),
		applications: mdb.Collection(colApplications),
		timeline:     mdb.Collection(colTimeline),
		contacts:     mdb.Collection(colContacts),
	}

	if err = db.ensureIndexes(ctx); err != nil {
		return nil, errors.Wrap(err, "creating indexes")
	}
	return db, nil
}

// ensureIndexes creates the few single-field indexes the app relies on.
// List screens deliberately avoid composite indexes: results are filtered
// and sorted in memory after retrieval.
func (db *DB) ensureIndexes(ctx context.Context) error {
	_, err := db.users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	userScoped := []*mongo.Collection{db.bookmarks, db.applications, db.timeline}
	im := mongo.IndexModel{Keys: bson.D{{Key: "userId", Value: 1}}}
	for _, col := range userScoped {
		if _, err = col.Indexes().CreateOne(ctx, im); err != nil {
			return err
		}
	}
	return nil
}

func (db *DB) Close(ctx context.Context) error {
	return db.client.Disconnect(ctx)
}
