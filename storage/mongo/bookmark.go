package mongodb

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/edupathpro/edupath/core/bookmark"
)

type bookmarkRepository struct {
	bookmarks    *mongo.Collection
	applications *mongo.Collection
}

var _ bookmark.Repository = (*bookmarkRepository)(nil) // interface compliance check

func NewBookmarkRepository(db *DB) bookmark.Repository {
	return &bookmarkRepository{
		bookmarks:    db.bookmarks,
		applications: db.applications,
	}
}

func (repo *bookmarkRepository) CreateBookmark(ctx context.Context, bm bookmark.Bookmark) (bookmark.Bookmark, error) {
	if _, err := repo.bookmarks.InsertOne(ctx, bm); err != nil {
		return bookmark.Bookmark{}, errors.Wrap(err, "inserting bookmark")
	}
	return bm, nil
}

func (repo *bookmarkRepository) QueryBookmarksByUser(ctx context.Context, userID string) ([]bookmark.Bookmark, error) {
	cursor, err := repo.bookmarks.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, errors.Wrap(err, "querying bookmarks")
	}
	var bms []bookmark.Bookmark
	if err = cursor.All(ctx, &bms); err != nil {
		return nil, errors.Wrap(err, "decoding bookmarks")
	}
	return bms, nil
}

func (repo *bookmarkRepository) GetBookmarkByID(ctx context.Context, id string) (bookmark.Bookmark, error) {
	var bm bookmark.Bookmark
	if err := repo.bookmarks.FindOne(ctx, bson.M{"_id": id}).Decode(&bm); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return bookmark.Bookmark{}, bookmark.ErrNotFound
		}
		return bookmark.Bookmark{}, errors.Wrap(err, "finding bookmark")
	}
	return bm, nil
}

func (repo *bookmarkRepository) DeleteBookmark(ctx context.Context, id string) error {
	_, err := repo.bookmarks.DeleteOne(ctx, bson.M{"_id": id})
	return errors.Wrap(err, "deleting bookmark")
}

func (repo *bookmarkRepository) DeleteAllBookmarks(ctx context.Context) error {
	_, err := repo.bookmarks.DeleteMany(ctx, bson.M{})
	return errors.Wrap(err, "clearing bookmarks")
}

func (repo *bookmarkRepository) CreateApplication(ctx context.Context, app bookmark.Application) (bookmark.Application, error) {
	if _, err := repo.applications.InsertOne(ctx, app); err != nil {
		return bookmark.Application{}, errors.Wrap(err, "inserting application")
	}
	return app, nil
}

func (repo *bookmarkRepository) QueryApplicationsByUser(ctx context.Context, userID string) ([]bookmark.Application, error) {
	cursor, err := repo.applications.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, errors.Wrap(err, "querying applications")
	}
	var apps []bookmark.Application
	if err = cursor.All(ctx, &apps); err != nil {
		return nil, errors.Wrap(err, "decoding applications")
	}
	return apps, nil
}

func (repo *bookmarkRepository) GetApplicationByID(ctx context.Context, id string) (bookmark.Application, error) {
	var app bookmark.Application
	if err := repo.applications.FindOne(ctx, bson.M{"_id": id}).Decode(&app); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return bookmark.Application{}, bookmark.ErrNotFound
		}
		return bookmark.Application{}, errors.Wrap(err, "finding application")
	}
	return app, nil
}

func (repo *bookmarkRepository) UpdateApplication(ctx context.Context, app bookmark.Application) (bookmark.Application, error) {
	res, err := repo.applications.ReplaceOne(ctx, bson.M{"_id": app.ID}, app)
	if err != nil {
		return bookmark.Application{}, errors.Wrap(err, "updating application")
	}
	if res.MatchedCount == 0 {
		return bookmark.Application{}, bookmark.ErrNotFound
	}
	return app, nil
}

func (repo *bookmarkRepository) DeleteApplication(ctx context.Context, id string) error {
	_, err := repo.applications.DeleteOne(ctx, bson.M{"_id": id})
	return errors.Wrap(err, "deleting application")
}

func (repo *bookmarkRepository) DeleteAllApplications(ctx context.Context) error {
	_, err := repo.applications.DeleteMany(ctx, bson.M{})
	return errors.Wrap(err, "clearing applications")
}
