package dummydb

import (
	"context"

	"github.com/edupathpro/edupath/core/bookmark"
)

type bookmarkRepository struct {
	bookmarks    *table[bookmark.Bookmark]
	applications *table[bookmark.Application]
}

var _ bookmark.Repository = (*bookmarkRepository)(nil) // interface compliance check

func NewBookmarkRepository(db *DB) bookmark.Repository {
	return &bookmarkRepository{
		bookmarks:    db.bookmarks,
		applications: db.applications,
	}
}

func (repo *bookmarkRepository) CreateBookmark(_ context.Context, bm bookmark.Bookmark) (bookmark.Bookmark, error) {
	repo.bookmarks.Lock()
	defer repo.bookmarks.Unlock()
	repo.bookmarks.rows[bm.ID] = &bm
	return bm, nil
}

func (repo *bookmarkRepository) QueryBookmarksByUser(_ context.Context, userID string) ([]bookmark.Bookmark, error) {
	repo.bookmarks.RLock()
	defer repo.bookmarks.RUnlock()

	var bms []bookmark.Bookmark
	for _, bm := range repo.bookmarks.all() {
		if bm.UserID == userID {
			bms = append(bms, bm)
		}
	}
	return bms, nil
}

func (repo *bookmarkRepository) GetBookmarkByID(_ context.Context, id string) (bookmark.Bookmark, error) {
	repo.bookmarks.RLock()
	defer repo.bookmarks.RUnlock()
	if bm, ok := repo.bookmarks.rows[id]; ok {
		return *bm, nil
	}
	return bookmark.Bookmark{}, bookmark.ErrNotFound
}

func (repo *bookmarkRepository) DeleteBookmark(_ context.Context, id string) error {
	repo.bookmarks.Lock()
	defer repo.bookmarks.Unlock()
	delete(repo.bookmarks.rows, id)
	return nil
}

func (repo *bookmarkRepository) DeleteAllBookmarks(_ context.Context) error {
	repo.bookmarks.Lock()
	defer repo.bookmarks.Unlock()
	repo.bookmarks.rows = map[string]*bookmark.Bookmark{}
	return nil
}

func (repo *bookmarkRepository) CreateApplication(_ context.Context, app bookmark.Application) (bookmark.Application, error) {
	repo.applications.Lock()
	defer repo.applications.Unlock()
	repo.applications.rows[app.ID] = &app
	return app, nil
}

func (repo *bookmarkRepository) QueryApplicationsByUser(_ context.Context, userID string) ([]bookmark.Application, error) {
	repo.applications.RLock()
	defer repo.applications.RUnlock()

	var apps []bookmark.Application
	for _, app := range repo.applications.all() {
		if app.UserID == userID {
			apps = append(apps, app)
		}
	}
	return apps, nil
}

func (repo *bookmarkRepository) GetApplicationByID(_ context.Context, id string) (bookmark.Application, error) {
	repo.applications.RLock()
	defer repo.applications.RUnlock()
	if app, ok := repo.applications.rows[id]; ok {
		return *app, nil
	}
	return bookmark.Application{}, bookmark.ErrNotFound
}

func (repo *bookmarkRepository) UpdateApplication(_ context.Context, app bookmark.Application) (bookmark.Application, error) {
	repo.applications.Lock()
	defer repo.applications.Unlock()
	if _, ok := repo.applications.rows[app.ID]; !ok {
		return bookmark.Application{}, bookmark.ErrNotFound
	}
	repo.applications.rows[app.ID] = &app
	return app, nil
}

func (repo *bookmarkRepository) DeleteApplication(_ context.Context, id string) error {
	repo.applications.Lock()
	defer repo.applications.Unlock()
	delete(repo.applications.rows, id)
	return nil
}

func (repo *bookmarkRepository) DeleteAllApplications(_ context.Context) error {
	repo.applications.Lock()
	defer repo.applications.Unlock()
	repo.applications.rows = map[string]*bookmark.Application{}
	return nil
}
