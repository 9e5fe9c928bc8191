package bookmark

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var ErrNotFound = errors.New("bookmark not found")

type (
	Repository interface {
		CreateBookmark(ctx context.Context, bm Bookmark) (Bookmark, error)
		// QueryBookmarksByUser returns the user's bookmarks in no particular
		// order; callers sort in memory.
		QueryBookmarksByUser(ctx context.Context, userID string) ([]Bookmark, error)
		GetBookmarkByID(ctx context.Context, id string) (Bookmark, error)
		DeleteBookmark(ctx context.Context, id string) error
		DeleteAllBookmarks(ctx context.Context) error

		CreateApplication(ctx context.Context, app Application) (Application, error)
		QueryApplicationsByUser(ctx context.Context, userID string) ([]Application, error)
		GetApplicationByID(ctx context.Context, id string) (Application, error)
		UpdateApplication(ctx context.Context, app Application) (Application, error)
		DeleteApplication(ctx context.Context, id string) error
		DeleteAllApplications(ctx context.Context) error
	}

	Service interface {
		Add(ctx context.Context, userID string, nb NewBookmark) (Bookmark, error)
		Query(ctx context.Context, userID string) ([]Bookmark, error)
		Remove(ctx context.Context, userID, id string) error

		Apply(ctx context.Context, userID string, na NewApplication) (Application, error)
		QueryApplications(ctx context.Context, userID string) ([]Application, error)
		UpdateApplicationStatus(ctx context.Context, userID, id string, ua UpdateApplication) (Application, error)
		Withdraw(ctx context.Context, userID, id string) error
	}

	service struct {
		repo Repository
	}
)

var _ Service = (*service)(nil)

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Add stores a new bookmark. Adding is not idempotent: repeated calls for
// the same item create separate rows.
func (svc *service) Add(ctx context.Context, userID string, nb NewBookmark) (Bookmark, error) {
	return svc.repo.CreateBookmark(ctx, Bookmark{
		ID:        uuid.NewString(),
		UserID:    userID,
		ItemID:    nb.ItemID,
		ItemType:  nb.ItemType,
		ItemData:  nb.ItemData,
		CreatedAt: time.Now().UTC(),
	})
}

func (svc *service) Query(ctx context.Context, userID string) ([]Bookmark, error) {
	bms, err := svc.repo.QueryBookmarksByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	// newest first
	sort.Slice(bms, func(i, j int) bool { return bms[i].CreatedAt.After(bms[j].CreatedAt) })
	return bms, nil
}

func (svc *service) Remove(ctx context.Context, userID, id string) error {
	bm, err := svc.repo.GetBookmarkByID(ctx, id)
	if err != nil {
		return err
	}
	if bm.UserID != userID {
		return ErrNotFound
	}
	return svc.repo.DeleteBookmark(ctx, id)
}

func (svc *service) Apply(ctx context.Context, userID string, na NewApplication) (Application, error) {
	return svc.repo.CreateApplication(ctx, Application{
		ID:        uuid.NewString(),
		UserID:    userID,
		ItemID:    na.ItemID,
		ItemType:  na.ItemType,
		ItemData:  na.ItemData,
		Status:    StatusApplied,
		AppliedAt: time.Now().UTC(),
	})
}

func (svc *service) QueryApplications(ctx context.Context, userID string) ([]Application, error) {
	apps, err := svc.repo.QueryApplicationsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	sort.Slice(apps, func(i, j int) bool { return apps[i].AppliedAt.After(apps[j].AppliedAt) })
	return apps, nil
}

func (svc *service) UpdateApplicationStatus(ctx context.Context, userID, id string, ua UpdateApplication) (Application, error) {
	app, err := svc.repo.GetApplicationByID(ctx, id)
	if err != nil {
		return Application{}, err
	}
	if app.UserID != userID {
		return Application{}, ErrNotFound
	}
	app.Status = ua.Status
	return svc.repo.UpdateApplication(ctx, app)
}

func (svc *service) Withdraw(ctx context.Context, userID, id string) error {
	app, err := svc.repo.GetApplicationByID(ctx, id)
	if err != nil {
		return err
	}
	if app.UserID != userID {
		return ErrNotFound
	}
	return svc.repo.DeleteApplication(ctx, id)
}
