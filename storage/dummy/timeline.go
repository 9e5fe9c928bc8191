package dummydb

import (
	"context"

	"github.com/edupathpro/edupath/core/timeline"
)

type timelineRepository struct {
	db *table[timeline.Event]
}

var _ timeline.Repository = (*timelineRepository)(nil) // interface compliance check

func NewTimelineRepository(db *DB) timeline.Repository {
	return &timelineRepository{db: db.events}
}

func (repo *timelineRepository) CreateEvent(_ context.Context, evt timeline.Event) (timeline.Event, error) {
	repo.db.Lock()
	defer repo.db.Unlock()
	repo.db.rows[evt.ID] = &evt
	return evt, nil
}

func (repo *timelineRepository) QueryEventsByUser(_ context.Context, userID string) ([]timeline.Event, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	var events []timeline.Event
	for _, evt := range repo.db.all() {
		if evt.UserID == userID {
			events = append(events, evt)
		}
	}
	return events, nil
}

func (repo *timelineRepository) GetEventByID(_ context.Context, id string) (timeline.Event, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	if evt, ok := repo.db.rows[id]; ok {
		return *evt, nil
	}
	return timeline.Event{}, timeline.ErrNotFound
}

func (repo *timelineRepository) UpdateEvent(_ context.Context, evt timeline.Event) (timeline.Event, error) {
	repo.db.Lock()
	defer repo.db.Unlock()
	if _, ok := repo.db.rows[evt.ID]; !ok {
		return timeline.Event{}, timeline.ErrNotFound
	}
	repo.db.rows[evt.ID] = &evt
	return evt, nil
}

func (repo *timelineRepository) DeleteEvent(_ context.Context, id string) error {
	repo.db.Lock()
	defer repo.db.Unlock()
	delete(repo.db.rows, id)
	return nil
}

func (repo *timelineRepository) DeleteAllEvents(_ context.Context) error {
	repo.db.Lock()
	defer repo.db.Unlock()
	repo.db.rows = map[string]*timeline.Event{}
	return nil
}
