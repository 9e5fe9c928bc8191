package mongodb

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/edupathpro/edupath/core/timeline"
)

type timelineRepository struct {
	col *mongo.Collection
}

var _ timeline.Repository = (*timelineRepository)(nil) // interface compliance check

func NewTimelineRepository(db *DB) timeline.Repository {
	return &timelineRepository{col: db.timeline}
}

func (repo *timelineRepository) CreateEvent(ctx context.Context, evt timeline.Event) (timeline.Event, error) {
	if _, err := repo.col.InsertOne(ctx, evt); err != nil {
		return timeline.Event{}, errors.Wrap(err, "inserting event")
	}
	return evt, nil
}

func (repo *timelineRepository) QueryEventsByUser(ctx context.Context, userID string) ([]timeline.Event, error) {
	cursor, err := repo.col.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, errors.Wrap(err, "querying events")
	}
	var events []timeline.Event
	if err = cursor.All(ctx, &events); err != nil {
		return nil, errors.Wrap(err, "decoding events")
	}
	return events, nil
}

func (repo *timelineRepository) GetEventByID(ctx context.Context, id string) (timeline.Event, error) {
	var evt timeline.Event
	if err := repo.col.FindOne(ctx, bson.M{"_id": id}).Decode(&evt); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return timeline.Event{}, timeline.ErrNotFound
		}
		return timeline.Event{}, errors.Wrap(err, "finding event")
	}
	return evt, nil
}

func (repo *timelineRepository) UpdateEvent(ctx context.Context, evt timeline.Event) (timeline.Event, error) {
	res, err := repo.col.ReplaceOne(ctx, bson.M{"_id": evt.ID}, evt)
	if err != nil {
		return timeline.Event{}, errors.Wrap(err, "updating event")
	}
	if res.MatchedCount == 0 {
		return timeline.Event{}, timeline.ErrNotFound
	}
	return evt, nil
}

func (repo *timelineRepository) DeleteEvent(ctx context.Context, id string) error {
	_, err := repo.col.DeleteOne(ctx, bson.M{"_id": id})
	return errors.Wrap(err, "deleting event")
}

func (repo *timelineRepository) DeleteAllEvents(ctx context.Context) error {
	_, err := repo.col.DeleteMany(ctx, bson.M{})
	return errors.Wrap(err, "clearing events")
}
