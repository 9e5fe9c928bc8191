package timeline

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var ErrNotFound = errors.New("event not found")

type (
	Repository interface {
		CreateEvent(ctx context.Context, evt Event) (Event, error)
		// QueryEventsByUser returns the user's events in no particular order;
		// callers sort in memory to avoid needing a composite index.
		QueryEventsByUser(ctx context.Context, userID string) ([]Event, error)
		GetEventByID(ctx context.Context, id string) (Event, error)
		UpdateEvent(ctx context.Context, evt Event) (Event, error)
		DeleteEvent(ctx context.Context, id string) error
		DeleteAllEvents(ctx context.Context) error
	}

	Service interface {
		Create(ctx context.Context, userID string, ne NewEvent) (Event, error)
		Query(ctx context.Context, userID string) ([]Event, error)
		Update(ctx context.Context, userID, id string, ue UpdateEvent) (Event, error)
		Delete(ctx context.Context, userID, id string) error
	}

	service struct {
		repo Repository
	}
)

var _ Service = (*service)(nil)

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (svc *service) Create(ctx context.Context, userID string, ne NewEvent) (Event, error) {
	now := time.Now().UTC()
	return svc.repo.CreateEvent(ctx, Event{
		ID:          uuid.NewString(),
		UserID:      userID,
		Title:       ne.Title,
		Description: ne.Description,
		Date:        ne.Date,
		Type:        ne.Type,
		Priority:    ne.Priority,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
}

func (svc *service) Query(ctx context.Context, userID string) ([]Event, error) {
	events, err := svc.repo.QueryEventsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	// soonest first
	sort.Slice(events, func(i, j int) bool { return events[i].Date.Before(events[j].Date) })
	return events, nil
}

func (svc *service) Update(ctx context.Context, userID, id string, ue UpdateEvent) (Event, error) {
	evt, err := svc.getOwned(ctx, userID, id)
	if err != nil {
		return Event{}, err
	}

	if ue.Title != "" {
		evt.Title = ue.Title
	}
	if ue.Description != nil {
		evt.Description = *ue.Description
	}
	if ue.Date != nil {
		evt.Date = *ue.Date
	}
	if ue.Type != "" {
		evt.Type = ue.Type
	}
	if ue.Priority != "" {
		evt.Priority = ue.Priority
	}
	if ue.IsCompleted != nil {
		evt.IsCompleted = *ue.IsCompleted
	}
	evt.UpdatedAt = time.Now().UTC()

	return svc.repo.UpdateEvent(ctx, evt)
}

func (svc *service) Delete(ctx context.Context, userID, id string) error {
	if _, err := svc.getOwned(ctx, userID, id); err != nil {
		return err
	}
	return svc.repo.DeleteEvent(ctx, id)
}

func (svc *service) getOwned(ctx context.Context, userID, id string) (Event, error) {
	evt, err := svc.repo.GetEventByID(ctx, id)
	if err != nil {
		return Event{}, err
	}
	if evt.UserID != userID {
		return Event{}, ErrNotFound
	}
	return evt, nil
}
