package echoapi

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/edupathpro/edupath/core/timeline"
)

type timelineApi struct {
	svc      timeline.Service
	validate *validator.Validate
}

func registerTimelineAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc timeline.Service, validate *validator.Validate) {
	api := timelineApi{svc: svc, validate: validate}

	tg := g.Group("/timeline", jwt)
	tg.GET("", api.query)
	tg.POST("", api.create)
	tg.PUT("/:id", api.update)
	tg.DELETE("/:id", api.destroy)
}

// EventResponse decorates an event with its status bucket, derived at render
// time from the event date.
type EventResponse struct {
	timeline.Event
	Status timeline.EventStatus `json:"status"`
}

func newEventResponse(evt timeline.Event, now time.Time) EventResponse {
	return EventResponse{Event: evt, Status: evt.Status(now)}
}

// Handlers

func (api *timelineApi) query(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}

	events, err := api.svc.Query(ctx.Request().Context(), claims.Subject)
	if err != nil {
		return errors.Wrap(err, "querying events")
	}

	now := time.Now()
	res := make([]EventResponse, 0, len(events))
	for _, evt := range events {
		res = append(res, newEventResponse(evt, now))
	}
	return ctx.JSON(http.StatusOK, res)
}

func (api *timelineApi) create(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}

	var data timeline.NewEvent
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewEvent")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	evt, err := api.svc.Create(ctx.Request().Context(), claims.Subject, data)
	if err != nil {
		return errors.Wrap(err, "creating event")
	}
	return ctx.JSON(http.StatusCreated, newEventResponse(evt, time.Now()))
}

func (api *timelineApi) update(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}

	var data timeline.UpdateEvent
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateEvent")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	evt, err := api.svc.Update(ctx.Request().Context(), claims.Subject, ctx.Param("id"), data)
	if err != nil {
		if errors.Cause(err) == timeline.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "updating event")
	}
	return ctx.JSON(http.StatusOK, newEventResponse(evt, time.Now()))
}

func (api *timelineApi) destroy(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}

	if err := api.svc.Delete(ctx.Request().Context(), claims.Subject, ctx.Param("id")); err != nil {
		if errors.Cause(err) == timeline.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "deleting event")
	}
	return ctx.NoContent(http.StatusNoContent)
}
