package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/edupathpro/edupath/core/bookmark"
)

type bookmarkApi struct {
	svc      bookmark.Service
	validate *validator.Validate
}

func registerBookmarkAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc bookmark.Service, validate *validator.Validate) {
	api := bookmarkApi{svc: svc, validate: validate}

	bg := g.Group("/bookmarks", jwt)
	bg.GET("", api.query)
	bg.POST("", api.create)
	bg.DELETE("/:id", api.destroy)

	ag := g.Group("/applications", jwt)
	ag.GET("", api.queryApplications)
	ag.POST("", api.apply)
	ag.PUT("/:id", api.updateApplication)
	ag.DELETE("/:id", api.withdraw)
}

// Handlers

func (api *bookmarkApi) query(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}

	bms, err := api.svc.Query(ctx.Request().Context(), claims.Subject)
	if err != nil {
		return errors.Wrap(err, "querying bookmarks")
	}
	if bms == nil {
		bms = []bookmark.Bookmark{}
	}
	return ctx.JSON(http.StatusOK, bms)
}

func (api *bookmarkApi) create(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}

	var data bookmark.NewBookmark
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewBookmark")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	bm, err := api.svc.Add(ctx.Request().Context(), claims.Subject, data)
	if err != nil {
		return errors.Wrap(err, "adding bookmark")
	}
	return ctx.JSON(http.StatusCreated, bm)
}

func (api *bookmarkApi) destroy(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}

	if err := api.svc.Remove(ctx.Request().Context(), claims.Subject, ctx.Param("id")); err != nil {
		if errors.Cause(err) == bookmark.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "removing bookmark")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *bookmarkApi) queryApplications(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}

	apps, err := api.svc.QueryApplications(ctx.Request().Context(), claims.Subject)
	if err != nil {
		return errors.Wrap(err, "querying applications")
	}
	if apps == nil {
		apps = []bookmark.Application{}
	}
	return ctx.JSON(http.StatusOK, apps)
}

func (api *bookmarkApi) apply(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}

	var data bookmark.NewApplication
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewApplication")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	app, err := api.svc.Apply(ctx.Request().Context(), claims.Subject, data)
	if err != nil {
		return errors.Wrap(err, "creating application")
	}
	return ctx.JSON(http.StatusCreated, app)
}

func (api *bookmarkApi) updateApplication(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}

	var data bookmark.UpdateApplication
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateApplication")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	app, err := api.svc.UpdateApplicationStatus(ctx.Request().Context(), claims.Subject, ctx.Param("id"), data)
	if err != nil {
		if errors.Cause(err) == bookmark.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "updating application")
	}
	return ctx.JSON(http.StatusOK, app)
}

func (api *bookmarkApi) withdraw(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}

	if err := api.svc.Withdraw(ctx.Request().Context(), claims.Subject, ctx.Param("id")); err != nil {
		if errors.Cause(err) == bookmark.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "withdrawing application")
	}
	return ctx.NoContent(http.StatusNoContent)
}
