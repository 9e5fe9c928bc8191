package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/edupathpro/edupath/core/contact"
)

type contactApi struct {
	svc      contact.Service
	validate *validator.Validate
}

func registerContactAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc contact.Service, validate *validator.Validate) {
	api := contactApi{svc: svc, validate: validate}

	g.POST("/contact", api.submit)
	g.GET("/contact", api.query, jwt, adminMiddleware())
	g.PUT("/contact/:id/resolve", api.resolve, jwt, adminMiddleware())
}

// SubmitResponse reports the stored submission plus whether the staff
// notification was dispatched. A false email_sent is informational only.
type SubmitResponse struct {
	Submission contact.Submission `json:"submission"`
	EmailSent  bool               `json:"email_sent"`
}

// Handlers

func (api *contactApi) submit(ctx echo.Context) error {
	var data contact.NewSubmission
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewSubmission")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	sub, sent, err := api.svc.Submit(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "storing submission")
	}
	return ctx.JSON(http.StatusCreated, SubmitResponse{Submission: sub, EmailSent: sent})
}

func (api *contactApi) resolve(ctx echo.Context) error {
	sub, err := api.svc.Resolve(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		if errors.Cause(err) == contact.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "resolving submission")
	}
	return ctx.JSON(http.StatusOK, sub)
}

func (api *contactApi) query(ctx echo.Context) error {
	subs, err := api.svc.QueryAll(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying submissions")
	}
	if subs == nil {
		subs = []contact.Submission{}
	}
	return ctx.JSON(http.StatusOK, subs)
}
