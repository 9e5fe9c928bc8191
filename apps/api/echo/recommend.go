package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/edupathpro/edupath/core/recommend"
)

type recommendApi struct {
	svc      recommend.Service
	validate *validator.Validate
}

func registerRecommendAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc recommend.Service, validate *validator.Validate) {
	api := recommendApi{svc: svc, validate: validate}

	g.POST("/recommendations", api.recommend, jwt)
}

// recommend scores the whole catalog against the submitted quiz analysis and
// returns courses and careers ranked by match strength.
func (api *recommendApi) recommend(ctx echo.Context) error {
	var data recommend.QuizAnalysis
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to QuizAnalysis")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	recs, err := api.svc.Recommend(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "computing recommendations")
	}
	return ctx.JSON(http.StatusOK, recs)
}
