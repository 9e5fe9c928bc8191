package echoapi

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/edupathpro/edupath/core/catalog"
)

type catalogApi struct {
	svc catalog.Service
}

// registerCatalogAPI mounts the read-only discovery endpoints. The catalog is
// public; browsing does not require an account.
func registerCatalogAPI(g *echo.Group, svc catalog.Service) {
	api := catalogApi{svc: svc}

	g.GET("/colleges", api.queryColleges)
	g.GET("/colleges/:id", api.retrieveCollege)
	g.GET("/courses", api.queryCourses)
	g.GET("/courses/:id", api.retrieveCourse)
	g.GET("/scholarships", api.queryScholarships)
	g.GET("/scholarships/:id", api.retrieveScholarship)
	g.GET("/careers", api.queryCareers)
	g.GET("/careers/:id", api.retrieveCareer)
	g.GET("/resources", api.queryResources)
	g.GET("/resources/:id", api.retrieveResource)
}

// ScholarshipResponse decorates a scholarship with its deadline status,
// derived at render time.
type ScholarshipResponse struct {
	catalog.Scholarship
	DeadlineStatus catalog.DeadlineStatus `json:"deadline_status"`
}

func newScholarshipResponse(s catalog.Scholarship, now time.Time) ScholarshipResponse {
	return ScholarshipResponse{Scholarship: s, DeadlineStatus: s.Status(now)}
}

// Handlers

func (api *catalogApi) queryColleges(ctx echo.Context) error {
	filter := new(catalog.CollegeFilter)
	if err := ctx.Bind(filter); err != nil {
		return ctx.JSON(http.StatusOK, []catalog.College{})
	}
	filter.Clean()

	colleges, err := api.svc.FilterColleges(ctx.Request().Context(), *filter)
	if err != nil {
		return errors.Wrap(err, "querying colleges")
	}
	return ctx.JSON(http.StatusOK, colleges)
}

func (api *catalogApi) retrieveCollege(ctx echo.Context) error {
	college, err := api.svc.GetCollege(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		if errors.Cause(err) == catalog.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "finding college by ID")
	}
	return ctx.JSON(http.StatusOK, college)
}

func (api *catalogApi) queryCourses(ctx echo.Context) error {
	filter := new(catalog.CourseFilter)
	if err := ctx.Bind(filter); err != nil {
		return ctx.JSON(http.StatusOK, []catalog.Course{})
	}
	filter.Clean()

	courses, err := api.svc.FilterCourses(ctx.Request().Context(), *filter)
	if err != nil {
		return errors.Wrap(err, "querying courses")
	}
	return ctx.JSON(http.StatusOK, courses)
}

func (api *catalogApi) retrieveCourse(ctx echo.Context) error {
	course, err := api.svc.GetCourse(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		if errors.Cause(err) == catalog.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "finding course by ID")
	}
	return ctx.JSON(http.StatusOK, course)
}

func (api *catalogApi) queryScholarships(ctx echo.Context) error {
	filter := new(catalog.ScholarshipFilter)
	if err := ctx.Bind(filter); err != nil {
		return ctx.JSON(http.StatusOK, []ScholarshipResponse{})
	}
	filter.Clean()

	scholarships, err := api.svc.FilterScholarships(ctx.Request().Context(), *filter)
	if err != nil {
		return errors.Wrap(err, "querying scholarships")
	}

	now := time.Now()
	res := make([]ScholarshipResponse, 0, len(scholarships))
	for _, s := range scholarships {
		res = append(res, newScholarshipResponse(s, now))
	}
	return ctx.JSON(http.StatusOK, res)
}

func (api *catalogApi) retrieveScholarship(ctx echo.Context) error {
	scholarship, err := api.svc.GetScholarship(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		if errors.Cause(err) == catalog.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "finding scholarship by ID")
	}
	return ctx.JSON(http.StatusOK, newScholarshipResponse(scholarship, time.Now()))
}

func (api *catalogApi) queryCareers(ctx echo.Context) error {
	filter := new(catalog.CareerFilter)
	if err := ctx.Bind(filter); err != nil {
		return ctx.JSON(http.StatusOK, []catalog.CareerPath{})
	}
	filter.Clean()

	careers, err := api.svc.FilterCareers(ctx.Request().Context(), *filter)
	if err != nil {
		return errors.Wrap(err, "querying careers")
	}
	return ctx.JSON(http.StatusOK, careers)
}

func (api *catalogApi) retrieveCareer(ctx echo.Context) error {
	career, err := api.svc.GetCareer(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		if errors.Cause(err) == catalog.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "finding career by ID")
	}
	return ctx.JSON(http.StatusOK, career)
}

func (api *catalogApi) queryResources(ctx echo.Context) error {
	filter := new(catalog.ResourceFilter)
	if err := ctx.Bind(filter); err != nil {
		return ctx.JSON(http.StatusOK, []catalog.Resource{})
	}
	filter.Clean()

	resources, err := api.svc.FilterResources(ctx.Request().Context(), *filter)
	if err != nil {
		return errors.Wrap(err, "querying resources")
	}
	return ctx.JSON(http.StatusOK, resources)
}

func (api *catalogApi) retrieveResource(ctx echo.Context) error {
	resource, err := api.svc.GetResource(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		if errors.Cause(err) == catalog.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "finding resource by ID")
	}
	return ctx.JSON(http.StatusOK, resource)
}
