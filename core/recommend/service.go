package recommend

import (
	"context"
	"sort"

	"github.com/edupathpro/edupath/core/catalog"
)

type (
	RecommendedCourse struct {
		catalog.Course
		MatchStrength int `json:"match_strength"`
	}

	RecommendedCareer struct {
		catalog.CareerPath
		MatchStrength int `json:"match_strength"`
	}

	// Recommendations are catalog candidates ranked by match strength.
	Recommendations struct {
		Courses []RecommendedCourse `json:"courses"`
		Careers []RecommendedCareer `json:"careers"`
	}

	Service interface {
		Recommend(ctx context.Context, analysis QuizAnalysis) (Recommendations, error)
	}

	service struct {
		catalogSvc catalog.Service
	}
)

var _ Service = (*service)(nil)

func NewService(catalogSvc catalog.Service) Service {
	return &service{catalogSvc: catalogSvc}
}

// Recommend scores every course and career against the quiz analysis and
// returns them ranked, strongest match first. The scoring is stateless; the
// same analysis always ranks identically.
func (svc *service) Recommend(ctx context.Context, analysis QuizAnalysis) (Recommendations, error) {
	var recs Recommendations

	courses, err := svc.catalogSvc.FilterCourses(ctx, catalog.CourseFilter{})
	if err != nil {
		return recs, err
	}
	recs.Courses = make([]RecommendedCourse, 0, len(courses))
	for _, c := range courses {
		recs.Courses = append(recs.Courses, RecommendedCourse{
			Course:        c,
			MatchStrength: MatchStrength(analysis, c.Field),
		})
	}
	sort.SliceStable(recs.Courses, func(i, j int) bool {
		return recs.Courses[i].MatchStrength > recs.Courses[j].MatchStrength
	})

	careers, err := svc.catalogSvc.FilterCareers(ctx, catalog.CareerFilter{})
	if err != nil {
		return recs, err
	}
	recs.Careers = make([]RecommendedCareer, 0, len(careers))
	for _, c := range careers {
		recs.Careers = append(recs.Careers, RecommendedCareer{
			CareerPath:    c,
			MatchStrength: MatchStrength(analysis, c.Field),
		})
	}
	sort.SliceStable(recs.Careers, func(i, j int) bool {
		return recs.Careers[i].MatchStrength > recs.Careers[j].MatchStrength
	})

	return recs, nil
}
