package catalog

import (
	"context"
	"sort"
	"time"

	"github.com/pkg/errors"
)

var ErrNotFound = errors.New("item not found")

type (
	// Repository is the catalog's read surface plus the batch write surface
	// used by the maintenance CLI. List queries return whole collections;
	// filtering happens in memory after retrieval.
	Repository interface {
		CreateColleges(ctx context.Context, colleges ...College) error
		QueryColleges(ctx context.Context) ([]College, error)
		GetCollegeByID(ctx context.Context, id string) (College, error)
		DeleteAllColleges(ctx context.Context) error

		CreateCourses(ctx context.Context, courses ...Course) error
		QueryCourses(ctx context.Context) ([]Course, error)
		GetCourseByID(ctx context.Context, id string) (Course, error)
		DeleteAllCourses(ctx context.Context) error

		CreateScholarships(ctx context.Context, scholarships ...Scholarship) error
		QueryScholarships(ctx context.Context) ([]Scholarship, error)
		GetScholarshipByID(ctx context.Context, id string) (Scholarship, error)
		DeleteAllScholarships(ctx context.Context) error

		CreateCareers(ctx context.Context, careers ...CareerPath) error
		QueryCareers(ctx context.Context) ([]CareerPath, error)
		GetCareerByID(ctx context.Context, id string) (CareerPath, error)
		DeleteAllCareers(ctx context.Context) error

		CreateResources(ctx context.Context, resources ...Resource) error
		QueryResources(ctx context.Context) ([]Resource, error)
		GetResourceByID(ctx context.Context, id string) (Resource, error)
		DeleteAllResources(ctx context.Context) error
	}

	Service interface {
		FilterColleges(ctx context.Context, filter CollegeFilter) ([]College, error)
		GetCollege(ctx context.Context, id string) (College, error)
		FilterCourses(ctx context.Context, filter CourseFilter) ([]Course, error)
		GetCourse(ctx context.Context, id string) (Course, error)
		FilterScholarships(ctx context.Context, filter ScholarshipFilter) ([]Scholarship, error)
		GetScholarship(ctx context.Context, id string) (Scholarship, error)
		FilterCareers(ctx context.Context, filter CareerFilter) ([]CareerPath, error)
		GetCareer(ctx context.Context, id string) (CareerPath, error)
		FilterResources(ctx context.Context, filter ResourceFilter) ([]Resource, error)
		GetResource(ctx context.Context, id string) (Resource, error)
	}

	service struct {
		repo Repository
	}
)

var _ Service = (*service)(nil)

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (svc *service) FilterColleges(ctx context.Context, filter CollegeFilter) ([]College, error) {
	all, err := svc.repo.QueryColleges(ctx)
	if err != nil {
		return nil, err
	}
	colleges := make([]College, 0, len(all))
	for _, c := range all {
		if filter.Match(c) {
			colleges = append(colleges, c)
		}
	}
	sort.Slice(colleges, func(i, j int) bool { return colleges[i].Name < colleges[j].Name })
	return colleges, nil
}

func (svc *service) GetCollege(ctx context.Context, id string) (College, error) {
	return svc.repo.GetCollegeByID(ctx, id)
}

func (svc *service) FilterCourses(ctx context.Context, filter CourseFilter) ([]Course, error) {
	all, err := svc.repo.QueryCourses(ctx)
	if err != nil {
		return nil, err
	}
	courses := make([]Course, 0, len(all))
	for _, c := range all {
		if filter.Match(c) {
			courses = append(courses, c)
		}
	}
	// best rated first
	sort.Slice(courses, func(i, j int) bool {
		if courses[i].Rating != courses[j].Rating {
			return courses[i].Rating > courses[j].Rating
		}
		return courses[i].Name < courses[j].Name
	})
	return courses, nil
}

func (svc *service) GetCourse(ctx context.Context, id string) (Course, error) {
	return svc.repo.GetCourseByID(ctx, id)
}

func (svc *service) FilterScholarships(ctx context.Context, filter ScholarshipFilter) ([]Scholarship, error) {
	all, err := svc.repo.QueryScholarships(ctx)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	scholarships := make([]Scholarship, 0, len(all))
	for _, s := range all {
		if filter.Match(s, now) {
			scholarships = append(scholarships, s)
		}
	}
	// closest deadline first
	sort.Slice(scholarships, func(i, j int) bool {
		return scholarships[i].ApplicationDeadline.Before(scholarships[j].ApplicationDeadline)
	})
	return scholarships, nil
}

func (svc *service) GetScholarship(ctx context.Context, id string) (Scholarship, error) {
	return svc.repo.GetScholarshipByID(ctx, id)
}

func (svc *service) FilterCareers(ctx context.Context, filter CareerFilter) ([]CareerPath, error) {
	all, err := svc.repo.QueryCareers(ctx)
	if err != nil {
		return nil, err
	}
	careers := make([]CareerPath, 0, len(all))
	for _, c := range all {
		if filter.Match(c) {
			careers = append(careers, c)
		}
	}
	sort.Slice(careers, func(i, j int) bool { return careers[i].Title < careers[j].Title })
	return careers, nil
}

func (svc *service) GetCareer(ctx context.Context, id string) (CareerPath, error) {
	return svc.repo.GetCareerByID(ctx, id)
}

func (svc *service) FilterResources(ctx context.Context, filter ResourceFilter) ([]Resource, error) {
	all, err := svc.repo.QueryResources(ctx)
	if err != nil {
		return nil, err
	}
	resources := make([]Resource, 0, len(all))
	for _, r := range all {
		if filter.Match(r) {
			resources = append(resources, r)
		}
	}
	sort.Slice(resources, func(i, j int) bool { return resources[i].Title < resources[j].Title })
	return resources, nil
}

func (svc *service) GetResource(ctx context.Context, id string) (Resource, error) {
	return svc.repo.GetResourceByID(ctx, id)
}
