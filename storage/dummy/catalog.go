package dummydb

import (
	"context"

	"github.com/edupathpro/edupath/core/catalog"
)

type catalogRepository struct {
	colleges     *table[catalog.College]
	courses      *table[catalog.Course]
	scholarships *table[catalog.Scholarship]
	careers      *table[catalog.CareerPath]
	resources    *table[catalog.Resource]
}

var _ catalog.Repository = (*catalogRepository)(nil) // interface compliance check

func NewCatalogRepository(db *DB) catalog.Repository {
	return &catalogRepository{
		colleges:     db.colleges,
		courses:      db.courses,
		scholarships: db.scholarships,
		careers:      db.careers,
		resources:    db.resources,
	}
}

func (repo *catalogRepository) CreateColleges(_ context.Context, colleges ...catalog.College) error {
	repo.colleges.Lock()
	defer repo.colleges.Unlock()
	for _, c := range colleges {
		c := c
		repo.colleges.rows[c.ID] = &c
	}
	return nil
}

func (repo *catalogRepository) QueryColleges(_ context.Context) ([]catalog.College, error) {
	repo.colleges.RLock()
	defer repo.colleges.RUnlock()
	return repo.colleges.all(), nil
}

func (repo *catalogRepository) GetCollegeByID(_ context.Context, id string) (catalog.College, error) {
	repo.colleges.RLock()
	defer repo.colleges.RUnlock()
	if c, ok := repo.colleges.rows[id]; ok {
		return *c, nil
	}
	return catalog.College{}, catalog.ErrNotFound
}

func (repo *catalogRepository) DeleteAllColleges(_ context.Context) error {
	repo.colleges.Lock()
	defer repo.colleges.Unlock()
	repo.colleges.rows = map[string]*catalog.College{}
	return nil
}

func (repo *catalogRepository) CreateCourses(_ context.Context, courses ...catalog.Course) error {
	repo.courses.Lock()
	defer repo.courses.Unlock()
	for _, c := range courses {
		c := c
		repo.courses.rows[c.ID] = &c
	}
	return nil
}

func (repo *catalogRepository) QueryCourses(_ context.Context) ([]catalog.Course, error) {
	repo.courses.RLock()
	defer repo.courses.RUnlock()
	return repo.courses.all(), nil
}

func (repo *catalogRepository) GetCourseByID(_ context.Context, id string) (catalog.Course, error) {
	repo.courses.RLock()
	defer repo.courses.RUnlock()
	if c, ok := repo.courses.rows[id]; ok {
		return *c, nil
	}
	return catalog.Course{}, catalog.ErrNotFound
}

func (repo *catalogRepository) DeleteAllCourses(_ context.Context) error {
	repo.courses.Lock()
	defer repo.courses.Unlock()
	repo.courses.rows = map[string]*catalog.Course{}
	return nil
}

func (repo *catalogRepository) CreateScholarships(_ context.Context, scholarships ...catalog.Scholarship) error {
	repo.scholarships.Lock()
	defer repo.scholarships.Unlock()
	for _, s := range scholarships {
		s := s
		repo.scholarships.rows[s.ID] = &s
	}
	return nil
}

func (repo *catalogRepository) QueryScholarships(_ context.Context) ([]catalog.Scholarship, error) {
	repo.scholarships.RLock()
	defer repo.scholarships.RUnlock()
	return repo.scholarships.all(), nil
}

func (repo *catalogRepository) GetScholarshipByID(_ context.Context, id string) (catalog.Scholarship, error) {
	repo.scholarships.RLock()
	defer repo.scholarships.RUnlock()
	if s, ok := repo.scholarships.rows[id]; ok {
		return *s, nil
	}
	return catalog.Scholarship{}, catalog.ErrNotFound
}

func (repo *catalogRepository) DeleteAllScholarships(_ context.Context) error {
	repo.scholarships.Lock()
	defer repo.scholarships.Unlock()
	repo.scholarships.rows = map[string]*catalog.Scholarship{}
	return nil
}

func (repo *catalogRepository) CreateCareers(_ context.Context, careers ...catalog.CareerPath) error {
	repo.careers.Lock()
	defer repo.careers.Unlock()
	for _, c := range careers {
		c := c
		repo.careers.rows[c.ID] = &c
	}
	return nil
}

func (repo *catalogRepository) QueryCareers(_ context.Context) ([]catalog.CareerPath, error) {
	repo.careers.RLock()
	defer repo.careers.RUnlock()
	return repo.careers.all(), nil
}

func (repo *catalogRepository) GetCareerByID(_ context.Context, id string) (catalog.CareerPath, error) {
	repo.careers.RLock()
	defer repo.careers.RUnlock()
	if c, ok := repo.careers.rows[id]; ok {
		return *c, nil
	}
	return catalog.CareerPath{}, catalog.ErrNotFound
}

func (repo *catalogRepository) DeleteAllCareers(_ context.Context) error {
	repo.careers.Lock()
	defer repo.careers.Unlock()
	repo.careers.rows = map[string]*catalog.CareerPath{}
	return nil
}

func (repo *catalogRepository) CreateResources(_ context.Context, resources ...catalog.Resource) error {
	repo.resources.Lock()
	defer repo.resources.Unlock()
	for _, r := range resources {
		r := r
		repo.resources.rows[r.ID] = &r
	}
	return nil
}

func (repo *catalogRepository) QueryResources(_ context.Context) ([]catalog.Resource, error) {
	repo.resources.RLock()
	defer repo.resources.RUnlock()
	return repo.resources.all(), nil
}

func (repo *catalogRepository) GetResourceByID(_ context.Context, id string) (catalog.Resource, error) {
	repo.resources.RLock()
	defer repo.resources.RUnlock()
	if r, ok := repo.resources.rows[id]; ok {
		return *r, nil
	}
	return catalog.Resource{}, catalog.ErrNotFound
}

func (repo *catalogRepository) DeleteAllResources(_ context.Context) error {
	repo.resources.Lock()
	defer repo.resources.Unlock()
	repo.resources.rows = map[string]*catalog.Resource{}
	return nil
}
