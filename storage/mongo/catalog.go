package mongodb

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/edupathpro/edupath/core/catalog"
)

type catalogRepository struct {
	colleges     *mongo.Collection
	courses      *mongo.Collection
	scholarships *mongo.Collection
	careers      *mongo.Collection
	resources    *mongo.Collection
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

func insertMany[T any](ctx context.Context, col *mongo.Collection, items []T) error {
	if len(items) == 0 {
		return nil
	}
	docs := make([]interface{}, 0, len(items))
	for _, item := range items {
		docs = append(docs, item)
	}
	_, err := col.InsertMany(ctx, docs)
	return errors.Wrapf(err, "inserting into %s", col.Name())
}

func queryAll[T any](ctx context.Context, col *mongo.Collection) ([]T, error) {
	cursor, err := col.Find(ctx, bson.M{})
	if err != nil {
		return nil, errors.Wrapf(err, "querying %s", col.Name())
	}
	var items []T
	if err = cursor.All(ctx, &items); err != nil {
		return nil, errors.Wrapf(err, "decoding %s", col.Name())
	}
	return items, nil
}

func getByID[T any](ctx context.Context, col *mongo.Collection, id string) (T, error) {
	var item T
	if err := col.FindOne(ctx, bson.M{"_id": id}).Decode(&item); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return item, catalog.ErrNotFound
		}
		return item, errors.Wrapf(err, "finding in %s", col.Name())
	}
	return item, nil
}

func deleteAll(ctx context.Context, col *mongo.Collection) error {
	_, err := col.DeleteMany(ctx, bson.M{})
	return errors.Wrapf(err, "clearing %s", col.Name())
}

func (repo *catalogRepository) CreateColleges(ctx context.Context, colleges ...catalog.College) error {
	return insertMany(ctx, repo.colleges, colleges)
}

func (repo *catalogRepository) QueryColleges(ctx context.Context) ([]catalog.College, error) {
	return queryAll[catalog.College](ctx, repo.colleges)
}

func (repo *catalogRepository) GetCollegeByID(ctx context.Context, id string) (catalog.College, error) {
	return getByID[catalog.College](ctx, repo.colleges, id)
}

func (repo *catalogRepository) DeleteAllColleges(ctx context.Context) error {
	return deleteAll(ctx, repo.colleges)
}

func (repo *catalogRepository) CreateCourses(ctx context.Context, courses ...catalog.Course) error {
	return insertMany(ctx, repo.courses, courses)
}

func (repo *catalogRepository) QueryCourses(ctx context.Context) ([]catalog.Course, error) {
	return queryAll[catalog.Course](ctx, repo.courses)
}

func (repo *catalogRepository) GetCourseByID(ctx context.Context, id string) (catalog.Course, error) {
	return getByID[catalog.Course](ctx, repo.courses, id)
}

func (repo *catalogRepository) DeleteAllCourses(ctx context.Context) error {
	return deleteAll(ctx, repo.courses)
}

func (repo *catalogRepository) CreateScholarships(ctx context.Context, scholarships ...catalog.Scholarship) error {
	return insertMany(ctx, repo.scholarships, scholarships)
}

func (repo *catalogRepository) QueryScholarships(ctx context.Context) ([]catalog.Scholarship, error) {
	return queryAll[catalog.Scholarship](ctx, repo.scholarships)
}

func (repo *catalogRepository) GetScholarshipByID(ctx context.Context, id string) (catalog.Scholarship, error) {
	return getByID[catalog.Scholarship](ctx, repo.scholarships, id)
}

func (repo *catalogRepository) DeleteAllScholarships(ctx context.Context) error {
	return deleteAll(ctx, repo.scholarships)
}

func (repo *catalogRepository) CreateCareers(ctx context.Context, careers ...catalog.CareerPath) error {
	return insertMany(ctx, repo.careers, careers)
}

func (repo *catalogRepository) QueryCareers(ctx context.Context) ([]catalog.CareerPath, error) {
	return queryAll[catalog.CareerPath](ctx, repo.careers)
}

func (repo *catalogRepository) GetCareerByID(ctx context.Context, id string) (catalog.CareerPath, error) {
	return getByID[catalog.CareerPath](ctx, repo.careers, id)
}

func (repo *catalogRepository) DeleteAllCareers(ctx context.Context) error {
	return deleteAll(ctx, repo.careers)
}

func (repo *catalogRepository) CreateResources(ctx context.Context, resources ...catalog.Resource) error {
	return insertMany(ctx, repo.resources, resources)
}

func (repo *catalogRepository) QueryResources(ctx context.Context) ([]catalog.Resource, error) {
	return queryAll[catalog.Resource](ctx, repo.resources)
}

func (repo *catalogRepository) GetResourceByID(ctx context.Context, id string) (catalog.Resource, error) {
	return getByID[catalog.Resource](ctx, repo.resources, id)
}

func (repo *catalogRepository) DeleteAllResources(ctx context.Context) error {
	return deleteAll(ctx, repo.resources)
}
