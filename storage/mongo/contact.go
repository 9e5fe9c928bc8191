package mongodb

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/edupathpro/edupath/core/contact"
)

type contactRepository struct {
	col *mongo.Collection
}

var _ contact.Repository = (*contactRepository)(nil) // interface compliance check

func NewContactRepository(db *DB) contact.Repository {
	return &contactRepository{col: db.contacts}
}

func (repo *contactRepository) CreateSubmission(ctx context.Context, sub contact.Submission) (contact.Submission, error) {
	if _, err := repo.col.InsertOne(ctx, sub); err != nil {
		return contact.Submission{}, errors.Wrap(err, "inserting submission")
	}
	return sub, nil
}

func (repo *contactRepository) QuerySubmissions(ctx context.Context) ([]contact.Submission, error) {
	cursor, err := repo.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, errors.Wrap(err, "querying submissions")
	}
	var subs []contact.Submission
	if err = cursor.All(ctx, &subs); err != nil {
		return nil, errors.Wrap(err, "decoding submissions")
	}
	return subs, nil
}

func (repo *contactRepository) UpdateSubmissionStatus(ctx context.Context, id, status string) (contact.Submission, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	res := repo.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"status": status}}, opts)

	var sub contact.Submission
	if err := res.Decode(&sub); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return contact.Submission{}, contact.ErrNotFound
		}
		return contact.Submission{}, errors.Wrap(err, "updating submission status")
	}
	return sub, nil
}

func (repo *contactRepository) DeleteAllSubmissions(ctx context.Context) error {
	_, err := repo.col.DeleteMany(ctx, bson.M{})
	return errors.Wrap(err, "clearing submissions")
}
