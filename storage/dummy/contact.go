package dummydb

import (
	"context"

	"github.com/edupathpro/edupath/core/contact"
)

type contactRepository struct {
	db *table[contact.Submission]
}

var _ contact.Repository = (*contactRepository)(nil) // interface compliance check

func NewContactRepository(db *DB) contact.Repository {
	return &contactRepository{db: db.submissions}
}

func (repo *contactRepository) CreateSubmission(_ context.Context, sub contact.Submission) (contact.Submission, error) {
	repo.db.Lock()
	defer repo.db.Unlock()
	repo.db.rows[sub.ID] = &sub
	return sub, nil
}

func (repo *contactRepository) QuerySubmissions(_ context.Context) ([]contact.Submission, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return repo.db.all(), nil
}

func (repo *contactRepository) UpdateSubmissionStatus(_ context.Context, id, status string) (contact.Submission, error) {
	repo.db.Lock()
	defer repo.db.Unlock()
	sub, ok := repo.db.rows[id]
	if !ok {
		return contact.Submission{}, contact.ErrNotFound
	}
	sub.Status = status
	return *sub, nil
}

func (repo *contactRepository) DeleteAllSubmissions(_ context.Context) error {
	repo.db.Lock()
	defer repo.db.Unlock()
	repo.db.rows = map[string]*contact.Submission{}
	return nil
}
