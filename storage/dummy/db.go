// Package dummydb provides mutex-guarded in-memory repositories used in
// tests and local hacking.
package dummydb

import (
	"sync"

	"github.com/edupathpro/edupath/core/bookmark"
	"github.com/edupathpro/edupath/core/catalog"
	"github.com/edupathpro/edupath/core/contact"
	"github.com/edupathpro/edupath/core/timeline"
	"github.com/edupathpro/edupath/core/user"
)

type (
	DB struct {
		users        *table[user.User]
		colleges     *table[catalog.College]
		courses      *table[catalog.Course]
		scholarships *table[catalog.Scholarship]
		careers      *table[catalog.CareerPath]
		resources    *table[catalog.Resource]
		bookmarks    *table[bookmark.Bookmark]
		applications *table[bookmark.Application]
		events       *table[timeline.Event]
		submissions  *table[contact.Submission]
	}

	table[T any] struct {
		sync.RWMutex
		rows map[string]*T
	}
)

func newTable[T any]() *table[T] {
	return &table[T]{rows: make(map[string]*T)}
}

func (t *table[T]) all() []T {
	out := make([]T, 0, len(t.rows))
	for _, row := range t.rows {
		out = append(out, *row)
	}
	return out
}

func Open() (*DB, error) {
	db := &DB{
		users:        newTable[user.User](),
		colleges:     newTable[catalog.College](),
		courses:      newTable[catalog.Course](),
		scholarships: newTable[catalog.Scholarship](),
		careers:      newTable[catalog.CareerPath](),
		resources:    newTable[catalog.Resource](),
		bookmarks:    newTable[bookmark.Bookmark](),
		applications: newTable[bookmark.Application](),
		events:       newTable[timeline.Event](),
		submissions:  newTable[contact.Submission](),
	}
	return db, nil
}
