package repository

import (
	"github.com/harshthakur02/freelancehub/internal/store"
)

// Repository owns every persisted collection. Reads always deserialize a
// fresh copy and mutations re-serialize the whole collection, so callers
// never hold a live reference into persisted state. Last writer wins.
type Repository struct {
	store store.Store
}

func New(st store.Store) *Repository {
	return &Repository{store: st}
}
