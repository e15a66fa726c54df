package repository

import (
	"encoding/json"
	"fmt"

	"github.com/harshthakur02/freelancehub/internal/models"
	"github.com/harshthakur02/freelancehub/internal/store"
)

// CurrentUser returns the logged-in user, or nil when nobody is logged in.
// The stored value is a snapshot taken at login; when the user record still
// exists it is re-resolved against the Users collection so profile edits
// are never served stale.
func (r *Repository) CurrentUser() (*models.User, error) {
	raw, ok, err := r.store.Get(store.KeyCurrentUser)
	if err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}
	if !ok {
		return nil, nil
	}
	var u models.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}

	fresh, err := r.UserByID(u.ID)
	if err != nil {
		return nil, err
	}
	if fresh != nil {
		return fresh, nil
	}
	return &u, nil
}

// SetCurrentUser stores a snapshot of u as the session pointer. Passing nil
// clears the session.
func (r *Repository) SetCurrentUser(u *models.User) error {
	if u == nil {
		return r.ClearCurrentUser()
	}
	raw, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := r.store.Set(store.KeyCurrentUser, string(raw)); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}

func (r *Repository) ClearCurrentUser() error {
	if err := r.store.Remove(store.KeyCurrentUser); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
