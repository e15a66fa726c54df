package repository

import (
	"encoding/json"
	"fmt"

	"github.com/harshthakur02/freelancehub/internal/models"
	"github.com/harshthakur02/freelancehub/internal/store"
)

// Users returns all registered users in insertion order.
func (r *Repository) Users() ([]models.User, error) {
	raw, ok, err := r.store.Get(store.KeyUsers)
	if err != nil {
		return nil, fmt.Errorf("read users: %w", err)
	}
	if !ok {
		return []models.User{}, nil
	}
	var users []models.User
	if err := json.Unmarshal([]byte(raw), &users); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	return users, nil
}

// SetUsers replaces the whole collection.
func (r *Repository) SetUsers(users []models.User) error {
	raw, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("encode users: %w", err)
	}
	if err := r.store.Set(store.KeyUsers, string(raw)); err != nil {
		return fmt.Errorf("write users: %w", err)
	}
	return nil
}

func (r *Repository) AddUser(u models.User) error {
	users, err := r.Users()
	if err != nil {
		return err
	}
	return r.SetUsers(append(users, u))
}

// UpdateUser applies fn to the matching user and rewrites the collection.
// An absent id is a silent no-op, not an error.
func (r *Repository) UpdateUser(id string, fn func(*models.User)) error {
	users, err := r.Users()
	if err != nil {
		return err
	}
	for i := range users {
		if users[i].ID == id {
			fn(&users[i])
			return r.SetUsers(users)
		}
	}
	return nil
}

// UserByEmail returns the first user with the given email, or nil.
func (r *Repository) UserByEmail(email string) (*models.User, error) {
	users, err := r.Users()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Email == email {
			return &users[i], nil
		}
	}
	return nil, nil
}

func (r *Repository) UserByID(id string) (*models.User, error) {
	users, err := r.Users()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, nil
}
