package repository

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/harshthakur02/freelancehub/internal/models"
	"github.com/harshthakur02/freelancehub/internal/store"
)

func (r *Repository) Bookings() ([]models.Booking, error) {
	raw, ok, err := r.store.Get(store.KeyBookings)
	if err != nil {
		return nil, fmt.Errorf("read bookings: %w", err)
	}
	if !ok {
		return []models.Booking{}, nil
	}
	var bookings []models.Booking
	if err := json.Unmarshal([]byte(raw), &bookings); err != nil {
		return nil, fmt.Errorf("decode bookings: %w", err)
	}
	return bookings, nil
}

func (r *Repository) SetBookings(bookings []models.Booking) error {
	raw, err := json.Marshal(bookings)
	if err != nil {
		return fmt.Errorf("encode bookings: %w", err)
	}
	if err := r.store.Set(store.KeyBookings, string(raw)); err != nil {
		return fmt.Errorf("write bookings: %w", err)
	}
	return nil
}

func (r *Repository) AddBooking(b models.Booking) error {
	bookings, err := r.Bookings()
	if err != nil {
		return err
	}
	return r.SetBookings(append(bookings, b))
}

// UpdateBooking applies fn to the matching booking and bumps UpdatedAt.
// An absent id is a silent no-op.
func (r *Repository) UpdateBooking(id string, fn func(*models.Booking)) error {
	bookings, err := r.Bookings()
	if err != nil {
		return err
	}
	for i := range bookings {
		if bookings[i].ID == id {
			fn(&bookings[i])
			bookings[i].UpdatedAt = time.Now().UTC()
			return r.SetBookings(bookings)
		}
	}
	return nil
}

func (r *Repository) BookingByID(id string) (*models.Booking, error) {
	bookings, err := r.Bookings()
	if err != nil {
		return nil, err
	}
	for i := range bookings {
		if bookings[i].ID == id {
			return &bookings[i], nil
		}
	}
	return nil, nil
}

func (r *Repository) BookingsByClient(clientID string) ([]models.Booking, error) {
	bookings, err := r.Bookings()
	if err != nil {
		return nil, err
	}
	out := make([]models.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.ClientID == clientID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *Repository) BookingsByFreelancer(freelancerID string) ([]models.Booking, error) {
	bookings, err := r.Bookings()
	if err != nil {
		return nil, err
	}
	out := make([]models.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.FreelancerID == freelancerID {
			out = append(out, b)
		}
	}
	return out, nil
}
