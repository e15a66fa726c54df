package repository

import (
	"encoding/json"
	"fmt"

	"github.com/harshthakur02/freelancehub/internal/models"
	"github.com/harshthakur02/freelancehub/internal/store"
)

func (r *Repository) Services() ([]models.Service, error) {
	raw, ok, err := r.store.Get(store.KeyServices)
	if err != nil {
		return nil, fmt.Errorf("read services: %w", err)
	}
	if !ok {
		return []models.Service{}, nil
	}
	var services []models.Service
	if err := json.Unmarshal([]byte(raw), &services); err != nil {
		return nil, fmt.Errorf("decode services: %w", err)
	}
	return services, nil
}

func (r *Repository) SetServices(services []models.Service) error {
	raw, err := json.Marshal(services)
	if err != nil {
		return fmt.Errorf("encode services: %w", err)
	}
	if err := r.store.Set(store.KeyServices, string(raw)); err != nil {
		return fmt.Errorf("write services: %w", err)
	}
	return nil
}

func (r *Repository) AddService(s models.Service) error {
	services, err := r.Services()
	if err != nil {
		return err
	}
	return r.SetServices(append(services, s))
}

func (r *Repository) UpdateService(id string, fn func(*models.Service)) error {
	services, err := r.Services()
	if err != nil {
		return err
	}
	for i := range services {
		if services[i].ID == id {
			fn(&services[i])
			return r.SetServices(services)
		}
	}
	return nil
}

// DeleteService removes the service with the given id. Bookings that
// reference it keep their snapshots; there is no cascade.
func (r *Repository) DeleteService(id string) error {
	services, err := r.Services()
	if err != nil {
		return err
	}
	kept := make([]models.Service, 0, len(services))
	for _, s := range services {
		if s.ID != id {
			kept = append(kept, s)
		}
	}
	return r.SetServices(kept)
}

func (r *Repository) ServiceByID(id string) (*models.Service, error) {
	services, err := r.Services()
	if err != nil {
		return nil, err
	}
	for i := range services {
		if services[i].ID == id {
			return &services[i], nil
		}
	}
	return nil, nil
}

func (r *Repository) ServicesByFreelancer(freelancerID string) ([]models.Service, error) {
	services, err := r.Services()
	if err != nil {
		return nil, err
	}
	out := make([]models.Service, 0, len(services))
	for _, s := range services {
		if s.FreelancerID == freelancerID {
			out = append(out, s)
		}
	}
	return out, nil
}

// ActiveServices returns the bookable subset in insertion order.
func (r *Repository) ActiveServices() ([]models.Service, error) {
	services, err := r.Services()
	if err != nil {
		return nil, err
	}
	out := make([]models.Service, 0, len(services))
	for _, s := range services {
		if s.IsActive {
			out = append(out, s)
		}
	}
	return out, nil
}
