package catalog

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/harshthakur02/freelancehub/internal/models"
	"github.com/harshthakur02/freelancehub/internal/repository"
	"github.com/harshthakur02/freelancehub/internal/utils"
)

var (
	ErrServiceNotFound = errors.New("service not found")
	ErrNotOwner        = errors.New("service does not belong to this freelancer")
	ErrNotFreelancer   = errors.New("only freelancers can publish services")
)

// Categories is the suggested set shown by the marketplace UI. The field
// itself stays free-form at the data layer.
func Categories() []string {
	return []string{
		"Web Development",
		"Mobile Development",
		"Design",
		"Writing",
		"Marketing",
		"Video Editing",
		"Other",
	}
}

// Service implements publishing and discovery rules for the catalog.
type Service struct {
	repo *repository.Repository
}

func NewService(repo *repository.Repository) *Service {
	return &Service{repo: repo}
}

type ServiceInput struct {
	Title        string
	Description  string
	Category     string
	Price        float64
	DeliveryDays int
}

func validateInput(in ServiceInput) error {
	fieldErrs := utils.FieldErrors{}
	if strings.TrimSpace(in.Title) == "" {
		fieldErrs.Add("title", "title is required")
	}
	if strings.TrimSpace(in.Description) == "" {
		fieldErrs.Add("description", "description is required")
	}
	if strings.TrimSpace(in.Category) == "" {
		fieldErrs.Add("category", "category is required")
	}
	if in.Price <= 0 {
		fieldErrs.Add("price", "price must be greater than zero")
	}
	if in.DeliveryDays <= 0 {
		fieldErrs.Add("delivery_days", "delivery days must be a positive number")
	}
	return fieldErrs.Err()
}

// Publish creates a new service for the freelancer. New services are always
// active; the freelancer name is snapshotted and never synced afterwards.
func (s *Service) Publish(freelancer *models.User, in ServiceInput) (*models.Service, error) {
	if !freelancer.IsFreelancer() {
		return nil, ErrNotFreelancer
	}
	if err := validateInput(in); err != nil {
		return nil, err
	}

	svc := models.Service{
		ID:             uuid.NewString(),
		FreelancerID:   freelancer.ID,
		FreelancerName: freelancer.FullName,
		Title:          strings.TrimSpace(in.Title),
		Description:    strings.TrimSpace(in.Description),
		Category:       strings.TrimSpace(in.Category),
		Price:          in.Price,
		DeliveryDays:   in.DeliveryDays,
		IsActive:       true,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.repo.AddService(svc); err != nil {
		return nil, err
	}
	return &svc, nil
}

// Update replaces the editable fields of an owned service. IsActive is left
// alone; use ToggleActive for that.
func (s *Service) Update(freelancerID, serviceID string, in ServiceInput) (*models.Service, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	if _, err := s.owned(freelancerID, serviceID); err != nil {
		return nil, err
	}

	err := s.repo.UpdateService(serviceID, func(svc *models.Service) {
		svc.Title = strings.TrimSpace(in.Title)
		svc.Description = strings.TrimSpace(in.Description)
		svc.Category = strings.TrimSpace(in.Category)
		svc.Price = in.Price
		svc.DeliveryDays = in.DeliveryDays
	})
	if err != nil {
		return nil, err
	}
	return s.repo.ServiceByID(serviceID)
}

// ToggleActive flips the visibility flag of an owned service.
func (s *Service) ToggleActive(freelancerID, serviceID string) (*models.Service, error) {
	if _, err := s.owned(freelancerID, serviceID); err != nil {
		return nil, err
	}
	err := s.repo.UpdateService(serviceID, func(svc *models.Service) {
		svc.IsActive = !svc.IsActive
	})
	if err != nil {
		return nil, err
	}
	return s.repo.ServiceByID(serviceID)
}

// Delete removes an owned service. Existing bookings keep their snapshots.
func (s *Service) Delete(freelancerID, serviceID string) error {
	if _, err := s.owned(freelancerID, serviceID); err != nil {
		return err
	}
	return s.repo.DeleteService(serviceID)
}

func (s *Service) owned(freelancerID, serviceID string) (*models.Service, error) {
	svc, err := s.repo.ServiceByID(serviceID)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, ErrServiceNotFound
	}
	if svc.FreelancerID != freelancerID {
		return nil, ErrNotOwner
	}
	return svc, nil
}

// Active returns every bookable service in insertion order.
func (s *Service) Active() ([]models.Service, error) {
	return s.repo.ActiveServices()
}

// Mine returns all services of one freelancer, active or not.
func (s *Service) Mine(freelancerID string) ([]models.Service, error) {
	return s.repo.ServicesByFreelancer(freelancerID)
}

// Search filters active services by category and a case-insensitive
// substring match over title, description and freelancer name. Empty query
// and "All" (or empty) category return everything.
func (s *Service) Search(query, category string) ([]models.Service, error) {
	services, err := s.repo.ActiveServices()
	if err != nil {
		return nil, err
	}

	if category != "" && category != "All" {
		filtered := make([]models.Service, 0, len(services))
		for _, svc := range services {
			if svc.Category == category {
				filtered = append(filtered, svc)
			}
		}
		services = filtered
	}

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return services, nil
	}

	matched := make([]models.Service, 0, len(services))
	for _, svc := range services {
		if strings.Contains(strings.ToLower(svc.Title), query) ||
			strings.Contains(strings.ToLower(svc.Description), query) ||
			strings.Contains(strings.ToLower(svc.FreelancerName), query) {
			matched = append(matched, svc)
		}
	}
	return matched, nil
}
