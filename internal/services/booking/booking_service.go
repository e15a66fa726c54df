package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/harshthakur02/freelancehub/internal/models"
	"github.com/harshthakur02/freelancehub/internal/repository"
)

var (
	ErrBookingNotFound   = errors.New("booking not found")
	ErrServiceNotFound   = errors.New("service not found")
	ErrServiceInactive   = errors.New("service is not open for booking")
	ErrNotOwner          = errors.New("booking does not belong to this freelancer")
	ErrInvalidTransition = errors.New("booking status transition not allowed")
)

// Service implements booking creation and the status state machine.
type Service struct {
	repo *repository.Repository
}

func NewService(repo *repository.Repository) *Service {
	return &Service{repo: repo}
}

// Book creates a pending booking for an active service. Price, title and
// both party names are snapshotted at this moment and never refreshed.
func (s *Service) Book(client *models.User, serviceID, message string) (*models.Booking, error) {
	svc, err := s.repo.ServiceByID(serviceID)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, ErrServiceNotFound
	}
	if !svc.IsActive {
		return nil, ErrServiceInactive
	}

	now := time.Now().UTC()
	b := models.Booking{
		ID:             uuid.NewString(),
		ServiceID:      svc.ID,
		ServiceTitle:   svc.Title,
		ClientID:       client.ID,
		ClientName:     client.FullName,
		FreelancerID:   svc.FreelancerID,
		FreelancerName: svc.FreelancerName,
		Status:         models.BookingStatusPending,
		Message:        message,
		Price:          svc.Price,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.repo.AddBooking(b); err != nil {
		return nil, err
	}
	return &b, nil
}

// Accept moves a pending booking to accepted.
func (s *Service) Accept(freelancerID, bookingID string) (*models.Booking, error) {
	return s.transition(freelancerID, bookingID, models.BookingStatusAccepted)
}

// Decline moves a pending booking to cancelled.
func (s *Service) Decline(freelancerID, bookingID string) (*models.Booking, error) {
	return s.transition(freelancerID, bookingID, models.BookingStatusCancelled)
}

// Complete moves an accepted booking to completed.
func (s *Service) Complete(freelancerID, bookingID string) (*models.Booking, error) {
	return s.transition(freelancerID, bookingID, models.BookingStatusCompleted)
}

// transition enforces ownership and the state machine, then bumps
// UpdatedAt through the repository. Everything else stays untouched.
func (s *Service) transition(freelancerID, bookingID string, next models.BookingStatus) (*models.Booking, error) {
	b, err := s.repo.BookingByID(bookingID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrBookingNotFound
	}
	if b.FreelancerID != freelancerID {
		return nil, ErrNotOwner
	}
	if !b.Status.CanTransitionTo(next) {
		return nil, ErrInvalidTransition
	}

	err = s.repo.UpdateBooking(bookingID, func(bk *models.Booking) {
		bk.Status = next
	})
	if err != nil {
		return nil, err
	}
	return s.repo.BookingByID(bookingID)
}

// ForClient returns the client's bookings in insertion order.
func (s *Service) ForClient(clientID string) ([]models.Booking, error) {
	return s.repo.BookingsByClient(clientID)
}

// ForFreelancer returns the freelancer's incoming bookings.
func (s *Service) ForFreelancer(freelancerID string) ([]models.Booking, error) {
	return s.repo.BookingsByFreelancer(freelancerID)
}
