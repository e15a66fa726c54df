package auth

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
	ErrEmailTaken   = errors.New("email already registered")
	ErrUserNotFound = errors.New("user not found")
)

// Service implements registration, login and profile rules on top of the
// repository. There is no credential verification: the password is a form
// field only and is never persisted.
type Service struct {
	repo *repository.Repository
}

func NewService(repo *repository.Repository) *Service {
	return &Service{repo: repo}
}

type RegisterInput struct {
	Email    string
	Password string
	FullName string
	UserType models.UserType
}

// Register creates a user with an empty profile and logs them in.
// Email uniqueness is checked here and only here; profile updates do not
// re-validate it.
func (s *Service) Register(in RegisterInput) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	password := strings.TrimSpace(in.Password)
	fullName := strings.TrimSpace(in.FullName)

	fieldErrs := utils.FieldErrors{}
	if email == "" {
		fieldErrs.Add("email", "email is required")
	} else if !strings.Contains(email, "@") {
		fieldErrs.Add("email", "invalid email format")
	}
	if password == "" {
		fieldErrs.Add("password", "password is required")
	}
	if fullName == "" {
		fieldErrs.Add("full_name", "full name is required")
	}
	if in.UserType != models.UserTypeClient && in.UserType != models.UserTypeFreelancer {
		fieldErrs.Add("user_type", "user type must be client or freelancer")
	}
	if err := fieldErrs.Err(); err != nil {
		return nil, err
	}

	existing, err := s.repo.UserByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	u := models.User{
		ID:        uuid.NewString(),
		Email:     email,
		FullName:  fullName,
		UserType:  in.UserType,
		Bio:       "",
		AvatarURL: "",
		Skills:    []string{},
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.AddUser(u); err != nil {
		return nil, err
	}
	if err := s.repo.SetCurrentUser(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Login looks the user up by email and establishes the session. The
// password is required to be present but is not checked against anything.
func (s *Service) Login(email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	password = strings.TrimSpace(password)

	fieldErrs := utils.FieldErrors{}
	if email == "" {
		fieldErrs.Add("email", "email is required")
	}
	if password == "" {
		fieldErrs.Add("password", "password is required")
	}
	if err := fieldErrs.Err(); err != nil {
		return nil, err
	}

	u, err := s.repo.UserByEmail(email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	if err := s.repo.SetCurrentUser(u); err != nil {
		return nil, err
	}
	return u, nil
}

// Logout clears the session unconditionally.
func (s *Service) Logout() error {
	return s.repo.ClearCurrentUser()
}

// Current returns the logged-in user, or nil.
func (s *Service) Current() (*models.User, error) {
	return s.repo.CurrentUser()
}

type ProfileInput struct {
	FullName   string
	Bio        string
	Skills     string // comma-separated
	HourlyRate string
}

// UpdateProfile replaces the user's profile fields. Services and bookings
// created earlier keep their name snapshots. When the session points at the
// same user the pointer is re-snapshotted so it never goes stale.
func (s *Service) UpdateProfile(userID string, in ProfileInput) (*models.User, error) {
	err := s.repo.UpdateUser(userID, func(u *models.User) {
		u.FullName = strings.TrimSpace(in.FullName)
		u.Bio = in.Bio
		u.Skills = utils.ParseSkills(in.Skills)
		u.HourlyRate = utils.ParseRate(in.HourlyRate)
	})
	if err != nil {
		return nil, err
	}

	updated, err := s.repo.UserByID(userID)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrUserNotFound
	}

	cur, err := s.repo.CurrentUser()
	if err != nil {
		return nil, err
	}
	if cur != nil && cur.ID == userID {
		if err := s.repo.SetCurrentUser(updated); err != nil {
			return nil, err
		}
	}
	return updated, nil
}
