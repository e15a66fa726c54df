package models

import "time"

type UserType string

const (
	UserTypeClient     UserType = "client"
	UserTypeFreelancer UserType = "freelancer"
)

// User is either a client hiring freelancers or a freelancer offering
// services. UserType never changes after registration.
type User struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	FullName   string    `json:"full_name"`
	UserType   UserType  `json:"user_type"`
	Bio        string    `json:"bio"`
	AvatarURL  string    `json:"avatar_url"`
	Skills     []string  `json:"skills"`
	HourlyRate float64   `json:"hourly_rate"`
	CreatedAt  time.Time `json:"created_at"`
}

// IsFreelancer reports whether the user can publish services.
func (u *User) IsFreelancer() bool {
	return u.UserType == UserTypeFreelancer
}
