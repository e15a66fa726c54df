package models

import "time"

// Service is an offer published by a freelancer. FreelancerName is a
// snapshot taken at creation and is not kept in sync with the User record.
type Service struct {
	ID             string    `json:"id"`
	FreelancerID   string    `json:"freelancer_id"`
	FreelancerName string    `json:"freelancer_name"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Category       string    `json:"category"`
	Price          float64   `json:"price"`
	DeliveryDays   int       `json:"delivery_days"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
}
