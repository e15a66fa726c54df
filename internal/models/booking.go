package models

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"   // waiting for the freelancer
	BookingStatusAccepted  BookingStatus = "accepted"  // freelancer accepted, work ongoing
	BookingStatusCompleted BookingStatus = "completed" // work delivered
	BookingStatusCancelled BookingStatus = "cancelled" // freelancer declined
)

// bookingTransitions is the full set of legal status moves. completed and
// cancelled are terminal.
var bookingTransitions = map[BookingStatus]map[BookingStatus]bool{
	BookingStatusPending: {
		BookingStatusAccepted:  true,
		BookingStatusCancelled: true,
	},
	BookingStatusAccepted: {
		BookingStatusCompleted: true,
	},
}

// CanTransitionTo reports whether moving from s to next is legal.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	return bookingTransitions[s][next]
}

// IsTerminal reports whether no further transition is defined from s.
func (s BookingStatus) IsTerminal() bool {
	return len(bookingTransitions[s]) == 0
}

// Booking is a client's request for a service. Title, names and price are
// snapshots taken at booking time and are never re-derived afterwards.
type Booking struct {
	ID             string        `json:"id"`
	ServiceID      string        `json:"service_id"`
	ServiceTitle   string        `json:"service_title"`
	ClientID       string        `json:"client_id"`
	ClientName     string        `json:"client_name"`
	FreelancerID   string        `json:"freelancer_id"`
	FreelancerName string        `json:"freelancer_name"`
	Status         BookingStatus `json:"status"`
	Message        string        `json:"message"`
	Price          float64       `json:"price"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}
