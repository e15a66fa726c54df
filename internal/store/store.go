package store

// Fixed keys for the four persisted records. The layout is identical to the
// browser build: three JSON arrays plus a single JSON user for the session.
const (
	KeyUsers       = "freelance_users"
	KeyServices    = "freelance_services"
	KeyBookings    = "freelance_bookings"
	KeyCurrentUser = "freelance_current_user"
)

// Store is the persistent key-value adapter. Values are opaque string
// blobs; there are no transactions and no partial writes.
type Store interface {
	// Get returns the value for key, or ok=false when the key is absent.
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Remove(key string) error
}
