package booking_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harshthakur02/freelancehub/internal/models"
	"github.com/harshthakur02/freelancehub/internal/repository"
	"github.com/harshthakur02/freelancehub/internal/services/auth"
	"github.com/harshthakur02/freelancehub/internal/services/booking"
	"github.com/harshthakur02/freelancehub/internal/services/catalog"
	"github.com/harshthakur02/freelancehub/internal/store"
)

type fixture struct {
	auth    *auth.Service
	catalog *catalog.Service
	booking *booking.Service
	repo    *repository.Repository

	alice *models.User // client
	bob   *models.User // freelancer
	logo  *models.Service
}

func setup(t *testing.T) *fixture {
	t.Helper()
	repo := repository.New(store.NewMemory())

	f := &fixture{
		auth:    auth.NewService(repo),
		catalog: catalog.NewService(repo),
		booking: booking.NewService(repo),
		repo:    repo,
	}

	var err error
	f.alice, err = f.auth.Register(auth.RegisterInput{
		Email:    "alice@x.com",
		Password: "pw",
		FullName: "Alice",
		UserType: models.UserTypeClient,
	})
	require.NoError(t, err)

	f.bob, err = f.auth.Register(auth.RegisterInput{
		Email:    "bob@x.com",
		Password: "pw",
		FullName: "Bob",
		UserType: models.UserTypeFreelancer,
	})
	require.NoError(t, err)

	f.logo, err = f.catalog.Publish(f.bob, catalog.ServiceInput{
		Title:        "Logo Design",
		Description:  "Clean vector logos",
		Category:     "Design",
		Price:        50,
		DeliveryDays: 3,
	})
	require.NoError(t, err)

	return f
}

func TestBookSnapshotsServiceAndParties(t *testing.T) {
	f := setup(t)

	b, err := f.booking.Book(f.alice, f.logo.ID, "need by Friday")
	require.NoError(t, err)

	assert.NotEmpty(t, b.ID)
	assert.Equal(t, f.logo.ID, b.ServiceID)
	assert.Equal(t, "Logo Design", b.ServiceTitle)
	assert.Equal(t, f.alice.ID, b.ClientID)
	assert.Equal(t, "Alice", b.ClientName)
	assert.Equal(t, f.bob.ID, b.FreelancerID)
	assert.Equal(t, "Bob", b.FreelancerName)
	assert.Equal(t, models.BookingStatusPending, b.Status)
	assert.Equal(t, "need by Friday", b.Message)
	assert.Equal(t, 50.0, b.Price)
	assert.Equal(t, b.CreatedAt, b.UpdatedAt)
}

func TestBookUnknownService(t *testing.T) {
	f := setup(t)

	_, err := f.booking.Book(f.alice, "missing", "")
	assert.ErrorIs(t, err, booking.ErrServiceNotFound)
}

func TestBookInactiveService(t *testing.T) {
	f := setup(t)

	_, err := f.catalog.ToggleActive(f.bob.ID, f.logo.ID)
	require.NoError(t, err)

	_, err = f.booking.Book(f.alice, f.logo.ID, "")
	assert.ErrorIs(t, err, booking.ErrServiceInactive)
}

func TestLegalTransitionPath(t *testing.T) {
	f := setup(t)

	b, err := f.booking.Book(f.alice, f.logo.ID, "")
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)

	accepted, err := f.booking.Accept(f.bob.ID, b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusAccepted, accepted.Status)
	assert.True(t, accepted.UpdatedAt.After(b.UpdatedAt))

	completed, err := f.booking.Complete(f.bob.ID, b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCompleted, completed.Status)

	// everything else is untouched
	assert.Equal(t, b.Price, completed.Price)
	assert.Equal(t, b.Message, completed.Message)
	assert.Equal(t, b.CreatedAt, completed.CreatedAt)
}

func TestPendingCannotJumpToCompleted(t *testing.T) {
	f := setup(t)

	b, err := f.booking.Book(f.alice, f.logo.ID, "")
	require.NoError(t, err)

	_, err = f.booking.Complete(f.bob.ID, b.ID)
	assert.ErrorIs(t, err, booking.ErrInvalidTransition)

	got, err := f.repo.BookingByID(b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusPending, got.Status)
}

func TestDeclinedIsTerminal(t *testing.T) {
	f := setup(t)

	b, err := f.booking.Book(f.alice, f.logo.ID, "")
	require.NoError(t, err)

	declined, err := f.booking.Decline(f.bob.ID, b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCancelled, declined.Status)
	assert.True(t, declined.Status.IsTerminal())

	_, err = f.booking.Accept(f.bob.ID, b.ID)
	assert.ErrorIs(t, err, booking.ErrInvalidTransition)
	_, err = f.booking.Complete(f.bob.ID, b.ID)
	assert.ErrorIs(t, err, booking.ErrInvalidTransition)
}

func TestTransitionOwnership(t *testing.T) {
	f := setup(t)

	b, err := f.booking.Book(f.alice, f.logo.ID, "")
	require.NoError(t, err)

	// the client cannot accept their own booking
	_, err = f.booking.Accept(f.alice.ID, b.ID)
	assert.ErrorIs(t, err, booking.ErrNotOwner)

	_, err = f.booking.Accept(f.bob.ID, "missing")
	assert.ErrorIs(t, err, booking.ErrBookingNotFound)
}

// TestMarketplaceFlow walks the whole happy path: Alice books Bob's logo
// service, Bob accepts and completes it.
func TestMarketplaceFlow(t *testing.T) {
	f := setup(t)

	b, err := f.booking.Book(f.alice, f.logo.ID, "need by Friday")
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusPending, b.Status)
	assert.Equal(t, 50.0, b.Price)

	accepted, err := f.booking.Accept(f.bob.ID, b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusAccepted, accepted.Status)

	completed, err := f.booking.Complete(f.bob.ID, b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCompleted, completed.Status)

	services, err := f.repo.Services()
	require.NoError(t, err)
	assert.Len(t, services, 1)

	bookings, err := f.repo.Bookings()
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, models.BookingStatusCompleted, bookings[0].Status)

	mine, err := f.booking.ForClient(f.alice.ID)
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	incoming, err := f.booking.ForFreelancer(f.bob.ID)
	require.NoError(t, err)
	assert.Len(t, incoming, 1)
}

func TestDeletedServiceLeavesBookingsUntouched(t *testing.T) {
	f := setup(t)

	b, err := f.booking.Book(f.alice, f.logo.ID, "")
	require.NoError(t, err)

	require.NoError(t, f.catalog.Delete(f.bob.ID, f.logo.ID))

	mine, err := f.catalog.Mine(f.bob.ID)
	require.NoError(t, err)
	assert.Empty(t, mine)

	// no cascade: the booking still references the deleted service id
	got, err := f.repo.BookingByID(b.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, f.logo.ID, got.ServiceID)
	assert.Equal(t, "Logo Design", got.ServiceTitle)

	// and the freelancer can still work it
	accepted, err := f.booking.Accept(f.bob.ID, b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusAccepted, accepted.Status)
}
