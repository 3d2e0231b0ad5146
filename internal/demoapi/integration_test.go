package demoapi

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flyawayhq/flyaway/internal/apiclient"
	"github.com/flyawayhq/flyaway/internal/booking"
	"github.com/flyawayhq/flyaway/internal/domain"
	"github.com/flyawayhq/flyaway/internal/wallet"
)

type tokenHolder struct{ token string }

func (h *tokenHolder) Token() string { return h.token }

// Drives the real client, wallet workflow and booking workflow against the
// demo backend over HTTP: register, top up short of the fare, get blocked,
// top up again, confirm, then cancel and watch the refund land.
func TestBookingJourney(t *testing.T) {
	store := NewStore()
	require.NoError(t, Seed(store, 4))
	server := NewServer(store, "test-secret", time.Hour, 4)

	srv := httptest.NewServer(server.Router())
	defer srv.Close()

	ctx := context.Background()
	tokens := &tokenHolder{}
	client := apiclient.New(srv.URL+"/api", tokens, 5*time.Second)
	wallets := wallet.NewService(client)

	require.NoError(t, client.Register(ctx, apiclient.RegisterInput{
		UserName:        "Ravi Kumar",
		UserEmail:       "ravi@flyaway.dev",
		UserPassword:    "secret1",
		ConfirmPassword: "secret1",
		UserGender:      "Male",
	}))

	token, user, err := client.Login(ctx, "ravi@flyaway.dev", "secret1")
	require.NoError(t, err)
	tokens.token = token
	require.Equal(t, domain.RoleCustomer, user.Role)

	w, err := wallets.Ensure(ctx, user.UserID)
	require.NoError(t, err)
	require.Zero(t, w.Balance)

	w, err = wallets.TopUp(ctx, user.UserID, 9000)
	require.NoError(t, err)
	require.Equal(t, float64(9000), w.Balance)

	flights, err := client.ListFlights(ctx)
	require.NoError(t, err)
	var fa101 domain.Flight
	for _, f := range flights {
		if f.FlightNumber == "FA101" {
			fa101 = f
		}
	}
	require.NotZero(t, fa101.FlightID)
	require.Equal(t, float64(5000), fa101.Price)

	manifest := booking.NewManifest()
	manifest.SetCount(2)
	require.NoError(t, manifest.SetField(0, booking.FieldName, "Ravi Kumar"))
	require.NoError(t, manifest.SetField(0, booking.FieldAge, "29"))
	require.NoError(t, manifest.SetField(0, booking.FieldGender, "Male"))
	require.NoError(t, manifest.SetField(1, booking.FieldName, "Meera Kumar"))
	require.NoError(t, manifest.SetField(1, booking.FieldAge, "27"))
	require.NoError(t, manifest.SetField(1, booking.FieldGender, "Female"))

	flow := booking.NewWorkflow(client, fa101, manifest)
	flow.SetWallet(w)

	// 9000 < 2 x 5000: blocked locally, nothing hits the server.
	err = flow.Confirm(ctx, user.UserID)
	require.Error(t, err)
	assert.Equal(t, booking.StateBlocked, flow.State())
	bookings, err := client.ListUserBookings(ctx)
	require.NoError(t, err)
	assert.Empty(t, bookings)

	// Top up the remainder through the own-wallet route this time.
	w, err = client.AddMoney(ctx, 3000)
	require.NoError(t, err)
	require.Equal(t, float64(12000), w.Balance)

	w, err = client.Wallet(ctx)
	require.NoError(t, err)
	require.Equal(t, float64(12000), w.Balance)
	flow.SetWallet(w)

	require.NoError(t, flow.Confirm(ctx, user.UserID))
	assert.Equal(t, booking.StateConfirmed, flow.State())
	display, ok := flow.DisplayBalance()
	require.True(t, ok)
	assert.Equal(t, float64(2000), display)

	confirmed := flow.Booking()
	require.NotNil(t, confirmed)
	assert.Equal(t, float64(10000), confirmed.TotalAmount)

	// The server agrees with the optimistic figure.
	w, err = wallets.Ensure(ctx, user.UserID)
	require.NoError(t, err)
	assert.Equal(t, float64(2000), w.Balance)

	bookings, err = client.ListUserBookings(ctx)
	require.NoError(t, err)
	require.Len(t, bookings, 1)

	require.NoError(t, client.CancelBooking(ctx, confirmed.BookingID))
	w, err = wallets.Ensure(ctx, user.UserID)
	require.NoError(t, err)
	assert.Equal(t, float64(12000), w.Balance)
}
