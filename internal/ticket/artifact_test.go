package ticket

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flyawayhq/flyaway/internal/domain"
)

func sampleReceipt() Receipt {
	departure := time.Date(2026, 9, 15, 8, 0, 0, 0, time.UTC)
	return Receipt{
		Booking: domain.Booking{
			BookingID: 42,
			UserID:    3,
			FlightID:  10,
			Passengers: []domain.Passenger{
				{Name: "Asha Rao", Age: 31, Gender: "Female"},
				{Name: "Dev Rao", Age: 34, Gender: "Male"},
			},
			TotalAmount: 10000,
			CreatedAt:   time.Date(2026, 9, 1, 12, 30, 0, 0, time.UTC),
		},
		Flight: domain.Flight{
			FlightID:      10,
			FlightNumber:  "FA101",
			Airline:       "FlyAway Air",
			DepartureTime: departure,
			ArrivalTime:   departure.Add(2 * time.Hour),
			Price:         5000,
		},
	}
}

func TestReceipt_RendersPDF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, sampleReceipt().Render(&buf))

	out := buf.Bytes()
	require.NotEmpty(t, out)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "output starts with the PDF magic")
}

func TestReceipt_NoPassengersStillRenders(t *testing.T) {
	receipt := sampleReceipt()
	receipt.Booking.Passengers = nil

	var buf bytes.Buffer
	require.NoError(t, receipt.Render(&buf))
	assert.NotEmpty(t, buf.Bytes())
}
