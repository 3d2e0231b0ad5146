package ticket

import (
	"fmt"
	"io"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/flyawayhq/flyaway/internal/domain"
)

// Receipt is the downloadable artifact for a confirmed booking. Rendering is
// pure presentation over server-returned data.
type Receipt struct {
	Booking domain.Booking
	Flight  domain.Flight
}

// Render writes the receipt as a PDF document.
func (r Receipt) Render(w io.Writer) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 12, "FlyAway Booking Receipt")
	pdf.Ln(14)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Booking ID: %d", r.Booking.BookingID))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Booked on: %s", r.Booking.CreatedAt.Format("02 Jan 2006 15:04")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Flight %s (%s)", r.Flight.FlightNumber, r.Flight.Airline))
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Departure: %s", r.Flight.DepartureTime.Format(time.RFC1123)))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Arrival: %s", r.Flight.ArrivalTime.Format(time.RFC1123)))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Passengers")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	for i, p := range r.Booking.Passengers {
		pdf.Cell(0, 7, fmt.Sprintf("%d. %s, %d, %s", i+1, p.Name, p.Age, p.Gender))
		pdf.Ln(7)
	}
	pdf.Ln(3)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Total paid: Rs. %.2f", r.Booking.TotalAmount))
	pdf.Ln(14)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.Cell(0, 6, "Thank you for flying with FlyAway. Have a pleasant journey!")

	return pdf.Output(w)
}
