package domain

import "time"

// Passenger is one manifest entry. It exists only for the duration of a
// booking submission; all three fields must be filled before submission.
type Passenger struct {
	Name   string `json:"passengerName"`
	Age    int    `json:"passengerAge"`
	Gender string `json:"passengerGender"`
}

type Booking struct {
	BookingID   int64       `json:"bookingId"`
	UserID      int64       `json:"userId"`
	FlightID    int64       `json:"flightId"`
	Passengers  []Passenger `json:"passengers"`
	TotalAmount float64     `json:"totalAmount"`
	CreatedAt   time.Time   `json:"bookingDate"`
}
