package domain

import "time"

type Flight struct {
	FlightID           int64     `json:"flightId"`
	FlightNumber       string    `json:"flightNumber"`
	Airline            string    `json:"airline"`
	DepartureAirportID int64     `json:"departureAirportId"`
	ArrivalAirportID   int64     `json:"arrivalAirportId"`
	DepartureTime      time.Time `json:"departureTime"`
	ArrivalTime        time.Time `json:"arrivalTime"`
	Price              float64   `json:"price"`
	AirplaneID         int64     `json:"airplaneId"`
}
