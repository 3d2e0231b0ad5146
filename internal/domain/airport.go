package domain

type Airport struct {
	AirportID int64  `json:"airportId"`
	Code      string `json:"airportCode"`
	Name      string `json:"airportName"`
	City      string `json:"airportCity"`
	State     string `json:"airportState"`
	Country   string `json:"airportCountry"`
}
