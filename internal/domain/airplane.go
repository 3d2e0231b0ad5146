package domain

type Airplane struct {
	AirplaneID   int64  `json:"airplaneId"`
	Number       string `json:"airplaneNumber"`
	Name         string `json:"airplaneName"`
	Model        string `json:"airplaneModel"`
	Manufacturer string `json:"manufacturer"`
	Capacity     int    `json:"capacity"`
}
