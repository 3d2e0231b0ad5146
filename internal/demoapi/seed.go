package demoapi

import (
	"time"

	"github.com/flyawayhq/flyaway/internal/domain"
)

// Seed loads sample reference data plus one admin and one customer account
// (password "password" for both) so the demo is usable out of the box.
func Seed(store *Store, bcryptCost int) error {
	hash, err := hashPassword("password", bcryptCost)
	if err != nil {
		return err
	}

	admin, err := store.CreateUser(domain.User{
		UserName: "Admin",
		Email:    "admin@flyaway.dev",
		Gender:   "Other",
		Role:     domain.RoleAdmin,
	}, hash)
	if err != nil {
		return err
	}
	store.CreateWallet(admin.UserID)

	customer, err := store.CreateUser(domain.User{
		UserName: "Asha Rao",
		Email:    "asha@flyaway.dev",
		Gender:   "Female",
		Role:     domain.RoleCustomer,
	}, hash)
	if err != nil {
		return err
	}
	store.CreateWallet(customer.UserID)
	if _, err := store.Credit(customer.UserID, 12000); err != nil {
		return err
	}

	del := store.SaveAirport(domain.Airport{Code: "DEL", Name: "Indira Gandhi International", City: "Delhi", State: "Delhi", Country: "India"})
	bom := store.SaveAirport(domain.Airport{Code: "BOM", Name: "Chhatrapati Shivaji Maharaj International", City: "Mumbai", State: "Maharashtra", Country: "India"})
	blr := store.SaveAirport(domain.Airport{Code: "BLR", Name: "Kempegowda International", City: "Bengaluru", State: "Karnataka", Country: "India"})

	a320 := store.SaveAirplane(domain.Airplane{Number: "VT-EXA", Name: "A320neo", Model: "A320-251N", Manufacturer: "Airbus", Capacity: 180})
	b737 := store.SaveAirplane(domain.Airplane{Number: "VT-JBA", Name: "737 MAX", Model: "737-8", Manufacturer: "Boeing", Capacity: 178})

	tomorrow := time.Now().UTC().Add(24 * time.Hour).Truncate(time.Hour)
	store.SaveFlight(domain.Flight{
		FlightNumber:       "FA101",
		Airline:            "FlyAway Air",
		DepartureAirportID: del.AirportID,
		ArrivalAirportID:   bom.AirportID,
		DepartureTime:      tomorrow,
		ArrivalTime:        tomorrow.Add(2 * time.Hour),
		Price:              5000,
		AirplaneID:         a320.AirplaneID,
	})
	store.SaveFlight(domain.Flight{
		FlightNumber:       "FA202",
		Airline:            "FlyAway Air",
		DepartureAirportID: bom.AirportID,
		ArrivalAirportID:   blr.AirportID,
		DepartureTime:      tomorrow.Add(6 * time.Hour),
		ArrivalTime:        tomorrow.Add(8 * time.Hour),
		Price:              3500,
		AirplaneID:         b737.AirplaneID,
	})
	return nil
}
