package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/flyawayhq/flyaway/internal/domain"
	"github.com/flyawayhq/flyaway/internal/gate"
)

func newAdminCmd(getApp func() *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Administer reference data (ADMIN role)",
	}
	cmd.AddCommand(
		newAdminUsersCmd(getApp),
		newAdminFlightsCmd(getApp),
		newAdminAirportsCmd(getApp),
		newAdminAirplanesCmd(getApp),
		newAdminWalletCmd(getApp),
	)
	return cmd
}

func newAdminUsersCmd(getApp func() *app) *cobra.Command {
	var filter string
	cmd := &cobra.Command{
		Use:   "users",
		Short: "List registered users",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := getApp()
			if err := a.require(gate.RequireAdmin); err != nil {
				return err
			}
			users, err := a.api.ListUsers(cmd.Context())
			if err != nil {
				return fmt.Errorf("could not load users: %w", err)
			}
			for _, u := range users {
				if filter != "" && !containsFold(fmt.Sprintf("%v", u), filter) {
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\t%s\n", u.UserID, u.UserName, u.Email, u.Role)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&filter, "filter", "", "client-side substring filter")
	return cmd
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func newAdminFlightsCmd(getApp func() *app) *cobra.Command {
	var flight domain.Flight
	var departure, arrival string

	parseFlight := func() error {
		dep, err := time.Parse(time.RFC3339, departure)
		if err != nil {
			return fmt.Errorf("invalid departure time %q: %w", departure, err)
		}
		arr, err := time.Parse(time.RFC3339, arrival)
		if err != nil {
			return fmt.Errorf("invalid arrival time %q: %w", arrival, err)
		}
		flight.DepartureTime = dep
		flight.ArrivalTime = arr
		return nil
	}
	addFlightFlags := func(c *cobra.Command) {
		c.Flags().StringVar(&flight.FlightNumber, "number", "", "flight number")
		c.Flags().StringVar(&flight.Airline, "airline", "", "airline name")
		c.Flags().Int64Var(&flight.DepartureAirportID, "from", 0, "departure airport id")
		c.Flags().Int64Var(&flight.ArrivalAirportID, "to", 0, "arrival airport id")
		c.Flags().StringVar(&departure, "departure", "", "departure time (RFC3339)")
		c.Flags().StringVar(&arrival, "arrival", "", "arrival time (RFC3339)")
		c.Flags().Float64Var(&flight.Price, "price", 0, "ticket price")
		c.Flags().Int64Var(&flight.AirplaneID, "airplane", 0, "airplane id")
	}

	cmd := &cobra.Command{Use: "flights", Short: "Manage flights"}

	add := &cobra.Command{
		Use:   "add",
		Short: "Add a flight",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := getApp()
			if err := a.require(gate.RequireAdmin); err != nil {
				return err
			}
			if err := parseFlight(); err != nil {
				return err
			}
			created, err := a.api.CreateFlight(cmd.Context(), flight)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Flight %d created.\n", created.FlightID)
			return nil
		},
	}
	addFlightFlags(add)

	update := &cobra.Command{
		Use:   "update <flight-id>",
		Short: "Replace a flight",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := getApp()
			if err := a.require(gate.RequireAdmin); err != nil {
				return err
			}
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid flight id %q", args[0])
			}
			if err := parseFlight(); err != nil {
				return err
			}
			flight.FlightID = id
			if _, err := a.api.UpdateFlight(cmd.Context(), flight); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Flight %d updated.\n", id)
			return nil
		},
	}
	addFlightFlags(update)

	del := &cobra.Command{
		Use:   "delete <flight-id>",
		Short: "Delete a flight",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := getApp()
			if err := a.require(gate.RequireAdmin); err != nil {
				return err
			}
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid flight id %q", args[0])
			}
			if err := a.api.DeleteFlight(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Flight %d deleted.\n", id)
			return nil
		},
	}

	cmd.AddCommand(add, update, del)
	return cmd
}

func newAdminAirportsCmd(getApp func() *app) *cobra.Command {
	var airport domain.Airport

	addAirportFlags := func(c *cobra.Command) {
		c.Flags().StringVar(&airport.Code, "code", "", "IATA code")
		c.Flags().StringVar(&airport.Name, "name", "", "airport name")
		c.Flags().StringVar(&airport.City, "city", "", "city")
		c.Flags().StringVar(&airport.State, "state", "", "state or region")
		c.Flags().StringVar(&airport.Country, "country", "", "country")
	}

	cmd := &cobra.Command{Use: "airports", Short: "Manage airports"}

	add := &cobra.Command{
		Use:   "add",
		Short: "Add an airport",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := getApp()
			if err := a.require(gate.RequireAdmin); err != nil {
				return err
			}
			created, err := a.api.CreateAirport(cmd.Context(), airport)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Airport %s created.\n", created.Code)
			return nil
		},
	}
	addAirportFlags(add)

	update := &cobra.Command{
		Use:   "update",
		Short: "Replace an airport (addressed by --code)",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := getApp()
			if err := a.require(gate.RequireAdmin); err != nil {
				return err
			}
			if _, err := a.api.UpdateAirport(cmd.Context(), airport); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Airport %s updated.\n", airport.Code)
			return nil
		},
	}
	addAirportFlags(update)

	del := &cobra.Command{
		Use:   "delete <code>",
		Short: "Delete an airport",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := getApp()
			if err := a.require(gate.RequireAdmin); err != nil {
				return err
			}
			if err := a.api.DeleteAirport(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Airport %s deleted.\n", args[0])
			return nil
		},
	}

	cmd.AddCommand(add, update, del)
	return cmd
}

func newAdminAirplanesCmd(getApp func() *app) *cobra.Command {
	var airplane domain.Airplane

	addAirplaneFlags := func(c *cobra.Command) {
		c.Flags().StringVar(&airplane.Number, "number", "", "registration number")
		c.Flags().StringVar(&airplane.Name, "name", "", "airplane name")
		c.Flags().StringVar(&airplane.Model, "model", "", "model")
		c.Flags().StringVar(&airplane.Manufacturer, "manufacturer", "", "manufacturer")
		c.Flags().IntVar(&airplane.Capacity, "capacity", 0, "seat capacity")
	}

	cmd := &cobra.Command{Use: "airplanes", Short: "Manage airplanes"}

	add := &cobra.Command{
		Use:   "add",
		Short: "Add an airplane",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := getApp()
			if err := a.require(gate.RequireAdmin); err != nil {
				return err
			}
			created, err := a.api.CreateAirplane(cmd.Context(), airplane)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Airplane %s created.\n", created.Number)
			return nil
		},
	}
	addAirplaneFlags(add)

	update := &cobra.Command{
		Use:   "update",
		Short: "Replace an airplane (addressed by --number)",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := getApp()
			if err := a.require(gate.RequireAdmin); err != nil {
				return err
			}
			if _, err := a.api.UpdateAirplane(cmd.Context(), airplane); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Airplane %s updated.\n", airplane.Number)
			return nil
		},
	}
	addAirplaneFlags(update)

	del := &cobra.Command{
		Use:   "delete <number>",
		Short: "Delete an airplane",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := getApp()
			if err := a.require(gate.RequireAdmin); err != nil {
				return err
			}
			if err := a.api.DeleteAirplane(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Airplane %s deleted.\n", args[0])
			return nil
		},
	}

	cmd.AddCommand(add, update, del)
	return cmd
}

func newAdminWalletCmd(getApp func() *app) *cobra.Command {
	cmd := &cobra.Command{Use: "wallet", Short: "Manage user wallets"}

	create := &cobra.Command{
		Use:   "create <user-id>",
		Short: "Create a wallet for a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := getApp()
			if err := a.require(gate.RequireAdmin); err != nil {
				return err
			}
			userID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid user id %q", args[0])
			}
			w, err := a.api.CreateWallet(cmd.Context(), userID)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wallet %d ready for user %d.\n", w.WalletID, userID)
			return nil
		},
	}

	cmd.AddCommand(create)
	return cmd
}
