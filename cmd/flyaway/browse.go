package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/flyawayhq/flyaway/internal/domain"
	"github.com/flyawayhq/flyaway/internal/gate"
	"github.com/flyawayhq/flyaway/internal/refdata"
)

func newFlightsCmd(getApp func() *app) *cobra.Command {
	var filter string
	var sourceID, destinationID int64
	var date string

	cmd := &cobra.Command{
		Use:   "flights",
		Short: "List available flights",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := getApp()

			var snap refdata.Snapshot[domain.Flight]
			loader := refdata.Loader[domain.Flight](a.api.ListFlights)
			if sourceID > 0 || destinationID > 0 || date != "" {
				loader = func(ctx context.Context) ([]domain.Flight, error) {
					return a.api.SearchFlights(ctx, sourceID, destinationID, date)
				}
			}
			if err := snap.Load(cmd.Context(), loader); err != nil {
				fmt.Fprintln(cmd.OutOrStdout(), snap.ErrMessage())
				return err
			}
			for _, f := range snap.Filter(filter) {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\t%d -> %d\t%s\tRs. %.2f\n",
					f.FlightID, f.FlightNumber, f.Airline,
					f.DepartureAirportID, f.ArrivalAirportID,
					f.DepartureTime.Format("02 Jan 2006 15:04"), f.Price)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&filter, "filter", "", "client-side substring filter")
	cmd.Flags().Int64Var(&sourceID, "from", 0, "source airport id")
	cmd.Flags().Int64Var(&destinationID, "to", 0, "destination airport id")
	cmd.Flags().StringVar(&date, "date", "", "departure date (YYYY-MM-DD)")
	return cmd
}

func newAirportsCmd(getApp func() *app) *cobra.Command {
	var filter, search string

	cmd := &cobra.Command{
		Use:   "airports",
		Short: "List airports",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := getApp()

			var snap refdata.Snapshot[domain.Airport]
			loader := refdata.Loader[domain.Airport](a.api.ListAirports)
			if search != "" {
				loader = func(ctx context.Context) ([]domain.Airport, error) {
					return a.api.SearchAirports(ctx, search)
				}
			}
			if err := snap.Load(cmd.Context(), loader); err != nil {
				fmt.Fprintln(cmd.OutOrStdout(), snap.ErrMessage())
				return err
			}
			for _, ap := range snap.Filter(filter) {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\t%s, %s, %s\n",
					ap.AirportID, ap.Code, ap.Name, ap.City, ap.State, ap.Country)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&filter, "filter", "", "client-side substring filter")
	cmd.Flags().StringVar(&search, "search", "", "server-side airport search query")
	return cmd
}

func newAirplanesCmd(getApp func() *app) *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:   "airplanes",
		Short: "List airplanes",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := getApp()

			var snap refdata.Snapshot[domain.Airplane]
			if err := snap.Load(cmd.Context(), a.api.ListAirplanes); err != nil {
				fmt.Fprintln(cmd.OutOrStdout(), snap.ErrMessage())
				return err
			}
			for _, p := range snap.Filter(filter) {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\t%s (%s)\t%d seats\n",
					p.AirplaneID, p.Number, p.Name, p.Model, p.Manufacturer, p.Capacity)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&filter, "filter", "", "client-side substring filter")
	return cmd
}

func newReviewsCmd(getApp func() *app) *cobra.Command {
	var rating int
	var comment string

	cmd := &cobra.Command{
		Use:   "reviews",
		Short: "List reviews",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := getApp()
			var snap refdata.Snapshot[domain.Review]
			if err := snap.Load(cmd.Context(), a.api.ListReviews); err != nil {
				fmt.Fprintln(cmd.OutOrStdout(), snap.ErrMessage())
				return err
			}
			for _, r := range snap.Items() {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%d/5\t%s\n", r.ReviewID, r.Rating, r.Comment)
			}
			return nil
		},
	}

	add := &cobra.Command{
		Use:   "add",
		Short: "Leave a review",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := getApp()
			if err := a.require(gate.RequireAnyAuthenticated); err != nil {
				return err
			}
			created, err := a.api.CreateReview(cmd.Context(), domain.Review{Rating: rating, Comment: comment})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Review %d posted.\n", created.ReviewID)
			return nil
		},
	}
	add.Flags().IntVar(&rating, "rating", 0, "rating, 1-5")
	add.Flags().StringVar(&comment, "comment", "", "review text")
	add.MarkFlagRequired("rating")

	cmd.AddCommand(add)
	return cmd
}
