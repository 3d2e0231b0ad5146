package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/flyawayhq/flyaway/internal/booking"
	"github.com/flyawayhq/flyaway/internal/gate"
	"github.com/flyawayhq/flyaway/internal/ticket"
)

func newBookCmd(getApp func() *app) *cobra.Command {
	var flightID int64
	var passengers []string
	var ticketPath string

	cmd := &cobra.Command{
		Use:   "book",
		Short: "Book a flight",
		Long:  "Book a flight for one or more passengers. Each --passenger takes \"Name,Age,Gender\".",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := getApp()
			if err := a.require(gate.RequireCustomer); err != nil {
				return err
			}
			sess := a.sessions.Current()

			flight, err := a.api.GetFlight(cmd.Context(), flightID)
			if err != nil {
				return fmt.Errorf("could not load flight: %w", err)
			}

			manifest := booking.NewManifest()
			manifest.SetCount(len(passengers))
			for i, raw := range passengers {
				parts := strings.SplitN(raw, ",", 3)
				for j, field := range []booking.Field{booking.FieldName, booking.FieldAge, booking.FieldGender} {
					if j < len(parts) {
						if err := manifest.SetField(i, field, strings.TrimSpace(parts[j])); err != nil {
							return err
						}
					}
				}
			}

			workflow := booking.NewWorkflow(a.api, *flight, manifest, booking.WithWorkflowLogger(a.log))

			wallet, err := a.wallets.Ensure(cmd.Context(), sess.User.UserID)
			if err == nil {
				workflow.SetWallet(wallet)
			}
			// A wallet that failed to load stays unknown; the workflow
			// blocks confirmation rather than guessing.

			if err := workflow.Confirm(cmd.Context(), sess.User.UserID); err != nil {
				return fmt.Errorf("%s", workflow.Reason())
			}

			confirmed := workflow.Booking()
			if display, ok := workflow.DisplayBalance(); ok {
				fmt.Fprintf(cmd.OutOrStdout(), "Booking %d confirmed. Total Rs. %.2f, balance Rs. %.2f\n",
					confirmed.BookingID, workflow.TotalCost(), display)
			}

			if ticketPath != "" {
				out, err := os.Create(ticketPath)
				if err != nil {
					return fmt.Errorf("create ticket file: %w", err)
				}
				defer out.Close()
				receipt := ticket.Receipt{Booking: *confirmed, Flight: *flight}
				if err := receipt.Render(out); err != nil {
					return fmt.Errorf("render ticket: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Receipt written to %s\n", ticketPath)
			}
			return nil
		},
	}
	cmd.Flags().Int64Var(&flightID, "flight", 0, "flight id to book")
	cmd.Flags().StringArrayVar(&passengers, "passenger", nil, "passenger as \"Name,Age,Gender\" (repeatable)")
	cmd.Flags().StringVar(&ticketPath, "ticket", "", "write a PDF receipt to this path")
	cmd.MarkFlagRequired("flight")
	cmd.MarkFlagRequired("passenger")
	return cmd
}

func newBookingsCmd(getApp func() *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bookings",
		Short: "Show booking history",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := getApp()
			if err := a.require(gate.RequireAnyAuthenticated); err != nil {
				return err
			}
			bookings, err := a.api.ListUserBookings(cmd.Context())
			if err != nil {
				return fmt.Errorf("could not load bookings: %w", err)
			}
			if len(bookings) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No bookings found.")
				return nil
			}
			for _, b := range bookings {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\tflight %d\t%d passenger(s)\tRs. %.2f\t%s\n",
					b.BookingID, b.FlightID, len(b.Passengers), b.TotalAmount,
					b.CreatedAt.Format("02 Jan 2006 15:04"))
			}
			return nil
		},
	}

	cancel := &cobra.Command{
		Use:   "cancel <booking-id>",
		Short: "Cancel a booking",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := getApp()
			if err := a.require(gate.RequireAnyAuthenticated); err != nil {
				return err
			}
			var bookingID int64
			if _, err := fmt.Sscanf(args[0], "%d", &bookingID); err != nil {
				return fmt.Errorf("invalid booking id %q", args[0])
			}
			if err := a.api.CancelBooking(cmd.Context(), bookingID); err != nil {
				return fmt.Errorf("cancellation failed: %w", err)
			}
			// Any refund is the server's business; the balance shown is
			// whatever a fresh fetch says it is.
			if w, err := a.wallets.Ensure(cmd.Context(), a.sessions.Current().User.UserID); err == nil {
				fmt.Fprintf(cmd.OutOrStdout(), "Booking cancelled. Balance: Rs. %.2f\n", w.Balance)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "Booking cancelled.")
			}
			return nil
		},
	}

	cmd.AddCommand(cancel)
	return cmd
}
