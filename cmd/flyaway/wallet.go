package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/flyawayhq/flyaway/internal/gate"
)

func newWalletCmd(getApp func() *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wallet",
		Short: "Show the wallet balance",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := getApp()
			if err := a.require(gate.RequireAnyAuthenticated); err != nil {
				return err
			}
			w, err := a.wallets.Ensure(cmd.Context(), a.sessions.Current().User.UserID)
			if err != nil {
				return fmt.Errorf("could not fetch wallet: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Balance: Rs. %.2f\n", w.Balance)
			return nil
		},
	}

	topup := &cobra.Command{
		Use:   "topup <amount>",
		Short: "Add money to the wallet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := getApp()
			if err := a.require(gate.RequireAnyAuthenticated); err != nil {
				return err
			}
			amount, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid amount %q", args[0])
			}
			// The balance printed afterwards always comes from the
			// re-fetch, never from local arithmetic.
			w, err := a.wallets.TopUp(cmd.Context(), a.sessions.Current().User.UserID, amount)
			if err != nil {
				return fmt.Errorf("top-up failed: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wallet topped up. Balance: Rs. %.2f\n", w.Balance)
			return nil
		},
	}

	cmd.AddCommand(topup)
	return cmd
}
