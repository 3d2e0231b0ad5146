package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/flyawayhq/flyaway/internal/apiclient"
)

func newLoginCmd(getApp func() *app) *cobra.Command {
	var email, password string
	var remember bool

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := getApp()
			token, user, err := a.api.Login(cmd.Context(), email, password)
			if err != nil {
				return fmt.Errorf("login failed: %w", err)
			}
			if err := a.sessions.Establish(token, user, remember); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s (%s)\n", user.Email, user.Role)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	cmd.Flags().BoolVar(&remember, "remember", false, "keep the session across machine restarts")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")
	return cmd
}

func newLogoutCmd(getApp func() *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := getApp().sessions.Clear(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
			return nil
		},
	}
}

func newRegisterCmd(getApp func() *app) *cobra.Command {
	var input apiclient.RegisterInput

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new account",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := getApp()
			if err := a.api.Register(cmd.Context(), input); err != nil {
				return fmt.Errorf("registration failed: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Registered. You can now log in.")
			return nil
		},
	}
	cmd.Flags().StringVar(&input.UserName, "name", "", "full name")
	cmd.Flags().StringVar(&input.UserEmail, "email", "", "email address")
	cmd.Flags().StringVar(&input.UserPassword, "password", "", "password (min 6 characters)")
	cmd.Flags().StringVar(&input.ConfirmPassword, "confirm-password", "", "repeat the password")
	cmd.Flags().StringVar(&input.UserGender, "gender", "", "gender")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")
	cmd.MarkFlagRequired("confirm-password")
	cmd.MarkFlagRequired("gender")
	return cmd
}

func newWhoamiCmd(getApp func() *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess := getApp().sessions.Current()
			if !sess.Authenticated() {
				fmt.Fprintln(cmd.OutOrStdout(), "Not logged in.")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s, user %d)\n", sess.User.Email, sess.Role(), sess.User.UserID)
			return nil
		},
	}
}
