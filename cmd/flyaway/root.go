package main

import (
	"errors"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/flyawayhq/flyaway/config"
	"github.com/flyawayhq/flyaway/internal/apiclient"
	"github.com/flyawayhq/flyaway/internal/gate"
	"github.com/flyawayhq/flyaway/internal/session"
	"github.com/flyawayhq/flyaway/internal/wallet"
)

// errLoginRequired is the CLI's redirect-to-login: every gate denial lands
// here, never on an inert denied state.
var errLoginRequired = errors.New("please log in first: flyaway login --email <email>")

// app bundles the wired client stack. Commands receive it explicitly; no
// command reads storage or config on its own.
type app struct {
	cfg      *config.Config
	log      *logrus.Logger
	sessions *session.Store
	api      *apiclient.Client
	wallets  *wallet.Service
}

func newApp(cfgPath string) (*app, error) {
	cfg := config.Default()
	if cfgPath == "" {
		cfgPath = os.Getenv("CONFIG_PATH")
	}
	if cfgPath != "" {
		loaded, err := config.LoadConfig(cfgPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	log := logrus.New()
	if level, err := logrus.ParseLevel(cfg.Log.Level); err == nil {
		log.SetLevel(level)
	}

	sessions := session.NewStore(
		session.NewFileStorage(cfg.Session.DurablePath),
		session.NewFileStorage(cfg.Session.EphemeralPath),
		log,
	)
	sessions.Restore()

	api := apiclient.New(
		cfg.API.BaseURL,
		sessions,
		time.Duration(cfg.API.TimeoutSeconds)*time.Second,
		apiclient.WithLogger(log),
	)

	return &app{
		cfg:      cfg,
		log:      log,
		sessions: sessions,
		api:      api,
		wallets:  wallet.NewService(api, wallet.WithLogger(log)),
	}, nil
}

// require runs the gate for the current session before a command executes.
func (a *app) require(req gate.Requirement) error {
	if gate.Decide(a.sessions.Current(), req) == gate.RedirectToLogin {
		return errLoginRequired
	}
	return nil
}

func newRootCmd() *cobra.Command {
	var cfgPath string
	var a *app

	root := &cobra.Command{
		Use:           "flyaway",
		Short:         "FlyAway flight booking client",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			a, err = newApp(cfgPath)
			return err
		},
	}
	root.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file")

	// The app is wired in PersistentPreRunE, so subcommands close over the
	// pointer's address via this accessor.
	getApp := func() *app { return a }

	root.AddCommand(
		newLoginCmd(getApp),
		newLogoutCmd(getApp),
		newRegisterCmd(getApp),
		newWhoamiCmd(getApp),
		newFlightsCmd(getApp),
		newAirportsCmd(getApp),
		newAirplanesCmd(getApp),
		newWalletCmd(getApp),
		newBookCmd(getApp),
		newBookingsCmd(getApp),
		newReviewsCmd(getApp),
		newAdminCmd(getApp),
	)
	return root
}
