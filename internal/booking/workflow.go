package booking

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/flyawayhq/flyaway/internal/apiclient"
	"github.com/flyawayhq/flyaway/internal/domain"
)

type State string

const (
	StateIdle       State = "IDLE"
	StateValidating State = "VALIDATING"
	StateSubmitting State = "SUBMITTING"
	StateConfirmed  State = "CONFIRMED"
	StateBlocked    State = "BLOCKED"
	StateFailed     State = "FAILED"
)

// ErrSubmissionInFlight suppresses a duplicate confirm while a submission is
// outstanding.
var ErrSubmissionInFlight = errors.New("a submission is already in progress")

// genericFailure is what the user sees for any submission error; the real
// cause goes to the log only.
const genericFailure = "Booking failed. Please try again."

// Submitter is the one network operation the workflow performs.
type Submitter interface {
	CreateBooking(ctx context.Context, req apiclient.CreateBookingRequest) (*domain.Booking, error)
}

// Workflow drives one booking submission. Validation failures block before
// any network call; submission failures never mutate wallet state; every
// retry is user-initiated via another Confirm.
type Workflow struct {
	api      Submitter
	log      *logrus.Logger
	flight   domain.Flight
	manifest *Manifest
	wallet   *domain.Wallet

	state     State
	reason    string
	booking   *domain.Booking
	totalCost float64

	displayBalance    float64
	displayBalanceSet bool
}

type WorkflowOption func(*Workflow)

func WithWorkflowLogger(log *logrus.Logger) WorkflowOption {
	return func(w *Workflow) { w.log = log }
}

func NewWorkflow(api Submitter, flight domain.Flight, manifest *Manifest, opts ...WorkflowOption) *Workflow {
	w := &Workflow{
		api:      api,
		log:      logrus.StandardLogger(),
		flight:   flight,
		manifest: manifest,
		state:    StateIdle,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// SetWallet supplies the loaded wallet. Until it is called the balance is
// unknown and confirmation stays blocked.
func (w *Workflow) SetWallet(wallet *domain.Wallet) {
	w.wallet = wallet
}

// Confirm runs Idle→Validating and either blocks locally or submits once.
func (w *Workflow) Confirm(ctx context.Context, userID int64) error {
	if w.state == StateSubmitting {
		return ErrSubmissionInFlight
	}

	w.state = StateValidating
	w.reason = ""

	total, err := TotalCost(w.flight.Price, w.manifest.Count())
	if err != nil {
		return w.block(err)
	}
	if err := CheckBalance(w.wallet, total); err != nil {
		return w.block(err)
	}
	if err := w.manifest.Validate(); err != nil {
		return w.block(err)
	}
	passengers, err := w.manifest.Passengers()
	if err != nil {
		return w.block(err)
	}

	w.state = StateSubmitting
	w.totalCost = total
	booking, err := w.api.CreateBooking(ctx, apiclient.CreateBookingRequest{
		UserID:      userID,
		FlightID:    w.flight.FlightID,
		Passengers:  passengers,
		TotalAmount: total,
	})
	if err != nil {
		w.log.WithError(err).WithField("flightId", w.flight.FlightID).Warn("booking submission failed")
		w.state = StateFailed
		w.reason = genericFailure
		return err
	}

	w.state = StateConfirmed
	w.booking = booking
	w.displayBalance = w.wallet.Balance - total
	w.displayBalanceSet = true
	w.log.WithFields(logrus.Fields{"bookingId": booking.BookingID, "total": total}).Debug("booking confirmed")
	return nil
}

func (w *Workflow) block(cause error) error {
	w.state = StateBlocked
	w.reason = cause.Error()
	return cause
}

func (w *Workflow) State() State {
	return w.state
}

// Reason is the user-facing message for Blocked and Failed states.
func (w *Workflow) Reason() string {
	return w.reason
}

// Booking is the server-returned record once Confirmed, nil otherwise.
func (w *Workflow) Booking() *domain.Booking {
	return w.booking
}

func (w *Workflow) TotalCost() float64 {
	return w.totalCost
}

// DisplayBalance is the optimistic post-debit balance for display only; the
// authoritative balance always comes from a wallet re-fetch.
func (w *Workflow) DisplayBalance() (float64, bool) {
	return w.displayBalance, w.displayBalanceSet
}
