package demoapi

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/flyawayhq/flyaway/internal/domain"
)

var (
	errNotFound            = errors.New("not found")
	errDuplicateEmail      = errors.New("email already registered")
	errInsufficientBalance = errors.New("insufficient balance")
)

type userRecord struct {
	domain.User
	PasswordHash string
}

// Store is the demo backend's mutex-guarded in-memory state. It keeps only
// the minimal CRUD semantics the client contract needs.
type Store struct {
	mu        sync.RWMutex
	users     map[int64]*userRecord
	byEmail   map[string]int64
	flights   map[int64]domain.Flight
	airports  map[int64]domain.Airport
	airplanes map[int64]domain.Airplane
	wallets   map[int64]domain.Wallet
	bookings  map[int64]domain.Booking
	reviews   []domain.Review
	nextID    int64
}

func NewStore() *Store {
	return &Store{
		users:     make(map[int64]*userRecord),
		byEmail:   make(map[string]int64),
		flights:   make(map[int64]domain.Flight),
		airports:  make(map[int64]domain.Airport),
		airplanes: make(map[int64]domain.Airplane),
		wallets:   make(map[int64]domain.Wallet),
		bookings:  make(map[int64]domain.Booking),
	}
}

func (s *Store) id() int64 {
	s.nextID++
	return s.nextID
}

func (s *Store) CreateUser(user domain.User, passwordHash string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := strings.ToLower(user.Email)
	if _, exists := s.byEmail[key]; exists {
		return nil, errDuplicateEmail
	}
	user.UserID = s.id()
	s.users[user.UserID] = &userRecord{User: user, PasswordHash: passwordHash}
	s.byEmail[key] = user.UserID
	return &user, nil
}

func (s *Store) UserByEmail(email string) (*userRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, errNotFound
	}
	rec := *s.users[id]
	return &rec, nil
}

func (s *Store) ListUsers() []domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	users := make([]domain.User, 0, len(s.users))
	for _, rec := range s.users {
		users = append(users, rec.User)
	}
	return users
}

func (s *Store) ListFlights() []domain.Flight {
	s.mu.RLock()
	defer s.mu.RUnlock()
	flights := make([]domain.Flight, 0, len(s.flights))
	for _, f := range s.flights {
		flights = append(flights, f)
	}
	return flights
}

func (s *Store) GetFlight(id int64) (*domain.Flight, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	f, ok := s.flights[id]
	if !ok {
		return nil, errNotFound
	}
	return &f, nil
}

func (s *Store) SaveFlight(f domain.Flight) domain.Flight {
	s.mu.Lock()
	defer s.mu.Unlock()
	if f.FlightID == 0 {
		f.FlightID = s.id()
	}
	s.flights[f.FlightID] = f
	return f
}

func (s *Store) DeleteFlight(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.flights[id]; !ok {
		return errNotFound
	}
	delete(s.flights, id)
	return nil
}

// SearchFlights filters by route and departure date (YYYY-MM-DD); zero/empty
// parameters match everything.
func (s *Store) SearchFlights(sourceID, destinationID int64, date string) []domain.Flight {
	s.mu.RLock()
	defer s.mu.RUnlock()
	matches := make([]domain.Flight, 0)
	for _, f := range s.flights {
		if sourceID > 0 && f.DepartureAirportID != sourceID {
			continue
		}
		if destinationID > 0 && f.ArrivalAirportID != destinationID {
			continue
		}
		if date != "" && f.DepartureTime.Format("2006-01-02") != date {
			continue
		}
		matches = append(matches, f)
	}
	return matches
}

func (s *Store) ListAirports() []domain.Airport {
	s.mu.RLock()
	defer s.mu.RUnlock()
	airports := make([]domain.Airport, 0, len(s.airports))
	for _, a := range s.airports {
		airports = append(airports, a)
	}
	return airports
}

func (s *Store) SearchAirports(query string) []domain.Airport {
	query = strings.ToLower(query)
	s.mu.RLock()
	defer s.mu.RUnlock()
	matches := make([]domain.Airport, 0)
	for _, a := range s.airports {
		text := strings.ToLower(strings.Join([]string{a.Code, a.Name, a.City, a.State, a.Country}, " "))
		if strings.Contains(text, query) {
			matches = append(matches, a)
		}
	}
	return matches
}

func (s *Store) SaveAirport(a domain.Airport) domain.Airport {
	s.mu.Lock()
	defer s.mu.Unlock()
	if a.AirportID == 0 {
		a.AirportID = s.id()
	}
	s.airports[a.AirportID] = a
	return a
}

func (s *Store) AirportByCode(code string) (*domain.Airport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.airports {
		if strings.EqualFold(a.Code, code) {
			return &a, nil
		}
	}
	return nil, errNotFound
}

func (s *Store) DeleteAirport(code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, a := range s.airports {
		if strings.EqualFold(a.Code, code) {
			delete(s.airports, id)
			return nil
		}
	}
	return errNotFound
}

func (s *Store) ListAirplanes() []domain.Airplane {
	s.mu.RLock()
	defer s.mu.RUnlock()
	airplanes := make([]domain.Airplane, 0, len(s.airplanes))
	for _, a := range s.airplanes {
		airplanes = append(airplanes, a)
	}
	return airplanes
}

func (s *Store) SaveAirplane(a domain.Airplane) domain.Airplane {
	s.mu.Lock()
	defer s.mu.Unlock()
	if a.AirplaneID == 0 {
		a.AirplaneID = s.id()
	}
	s.airplanes[a.AirplaneID] = a
	return a
}

func (s *Store) AirplaneByNumber(number string) (*domain.Airplane, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.airplanes {
		if strings.EqualFold(a.Number, number) {
			return &a, nil
		}
	}
	return nil, errNotFound
}

func (s *Store) DeleteAirplane(number string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, a := range s.airplanes {
		if strings.EqualFold(a.Number, number) {
			delete(s.airplanes, id)
			return nil
		}
	}
	return errNotFound
}

func (s *Store) WalletFor(userID int64) (*domain.Wallet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	w, ok := s.wallets[userID]
	if !ok {
		return nil, errNotFound
	}
	return &w, nil
}

func (s *Store) CreateWallet(userID int64) *domain.Wallet {
	s.mu.Lock()
	defer s.mu.Unlock()
	if w, ok := s.wallets[userID]; ok {
		return &w
	}
	w := domain.Wallet{WalletID: s.id(), UserID: userID}
	s.wallets[userID] = w
	return &w
}

func (s *Store) Credit(userID int64, amount float64) (*domain.Wallet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, ok := s.wallets[userID]
	if !ok {
		return nil, errNotFound
	}
	w.Balance += amount
	s.wallets[userID] = w
	return &w, nil
}

// CreateBooking debits the wallet and records the booking in one critical
// section.
func (s *Store) CreateBooking(b domain.Booking) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.flights[b.FlightID]; !ok {
		return nil, errNotFound
	}
	w, ok := s.wallets[b.UserID]
	if !ok {
		return nil, errNotFound
	}
	if w.Balance < b.TotalAmount {
		return nil, errInsufficientBalance
	}
	w.Balance -= b.TotalAmount
	s.wallets[b.UserID] = w

	b.BookingID = s.id()
	b.CreatedAt = time.Now().UTC()
	s.bookings[b.BookingID] = b
	return &b, nil
}

func (s *Store) BookingsFor(userID int64) []domain.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	bookings := make([]domain.Booking, 0)
	for _, b := range s.bookings {
		if b.UserID == userID {
			bookings = append(bookings, b)
		}
	}
	return bookings
}

// CancelBooking removes the booking and refunds its total to the owner's
// wallet.
func (s *Store) CancelBooking(bookingID, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bookings[bookingID]
	if !ok || b.UserID != userID {
		return errNotFound
	}
	if w, ok := s.wallets[userID]; ok {
		w.Balance += b.TotalAmount
		s.wallets[userID] = w
	}
	delete(s.bookings, bookingID)
	return nil
}

func (s *Store) ListReviews() []domain.Review {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Review(nil), s.reviews...)
}

func (s *Store) AddReview(r domain.Review) domain.Review {
	s.mu.Lock()
	defer s.mu.Unlock()
	r.ReviewID = s.id()
	r.CreatedAt = time.Now().UTC()
	s.reviews = append(s.reviews, r)
	return r
}
