package demoapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flyawayhq/flyaway/internal/domain"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T) (*gin.Engine, *Store) {
	t.Helper()
	store := NewStore()
	require.NoError(t, Seed(store, 4))
	server := NewServer(store, "test-secret", time.Hour, 4)
	return server.Router(), store
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func loginAs(t *testing.T, router *gin.Engine, email string) (string, int64) {
	t.Helper()
	rec := doJSON(t, router, http.MethodPost, "/api/login", "", map[string]string{
		"userEmail":    email,
		"userPassword": "password",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Token  string `json:"token"`
		Role   string `json:"role"`
		UserID int64  `json:"userId"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token, resp.UserID
}

func TestLogin_InvalidCredentials(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/login", "", map[string]string{
		"userEmail":    "asha@flyaway.dev",
		"userPassword": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/login", "", map[string]string{
		"userEmail":    "nobody@flyaway.dev",
		"userPassword": "password",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRegister_ThenLogin(t *testing.T) {
	router, store := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/register", "", map[string]string{
		"userName":     "Ravi Kumar",
		"userEmail":    "ravi@flyaway.dev",
		"userPassword": "secret1",
		"userGender":   "Male",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created domain.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, domain.RoleCustomer, created.Role)

	// A wallet exists from the moment the account does.
	wallet, err := store.WalletFor(created.UserID)
	require.NoError(t, err)
	assert.Zero(t, wallet.Balance)

	rec = doJSON(t, router, http.MethodPost, "/api/login", "", map[string]string{
		"userEmail":    "ravi@flyaway.dev",
		"userPassword": "secret1",
	})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/register", "", map[string]string{
		"userName":     "Imposter",
		"userEmail":    "asha@flyaway.dev",
		"userPassword": "secret1",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestFlights_PublicListingAndSearch(t *testing.T) {
	router, store := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/flights", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var flights []domain.Flight
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &flights))
	require.Len(t, flights, 2)

	del, err := store.AirportByCode("DEL")
	require.NoError(t, err)
	bom, err := store.AirportByCode("BOM")
	require.NoError(t, err)

	var fa101 domain.Flight
	for _, f := range flights {
		if f.FlightNumber == "FA101" {
			fa101 = f
		}
	}
	require.NotZero(t, fa101.FlightID)

	date := fa101.DepartureTime.UTC().Format("2006-01-02")
	path := fmt.Sprintf("/api/flights/search?sourceId=%d&destinationId=%d&date=%s", del.AirportID, bom.AirportID, date)
	rec = doJSON(t, router, http.MethodGet, path, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var matches []domain.Flight
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &matches))
	require.Len(t, matches, 1)
	assert.Equal(t, "FA101", matches[0].FlightNumber)
}

func TestWallet_RequiresAuth(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/wallet", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/wallet", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestWallet_AddMoney(t *testing.T) {
	router, _ := newTestRouter(t)
	token, _ := loginAs(t, router, "asha@flyaway.dev")

	rec := doJSON(t, router, http.MethodPost, "/api/wallet/add", token, map[string]float64{"balance": 1000})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var wallet domain.Wallet
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &wallet))
	assert.Equal(t, float64(13000), wallet.Balance)
}

func TestBooking_DebitsWallet(t *testing.T) {
	router, store := newTestRouter(t)
	token, userID := loginAs(t, router, "asha@flyaway.dev")

	flights := store.SearchFlights(0, 0, "")
	var fa101 domain.Flight
	for _, f := range flights {
		if f.FlightNumber == "FA101" {
			fa101 = f
		}
	}
	require.NotZero(t, fa101.FlightID)

	rec := doJSON(t, router, http.MethodPost, "/api/bookings", token, map[string]interface{}{
		"flightId": fa101.FlightID,
		"passengers": []map[string]interface{}{
			{"passengerName": "Asha Rao", "passengerAge": 31, "passengerGender": "Female"},
			{"passengerName": "Dev Rao", "passengerAge": 34, "passengerGender": "Male"},
		},
		"totalAmount": 10000,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var booking domain.Booking
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &booking))
	assert.Equal(t, userID, booking.UserID)
	assert.Len(t, booking.Passengers, 2)

	wallet, err := store.WalletFor(userID)
	require.NoError(t, err)
	assert.Equal(t, float64(2000), wallet.Balance)
}

func TestBooking_InsufficientBalance(t *testing.T) {
	router, store := newTestRouter(t)
	token, userID := loginAs(t, router, "asha@flyaway.dev")

	flights := store.SearchFlights(0, 0, "")
	require.NotEmpty(t, flights)

	rec := doJSON(t, router, http.MethodPost, "/api/bookings", token, map[string]interface{}{
		"flightId": flights[0].FlightID,
		"passengers": []map[string]interface{}{
			{"passengerName": "Asha Rao", "passengerAge": 31, "passengerGender": "Female"},
		},
		"totalAmount": 50000,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// No partial debit on rejection.
	wallet, err := store.WalletFor(userID)
	require.NoError(t, err)
	assert.Equal(t, float64(12000), wallet.Balance)
}

func TestBooking_CancelRefunds(t *testing.T) {
	router, store := newTestRouter(t)
	token, userID := loginAs(t, router, "asha@flyaway.dev")

	flights := store.SearchFlights(0, 0, "")
	require.NotEmpty(t, flights)

	booking, err := store.CreateBooking(domain.Booking{
		UserID:      userID,
		FlightID:    flights[0].FlightID,
		Passengers:  []domain.Passenger{{Name: "Asha Rao", Age: 31, Gender: "Female"}},
		TotalAmount: 5000,
	})
	require.NoError(t, err)

	rec := doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/bookings/%d", booking.BookingID), token, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	wallet, err := store.WalletFor(userID)
	require.NoError(t, err)
	assert.Equal(t, float64(12000), wallet.Balance)

	assert.Empty(t, store.BookingsFor(userID))
}

func TestBooking_CannotCancelAnotherUsers(t *testing.T) {
	router, store := newTestRouter(t)
	customerToken, customerID := loginAs(t, router, "asha@flyaway.dev")
	_ = customerToken

	flights := store.SearchFlights(0, 0, "")
	require.NotEmpty(t, flights)

	booking, err := store.CreateBooking(domain.Booking{
		UserID:      customerID,
		FlightID:    flights[0].FlightID,
		Passengers:  []domain.Passenger{{Name: "Asha Rao", Age: 31, Gender: "Female"}},
		TotalAmount: 5000,
	})
	require.NoError(t, err)

	adminToken, _ := loginAs(t, router, "admin@flyaway.dev")
	rec := doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/bookings/%d", booking.BookingID), adminToken, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdminRoutes_RoleGating(t *testing.T) {
	router, _ := newTestRouter(t)
	customerToken, _ := loginAs(t, router, "asha@flyaway.dev")
	adminToken, _ := loginAs(t, router, "admin@flyaway.dev")

	rec := doJSON(t, router, http.MethodGet, "/api/users", customerToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/users", adminToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/airports", customerToken, domain.Airport{
		Code: "MAA", Name: "Chennai International", City: "Chennai", State: "Tamil Nadu", Country: "India",
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAdmin_FlightLifecycle(t *testing.T) {
	router, _ := newTestRouter(t)
	adminToken, _ := loginAs(t, router, "admin@flyaway.dev")

	departure := time.Now().UTC().Add(48 * time.Hour).Truncate(time.Hour)
	rec := doJSON(t, router, http.MethodPost, "/api/flights", adminToken, domain.Flight{
		FlightNumber:       "FA303",
		Airline:            "FlyAway Air",
		DepartureAirportID: 3,
		ArrivalAirportID:   5,
		DepartureTime:      departure,
		ArrivalTime:        departure.Add(3 * time.Hour),
		Price:              4200,
		AirplaneID:         6,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var created domain.Flight
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotZero(t, created.FlightID)

	created.Price = 4700
	rec = doJSON(t, router, http.MethodPut, fmt.Sprintf("/api/flights/%d", created.FlightID), adminToken, created)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/flights/%d", created.FlightID), "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var fetched domain.Flight
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fetched))
	assert.Equal(t, float64(4700), fetched.Price)

	rec = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/flights/%d", created.FlightID), adminToken, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/flights/%d", created.FlightID), "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdmin_CreateWalletForUser(t *testing.T) {
	router, store := newTestRouter(t)
	adminToken, _ := loginAs(t, router, "admin@flyaway.dev")

	hash, err := hashPassword("password", 4)
	require.NoError(t, err)
	user, err := store.CreateUser(domain.User{UserName: "New", Email: "new@flyaway.dev", Role: domain.RoleCustomer}, hash)
	require.NoError(t, err)

	rec := doJSON(t, router, http.MethodPost, fmt.Sprintf("/api/wallets/create?userId=%d", user.UserID), adminToken, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	wallet, err := store.WalletFor(user.UserID)
	require.NoError(t, err)
	assert.Zero(t, wallet.Balance)
}

func TestReviews_PostRequiresAuth(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/reviews", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	review := domain.Review{Comment: "Smooth check-in", Rating: 5}
	rec = doJSON(t, router, http.MethodPost, "/api/reviews", "", review)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	token, userID := loginAs(t, router, "asha@flyaway.dev")
	rec = doJSON(t, router, http.MethodPost, "/api/reviews", token, review)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created domain.Review
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, userID, created.UserID)
}
