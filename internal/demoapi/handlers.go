package demoapi

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/flyawayhq/flyaway/internal/domain"
)

// Server is the in-memory demo backend implementing the booking REST
// contract the client binds to.
type Server struct {
	store    *Store
	secret   string
	tokenTTL time.Duration
	cost     int
	log      *logrus.Logger
}

type ServerOption func(*Server)

func WithServerLogger(log *logrus.Logger) ServerOption {
	return func(s *Server) { s.log = log }
}

func NewServer(store *Store, secret string, tokenTTL time.Duration, bcryptCost int, opts ...ServerOption) *Server {
	s := &Server{
		store:    store,
		secret:   secret,
		tokenTTL: tokenTTL,
		cost:     bcryptCost,
		log:      logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Router builds the gin engine with all /api routes registered.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	api := router.Group("/api")
	api.POST("/login", s.login)
	api.POST("/register", s.register)
	api.GET("/flights", s.listFlights)
	api.GET("/flights/search", s.searchFlights)
	api.GET("/flights/:id", s.getFlight)
	api.GET("/airports", s.listAirports)
	api.GET("/airports/search", s.searchAirports)
	api.GET("/airplanes", s.listAirplanes)
	api.GET("/reviews", s.listReviews)

	auth := api.Group("")
	auth.Use(s.requireAuth())
	auth.GET("/wallet", s.ownWallet)
	auth.POST("/wallet/add", s.addMoney)
	auth.GET("/wallets/:userId", s.walletFor)
	auth.POST("/wallets/topup", s.topUp)
	auth.POST("/wallets/create", s.createWallet)
	auth.POST("/bookings", s.createBooking)
	auth.GET("/bookings/user", s.userBookings)
	auth.DELETE("/bookings/:id", s.cancelBooking)
	auth.POST("/reviews", s.createReview)

	admin := auth.Group("")
	admin.Use(s.requireAdmin())
	admin.GET("/users", s.listUsers)
	admin.POST("/flights", s.saveFlight)
	admin.PUT("/flights/:id", s.saveFlight)
	admin.DELETE("/flights/:id", s.deleteFlight)
	admin.POST("/airports", s.saveAirport)
	admin.PUT("/airports/:code", s.saveAirport)
	admin.DELETE("/airports/:code", s.deleteAirport)
	admin.POST("/airplanes", s.saveAirplane)
	admin.PUT("/airplanes/number/:number", s.saveAirplane)
	admin.DELETE("/airplanes/number/:number", s.deleteAirplane)

	return router
}

type loginRequest struct {
	UserEmail    string `json:"userEmail" binding:"required,email"`
	UserPassword string `json:"userPassword" binding:"required"`
}

func (s *Server) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rec, err := s.store.UserByEmail(req.UserEmail)
	if err != nil || !verifyPassword(rec.PasswordHash, req.UserPassword) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	token, err := newAccessToken(s.secret, rec.User, s.tokenTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "token issuance failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"token":  token,
		"role":   rec.Role,
		"userId": rec.UserID,
	})
}

type registerRequest struct {
	UserName     string `json:"userName" binding:"required"`
	UserEmail    string `json:"userEmail" binding:"required,email"`
	UserPassword string `json:"userPassword" binding:"required,min=6"`
	UserGender   string `json:"userGender"`
	UserRole     string `json:"userRole"`
}

func (s *Server) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	role := domain.ParseRole(req.UserRole)
	if role == domain.RoleUnknown {
		role = domain.RoleCustomer
	}
	hash, err := hashPassword(req.UserPassword, s.cost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "password hashing failed"})
		return
	}

	user, err := s.store.CreateUser(domain.User{
		UserName: req.UserName,
		Email:    req.UserEmail,
		Gender:   req.UserGender,
		Role:     role,
	}, hash)
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	s.store.CreateWallet(user.UserID)
	c.JSON(http.StatusCreated, user)
}

func (s *Server) listFlights(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.ListFlights())
}

func (s *Server) getFlight(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	flight, err := s.store.GetFlight(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "flight not found"})
		return
	}
	c.JSON(http.StatusOK, flight)
}

func (s *Server) searchFlights(c *gin.Context) {
	sourceID, _ := strconv.ParseInt(c.Query("sourceId"), 10, 64)
	destinationID, _ := strconv.ParseInt(c.Query("destinationId"), 10, 64)
	c.JSON(http.StatusOK, s.store.SearchFlights(sourceID, destinationID, c.Query("date")))
}

func (s *Server) saveFlight(c *gin.Context) {
	var flight domain.Flight
	if err := c.ShouldBindJSON(&flight); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if idParam := c.Param("id"); idParam != "" {
		id, err := strconv.ParseInt(idParam, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}
		if _, err := s.store.GetFlight(id); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "flight not found"})
			return
		}
		flight.FlightID = id
	}
	c.JSON(http.StatusOK, s.store.SaveFlight(flight))
}

func (s *Server) deleteFlight(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := s.store.DeleteFlight(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "flight not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) listAirports(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.ListAirports())
}

func (s *Server) searchAirports(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.SearchAirports(c.Query("query")))
}

func (s *Server) saveAirport(c *gin.Context) {
	var airport domain.Airport
	if err := c.ShouldBindJSON(&airport); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if code := c.Param("code"); code != "" {
		existing, err := s.store.AirportByCode(code)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "airport not found"})
			return
		}
		airport.AirportID = existing.AirportID
	}
	c.JSON(http.StatusOK, s.store.SaveAirport(airport))
}

func (s *Server) deleteAirport(c *gin.Context) {
	if err := s.store.DeleteAirport(c.Param("code")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "airport not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) listAirplanes(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.ListAirplanes())
}

func (s *Server) saveAirplane(c *gin.Context) {
	var airplane domain.Airplane
	if err := c.ShouldBindJSON(&airplane); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if number := c.Param("number"); number != "" {
		existing, err := s.store.AirplaneByNumber(number)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "airplane not found"})
			return
		}
		airplane.AirplaneID = existing.AirplaneID
	}
	c.JSON(http.StatusOK, s.store.SaveAirplane(airplane))
}

func (s *Server) deleteAirplane(c *gin.Context) {
	if err := s.store.DeleteAirplane(c.Param("number")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "airplane not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) listUsers(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.ListUsers())
}

func (s *Server) ownWallet(c *gin.Context) {
	claims := currentClaims(c)
	wallet, err := s.store.WalletFor(claims.UserID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "wallet not found"})
		return
	}
	c.JSON(http.StatusOK, wallet)
}

func (s *Server) walletFor(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}
	wallet, err := s.store.WalletFor(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "wallet not found"})
		return
	}
	c.JSON(http.StatusOK, wallet)
}

type addMoneyRequest struct {
	Balance float64 `json:"balance" binding:"required,gt=0"`
}

func (s *Server) addMoney(c *gin.Context) {
	var req addMoneyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	claims := currentClaims(c)
	wallet, err := s.store.Credit(claims.UserID, req.Balance)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "wallet not found"})
		return
	}
	c.JSON(http.StatusOK, wallet)
}

type topUpRequest struct {
	UserID int64   `json:"userId" binding:"required"`
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

func (s *Server) topUp(c *gin.Context) {
	var req topUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	wallet, err := s.store.Credit(req.UserID, req.Amount)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "wallet not found"})
		return
	}
	c.JSON(http.StatusOK, wallet)
}

func (s *Server) createWallet(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Query("userId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}
	c.JSON(http.StatusCreated, s.store.CreateWallet(userID))
}

type createBookingRequest struct {
	UserID      int64              `json:"userId"`
	FlightID    int64              `json:"flightId" binding:"required"`
	Passengers  []domain.Passenger `json:"passengers" binding:"required,min=1,dive"`
	TotalAmount float64            `json:"totalAmount" binding:"required,gt=0"`
}

func (s *Server) createBooking(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	claims := currentClaims(c)

	booking, err := s.store.CreateBooking(domain.Booking{
		UserID:      claims.UserID,
		FlightID:    req.FlightID,
		Passengers:  req.Passengers,
		TotalAmount: req.TotalAmount,
	})
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, errNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	s.log.WithFields(logrus.Fields{"bookingId": booking.BookingID, "userId": booking.UserID}).Info("booking created")
	c.JSON(http.StatusCreated, booking)
}

func (s *Server) userBookings(c *gin.Context) {
	claims := currentClaims(c)
	c.JSON(http.StatusOK, s.store.BookingsFor(claims.UserID))
}

func (s *Server) cancelBooking(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	claims := currentClaims(c)
	if err := s.store.CancelBooking(id, claims.UserID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) listReviews(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.ListReviews())
}

func (s *Server) createReview(c *gin.Context) {
	var review domain.Review
	if err := c.ShouldBindJSON(&review); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	claims := currentClaims(c)
	review.UserID = claims.UserID
	c.JSON(http.StatusCreated, s.store.AddReview(review))
}
