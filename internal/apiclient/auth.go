package apiclient

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/flyawayhq/flyaway/internal/domain"
)

var validate = validator.New()

type loginRequest struct {
	UserEmail    string `json:"userEmail" validate:"required,email"`
	UserPassword string `json:"userPassword" validate:"required"`
}

type loginResponse struct {
	Token  string `json:"token"`
	Role   string `json:"role"`
	UserID int64  `json:"userId"`
}

// Login exchanges credentials for a bearer token and the user profile the
// session stores alongside it.
func (c *Client) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	req := loginRequest{UserEmail: email, UserPassword: password}
	if err := validate.Struct(req); err != nil {
		return "", nil, err
	}

	var resp loginResponse
	if err := c.do(ctx, http.MethodPost, "/login", nil, req, &resp); err != nil {
		return "", nil, err
	}
	if resp.Token == "" {
		return "", nil, errors.New("login response missing token")
	}

	user := &domain.User{
		UserID: resp.UserID,
		Email:  email,
		Role:   domain.ParseRole(resp.Role),
	}
	return resp.Token, user, nil
}

type RegisterInput struct {
	UserName        string `json:"userName" validate:"required"`
	UserEmail       string `json:"userEmail" validate:"required,email"`
	UserPassword    string `json:"userPassword" validate:"required,min=6"`
	ConfirmPassword string `json:"-" validate:"required,eqfield=UserPassword"`
	UserGender      string `json:"userGender" validate:"required"`
	UserRole        string `json:"userRole"`
}

// Register creates an account. The password-confirmation check happens here,
// before any network call; the role defaults to CUSTOMER.
func (c *Client) Register(ctx context.Context, input RegisterInput) error {
	if input.UserRole == "" {
		input.UserRole = string(domain.RoleCustomer)
	}
	if err := validate.Struct(input); err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, "/register", nil, input, nil)
}
