package demoapi

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/flyawayhq/flyaway/internal/domain"
)

type authClaims struct {
	Email  string
	Role   domain.Role
	UserID int64
}

// newAccessToken signs an HS256 JWT carrying subject, role and userId claims.
func newAccessToken(secret string, user domain.User, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":    user.Email,
		"role":   string(user.Role),
		"userId": user.UserID,
		"exp":    now.Add(ttl).Unix(),
		"iat":    now.Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

func parseAccessToken(secret, token string) (*authClaims, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !parsed.Valid {
		return nil, errors.New("invalid token")
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}

	email, _ := claims["sub"].(string)
	role, _ := claims["role"].(string)
	userID, _ := claims["userId"].(float64)
	if email == "" {
		return nil, errors.New("token missing subject")
	}
	return &authClaims{Email: email, Role: domain.ParseRole(role), UserID: int64(userID)}, nil
}

func hashPassword(plain string, cost int) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func verifyPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
