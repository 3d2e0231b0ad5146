package domain

import "strings"

type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleAdmin    Role = "ADMIN"
	RoleUnknown  Role = ""
)

// ParseRole normalizes a wire-format role string. Anything other than the
// two recognized roles maps to RoleUnknown, which the gate treats as
// unauthenticated.
func ParseRole(s string) Role {
	switch Role(strings.ToUpper(strings.TrimSpace(s))) {
	case RoleCustomer:
		return RoleCustomer
	case RoleAdmin:
		return RoleAdmin
	default:
		return RoleUnknown
	}
}

type User struct {
	UserID   int64  `json:"userId"`
	UserName string `json:"userName,omitempty"`
	Email    string `json:"userEmail"`
	Gender   string `json:"userGender,omitempty"`
	Role     Role   `json:"userRole"`
}

// Session is the (token, user) pair for an authenticated visitor. Token and
// User are set together or not at all; a half-populated session is never
// treated as authenticated.
type Session struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

func (s Session) Authenticated() bool {
	return s.Token != "" && s.User != nil
}

func (s Session) Role() Role {
	if !s.Authenticated() {
		return RoleUnknown
	}
	return ParseRole(string(s.User.Role))
}
