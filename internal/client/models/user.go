package models

import (
	"encoding/json"
	"strings"

	"github.com/dmitrijs2005/jabuspark/internal/common"
)

// User is the cached profile of the signed-in account. Fields the client
// does not know about are kept in Extra and written back unchanged.
type User struct {
	ID    FlexID
	Name  string
	Email string
	Role  string
	Extra map[string]json.RawMessage
}

var userKnownFields = []string{"id", "name", "email", "role"}

type userWire struct {
	ID    FlexID `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (u *User) UnmarshalJSON(b []byte) error {
	var w userWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	var all map[string]json.RawMessage
	if err := json.Unmarshal(b, &all); err != nil {
		return err
	}
	for _, k := range userKnownFields {
		delete(all, k)
	}
	if len(all) == 0 {
		all = nil
	}

	*u = User{ID: w.ID, Name: w.Name, Email: w.Email, Role: w.Role, Extra: all}
	return nil
}

func (u User) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(u.Extra)+len(userKnownFields))
	for k, v := range u.Extra {
		out[k] = v
	}
	if u.ID != "" {
		out["id"] = u.ID
	}
	out["name"] = u.Name
	out["email"] = u.Email
	out["role"] = u.Role
	return json.Marshal(out)
}

// Normalized returns a copy with the role lower-cased (default "student")
// and an empty name replaced by the default display name.
func (u User) Normalized() User {
	u.Role = common.NormalizeRole(u.Role)
	u.Name = strings.TrimSpace(u.Name)
	if u.Name == "" {
		u.Name = common.DefaultDisplayName
	}
	if u.Extra != nil {
		extra := make(map[string]json.RawMessage, len(u.Extra))
		for k, v := range u.Extra {
			extra[k] = v
		}
		u.Extra = extra
	}
	return u
}

// HasRole reports whether the user's role equals role, ignoring case.
func (u User) HasRole(role string) bool {
	return common.RoleMatches(u.Role, role)
}

// LoginRequest is the body of POST /auth/login.php.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse is the body returned by login and, optionally, registration.
type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// RegisterRequest is the body of POST /auth/register.php.
type RegisterRequest struct {
	Name         string `json:"name" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=6"`
	DepartmentID FlexID `json:"department_id" validate:"required"`
	Level        string `json:"level" validate:"required"`
}

// RegisterResult is what registration returned. AutoLoggedIn is set when
// the response carried both a token and a user and the session was stored.
type RegisterResult struct {
	Raw          json.RawMessage
	Message      string
	User         *User
	AutoLoggedIn bool
}

// Department is one entry of GET /departments/list.php.
type Department struct {
	ID      FlexID `json:"id"`
	Name    string `json:"name"`
	Faculty string `json:"faculty,omitempty"`
	Code    FlexID `json:"code,omitempty"`
}
