package session

import (
	"strings"

	"github.com/MrJamesThe3rd/valueplus/internal/apperr"
	"github.com/MrJamesThe3rd/valueplus/internal/auth"
)

// View selects the screen a session is looking at.
type View string

const (
	ViewHome   View = "home"
	ViewBrowse View = "browse"
	ViewAdmin  View = "admin"
	ViewLogin  View = "login"
)

// Role is the access class of an authenticated session. The zero value means anonymous.
type Role string

const (
	RoleNone      Role = ""
	RoleHomeowner Role = "homeowner"
	RoleAdmin     Role = "admin"
)

// Landing is the view a freshly authenticated session moves to.
func (r Role) Landing() View {
	switch r {
	case RoleAdmin:
		return ViewAdmin
	case RoleHomeowner:
		return ViewBrowse
	}

	return ViewHome
}

// State is a snapshot of a session.
type State struct {
	View    View
	User    *auth.User
	Role    Role
	Pending bool
	Notice  string
}

func (s State) Authenticated() bool {
	return s.Role != RoleNone
}

// Authorize reports whether role may open v. Only the admin area is gated.
func Authorize(role Role, v View) error {
	if v == ViewAdmin && role != RoleAdmin {
		return apperr.AccessDenied("the admin area requires an administrator login")
	}

	return nil
}

// ValidateCredentials performs the presence checks done before any provider call.
func ValidateCredentials(c auth.Credentials) error {
	if strings.TrimSpace(c.Username) == "" {
		return apperr.Validation("username", "username is required")
	}

	if c.Password == "" {
		return apperr.Validation("password", "password is required")
	}

	if c.Signup && c.ConfirmPassword == "" {
		return apperr.Validation("confirm_password", "please confirm the password")
	}

	return nil
}

// RolePolicy decides the role of a successfully authenticated identity.
type RolePolicy interface {
	Resolve(user *auth.User, creds auth.Credentials) Role
}

// StaticAdminPolicy grants the admin role to one fixed username/password pair
// and the homeowner role to everyone else.
type StaticAdminPolicy struct {
	Username string
	Password string
}

func (p StaticAdminPolicy) Resolve(_ *auth.User, creds auth.Credentials) Role {
	if p.Username != "" && creds.Username == p.Username && creds.Password == p.Password {
		return RoleAdmin
	}

	return RoleHomeowner
}
