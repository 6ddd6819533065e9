// Package auth holds the identity provider contract the session gate depends
// on, a mock provider that simulates a remote identity service, and a client
// that exposes the provider's callbacks as futures.
package auth

import (
	"github.com/google/uuid"
)

// User is an identity returned by a provider.
type User struct {
	ID          uuid.UUID `yaml:"id"`
	Username    string    `yaml:"username"`
	DisplayName string    `yaml:"display_name"`
	Email       string    `yaml:"email"`
}

// Credentials are what a person types into the login or sign-up form.
type Credentials struct {
	Username        string
	Password        string
	ConfirmPassword string
	Signup          bool
}

// LoginOptions mirrors the widget options of the hosted identity service the
// demos stand in for.
type LoginOptions struct {
	AllowLogin  bool
	AllowSignup bool
	Credentials Credentials
}

// Provider is a callback-style identity service. Every call invokes its
// callback exactly once, with either a result or an error.
type Provider interface {
	Login(opts LoginOptions, cb func(*User, error))
	Logout(cb func(error))
	CurrentUser(cb func(*User, error))
}
