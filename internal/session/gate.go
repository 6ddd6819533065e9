package session

import (
	"errors"
	"sync"

	"github.com/MrJamesThe3rd/valueplus/internal/apperr"
	"github.com/MrJamesThe3rd/valueplus/internal/async"
	"github.com/MrJamesThe3rd/valueplus/internal/auth"
)

// ErrPending is returned when a login or logout is submitted while another
// one is still outstanding.
var ErrPending = errors.New("a login or logout is already in progress")

// Gate owns one session: who is signed in, with which role, and which view is
// active. All mutation goes through Login, Logout, Restore and Navigate.
type Gate struct {
	client *auth.Client
	policy RolePolicy

	mu    sync.Mutex
	state State
}

func NewGate(client *auth.Client, policy RolePolicy) *Gate {
	return &Gate{
		client: client,
		policy: policy,
		state:  State{View: ViewHome},
	}
}

func (g *Gate) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.state
}

// Navigate switches to v. Opening the admin area without the admin role is
// rejected with AccessDenied and redirects to the login view.
func (g *Gate) Navigate(v View) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := Authorize(g.state.Role, v); err != nil {
		g.state.View = ViewLogin
		g.state.Notice = "Please log in as an administrator to open the admin area."

		return err
	}

	g.state.View = v
	g.state.Notice = ""

	return nil
}

// Login starts an asynchronous login. Credential presence is checked first;
// a second submission while a call is outstanding returns ErrPending.
func (g *Gate) Login(creds auth.Credentials) (*async.Future[State], error) {
	if err := ValidateCredentials(creds); err != nil {
		return nil, err
	}

	if err := g.begin(); err != nil {
		return nil, err
	}

	return async.Then(g.client.Login(creds), func(u *auth.User, err error) (State, error) {
		g.mu.Lock()
		defer g.mu.Unlock()

		g.state.Pending = false

		if err != nil {
			if !errors.Is(err, apperr.ErrAuth) {
				err = apperr.Auth("login failed", err)
			}

			g.state.Notice = err.Error()

			return g.state, err
		}

		role := g.policy.Resolve(u, creds)
		g.state = State{
			View:   role.Landing(),
			User:   u,
			Role:   role,
			Notice: "Welcome, " + u.DisplayName + "!",
		}

		return g.state, nil
	}), nil
}

// Logout signs the session out. Logging out an anonymous session settles
// immediately with the unchanged state.
func (g *Gate) Logout() (*async.Future[State], error) {
	g.mu.Lock()
	if g.state.Pending {
		g.mu.Unlock()
		return nil, ErrPending
	}

	if !g.state.Authenticated() {
		s := g.state
		g.mu.Unlock()

		return async.Resolved(s, nil), nil
	}

	g.state.Pending = true
	g.mu.Unlock()

	return async.Then(g.client.Logout(), func(_ struct{}, err error) (State, error) {
		g.mu.Lock()
		defer g.mu.Unlock()

		g.state.Pending = false

		if err != nil {
			err = apperr.Auth("logout failed", err)
			g.state.Notice = err.Error()

			return g.state, err
		}

		g.state = State{View: ViewHome, Notice: "You have been logged out."}

		return g.state, nil
	}), nil
}

// Restore asks the provider for an identity that is already signed in and
// adopts it. No credentials are available here, so the role policy sees
// empty credentials.
func (g *Gate) Restore() (*async.Future[State], error) {
	if err := g.begin(); err != nil {
		return nil, err
	}

	return async.Then(g.client.CurrentUser(), func(u *auth.User, err error) (State, error) {
		g.mu.Lock()
		defer g.mu.Unlock()

		g.state.Pending = false

		if err != nil {
			return g.state, apperr.Auth("restoring session failed", err)
		}

		if u == nil {
			return g.state, nil
		}

		g.state.User = u
		g.state.Role = g.policy.Resolve(u, auth.Credentials{})

		return g.state, nil
	}), nil
}

func (g *Gate) begin() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state.Pending {
		return ErrPending
	}

	g.state.Pending = true
	g.state.Notice = ""

	return nil
}
