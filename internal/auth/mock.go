package auth

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/valueplus/internal/apperr"
)

const DefaultDelay = 800 * time.Millisecond

// MockProvider accepts any non-empty credentials after a fixed delay. No
// identity is actually verified.
type MockProvider struct {
	delay  time.Duration
	verify func(Credentials) error

	mu      sync.Mutex
	current *User
	users   map[string]*User
}

type MockOption func(*MockProvider)

// WithDelay sets the simulated latency of every call.
func WithDelay(d time.Duration) MockOption {
	return func(p *MockProvider) {
		p.delay = d
	}
}

// WithVerifier installs a check run on each login; a non-nil error fails the call.
func WithVerifier(fn func(Credentials) error) MockOption {
	return func(p *MockProvider) {
		p.verify = fn
	}
}

// WithUser starts the provider with u already signed in, as when the last
// identity was restored from a local cache.
func WithUser(u *User) MockOption {
	return func(p *MockProvider) {
		if u == nil {
			return
		}

		p.current = u
		p.users[strings.ToLower(u.Username)] = u
	}
}

func NewMockProvider(opts ...MockOption) *MockProvider {
	p := &MockProvider{
		delay: DefaultDelay,
		users: make(map[string]*User),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

func (p *MockProvider) Login(opts LoginOptions, cb func(*User, error)) {
	p.after(func() {
		user, err := p.login(opts)
		cb(user, err)
	})
}

func (p *MockProvider) Logout(cb func(error)) {
	p.after(func() {
		p.mu.Lock()
		p.current = nil
		p.mu.Unlock()

		cb(nil)
	})
}

func (p *MockProvider) CurrentUser(cb func(*User, error)) {
	p.after(func() {
		p.mu.Lock()
		u := p.current
		p.mu.Unlock()

		cb(u, nil)
	})
}

func (p *MockProvider) after(fn func()) {
	time.AfterFunc(p.delay, fn)
}

func (p *MockProvider) login(opts LoginOptions) (*User, error) {
	creds := opts.Credentials

	if creds.Signup {
		if !opts.AllowSignup {
			return nil, apperr.Auth("sign-up is disabled", nil)
		}

		if creds.Password != creds.ConfirmPassword {
			return nil, apperr.Auth("passwords do not match", nil)
		}
	} else if !opts.AllowLogin {
		return nil, apperr.Auth("login is disabled", nil)
	}

	if strings.TrimSpace(creds.Username) == "" || creds.Password == "" {
		return nil, apperr.Auth("invalid credentials, please try again", nil)
	}

	if p.verify != nil {
		if err := p.verify(creds); err != nil {
			return nil, apperr.Auth("invalid credentials, please try again", err)
		}
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	key := strings.ToLower(strings.TrimSpace(creds.Username))

	user, ok := p.users[key]
	if !ok {
		user = newUser(creds.Username)
		p.users[key] = user
	}

	p.current = user

	return user, nil
}

func newUser(username string) *User {
	username = strings.TrimSpace(username)

	email := username
	if !strings.Contains(email, "@") {
		email = strings.ToLower(username) + "@valueplus.local"
	}

	display := username
	if at := strings.IndexByte(display, '@'); at > 0 {
		display = display[:at]
	}

	return &User{
		ID:          uuid.New(),
		Username:    username,
		DisplayName: display,
		Email:       email,
	}
}
