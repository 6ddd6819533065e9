package auth

import (
	"github.com/MrJamesThe3rd/valueplus/internal/async"
)

// Client exposes a Provider as futures with explicit success and failure.
type Client struct {
	provider Provider
	opts     LoginOptions
}

// NewClient wraps p. allowSignup controls whether sign-up attempts reach the provider.
func NewClient(p Provider, allowSignup bool) *Client {
	return &Client{
		provider: p,
		opts:     LoginOptions{AllowLogin: true, AllowSignup: allowSignup},
	}
}

func (c *Client) Login(creds Credentials) *async.Future[*User] {
	f, settle := async.New[*User]()

	opts := c.opts
	opts.Credentials = creds
	c.provider.Login(opts, settle)

	return f
}

func (c *Client) Logout() *async.Future[struct{}] {
	f, settle := async.New[struct{}]()

	c.provider.Logout(func(err error) {
		settle(struct{}{}, err)
	})

	return f
}

func (c *Client) CurrentUser() *async.Future[*User] {
	f, settle := async.New[*User]()
	c.provider.CurrentUser(settle)

	return f
}
