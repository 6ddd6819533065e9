package session

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/MrJamesThe3rd/valueplus/internal/auth"
)

// Cache remembers the last signed-in identity on disk so the next start can
// prefill the login form. It holds no password and no role.
type Cache struct {
	path string
	now  func() time.Time
}

type cacheFile struct {
	User    *auth.User `yaml:"user"`
	SavedAt time.Time  `yaml:"saved_at"`
}

func NewCache(path string) *Cache {
	return &Cache{path: path, now: time.Now}
}

// DefaultCachePath is $HOME/.valueplus/session.yaml.
func DefaultCachePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}

	return filepath.Join(home, ".valueplus", "session.yaml"), nil
}

// Load returns the cached user, or nil when nothing is cached.
func (c *Cache) Load() (*auth.User, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}

		return nil, fmt.Errorf("reading session cache: %w", err)
	}

	var f cacheFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decoding session cache: %w", err)
	}

	return f.User, nil
}

func (c *Cache) Save(u *auth.User) error {
	if u == nil {
		return c.Clear()
	}

	data, err := yaml.Marshal(cacheFile{User: u, SavedAt: c.now().UTC()})
	if err != nil {
		return fmt.Errorf("encoding session cache: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(c.path), 0o700); err != nil {
		return fmt.Errorf("creating session cache directory: %w", err)
	}

	if err := os.WriteFile(c.path, data, 0o600); err != nil {
		return fmt.Errorf("writing session cache: %w", err)
	}

	return nil
}

func (c *Cache) Clear() error {
	if err := os.Remove(c.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("removing session cache: %w", err)
	}

	return nil
}
