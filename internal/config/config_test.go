package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/valueplus/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "ValuePlus Homes", cfg.App.Name)
	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "en-IN", cfg.App.Locale)
	assert.Equal(t, 30*time.Second, cfg.Server.Timeout)
	assert.Equal(t, 800*time.Millisecond, cfg.Auth.Delay)
	assert.True(t, cfg.Auth.AllowSignup)
	assert.Equal(t, "admin", cfg.Auth.AdminUsername)
	assert.Equal(t, 12*time.Hour, cfg.JWT.TTL)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.CORS.AllowedOrigins)
	assert.Empty(t, cfg.Seed.Recommendations)
	assert.True(t, cfg.DevSecret())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("AUTH_DELAY", "0s")
	t.Setenv("AUTH_ALLOW_SIGNUP", "false")
	t.Setenv("JWT_SECRET", "prod-secret")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("SEED_RECOMMENDATIONS", "/srv/seed/recs.csv")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.App.Port)
	assert.Zero(t, cfg.Auth.Delay)
	assert.False(t, cfg.Auth.AllowSignup)
	assert.False(t, cfg.DevSecret())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "/srv/seed/recs.csv", cfg.Seed.Recommendations)
}

func TestLoad_Invalid(t *testing.T) {
	type testCase struct {
		name string
		key  string
		val  string
		want string
	}

	tests := []testCase{
		{name: "ZeroPort", key: "PORT", val: "0", want: "PORT"},
		{name: "NegativeDelay", key: "AUTH_DELAY", val: "-1s", want: "AUTH_DELAY"},
		{name: "ZeroTTL", key: "JWT_TTL", val: "0s", want: "JWT_TTL"},
		{name: "NotANumber", key: "PORT", val: "eighty", want: "failed to process config"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.val)

			_, err := config.Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}
