package token_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/valueplus/internal/apperr"
	"github.com/MrJamesThe3rd/valueplus/internal/auth"
	"github.com/MrJamesThe3rd/valueplus/internal/session"
	"github.com/MrJamesThe3rd/valueplus/internal/token"
)

func testUser() *auth.User {
	return &auth.User{
		ID:          uuid.New(),
		Username:    "priya",
		DisplayName: "Priya",
		Email:       "priya@valueplus.local",
	}
}

func TestIssuer_RoundTrip(t *testing.T) {
	iss, err := token.NewIssuer("test-secret", "valueplus", time.Hour)
	require.NoError(t, err)

	user := testUser()

	raw, issued, err := iss.Issue(user, session.RoleAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	claims, err := iss.Parse(raw)
	require.NoError(t, err)

	assert.Equal(t, session.RoleAdmin, claims.Role)
	assert.Equal(t, issued.ID, claims.ID)
	assert.Equal(t, user, claims.User())
	assert.Equal(t, "valueplus", claims.Issuer)
}

func TestIssuer_Parse_Rejects(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	iss, err := token.NewIssuer("test-secret", "valueplus", time.Hour)
	require.NoError(t, err)
	iss.WithClock(func() time.Time { return now })

	valid, _, err := iss.Issue(testUser(), session.RoleHomeowner)
	require.NoError(t, err)

	other, err := token.NewIssuer("other-secret", "valueplus", time.Hour)
	require.NoError(t, err)
	forged, _, err := other.Issue(testUser(), session.RoleAdmin)
	require.NoError(t, err)

	foreign, err := token.NewIssuer("test-secret", "someone-else", time.Hour)
	require.NoError(t, err)
	wrongIssuer, _, err := foreign.Issue(testUser(), session.RoleAdmin)
	require.NoError(t, err)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"role": "admin"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	type testCase struct {
		name  string
		raw   string
		later time.Duration
	}

	tests := []testCase{
		{name: "Empty", raw: ""},
		{name: "Garbage", raw: "not-a-token"},
		{name: "WrongSecret", raw: forged},
		{name: "WrongIssuer", raw: wrongIssuer},
		{name: "UnsignedAlgNone", raw: none},
		{name: "Expired", raw: valid, later: 2 * time.Hour},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			iss.WithClock(func() time.Time { return now.Add(tc.later) })

			_, err := iss.Parse(tc.raw)
			require.Error(t, err)
			assert.ErrorIs(t, err, apperr.ErrAuth)
		})
	}
}

func TestIssuer_IssueWithoutUser(t *testing.T) {
	iss, err := token.NewIssuer("test-secret", "valueplus", time.Hour)
	require.NoError(t, err)

	_, _, err = iss.Issue(nil, session.RoleHomeowner)
	assert.ErrorIs(t, err, apperr.ErrAuth)
}

func TestNewIssuer_Validation(t *testing.T) {
	_, err := token.NewIssuer("", "valueplus", time.Hour)
	assert.Error(t, err)

	_, err = token.NewIssuer("secret", "valueplus", 0)
	assert.Error(t, err)
}
