package bearer_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/valueplus/internal/auth"
	"github.com/MrJamesThe3rd/valueplus/internal/http/bearer"
	"github.com/MrJamesThe3rd/valueplus/internal/session"
	"github.com/MrJamesThe3rd/valueplus/internal/token"
)

func TestFromHeader(t *testing.T) {
	type testCase struct {
		name   string
		header string
		want   string
		wantOK bool
	}

	tests := []testCase{
		{name: "Bearer", header: "Bearer abc.def", want: "abc.def", wantOK: true},
		{name: "LowercaseScheme", header: "bearer abc", want: "abc", wantOK: true},
		{name: "Empty", header: ""},
		{name: "BasicScheme", header: "Basic dXNlcjpwYXNz"},
		{name: "NoToken", header: "Bearer   "},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.Header.Set("Authorization", tc.header)

			got, ok := bearer.FromHeader(r)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestAuthenticateAndRequire(t *testing.T) {
	tokens, err := token.NewIssuer("test-secret", "valueplus", time.Hour)
	require.NoError(t, err)

	user := &auth.User{ID: uuid.New(), Username: "admin"}

	adminToken, _, err := tokens.Issue(user, session.RoleAdmin)
	require.NoError(t, err)

	homeToken, _, err := tokens.Issue(user, session.RoleHomeowner)
	require.NoError(t, err)

	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, session.RoleAdmin, bearer.Role(r.Context()))
		w.WriteHeader(http.StatusOK)
	})

	h := bearer.Authenticate(tokens)(bearer.Require(session.ViewAdmin)(ok))

	type testCase struct {
		name       string
		token      string
		wantStatus int
	}

	tests := []testCase{
		{name: "Admin", token: adminToken, wantStatus: http.StatusOK},
		{name: "Homeowner", token: homeToken, wantStatus: http.StatusForbidden},
		{name: "Anonymous", wantStatus: http.StatusForbidden},
		{name: "Invalid", token: "nope", wantStatus: http.StatusUnauthorized},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/", nil)
			if tc.token != "" {
				r.Header.Set("Authorization", "Bearer "+tc.token)
			}

			w := httptest.NewRecorder()
			h.ServeHTTP(w, r)

			assert.Equal(t, tc.wantStatus, w.Code)
		})
	}
}
