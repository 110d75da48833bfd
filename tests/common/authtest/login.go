//go:build unit || e2e

package authtest

import (
	"encoding/json"
	"net/http"
	"testing"

	"rental-admin/internal/handler/dto/request"
	"rental-admin/tests/common/dbtest"
	"rental-admin/tests/common/httptest"

	"github.com/stretchr/testify/require"
)

const loginPath = "/api/auth/login"

// Session is what a successful login hands back to a browser client.
type Session struct {
	AccessToken string
	Cookies     []*http.Cookie
}

// Login posts credentials and requires both the body token and the
// access cookie to be present and identical.
func Login(t *testing.T, h http.Handler, email, password string) Session {
	t.Helper()

	w := httptest.PerformRequest(t, h, http.MethodPost, loginPath,
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	access := httptest.ExtractCookie(w, "access_token")
	require.NotNil(t, access, "access_token cookie missing")
	require.Equal(t, body.AccessToken, access.Value)
	require.NotNil(t, httptest.ExtractCookie(w, "refresh_token"), "refresh_token cookie missing")

	return Session{AccessToken: access.Value, Cookies: httptest.ExtractCookies(w)}
}

// LoginUser is Login reduced to the bearer token.
func LoginUser(t *testing.T, h http.Handler, email, password string) string {
	t.Helper()
	return Login(t, h, email, password).AccessToken
}

// CreateAndLogin seeds a staff account with dbtest.TestPassword and logs it in.
func CreateAndLogin(t *testing.T, db dbtest.DBLike, h http.Handler, email, role string) string {
	t.Helper()
	dbtest.CreateTestUser(t, db, email, role)
	return LoginUser(t, h, email, dbtest.TestPassword)
}
