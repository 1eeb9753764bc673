// file: controllers/auth_controller_test.go
package controllers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Julius10-hub/UEB/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterIssuesTokenAndSession(t *testing.T) {
	r := setupEnv(t)

	w := doJSON(r, http.MethodPost, "/api/auth/register", map[string]any{
		"email":    "alice@example.com",
		"password": "secret123",
		"name":     "Alice",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	body := decode(t, w)
	assert.NotEmpty(t, body["token"])
	user := body["user"].(map[string]any)
	assert.Equal(t, "alice@example.com", user["email"])

	var sessionCookie *http.Cookie
	for _, ck := range w.Result().Cookies() {
		if ck.Name == utils.SessionCookie {
			sessionCookie = ck
		}
	}
	require.NotNil(t, sessionCookie, "register should set a session cookie")

	// cookie 单独就能通过 /me 拿到身份
	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.AddCookie(sessionCookie)
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, req)
	require.Equal(t, http.StatusOK, w2.Code)
	me := decode(t, w2)
	require.NotNil(t, me["user"])
	assert.Equal(t, "Alice", me["user"].(map[string]any)["name"])
}

func TestRegisterDuplicateEmailConflicts(t *testing.T) {
	r := setupEnv(t)

	payload := map[string]any{"email": "dup@example.com", "password": "secret123", "name": "Dup"}
	require.Equal(t, http.StatusCreated, doJSON(r, http.MethodPost, "/api/auth/register", payload, "").Code)

	w := doJSON(r, http.MethodPost, "/api/auth/register", payload, "")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `{"error": "Email already registered"}`, w.Body.String())
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	r := setupEnv(t)
	doJSON(r, http.MethodPost, "/api/auth/register", map[string]any{
		"email": "bob@example.com", "password": "secret123", "name": "Bob",
	}, "")

	w := doJSON(r, http.MethodPost, "/api/auth/login", map[string]any{
		"email": "bob@example.com", "password": "wrongpass",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error": "Invalid email or password"}`, w.Body.String())

	w = doJSON(r, http.MethodPost, "/api/auth/login", map[string]any{
		"email": "nobody@example.com", "password": "whatever",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginReturnsTokenAndRecordsLastLogin(t *testing.T) {
	r := setupEnv(t)
	doJSON(r, http.MethodPost, "/api/auth/register", map[string]any{
		"email": "carol@example.com", "password": "secret123", "name": "Carol",
	}, "")

	w := doJSON(r, http.MethodPost, "/api/auth/login", map[string]any{
		"email": "carol@example.com", "password": "secret123",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.NotEmpty(t, body["token"])
	assert.NotNil(t, body["user"].(map[string]any)["last_login"])
}

func TestMeAnonymousIsNullNotError(t *testing.T) {
	r := setupEnv(t)

	w := doJSON(r, http.MethodGet, "/api/auth/me", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user": null}`, w.Body.String())
}

func TestLogoutDestroysSession(t *testing.T) {
	r := setupEnv(t)

	w := doJSON(r, http.MethodPost, "/api/auth/register", map[string]any{
		"email": "dave@example.com", "password": "secret123", "name": "Dave",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	var sessionCookie *http.Cookie
	for _, ck := range w.Result().Cookies() {
		if ck.Name == utils.SessionCookie {
			sessionCookie = ck
		}
	}
	require.NotNil(t, sessionCookie)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	req.AddCookie(sessionCookie)
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, req)
	require.Equal(t, http.StatusOK, w2.Code)

	// 会话被销毁后，同一个 cookie 不再能解析出身份
	req = httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.AddCookie(sessionCookie)
	w3 := httptest.NewRecorder()
	r.ServeHTTP(w3, req)
	require.Equal(t, http.StatusOK, w3.Code)
	assert.JSONEq(t, `{"user": null}`, w3.Body.String())
}

func TestProfileRequiresLogin(t *testing.T) {
	r := setupEnv(t)

	w := doJSON(r, http.MethodGet, "/api/auth/profile", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUpdateProfilePartialPatch(t *testing.T) {
	r := setupEnv(t)

	w := doJSON(r, http.MethodPost, "/api/auth/register", map[string]any{
		"email": "eve@example.com", "password": "secret123", "name": "Eve", "phone": "650000000",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)
	token := decode(t, w)["token"].(string)

	w = doJSON(r, http.MethodPut, "/api/auth/profile", map[string]any{"bio": "Math teacher"}, token)
	require.Equal(t, http.StatusOK, w.Code)

	user := decode(t, w)["user"].(map[string]any)
	assert.Equal(t, "Math teacher", user["bio"])
	assert.Equal(t, "Eve", user["name"])
	assert.Equal(t, "650000000", user["phone"])
}
