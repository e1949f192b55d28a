// AngelaMos | 2026
// handler_test.go

package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthRouter(t *testing.T) chi.Router {
	t.Helper()

	svc, _ := newTestService(t)
	h := NewHandler(svc)
	r := chi.NewRouter()
	h.RegisterRoutes(r)
	return r
}

func postJSON(
	t *testing.T,
	router chi.Router,
	path, body string,
) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestSignupHandlerCreatesUser(t *testing.T) {
	router := newAuthRouter(t)

	rec := postJSON(t, router, "/signup",
		`{"email":"new@example.com","password":"s3cure-pass","user_type":"tenant"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "User created successfully")
}

func TestSignupHandlerDuplicateEmail(t *testing.T) {
	router := newAuthRouter(t)

	body := `{"email":"dup@example.com","password":"s3cure-pass","user_type":"owner"}`

	rec := postJSON(t, router, "/signup", body)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = postJSON(t, router, "/signup", body)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "User with this email already exists")
}

func TestSignupHandlerRejectsUnknownUserType(t *testing.T) {
	router := newAuthRouter(t)

	rec := postJSON(t, router, "/signup",
		`{"email":"x@example.com","password":"s3cure-pass","user_type":"landlord"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "user_type")
}

func TestLoginHandlerInvalidCredentials(t *testing.T) {
	router := newAuthRouter(t)

	rec := postJSON(t, router, "/login",
		`{"email":"ghost@example.com","password":"whatever1"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid email or password")
}

func TestLoginHandlerReturnsToken(t *testing.T) {
	svc, _ := newTestService(t)
	h := NewHandler(svc)
	router := chi.NewRouter()
	h.RegisterRoutes(router)

	_, err := svc.Signup(context.Background(), SignupRequest{
		Email:    "owner@example.com",
		Password: "s3cure-pass",
		UserType: UserTypeOwner,
	})
	require.NoError(t, err)

	rec := postJSON(t, router, "/login",
		`{"email":"owner@example.com","password":"s3cure-pass"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Login successful")
	assert.Contains(t, rec.Body.String(), "access_token")
}
