package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aetherlabs-ai/aether-crm/internal/entity"
	"github.com/aetherlabs-ai/aether-crm/internal/infra/http/middleware"
)

func TestNewSessionToken(t *testing.T) {
	a, err := newSessionToken()
	assert.NoError(t, err)
	b, err := newSessionToken()
	assert.NoError(t, err)

	assert.Len(t, a, 64)
	assert.NotEqual(t, a, b)
}

func TestLoginRejectsEmptyCredentials(t *testing.T) {
	h := NewAuthHandler(nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(`{"username":"","password":""}`))
	rec := httptest.NewRecorder()

	h.Login(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestLogoutWithoutCookieClearsSession(t *testing.T) {
	h := NewAuthHandler(nil, nil)

	rec := httptest.NewRecorder()
	h.Logout(rec, httptest.NewRequest(http.MethodPost, "/api/admin/logout", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	if assert.Len(t, cookies, 1) {
		assert.Equal(t, middleware.SessionCookie, cookies[0].Name)
		assert.Empty(t, cookies[0].Value)
		assert.Negative(t, cookies[0].MaxAge)
	}
}

func TestMeWithoutAdminInContext(t *testing.T) {
	h := NewAuthHandler(nil, nil)

	rec := httptest.NewRecorder()
	h.Me(rec, httptest.NewRequest(http.MethodGet, "/api/admin/me", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMeWithAdminInContext(t *testing.T) {
	h := NewAuthHandler(nil, nil)

	admin := &entity.AdminUser{ID: "a1", Username: "admin"}
	next := http.HandlerFunc(h.Me)

	sessions := &stubSessionStore{session: &entity.Session{Token: "t", AdminID: "a1"}}
	admins := &stubAdminStore{admin: admin}

	req := httptest.NewRequest(http.MethodGet, "/api/admin/me", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: "t"})
	rec := httptest.NewRecorder()

	middleware.RequireAuth(sessions, admins)(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"username":"admin"`)
}

type stubSessionStore struct{ session *entity.Session }

func (s *stubSessionStore) Find(_ context.Context, token string) (*entity.Session, error) {
	if s.session != nil && s.session.Token == token {
		return s.session, nil
	}
	return nil, entity.ErrSessionNotFound
}

type stubAdminStore struct{ admin *entity.AdminUser }

func (s *stubAdminStore) FindByID(_ context.Context, id string) (*entity.AdminUser, error) {
	if s.admin != nil && s.admin.ID == id {
		return s.admin, nil
	}
	return nil, entity.ErrAdminNotFound
}
