package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/aetherlabs-ai/aether-crm/internal/entity"
)

type mockSessionStore struct {
	mock.Mock
}

func (m *mockSessionStore) Find(ctx context.Context, token string) (*entity.Session, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Session), args.Error(1)
}

type mockAdminStore struct {
	mock.Mock
}

func (m *mockAdminStore) FindByID(ctx context.Context, id string) (*entity.AdminUser, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.AdminUser), args.Error(1)
}

func protectedProbe(t *testing.T) (http.Handler, *bool, **entity.AdminUser) {
	t.Helper()
	reached := false
	var seen *entity.AdminUser
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		seen, _ = AdminFrom(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	return next, &reached, &seen
}

func TestRequireAuthWithoutCookie(t *testing.T) {
	sessions := &mockSessionStore{}
	admins := &mockAdminStore{}
	next, reached, _ := protectedProbe(t)

	rec := httptest.NewRecorder()
	RequireAuth(sessions, admins)(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/admin/leads", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, *reached)
	assert.Contains(t, rec.Body.String(), "UNAUTHORIZED")
	sessions.AssertNotCalled(t, "Find", mock.Anything, mock.Anything)
}

func TestRequireAuthUnknownToken(t *testing.T) {
	sessions := &mockSessionStore{}
	admins := &mockAdminStore{}
	sessions.On("Find", mock.Anything, "deadbeef").Return(nil, entity.ErrSessionNotFound)
	next, reached, _ := protectedProbe(t)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/leads", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "deadbeef"})
	rec := httptest.NewRecorder()

	RequireAuth(sessions, admins)(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, *reached)
	admins.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestRequireAuthValidSession(t *testing.T) {
	sessions := &mockSessionStore{}
	admins := &mockAdminStore{}

	session := &entity.Session{Token: "cafe01", AdminID: "a1", ExpiresAt: time.Now().Add(time.Hour)}
	admin := &entity.AdminUser{ID: "a1", Username: "admin"}
	sessions.On("Find", mock.Anything, "cafe01").Return(session, nil)
	admins.On("FindByID", mock.Anything, "a1").Return(admin, nil)

	next, reached, seen := protectedProbe(t)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/leads", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "cafe01"})
	rec := httptest.NewRecorder()

	RequireAuth(sessions, admins)(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, *reached)
	assert.Equal(t, "admin", (*seen).Username)
}
