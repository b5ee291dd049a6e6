package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/aetherlabs-ai/aether-crm/internal/entity"
)

// SessionCookie é o nome do cookie que carrega o token opaco.
const SessionCookie = "crm_session"

type contextKey string

const adminKey contextKey = "admin"

type SessionStore interface {
	Find(ctx context.Context, token string) (*entity.Session, error)
}

type AdminStore interface {
	FindByID(ctx context.Context, id string) (*entity.AdminUser, error)
}

// RequireAuth protege as rotas /api/admin: sem sessão válida e não
// expirada, 401 e nada mais executa.
func RequireAuth(sessions SessionStore, admins AdminStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookie)
			if err != nil || cookie.Value == "" {
				unauthorized(w)
				return
			}

			session, err := sessions.Find(r.Context(), cookie.Value)
			if err != nil {
				unauthorized(w)
				return
			}

			admin, err := admins.FindByID(r.Context(), session.AdminID)
			if err != nil {
				unauthorized(w)
				return
			}

			ctx := context.WithValue(r.Context(), adminKey, admin)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminFrom devolve o admin autenticado colocado no contexto pelo guard.
func AdminFrom(ctx context.Context) (*entity.AdminUser, bool) {
	admin, ok := ctx.Value(adminKey).(*entity.AdminUser)
	return admin, ok
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{
		"code":    "UNAUTHORIZED",
		"message": "Não autorizado",
	})
}
