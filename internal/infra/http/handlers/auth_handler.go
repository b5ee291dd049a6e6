package handlers

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/aetherlabs-ai/aether-crm/internal/entity"
	"github.com/aetherlabs-ai/aether-crm/internal/infra/database"
	"github.com/aetherlabs-ai/aether-crm/internal/infra/http/middleware"
)

const sessionTTL = 24 * time.Hour

type AuthHandler struct {
	Admins   *database.AdminRepository
	Sessions *database.SessionRepository
}

func NewAuthHandler(admins *database.AdminRepository, sessions *database.SessionRepository) *AuthHandler {
	return &AuthHandler{Admins: admins, Sessions: sessions}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type adminView struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

func newSessionToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "JSON inválido")
		return
	}
	if req.Username == "" || req.Password == "" {
		respondMessage(w, http.StatusBadRequest, "VALIDATION_ERROR", "Usuário e senha são obrigatórios")
		return
	}

	admin, err := h.Admins.FindByUsername(r.Context(), req.Username)
	if err != nil {
		// Não revela se o usuário existe.
		respondMessage(w, http.StatusUnauthorized, "UNAUTHORIZED", "Credenciais inválidas")
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.Password)) != nil {
		respondMessage(w, http.StatusUnauthorized, "UNAUTHORIZED", "Credenciais inválidas")
		return
	}

	token, err := newSessionToken()
	if err != nil {
		respondError(w, err)
		return
	}

	now := time.Now()
	session := &entity.Session{
		Token:     token,
		AdminID:   admin.ID,
		ExpiresAt: now.Add(sessionTTL),
		CreatedAt: now,
	}
	if err := h.Sessions.Create(r.Context(), session); err != nil {
		respondError(w, err)
		return
	}

	// Limpeza oportunista de sessões vencidas; falha não bloqueia o login.
	_ = h.Sessions.Purge(r.Context())

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	respondJSON(w, http.StatusOK, map[string]any{
		"message": "Login realizado com sucesso",
		"user":    adminView{ID: admin.ID, Username: admin.Username},
	})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(middleware.SessionCookie); err == nil && cookie.Value != "" {
		if err := h.Sessions.Delete(r.Context(), cookie.Value); err != nil {
			respondError(w, err)
			return
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	respondJSON(w, http.StatusOK, map[string]string{"message": "Logout realizado com sucesso"})
}

// Me responde o admin da sessão atual; o guard já validou o token.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	admin, ok := middleware.AdminFrom(r.Context())
	if !ok {
		respondMessage(w, http.StatusUnauthorized, "UNAUTHORIZED", "Não autenticado")
		return
	}
	respondJSON(w, http.StatusOK, adminView{ID: admin.ID, Username: admin.Username})
}
