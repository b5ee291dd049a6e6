package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/aetherlabs-ai/aether-crm/internal/entity"
	"github.com/aetherlabs-ai/aether-crm/internal/infra/database"
	"github.com/aetherlabs-ai/aether-crm/internal/infra/http/middleware"
	"github.com/aetherlabs-ai/aether-crm/internal/infra/queue"
)

// ContactHandler cobre o formulário público de contato, a inscrição na
// newsletter e a listagem administrativa. Os endpoints públicos são
// fire-and-forget: qualquer falha de notificação não derruba o 200.
type ContactHandler struct {
	Contacts    *database.ContactRepository
	Newsletter  *database.NewsletterRepository
	Producer    queue.ProducerInterface
	rateLimiter *RateLimiter
}

func NewContactHandler(contacts *database.ContactRepository, newsletter *database.NewsletterRepository, producer queue.ProducerInterface) *ContactHandler {
	return &ContactHandler{
		Contacts:    contacts,
		Newsletter:  newsletter,
		Producer:    producer,
		rateLimiter: NewRateLimiter(10, time.Minute), // 10 req/min por IP
	}
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	if !h.rateLimiter.Allow(getClientIP(r)) {
		respondMessage(w, http.StatusTooManyRequests, "RATE_LIMITED", "Muitas requisições. Tente novamente em instantes.")
		return
	}

	var req contactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "JSON inválido")
		return
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" ||
		strings.TrimSpace(req.Subject) == "" || strings.TrimSpace(req.Message) == "" {
		respondMessage(w, http.StatusBadRequest, "VALIDATION_ERROR", "Nome, email, assunto e mensagem são obrigatórios")
		return
	}

	contact := entity.NewContact(req.Name, req.Email, req.Phone, req.Subject, req.Message)
	if err := h.Contacts.Create(r.Context(), contact); err != nil {
		respondError(w, err)
		return
	}

	middleware.RecordSiteSubmission(queue.KindContact)
	h.notify(r, queue.NotificationPayload{
		Kind:    queue.KindContact,
		Name:    contact.Name,
		Email:   contact.Email,
		Subject: contact.Subject,
		Body:    contact.Message,
	})

	respondJSON(w, http.StatusCreated, contact)
}

func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.Contacts.List(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, contacts)
}

type newsletterRequest struct {
	Email string `json:"email"`
}

func (h *ContactHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	if !h.rateLimiter.Allow(getClientIP(r)) {
		respondMessage(w, http.StatusTooManyRequests, "RATE_LIMITED", "Muitas requisições. Tente novamente em instantes.")
		return
	}

	var req newsletterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "JSON inválido")
		return
	}
	if strings.TrimSpace(req.Email) == "" {
		respondMessage(w, http.StatusBadRequest, "VALIDATION_ERROR", "Email é obrigatório")
		return
	}

	sub := &entity.NewsletterSubscriber{Email: req.Email}
	if err := h.Newsletter.Upsert(r.Context(), sub); err != nil {
		respondError(w, err)
		return
	}

	middleware.RecordSiteSubmission(queue.KindNewsletter)
	h.notify(r, queue.NotificationPayload{
		Kind:  queue.KindNewsletter,
		Email: sub.Email,
	})

	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *ContactHandler) notify(r *http.Request, payload queue.NotificationPayload) {
	if h.Producer == nil {
		return
	}
	if err := h.Producer.PublishNotification(r.Context(), payload); err != nil {
		log.Printf("falha ao publicar notificação %s: %v", payload.Kind, err)
	}
}
