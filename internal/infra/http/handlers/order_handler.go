package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/aetherlabs-ai/aether-crm/internal/entity"
	"github.com/aetherlabs-ai/aether-crm/internal/infra/database"
	"github.com/aetherlabs-ai/aether-crm/internal/infra/http/middleware"
	"github.com/aetherlabs-ai/aether-crm/internal/infra/queue"
)

type OrderHandler struct {
	Orders   *database.OrderRepository
	Services *database.ServiceRepository
	Producer queue.ProducerInterface
}

func NewOrderHandler(orders *database.OrderRepository, services *database.ServiceRepository, producer queue.ProducerInterface) *OrderHandler {
	return &OrderHandler{Orders: orders, Services: services, Producer: producer}
}

type createOrderRequest struct {
	ClientName  string `json:"client_name"`
	ClientEmail string `json:"client_email"`
	ClientPhone string `json:"client_phone"`
	ServiceID   string `json:"service_id"`
	Notes       string `json:"notes"`
}

// Create é público: pedido de serviço vindo do site.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "JSON inválido")
		return
	}
	if strings.TrimSpace(req.ClientName) == "" || strings.TrimSpace(req.ClientEmail) == "" {
		respondMessage(w, http.StatusBadRequest, "VALIDATION_ERROR", "Nome e email são obrigatórios")
		return
	}

	service, err := h.Services.FindByID(r.Context(), req.ServiceID)
	if err != nil {
		respondError(w, err)
		return
	}

	order := entity.NewOrder(req.ClientName, req.ClientEmail, req.ClientPhone,
		service.ID, service.Title, req.Notes)

	if err := h.Orders.Create(r.Context(), order); err != nil {
		respondError(w, err)
		return
	}

	middleware.RecordSiteSubmission(queue.KindOrder)
	if h.Producer != nil {
		err := h.Producer.PublishNotification(r.Context(), queue.NotificationPayload{
			Kind:    queue.KindOrder,
			Name:    order.ClientName,
			Email:   order.ClientEmail,
			Subject: order.ServiceName,
			Body:    order.Notes,
		})
		if err != nil {
			// Notificação é melhor esforço; o pedido já está salvo.
			log.Printf("falha ao publicar notificação de pedido: %v", err)
		}
	}

	respondJSON(w, http.StatusCreated, order)
}

func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Orders.List(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, orders)
}

type updateOrderRequest struct {
	Status string `json:"status"`
}

func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req updateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "JSON inválido")
		return
	}
	if strings.TrimSpace(req.Status) == "" {
		respondMessage(w, http.StatusBadRequest, "VALIDATION_ERROR", "Status é obrigatório")
		return
	}

	id := chi.URLParam(r, "id")
	if err := h.Orders.UpdateStatus(r.Context(), id, req.Status, time.Now()); err != nil {
		respondError(w, err)
		return
	}

	order, err := h.Orders.FindByID(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, order)
}
