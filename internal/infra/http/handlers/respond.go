package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/aetherlabs-ai/aether-crm/internal/entity"
	"github.com/aetherlabs-ai/aether-crm/internal/usecase"
)

// errorResponse carrega um código estável para máquinas e a mensagem
// em português para exibição.
type errorResponse struct {
	Code    string                  `json:"code"`
	Message string                  `json:"message"`
	Fields  []usecase.ValidationError `json:"fields,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func respondMessage(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, errorResponse{Code: code, Message: message})
}

var notFoundErrors = []error{
	entity.ErrLeadNotFound,
	entity.ErrCustomerNotFound,
	entity.ErrDealNotFound,
	entity.ErrStageNotFound,
	entity.ErrServiceNotFound,
	entity.ErrOrderNotFound,
	entity.ErrAdminNotFound,
}

// respondError traduz a falha vinda do repositório/usecase para o status
// HTTP. Sem retentativas: semântica de tentativa única.
func respondError(w http.ResponseWriter, err error) {
	var verrs usecase.ValidationErrors
	if errors.As(err, &verrs) {
		respondJSON(w, http.StatusBadRequest, errorResponse{
			Code:    "VALIDATION_ERROR",
			Message: "Dados inválidos",
			Fields:  verrs,
		})
		return
	}

	for _, sentinel := range notFoundErrors {
		if errors.Is(err, sentinel) {
			respondMessage(w, http.StatusNotFound, "NOT_FOUND", err.Error())
			return
		}
	}

	if errors.Is(err, entity.ErrEmailAlreadyExists) {
		respondMessage(w, http.StatusConflict, "CONFLICT", err.Error())
		return
	}
	if errors.Is(err, entity.ErrInvalidCredential) || errors.Is(err, entity.ErrSessionNotFound) {
		respondMessage(w, http.StatusUnauthorized, "UNAUTHORIZED", "Credenciais inválidas")
		return
	}

	log.Printf("erro interno: %v", err)
	respondMessage(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Erro no servidor")
}

func badRequest(w http.ResponseWriter, message string) {
	respondMessage(w, http.StatusBadRequest, "INVALID_JSON", message)
}
