package notafiscal

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"gobuffet/internal/domain"
	apperror "gobuffet/internal/errors"
	"gobuffet/internal/pkg/logger"
)

// NotaFiscalService define o contrato das operações de notas fiscais.
type NotaFiscalService interface {
	RegistrarNota(ctx context.Context, form domain.NotaFiscalForm) (domain.NotaFiscalComStatus, error)
	ListarNotas(ctx context.Context) ([]domain.NotaFiscalComStatus, error)
	NotasDoEvento(ctx context.Context, eventoID string) ([]domain.NotaFiscalComStatus, error)
	AtualizarNota(ctx context.Context, id string, patch domain.NotaFiscalPatch) (domain.NotaFiscalComStatus, error)
	RemoverNota(ctx context.Context, id string) (bool, error)
}

// Handler agrupa os métodos de Handler de notas fiscais.
type Handler struct {
	Service NotaFiscalService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc NotaFiscalService, log logger.Logger) *Handler {
	return &Handler{Service: svc, Logger: log}
}

func (h *Handler) handleServiceResponse(w http.ResponseWriter, r *http.Request, data interface{}, err error, successStatus int) {
	if err == nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(successStatus)
		if data != nil {
			json.NewEncoder(w).Encode(data)
		}
		return
	}

	status, category, message := apperror.MapToHTTPStatus(err)

	if status >= 500 {
		h.Logger.Error("Erro interno no serviço de notas fiscais:", err)
	}

	errorResponse := map[string]interface{}{
		"code":     status,
		"category": category,
		"message":  message,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorResponse)
}

// NotasHandler lida com /v1/notas-fiscais (GET com filtro ?eventoId=, POST).
// As respostas sempre incluem o campo derivado status.
// @Summary Lista e registra notas fiscais
// @Tags notas-fiscais
// @Accept json
// @Produce json
// @Param eventoId query string false "Notas de um evento específico"
// @Success 200 {array} domain.NotaFiscalComStatus
// @Success 201 {object} domain.NotaFiscalComStatus
// @Router /notas-fiscais [get]
func (h *Handler) NotasHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	switch r.Method {
	case http.MethodGet:
		if eventoID := r.URL.Query().Get("eventoId"); eventoID != "" {
			notas, err := h.Service.NotasDoEvento(ctx, eventoID)
			h.handleServiceResponse(w, r, notas, err, http.StatusOK)
			return
		}
		notas, err := h.Service.ListarNotas(ctx)
		h.handleServiceResponse(w, r, notas, err, http.StatusOK)

	case http.MethodPost:
		var form domain.NotaFiscalForm
		if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
			h.handleServiceResponse(w, r, nil, apperror.NewValidationError("Payload JSON inválido."), http.StatusCreated)
			return
		}
		nota, err := h.Service.RegistrarNota(ctx, form)
		h.handleServiceResponse(w, r, nota, err, http.StatusCreated)

	default:
		http.Error(w, "Método não permitido", http.StatusMethodNotAllowed)
	}
}

// NotaPorIDHandler lida com /v1/notas-fiscais/{id} (PATCH e DELETE).
func (h *Handler) NotaPorIDHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id := strings.TrimPrefix(r.URL.Path, "/v1/notas-fiscais/")
	if id == "" || strings.Contains(id, "/") {
		h.handleServiceResponse(w, r, nil, apperror.NewValidationError("Formato de URL inválido ou ID ausente."), http.StatusOK)
		return
	}

	switch r.Method {
	case http.MethodPatch:
		var patch domain.NotaFiscalPatch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			h.handleServiceResponse(w, r, nil, apperror.NewValidationError("Payload JSON inválido."), http.StatusOK)
			return
		}
		nota, err := h.Service.AtualizarNota(ctx, id, patch)
		h.handleServiceResponse(w, r, nota, err, http.StatusOK)

	case http.MethodDelete:
		removida, err := h.Service.RemoverNota(ctx, id)
		if err == nil && !removida {
			err = apperror.NewNotFoundError(fmt.Sprintf("Nota fiscal com ID %s não existe.", id))
		}
		h.handleServiceResponse(w, r, nil, err, http.StatusNoContent)

	default:
		http.Error(w, "Método não permitido", http.StatusMethodNotAllowed)
	}
}
