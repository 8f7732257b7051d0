package escala

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

// EscalaService define o contrato das operações de escalas de trabalho.
type EscalaService interface {
	DefinirEscala(ctx context.Context, form domain.EscalaEventoForm) (domain.EscalaEvento, error)
	ListarEscalas(ctx context.Context) ([]domain.EscalaEvento, error)
	EscalaDoEvento(ctx context.Context, eventoID string) (domain.EscalaEvento, error)
	RemoverEscala(ctx context.Context, id string) (bool, error)
}

// Handler agrupa os métodos de Handler de escalas.
type Handler struct {
	Service EscalaService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc EscalaService, log logger.Logger) *Handler {
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
		h.Logger.Error("Erro interno no serviço de escalas:", err)
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

// EscalasHandler lida com /v1/escalas (GET com filtro ?eventoId=, POST).
// POST substitui a escala anterior do mesmo evento, se houver.
// @Summary Lista e define escalas de trabalho
// @Tags escalas
// @Accept json
// @Produce json
// @Param eventoId query string false "Escala de um evento específico"
// @Success 200 {array} domain.EscalaEvento
// @Success 201 {object} domain.EscalaEvento
// @Failure 404 {object} domain.ErrorResponse "Evento sem escala definida"
// @Router /escalas [get]
func (h *Handler) EscalasHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	switch r.Method {
	case http.MethodGet:
		if eventoID := r.URL.Query().Get("eventoId"); eventoID != "" {
			escala, err := h.Service.EscalaDoEvento(ctx, eventoID)
			h.handleServiceResponse(w, r, escala, err, http.StatusOK)
			return
		}
		escalas, err := h.Service.ListarEscalas(ctx)
		h.handleServiceResponse(w, r, escalas, err, http.StatusOK)

	case http.MethodPost:
		var form domain.EscalaEventoForm
		if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
			h.handleServiceResponse(w, r, nil, apperror.NewValidationError("Payload JSON inválido."), http.StatusCreated)
			return
		}
		escala, err := h.Service.DefinirEscala(ctx, form)
		h.handleServiceResponse(w, r, escala, err, http.StatusCreated)

	default:
		http.Error(w, "Método não permitido", http.StatusMethodNotAllowed)
	}
}

// EscalaPorIDHandler lida com /v1/escalas/{id} (DELETE).
func (h *Handler) EscalaPorIDHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id := strings.TrimPrefix(r.URL.Path, "/v1/escalas/")
	if id == "" || strings.Contains(id, "/") {
		h.handleServiceResponse(w, r, nil, apperror.NewValidationError("Formato de URL inválido ou ID ausente."), http.StatusOK)
		return
	}

	if r.Method != http.MethodDelete {
		http.Error(w, "Método não permitido", http.StatusMethodNotAllowed)
		return
	}

	removida, err := h.Service.RemoverEscala(ctx, id)
	if err == nil && !removida {
		err = apperror.NewNotFoundError(fmt.Sprintf("Escala com ID %s não existe.", id))
	}
	h.handleServiceResponse(w, r, nil, err, http.StatusNoContent)
}
