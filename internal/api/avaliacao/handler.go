package avaliacao

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

// AvaliacaoService define o contrato das operações de avaliação pós-evento.
type AvaliacaoService interface {
	Avaliar(ctx context.Context, form domain.AvaliacaoForm) (domain.Avaliacao, error)
	ListarAvaliacoes(ctx context.Context) ([]domain.Avaliacao, error)
	AvaliacoesDoEvento(ctx context.Context, eventoID string) ([]domain.Avaliacao, error)
	RemoverAvaliacao(ctx context.Context, id string) (bool, error)
}

// Handler agrupa os métodos de Handler de avaliações.
type Handler struct {
	Service AvaliacaoService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc AvaliacaoService, log logger.Logger) *Handler {
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
		h.Logger.Error("Erro interno no serviço de avaliações:", err)
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

// AvaliacoesHandler lida com /v1/avaliacoes (GET com filtro ?eventoId=, POST).
// POST substitui a avaliação anterior do mesmo membro no mesmo evento, se houver.
// @Summary Lista e registra avaliações de desempenho
// @Tags avaliacoes
// @Accept json
// @Produce json
// @Param eventoId query string false "Avaliações de um evento específico"
// @Success 200 {array} domain.Avaliacao
// @Success 201 {object} domain.Avaliacao "Avaliação com valorPago calculado"
// @Failure 400 {object} domain.ErrorResponse "Qualidade ou pontualidade inválida"
// @Router /avaliacoes [get]
func (h *Handler) AvaliacoesHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	switch r.Method {
	case http.MethodGet:
		if eventoID := r.URL.Query().Get("eventoId"); eventoID != "" {
			avaliacoes, err := h.Service.AvaliacoesDoEvento(ctx, eventoID)
			h.handleServiceResponse(w, r, avaliacoes, err, http.StatusOK)
			return
		}
		avaliacoes, err := h.Service.ListarAvaliacoes(ctx)
		h.handleServiceResponse(w, r, avaliacoes, err, http.StatusOK)

	case http.MethodPost:
		var form domain.AvaliacaoForm
		if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
			h.handleServiceResponse(w, r, nil, apperror.NewValidationError("Payload JSON inválido."), http.StatusCreated)
			return
		}
		avaliacao, err := h.Service.Avaliar(ctx, form)
		h.handleServiceResponse(w, r, avaliacao, err, http.StatusCreated)

	default:
		http.Error(w, "Método não permitido", http.StatusMethodNotAllowed)
	}
}

// AvaliacaoPorIDHandler lida com /v1/avaliacoes/{id} (DELETE).
func (h *Handler) AvaliacaoPorIDHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id := strings.TrimPrefix(r.URL.Path, "/v1/avaliacoes/")
	if id == "" || strings.Contains(id, "/") {
		h.handleServiceResponse(w, r, nil, apperror.NewValidationError("Formato de URL inválido ou ID ausente."), http.StatusOK)
		return
	}

	if r.Method != http.MethodDelete {
		http.Error(w, "Método não permitido", http.StatusMethodNotAllowed)
		return
	}

	removida, err := h.Service.RemoverAvaliacao(ctx, id)
	if err == nil && !removida {
		err = apperror.NewNotFoundError(fmt.Sprintf("Avaliação com ID %s não existe.", id))
	}
	h.handleServiceResponse(w, r, nil, err, http.StatusNoContent)
}
