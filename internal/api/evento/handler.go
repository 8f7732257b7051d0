package evento

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"gobuffet/internal/domain"
	apperror "gobuffet/internal/errors"
	"gobuffet/internal/pkg/logger"
	"gobuffet/internal/pkg/middleware"
)

// EventoService define o contrato que o Handler espera da camada de Serviço.
type EventoService interface {
	CriarEvento(ctx context.Context, form domain.EventoForm) (domain.Evento, error)
	ListarEventos(ctx context.Context) ([]domain.Evento, error)
	BuscarEventoPorID(ctx context.Context, id string) (domain.Evento, error)
	AtualizarEvento(ctx context.Context, id string, patch domain.EventoPatch) (domain.Evento, error)
	RemoverEvento(ctx context.Context, id string) (bool, error)
}

// Handler agrupa todos os métodos de Handler de eventos.
type Handler struct {
	Service EventoService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc EventoService, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Logger:  log,
	}
}

// handleServiceResponse processa erros de serviço e envia respostas padronizadas ao cliente.
func (h *Handler) handleServiceResponse(w http.ResponseWriter, r *http.Request, data interface{}, err error, successStatus int) {
	if err == nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(successStatus)

		h.Logger.Info("Requisição concluída com sucesso", map[string]interface{}{
			"method": r.Method,
			"path":   r.URL.Path,
			"status": successStatus,
		})

		if data != nil {
			if jsonErr := json.NewEncoder(w).Encode(data); jsonErr != nil {
				h.Logger.Error("Falha ao codificar JSON de resposta", jsonErr)
				http.Error(w, "Erro ao codificar resposta", http.StatusInternalServerError)
			}
		}
		return
	}

	status, category, message := apperror.MapToHTTPStatus(err)

	if status >= 500 {
		h.Logger.Error(fmt.Sprintf("Erro de Servidor: %s", category), err)
	} else {
		// Erros de cliente (4xx) são logged como debug
		h.Logger.Debug(fmt.Sprintf("Requisição rejeitada com status %d. Categoria: %s", status, category), map[string]interface{}{"path": r.URL.Path})
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

// EventosHandler lida com a coleção /v1/eventos.
// @Summary Lista e cria eventos
// @Description GET retorna os eventos ordenados por data; POST cria um novo evento.
// @Tags eventos
// @Accept json
// @Produce json
// @Param evento body domain.EventoForm true "Dados do evento"
// @Success 200 {array} domain.Evento "Lista de eventos"
// @Success 201 {object} domain.Evento "Evento criado"
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /eventos [get]
func (h *Handler) EventosHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	switch r.Method {
	case http.MethodGet:
		eventos, err := h.Service.ListarEventos(ctx)
		h.handleServiceResponse(w, r, eventos, err, http.StatusOK)

	case http.MethodPost:
		if claims, ok := middleware.GetUserClaimsFromContext(ctx); ok {
			h.Logger.Info("Criação de evento solicitada por", map[string]interface{}{
				"user_id": claims.UserID,
				"role":    claims.Role,
			})
		}

		var form domain.EventoForm
		if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
			h.handleServiceResponse(w, r, nil, apperror.NewValidationError("Payload inválido. Verifique o formato JSON."), http.StatusCreated)
			return
		}

		novo, err := h.Service.CriarEvento(ctx, form)
		h.handleServiceResponse(w, r, novo, err, http.StatusCreated)

	default:
		http.Error(w, "Método não permitido", http.StatusMethodNotAllowed)
	}
}

// EventoPorIDHandler lida com /v1/eventos/{id} (GET, PATCH e DELETE).
func (h *Handler) EventoPorIDHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id := strings.TrimPrefix(r.URL.Path, "/v1/eventos/")
	if id == "" || strings.Contains(id, "/") {
		h.handleServiceResponse(w, r, nil, apperror.NewValidationError("Formato de URL inválido ou ID ausente."), http.StatusOK)
		return
	}

	switch r.Method {
	case http.MethodGet:
		evento, err := h.Service.BuscarEventoPorID(ctx, id)
		h.handleServiceResponse(w, r, evento, err, http.StatusOK)

	case http.MethodPatch:
		var patch domain.EventoPatch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			h.handleServiceResponse(w, r, nil, apperror.NewValidationError("Payload inválido. Verifique o formato JSON."), http.StatusOK)
			return
		}
		atualizado, err := h.Service.AtualizarEvento(ctx, id, patch)
		h.handleServiceResponse(w, r, atualizado, err, http.StatusOK)

	case http.MethodDelete:
		removido, err := h.Service.RemoverEvento(ctx, id)
		if err == nil && !removido {
			// Remoção de id inexistente não é erro na camada de serviço,
			// mas na borda HTTP o cliente precisa do 404.
			err = apperror.NewNotFoundError(fmt.Sprintf("Evento com ID %s não existe.", id))
		}
		h.handleServiceResponse(w, r, nil, err, http.StatusNoContent)

	default:
		http.Error(w, "Método não permitido", http.StatusMethodNotAllowed)
	}
}
