package custo

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

// CustoService define o contrato das operações de custos variáveis e fixos.
type CustoService interface {
	CriarCusto(ctx context.Context, form domain.CustoForm) (domain.Custo, error)
	ListarCustos(ctx context.Context) ([]domain.Custo, error)
	CustosDoEvento(ctx context.Context, eventoID string) ([]domain.Custo, error)
	AtualizarCusto(ctx context.Context, id string, patch domain.CustoPatch) (domain.Custo, error)
	RemoverCusto(ctx context.Context, id string) (bool, error)

	CriarCustoFixo(ctx context.Context, form domain.CustoFixoForm) (domain.CustoFixo, error)
	ListarCustosFixos(ctx context.Context) ([]domain.CustoFixo, error)
	CustosFixosDoMes(ctx context.Context, mes string) ([]domain.CustoFixo, error)
	AtualizarCustoFixo(ctx context.Context, id string, patch domain.CustoFixoPatch) (domain.CustoFixo, error)
	RemoverCustoFixo(ctx context.Context, id string) (bool, error)
}

// Handler agrupa os métodos de Handler de custos.
type Handler struct {
	Service CustoService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc CustoService, log logger.Logger) *Handler {
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
		h.Logger.Error("Erro interno no serviço de custos:", err)
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

// CustosHandler lida com /v1/custos (GET com filtro opcional ?eventoId=, POST).
// @Summary Lista e cria custos variáveis
// @Tags custos
// @Accept json
// @Produce json
// @Param eventoId query string false "Filtra custos de um evento"
// @Success 200 {array} domain.Custo
// @Success 201 {object} domain.Custo
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Router /custos [get]
func (h *Handler) CustosHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	switch r.Method {
	case http.MethodGet:
		if eventoID := r.URL.Query().Get("eventoId"); eventoID != "" {
			custos, err := h.Service.CustosDoEvento(ctx, eventoID)
			h.handleServiceResponse(w, r, custos, err, http.StatusOK)
			return
		}
		custos, err := h.Service.ListarCustos(ctx)
		h.handleServiceResponse(w, r, custos, err, http.StatusOK)

	case http.MethodPost:
		var form domain.CustoForm
		if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
			h.handleServiceResponse(w, r, nil, apperror.NewValidationError("Payload JSON inválido."), http.StatusCreated)
			return
		}
		novo, err := h.Service.CriarCusto(ctx, form)
		h.handleServiceResponse(w, r, novo, err, http.StatusCreated)

	default:
		http.Error(w, "Método não permitido", http.StatusMethodNotAllowed)
	}
}

// CustoPorIDHandler lida com /v1/custos/{id} (PATCH e DELETE).
func (h *Handler) CustoPorIDHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id := strings.TrimPrefix(r.URL.Path, "/v1/custos/")
	if id == "" || strings.Contains(id, "/") {
		h.handleServiceResponse(w, r, nil, apperror.NewValidationError("Formato de URL inválido ou ID ausente."), http.StatusOK)
		return
	}

	switch r.Method {
	case http.MethodPatch:
		var patch domain.CustoPatch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			h.handleServiceResponse(w, r, nil, apperror.NewValidationError("Payload JSON inválido."), http.StatusOK)
			return
		}
		atualizado, err := h.Service.AtualizarCusto(ctx, id, patch)
		h.handleServiceResponse(w, r, atualizado, err, http.StatusOK)

	case http.MethodDelete:
		removido, err := h.Service.RemoverCusto(ctx, id)
		if err == nil && !removido {
			err = apperror.NewNotFoundError(fmt.Sprintf("Custo com ID %s não existe.", id))
		}
		h.handleServiceResponse(w, r, nil, err, http.StatusNoContent)

	default:
		http.Error(w, "Método não permitido", http.StatusMethodNotAllowed)
	}
}

// CustosFixosHandler lida com /v1/custos-fixos (GET com filtro opcional ?mes=, POST).
// @Summary Lista e cria custos fixos mensais
// @Tags custos
// @Accept json
// @Produce json
// @Param mes query string false "Mês de referência (YYYY-MM)"
// @Success 200 {array} domain.CustoFixo
// @Success 201 {object} domain.CustoFixo
// @Router /custos-fixos [get]
func (h *Handler) CustosFixosHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	switch r.Method {
	case http.MethodGet:
		if mes := r.URL.Query().Get("mes"); mes != "" {
			custos, err := h.Service.CustosFixosDoMes(ctx, mes)
			h.handleServiceResponse(w, r, custos, err, http.StatusOK)
			return
		}
		custos, err := h.Service.ListarCustosFixos(ctx)
		h.handleServiceResponse(w, r, custos, err, http.StatusOK)

	case http.MethodPost:
		var form domain.CustoFixoForm
		if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
			h.handleServiceResponse(w, r, nil, apperror.NewValidationError("Payload JSON inválido."), http.StatusCreated)
			return
		}
		novo, err := h.Service.CriarCustoFixo(ctx, form)
		h.handleServiceResponse(w, r, novo, err, http.StatusCreated)

	default:
		http.Error(w, "Método não permitido", http.StatusMethodNotAllowed)
	}
}

// CustoFixoPorIDHandler lida com /v1/custos-fixos/{id} (PATCH e DELETE).
func (h *Handler) CustoFixoPorIDHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id := strings.TrimPrefix(r.URL.Path, "/v1/custos-fixos/")
	if id == "" || strings.Contains(id, "/") {
		h.handleServiceResponse(w, r, nil, apperror.NewValidationError("Formato de URL inválido ou ID ausente."), http.StatusOK)
		return
	}

	switch r.Method {
	case http.MethodPatch:
		var patch domain.CustoFixoPatch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			h.handleServiceResponse(w, r, nil, apperror.NewValidationError("Payload JSON inválido."), http.StatusOK)
			return
		}
		atualizado, err := h.Service.AtualizarCustoFixo(ctx, id, patch)
		h.handleServiceResponse(w, r, atualizado, err, http.StatusOK)

	case http.MethodDelete:
		removido, err := h.Service.RemoverCustoFixo(ctx, id)
		if err == nil && !removido {
			err = apperror.NewNotFoundError(fmt.Sprintf("Custo fixo com ID %s não existe.", id))
		}
		h.handleServiceResponse(w, r, nil, err, http.StatusNoContent)

	default:
		http.Error(w, "Método não permitido", http.StatusMethodNotAllowed)
	}
}
