package equipe

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

// EquipeService define o contrato das operações da equipe.
type EquipeService interface {
	CadastrarMembro(ctx context.Context, form domain.MembroEquipeForm) (domain.MembroEquipe, error)
	ListarMembros(ctx context.Context) ([]domain.MembroEquipe, error)
	ListarAtivos(ctx context.Context) ([]domain.MembroEquipe, error)
	ListarPendentes(ctx context.Context) ([]domain.MembroEquipe, error)
	BuscarMembroPorID(ctx context.Context, id string) (domain.MembroEquipe, error)
	AprovarMembro(ctx context.Context, id, funcaoPrincipal string, funcoesSecundarias []string) (domain.MembroEquipe, error)
	AtualizarMembro(ctx context.Context, id string, patch domain.MembroEquipePatch) (domain.MembroEquipe, error)
	RemoverMembro(ctx context.Context, id string) (bool, error)
}

// AprovacaoRequest é o payload de POST /v1/equipe/{id}/aprovar.
type AprovacaoRequest struct {
	FuncaoPrincipal    string   `json:"funcaoPrincipal"`
	FuncoesSecundarias []string `json:"funcoesSecundarias"`
}

// Handler agrupa os métodos de Handler da equipe.
type Handler struct {
	Service EquipeService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc EquipeService, log logger.Logger) *Handler {
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
		h.Logger.Error("Erro interno no serviço de equipe:", err)
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

// EquipeHandler lida com /v1/equipe (GET com filtro ?status=, POST para cadastro).
// @Summary Lista e cadastra membros da equipe
// @Description GET aceita ?status=ativos ou ?status=pendentes. POST cadastra um membro pendente de aprovação.
// @Tags equipe
// @Accept json
// @Produce json
// @Param status query string false "ativos | pendentes"
// @Success 200 {array} domain.MembroEquipe
// @Success 201 {object} domain.MembroEquipe "Membro cadastrado como pendente"
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Router /equipe [get]
func (h *Handler) EquipeHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	switch r.Method {
	case http.MethodGet:
		switch r.URL.Query().Get("status") {
		case "ativos":
			membros, err := h.Service.ListarAtivos(ctx)
			h.handleServiceResponse(w, r, membros, err, http.StatusOK)
		case "pendentes":
			membros, err := h.Service.ListarPendentes(ctx)
			h.handleServiceResponse(w, r, membros, err, http.StatusOK)
		default:
			membros, err := h.Service.ListarMembros(ctx)
			h.handleServiceResponse(w, r, membros, err, http.StatusOK)
		}

	case http.MethodPost:
		var form domain.MembroEquipeForm
		if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
			h.handleServiceResponse(w, r, nil, apperror.NewValidationError("Payload JSON inválido."), http.StatusCreated)
			return
		}
		novo, err := h.Service.CadastrarMembro(ctx, form)
		h.handleServiceResponse(w, r, novo, err, http.StatusCreated)

	default:
		http.Error(w, "Método não permitido", http.StatusMethodNotAllowed)
	}
}

// MembroPorIDHandler lida com /v1/equipe/{id} e /v1/equipe/{id}/aprovar.
func (h *Handler) MembroPorIDHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	resto := strings.TrimPrefix(r.URL.Path, "/v1/equipe/")
	segmentos := strings.Split(strings.Trim(resto, "/"), "/")

	// /v1/equipe/{id}/aprovar
	if len(segmentos) == 2 && segmentos[1] == "aprovar" {
		if r.Method != http.MethodPost {
			http.Error(w, "Método não permitido", http.StatusMethodNotAllowed)
			return
		}
		var req AprovacaoRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.handleServiceResponse(w, r, nil, apperror.NewValidationError("Payload JSON inválido."), http.StatusOK)
			return
		}
		aprovado, err := h.Service.AprovarMembro(ctx, segmentos[0], req.FuncaoPrincipal, req.FuncoesSecundarias)
		h.handleServiceResponse(w, r, aprovado, err, http.StatusOK)
		return
	}

	if len(segmentos) != 1 || segmentos[0] == "" {
		h.handleServiceResponse(w, r, nil, apperror.NewValidationError("Formato de URL inválido ou ID ausente."), http.StatusOK)
		return
	}
	id := segmentos[0]

	switch r.Method {
	case http.MethodGet:
		membro, err := h.Service.BuscarMembroPorID(ctx, id)
		h.handleServiceResponse(w, r, membro, err, http.StatusOK)

	case http.MethodPatch:
		var patch domain.MembroEquipePatch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			h.handleServiceResponse(w, r, nil, apperror.NewValidationError("Payload JSON inválido."), http.StatusOK)
			return
		}
		atualizado, err := h.Service.AtualizarMembro(ctx, id, patch)
		h.handleServiceResponse(w, r, atualizado, err, http.StatusOK)

	case http.MethodDelete:
		removido, err := h.Service.RemoverMembro(ctx, id)
		if err == nil && !removido {
			err = apperror.NewNotFoundError(fmt.Sprintf("Membro com ID %s não existe.", id))
		}
		h.handleServiceResponse(w, r, nil, err, http.StatusNoContent)

	default:
		http.Error(w, "Método não permitido", http.StatusMethodNotAllowed)
	}
}
