package opcao

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

// OpcaoService define o contrato das operações dos catálogos de opções.
type OpcaoService interface {
	ListarOpcoes(ctx context.Context, lista domain.ListaOpcoes) ([]domain.Opcao, error)
	AdicionarOpcao(ctx context.Context, lista domain.ListaOpcoes, opcao domain.Opcao) (domain.Opcao, error)
	RemoverOpcao(ctx context.Context, lista domain.ListaOpcoes, value string) (bool, error)
}

// Handler agrupa os métodos de Handler dos catálogos.
type Handler struct {
	Service OpcaoService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc OpcaoService, log logger.Logger) *Handler {
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
		h.Logger.Error("Erro interno no serviço de opções:", err)
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

func parseLista(segmento string) (domain.ListaOpcoes, error) {
	switch segmento {
	case string(domain.ListaCardapio):
		return domain.ListaCardapio, nil
	case string(domain.ListaBebidas):
		return domain.ListaBebidas, nil
	default:
		return "", apperror.NewValidationError(fmt.Sprintf("Lista de opções desconhecida: %s. Use cardapio ou bebidas.", segmento))
	}
}

// OpcoesHandler lida com /v1/opcoes/{lista} e /v1/opcoes/{lista}/{value}.
// @Summary Catálogos de cardápio e bebidas
// @Description GET lista o catálogo (semeado com os padrões no primeiro acesso); POST adiciona; DELETE por value remove.
// @Tags opcoes
// @Accept json
// @Produce json
// @Success 200 {array} domain.Opcao
// @Success 201 {object} domain.Opcao
// @Failure 409 {object} domain.ErrorResponse "Value já cadastrado na lista"
// @Router /opcoes/{lista} [get]
func (h *Handler) OpcoesHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	resto := strings.TrimPrefix(r.URL.Path, "/v1/opcoes/")
	segmentos := strings.Split(strings.Trim(resto, "/"), "/")
	if len(segmentos) == 0 || segmentos[0] == "" {
		h.handleServiceResponse(w, r, nil, apperror.NewValidationError("Informe a lista: /v1/opcoes/{cardapio|bebidas}."), http.StatusOK)
		return
	}

	lista, err := parseLista(segmentos[0])
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	// /v1/opcoes/{lista}/{value}
	if len(segmentos) == 2 {
		if r.Method != http.MethodDelete {
			http.Error(w, "Método não permitido", http.StatusMethodNotAllowed)
			return
		}
		removida, err := h.Service.RemoverOpcao(ctx, lista, segmentos[1])
		if err == nil && !removida {
			err = apperror.NewNotFoundError(fmt.Sprintf("Opção %s não existe na lista %s.", segmentos[1], lista))
		}
		h.handleServiceResponse(w, r, nil, err, http.StatusNoContent)
		return
	}

	switch r.Method {
	case http.MethodGet:
		opcoes, err := h.Service.ListarOpcoes(ctx, lista)
		h.handleServiceResponse(w, r, opcoes, err, http.StatusOK)

	case http.MethodPost:
		var nova domain.Opcao
		if err := json.NewDecoder(r.Body).Decode(&nova); err != nil {
			h.handleServiceResponse(w, r, nil, apperror.NewValidationError("Payload JSON inválido."), http.StatusCreated)
			return
		}
		criada, err := h.Service.AdicionarOpcao(ctx, lista, nova)
		h.handleServiceResponse(w, r, criada, err, http.StatusCreated)

	default:
		http.Error(w, "Método não permitido", http.StatusMethodNotAllowed)
	}
}
