package financeiro

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"gobuffet/internal/domain"
	apperror "gobuffet/internal/errors"
	"gobuffet/internal/pkg/datas"
	"gobuffet/internal/pkg/logger"
)

// FinanceiroService define o contrato das agregações financeiras.
type FinanceiroService interface {
	ResumoComTendencia(ctx context.Context, mes string) (domain.ResumoComTendencia, error)
	Evolucao(ctx context.Context, mesFinal string) (domain.Evolucao, error)
}

// Handler agrupa os métodos de Handler do painel financeiro.
type Handler struct {
	Service FinanceiroService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc FinanceiroService, log logger.Logger) *Handler {
	return &Handler{Service: svc, Logger: log}
}

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
			json.NewEncoder(w).Encode(data)
		}
		return
	}

	status, category, message := apperror.MapToHTTPStatus(err)

	if status >= 500 {
		h.Logger.Error(fmt.Sprintf("Erro de Servidor: %s", category), err)
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

// mesOuAtual resolve o parâmetro ?mes=, caindo no mês corrente quando ausente.
func mesOuAtual(r *http.Request) string {
	if mes := r.URL.Query().Get("mes"); mes != "" {
		return mes
	}
	return datas.MesAtual(time.Now())
}

// ResumoHandler lida com GET /v1/financeiro/resumo?mes=YYYY-MM.
// @Summary Resumo financeiro do mês com tendências
// @Description Receita realizada, custos variáveis e fixos, impostos, lucro líquido, margem e a variação sobre o mês anterior. Sem ?mes usa o mês corrente.
// @Tags financeiro
// @Produce json
// @Param mes query string false "Mês de referência (YYYY-MM)"
// @Success 200 {object} domain.ResumoComTendencia
// @Failure 400 {object} domain.ErrorResponse "Mês em formato inválido"
// @Router /financeiro/resumo [get]
func (h *Handler) ResumoHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Método não permitido", http.StatusMethodNotAllowed)
		return
	}

	resumo, err := h.Service.ResumoComTendencia(r.Context(), mesOuAtual(r))
	h.handleServiceResponse(w, r, resumo, err, http.StatusOK)
}

// EvolucaoHandler lida com GET /v1/financeiro/evolucao?mes=YYYY-MM.
// @Summary Séries de evolução dos últimos meses
// @Description Série de receita × lucro e série de custos fixos × variáveis, terminando no mês informado (ou no corrente).
// @Tags financeiro
// @Produce json
// @Param mes query string false "Mês final da janela (YYYY-MM)"
// @Success 200 {object} domain.Evolucao
// @Failure 400 {object} domain.ErrorResponse "Mês em formato inválido"
// @Router /financeiro/evolucao [get]
func (h *Handler) EvolucaoHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Método não permitido", http.StatusMethodNotAllowed)
		return
	}

	evolucao, err := h.Service.Evolucao(r.Context(), mesOuAtual(r))
	h.handleServiceResponse(w, r, evolucao, err, http.StatusOK)
}
