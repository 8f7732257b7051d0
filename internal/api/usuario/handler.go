package usuario

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

// UsuarioService define o contrato das operações de registro, login e aprovação.
type UsuarioService interface {
	Registrar(ctx context.Context, registro domain.RegistroUsuario) (domain.UsuarioPendente, error)
	Login(ctx context.Context, credenciais domain.Credenciais) (string, domain.Usuario, error)
	ListarPendentes(ctx context.Context) ([]domain.UsuarioPendente, error)
	Aprovar(ctx context.Context, id string) (domain.Usuario, error)
	Rejeitar(ctx context.Context, id string) (bool, error)
}

// Handler agrupa os métodos de Handler de autenticação.
type Handler struct {
	Service UsuarioService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc UsuarioService, log logger.Logger) *Handler {
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
		h.Logger.Error("Erro interno no serviço de usuários:", err)
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

// RegistrarHandler lida com POST /v1/auth/registrar.
// @Summary Solicita cadastro de um novo usuário
// @Description Cria uma solicitação pendente; o acesso só é liberado após aprovação.
// @Tags auth
// @Accept json
// @Produce json
// @Param registro body domain.RegistroUsuario true "Nome, email e senha"
// @Success 201 {object} domain.UsuarioPendente "Solicitação registrada (sem o hash da senha)"
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Failure 409 {object} domain.ErrorResponse "Email já cadastrado ou aguardando aprovação"
// @Router /auth/registrar [post]
func (h *Handler) RegistrarHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Método não permitido", http.StatusMethodNotAllowed)
		return
	}

	var registro domain.RegistroUsuario
	if err := json.NewDecoder(r.Body).Decode(&registro); err != nil {
		h.handleServiceResponse(w, r, nil, apperror.NewValidationError("Payload JSON inválido."), http.StatusCreated)
		return
	}

	pendente, err := h.Service.Registrar(r.Context(), registro)
	h.handleServiceResponse(w, r, pendente, err, http.StatusCreated)
}

// LoginHandler lida com POST /v1/auth/login.
// @Summary Autentica o usuário e retorna um JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param credenciais body domain.Credenciais true "Email e senha"
// @Success 200 {object} map[string]interface{} "Token JWT e dados do usuário"
// @Failure 401 {object} domain.ErrorResponse "Credenciais inválidas"
// @Router /auth/login [post]
func (h *Handler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Método não permitido", http.StatusMethodNotAllowed)
		return
	}

	var credenciais domain.Credenciais
	if err := json.NewDecoder(r.Body).Decode(&credenciais); err != nil {
		h.handleServiceResponse(w, r, nil, apperror.NewValidationError("Payload JSON inválido."), http.StatusOK)
		return
	}

	token, usuario, err := h.Service.Login(r.Context(), credenciais)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	response := map[string]interface{}{
		"token":   token,
		"usuario": usuario,
	}
	h.handleServiceResponse(w, r, response, nil, http.StatusOK)
}

// PendentesHandler lida com /v1/auth/pendentes e subrotas:
// GET /v1/auth/pendentes, POST /v1/auth/pendentes/{id}/aprovar,
// DELETE /v1/auth/pendentes/{id} (rejeição).
func (h *Handler) PendentesHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	resto := strings.TrimPrefix(r.URL.Path, "/v1/auth/pendentes")
	resto = strings.Trim(resto, "/")

	if resto == "" {
		if r.Method != http.MethodGet {
			http.Error(w, "Método não permitido", http.StatusMethodNotAllowed)
			return
		}
		pendentes, err := h.Service.ListarPendentes(ctx)
		h.handleServiceResponse(w, r, pendentes, err, http.StatusOK)
		return
	}

	segmentos := strings.Split(resto, "/")

	// POST /v1/auth/pendentes/{id}/aprovar
	if len(segmentos) == 2 && segmentos[1] == "aprovar" {
		if r.Method != http.MethodPost {
			http.Error(w, "Método não permitido", http.StatusMethodNotAllowed)
			return
		}
		usuario, err := h.Service.Aprovar(ctx, segmentos[0])
		h.handleServiceResponse(w, r, usuario, err, http.StatusOK)
		return
	}

	// DELETE /v1/auth/pendentes/{id}
	if len(segmentos) == 1 {
		if r.Method != http.MethodDelete {
			http.Error(w, "Método não permitido", http.StatusMethodNotAllowed)
			return
		}
		rejeitado, err := h.Service.Rejeitar(ctx, segmentos[0])
		if err == nil && !rejeitado {
			err = apperror.NewNotFoundError(fmt.Sprintf("Solicitação com ID %s não existe.", segmentos[0]))
		}
		h.handleServiceResponse(w, r, nil, err, http.StatusNoContent)
		return
	}

	h.handleServiceResponse(w, r, nil, apperror.NewValidationError("Formato de URL inválido."), http.StatusOK)
}
