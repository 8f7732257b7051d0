package usuariorepo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"gobuffet/internal/domain"
	apperror "gobuffet/internal/errors"
	"gobuffet/internal/pkg/logger"
	"gobuffet/internal/pkg/storage"
	"gobuffet/internal/repository/colecao"
)

// UsuarioRepository persiste o usuário administrador (singleton, chave
// buffet_usuario_logado — um objeto JSON, não um array) e a lista de
// solicitações de cadastro pendentes (buffet_usuarios_pendentes).
type UsuarioRepository struct {
	store     storage.Store
	pendentes *colecao.Colecao[domain.UsuarioPendente]
	logger    logger.Logger

	Agora  func() time.Time
	NovoID func() string
}

// NewUsuarioRepository cria o repositório sobre o Store injetado.
func NewUsuarioRepository(store storage.Store, log logger.Logger) *UsuarioRepository {
	return &UsuarioRepository{
		store:     store,
		pendentes: colecao.New(store, storage.ChaveUsuariosPendentes, func(u domain.UsuarioPendente) string { return u.ID }, log),
		logger:    log,
		Agora:     time.Now,
		NovoID:    uuid.NewString,
	}
}

// UsuarioLogado lê o registro singleton do administrador. O segundo retorno
// indica se há usuário gravado; JSON inválido degrada para ausente.
func (r *UsuarioRepository) UsuarioLogado(ctx context.Context) (domain.Usuario, bool, error) {
	dados, existe, err := r.store.Ler(ctx, storage.ChaveUsuarioLogado)
	if err != nil {
		return domain.Usuario{}, false, apperror.NewStorageError("falha ao ler usuário logado", err)
	}
	if !existe {
		return domain.Usuario{}, false, nil
	}

	var usuario domain.Usuario
	if err := json.Unmarshal(dados, &usuario); err != nil {
		r.logger.Warn("Registro de usuário logado com JSON inválido, tratando como ausente.", map[string]interface{}{
			"erro": err.Error(),
		})
		return domain.Usuario{}, false, nil
	}
	return usuario, true, nil
}

// SalvarUsuarioLogado substitui o registro singleton do administrador.
func (r *UsuarioRepository) SalvarUsuarioLogado(ctx context.Context, usuario domain.Usuario) error {
	dados, err := json.Marshal(usuario)
	if err != nil {
		return apperror.NewInternalError("falha ao serializar usuário", err)
	}
	if err := r.store.Gravar(ctx, storage.ChaveUsuarioLogado, dados); err != nil {
		return apperror.NewStorageError("falha ao gravar usuário logado", err)
	}
	return nil
}

// Pendentes retorna as solicitações de cadastro aguardando decisão.
func (r *UsuarioRepository) Pendentes(ctx context.Context) ([]domain.UsuarioPendente, error) {
	lista, err := r.pendentes.Todos(ctx)
	if err != nil {
		return nil, apperror.NewStorageError("falha ao ler usuários pendentes", err)
	}
	return lista, nil
}

// PendentePorID busca uma solicitação pelo identificador.
func (r *UsuarioRepository) PendentePorID(ctx context.Context, id string) (domain.UsuarioPendente, error) {
	pendente, encontrado, err := r.pendentes.PorID(ctx, id)
	if err != nil {
		return domain.UsuarioPendente{}, apperror.NewStorageError("falha ao ler usuários pendentes", err)
	}
	if !encontrado {
		return domain.UsuarioPendente{}, apperror.NewNotFoundError(fmt.Sprintf("Solicitação com ID %s não existe.", id))
	}
	return pendente, nil
}

// CriarPendente registra uma nova solicitação de cadastro. A senha já deve
// chegar como hash bcrypt (responsabilidade do serviço).
func (r *UsuarioRepository) CriarPendente(ctx context.Context, nome, email, senhaHash string) (domain.UsuarioPendente, error) {
	pendente := domain.UsuarioPendente{
		ID:        r.NovoID(),
		Nome:      nome,
		Email:     email,
		SenhaHash: senhaHash,
		CriadoEm:  r.Agora().Format(time.RFC3339),
	}

	if err := r.pendentes.Anexar(ctx, pendente); err != nil {
		return domain.UsuarioPendente{}, apperror.NewStorageError("falha ao gravar usuário pendente", err)
	}
	return pendente, nil
}

// RemoverPendente exclui a solicitação (aprovada ou rejeitada).
// Retorna false quando o ID não existia.
func (r *UsuarioRepository) RemoverPendente(ctx context.Context, id string) (bool, error) {
	removido, err := r.pendentes.Remover(ctx, id)
	if err != nil {
		return false, apperror.NewStorageError("falha ao remover usuário pendente", err)
	}
	return removido, nil
}
