package equiperepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"gobuffet/internal/domain"
	apperror "gobuffet/internal/errors"
	"gobuffet/internal/pkg/logger"
	"gobuffet/internal/pkg/storage"
	"gobuffet/internal/repository/colecao"
)

// EquipeRepository persiste os membros da equipe (buffet_membros_equipe).
type EquipeRepository struct {
	colecao *colecao.Colecao[domain.MembroEquipe]
	logger  logger.Logger

	Agora  func() time.Time
	NovoID func() string
}

// NewEquipeRepository cria o repositório sobre o Store injetado.
func NewEquipeRepository(store storage.Store, log logger.Logger) *EquipeRepository {
	return &EquipeRepository{
		colecao: colecao.New(store, storage.ChaveMembrosEquipe, func(m domain.MembroEquipe) string { return m.ID }, log),
		logger:  log,
		Agora:   time.Now,
		NovoID:  uuid.NewString,
	}
}

// Criar cadastra um novo membro com status pendente.
func (r *EquipeRepository) Criar(ctx context.Context, form domain.MembroEquipeForm) (domain.MembroEquipe, error) {
	agora := r.Agora().Format(time.RFC3339)
	membro := domain.MembroEquipe{
		ID:                 r.NovoID(),
		Nome:               form.Nome,
		FuncoesSecundarias: []string{},
		Telefone:           form.Telefone,
		Email:              form.Email,
		Status:             domain.MembroPendente,
		CriadoEm:           agora,
		AtualizadoEm:       agora,
	}

	if err := r.colecao.Anexar(ctx, membro); err != nil {
		return domain.MembroEquipe{}, apperror.NewStorageError("falha ao gravar membro", err)
	}
	return membro, nil
}

// Todos retorna a coleção completa de membros.
func (r *EquipeRepository) Todos(ctx context.Context) ([]domain.MembroEquipe, error) {
	membros, err := r.colecao.Todos(ctx)
	if err != nil {
		return nil, apperror.NewStorageError("falha ao ler membros", err)
	}
	return membros, nil
}

// Ativos filtra os membros já aprovados.
func (r *EquipeRepository) Ativos(ctx context.Context) ([]domain.MembroEquipe, error) {
	membros, err := r.colecao.Filtrar(ctx, func(m domain.MembroEquipe) bool { return m.Status == domain.MembroAtivo })
	if err != nil {
		return nil, apperror.NewStorageError("falha ao ler membros", err)
	}
	return membros, nil
}

// Pendentes filtra os membros aguardando aprovação.
func (r *EquipeRepository) Pendentes(ctx context.Context) ([]domain.MembroEquipe, error) {
	membros, err := r.colecao.Filtrar(ctx, func(m domain.MembroEquipe) bool { return m.Status == domain.MembroPendente })
	if err != nil {
		return nil, apperror.NewStorageError("falha ao ler membros", err)
	}
	return membros, nil
}

// PorID busca um membro pelo identificador.
func (r *EquipeRepository) PorID(ctx context.Context, id string) (domain.MembroEquipe, error) {
	membro, encontrado, err := r.colecao.PorID(ctx, id)
	if err != nil {
		return domain.MembroEquipe{}, apperror.NewStorageError("falha ao ler membros", err)
	}
	if !encontrado {
		return domain.MembroEquipe{}, apperror.NewNotFoundError(fmt.Sprintf("Membro com ID %s não existe.", id))
	}
	return membro, nil
}

// Aprovar muda o status pendente -> ativo e define as funções do membro em
// uma única atualização persistida.
func (r *EquipeRepository) Aprovar(ctx context.Context, id, funcaoPrincipal string, funcoesSecundarias []string) (domain.MembroEquipe, error) {
	membro, err := r.PorID(ctx, id)
	if err != nil {
		return domain.MembroEquipe{}, err
	}

	if funcoesSecundarias == nil {
		funcoesSecundarias = []string{}
	}

	membro.Status = domain.MembroAtivo
	membro.FuncaoPrincipal = funcaoPrincipal
	membro.FuncoesSecundarias = funcoesSecundarias
	membro.AtualizadoEm = r.Agora().Format(time.RFC3339)

	encontrado, err := r.colecao.Substituir(ctx, membro)
	if err != nil {
		return domain.MembroEquipe{}, apperror.NewStorageError("falha ao gravar aprovação do membro", err)
	}
	if !encontrado {
		return domain.MembroEquipe{}, apperror.NewNotFoundError(fmt.Sprintf("Membro com ID %s não existe.", id))
	}
	return membro, nil
}

// Atualizar aplica um patch campo a campo sobre o membro existente.
func (r *EquipeRepository) Atualizar(ctx context.Context, id string, patch domain.MembroEquipePatch) (domain.MembroEquipe, error) {
	membro, err := r.PorID(ctx, id)
	if err != nil {
		return domain.MembroEquipe{}, err
	}

	if patch.Nome != nil {
		membro.Nome = *patch.Nome
	}
	if patch.FuncaoPrincipal != nil {
		membro.FuncaoPrincipal = *patch.FuncaoPrincipal
	}
	if patch.FuncoesSecundarias != nil {
		membro.FuncoesSecundarias = *patch.FuncoesSecundarias
	}
	if patch.Telefone != nil {
		membro.Telefone = *patch.Telefone
	}
	if patch.Email != nil {
		membro.Email = *patch.Email
	}
	if patch.Status != nil {
		membro.Status = *patch.Status
	}
	membro.AtualizadoEm = r.Agora().Format(time.RFC3339)

	encontrado, err := r.colecao.Substituir(ctx, membro)
	if err != nil {
		return domain.MembroEquipe{}, apperror.NewStorageError("falha ao gravar membro atualizado", err)
	}
	if !encontrado {
		return domain.MembroEquipe{}, apperror.NewNotFoundError(fmt.Sprintf("Membro com ID %s não existe.", id))
	}
	return membro, nil
}

// Remover exclui o membro. Retorna false quando o ID não existia.
func (r *EquipeRepository) Remover(ctx context.Context, id string) (bool, error) {
	removido, err := r.colecao.Remover(ctx, id)
	if err != nil {
		return false, apperror.NewStorageError("falha ao remover membro", err)
	}
	return removido, nil
}
