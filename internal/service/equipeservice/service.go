package equipeservice

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"gobuffet/internal/domain"
	apperror "gobuffet/internal/errors"
	"gobuffet/internal/pkg/logger"
)

// EquipeRepository define o contrato da persistência de membros da equipe.
type EquipeRepository interface {
	Criar(ctx context.Context, form domain.MembroEquipeForm) (domain.MembroEquipe, error)
	Todos(ctx context.Context) ([]domain.MembroEquipe, error)
	Ativos(ctx context.Context) ([]domain.MembroEquipe, error)
	Pendentes(ctx context.Context) ([]domain.MembroEquipe, error)
	PorID(ctx context.Context, id string) (domain.MembroEquipe, error)
	Aprovar(ctx context.Context, id, funcaoPrincipal string, funcoesSecundarias []string) (domain.MembroEquipe, error)
	Atualizar(ctx context.Context, id string, patch domain.MembroEquipePatch) (domain.MembroEquipe, error)
	Remover(ctx context.Context, id string) (bool, error)
}

// Service é a camada de lógica de negócio da equipe de trabalho.
type Service struct {
	repo   EquipeRepository
	logger logger.Logger
}

// NewService cria e retorna uma nova instância do Serviço de Equipe.
func NewService(repo EquipeRepository, log logger.Logger) *Service {
	return &Service{repo: repo, logger: log}
}

// CadastrarMembro registra um novo membro, que entra como pendente até a
// aprovação do administrador.
func (s *Service) CadastrarMembro(ctx context.Context, form domain.MembroEquipeForm) (domain.MembroEquipe, error) {
	if strings.TrimSpace(form.Nome) == "" {
		return domain.MembroEquipe{}, apperror.NewValidationError("O nome do membro não pode ser vazio.")
	}

	membro, err := s.repo.Criar(ctx, form)
	if err != nil {
		s.logger.Error("Falha ao cadastrar membro no repositório.", err)
		return domain.MembroEquipe{}, err
	}
	s.logger.Info("Membro cadastrado como pendente.", map[string]interface{}{"id": membro.ID, "nome": membro.Nome})
	return membro, nil
}

// ListarMembros retorna todos os membros.
func (s *Service) ListarMembros(ctx context.Context) ([]domain.MembroEquipe, error) {
	return s.repo.Todos(ctx)
}

// ListarAtivos retorna os membros já aprovados.
func (s *Service) ListarAtivos(ctx context.Context) ([]domain.MembroEquipe, error) {
	return s.repo.Ativos(ctx)
}

// ListarPendentes retorna os membros aguardando aprovação.
func (s *Service) ListarPendentes(ctx context.Context) ([]domain.MembroEquipe, error) {
	return s.repo.Pendentes(ctx)
}

// BuscarMembroPorID busca um membro pelo ID após validação de formato.
func (s *Service) BuscarMembroPorID(ctx context.Context, id string) (domain.MembroEquipe, error) {
	if _, err := uuid.Parse(id); err != nil {
		return domain.MembroEquipe{}, apperror.NewValidationError("O ID do membro deve ser um UUID válido.")
	}
	return s.repo.PorID(ctx, id)
}

// AprovarMembro aprova um membro pendente definindo as suas funções.
// Regra: a função principal não pode constar nas funções secundárias.
func (s *Service) AprovarMembro(ctx context.Context, id, funcaoPrincipal string, funcoesSecundarias []string) (domain.MembroEquipe, error) {
	if _, err := uuid.Parse(id); err != nil {
		return domain.MembroEquipe{}, apperror.NewValidationError("O ID do membro deve ser um UUID válido.")
	}
	if strings.TrimSpace(funcaoPrincipal) == "" {
		return domain.MembroEquipe{}, apperror.NewValidationError("A função principal do membro não pode ser vazia.")
	}
	for _, f := range funcoesSecundarias {
		if f == funcaoPrincipal {
			return domain.MembroEquipe{}, apperror.NewValidationError("A função principal não pode constar nas funções secundárias.")
		}
	}

	membro, err := s.repo.PorID(ctx, id)
	if err != nil {
		return domain.MembroEquipe{}, err
	}
	if membro.Status == domain.MembroAtivo {
		return domain.MembroEquipe{}, apperror.NewConflictError("O membro já foi aprovado.")
	}

	aprovado, err := s.repo.Aprovar(ctx, id, funcaoPrincipal, funcoesSecundarias)
	if err != nil {
		s.logger.Error("Falha ao aprovar membro no repositório.", err)
		return domain.MembroEquipe{}, err
	}

	s.logger.Info("Membro aprovado.", map[string]interface{}{"id": aprovado.ID, "funcao": funcaoPrincipal})
	return aprovado, nil
}

// AtualizarMembro aplica uma atualização parcial sobre o membro.
func (s *Service) AtualizarMembro(ctx context.Context, id string, patch domain.MembroEquipePatch) (domain.MembroEquipe, error) {
	if _, err := uuid.Parse(id); err != nil {
		return domain.MembroEquipe{}, apperror.NewValidationError("O ID do membro deve ser um UUID válido.")
	}
	return s.repo.Atualizar(ctx, id, patch)
}

// RemoverMembro exclui o membro. O booleano indica se algo foi removido.
func (s *Service) RemoverMembro(ctx context.Context, id string) (bool, error) {
	if _, err := uuid.Parse(id); err != nil {
		return false, apperror.NewValidationError("O ID do membro deve ser um UUID válido.")
	}
	return s.repo.Remover(ctx, id)
}
