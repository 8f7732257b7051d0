package opcaoservice

import (
	"context"
	"strings"

	"gobuffet/internal/domain"
	apperror "gobuffet/internal/errors"
	"gobuffet/internal/pkg/logger"
)

// OpcaoRepository define o contrato da persistência dos catálogos de opções.
type OpcaoRepository interface {
	Todas(ctx context.Context, lista domain.ListaOpcoes) ([]domain.Opcao, error)
	Adicionar(ctx context.Context, lista domain.ListaOpcoes, opcao domain.Opcao) (domain.Opcao, error)
	Remover(ctx context.Context, lista domain.ListaOpcoes, value string) (bool, error)
}

// Service é a camada de lógica de negócio dos catálogos de cardápio e bebidas.
type Service struct {
	repo   OpcaoRepository
	logger logger.Logger
}

// NewService cria e retorna uma nova instância do Serviço de Opções.
func NewService(repo OpcaoRepository, log logger.Logger) *Service {
	return &Service{repo: repo, logger: log}
}

// ListarOpcoes retorna o catálogo da lista (semeado no primeiro acesso).
func (s *Service) ListarOpcoes(ctx context.Context, lista domain.ListaOpcoes) ([]domain.Opcao, error) {
	return s.repo.Todas(ctx, lista)
}

// AdicionarOpcao inclui uma opção no catálogo da lista.
func (s *Service) AdicionarOpcao(ctx context.Context, lista domain.ListaOpcoes, opcao domain.Opcao) (domain.Opcao, error) {
	if strings.TrimSpace(opcao.Value) == "" || strings.TrimSpace(opcao.Label) == "" {
		return domain.Opcao{}, apperror.NewValidationError("A opção precisa de value (slug) e label.")
	}

	criada, err := s.repo.Adicionar(ctx, lista, opcao)
	if err != nil {
		return domain.Opcao{}, err
	}
	s.logger.Info("Opção adicionada ao catálogo.", map[string]interface{}{"lista": string(lista), "value": criada.Value})
	return criada, nil
}

// RemoverOpcao exclui a opção do catálogo. O booleano indica remoção efetiva.
func (s *Service) RemoverOpcao(ctx context.Context, lista domain.ListaOpcoes, value string) (bool, error) {
	if strings.TrimSpace(value) == "" {
		return false, apperror.NewValidationError("Informe o value (slug) da opção.")
	}
	return s.repo.Remover(ctx, lista, value)
}
