package custoservice

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"gobuffet/internal/domain"
	apperror "gobuffet/internal/errors"
	"gobuffet/internal/pkg/datas"
	"gobuffet/internal/pkg/logger"
)

// CustoRepository define o contrato da persistência de custos variáveis.
type CustoRepository interface {
	Criar(ctx context.Context, form domain.CustoForm) (domain.Custo, error)
	Todos(ctx context.Context) ([]domain.Custo, error)
	PorEvento(ctx context.Context, eventoID string) ([]domain.Custo, error)
	TemCustosDoEvento(ctx context.Context, eventoID string) (bool, error)
	Atualizar(ctx context.Context, id string, patch domain.CustoPatch) (domain.Custo, error)
	Remover(ctx context.Context, id string) (bool, error)
}

// CustoFixoRepository define o contrato da persistência de custos fixos.
type CustoFixoRepository interface {
	Criar(ctx context.Context, form domain.CustoFixoForm) (domain.CustoFixo, error)
	Todos(ctx context.Context) ([]domain.CustoFixo, error)
	PorMesReferencia(ctx context.Context, mes string) ([]domain.CustoFixo, error)
	Atualizar(ctx context.Context, id string, patch domain.CustoFixoPatch) (domain.CustoFixo, error)
	Remover(ctx context.Context, id string) (bool, error)
}

// Service é a camada de lógica de negócio dos custos (variáveis e fixos).
type Service struct {
	custos CustoRepository
	fixos  CustoFixoRepository
	logger logger.Logger
}

// NewService cria o serviço de custos sobre os dois repositórios.
func NewService(custos CustoRepository, fixos CustoFixoRepository, log logger.Logger) *Service {
	return &Service{custos: custos, fixos: fixos, logger: log}
}

// --- Custos variáveis ---

// CriarCusto lança um custo variável vinculado a um evento.
// O eventoId não é verificado contra a coleção de eventos: a origem tolera
// linhas órfãs e as junções financeiras simplesmente as ignoram.
func (s *Service) CriarCusto(ctx context.Context, form domain.CustoForm) (domain.Custo, error) {
	if strings.TrimSpace(form.EventoID) == "" {
		return domain.Custo{}, apperror.NewValidationError("O custo deve estar vinculado a um evento.")
	}
	if strings.TrimSpace(form.Descricao) == "" {
		return domain.Custo{}, apperror.NewValidationError("A descrição do custo não pode ser vazia.")
	}
	if form.Valor < 0 {
		return domain.Custo{}, apperror.NewValidationError("O valor do custo não pode ser negativo.")
	}

	custo, err := s.custos.Criar(ctx, form)
	if err != nil {
		s.logger.Error("Falha ao criar custo no repositório.", err)
		return domain.Custo{}, err
	}
	s.logger.Info("Custo criado com sucesso.", map[string]interface{}{"id": custo.ID, "eventoId": custo.EventoID})
	return custo, nil
}

// ListarCustos retorna todos os custos variáveis.
func (s *Service) ListarCustos(ctx context.Context) ([]domain.Custo, error) {
	return s.custos.Todos(ctx)
}

// CustosDoEvento retorna os custos lançados para um evento.
func (s *Service) CustosDoEvento(ctx context.Context, eventoID string) ([]domain.Custo, error) {
	return s.custos.PorEvento(ctx, eventoID)
}

// EventoTemCustos indica se já existe custo lançado para o evento.
func (s *Service) EventoTemCustos(ctx context.Context, eventoID string) (bool, error) {
	return s.custos.TemCustosDoEvento(ctx, eventoID)
}

// AtualizarCusto aplica uma atualização parcial sobre o custo.
func (s *Service) AtualizarCusto(ctx context.Context, id string, patch domain.CustoPatch) (domain.Custo, error) {
	if _, err := uuid.Parse(id); err != nil {
		return domain.Custo{}, apperror.NewValidationError("O ID do custo deve ser um UUID válido.")
	}
	if patch.Valor != nil && *patch.Valor < 0 {
		return domain.Custo{}, apperror.NewValidationError("O valor do custo não pode ser negativo.")
	}
	return s.custos.Atualizar(ctx, id, patch)
}

// RemoverCusto exclui o custo. O booleano indica se algo foi removido.
func (s *Service) RemoverCusto(ctx context.Context, id string) (bool, error) {
	if _, err := uuid.Parse(id); err != nil {
		return false, apperror.NewValidationError("O ID do custo deve ser um UUID válido.")
	}
	return s.custos.Remover(ctx, id)
}

// --- Custos fixos ---

// CriarCustoFixo lança um custo fixo mensal.
func (s *Service) CriarCustoFixo(ctx context.Context, form domain.CustoFixoForm) (domain.CustoFixo, error) {
	if strings.TrimSpace(form.Descricao) == "" {
		return domain.CustoFixo{}, apperror.NewValidationError("A descrição do custo fixo não pode ser vazia.")
	}
	if _, err := datas.ParseMes(form.MesReferencia); err != nil {
		return domain.CustoFixo{}, apperror.NewValidationError("O mês de referência deve estar no formato YYYY-MM.")
	}
	if form.Valor < 0 {
		return domain.CustoFixo{}, apperror.NewValidationError("O valor do custo fixo não pode ser negativo.")
	}

	custo, err := s.fixos.Criar(ctx, form)
	if err != nil {
		s.logger.Error("Falha ao criar custo fixo no repositório.", err)
		return domain.CustoFixo{}, err
	}
	s.logger.Info("Custo fixo criado com sucesso.", map[string]interface{}{"id": custo.ID, "mes": custo.MesReferencia})
	return custo, nil
}

// ListarCustosFixos retorna todos os custos fixos.
func (s *Service) ListarCustosFixos(ctx context.Context) ([]domain.CustoFixo, error) {
	return s.fixos.Todos(ctx)
}

// CustosFixosDoMes filtra os custos fixos do mês de referência.
func (s *Service) CustosFixosDoMes(ctx context.Context, mes string) ([]domain.CustoFixo, error) {
	if _, err := datas.ParseMes(mes); err != nil {
		return nil, apperror.NewValidationError("O mês de referência deve estar no formato YYYY-MM.")
	}
	return s.fixos.PorMesReferencia(ctx, mes)
}

// AtualizarCustoFixo aplica uma atualização parcial sobre o custo fixo.
func (s *Service) AtualizarCustoFixo(ctx context.Context, id string, patch domain.CustoFixoPatch) (domain.CustoFixo, error) {
	if _, err := uuid.Parse(id); err != nil {
		return domain.CustoFixo{}, apperror.NewValidationError("O ID do custo fixo deve ser um UUID válido.")
	}
	if patch.Valor != nil && *patch.Valor < 0 {
		return domain.CustoFixo{}, apperror.NewValidationError("O valor do custo fixo não pode ser negativo.")
	}
	if patch.MesReferencia != nil {
		if _, err := datas.ParseMes(*patch.MesReferencia); err != nil {
			return domain.CustoFixo{}, apperror.NewValidationError("O mês de referência deve estar no formato YYYY-MM.")
		}
	}
	return s.fixos.Atualizar(ctx, id, patch)
}

// RemoverCustoFixo exclui o custo fixo. O booleano indica se algo foi removido.
func (s *Service) RemoverCustoFixo(ctx context.Context, id string) (bool, error) {
	if _, err := uuid.Parse(id); err != nil {
		return false, apperror.NewValidationError("O ID do custo fixo deve ser um UUID válido.")
	}
	return s.fixos.Remover(ctx, id)
}
