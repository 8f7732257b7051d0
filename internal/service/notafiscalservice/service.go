package notafiscalservice

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"gobuffet/internal/domain"
	apperror "gobuffet/internal/errors"
	"gobuffet/internal/pkg/logger"
)

// NotaFiscalRepository define o contrato da persistência de notas fiscais.
type NotaFiscalRepository interface {
	Criar(ctx context.Context, form domain.NotaFiscalForm) (domain.NotaFiscal, error)
	Todas(ctx context.Context) ([]domain.NotaFiscal, error)
	PorID(ctx context.Context, id string) (domain.NotaFiscal, error)
	PorEvento(ctx context.Context, eventoID string) ([]domain.NotaFiscal, error)
	Atualizar(ctx context.Context, id string, patch domain.NotaFiscalPatch) (domain.NotaFiscal, error)
	Remover(ctx context.Context, id string) (bool, error)
}

// Service é a camada de lógica de negócio das notas fiscais.
type Service struct {
	repo   NotaFiscalRepository
	logger logger.Logger
}

// NewService cria e retorna uma nova instância do Serviço de Notas Fiscais.
func NewService(repo NotaFiscalRepository, log logger.Logger) *Service {
	return &Service{repo: repo, logger: log}
}

// StatusDe deriva a classificação de exibição de uma nota, em ordem de
// prioridade: nota não emitida > aguardando emissão > imposto pendente >
// emitida e paga. O resultado não é persistido.
func StatusDe(nota domain.NotaFiscal) domain.StatusNota {
	switch {
	case nota.SituacaoNota == domain.NotaNaoEmitida:
		return domain.StatusNotaNaoEmitida
	case nota.SituacaoNota == domain.NotaAguardando:
		return domain.StatusAguardandoEmissao
	case nota.SituacaoImposto == domain.ImpostoPendente:
		return domain.StatusImpostoPendente
	}
	return domain.StatusEmitidaPaga
}

// RegistrarNota grava a nota fiscal de um evento.
func (s *Service) RegistrarNota(ctx context.Context, form domain.NotaFiscalForm) (domain.NotaFiscalComStatus, error) {
	if strings.TrimSpace(form.EventoID) == "" {
		return domain.NotaFiscalComStatus{}, apperror.NewValidationError("A nota fiscal deve estar vinculada a um evento.")
	}
	if form.ValorTributavel < 0 || form.ValorImposto < 0 {
		return domain.NotaFiscalComStatus{}, apperror.NewValidationError("Valores da nota fiscal não podem ser negativos.")
	}

	nota, err := s.repo.Criar(ctx, form)
	if err != nil {
		s.logger.Error("Falha ao gravar nota fiscal no repositório.", err)
		return domain.NotaFiscalComStatus{}, err
	}

	s.logger.Info("Nota fiscal registrada.", map[string]interface{}{"id": nota.ID, "eventoId": nota.EventoID})
	return comStatus(nota), nil
}

// ListarNotas retorna todas as notas com o status derivado.
func (s *Service) ListarNotas(ctx context.Context) ([]domain.NotaFiscalComStatus, error) {
	notas, err := s.repo.Todas(ctx)
	if err != nil {
		return nil, err
	}

	resultado := make([]domain.NotaFiscalComStatus, 0, len(notas))
	for _, n := range notas {
		resultado = append(resultado, comStatus(n))
	}
	return resultado, nil
}

// NotasDoEvento retorna as notas do evento com o status derivado.
func (s *Service) NotasDoEvento(ctx context.Context, eventoID string) ([]domain.NotaFiscalComStatus, error) {
	notas, err := s.repo.PorEvento(ctx, eventoID)
	if err != nil {
		return nil, err
	}

	resultado := make([]domain.NotaFiscalComStatus, 0, len(notas))
	for _, n := range notas {
		resultado = append(resultado, comStatus(n))
	}
	return resultado, nil
}

// AtualizarNota aplica uma atualização parcial sobre a nota.
func (s *Service) AtualizarNota(ctx context.Context, id string, patch domain.NotaFiscalPatch) (domain.NotaFiscalComStatus, error) {
	if _, err := uuid.Parse(id); err != nil {
		return domain.NotaFiscalComStatus{}, apperror.NewValidationError("O ID da nota fiscal deve ser um UUID válido.")
	}
	if patch.ValorTributavel != nil && *patch.ValorTributavel < 0 {
		return domain.NotaFiscalComStatus{}, apperror.NewValidationError("Valores da nota fiscal não podem ser negativos.")
	}
	if patch.ValorImposto != nil && *patch.ValorImposto < 0 {
		return domain.NotaFiscalComStatus{}, apperror.NewValidationError("Valores da nota fiscal não podem ser negativos.")
	}

	nota, err := s.repo.Atualizar(ctx, id, patch)
	if err != nil {
		return domain.NotaFiscalComStatus{}, err
	}
	return comStatus(nota), nil
}

// RemoverNota exclui a nota fiscal. O booleano indica se algo foi removido.
func (s *Service) RemoverNota(ctx context.Context, id string) (bool, error) {
	if _, err := uuid.Parse(id); err != nil {
		return false, apperror.NewValidationError("O ID da nota fiscal deve ser um UUID válido.")
	}
	return s.repo.Remover(ctx, id)
}

func comStatus(nota domain.NotaFiscal) domain.NotaFiscalComStatus {
	return domain.NotaFiscalComStatus{NotaFiscal: nota, Status: StatusDe(nota)}
}
