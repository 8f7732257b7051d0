package avaliacaoservice

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"gobuffet/internal/domain"
	apperror "gobuffet/internal/errors"
	"gobuffet/internal/pkg/logger"
)

// Regras fixas de bonificação da diária. Não são configuráveis em runtime:
// são constantes de negócio do buffet.
const (
	BonusQualidadeExcelente = 30.0
	BonusPontualidade       = 30.0
)

// AvaliacaoRepository define o contrato da persistência de avaliações.
type AvaliacaoRepository interface {
	Criar(ctx context.Context, avaliacao domain.Avaliacao) (domain.Avaliacao, error)
	Todas(ctx context.Context) ([]domain.Avaliacao, error)
	PorEvento(ctx context.Context, eventoID string) ([]domain.Avaliacao, error)
	MembroAvaliado(ctx context.Context, membroID, eventoID string) (bool, error)
	Remover(ctx context.Context, id string) (bool, error)
}

// Service é a camada de lógica de negócio das avaliações de desempenho.
type Service struct {
	repo   AvaliacaoRepository
	logger logger.Logger
}

// NewService cria e retorna uma nova instância do Serviço de Avaliações.
func NewService(repo AvaliacaoRepository, log logger.Logger) *Service {
	return &Service{repo: repo, logger: log}
}

// CalcularBonus aplica as regras fixas de bonificação: +30 quando a
// qualidade é excelente, +30 quando o membro chegou no horário ou adiantado.
func CalcularBonus(qualidade domain.Qualidade, pontualidade domain.Pontualidade) float64 {
	bonus := 0.0
	if qualidade == domain.QualidadeExcelente {
		bonus += BonusQualidadeExcelente
	}
	if pontualidade == domain.PontualidadeNoHorario || pontualidade == domain.PontualidadeAdiantado {
		bonus += BonusPontualidade
	}
	return bonus
}

// Avaliar grava a avaliação do membro no evento, calculando o valor a
// pagar (base da diária + bônus). Uma avaliação anterior do mesmo par
// (membro, evento) é substituída — a última gravação vence.
func (s *Service) Avaliar(ctx context.Context, form domain.AvaliacaoForm) (domain.Avaliacao, error) {
	if strings.TrimSpace(form.EventoID) == "" || strings.TrimSpace(form.MembroID) == "" {
		return domain.Avaliacao{}, apperror.NewValidationError("A avaliação precisa de eventoId e membroId.")
	}
	if !qualidadeValida(form.Qualidade) {
		return domain.Avaliacao{}, apperror.NewValidationError("Qualidade inválida: use ruim, razoavel, bom ou excelente.")
	}
	if !pontualidadeValida(form.Pontualidade) {
		return domain.Avaliacao{}, apperror.NewValidationError("Pontualidade inválida: use atrasado, no-horario ou adiantado.")
	}
	if form.ValorBase < 0 {
		return domain.Avaliacao{}, apperror.NewValidationError("O valor base da diária não pode ser negativo.")
	}

	avaliacao := domain.Avaliacao{
		EventoID:     form.EventoID,
		MembroID:     form.MembroID,
		Qualidade:    form.Qualidade,
		Pontualidade: form.Pontualidade,
		ValorPago:    form.ValorBase + CalcularBonus(form.Qualidade, form.Pontualidade),
	}

	gravada, err := s.repo.Criar(ctx, avaliacao)
	if err != nil {
		s.logger.Error("Falha ao gravar avaliação no repositório.", err)
		return domain.Avaliacao{}, err
	}

	s.logger.Info("Avaliação registrada.", map[string]interface{}{
		"id":        gravada.ID,
		"eventoId":  gravada.EventoID,
		"membroId":  gravada.MembroID,
		"valorPago": gravada.ValorPago,
	})
	return gravada, nil
}

// ListarAvaliacoes retorna todas as avaliações.
func (s *Service) ListarAvaliacoes(ctx context.Context) ([]domain.Avaliacao, error) {
	return s.repo.Todas(ctx)
}

// AvaliacoesDoEvento retorna as avaliações do evento.
func (s *Service) AvaliacoesDoEvento(ctx context.Context, eventoID string) ([]domain.Avaliacao, error) {
	return s.repo.PorEvento(ctx, eventoID)
}

// MembroAvaliado indica se o membro já foi avaliado no evento.
func (s *Service) MembroAvaliado(ctx context.Context, membroID, eventoID string) (bool, error) {
	return s.repo.MembroAvaliado(ctx, membroID, eventoID)
}

// RemoverAvaliacao exclui a avaliação. O booleano indica se algo foi removido.
func (s *Service) RemoverAvaliacao(ctx context.Context, id string) (bool, error) {
	if _, err := uuid.Parse(id); err != nil {
		return false, apperror.NewValidationError("O ID da avaliação deve ser um UUID válido.")
	}
	return s.repo.Remover(ctx, id)
}

func qualidadeValida(q domain.Qualidade) bool {
	switch q {
	case domain.QualidadeRuim, domain.QualidadeRazoavel, domain.QualidadeBoa, domain.QualidadeExcelente:
		return true
	}
	return false
}

func pontualidadeValida(p domain.Pontualidade) bool {
	switch p {
	case domain.PontualidadeAtrasado, domain.PontualidadeNoHorario, domain.PontualidadeAdiantado:
		return true
	}
	return false
}
