package avaliacaoservice_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"gobuffet/internal/domain"
	"gobuffet/internal/pkg/logger"
	"gobuffet/internal/service/avaliacaoservice"
)

// MockAvaliacaoRepository é uma implementação mock da interface AvaliacaoRepository.
type MockAvaliacaoRepository struct {
	mock.Mock
}

func (m *MockAvaliacaoRepository) Criar(ctx context.Context, avaliacao domain.Avaliacao) (domain.Avaliacao, error) {
	args := m.Called(ctx, avaliacao)
	return args.Get(0).(domain.Avaliacao), args.Error(1)
}

func (m *MockAvaliacaoRepository) Todas(ctx context.Context) ([]domain.Avaliacao, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Avaliacao), args.Error(1)
}

func (m *MockAvaliacaoRepository) PorEvento(ctx context.Context, eventoID string) ([]domain.Avaliacao, error) {
	args := m.Called(ctx, eventoID)
	return args.Get(0).([]domain.Avaliacao), args.Error(1)
}

func (m *MockAvaliacaoRepository) MembroAvaliado(ctx context.Context, membroID, eventoID string) (bool, error) {
	args := m.Called(ctx, membroID, eventoID)
	return args.Bool(0), args.Error(1)
}

func (m *MockAvaliacaoRepository) Remover(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// TestCalcularBonus testa as regras fixas de bonificação da diária.
func TestCalcularBonus(t *testing.T) {
	casos := []struct {
		nome         string
		qualidade    domain.Qualidade
		pontualidade domain.Pontualidade
		esperado     float64
	}{
		{"excelente e adiantado", domain.QualidadeExcelente, domain.PontualidadeAdiantado, 60},
		{"excelente e no horário", domain.QualidadeExcelente, domain.PontualidadeNoHorario, 60},
		{"excelente mas atrasado", domain.QualidadeExcelente, domain.PontualidadeAtrasado, 30},
		{"bom e no horário", domain.QualidadeBoa, domain.PontualidadeNoHorario, 30},
		{"bom mas atrasado", domain.QualidadeBoa, domain.PontualidadeAtrasado, 0},
		{"ruim e atrasado", domain.QualidadeRuim, domain.PontualidadeAtrasado, 0},
	}

	for _, caso := range casos {
		t.Run(caso.nome, func(t *testing.T) {
			assert.Equal(t, caso.esperado, avaliacaoservice.CalcularBonus(caso.qualidade, caso.pontualidade))
		})
	}
}

// TestAvaliar_CalculaValorPago testa o total a pagar: base da diária + bônus.
func TestAvaliar_CalculaValorPago(t *testing.T) {
	mockRepo := new(MockAvaliacaoRepository)
	svc := avaliacaoservice.NewService(mockRepo, logger.NewLogger("error"))

	esperada := domain.Avaliacao{
		EventoID:     "evento-1",
		MembroID:     "membro-1",
		Qualidade:    domain.QualidadeExcelente,
		Pontualidade: domain.PontualidadeAdiantado,
		ValorPago:    160,
	}
	mockRepo.On("Criar", mock.Anything, esperada).Return(esperada, nil)

	avaliacao, err := svc.Avaliar(context.Background(), domain.AvaliacaoForm{
		EventoID:     "evento-1",
		MembroID:     "membro-1",
		Qualidade:    domain.QualidadeExcelente,
		Pontualidade: domain.PontualidadeAdiantado,
		ValorBase:    100,
	})

	assert.NoError(t, err)
	assert.Equal(t, 160.0, avaliacao.ValorPago)
	mockRepo.AssertExpectations(t)
}

// TestAvaliar_SemBonus testa a diária sem nenhum bônus.
func TestAvaliar_SemBonus(t *testing.T) {
	mockRepo := new(MockAvaliacaoRepository)
	svc := avaliacaoservice.NewService(mockRepo, logger.NewLogger("error"))

	esperada := domain.Avaliacao{
		EventoID:     "evento-1",
		MembroID:     "membro-1",
		Qualidade:    domain.QualidadeBoa,
		Pontualidade: domain.PontualidadeAtrasado,
		ValorPago:    100,
	}
	mockRepo.On("Criar", mock.Anything, esperada).Return(esperada, nil)

	avaliacao, err := svc.Avaliar(context.Background(), domain.AvaliacaoForm{
		EventoID:     "evento-1",
		MembroID:     "membro-1",
		Qualidade:    domain.QualidadeBoa,
		Pontualidade: domain.PontualidadeAtrasado,
		ValorBase:    100,
	})

	assert.NoError(t, err)
	assert.Equal(t, 100.0, avaliacao.ValorPago)
	mockRepo.AssertExpectations(t)
}

// TestAvaliar_Fail_EnumInvalido testa a rejeição de qualidade/pontualidade desconhecida.
func TestAvaliar_Fail_EnumInvalido(t *testing.T) {
	mockRepo := new(MockAvaliacaoRepository)
	svc := avaliacaoservice.NewService(mockRepo, logger.NewLogger("error"))

	_, err := svc.Avaliar(context.Background(), domain.AvaliacaoForm{
		EventoID:     "evento-1",
		MembroID:     "membro-1",
		Qualidade:    "otimo",
		Pontualidade: domain.PontualidadeNoHorario,
	})
	assert.Error(t, err)

	_, err = svc.Avaliar(context.Background(), domain.AvaliacaoForm{
		EventoID:     "evento-1",
		MembroID:     "membro-1",
		Qualidade:    domain.QualidadeBoa,
		Pontualidade: "pontual",
	})
	assert.Error(t, err)

	mockRepo.AssertNotCalled(t, "Criar", mock.Anything, mock.Anything)
}

// TestAvaliar_Fail_ValorBaseNegativo testa a rejeição de diária negativa.
func TestAvaliar_Fail_ValorBaseNegativo(t *testing.T) {
	mockRepo := new(MockAvaliacaoRepository)
	svc := avaliacaoservice.NewService(mockRepo, logger.NewLogger("error"))

	_, err := svc.Avaliar(context.Background(), domain.AvaliacaoForm{
		EventoID:     "evento-1",
		MembroID:     "membro-1",
		Qualidade:    domain.QualidadeBoa,
		Pontualidade: domain.PontualidadeNoHorario,
		ValorBase:    -10,
	})

	assert.Error(t, err)
	mockRepo.AssertNotCalled(t, "Criar", mock.Anything, mock.Anything)
}
