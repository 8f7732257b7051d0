package notafiscalservice_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"gobuffet/internal/domain"
	"gobuffet/internal/pkg/logger"
	"gobuffet/internal/service/notafiscalservice"
)

// MockNotaFiscalRepository é uma implementação mock da interface NotaFiscalRepository.
type MockNotaFiscalRepository struct {
	mock.Mock
}

func (m *MockNotaFiscalRepository) Criar(ctx context.Context, form domain.NotaFiscalForm) (domain.NotaFiscal, error) {
	args := m.Called(ctx, form)
	return args.Get(0).(domain.NotaFiscal), args.Error(1)
}

func (m *MockNotaFiscalRepository) Todas(ctx context.Context) ([]domain.NotaFiscal, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.NotaFiscal), args.Error(1)
}

func (m *MockNotaFiscalRepository) PorID(ctx context.Context, id string) (domain.NotaFiscal, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.NotaFiscal), args.Error(1)
}

func (m *MockNotaFiscalRepository) PorEvento(ctx context.Context, eventoID string) ([]domain.NotaFiscal, error) {
	args := m.Called(ctx, eventoID)
	return args.Get(0).([]domain.NotaFiscal), args.Error(1)
}

func (m *MockNotaFiscalRepository) Atualizar(ctx context.Context, id string, patch domain.NotaFiscalPatch) (domain.NotaFiscal, error) {
	args := m.Called(ctx, id, patch)
	return args.Get(0).(domain.NotaFiscal), args.Error(1)
}

func (m *MockNotaFiscalRepository) Remover(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// TestStatusDe testa a derivação do status de exibição em ordem de prioridade.
func TestStatusDe(t *testing.T) {
	casos := []struct {
		nome     string
		nota     domain.NotaFiscal
		esperado domain.StatusNota
	}{
		{
			"nota não emitida tem prioridade máxima",
			domain.NotaFiscal{SituacaoNota: domain.NotaNaoEmitida, SituacaoImposto: domain.ImpostoPendente},
			domain.StatusNotaNaoEmitida,
		},
		{
			"aguardando emissão vem antes do imposto",
			domain.NotaFiscal{SituacaoNota: domain.NotaAguardando, SituacaoImposto: domain.ImpostoPendente},
			domain.StatusAguardandoEmissao,
		},
		{
			"emitida com imposto pendente",
			domain.NotaFiscal{SituacaoNota: domain.NotaEmitida, SituacaoImposto: domain.ImpostoPendente},
			domain.StatusImpostoPendente,
		},
		{
			"emitida e paga",
			domain.NotaFiscal{SituacaoNota: domain.NotaEmitida, SituacaoImposto: domain.ImpostoPago},
			domain.StatusEmitidaPaga,
		},
	}

	for _, caso := range casos {
		t.Run(caso.nome, func(t *testing.T) {
			assert.Equal(t, caso.esperado, notafiscalservice.StatusDe(caso.nota))
		})
	}
}

// TestListarNotas_AnexaStatus testa que a listagem devolve cada nota com o
// status derivado, sem persisti-lo.
func TestListarNotas_AnexaStatus(t *testing.T) {
	mockRepo := new(MockNotaFiscalRepository)
	svc := notafiscalservice.NewService(mockRepo, logger.NewLogger("error"))

	mockRepo.On("Todas", mock.Anything).Return([]domain.NotaFiscal{
		{ID: "n1", EventoID: "e1", SituacaoNota: domain.NotaEmitida, SituacaoImposto: domain.ImpostoPago},
		{ID: "n2", EventoID: "e2", SituacaoNota: domain.NotaNaoEmitida, SituacaoImposto: domain.ImpostoPago},
	}, nil)

	notas, err := svc.ListarNotas(context.Background())

	assert.NoError(t, err)
	assert.Len(t, notas, 2)
	assert.Equal(t, domain.StatusEmitidaPaga, notas[0].Status)
	assert.Equal(t, domain.StatusNotaNaoEmitida, notas[1].Status)
	mockRepo.AssertExpectations(t)
}

// TestRegistrarNota_Fail_SemEvento testa a exigência do vínculo com evento.
func TestRegistrarNota_Fail_SemEvento(t *testing.T) {
	mockRepo := new(MockNotaFiscalRepository)
	svc := notafiscalservice.NewService(mockRepo, logger.NewLogger("error"))

	_, err := svc.RegistrarNota(context.Background(), domain.NotaFiscalForm{EventoID: ""})

	assert.Error(t, err)
	mockRepo.AssertNotCalled(t, "Criar", mock.Anything, mock.Anything)
}

// TestRegistrarNota_Fail_ValoresNegativos testa a rejeição de valores negativos.
func TestRegistrarNota_Fail_ValoresNegativos(t *testing.T) {
	mockRepo := new(MockNotaFiscalRepository)
	svc := notafiscalservice.NewService(mockRepo, logger.NewLogger("error"))

	_, err := svc.RegistrarNota(context.Background(), domain.NotaFiscalForm{
		EventoID:     "e1",
		ValorImposto: -5,
	})

	assert.Error(t, err)
	mockRepo.AssertNotCalled(t, "Criar", mock.Anything, mock.Anything)
}
