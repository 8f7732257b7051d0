package financeiroservice_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"gobuffet/internal/domain"
	"gobuffet/internal/pkg/logger"
	"gobuffet/internal/service/financeiroservice"
)

// MockEventoReader é uma implementação mock da interface EventoReader.
type MockEventoReader struct {
	mock.Mock
}

func (m *MockEventoReader) Todos(ctx context.Context) ([]domain.Evento, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Evento), args.Error(1)
}

// MockCustoReader é uma implementação mock da interface CustoReader.
type MockCustoReader struct {
	mock.Mock
}

func (m *MockCustoReader) Todos(ctx context.Context) ([]domain.Custo, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Custo), args.Error(1)
}

// MockCustoFixoReader é uma implementação mock da interface CustoFixoReader.
type MockCustoFixoReader struct {
	mock.Mock
}

func (m *MockCustoFixoReader) PorMesReferencia(ctx context.Context, mes string) ([]domain.CustoFixo, error) {
	args := m.Called(ctx, mes)
	return args.Get(0).([]domain.CustoFixo), args.Error(1)
}

// MockNotaFiscalReader é uma implementação mock da interface NotaFiscalReader.
type MockNotaFiscalReader struct {
	mock.Mock
}

func (m *MockNotaFiscalReader) Todas(ctx context.Context) ([]domain.NotaFiscal, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.NotaFiscal), args.Error(1)
}

// novoServico monta o serviço sobre os mocks com o relógio congelado em
// 2025-01-20 (meio do mês de referência dos cenários).
func novoServico(eventos *MockEventoReader, custos *MockCustoReader, fixos *MockCustoFixoReader, notas *MockNotaFiscalReader) *financeiroservice.Service {
	svc := financeiroservice.NewService(eventos, custos, fixos, notas, logger.NewLogger("error"))
	svc.Agora = func() time.Time { return time.Date(2025, 1, 20, 12, 0, 0, 0, time.Local) }
	return svc
}

// TestResumoMensal_AgregacaoCompleta testa o fechamento do mês: receita dos
// eventos executados, custos variáveis desses eventos, custos fixos do mês,
// impostos das notas e a margem resultante.
func TestResumoMensal_AgregacaoCompleta(t *testing.T) {
	mockEventos := new(MockEventoReader)
	mockCustos := new(MockCustoReader)
	mockFixos := new(MockCustoFixoReader)
	mockNotas := new(MockNotaFiscalReader)
	svc := novoServico(mockEventos, mockCustos, mockFixos, mockNotas)

	mockEventos.On("Todos", mock.Anything).Return([]domain.Evento{
		{ID: "e1", Data: "2025-01-15", Valor: 1000}, // executado
		{ID: "e2", Data: "2025-01-25", Valor: 800},  // futuro: fora da receita
		{ID: "e3", Data: "2024-12-20", Valor: 999},  // outro mês
	}, nil)
	mockCustos.On("Todos", mock.Anything).Return([]domain.Custo{
		{ID: "c1", EventoID: "e1", Valor: 200},
		{ID: "c2", EventoID: "e2", Valor: 50},       // evento não executado
		{ID: "c3", EventoID: "excluido", Valor: 70}, // órfão: junção não encontra
	}, nil)
	mockFixos.On("PorMesReferencia", mock.Anything, "2025-01").Return([]domain.CustoFixo{
		{ID: "f1", MesReferencia: "2025-01", Valor: 150},
	}, nil)
	mockNotas.On("Todas", mock.Anything).Return([]domain.NotaFiscal{
		{ID: "n1", EventoID: "e1", ValorImposto: 30},
		{ID: "n2", EventoID: "e3", ValorImposto: 10}, // evento de dezembro
	}, nil)

	resumo, err := svc.ResumoMensal(context.Background(), "2025-01")

	assert.NoError(t, err)
	assert.Equal(t, 1000.0, resumo.Receita)
	assert.Equal(t, 200.0, resumo.CustosVariaveis)
	assert.Equal(t, 150.0, resumo.CustosFixos)
	assert.Equal(t, 30.0, resumo.Impostos)
	assert.Equal(t, 620.0, resumo.LucroLiquido)
	assert.Equal(t, 62.0, resumo.MargemPercentual)
	mockEventos.AssertExpectations(t)
}

// TestResumoMensal_ReceitaZero testa a guarda da margem: sem receita a
// margem é 0, nunca NaN ou infinito.
func TestResumoMensal_ReceitaZero(t *testing.T) {
	mockEventos := new(MockEventoReader)
	mockCustos := new(MockCustoReader)
	mockFixos := new(MockCustoFixoReader)
	mockNotas := new(MockNotaFiscalReader)
	svc := novoServico(mockEventos, mockCustos, mockFixos, mockNotas)

	mockEventos.On("Todos", mock.Anything).Return([]domain.Evento{}, nil)
	mockCustos.On("Todos", mock.Anything).Return([]domain.Custo{}, nil)
	mockFixos.On("PorMesReferencia", mock.Anything, "2025-01").Return([]domain.CustoFixo{
		{ID: "f1", MesReferencia: "2025-01", Valor: 400},
	}, nil)
	mockNotas.On("Todas", mock.Anything).Return([]domain.NotaFiscal{}, nil)

	resumo, err := svc.ResumoMensal(context.Background(), "2025-01")

	assert.NoError(t, err)
	assert.Equal(t, 0.0, resumo.Receita)
	assert.Equal(t, -400.0, resumo.LucroLiquido)
	assert.Equal(t, 0.0, resumo.MargemPercentual)
}

// TestResumoMensal_MesInvalido testa a validação do formato YYYY-MM.
func TestResumoMensal_MesInvalido(t *testing.T) {
	svc := novoServico(new(MockEventoReader), new(MockCustoReader), new(MockCustoFixoReader), new(MockNotaFiscalReader))

	_, err := svc.ResumoMensal(context.Background(), "janeiro de 2025")

	assert.Error(t, err)
}

// TestResumoComTendencia_Percentual testa a variação percentual sobre o mês
// anterior quando há base de comparação.
func TestResumoComTendencia_Percentual(t *testing.T) {
	mockEventos := new(MockEventoReader)
	mockCustos := new(MockCustoReader)
	mockFixos := new(MockCustoFixoReader)
	mockNotas := new(MockNotaFiscalReader)
	svc := novoServico(mockEventos, mockCustos, mockFixos, mockNotas)

	mockEventos.On("Todos", mock.Anything).Return([]domain.Evento{
		{ID: "e1", Data: "2025-01-15", Valor: 1000},
		{ID: "e2", Data: "2024-12-20", Valor: 500},
	}, nil)
	mockCustos.On("Todos", mock.Anything).Return([]domain.Custo{}, nil)
	mockFixos.On("PorMesReferencia", mock.Anything, mock.Anything).Return([]domain.CustoFixo{}, nil)
	mockNotas.On("Todas", mock.Anything).Return([]domain.NotaFiscal{}, nil)

	resultado, err := svc.ResumoComTendencia(context.Background(), "2025-01")

	assert.NoError(t, err)
	assert.Equal(t, "2024-12", resultado.Anterior.Mes)
	assert.Equal(t, 500.0, resultado.Anterior.Receita)
	assert.True(t, resultado.TendenciaReceita.Aplicavel)
	assert.Equal(t, 100.0, resultado.TendenciaReceita.Percentual)
	assert.True(t, resultado.TendenciaReceita.Positiva)
}

// TestResumoComTendencia_BaseZero testa a sentinela de tendência: mês
// anterior sem movimento não tem percentual definido.
func TestResumoComTendencia_BaseZero(t *testing.T) {
	mockEventos := new(MockEventoReader)
	mockCustos := new(MockCustoReader)
	mockFixos := new(MockCustoFixoReader)
	mockNotas := new(MockNotaFiscalReader)
	svc := novoServico(mockEventos, mockCustos, mockFixos, mockNotas)

	mockEventos.On("Todos", mock.Anything).Return([]domain.Evento{
		{ID: "e1", Data: "2025-01-15", Valor: 1000},
	}, nil)
	mockCustos.On("Todos", mock.Anything).Return([]domain.Custo{}, nil)
	mockFixos.On("PorMesReferencia", mock.Anything, mock.Anything).Return([]domain.CustoFixo{}, nil)
	mockNotas.On("Todas", mock.Anything).Return([]domain.NotaFiscal{}, nil)

	resultado, err := svc.ResumoComTendencia(context.Background(), "2025-01")

	assert.NoError(t, err)
	assert.False(t, resultado.TendenciaReceita.Aplicavel)
	assert.Equal(t, 0.0, resultado.TendenciaReceita.Percentual)
	assert.True(t, resultado.TendenciaReceita.Positiva) // houve receita onde não havia nada
	assert.False(t, resultado.TendenciaCustos.Aplicavel)
	assert.False(t, resultado.TendenciaCustos.Positiva)
}

// TestEvolucao_JanelaComViradaDeAno testa a série dos últimos 6 meses em
// ordem cronológica, atravessando a virada de ano.
func TestEvolucao_JanelaComViradaDeAno(t *testing.T) {
	mockEventos := new(MockEventoReader)
	mockCustos := new(MockCustoReader)
	mockFixos := new(MockCustoFixoReader)
	mockNotas := new(MockNotaFiscalReader)
	svc := novoServico(mockEventos, mockCustos, mockFixos, mockNotas)

	mockEventos.On("Todos", mock.Anything).Return([]domain.Evento{
		{ID: "e1", Data: "2024-11-10", Valor: 700},
		{ID: "e2", Data: "2025-01-15", Valor: 1000},
	}, nil)
	mockCustos.On("Todos", mock.Anything).Return([]domain.Custo{
		{ID: "c1", EventoID: "e1", Valor: 100},
	}, nil)
	mockFixos.On("PorMesReferencia", mock.Anything, "2024-11").Return([]domain.CustoFixo{
		{ID: "f1", MesReferencia: "2024-11", Valor: 50},
	}, nil)
	mockFixos.On("PorMesReferencia", mock.Anything, mock.Anything).Return([]domain.CustoFixo{}, nil)
	mockNotas.On("Todas", mock.Anything).Return([]domain.NotaFiscal{}, nil)

	evolucao, err := svc.Evolucao(context.Background(), "2025-01")

	assert.NoError(t, err)
	assert.Len(t, evolucao.Receitas, financeiroservice.MesesEvolucao)
	assert.Len(t, evolucao.Custos, financeiroservice.MesesEvolucao)

	meses := make([]string, 0, len(evolucao.Receitas))
	for _, p := range evolucao.Receitas {
		meses = append(meses, p.Mes)
	}
	assert.Equal(t, []string{"2024-08", "2024-09", "2024-10", "2024-11", "2024-12", "2025-01"}, meses)

	// Novembro: receita 700, custo variável 100, fixo 50 -> lucro 550.
	assert.Equal(t, 700.0, evolucao.Receitas[3].Receita)
	assert.Equal(t, 550.0, evolucao.Receitas[3].LucroLiquido)
	assert.Equal(t, 100.0, evolucao.Custos[3].CustosVariaveis)
	assert.Equal(t, 50.0, evolucao.Custos[3].CustosFixos)

	// Janeiro fecha a janela.
	assert.Equal(t, 1000.0, evolucao.Receitas[5].Receita)
}
