package equipeservice_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"gobuffet/internal/domain"
	apperror "gobuffet/internal/errors"
	"gobuffet/internal/pkg/logger"
	"gobuffet/internal/service/equipeservice"
)

// MockEquipeRepository é uma implementação mock da interface EquipeRepository.
type MockEquipeRepository struct {
	mock.Mock
}

func (m *MockEquipeRepository) Criar(ctx context.Context, form domain.MembroEquipeForm) (domain.MembroEquipe, error) {
	args := m.Called(ctx, form)
	return args.Get(0).(domain.MembroEquipe), args.Error(1)
}

func (m *MockEquipeRepository) Todos(ctx context.Context) ([]domain.MembroEquipe, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.MembroEquipe), args.Error(1)
}

func (m *MockEquipeRepository) Ativos(ctx context.Context) ([]domain.MembroEquipe, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.MembroEquipe), args.Error(1)
}

func (m *MockEquipeRepository) Pendentes(ctx context.Context) ([]domain.MembroEquipe, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.MembroEquipe), args.Error(1)
}

func (m *MockEquipeRepository) PorID(ctx context.Context, id string) (domain.MembroEquipe, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.MembroEquipe), args.Error(1)
}

func (m *MockEquipeRepository) Aprovar(ctx context.Context, id, funcaoPrincipal string, funcoesSecundarias []string) (domain.MembroEquipe, error) {
	args := m.Called(ctx, id, funcaoPrincipal, funcoesSecundarias)
	return args.Get(0).(domain.MembroEquipe), args.Error(1)
}

func (m *MockEquipeRepository) Atualizar(ctx context.Context, id string, patch domain.MembroEquipePatch) (domain.MembroEquipe, error) {
	args := m.Called(ctx, id, patch)
	return args.Get(0).(domain.MembroEquipe), args.Error(1)
}

func (m *MockEquipeRepository) Remover(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// TestCadastrarMembro_Success testa o cadastro de um membro pendente.
func TestCadastrarMembro_Success(t *testing.T) {
	mockRepo := new(MockEquipeRepository)
	svc := equipeservice.NewService(mockRepo, logger.NewLogger("error"))

	form := domain.MembroEquipeForm{Nome: "Carla", Telefone: "11999990000", Email: "carla@example.com"}
	esperado := domain.MembroEquipe{ID: uuid.New().String(), Nome: "Carla", Status: domain.MembroPendente}

	mockRepo.On("Criar", mock.Anything, form).Return(esperado, nil)

	membro, err := svc.CadastrarMembro(context.Background(), form)

	assert.NoError(t, err)
	assert.Equal(t, domain.MembroPendente, membro.Status)
	mockRepo.AssertExpectations(t)
}

// TestCadastrarMembro_Fail_NomeVazio testa a rejeição de cadastro sem nome.
func TestCadastrarMembro_Fail_NomeVazio(t *testing.T) {
	mockRepo := new(MockEquipeRepository)
	svc := equipeservice.NewService(mockRepo, logger.NewLogger("error"))

	_, err := svc.CadastrarMembro(context.Background(), domain.MembroEquipeForm{Nome: "   "})

	assert.Error(t, err)
	mockRepo.AssertNotCalled(t, "Criar", mock.Anything, mock.Anything)
}

// TestAprovarMembro_Success testa a aprovação de um pendente com funções válidas.
func TestAprovarMembro_Success(t *testing.T) {
	mockRepo := new(MockEquipeRepository)
	svc := equipeservice.NewService(mockRepo, logger.NewLogger("error"))

	id := uuid.New().String()
	pendente := domain.MembroEquipe{ID: id, Nome: "Diego", Status: domain.MembroPendente}
	aprovado := domain.MembroEquipe{
		ID:                 id,
		Nome:               "Diego",
		Status:             domain.MembroAtivo,
		FuncaoPrincipal:    "garcom",
		FuncoesSecundarias: []string{"copeiro"},
	}

	mockRepo.On("PorID", mock.Anything, id).Return(pendente, nil)
	mockRepo.On("Aprovar", mock.Anything, id, "garcom", []string{"copeiro"}).Return(aprovado, nil)

	membro, err := svc.AprovarMembro(context.Background(), id, "garcom", []string{"copeiro"})

	assert.NoError(t, err)
	assert.Equal(t, domain.MembroAtivo, membro.Status)
	assert.Equal(t, "garcom", membro.FuncaoPrincipal)
	mockRepo.AssertExpectations(t)
}

// TestAprovarMembro_Fail_FuncaoRepetida testa a regra: a função principal
// não pode constar nas secundárias.
func TestAprovarMembro_Fail_FuncaoRepetida(t *testing.T) {
	mockRepo := new(MockEquipeRepository)
	svc := equipeservice.NewService(mockRepo, logger.NewLogger("error"))

	_, err := svc.AprovarMembro(context.Background(), uuid.New().String(), "garcom", []string{"copeiro", "garcom"})

	assert.Error(t, err)
	mockRepo.AssertNotCalled(t, "Aprovar", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// TestAprovarMembro_Fail_JaAtivo testa o conflito ao aprovar quem já foi aprovado.
func TestAprovarMembro_Fail_JaAtivo(t *testing.T) {
	mockRepo := new(MockEquipeRepository)
	svc := equipeservice.NewService(mockRepo, logger.NewLogger("error"))

	id := uuid.New().String()
	mockRepo.On("PorID", mock.Anything, id).Return(domain.MembroEquipe{ID: id, Status: domain.MembroAtivo}, nil)

	_, err := svc.AprovarMembro(context.Background(), id, "garcom", nil)

	assert.Error(t, err)
	appErr, ok := err.(apperror.AppError)
	assert.True(t, ok)
	assert.Equal(t, "CONFLICT", appErr.Category())
	mockRepo.AssertNotCalled(t, "Aprovar", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// TestBuscarMembroPorID_Fail_IDInvalido testa a validação de formato do ID.
func TestBuscarMembroPorID_Fail_IDInvalido(t *testing.T) {
	mockRepo := new(MockEquipeRepository)
	svc := equipeservice.NewService(mockRepo, logger.NewLogger("error"))

	_, err := svc.BuscarMembroPorID(context.Background(), "nao-e-uuid")

	assert.Error(t, err)
	mockRepo.AssertNotCalled(t, "PorID", mock.Anything, mock.Anything)
}
