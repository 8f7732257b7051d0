package usuarioservice_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"gobuffet/internal/domain"
	apperror "gobuffet/internal/errors"
	"gobuffet/internal/pkg/logger"
	"gobuffet/internal/pkg/token"
	"gobuffet/internal/service/usuarioservice"
)

// MockUsuarioRepository é uma implementação mock da interface UsuarioRepository.
type MockUsuarioRepository struct {
	mock.Mock
}

func (m *MockUsuarioRepository) UsuarioLogado(ctx context.Context) (domain.Usuario, bool, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.Usuario), args.Bool(1), args.Error(2)
}

func (m *MockUsuarioRepository) SalvarUsuarioLogado(ctx context.Context, usuario domain.Usuario) error {
	args := m.Called(ctx, usuario)
	return args.Error(0)
}

func (m *MockUsuarioRepository) Pendentes(ctx context.Context) ([]domain.UsuarioPendente, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.UsuarioPendente), args.Error(1)
}

func (m *MockUsuarioRepository) PendentePorID(ctx context.Context, id string) (domain.UsuarioPendente, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.UsuarioPendente), args.Error(1)
}

func (m *MockUsuarioRepository) CriarPendente(ctx context.Context, nome, email, senhaHash string) (domain.UsuarioPendente, error) {
	args := m.Called(ctx, nome, email, senhaHash)
	return args.Get(0).(domain.UsuarioPendente), args.Error(1)
}

func (m *MockUsuarioRepository) RemoverPendente(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockTokenService é uma implementação mock da interface TokenService.
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) GenerateToken(userID string, userRole string) (string, error) {
	args := m.Called(userID, userRole)
	return args.String(0), args.Error(1)
}

func (m *MockTokenService) ValidateToken(tokenString string) (*token.CustomClaims, error) {
	args := m.Called(tokenString)
	return args.Get(0).(*token.CustomClaims), args.Error(1)
}

// TestGarantirAdmin_JaExiste testa que a semeadura é idempotente: com
// usuário gravado nada é reescrito.
func TestGarantirAdmin_JaExiste(t *testing.T) {
	mockRepo := new(MockUsuarioRepository)
	svc := usuarioservice.NewService(mockRepo, new(MockTokenService), logger.NewLogger("error"))

	existente := domain.Usuario{ID: uuid.New().String(), Email: "dono@buffet.com", Role: "admin"}
	mockRepo.On("UsuarioLogado", mock.Anything).Return(existente, true, nil)

	usuario, err := svc.GarantirAdmin(context.Background(), "Outro", "outro@buffet.com", "senha123")

	assert.NoError(t, err)
	assert.Equal(t, existente.Email, usuario.Email)
	mockRepo.AssertNotCalled(t, "SalvarUsuarioLogado", mock.Anything, mock.Anything)
}

// TestGarantirAdmin_Semeia testa a criação do administrador com senha hasheada.
func TestGarantirAdmin_Semeia(t *testing.T) {
	mockRepo := new(MockUsuarioRepository)
	svc := usuarioservice.NewService(mockRepo, new(MockTokenService), logger.NewLogger("error"))

	mockRepo.On("UsuarioLogado", mock.Anything).Return(domain.Usuario{}, false, nil)
	mockRepo.On("SalvarUsuarioLogado", mock.Anything, mock.MatchedBy(func(u domain.Usuario) bool {
		if u.Role != "admin" || u.Email != "dono@buffet.com" {
			return false
		}
		// A senha nunca é gravada em claro.
		return bcrypt.CompareHashAndPassword([]byte(u.SenhaHash), []byte("senha123")) == nil
	})).Return(nil)

	_, err := svc.GarantirAdmin(context.Background(), "Dono", "dono@buffet.com", "senha123")

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

// TestLogin_Success testa o login com emissão de token e hash limpo na resposta.
func TestLogin_Success(t *testing.T) {
	mockRepo := new(MockUsuarioRepository)
	mockTokens := new(MockTokenService)
	svc := usuarioservice.NewService(mockRepo, mockTokens, logger.NewLogger("error"))

	hash, err := bcrypt.GenerateFromPassword([]byte("senha123"), bcrypt.MinCost)
	assert.NoError(t, err)

	id := uuid.New().String()
	mockRepo.On("UsuarioLogado", mock.Anything).Return(domain.Usuario{
		ID: id, Email: "dono@buffet.com", Role: "admin", SenhaHash: string(hash),
	}, true, nil)
	mockTokens.On("GenerateToken", id, "admin").Return("jwt-assinado", nil)

	tokenString, usuario, err := svc.Login(context.Background(), domain.Credenciais{
		Email: "dono@buffet.com",
		Senha: "senha123",
	})

	assert.NoError(t, err)
	assert.Equal(t, "jwt-assinado", tokenString)
	assert.Empty(t, usuario.SenhaHash)
	mockTokens.AssertExpectations(t)
}

// TestLogin_Fail_SenhaIncorreta testa que senha errada e email inexistente
// respondem com a mesma mensagem.
func TestLogin_Fail_SenhaIncorreta(t *testing.T) {
	mockRepo := new(MockUsuarioRepository)
	mockTokens := new(MockTokenService)
	svc := usuarioservice.NewService(mockRepo, mockTokens, logger.NewLogger("error"))

	hash, err := bcrypt.GenerateFromPassword([]byte("senha123"), bcrypt.MinCost)
	assert.NoError(t, err)

	mockRepo.On("UsuarioLogado", mock.Anything).Return(domain.Usuario{
		ID: uuid.New().String(), Email: "dono@buffet.com", SenhaHash: string(hash),
	}, true, nil)

	_, _, errSenha := svc.Login(context.Background(), domain.Credenciais{Email: "dono@buffet.com", Senha: "errada"})
	_, _, errEmail := svc.Login(context.Background(), domain.Credenciais{Email: "outro@buffet.com", Senha: "senha123"})

	assert.Error(t, errSenha)
	assert.Error(t, errEmail)
	assert.Equal(t, errSenha.Error(), errEmail.Error())
	mockTokens.AssertNotCalled(t, "GenerateToken", mock.Anything, mock.Anything)
}

// TestRegistrar_Fail_EmailDuplicado testa o conflito com solicitação já existente.
func TestRegistrar_Fail_EmailDuplicado(t *testing.T) {
	mockRepo := new(MockUsuarioRepository)
	svc := usuarioservice.NewService(mockRepo, new(MockTokenService), logger.NewLogger("error"))

	mockRepo.On("Pendentes", mock.Anything).Return([]domain.UsuarioPendente{
		{ID: uuid.New().String(), Email: "novo@buffet.com"},
	}, nil)

	_, err := svc.Registrar(context.Background(), domain.RegistroUsuario{
		Nome:  "Novo",
		Email: "novo@buffet.com",
		Senha: "senha123",
	})

	assert.Error(t, err)
	appErr, ok := err.(apperror.AppError)
	assert.True(t, ok)
	assert.Equal(t, "CONFLICT", appErr.Category())
	mockRepo.AssertNotCalled(t, "CriarPendente", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// TestAprovar_PromoveESubstituiSingleton testa a promoção do pendente a
// usuário ativo e a limpeza da fila.
func TestAprovar_PromoveESubstituiSingleton(t *testing.T) {
	mockRepo := new(MockUsuarioRepository)
	svc := usuarioservice.NewService(mockRepo, new(MockTokenService), logger.NewLogger("error"))

	id := uuid.New().String()
	pendente := domain.UsuarioPendente{ID: id, Nome: "Novo", Email: "novo@buffet.com", SenhaHash: "$2a$hash"}

	mockRepo.On("PendentePorID", mock.Anything, id).Return(pendente, nil)
	mockRepo.On("SalvarUsuarioLogado", mock.Anything, mock.MatchedBy(func(u domain.Usuario) bool {
		return u.ID == id && u.Role == "admin" && u.SenhaHash == "$2a$hash"
	})).Return(nil)
	mockRepo.On("RemoverPendente", mock.Anything, id).Return(true, nil)

	usuario, err := svc.Aprovar(context.Background(), id)

	assert.NoError(t, err)
	assert.Equal(t, "novo@buffet.com", usuario.Email)
	assert.Empty(t, usuario.SenhaHash)
	mockRepo.AssertExpectations(t)
}
