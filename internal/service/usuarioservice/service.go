package usuarioservice

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"gobuffet/internal/domain"
	apperror "gobuffet/internal/errors"
	"gobuffet/internal/pkg/logger"
	"gobuffet/internal/pkg/token"
)

// UsuarioRepository define o contrato da persistência de usuários.
type UsuarioRepository interface {
	UsuarioLogado(ctx context.Context) (domain.Usuario, bool, error)
	SalvarUsuarioLogado(ctx context.Context, usuario domain.Usuario) error
	Pendentes(ctx context.Context) ([]domain.UsuarioPendente, error)
	PendentePorID(ctx context.Context, id string) (domain.UsuarioPendente, error)
	CriarPendente(ctx context.Context, nome, email, senhaHash string) (domain.UsuarioPendente, error)
	RemoverPendente(ctx context.Context, id string) (bool, error)
}

// TokenService é o contrato da camada de token (internal/pkg/token).
type TokenService interface {
	GenerateToken(userID string, userRole string) (string, error)
	ValidateToken(tokenString string) (*token.CustomClaims, error)
}

// Service é a camada de lógica de negócio de usuários e autenticação.
// O painel é single-tenant: existe um único usuário administrador ativo
// (registro singleton) e uma fila de solicitações de cadastro.
type Service struct {
	repo     UsuarioRepository
	tokenSvc TokenService
	logger   logger.Logger
}

// NewService cria o serviço de usuários, injetando repositório e tokens.
func NewService(repo UsuarioRepository, tokenSvc TokenService, log logger.Logger) *Service {
	return &Service{repo: repo, tokenSvc: tokenSvc, logger: log}
}

// GarantirAdmin semeia o administrador padrão quando ainda não existe
// usuário gravado. A senha inicial vem do chamador (main), nunca de código.
func (s *Service) GarantirAdmin(ctx context.Context, nome, email, senha string) (domain.Usuario, error) {
	if usuario, existe, err := s.repo.UsuarioLogado(ctx); err != nil {
		return domain.Usuario{}, err
	} else if existe {
		return usuario, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.DefaultCost)
	if err != nil {
		return domain.Usuario{}, apperror.NewInternalError("Falha ao gerar hash da senha.", err)
	}

	admin := domain.Usuario{
		ID:        uuid.NewString(),
		Nome:      nome,
		Email:     email,
		Role:      "admin",
		SenhaHash: string(hash),
	}
	if err := s.repo.SalvarUsuarioLogado(ctx, admin); err != nil {
		return domain.Usuario{}, err
	}

	s.logger.Info("Usuário administrador padrão semeado.", map[string]interface{}{"email": email})
	return admin, nil
}

// Registrar cria uma solicitação de cadastro pendente de aprovação.
// A senha é armazenada apenas como hash bcrypt.
func (s *Service) Registrar(ctx context.Context, registro domain.RegistroUsuario) (domain.UsuarioPendente, error) {
	if strings.TrimSpace(registro.Email) == "" || registro.Senha == "" {
		return domain.UsuarioPendente{}, apperror.NewValidationError("Email e senha são obrigatórios.")
	}

	pendentes, err := s.repo.Pendentes(ctx)
	if err != nil {
		return domain.UsuarioPendente{}, err
	}
	for _, p := range pendentes {
		if p.Email == registro.Email {
			return domain.UsuarioPendente{}, apperror.NewConflictError("Já existe uma solicitação para este email.")
		}
	}
	if usuario, existe, err := s.repo.UsuarioLogado(ctx); err != nil {
		return domain.UsuarioPendente{}, err
	} else if existe && usuario.Email == registro.Email {
		return domain.UsuarioPendente{}, apperror.NewConflictError("Este email já pertence ao usuário ativo.")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(registro.Senha), bcrypt.DefaultCost)
	if err != nil {
		return domain.UsuarioPendente{}, apperror.NewInternalError("Falha ao gerar hash da senha.", err)
	}

	pendente, err := s.repo.CriarPendente(ctx, registro.Nome, registro.Email, string(hash))
	if err != nil {
		s.logger.Error("Falha ao criar solicitação de cadastro.", err)
		return domain.UsuarioPendente{}, err
	}

	s.logger.Info("Solicitação de cadastro registrada.", map[string]interface{}{"id": pendente.ID, "email": pendente.Email})
	return pendente, nil
}

// Login autentica contra o usuário ativo e gera um JWT.
func (s *Service) Login(ctx context.Context, credenciais domain.Credenciais) (string, domain.Usuario, error) {
	if credenciais.Email == "" || credenciais.Senha == "" {
		return "", domain.Usuario{}, apperror.NewUnauthorizedError("Email e senha são obrigatórios.")
	}

	usuario, existe, err := s.repo.UsuarioLogado(ctx)
	if err != nil {
		return "", domain.Usuario{}, err
	}
	// Email inexistente e senha incorreta respondem igual, para não dar
	// dicas a invasores.
	if !existe || usuario.Email != credenciais.Email {
		return "", domain.Usuario{}, apperror.NewUnauthorizedError("Credenciais inválidas.")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usuario.SenhaHash), []byte(credenciais.Senha)); err != nil {
		return "", domain.Usuario{}, apperror.NewUnauthorizedError("Credenciais inválidas.")
	}

	tokenString, err := s.tokenSvc.GenerateToken(usuario.ID, usuario.Role)
	if err != nil {
		return "", domain.Usuario{}, apperror.NewInternalError("Falha ao gerar token de autenticação.", err)
	}

	usuario.SenhaHash = "" // nunca devolver o hash ao cliente
	return tokenString, usuario, nil
}

// Pendentes lista as solicitações aguardando decisão do administrador.
func (s *Service) ListarPendentes(ctx context.Context) ([]domain.UsuarioPendente, error) {
	pendentes, err := s.repo.Pendentes(ctx)
	if err != nil {
		return nil, err
	}
	for i := range pendentes {
		pendentes[i].SenhaHash = ""
	}
	return pendentes, nil
}

// Aprovar promove a solicitação a usuário ativo: o painel é single-tenant,
// então o registro singleton é substituído pelo usuário aprovado.
func (s *Service) Aprovar(ctx context.Context, id string) (domain.Usuario, error) {
	if _, err := uuid.Parse(id); err != nil {
		return domain.Usuario{}, apperror.NewValidationError("O ID da solicitação deve ser um UUID válido.")
	}

	pendente, err := s.repo.PendentePorID(ctx, id)
	if err != nil {
		return domain.Usuario{}, err
	}

	usuario := domain.Usuario{
		ID:        pendente.ID,
		Nome:      pendente.Nome,
		Email:     pendente.Email,
		Role:      "admin",
		SenhaHash: pendente.SenhaHash,
		CriadoEm:  pendente.CriadoEm,
	}
	if err := s.repo.SalvarUsuarioLogado(ctx, usuario); err != nil {
		return domain.Usuario{}, err
	}
	if _, err := s.repo.RemoverPendente(ctx, id); err != nil {
		return domain.Usuario{}, err
	}

	s.logger.Info("Solicitação aprovada, usuário promovido.", map[string]interface{}{"id": id, "email": usuario.Email})
	usuario.SenhaHash = ""
	return usuario, nil
}

// Rejeitar descarta a solicitação. O booleano indica se algo foi removido.
func (s *Service) Rejeitar(ctx context.Context, id string) (bool, error) {
	if _, err := uuid.Parse(id); err != nil {
		return false, apperror.NewValidationError("O ID da solicitação deve ser um UUID válido.")
	}

	removido, err := s.repo.RemoverPendente(ctx, id)
	if err != nil {
		return false, err
	}
	if removido {
		s.logger.Info("Solicitação de cadastro rejeitada.", map[string]interface{}{"id": id})
	}
	return removido, nil
}
