package eventoservice

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"gobuffet/internal/domain"
	apperror "gobuffet/internal/errors"
	"gobuffet/internal/pkg/datas"
	"gobuffet/internal/pkg/logger"
)

// EventoRepository define o contrato que o Serviço de Eventos espera da
// camada de Persistência.
type EventoRepository interface {
	Criar(ctx context.Context, form domain.EventoForm) (domain.Evento, error)
	Todos(ctx context.Context) ([]domain.Evento, error)
	TodosOrdenados(ctx context.Context) ([]domain.Evento, error)
	PorID(ctx context.Context, id string) (domain.Evento, error)
	Atualizar(ctx context.Context, id string, patch domain.EventoPatch) (domain.Evento, error)
	Remover(ctx context.Context, id string) (bool, error)
}

// Service é a camada de lógica de negócio dos eventos.
type Service struct {
	repo   EventoRepository
	logger logger.Logger
}

// NewService cria e retorna uma nova instância do Serviço de Eventos.
func NewService(repo EventoRepository, log logger.Logger) *Service {
	return &Service{repo: repo, logger: log}
}

// CriarEvento cria um novo evento após validações de negócio.
func (s *Service) CriarEvento(ctx context.Context, form domain.EventoForm) (domain.Evento, error) {
	s.logger.Debug("Iniciando criação de evento no serviço.", map[string]interface{}{"motivo": form.Motivo, "data": form.Data})

	if err := validarForm(form); err != nil {
		s.logger.Warn("Falha na validação do evento.", map[string]interface{}{"erro": err.Error()})
		return domain.Evento{}, err
	}

	evento, err := s.repo.Criar(ctx, form)
	if err != nil {
		s.logger.Error("Falha ao criar evento no repositório.", err)
		return domain.Evento{}, err
	}

	s.logger.Info("Evento criado com sucesso.", map[string]interface{}{"id": evento.ID, "data": evento.Data})
	return evento, nil
}

// ListarEventos retorna todos os eventos em ordem cronológica.
func (s *Service) ListarEventos(ctx context.Context) ([]domain.Evento, error) {
	eventos, err := s.repo.TodosOrdenados(ctx)
	if err != nil {
		s.logger.Error("Falha ao listar eventos no repositório.", err)
		return nil, err
	}
	return eventos, nil
}

// BuscarEventoPorID busca um evento pelo ID após validação de formato.
func (s *Service) BuscarEventoPorID(ctx context.Context, id string) (domain.Evento, error) {
	if _, err := uuid.Parse(id); err != nil {
		return domain.Evento{}, apperror.NewValidationError("O ID do evento deve ser um UUID válido.")
	}
	return s.repo.PorID(ctx, id)
}

// AtualizarEvento aplica uma atualização parcial sobre o evento.
func (s *Service) AtualizarEvento(ctx context.Context, id string, patch domain.EventoPatch) (domain.Evento, error) {
	if _, err := uuid.Parse(id); err != nil {
		return domain.Evento{}, apperror.NewValidationError("O ID do evento deve ser um UUID válido.")
	}
	if patch.Valor != nil && *patch.Valor < 0 {
		return domain.Evento{}, apperror.NewValidationError("O valor do evento não pode ser negativo.")
	}
	if patch.Data != nil {
		if _, err := datas.ParseData(*patch.Data); err != nil {
			return domain.Evento{}, apperror.NewValidationError("A data do evento deve estar no formato YYYY-MM-DD.")
		}
	}

	evento, err := s.repo.Atualizar(ctx, id, patch)
	if err != nil {
		s.logger.Error("Falha ao atualizar evento no repositório.", err)
		return domain.Evento{}, err
	}

	s.logger.Info("Evento atualizado com sucesso.", map[string]interface{}{"id": evento.ID})
	return evento, nil
}

// RemoverEvento exclui o evento. O booleano indica se algo foi removido;
// custos, escala e nota vinculados não são excluídos em cascata.
func (s *Service) RemoverEvento(ctx context.Context, id string) (bool, error) {
	if _, err := uuid.Parse(id); err != nil {
		return false, apperror.NewValidationError("O ID do evento deve ser um UUID válido.")
	}

	removido, err := s.repo.Remover(ctx, id)
	if err != nil {
		s.logger.Error("Falha ao remover evento no repositório.", err)
		return false, err
	}
	if removido {
		s.logger.Info("Evento removido.", map[string]interface{}{"id": id})
	}
	return removido, nil
}

// validarForm aplica as validações de criação.
func validarForm(form domain.EventoForm) error {
	if strings.TrimSpace(form.Motivo) == "" {
		return apperror.NewValidationError("O motivo do evento não pode ser vazio.")
	}
	if _, err := datas.ParseData(form.Data); err != nil {
		return apperror.NewValidationError("A data do evento deve estar no formato YYYY-MM-DD.")
	}
	if form.Valor < 0 {
		return apperror.NewValidationError("O valor do evento não pode ser negativo.")
	}
	return nil
}
