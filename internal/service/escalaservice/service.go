package escalaservice

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"gobuffet/internal/domain"
	apperror "gobuffet/internal/errors"
	"gobuffet/internal/pkg/logger"
)

// EscalaRepository define o contrato da persistência de escalas.
type EscalaRepository interface {
	Criar(ctx context.Context, form domain.EscalaEventoForm) (domain.EscalaEvento, error)
	Todas(ctx context.Context) ([]domain.EscalaEvento, error)
	PorEvento(ctx context.Context, eventoID string) (domain.EscalaEvento, bool, error)
	Remover(ctx context.Context, id string) (bool, error)
}

// Service é a camada de lógica de negócio das escalas de evento.
type Service struct {
	repo   EscalaRepository
	logger logger.Logger
}

// NewService cria e retorna uma nova instância do Serviço de Escalas.
func NewService(repo EscalaRepository, log logger.Logger) *Service {
	return &Service{repo: repo, logger: log}
}

// DefinirEscala grava a escala do evento. Uma escala anterior do mesmo
// evento é substituída por inteiro — a última gravação vence.
func (s *Service) DefinirEscala(ctx context.Context, form domain.EscalaEventoForm) (domain.EscalaEvento, error) {
	if strings.TrimSpace(form.EventoID) == "" {
		return domain.EscalaEvento{}, apperror.NewValidationError("A escala deve estar vinculada a um evento.")
	}
	for _, m := range form.Membros {
		if strings.TrimSpace(m.MembroID) == "" || strings.TrimSpace(m.Funcao) == "" {
			return domain.EscalaEvento{}, apperror.NewValidationError("Cada membro escalado precisa de membroId e função.")
		}
	}
	for _, e := range form.Extras {
		if strings.TrimSpace(e.Nome) == "" || strings.TrimSpace(e.Funcao) == "" {
			return domain.EscalaEvento{}, apperror.NewValidationError("Cada extra escalado precisa de nome e função.")
		}
	}

	escala, err := s.repo.Criar(ctx, form)
	if err != nil {
		s.logger.Error("Falha ao gravar escala no repositório.", err)
		return domain.EscalaEvento{}, err
	}

	s.logger.Info("Escala do evento definida.", map[string]interface{}{
		"id":       escala.ID,
		"eventoId": escala.EventoID,
		"membros":  len(escala.Membros),
		"extras":   len(escala.Extras),
	})
	return escala, nil
}

// ListarEscalas retorna todas as escalas.
func (s *Service) ListarEscalas(ctx context.Context) ([]domain.EscalaEvento, error) {
	return s.repo.Todas(ctx)
}

// EscalaDoEvento retorna a escala do evento, se definida.
func (s *Service) EscalaDoEvento(ctx context.Context, eventoID string) (domain.EscalaEvento, error) {
	escala, existe, err := s.repo.PorEvento(ctx, eventoID)
	if err != nil {
		return domain.EscalaEvento{}, err
	}
	if !existe {
		return domain.EscalaEvento{}, apperror.NewNotFoundError("O evento ainda não tem escala definida.")
	}
	return escala, nil
}

// RemoverEscala exclui a escala. O booleano indica se algo foi removido.
func (s *Service) RemoverEscala(ctx context.Context, id string) (bool, error) {
	if _, err := uuid.Parse(id); err != nil {
		return false, apperror.NewValidationError("O ID da escala deve ser um UUID válido.")
	}
	return s.repo.Remover(ctx, id)
}
