package escalarepo

import (
	"context"
	"time"

	"github.com/google/uuid"

	"gobuffet/internal/domain"
	apperror "gobuffet/internal/errors"
	"gobuffet/internal/pkg/logger"
	"gobuffet/internal/pkg/storage"
	"gobuffet/internal/repository/colecao"
)

// EscalaRepository persiste as escalas de evento (buffet_escalas_eventos).
type EscalaRepository struct {
	colecao *colecao.Colecao[domain.EscalaEvento]
	logger  logger.Logger

	Agora  func() time.Time
	NovoID func() string
}

// NewEscalaRepository cria o repositório sobre o Store injetado.
func NewEscalaRepository(store storage.Store, log logger.Logger) *EscalaRepository {
	return &EscalaRepository{
		colecao: colecao.New(store, storage.ChaveEscalasEventos, func(e domain.EscalaEvento) string { return e.ID }, log),
		logger:  log,
		Agora:   time.Now,
		NovoID:  uuid.NewString,
	}
}

// Criar grava a escala do evento. Invariante: no máximo uma escala por
// evento — qualquer escala anterior do mesmo eventoId é descartada antes do
// anexo (substituição em caso de conflito, não merge).
func (r *EscalaRepository) Criar(ctx context.Context, form domain.EscalaEventoForm) (domain.EscalaEvento, error) {
	escalas, err := r.colecao.Todos(ctx)
	if err != nil {
		return domain.EscalaEvento{}, apperror.NewStorageError("falha ao ler escalas", err)
	}

	restantes := make([]domain.EscalaEvento, 0, len(escalas))
	for _, e := range escalas {
		if e.EventoID != form.EventoID {
			restantes = append(restantes, e)
		}
	}

	agora := r.Agora().Format(time.RFC3339)
	membros := form.Membros
	if membros == nil {
		membros = []domain.MembroEscalado{}
	}
	extras := form.Extras
	if extras == nil {
		extras = []domain.ExtraEscalado{}
	}

	escala := domain.EscalaEvento{
		ID:           r.NovoID(),
		EventoID:     form.EventoID,
		Membros:      membros,
		Extras:       extras,
		CriadoEm:     agora,
		AtualizadoEm: agora,
	}

	if err := r.colecao.Salvar(ctx, append(restantes, escala)); err != nil {
		return domain.EscalaEvento{}, apperror.NewStorageError("falha ao gravar escala", err)
	}
	return escala, nil
}

// Todas retorna a coleção completa de escalas.
func (r *EscalaRepository) Todas(ctx context.Context) ([]domain.EscalaEvento, error) {
	escalas, err := r.colecao.Todos(ctx)
	if err != nil {
		return nil, apperror.NewStorageError("falha ao ler escalas", err)
	}
	return escalas, nil
}

// PorEvento retorna a escala do evento, se houver.
func (r *EscalaRepository) PorEvento(ctx context.Context, eventoID string) (domain.EscalaEvento, bool, error) {
	escalas, err := r.colecao.Filtrar(ctx, func(e domain.EscalaEvento) bool { return e.EventoID == eventoID })
	if err != nil {
		return domain.EscalaEvento{}, false, apperror.NewStorageError("falha ao ler escalas", err)
	}
	if len(escalas) == 0 {
		return domain.EscalaEvento{}, false, nil
	}
	return escalas[0], true, nil
}

// Remover exclui a escala. Retorna false quando o ID não existia.
func (r *EscalaRepository) Remover(ctx context.Context, id string) (bool, error) {
	removido, err := r.colecao.Remover(ctx, id)
	if err != nil {
		return false, apperror.NewStorageError("falha ao remover escala", err)
	}
	return removido, nil
}
