package avaliacaorepo

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

// AvaliacaoRepository persiste as avaliações de desempenho (buffet_avaliacoes).
type AvaliacaoRepository struct {
	colecao *colecao.Colecao[domain.Avaliacao]
	logger  logger.Logger

	Agora  func() time.Time
	NovoID func() string
}

// NewAvaliacaoRepository cria o repositório sobre o Store injetado.
func NewAvaliacaoRepository(store storage.Store, log logger.Logger) *AvaliacaoRepository {
	return &AvaliacaoRepository{
		colecao: colecao.New(store, storage.ChaveAvaliacoes, func(a domain.Avaliacao) string { return a.ID }, log),
		logger:  log,
		Agora:   time.Now,
		NovoID:  uuid.NewString,
	}
}

// Criar grava a avaliação já com o valor a pagar calculado pelo serviço.
// Invariante: no máximo uma avaliação por par (membroId, eventoId) —
// qualquer avaliação anterior do mesmo par é descartada antes do anexo.
func (r *AvaliacaoRepository) Criar(ctx context.Context, avaliacao domain.Avaliacao) (domain.Avaliacao, error) {
	avaliacoes, err := r.colecao.Todos(ctx)
	if err != nil {
		return domain.Avaliacao{}, apperror.NewStorageError("falha ao ler avaliações", err)
	}

	restantes := make([]domain.Avaliacao, 0, len(avaliacoes))
	for _, a := range avaliacoes {
		if a.MembroID != avaliacao.MembroID || a.EventoID != avaliacao.EventoID {
			restantes = append(restantes, a)
		}
	}

	agora := r.Agora().Format(time.RFC3339)
	avaliacao.ID = r.NovoID()
	avaliacao.CriadoEm = agora
	avaliacao.AtualizadoEm = agora

	if err := r.colecao.Salvar(ctx, append(restantes, avaliacao)); err != nil {
		return domain.Avaliacao{}, apperror.NewStorageError("falha ao gravar avaliação", err)
	}
	return avaliacao, nil
}

// Todas retorna a coleção completa de avaliações.
func (r *AvaliacaoRepository) Todas(ctx context.Context) ([]domain.Avaliacao, error) {
	avaliacoes, err := r.colecao.Todos(ctx)
	if err != nil {
		return nil, apperror.NewStorageError("falha ao ler avaliações", err)
	}
	return avaliacoes, nil
}

// PorEvento filtra as avaliações do evento informado.
func (r *AvaliacaoRepository) PorEvento(ctx context.Context, eventoID string) ([]domain.Avaliacao, error) {
	avaliacoes, err := r.colecao.Filtrar(ctx, func(a domain.Avaliacao) bool { return a.EventoID == eventoID })
	if err != nil {
		return nil, apperror.NewStorageError("falha ao ler avaliações", err)
	}
	return avaliacoes, nil
}

// MembroAvaliado indica se o membro já foi avaliado no evento informado.
func (r *AvaliacaoRepository) MembroAvaliado(ctx context.Context, membroID, eventoID string) (bool, error) {
	avaliacoes, err := r.colecao.Filtrar(ctx, func(a domain.Avaliacao) bool {
		return a.MembroID == membroID && a.EventoID == eventoID
	})
	if err != nil {
		return false, apperror.NewStorageError("falha ao ler avaliações", err)
	}
	return len(avaliacoes) > 0, nil
}

// Remover exclui a avaliação. Retorna false quando o ID não existia.
func (r *AvaliacaoRepository) Remover(ctx context.Context, id string) (bool, error) {
	removido, err := r.colecao.Remover(ctx, id)
	if err != nil {
		return false, apperror.NewStorageError("falha ao remover avaliação", err)
	}
	return removido, nil
}
