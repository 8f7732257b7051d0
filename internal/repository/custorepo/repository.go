package custorepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"gobuffet/internal/domain"
	apperror "gobuffet/internal/errors"
	"gobuffet/internal/pkg/logger"
	"gobuffet/internal/pkg/storage"
	"gobuffet/internal/repository/colecao"
)

// CustoRepository persiste os custos variáveis por evento (buffet_custos).
type CustoRepository struct {
	colecao *colecao.Colecao[domain.Custo]
	logger  logger.Logger

	Agora  func() time.Time
	NovoID func() string
}

// NewCustoRepository cria o repositório sobre o Store injetado.
func NewCustoRepository(store storage.Store, log logger.Logger) *CustoRepository {
	return &CustoRepository{
		colecao: colecao.New(store, storage.ChaveCustos, func(c domain.Custo) string { return c.ID }, log),
		logger:  log,
		Agora:   time.Now,
		NovoID:  uuid.NewString,
	}
}

// Criar carimba identidade e timestamp de criação e anexa o custo.
func (r *CustoRepository) Criar(ctx context.Context, form domain.CustoForm) (domain.Custo, error) {
	custo := domain.Custo{
		ID:        r.NovoID(),
		EventoID:  form.EventoID,
		Descricao: form.Descricao,
		Categoria: form.Categoria,
		Valor:     form.Valor,
		Data:      form.Data,
		CriadoEm:  r.Agora().Format(time.RFC3339),
	}

	if err := r.colecao.Anexar(ctx, custo); err != nil {
		return domain.Custo{}, apperror.NewStorageError("falha ao gravar custo", err)
	}
	return custo, nil
}

// Todos retorna a coleção completa de custos variáveis.
func (r *CustoRepository) Todos(ctx context.Context) ([]domain.Custo, error) {
	custos, err := r.colecao.Todos(ctx)
	if err != nil {
		return nil, apperror.NewStorageError("falha ao ler custos", err)
	}
	return custos, nil
}

// PorID busca um custo pelo identificador.
func (r *CustoRepository) PorID(ctx context.Context, id string) (domain.Custo, error) {
	custo, encontrado, err := r.colecao.PorID(ctx, id)
	if err != nil {
		return domain.Custo{}, apperror.NewStorageError("falha ao ler custos", err)
	}
	if !encontrado {
		return domain.Custo{}, apperror.NewNotFoundError(fmt.Sprintf("Custo com ID %s não existe.", id))
	}
	return custo, nil
}

// PorEvento filtra os custos vinculados ao evento informado.
func (r *CustoRepository) PorEvento(ctx context.Context, eventoID string) ([]domain.Custo, error) {
	custos, err := r.colecao.Filtrar(ctx, func(c domain.Custo) bool { return c.EventoID == eventoID })
	if err != nil {
		return nil, apperror.NewStorageError("falha ao ler custos", err)
	}
	return custos, nil
}

// TemCustosDoEvento indica se o evento possui ao menos um custo lançado.
func (r *CustoRepository) TemCustosDoEvento(ctx context.Context, eventoID string) (bool, error) {
	custos, err := r.PorEvento(ctx, eventoID)
	if err != nil {
		return false, err
	}
	return len(custos) > 0, nil
}

// Atualizar aplica um patch campo a campo sobre o custo existente.
func (r *CustoRepository) Atualizar(ctx context.Context, id string, patch domain.CustoPatch) (domain.Custo, error) {
	custo, err := r.PorID(ctx, id)
	if err != nil {
		return domain.Custo{}, err
	}

	if patch.EventoID != nil {
		custo.EventoID = *patch.EventoID
	}
	if patch.Descricao != nil {
		custo.Descricao = *patch.Descricao
	}
	if patch.Categoria != nil {
		custo.Categoria = *patch.Categoria
	}
	if patch.Valor != nil {
		custo.Valor = *patch.Valor
	}
	if patch.Data != nil {
		custo.Data = *patch.Data
	}

	encontrado, err := r.colecao.Substituir(ctx, custo)
	if err != nil {
		return domain.Custo{}, apperror.NewStorageError("falha ao gravar custo atualizado", err)
	}
	if !encontrado {
		return domain.Custo{}, apperror.NewNotFoundError(fmt.Sprintf("Custo com ID %s não existe.", id))
	}
	return custo, nil
}

// Remover exclui o custo. Retorna false quando o ID não existia.
func (r *CustoRepository) Remover(ctx context.Context, id string) (bool, error) {
	removido, err := r.colecao.Remover(ctx, id)
	if err != nil {
		return false, apperror.NewStorageError("falha ao remover custo", err)
	}
	return removido, nil
}
