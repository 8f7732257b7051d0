package custofixorepo

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

// CustoFixoRepository persiste os custos fixos mensais (buffet_custos_fixos).
type CustoFixoRepository struct {
	colecao *colecao.Colecao[domain.CustoFixo]
	logger  logger.Logger

	Agora  func() time.Time
	NovoID func() string
}

// NewCustoFixoRepository cria o repositório sobre o Store injetado.
func NewCustoFixoRepository(store storage.Store, log logger.Logger) *CustoFixoRepository {
	return &CustoFixoRepository{
		colecao: colecao.New(store, storage.ChaveCustosFixos, func(c domain.CustoFixo) string { return c.ID }, log),
		logger:  log,
		Agora:   time.Now,
		NovoID:  uuid.NewString,
	}
}

// Criar carimba identidade e timestamp de criação e anexa o custo fixo.
func (r *CustoFixoRepository) Criar(ctx context.Context, form domain.CustoFixoForm) (domain.CustoFixo, error) {
	custo := domain.CustoFixo{
		ID:            r.NovoID(),
		Descricao:     form.Descricao,
		Categoria:     form.Categoria,
		Valor:         form.Valor,
		MesReferencia: form.MesReferencia,
		EventoID:      form.EventoID,
		CriadoEm:      r.Agora().Format(time.RFC3339),
	}

	if err := r.colecao.Anexar(ctx, custo); err != nil {
		return domain.CustoFixo{}, apperror.NewStorageError("falha ao gravar custo fixo", err)
	}
	return custo, nil
}

// Todos retorna a coleção completa de custos fixos.
func (r *CustoFixoRepository) Todos(ctx context.Context) ([]domain.CustoFixo, error) {
	custos, err := r.colecao.Todos(ctx)
	if err != nil {
		return nil, apperror.NewStorageError("falha ao ler custos fixos", err)
	}
	return custos, nil
}

// PorID busca um custo fixo pelo identificador.
func (r *CustoFixoRepository) PorID(ctx context.Context, id string) (domain.CustoFixo, error) {
	custo, encontrado, err := r.colecao.PorID(ctx, id)
	if err != nil {
		return domain.CustoFixo{}, apperror.NewStorageError("falha ao ler custos fixos", err)
	}
	if !encontrado {
		return domain.CustoFixo{}, apperror.NewNotFoundError(fmt.Sprintf("Custo fixo com ID %s não existe.", id))
	}
	return custo, nil
}

// PorMesReferencia filtra os custos fixos pela igualdade estrita do mês
// de referência ("YYYY-MM").
func (r *CustoFixoRepository) PorMesReferencia(ctx context.Context, mes string) ([]domain.CustoFixo, error) {
	custos, err := r.colecao.Filtrar(ctx, func(c domain.CustoFixo) bool { return c.MesReferencia == mes })
	if err != nil {
		return nil, apperror.NewStorageError("falha ao ler custos fixos", err)
	}
	return custos, nil
}

// Atualizar aplica um patch campo a campo sobre o custo fixo existente.
func (r *CustoFixoRepository) Atualizar(ctx context.Context, id string, patch domain.CustoFixoPatch) (domain.CustoFixo, error) {
	custo, err := r.PorID(ctx, id)
	if err != nil {
		return domain.CustoFixo{}, err
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
	if patch.MesReferencia != nil {
		custo.MesReferencia = *patch.MesReferencia
	}
	if patch.EventoID != nil {
		custo.EventoID = *patch.EventoID
	}

	encontrado, err := r.colecao.Substituir(ctx, custo)
	if err != nil {
		return domain.CustoFixo{}, apperror.NewStorageError("falha ao gravar custo fixo atualizado", err)
	}
	if !encontrado {
		return domain.CustoFixo{}, apperror.NewNotFoundError(fmt.Sprintf("Custo fixo com ID %s não existe.", id))
	}
	return custo, nil
}

// Remover exclui o custo fixo. Retorna false quando o ID não existia.
func (r *CustoFixoRepository) Remover(ctx context.Context, id string) (bool, error) {
	removido, err := r.colecao.Remover(ctx, id)
	if err != nil {
		return false, apperror.NewStorageError("falha ao remover custo fixo", err)
	}
	return removido, nil
}
