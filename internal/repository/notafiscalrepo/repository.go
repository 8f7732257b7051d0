package notafiscalrepo

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

// NotaFiscalRepository persiste as notas fiscais (buffet_notas_fiscais).
type NotaFiscalRepository struct {
	colecao *colecao.Colecao[domain.NotaFiscal]
	logger  logger.Logger

	Agora  func() time.Time
	NovoID func() string
}

// NewNotaFiscalRepository cria o repositório sobre o Store injetado.
func NewNotaFiscalRepository(store storage.Store, log logger.Logger) *NotaFiscalRepository {
	return &NotaFiscalRepository{
		colecao: colecao.New(store, storage.ChaveNotasFiscais, func(n domain.NotaFiscal) string { return n.ID }, log),
		logger:  log,
		Agora:   time.Now,
		NovoID:  uuid.NewString,
	}
}

// Criar carimba identidade e timestamps e anexa a nota fiscal.
func (r *NotaFiscalRepository) Criar(ctx context.Context, form domain.NotaFiscalForm) (domain.NotaFiscal, error) {
	agora := r.Agora().Format(time.RFC3339)
	nota := domain.NotaFiscal{
		ID:              r.NovoID(),
		EventoID:        form.EventoID,
		EmitirNota:      form.EmitirNota,
		TipoNota:        form.TipoNota,
		ValorTributavel: form.ValorTributavel,
		TipoImposto:     form.TipoImposto,
		ValorImposto:    form.ValorImposto,
		SituacaoNota:    form.SituacaoNota,
		SituacaoImposto: form.SituacaoImposto,
		CriadoEm:        agora,
		AtualizadoEm:    agora,
	}

	if err := r.colecao.Anexar(ctx, nota); err != nil {
		return domain.NotaFiscal{}, apperror.NewStorageError("falha ao gravar nota fiscal", err)
	}
	return nota, nil
}

// Todas retorna a coleção completa de notas fiscais.
func (r *NotaFiscalRepository) Todas(ctx context.Context) ([]domain.NotaFiscal, error) {
	notas, err := r.colecao.Todos(ctx)
	if err != nil {
		return nil, apperror.NewStorageError("falha ao ler notas fiscais", err)
	}
	return notas, nil
}

// PorID busca uma nota fiscal pelo identificador.
func (r *NotaFiscalRepository) PorID(ctx context.Context, id string) (domain.NotaFiscal, error) {
	nota, encontrada, err := r.colecao.PorID(ctx, id)
	if err != nil {
		return domain.NotaFiscal{}, apperror.NewStorageError("falha ao ler notas fiscais", err)
	}
	if !encontrada {
		return domain.NotaFiscal{}, apperror.NewNotFoundError(fmt.Sprintf("Nota fiscal com ID %s não existe.", id))
	}
	return nota, nil
}

// PorEvento filtra as notas vinculadas ao evento informado.
func (r *NotaFiscalRepository) PorEvento(ctx context.Context, eventoID string) ([]domain.NotaFiscal, error) {
	notas, err := r.colecao.Filtrar(ctx, func(n domain.NotaFiscal) bool { return n.EventoID == eventoID })
	if err != nil {
		return nil, apperror.NewStorageError("falha ao ler notas fiscais", err)
	}
	return notas, nil
}

// Atualizar aplica um patch campo a campo sobre a nota existente.
func (r *NotaFiscalRepository) Atualizar(ctx context.Context, id string, patch domain.NotaFiscalPatch) (domain.NotaFiscal, error) {
	nota, err := r.PorID(ctx, id)
	if err != nil {
		return domain.NotaFiscal{}, err
	}

	if patch.EmitirNota != nil {
		nota.EmitirNota = *patch.EmitirNota
	}
	if patch.TipoNota != nil {
		nota.TipoNota = *patch.TipoNota
	}
	if patch.ValorTributavel != nil {
		nota.ValorTributavel = *patch.ValorTributavel
	}
	if patch.TipoImposto != nil {
		nota.TipoImposto = *patch.TipoImposto
	}
	if patch.ValorImposto != nil {
		nota.ValorImposto = *patch.ValorImposto
	}
	if patch.SituacaoNota != nil {
		nota.SituacaoNota = *patch.SituacaoNota
	}
	if patch.SituacaoImposto != nil {
		nota.SituacaoImposto = *patch.SituacaoImposto
	}
	nota.AtualizadoEm = r.Agora().Format(time.RFC3339)

	encontrada, err := r.colecao.Substituir(ctx, nota)
	if err != nil {
		return domain.NotaFiscal{}, apperror.NewStorageError("falha ao gravar nota fiscal atualizada", err)
	}
	if !encontrada {
		return domain.NotaFiscal{}, apperror.NewNotFoundError(fmt.Sprintf("Nota fiscal com ID %s não existe.", id))
	}
	return nota, nil
}

// Remover exclui a nota fiscal. Retorna false quando o ID não existia.
func (r *NotaFiscalRepository) Remover(ctx context.Context, id string) (bool, error) {
	removido, err := r.colecao.Remover(ctx, id)
	if err != nil {
		return false, apperror.NewStorageError("falha ao remover nota fiscal", err)
	}
	return removido, nil
}
