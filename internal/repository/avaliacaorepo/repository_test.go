package avaliacaorepo_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"gobuffet/internal/domain"
	"gobuffet/internal/pkg/logger"
	"gobuffet/internal/pkg/storage"
	"gobuffet/internal/repository/avaliacaorepo"
)

func novoRepo() *avaliacaorepo.AvaliacaoRepository {
	return avaliacaorepo.NewAvaliacaoRepository(storage.NewMemoriaStore(), logger.NewLogger("error"))
}

// TestCriar_UmaAvaliacaoPorMembroEvento testa o invariante de avaliação
// única: reavaliar o mesmo membro no mesmo evento substitui a anterior.
func TestCriar_UmaAvaliacaoPorMembroEvento(t *testing.T) {
	repo := novoRepo()
	ctx := context.Background()

	primeira, err := repo.Criar(ctx, domain.Avaliacao{
		EventoID:     "evento-1",
		MembroID:     "membro-1",
		Qualidade:    domain.QualidadeBoa,
		Pontualidade: domain.PontualidadeAtrasado,
		ValorPago:    100,
	})
	assert.NoError(t, err)

	segunda, err := repo.Criar(ctx, domain.Avaliacao{
		EventoID:     "evento-1",
		MembroID:     "membro-1",
		Qualidade:    domain.QualidadeExcelente,
		Pontualidade: domain.PontualidadeAdiantado,
		ValorPago:    160,
	})
	assert.NoError(t, err)
	assert.NotEqual(t, primeira.ID, segunda.ID)

	avaliacoes, err := repo.Todas(ctx)
	assert.NoError(t, err)
	assert.Len(t, avaliacoes, 1)
	assert.Equal(t, domain.QualidadeExcelente, avaliacoes[0].Qualidade)
	assert.Equal(t, 160.0, avaliacoes[0].ValorPago)
}

// TestCriar_ParesDiferentesCoexistem testa que a substituição exige o par exato.
func TestCriar_ParesDiferentesCoexistem(t *testing.T) {
	repo := novoRepo()
	ctx := context.Background()

	_, err := repo.Criar(ctx, domain.Avaliacao{EventoID: "evento-1", MembroID: "membro-1"})
	assert.NoError(t, err)
	_, err = repo.Criar(ctx, domain.Avaliacao{EventoID: "evento-1", MembroID: "membro-2"})
	assert.NoError(t, err)
	_, err = repo.Criar(ctx, domain.Avaliacao{EventoID: "evento-2", MembroID: "membro-1"})
	assert.NoError(t, err)

	avaliacoes, err := repo.Todas(ctx)
	assert.NoError(t, err)
	assert.Len(t, avaliacoes, 3)
}

// TestMembroAvaliado testa a consulta usada para bloquear reavaliação na interface.
func TestMembroAvaliado(t *testing.T) {
	repo := novoRepo()
	ctx := context.Background()

	_, err := repo.Criar(ctx, domain.Avaliacao{EventoID: "evento-1", MembroID: "membro-1"})
	assert.NoError(t, err)

	avaliado, err := repo.MembroAvaliado(ctx, "membro-1", "evento-1")
	assert.NoError(t, err)
	assert.True(t, avaliado)

	avaliado, err = repo.MembroAvaliado(ctx, "membro-1", "evento-2")
	assert.NoError(t, err)
	assert.False(t, avaliado)
}

// TestPorEvento testa o filtro de avaliações por evento.
func TestPorEvento(t *testing.T) {
	repo := novoRepo()
	ctx := context.Background()

	_, err := repo.Criar(ctx, domain.Avaliacao{EventoID: "evento-1", MembroID: "membro-1"})
	assert.NoError(t, err)
	_, err = repo.Criar(ctx, domain.Avaliacao{EventoID: "evento-2", MembroID: "membro-1"})
	assert.NoError(t, err)

	avaliacoes, err := repo.PorEvento(ctx, "evento-1")
	assert.NoError(t, err)
	assert.Len(t, avaliacoes, 1)
	assert.Equal(t, "evento-1", avaliacoes[0].EventoID)
}
