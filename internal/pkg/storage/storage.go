package storage

import "context"

// Chaves de persistência. Cada coleção inteira é gravada como um array JSON
// sob a sua chave — as chaves são, na prática, o "schema" do sistema.
const (
	ChaveEventos           = "buffet_eventos"
	ChaveCustos            = "buffet_custos"
	ChaveCustosFixos       = "buffet_custos_fixos"
	ChaveMembrosEquipe     = "buffet_membros_equipe"
	ChaveEscalasEventos    = "buffet_escalas_eventos"
	ChaveAvaliacoes        = "buffet_avaliacoes"
	ChaveNotasFiscais      = "buffet_notas_fiscais"
	ChaveOpcoesCardapio    = "buffet_opcoes_cardapio"
	ChaveOpcoesBebidas     = "buffet_opcoes_bebidas"
	ChaveUsuarioLogado     = "buffet_usuario_logado"
	ChaveUsuariosPendentes = "buffet_usuarios_pendentes"
)

// Store define o contrato de interface para qualquer backend chave-valor que
// as coleções possam usar. Leitura e gravação são sempre do blob inteiro:
// não existem escritas parciais nem merge — o chamador substitui a coleção
// completa a cada mutação.
type Store interface {
	// Ler retorna o conteúdo bruto gravado sob a chave. O segundo retorno
	// indica se a chave existe; chave ausente não é erro.
	Ler(ctx context.Context, chave string) ([]byte, bool, error)

	// Gravar substitui o conteúdo da chave pelo blob informado.
	Gravar(ctx context.Context, chave string, dados []byte) error
}
