package domain

// Opcao é uma entrada de catálogo (categoria de cardápio ou de bebida).
// Value é o slug, único dentro da sua lista; Label é o texto exibido.
type Opcao struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// ListaOpcoes identifica qual dos dois catálogos independentes é o alvo.
type ListaOpcoes string

const (
	ListaCardapio ListaOpcoes = "cardapio"
	ListaBebidas  ListaOpcoes = "bebidas"
)
