package domain

// MembroEscalado é a atribuição de um membro cadastrado a uma função
// dentro da escala de um evento.
type MembroEscalado struct {
	MembroID string `json:"membroId"`
	Funcao   string `json:"funcao"`
}

// ExtraEscalado é um trabalhador avulso escalado sem cadastro de membro
// (apenas nome e função).
type ExtraEscalado struct {
	Nome   string `json:"nome"`
	Funcao string `json:"funcao"`
}

// EscalaEvento é a escala de trabalho de um evento. Invariante: existe no
// máximo uma escala por evento — criar uma nova substitui a anterior.
type EscalaEvento struct {
	ID           string           `json:"id"`
	EventoID     string           `json:"eventoId"`
	Membros      []MembroEscalado `json:"membros"`
	Extras       []ExtraEscalado  `json:"extras"`
	CriadoEm     string           `json:"criadoEm"`
	AtualizadoEm string           `json:"atualizadoEm"`
}

// EscalaEventoForm contém os campos do formulário de escala.
type EscalaEventoForm struct {
	EventoID string           `json:"eventoId"`
	Membros  []MembroEscalado `json:"membros"`
	Extras   []ExtraEscalado  `json:"extras"`
}
