package domain

// Custo é um custo variável vinculado a um evento específico.
// EventoID é uma chave estrangeira informal: não há integridade referencial,
// um custo cujo evento foi excluído permanece na coleção como linha órfã.
type Custo struct {
	ID        string  `json:"id"`
	EventoID  string  `json:"eventoId"`
	Descricao string  `json:"descricao"`
	Categoria string  `json:"categoria"`
	Valor     float64 `json:"valor"`
	Data      string  `json:"data"` // YYYY-MM-DD
	CriadoEm  string  `json:"criadoEm"`
}

// CustoForm contém os campos do formulário de custo variável.
type CustoForm struct {
	EventoID  string  `json:"eventoId"`
	Descricao string  `json:"descricao"`
	Categoria string  `json:"categoria"`
	Valor     float64 `json:"valor"`
	Data      string  `json:"data"`
}

// CustoPatch é a atualização parcial de um custo variável.
type CustoPatch struct {
	EventoID  *string  `json:"eventoId,omitempty"`
	Descricao *string  `json:"descricao,omitempty"`
	Categoria *string  `json:"categoria,omitempty"`
	Valor     *float64 `json:"valor,omitempty"`
	Data      *string  `json:"data,omitempty"`
}

// CustoFixo é um custo mensal recorrente (aluguel, folha, etc.), agrupado
// estritamente pela igualdade da string MesReferencia ("YYYY-MM").
type CustoFixo struct {
	ID            string  `json:"id"`
	Descricao     string  `json:"descricao"`
	Categoria     string  `json:"categoria"`
	Valor         float64 `json:"valor"`
	MesReferencia string  `json:"mesReferencia"` // YYYY-MM
	EventoID      string  `json:"eventoId,omitempty"`
	CriadoEm      string  `json:"criadoEm"`
}

// CustoFixoForm contém os campos do formulário de custo fixo.
type CustoFixoForm struct {
	Descricao     string  `json:"descricao"`
	Categoria     string  `json:"categoria"`
	Valor         float64 `json:"valor"`
	MesReferencia string  `json:"mesReferencia"`
	EventoID      string  `json:"eventoId"`
}

// CustoFixoPatch é a atualização parcial de um custo fixo.
type CustoFixoPatch struct {
	Descricao     *string  `json:"descricao,omitempty"`
	Categoria     *string  `json:"categoria,omitempty"`
	Valor         *float64 `json:"valor,omitempty"`
	MesReferencia *string  `json:"mesReferencia,omitempty"`
	EventoID      *string  `json:"eventoId,omitempty"`
}
