package domain

// StatusPagamento representa o estado de pagamento de um evento.
type StatusPagamento string

const (
	PagamentoPendente  StatusPagamento = "pending"
	PagamentoOrcamento StatusPagamento = "quote"
	PagamentoPago      StatusPagamento = "paid"
)

// Evento representa um evento de buffet contratado (a Entidade central).
// Datas são strings "YYYY-MM-DD" e timestamps são strings ISO-8601,
// preservando o schema persistido das coleções.
type Evento struct {
	ID              string          `json:"id"`
	Motivo          string          `json:"motivo"`
	NomeCliente     string          `json:"nomeCliente"`
	TelefoneCliente string          `json:"telefoneCliente"`
	EmailCliente    string          `json:"emailCliente"`
	Data            string          `json:"data"` // YYYY-MM-DD, fuso local
	Convidados      int             `json:"convidados"`
	Cardapio        []string        `json:"cardapio"`
	Bebidas         []string        `json:"bebidas"`
	HorarioInicio   string          `json:"horarioInicio"`
	HorarioFim      string          `json:"horarioFim"`
	Endereco        string          `json:"endereco"`
	Valor           float64         `json:"valor"`
	ValorEntrada    float64         `json:"valorEntrada,omitempty"`
	FormaPagamento  string          `json:"formaPagamento"`
	StatusPagamento StatusPagamento `json:"statusPagamento"`
	Observacoes     string          `json:"observacoes"`
	CriadoEm        string          `json:"criadoEm"`
	AtualizadoEm    string          `json:"atualizadoEm"`
}

// EventoForm contém os campos preenchidos pelo formulário de criação.
// Identidade e timestamps são carimbados pelo repositório.
type EventoForm struct {
	Motivo          string          `json:"motivo"`
	NomeCliente     string          `json:"nomeCliente"`
	TelefoneCliente string          `json:"telefoneCliente"`
	EmailCliente    string          `json:"emailCliente"`
	Data            string          `json:"data"`
	Convidados      int             `json:"convidados"`
	Cardapio        []string        `json:"cardapio"`
	Bebidas         []string        `json:"bebidas"`
	HorarioInicio   string          `json:"horarioInicio"`
	HorarioFim      string          `json:"horarioFim"`
	Endereco        string          `json:"endereco"`
	Valor           float64         `json:"valor"`
	ValorEntrada    float64         `json:"valorEntrada"`
	FormaPagamento  string          `json:"formaPagamento"`
	StatusPagamento StatusPagamento `json:"statusPagamento"`
	Observacoes     string          `json:"observacoes"`
}

// EventoPatch é a atualização parcial de um evento: apenas os campos
// presentes (não-nil) são aplicados sobre o registro existente.
type EventoPatch struct {
	Motivo          *string          `json:"motivo,omitempty"`
	NomeCliente     *string          `json:"nomeCliente,omitempty"`
	TelefoneCliente *string          `json:"telefoneCliente,omitempty"`
	EmailCliente    *string          `json:"emailCliente,omitempty"`
	Data            *string          `json:"data,omitempty"`
	Convidados      *int             `json:"convidados,omitempty"`
	Cardapio        *[]string        `json:"cardapio,omitempty"`
	Bebidas         *[]string        `json:"bebidas,omitempty"`
	HorarioInicio   *string          `json:"horarioInicio,omitempty"`
	HorarioFim      *string          `json:"horarioFim,omitempty"`
	Endereco        *string          `json:"endereco,omitempty"`
	Valor           *float64         `json:"valor,omitempty"`
	ValorEntrada    *float64         `json:"valorEntrada,omitempty"`
	FormaPagamento  *string          `json:"formaPagamento,omitempty"`
	StatusPagamento *StatusPagamento `json:"statusPagamento,omitempty"`
	Observacoes     *string          `json:"observacoes,omitempty"`
}
