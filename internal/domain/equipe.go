package domain

// StatusMembro representa o ciclo de vida de um membro da equipe.
type StatusMembro string

const (
	MembroPendente StatusMembro = "pendente"
	MembroAtivo    StatusMembro = "ativo"
)

// MembroEquipe representa um integrante da equipe de trabalho do buffet.
// A função principal não deve constar nas secundárias — a regra é aplicada
// no ato da aprovação (serviço), não na camada de persistência.
type MembroEquipe struct {
	ID                 string       `json:"id"`
	Nome               string       `json:"nome"`
	FuncaoPrincipal    string       `json:"funcaoPrincipal"`
	FuncoesSecundarias []string     `json:"funcoesSecundarias"`
	Telefone           string       `json:"telefone"`
	Email              string       `json:"email"`
	Status             StatusMembro `json:"status"`
	CriadoEm           string       `json:"criadoEm"`
	AtualizadoEm       string       `json:"atualizadoEm"`
}

// MembroEquipeForm contém os campos do formulário de cadastro de membro.
// Todo membro entra como pendente até ser aprovado pelo administrador.
type MembroEquipeForm struct {
	Nome     string `json:"nome"`
	Telefone string `json:"telefone"`
	Email    string `json:"email"`
}

// MembroEquipePatch é a atualização parcial de um membro.
type MembroEquipePatch struct {
	Nome               *string       `json:"nome,omitempty"`
	FuncaoPrincipal    *string       `json:"funcaoPrincipal,omitempty"`
	FuncoesSecundarias *[]string     `json:"funcoesSecundarias,omitempty"`
	Telefone           *string       `json:"telefone,omitempty"`
	Email              *string       `json:"email,omitempty"`
	Status             *StatusMembro `json:"status,omitempty"`
}
