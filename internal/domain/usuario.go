package domain

// Usuario é o usuário administrador logado. A coleção buffet_usuario_logado
// guarda um único registro (singleton) — não há multiusuário.
type Usuario struct {
	ID        string `json:"id"`
	Nome      string `json:"nome"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	SenhaHash string `json:"senhaHash,omitempty"`
	CriadoEm  string `json:"criadoEm"`
}

// UsuarioPendente é uma solicitação de cadastro aguardando aprovação ou
// rejeição do administrador. A senha é armazenada apenas como hash bcrypt.
type UsuarioPendente struct {
	ID        string `json:"id"`
	Nome      string `json:"nome"`
	Email     string `json:"email"`
	SenhaHash string `json:"senhaHash"`
	CriadoEm  string `json:"criadoEm"`
}

// RegistroUsuario contém os campos do formulário de solicitação de cadastro.
type RegistroUsuario struct {
	Nome  string `json:"nome"`
	Email string `json:"email"`
	Senha string `json:"senha"`
}

// Credenciais contém os campos do formulário de login.
type Credenciais struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}
