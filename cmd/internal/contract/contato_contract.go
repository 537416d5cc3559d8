package contract

type CreateContatoRequest struct {
	EmpresaID  int64  `json:"empresaId" validate:"required,min=1"`
	Nome       string `json:"nome" validate:"required,min=2,max=200"`
	Cargo      string `json:"cargo" validate:"omitempty,max=100"`
	Telefone   string `json:"telefone" validate:"omitempty,max=30"`
	Email      string `json:"email" validate:"omitempty,email"`
	Observacao string `json:"observacao" validate:"omitempty,max=2000"`
}

type UpdateContatoRequest struct {
	Nome       *string `json:"nome" validate:"omitempty,min=2,max=200"`
	Cargo      *string `json:"cargo" validate:"omitempty,max=100"`
	Telefone   *string `json:"telefone" validate:"omitempty,max=30"`
	Email      *string `json:"email" validate:"omitempty,email"`
	Observacao *string `json:"observacao" validate:"omitempty,max=2000"`
}

type ContatoResponse struct {
	ID         int64  `json:"id"`
	EmpresaID  int64  `json:"empresaId"`
	Nome       string `json:"nome"`
	Cargo      string `json:"cargo,omitempty"`
	Telefone   string `json:"telefone,omitempty"`
	Email      string `json:"email,omitempty"`
	Observacao string `json:"observacao,omitempty"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}
