package contract

const MaxLogoFileSizeBytes = 2 * 1024 * 1024

type UpdateConfigRequest struct {
	NomeEmpresa *string `json:"nomeEmpresa" validate:"omitempty,min=2,max=200"`
	Cnpj        *string `json:"cnpj" validate:"omitempty,cnpj"`
	Endereco    *string `json:"endereco" validate:"omitempty,max=300"`
	Email       *string `json:"email" validate:"omitempty,email"`
	Telefone    *string `json:"telefone" validate:"omitempty,max=30"`
}

type ConfigResponse struct {
	ID          int64  `json:"id"`
	NomeEmpresa string `json:"nomeEmpresa"`
	Cnpj        string `json:"cnpj,omitempty"`
	Endereco    string `json:"endereco,omitempty"`
	Email       string `json:"email,omitempty"`
	Telefone    string `json:"telefone,omitempty"`
	LogoUrl     string `json:"logoUrl,omitempty"`
	UpdatedAt   string `json:"updated_at"`
}
