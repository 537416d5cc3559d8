package contract

const MaxProposalFileSizeBytes = 10 * 1024 * 1024

type GenerateProposalRequest struct {
	LeadID   int64  `json:"leadId" validate:"required,min=1"`
	Objeto   string `json:"objeto" validate:"required,max=5000"`
	Escopo   string `json:"escopo" validate:"required,max=10000"`
	Valores  string `json:"valores" validate:"required,max=5000"`
	Validade int64  `json:"validade" validate:"required,min=1"`
}

type PropostaResponse struct {
	ID             int64   `json:"id"`
	NegocioID      int64   `json:"negocioId"`
	Objeto         string  `json:"objeto,omitempty"`
	Escopo         string  `json:"escopo,omitempty"`
	Valores        string  `json:"valores,omitempty"`
	Validade       *string `json:"validade,omitempty"`
	CaminhoArquivo string  `json:"caminhoArquivo"`
	NomeArquivo    string  `json:"nomeArquivo"`
	CreatedAt      string  `json:"created_at"`
}
