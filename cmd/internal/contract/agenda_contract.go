package contract

type CreateAtividadeRequest struct {
	LeadID   int64  `json:"leadId" validate:"required,min=1"`
	Conteudo string `json:"conteudo" validate:"required,min=1,max=5000"`
}

type AtividadeResponse struct {
	ID        int64  `json:"id"`
	LeadID    int64  `json:"leadId"`
	Conteudo  string `json:"conteudo"`
	CreatedAt string `json:"created_at"`
}

type CreateLembreteRequest struct {
	LeadID    int64  `json:"leadId" validate:"required,min=1"`
	Descricao string `json:"descricao" validate:"required,min=1,max=500"`
	Data      int64  `json:"data" validate:"required,min=1"`
}

type UpdateLembreteRequest struct {
	Concluido *bool  `json:"concluido" validate:"omitempty"`
	Data      *int64 `json:"data" validate:"omitempty,min=1"`
}

type LembreteResponse struct {
	ID        int64  `json:"id"`
	LeadID    int64  `json:"leadId"`
	Descricao string `json:"descricao"`
	Data      string `json:"data"`
	Concluido bool   `json:"concluido"`
	CreatedAt string `json:"created_at"`
}

// UpcomingLembreteResponse carries the lead identity alongside the
// reminder so the agenda view can link back without extra lookups.
type UpcomingLembreteResponse struct {
	ID          int64  `json:"id"`
	LeadID      int64  `json:"leadId"`
	NomeDevedor string `json:"nomeDevedor"`
	Descricao   string `json:"descricao"`
	Data        string `json:"data"`
}
