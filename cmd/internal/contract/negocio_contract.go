package contract

type UpdateNegocioRequest struct {
	ValorFechado    *float64 `json:"valorFechado" validate:"omitempty,min=0"`
	ValorEscritorio *float64 `json:"valorEscritorio" validate:"omitempty,min=0"`
	ValorOutraParte *float64 `json:"valorOutraParte" validate:"omitempty,min=0"`
	ValorRecebido   *float64 `json:"valorRecebido" validate:"omitempty,min=0"`
	DataFechamento  *int64   `json:"dataFechamento" validate:"omitempty,min=0"`
}

type NegocioResponse struct {
	ID              int64               `json:"id"`
	LeadID          int64               `json:"leadId"`
	ValorFechado    float64             `json:"valorFechado"`
	ValorEscritorio float64             `json:"valorEscritorio"`
	ValorOutraParte float64             `json:"valorOutraParte"`
	ValorRecebido   float64             `json:"valorRecebido"`
	DataFechamento  *string             `json:"dataFechamento,omitempty"`
	Propostas       []*PropostaResponse `json:"propostas,omitempty"`
	CreatedAt       string              `json:"created_at"`
	UpdatedAt       string              `json:"updated_at"`
}
