package contract

// MaxImportRows bounds a single import payload; larger sheets must be
// split client-side.
const MaxImportRows = 5000

type CreateLeadRequest struct {
	Cnpj             string  `json:"cnpj" validate:"required,cnpj"`
	NomeDevedor      string  `json:"nomeDevedor" validate:"required,min=2,max=200"`
	NomeFantasia     string  `json:"nomeFantasia" validate:"omitempty,max=200"`
	ValorTotalDivida float64 `json:"valorTotalDivida" validate:"omitempty,min=0"`
	Municipio        string  `json:"municipio" validate:"omitempty,max=100"`
	Uf               string  `json:"uf" validate:"omitempty,len=2"`
}

type UpdateLeadStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// ImportLeadRow is one parsed spreadsheet line. Rows with a malformed
// CNPJ are skipped and counted, never failing the batch.
type ImportLeadRow struct {
	Cnpj             string  `json:"cnpj"`
	NomeDevedor      string  `json:"nomeDevedor"`
	NomeFantasia     string  `json:"nomeFantasia"`
	ValorTotalDivida float64 `json:"valorTotalDivida"`
	Municipio        string  `json:"municipio"`
	Uf               string  `json:"uf"`
}

type ImportLeadsRequest struct {
	Leads []*ImportLeadRow `json:"leads" validate:"required,min=1,max=5000"`
}

type ImportLeadsResponse struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

type LeadResponse struct {
	ID               int64   `json:"id"`
	Cnpj             string  `json:"cnpj"`
	NomeDevedor      string  `json:"nomeDevedor"`
	NomeFantasia     string  `json:"nomeFantasia,omitempty"`
	ValorTotalDivida float64 `json:"valorTotalDivida"`
	Status           string  `json:"status"`
	Municipio        string  `json:"municipio,omitempty"`
	Uf               string  `json:"uf,omitempty"`
	EmpresaID        *int64  `json:"empresaId,omitempty"`
	CreatedAt        string  `json:"created_at"`
	UpdatedAt        string  `json:"updated_at"`
}

type LeadSearchResponse struct {
	Leads    []*LeadResponse `json:"leads"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"pageSize"`
}

type LeadDetailResponse struct {
	LeadResponse
	Empresa    *EmpresaResponse     `json:"empresa,omitempty"`
	Atividades []*AtividadeResponse `json:"atividades"`
	Lembretes  []*LembreteResponse  `json:"lembretes"`
	Negocio    *NegocioResponse     `json:"negocio,omitempty"`
}

// VerifyLeadResponse is the enrichment outcome. Motivo is only set when
// the lead was discarded without an error (inactive registration).
type VerifyLeadResponse struct {
	Status  string           `json:"status"`
	Motivo  string           `json:"motivo,omitempty"`
	Empresa *EmpresaResponse `json:"empresa,omitempty"`
}

type LocationResponse struct {
	Municipio string `json:"municipio"`
	Uf        string `json:"uf"`
}
