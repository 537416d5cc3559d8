package contract

type EmpresaResponse struct {
	ID                    int64               `json:"id"`
	Cnpj                  string              `json:"cnpj"`
	RazaoSocial           string              `json:"razaoSocial"`
	NomeFantasia          string              `json:"nomeFantasia,omitempty"`
	SituacaoCadastral     string              `json:"situacaoCadastral"`
	DataSituacaoCadastral string              `json:"dataSituacaoCadastral,omitempty"`
	Logradouro            string              `json:"logradouro,omitempty"`
	Numero                string              `json:"numero,omitempty"`
	Bairro                string              `json:"bairro,omitempty"`
	Cep                   string              `json:"cep,omitempty"`
	Municipio             string              `json:"municipio,omitempty"`
	Uf                    string              `json:"uf,omitempty"`
	CapitalSocial         float64             `json:"capitalSocial"`
	Telefone              string              `json:"telefone,omitempty"`
	Porte                 string              `json:"porte,omitempty"`
	NaturezaJuridica      string              `json:"naturezaJuridica,omitempty"`
	CnaeFiscalDescricao   string              `json:"cnaeFiscalDescricao,omitempty"`
	DataInicioAtividade   string              `json:"dataInicioAtividade,omitempty"`
	RegimeTributario      string              `json:"regimeTributario,omitempty"`
	CnaesSecundarios      []CnaeResponse      `json:"cnaesSecundarios"`
	Socios                []*SocioResponse    `json:"socios"`
	Contatos              []*ContatoResponse  `json:"contatos"`
	EnrichedAt            string              `json:"enriched_at,omitempty"`
}

type CnaeResponse struct {
	Codigo    int    `json:"codigo"`
	Descricao string `json:"descricao"`
}

type SocioResponse struct {
	ID                   int64  `json:"id"`
	NomeSocio            string `json:"nomeSocio"`
	QualificacaoSocio    string `json:"qualificacaoSocio,omitempty"`
	DataEntradaSociedade string `json:"dataEntradaSociedade,omitempty"`
	Documento            string `json:"documento,omitempty"`
}
