package brasilapi

import "sort"

// SimplesNacional is the regime assumed when the registry flags the
// simplified option without an explicit regime history.
const SimplesNacional = "SIMPLES NACIONAL"

type CompanyResponse struct {
	Cnpj                       string  `json:"cnpj"`
	RazaoSocial                string  `json:"razao_social"`
	NomeFantasia               string  `json:"nome_fantasia"`
	DescricaoSituacaoCadastral string  `json:"descricao_situacao_cadastral"`
	DataSituacaoCadastral      string  `json:"data_situacao_cadastral"`
	Logradouro                 string  `json:"logradouro"`
	Numero                     string  `json:"numero"`
	Bairro                     string  `json:"bairro"`
	Cep                        string  `json:"cep"`
	Municipio                  string  `json:"municipio"`
	Uf                         string  `json:"uf"`
	CapitalSocial              float64 `json:"capital_social"`
	DddTelefone1               string  `json:"ddd_telefone_1"`
	DddTelefone2               string  `json:"ddd_telefone_2"`
	Porte                      string  `json:"porte"`
	NaturezaJuridica           string  `json:"natureza_juridica"`
	CnaeFiscalDescricao        string  `json:"cnae_fiscal_descricao"`
	DataInicioAtividade        string  `json:"data_inicio_atividade"`
	OpcaoPeloSimples           bool    `json:"opcao_pelo_simples"`

	RegimeTributario []*RegimeEntry    `json:"regime_tributario"`
	CnaesSecundarios []*CnaeSecundario `json:"cnaes_secundarios"`
	QuadroSocietario []*SocioResponse  `json:"qsa"`
}

type RegimeEntry struct {
	Ano               int    `json:"ano"`
	FormaDeTributacao string `json:"forma_de_tributacao"`
}

type CnaeSecundario struct {
	Codigo    int    `json:"codigo"`
	Descricao string `json:"descricao"`
}

type SocioResponse struct {
	NomeSocio            string `json:"nome_socio"`
	QualificacaoSocio    string `json:"qualificacao_socio"`
	DataEntradaSociedade string `json:"data_entrada_sociedade"`
	CnpjCpfDoSocio       string `json:"cnpj_cpf_do_socio"`
}

// Telefone picks the primary registry phone, falling back to the
// secondary when the primary is absent.
func (c *CompanyResponse) Telefone() string {
	if c.DddTelefone1 != "" {
		return c.DddTelefone1
	}
	return c.DddTelefone2
}

// RegimeRecente picks the most recent tax regime entry (by year,
// descending; ties keep first-encountered order), or falls back to
// SIMPLES NACIONAL when only the simplified-option flag is present.
func (c *CompanyResponse) RegimeRecente() string {
	if len(c.RegimeTributario) > 0 {
		entries := make([]*RegimeEntry, len(c.RegimeTributario))
		copy(entries, c.RegimeTributario)
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].Ano > entries[j].Ano
		})
		return entries[0].FormaDeTributacao
	}
	if c.OpcaoPeloSimples {
		return SimplesNacional
	}
	return ""
}
