package entity

// SituacaoAtiva is the only registry status worth pursuing: any other
// situation discards the lead during enrichment.
const SituacaoAtiva = "ATIVA"

// Empresa holds registry data fetched from BrasilAPI, keyed globally by
// CNPJ. The row is shared across tenants: visibility is always enforced
// through the Lead that references it, never on the Empresa itself.
type Empresa struct {
	ID                    int64  `gorm:"primaryKey"`
	Cnpj                  string `gorm:"not null;uniqueIndex"`
	RazaoSocial           string
	NomeFantasia          string
	SituacaoCadastral     string
	DataSituacaoCadastral string
	Logradouro            string
	Numero                string
	Bairro                string
	Cep                   string
	Municipio             string
	Uf                    string
	CapitalSocial         float64
	Telefone              string
	Porte                 string
	NaturezaJuridica      string
	CnaeFiscalDescricao   string
	DataInicioAtividade   string
	RegimeTributario      string
	CnaesSecundarios      []CnaeSecundario `gorm:"serializer:json"`
	EnrichedAt            int64            `gorm:"autoUpdateTime:false"`

	// Relations
	Socios   []*Socio   `gorm:"foreignKey:EmpresaID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Contatos []*Contato `gorm:"foreignKey:EmpresaID;references:ID;constraint:OnDelete:CASCADE"`
}

type CnaeSecundario struct {
	Codigo    int    `json:"codigo"`
	Descricao string `json:"descricao"`
}

// Socio rows are replaced wholesale on every enrichment refresh
// (delete-all, recreate). Row identity is not preserved across refreshes.
type Socio struct {
	ID                   int64  `gorm:"primaryKey"`
	EmpresaID            int64  `gorm:"not null;index"`
	NomeSocio            string `gorm:"not null"`
	QualificacaoSocio    string
	DataEntradaSociedade string
	Documento            string
}
