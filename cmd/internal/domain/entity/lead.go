package entity

type LeadStatus string

const (
	StatusAVerificar        LeadStatus = "A_VERIFICAR"
	StatusVerificado        LeadStatus = "VERIFICADO"
	StatusContatado         LeadStatus = "CONTATADO"
	StatusAguardandoReposta LeadStatus = "AGUARDANDO_RESPOSTA"
	StatusEmNegociacao      LeadStatus = "EM_NEGOCIACAO"
	StatusConvertido        LeadStatus = "CONVERTIDO"
	StatusNaoTemInteresse   LeadStatus = "NAO_TEM_INTERESSE"
	StatusDescartado        LeadStatus = "DESCARTADO"
)

// ValidLeadStatus reports whether s is a member of the LeadStatus enum.
// Manual transitions are free-form: any status may be set to any other,
// only the enrichment workflow constrains automated transitions.
func ValidLeadStatus(s LeadStatus) bool {
	switch s {
	case StatusAVerificar, StatusVerificado, StatusContatado,
		StatusAguardandoReposta, StatusEmNegociacao, StatusConvertido,
		StatusNaoTemInteresse, StatusDescartado:
		return true
	}
	return false
}

// Lead is a prospective client (a company owing tax debt) tracked by one
// sales user. The same CNPJ may appear in different users' portfolios,
// hence the composite unique index.
type Lead struct {
	ID              int64      `gorm:"primaryKey"`
	Cnpj            string     `gorm:"not null;uniqueIndex:idx_lead_cnpj_user"`
	NomeDevedor     string     `gorm:"not null"`
	NomeFantasia    string
	ValorTotalDivida float64   `gorm:"not null;default:0"`
	Status          LeadStatus `gorm:"not null;default:A_VERIFICAR"`
	Municipio       string
	Uf              string
	UserID          int64  `gorm:"not null;uniqueIndex:idx_lead_cnpj_user;index"`
	EmpresaID       *int64 `gorm:"index"`
	CreatedAt       int64  `gorm:"not null"`
	UpdatedAt       int64  `gorm:"not null;autoUpdateTime:false"`

	// Relations
	Empresa    *Empresa    `gorm:"foreignKey:EmpresaID;references:ID"`
	Atividades []*Atividade `gorm:"foreignKey:LeadID;references:ID;constraint:OnDelete:CASCADE"`
	Lembretes  []*Lembrete  `gorm:"foreignKey:LeadID;references:ID;constraint:OnDelete:CASCADE"`
	Negocio    *Negocio     `gorm:"foreignKey:LeadID;references:ID"`
}
