package entity

// Configuracao is the per-tenant branding used on generated proposals,
// one row per User, created lazily with placeholder values.
type Configuracao struct {
	ID          int64  `gorm:"primaryKey"`
	UserID      int64  `gorm:"not null;uniqueIndex"`
	NomeEmpresa string `gorm:"not null"`
	Cnpj        string
	Endereco    string
	Email       string
	Telefone    string
	LogoUrl     string
	UpdatedAt   int64 `gorm:"not null;autoUpdateTime:false"`
}

// TableName avoids the mangled plural gorm would infer.
func (Configuracao) TableName() string {
	return "configuracoes"
}
