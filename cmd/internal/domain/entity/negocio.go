package entity

// Negocio is the converted/closed business tied 1:1 to a Lead, tracking
// the financial split of the engagement. Created lazily on the first
// deal or proposal action.
type Negocio struct {
	ID              int64 `gorm:"primaryKey"`
	LeadID          int64 `gorm:"not null;uniqueIndex"`
	UserID          int64 `gorm:"not null;index"`
	ValorFechado    float64 `gorm:"not null;default:0"`
	ValorEscritorio float64 `gorm:"not null;default:0"`
	ValorOutraParte float64 `gorm:"not null;default:0"`
	ValorRecebido   float64 `gorm:"not null;default:0"`
	DataFechamento  *int64
	CreatedAt       int64 `gorm:"not null"`
	UpdatedAt       int64 `gorm:"not null;autoUpdateTime:false"`

	// Relations
	Propostas []*Proposta `gorm:"foreignKey:NegocioID;references:ID;constraint:OnDelete:CASCADE"`
}

// Proposta is a generated or uploaded document hanging off a Negocio.
// CaminhoArquivo points at the backing object in storage; deleting the
// row deletes the object best-effort.
type Proposta struct {
	ID             int64 `gorm:"primaryKey"`
	NegocioID      int64 `gorm:"not null;index"`
	Objeto         string
	Escopo         string
	Valores        string
	Validade       *int64
	CaminhoArquivo string
	NomeArquivo    string
	CreatedAt      int64 `gorm:"not null"`
}

// TableName avoids the mangled plural gorm would infer.
func (Proposta) TableName() string {
	return "propostas"
}
