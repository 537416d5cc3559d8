package entity

// Contato is a person the user talks to inside an Empresa. Ownership is
// transitive: Contato -> Empresa -> Lead -> User.
type Contato struct {
	ID         int64  `gorm:"primaryKey"`
	EmpresaID  int64  `gorm:"not null;index"`
	Nome       string `gorm:"not null"`
	Cargo      string
	Telefone   string
	Email      string
	Observacao string
	CreatedAt  int64 `gorm:"not null"`
	UpdatedAt  int64 `gorm:"not null;autoUpdateTime:false"`
}
