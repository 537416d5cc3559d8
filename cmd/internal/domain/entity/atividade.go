package entity

// Atividade is a free-text timestamped note on a Lead, append-only from
// the user's perspective.
type Atividade struct {
	ID        int64  `gorm:"primaryKey"`
	LeadID    int64  `gorm:"not null;index"`
	Conteudo  string `gorm:"not null"`
	CreatedAt int64  `gorm:"not null"`
}
