package entity

// Lembrete is a follow-up reminder on a Lead. Data is epoch millis; the
// API flips Concluido or reschedules Data, never both in one call.
type Lembrete struct {
	ID        int64  `gorm:"primaryKey"`
	LeadID    int64  `gorm:"not null;index"`
	Descricao string `gorm:"not null"`
	Data      int64  `gorm:"not null"`
	Concluido bool   `gorm:"not null;default:false"`
	CreatedAt int64  `gorm:"not null"`
}
