package entity

type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

// User is the root of tenancy: every Lead, Negocio and Configuracao
// belongs to exactly one User.
type User struct {
	ID           int64  `gorm:"primaryKey"`
	Nome         string `gorm:"not null"`
	Email        string `gorm:"not null;uniqueIndex"`
	PasswordHash string `gorm:"not null"`
	Role         Role   `gorm:"not null;default:USER"`
	CreatedAt    int64  `gorm:"not null"`
	UpdatedAt    int64  `gorm:"not null;autoUpdateTime:false"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
