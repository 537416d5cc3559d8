package repository

import (
	"gorm.io/gorm"

	"prospecta/cmd/internal/domain/entity"
)

type DefaultContatoRepository struct {
	db *gorm.DB
}

func NewContatoRepository(db *gorm.DB) *DefaultContatoRepository {
	return &DefaultContatoRepository{db: db}
}

func (d *DefaultContatoRepository) Save(contato *entity.Contato) error {
	return d.db.Save(contato).Error
}

// DeleteOwned removes the contact in a single statement; the ownership
// chain (contato -> empresa -> lead -> user) rides in the WHERE clause.
func (d *DefaultContatoRepository) DeleteOwned(id, userID int64) (bool, error) {
	res := d.db.
		Where("id = ? AND EXISTS (SELECT 1 FROM leads WHERE leads.empresa_id = contatos.empresa_id AND leads.user_id = ?)",
			id, userID).
		Delete(&entity.Contato{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
