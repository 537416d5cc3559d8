package repository

import (
	"gorm.io/gorm"

	"prospecta/cmd/internal/domain/entity"
)

type DefaultPropostaRepository struct {
	db *gorm.DB
}

func NewPropostaRepository(db *gorm.DB) *DefaultPropostaRepository {
	return &DefaultPropostaRepository{db: db}
}

// FindByLeadOwned lists the proposals of a lead's deal, scoped to the
// owner chain in the query itself.
func (d *DefaultPropostaRepository) FindByLeadOwned(leadID, userID int64) ([]*entity.Proposta, error) {
	var propostas []*entity.Proposta
	err := d.db.
		Joins("JOIN negocios ON negocios.id = propostas.negocio_id").
		Where("negocios.lead_id = ? AND negocios.user_id = ?", leadID, userID).
		Order("propostas.created_at DESC").
		Find(&propostas).Error
	if err != nil {
		return nil, err
	}
	return propostas, nil
}

func (d *DefaultPropostaRepository) Save(proposta *entity.Proposta) error {
	return d.db.Save(proposta).Error
}

func (d *DefaultPropostaRepository) Delete(proposta *entity.Proposta) error {
	return d.db.Delete(proposta).Error
}
