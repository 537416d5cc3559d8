package repository

import (
	"errors"

	"gorm.io/gorm"

	"prospecta/cmd/internal/domain/entity"
	"prospecta/cmd/internal/utils/uid"
)

type DefaultEmpresaRepository struct {
	db *gorm.DB
}

func NewEmpresaRepository(db *gorm.DB) *DefaultEmpresaRepository {
	return &DefaultEmpresaRepository{db: db}
}

func (r *DefaultEmpresaRepository) FindByCnpj(cnpj string) (*entity.Empresa, error) {
	var empresa entity.Empresa
	err := r.db.
		Preload("Socios").
		Where("cnpj = ?", cnpj).
		First(&empresa).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &empresa, nil
}

// UpsertWithSocios applies the last-write-wins reconciliation inside the
// caller's transaction: scalar fields are overwritten from the fresh
// payload and the shareholder set is replaced wholesale. The empresa
// keeps its row ID across refreshes; socios do not.
func (r *DefaultEmpresaRepository) UpsertWithSocios(tx *gorm.DB, empresa *entity.Empresa) error {
	var existing entity.Empresa
	err := tx.Where("cnpj = ?", empresa.Cnpj).First(&existing).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		if empresa.ID == 0 {
			empresa.ID = uid.Generate()
		}
	case err != nil:
		return err
	default:
		empresa.ID = existing.ID
		if derr := tx.Where("empresa_id = ?", existing.ID).Delete(&entity.Socio{}).Error; derr != nil {
			return derr
		}
	}

	socios := empresa.Socios
	empresa.Socios = nil
	if err := tx.Save(empresa).Error; err != nil {
		return err
	}

	for _, socio := range socios {
		if socio.ID == 0 {
			socio.ID = uid.Generate()
		}
		socio.EmpresaID = empresa.ID
	}
	if len(socios) > 0 {
		if err := tx.Create(&socios).Error; err != nil {
			return err
		}
	}
	empresa.Socios = socios
	return nil
}
