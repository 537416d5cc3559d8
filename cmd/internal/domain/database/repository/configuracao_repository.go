package repository

import (
	"errors"

	"gorm.io/gorm"

	"prospecta/cmd/internal/domain/entity"
)

type DefaultConfiguracaoRepository struct {
	db *gorm.DB
}

func NewConfiguracaoRepository(db *gorm.DB) *DefaultConfiguracaoRepository {
	return &DefaultConfiguracaoRepository{db: db}
}

func (d *DefaultConfiguracaoRepository) FindByUserID(userID int64) (*entity.Configuracao, error) {
	var config entity.Configuracao
	err := d.db.Where("user_id = ?", userID).First(&config).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &config, nil
}

func (d *DefaultConfiguracaoRepository) Save(config *entity.Configuracao) error {
	return d.db.Save(config).Error
}
