package repository

import (
	"gorm.io/gorm"

	"prospecta/cmd/internal/domain/entity"
)

type DefaultAtividadeRepository struct {
	db *gorm.DB
}

func NewAtividadeRepository(db *gorm.DB) *DefaultAtividadeRepository {
	return &DefaultAtividadeRepository{db: db}
}

func (d *DefaultAtividadeRepository) Save(atividade *entity.Atividade) error {
	return d.db.Save(atividade).Error
}
