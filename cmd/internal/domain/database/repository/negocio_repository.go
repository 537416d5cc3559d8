package repository

import (
	"errors"

	"gorm.io/gorm"

	"prospecta/cmd/internal/domain/entity"
)

type DefaultNegocioRepository struct {
	db *gorm.DB
}

func NewNegocioRepository(db *gorm.DB) *DefaultNegocioRepository {
	return &DefaultNegocioRepository{db: db}
}

func (d *DefaultNegocioRepository) FindByLeadID(leadID int64) (*entity.Negocio, error) {
	var negocio entity.Negocio
	err := d.db.Where("lead_id = ?", leadID).First(&negocio).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &negocio, nil
}

func (d *DefaultNegocioRepository) Save(negocio *entity.Negocio) error {
	return d.db.Save(negocio).Error
}

// FinancialSummary aggregates the user's deals closed in the window.
type FinancialSummary struct {
	TotalFechado      float64 `json:"totalFechado"`
	TotalEscritorio   float64 `json:"totalEscritorio"`
	TotalOutraParte   float64 `json:"totalOutraParte"`
	TotalRecebido     float64 `json:"totalRecebido"`
	QuantidadeNegocios int64  `json:"quantidadeNegocios"`
}

func (d *DefaultNegocioRepository) SummaryBetween(userID, start, end int64) (*FinancialSummary, error) {
	var summary FinancialSummary
	err := d.db.Model(&entity.Negocio{}).
		Select("COALESCE(SUM(valor_fechado), 0) AS total_fechado, "+
			"COALESCE(SUM(valor_escritorio), 0) AS total_escritorio, "+
			"COALESCE(SUM(valor_outra_parte), 0) AS total_outra_parte, "+
			"COALESCE(SUM(valor_recebido), 0) AS total_recebido, "+
			"COUNT(id) AS quantidade_negocios").
		Where("user_id = ? AND data_fechamento BETWEEN ? AND ?", userID, start, end).
		Scan(&summary).Error
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

// ClosedValue is one closed deal in the window, for the daily series.
type ClosedValue struct {
	DataFechamento int64
	ValorFechado   float64
}

func (d *DefaultNegocioRepository) ClosedBetween(userID, start, end int64) ([]*ClosedValue, error) {
	var closed []*ClosedValue
	err := d.db.Model(&entity.Negocio{}).
		Select("data_fechamento", "valor_fechado").
		Where("user_id = ? AND data_fechamento BETWEEN ? AND ?", userID, start, end).
		Scan(&closed).Error
	if err != nil {
		return nil, err
	}
	return closed, nil
}
