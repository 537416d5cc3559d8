package repository

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"prospecta/cmd/internal/domain/entity"
	"prospecta/cmd/internal/utils"
)

const SearchPageSize = 50

// LeadSearch carries the list filters. Sort columns are whitelisted in
// the service before they reach here.
type LeadSearch struct {
	UserID    int64
	Search    string
	Status    entity.LeadStatus
	SortBy    string
	SortOrder string
	Page      int
}

type DefaultLeadRepository struct {
	db *gorm.DB
}

func NewLeadRepository(db *gorm.DB) *DefaultLeadRepository {
	return &DefaultLeadRepository{db: db}
}

func (d *DefaultLeadRepository) Search(q *LeadSearch) ([]*entity.Lead, int64, error) {
	tx := d.db.Model(&entity.Lead{}).Where("user_id = ?", q.UserID)

	if q.Search != "" {
		like := "%" + q.Search + "%"
		// Text-only terms normalize to an empty digit string; matching
		// cnpj against '%%' would select every row.
		if digits := utils.NormalizeCNPJ(q.Search); digits != "" {
			tx = tx.Where("nome_devedor LIKE ? OR cnpj LIKE ?", like, "%"+digits+"%")
		} else {
			tx = tx.Where("nome_devedor LIKE ?", like)
		}
	}
	if q.Status != "" {
		tx = tx.Where("status = ?", q.Status)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := q.Page
	if page < 1 {
		page = 1
	}

	var leads []*entity.Lead
	err := tx.
		Order(q.SortBy + " " + q.SortOrder).
		Offset((page - 1) * SearchPageSize).
		Limit(SearchPageSize).
		Find(&leads).Error
	if err != nil {
		return nil, 0, err
	}
	return leads, total, nil
}

// FindDetailedOwned loads a lead with all its dependent records, with
// the owner predicate embedded in the query.
func (d *DefaultLeadRepository) FindDetailedOwned(id, userID int64) (*entity.Lead, error) {
	var lead entity.Lead
	err := d.db.
		Preload("Empresa").
		Preload("Empresa.Socios").
		Preload("Empresa.Contatos").
		Preload("Atividades", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("created_at DESC")
		}).
		Preload("Lembretes", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("data ASC")
		}).
		Preload("Negocio").
		Preload("Negocio.Propostas").
		Where("id = ? AND user_id = ?", id, userID).
		First(&lead).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &lead, nil
}

func (d *DefaultLeadRepository) FindAllByUser(userID int64) ([]*entity.Lead, error) {
	var leads []*entity.Lead
	err := d.db.
		Where("user_id = ?", userID).
		Order("valor_total_divida DESC").
		Find(&leads).Error
	if err != nil {
		return nil, err
	}
	return leads, nil
}

func (d *DefaultLeadRepository) Save(lead *entity.Lead) error {
	return d.db.Save(lead).Error
}

// UpdateStatus writes the status with the owner chain embedded in the
// statement; zero rows means absent or not owned.
func (d *DefaultLeadRepository) UpdateStatus(id, userID int64, status entity.LeadStatus) (bool, error) {
	res := d.db.Model(&entity.Lead{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]any{
			"status":     status,
			"updated_at": utils.NowUTC(),
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// BulkUpsert inserts the batch in one transaction, updating the debtor
// fields when the (cnpj, user_id) pair already exists.
func (d *DefaultLeadRepository) BulkUpsert(leads []*entity.Lead) error {
	if len(leads) == 0 {
		return nil
	}
	return d.db.Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "cnpj"}, {Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"nome_devedor", "nome_fantasia", "valor_total_divida", "updated_at",
			}),
		}).Create(&leads).Error
	})
}

type Location struct {
	Municipio string `json:"municipio"`
	Uf        string `json:"uf"`
}

func (d *DefaultLeadRepository) Locations(userID int64) ([]*Location, error) {
	var locations []*Location
	err := d.db.Model(&entity.Lead{}).
		Distinct("municipio", "uf").
		Where("user_id = ? AND municipio <> ''", userID).
		Order("municipio").
		Scan(&locations).Error
	if err != nil {
		return nil, err
	}
	return locations, nil
}

// StatusesCreatedBetween returns only the status column of the user's
// leads created in the window; the aggregation happens in the service.
func (d *DefaultLeadRepository) StatusesCreatedBetween(userID, start, end int64) ([]entity.LeadStatus, error) {
	var statuses []entity.LeadStatus
	err := d.db.Model(&entity.Lead{}).
		Where("user_id = ? AND created_at BETWEEN ? AND ?", userID, start, end).
		Pluck("status", &statuses).Error
	if err != nil {
		return nil, err
	}
	return statuses, nil
}

// ContactedUpdatedBetween returns the updated_at timestamps of CONTATADO
// leads touched in the window, for the daily performance series.
func (d *DefaultLeadRepository) ContactedUpdatedBetween(userID, start, end int64) ([]int64, error) {
	var stamps []int64
	err := d.db.Model(&entity.Lead{}).
		Where("user_id = ? AND status = ? AND updated_at BETWEEN ? AND ?",
			userID, entity.StatusContatado, start, end).
		Pluck("updated_at", &stamps).Error
	if err != nil {
		return nil, err
	}
	return stamps, nil
}
