package repository

import (
	"gorm.io/gorm"

	"prospecta/cmd/internal/domain/entity"
)

type DefaultLembreteRepository struct {
	db *gorm.DB
}

func NewLembreteRepository(db *gorm.DB) *DefaultLembreteRepository {
	return &DefaultLembreteRepository{db: db}
}

func (d *DefaultLembreteRepository) Save(lembrete *entity.Lembrete) error {
	return d.db.Save(lembrete).Error
}

// DeleteOwned removes the reminder in a single statement with the owner
// chain embedded; zero rows affected means absent or not owned.
func (d *DefaultLembreteRepository) DeleteOwned(id, userID int64) (bool, error) {
	res := d.db.
		Where("id = ? AND lead_id IN (SELECT id FROM leads WHERE user_id = ?)", id, userID).
		Delete(&entity.Lembrete{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// UpcomingReminder pairs a pending reminder with its lead identity, so
// the agenda view can link back to the lead.
type UpcomingReminder struct {
	ID          int64
	Descricao   string
	Data        int64
	LeadID      int64
	NomeDevedor string
}

func (d *DefaultLembreteRepository) FindUpcoming(userID int64) ([]*UpcomingReminder, error) {
	var upcoming []*UpcomingReminder
	err := d.db.Model(&entity.Lembrete{}).
		Select("lembretes.id", "lembretes.descricao", "lembretes.data",
			"leads.id AS lead_id", "leads.nome_devedor").
		Joins("JOIN leads ON leads.id = lembretes.lead_id").
		Where("leads.user_id = ? AND lembretes.concluido = ?", userID, false).
		Order("lembretes.data ASC").
		Scan(&upcoming).Error
	if err != nil {
		return nil, err
	}
	return upcoming, nil
}
